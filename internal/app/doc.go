// Package app implements the screen controllers of educalm. Each screen
// owns its transient state, reads and writes the stores and moves the
// navigation stack; rendering is left to the front end driving it.
package app
