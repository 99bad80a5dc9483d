// Package settings persists the educalm application settings and applies
// the theme and language side effects when they change.
package settings
