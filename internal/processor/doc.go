// Package processor runs the educalm commands. It wires storage, speech
// generation and text extraction into the app screens and prints their
// results. This package serves as the main coordinator between all other
// components.
package processor
