// Package player decodes educalm audio payloads and tracks playback
// position against a clock, so progress and word highlighting can be
// sampled at any time.
package player
