// Package speech wraps a TTS provider with the educalm reading prompt,
// rate-limit retries, a circuit breaker and library auto-save.
package speech
