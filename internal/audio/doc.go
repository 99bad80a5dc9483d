// Package audio turns text into 16-bit little-endian mono PCM at 24 kHz.
// It contains the Gemini, OpenAI and espeak-ng providers, a fallback and
// a caching wrapper, language detection and the PCM and WAV codecs the
// player and exporter share.
package audio
