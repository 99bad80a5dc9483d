// Package models lists the Gemini and OpenAI models usable for speech
// generation and text extraction with the configured API keys.
package models
