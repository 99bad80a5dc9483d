package audio

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/logging"
)

// Gender selects the voice of a request.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Request is one text-to-speech call.
type Request struct {
	Text     string
	Language i18n.Language
	Gender   Gender
	// Instruction is the spoken-style prompt. Providers that read their
	// input verbatim pass it as a voice instruction instead.
	Instruction string
}

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateSpeech returns raw PCM16LE mono audio at SampleRate. A nil
	// slice with a nil error means the provider answered without audio.
	GenerateSpeech(ctx context.Context, req Request) ([]byte, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider string // Provider name: "gemini", "openai" or "espeak"
	Fallback string // Optional fallback provider name

	// Gemini-specific settings
	GeminiKey         string
	GeminiModel       string
	GeminiMaleVoice   string
	GeminiFemaleVoice string

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIMaleVoice   string // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAIFemaleVoice string
	OpenAISpeed       float64 // 0.25 to 4.0

	// espeak-ng settings
	ESpeak *ESpeakConfig

	CacheDir    string
	EnableCache bool
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "gemini",
		GeminiModel:       "gemini-2.5-flash-preview-tts",
		GeminiMaleVoice:   "Fenrir",
		GeminiFemaleVoice: "Zephyr",
		OpenAIModel:       "gpt-4o-mini-tts", // Supports voice instructions
		OpenAIMaleVoice:   "onyx",
		OpenAIFemaleVoice: "nova",
		OpenAISpeed:       1.0,
	}
}

// NewProvider creates the audio provider named by config.Provider and,
// when config.Fallback is set, wraps it with that fallback. A fallback
// that cannot be created is logged and skipped.
func NewProvider(ctx context.Context, config *Config, log logging.Logger) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if log == nil {
		log = logging.Discard()
	}

	primary, err := newNamedProvider(ctx, config.Provider, config)
	if err != nil {
		return nil, err
	}
	var p Provider = primary
	if config.Fallback != "" && config.Fallback != config.Provider {
		fallback, err := newNamedProvider(ctx, config.Fallback, config)
		if err != nil {
			log.Warn(ctx, "fallback provider disabled", "provider", config.Fallback, "error", err)
		} else {
			p = NewProviderWithFallback(primary, fallback, log)
		}
	}
	if config.EnableCache && config.CacheDir != "" {
		return NewCachingProvider(p, config.CacheDir)
	}
	return p, nil
}

func newNamedProvider(ctx context.Context, name string, config *Config) (Provider, error) {
	switch name {
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(ctx, config)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)
	case "espeak":
		return NewESpeakProvider(config.ESpeak)
	default:
		return nil, fmt.Errorf("unknown audio provider: %s", name)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      logging.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, log logging.Logger) Provider {
	if log == nil {
		log = logging.Discard()
	}
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

// GenerateSpeech tries primary provider first, falls back to secondary on error.
// When both fail the returned error wraps both causes.
func (p *ProviderWithFallback) GenerateSpeech(ctx context.Context, req Request) ([]byte, error) {
	pcm, err := p.primary.GenerateSpeech(ctx, req)
	if err == nil {
		return pcm, nil
	}
	if errors.Is(err, ErrEmptyText) || ctx.Err() != nil {
		return nil, err
	}

	p.log.Warn(ctx, "primary provider failed, falling back",
		"primary", p.primary.Name(), "fallback", p.fallback.Name(), "error", err)

	pcm, fbErr := p.fallback.GenerateSpeech(ctx, req)
	if fbErr != nil {
		return nil, fmt.Errorf("%s: %w; %s: %w", p.primary.Name(), err, p.fallback.Name(), fbErr)
	}
	return pcm, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
