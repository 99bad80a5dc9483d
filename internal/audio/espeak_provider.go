package audio

import (
	"context"
	"fmt"
)

// ESpeakProvider implements Provider with the local espeak-ng engine. It
// needs no network and serves as an offline fallback.
type ESpeakProvider struct {
	espeak *ESpeak
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *ESpeakConfig) (Provider, error) {
	espeak, err := New(config)
	if err != nil {
		return nil, err
	}
	return &ESpeakProvider{espeak: espeak}, nil
}

// GenerateSpeech speaks req.Text and converts the result to the common
// PCM format. The instruction prompt is not spoken.
func (p *ESpeakProvider) GenerateSpeech(ctx context.Context, req Request) ([]byte, error) {
	lang := req.Language
	if lang == "" {
		lang = DetectLanguage(req.Text)
	}

	data, err := p.espeak.Synthesize(ctx, req.Text, VoiceFor(lang, req.Gender))
	if err != nil {
		return nil, err
	}
	return toProviderPCM(data)
}

// toProviderPCM converts a WAV file to mono PCM16LE at SampleRate.
func toProviderPCM(data []byte) ([]byte, error) {
	wav, err := DecodeWAV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode espeak-ng output: %w", err)
	}
	return Resample(wav.Mono(), wav.SampleRate, SampleRate), nil
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled(p.espeak.config.Binary)
}
