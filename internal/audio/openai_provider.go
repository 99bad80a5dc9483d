package audio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// speechResponsePCM is raw 24 kHz 16-bit mono PCM without a header.
const speechResponsePCM = openai.SpeechResponseFormat("pcm")

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return NewOpenAIProviderWithClient(openai.NewClient(config.OpenAIKey), config), nil
}

// NewOpenAIProviderWithClient uses an already configured client, for
// example one pointed at a compatible endpoint.
func NewOpenAIProviderWithClient(client *openai.Client, config *Config) Provider {
	return &OpenAIProvider{client: client, config: config}
}

// GenerateSpeech generates audio using OpenAI TTS
func (p *OpenAIProvider) GenerateSpeech(ctx context.Context, req Request) ([]byte, error) {
	if err := ValidateText(req.Text); err != nil {
		return nil, err
	}

	speechReq := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          strings.TrimSpace(req.Text),
		Voice:          openai.SpeechVoice(p.Voice(req.Gender)),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: speechResponsePCM,
	}

	// Only the gpt-4o models accept voice instructions
	if req.Instruction != "" && p.supportsInstructions() {
		speechReq.Instructions = req.Instruction
	}

	response, err := p.client.CreateSpeech(ctx, speechReq)
	if err != nil {
		// Check if it's a model access error
		errStr := err.Error()
		if strings.Contains(errStr, "does not have access to model") && p.supportsInstructions() {
			return nil, fmt.Errorf("OpenAI TTS API error: %w\nNote: The %s model requires access. Try using --openai-model tts-1-hd instead", err, p.config.OpenAIModel)
		}
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	pcm, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio data received from OpenAI")
	}
	return pcm, nil
}

func (p *OpenAIProvider) supportsInstructions() bool {
	return p.config.OpenAIModel == "gpt-4o-mini-tts" || p.config.OpenAIModel == "gpt-4o-mini-audio-preview"
}

// Voice returns the configured voice for gender.
func (p *OpenAIProvider) Voice(g Gender) string {
	if g == Male {
		return p.config.OpenAIMaleVoice
	}
	return p.config.OpenAIFemaleVoice
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// We could make a test API call here, but that would use credits
	// For now, just check that we have a key
	return nil
}
