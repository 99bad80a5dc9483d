package audio

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models the providers use.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider implements Provider with the Gemini speech models
type GeminiProvider struct {
	models contentGenerator
	config *Config
}

// NewGeminiProvider creates a new Gemini TTS provider
func NewGeminiProvider(ctx context.Context, config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{models: client.Models, config: config}, nil
}

// GenerateSpeech asks the speech model for audio with a prebuilt voice.
func (p *GeminiProvider) GenerateSpeech(ctx context.Context, req Request) ([]byte, error) {
	if err := ValidateText(req.Text); err != nil {
		return nil, err
	}

	prompt := req.Instruction
	if prompt == "" {
		prompt = req.Text
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: p.Voice(req.Gender)},
			},
		},
	}

	resp, err := p.models.GenerateContent(ctx, p.config.GeminiModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini TTS API error: %w", err)
	}
	return inlineAudio(resp), nil
}

// inlineAudio digs candidates[0].content.parts[0].inlineData.data out of
// resp. Any missing step yields nil.
func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil
	}
	part := content.Parts[0]
	if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
		return nil
	}
	return part.InlineData.Data
}

// Voice returns the prebuilt voice for gender.
func (p *GeminiProvider) Voice(g Gender) string {
	if g == Male {
		return p.config.GeminiMaleVoice
	}
	return p.config.GeminiFemaleVoice
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API key is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
