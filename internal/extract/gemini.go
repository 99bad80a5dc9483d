package extract

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for extraction.
const DefaultModel = "gemini-3-flash-preview"

const (
	linkPrompt  = "Extract the main text content from this article link: %s. Provide only the article text, no metadata or sidebars."
	imagePrompt = "Extract all visible text from this image. Output only the text. Preserve the original paragraph structure. Be highly accurate."
	pdfPrompt   = "Extract all text from this PDF document. Output only the text. Preserve the original paragraph structure."
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini extracts text with a multimodal Gemini model.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini extractor for apiKey. An empty model selects
// DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{models: models, model: model}
}

// ExtractLink lets the model read the page through Google Search
// grounding.
func (g *Gemini) ExtractLink(ctx context.Context, rawURL string) (string, error) {
	contents := genai.Text(fmt.Sprintf(linkPrompt, rawURL))
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	return g.generate(ctx, contents, config)
}

// ExtractImage runs OCR over the inline image bytes.
func (g *Gemini) ExtractImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return g.inline(ctx, data, mimeType, imagePrompt)
}

// ExtractPDF reads the inline document bytes.
func (g *Gemini) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	return g.inline(ctx, data, PDFMimeType, pdfPrompt)
}

func (g *Gemini) inline(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return g.generate(ctx, contents, nil)
}

func (g *Gemini) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini extraction error: %w", err)
	}
	if resp == nil {
		return "", ErrNoText
	}
	return nonEmpty(resp.Text())
}
