package testutil

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/extract"
	"codeberg.org/snonux/educalm/internal/speech"
)

// MockSpeaker mocks the speech generator
type MockSpeaker struct {
	mu        sync.Mutex
	Responses map[string]string
	Errors    map[string]error
	Calls     []speech.Options
}

// Generate returns the base64 audio registered for the text, or a short
// default clip
func (m *MockSpeaker) Generate(ctx context.Context, opts speech.Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, opts)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[opts.Text]; ok {
		return "", err
	}
	if audioBase64, ok := m.Responses[opts.Text]; ok {
		return audioBase64, nil
	}

	// Default response
	return base64.StdEncoding.EncodeToString(GeneratePCM(0.5)), nil
}

// CallCount returns how often Generate was called
func (m *MockSpeaker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockProvider mocks a speech provider
type MockProvider struct {
	mu        sync.Mutex
	Responses map[string][]byte
	Errors    map[string]error
	Calls     []audio.Request
}

// GenerateSpeech mocks speech synthesis
func (m *MockProvider) GenerateSpeech(ctx context.Context, req audio.Request) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	if err, ok := m.Errors[req.Text]; ok {
		return nil, err
	}
	if pcm, ok := m.Responses[req.Text]; ok {
		return pcm, nil
	}

	// Default clips differ per text
	pcm := GeneratePCM(0.25)
	copy(pcm, req.Text)
	return pcm, nil
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// IsAvailable always succeeds
func (m *MockProvider) IsAvailable() error { return nil }

// MockExtractor mocks the remote text extractor
type MockExtractor struct {
	mu     sync.Mutex
	Links  map[string]string
	Images map[string]string // keyed by mime type
	PDF    string
	Err    error
	Calls  []string
}

var _ extract.Extractor = (*MockExtractor)(nil)

// ExtractLink mocks article extraction
func (m *MockExtractor) ExtractLink(ctx context.Context, rawURL string) (string, error) {
	m.record(fmt.Sprintf("LINK %s", rawURL))
	if m.Err != nil {
		return "", m.Err
	}
	if text, ok := m.Links[rawURL]; ok {
		return text, nil
	}
	return "", extract.ErrNoText
}

// ExtractImage mocks OCR
func (m *MockExtractor) ExtractImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	m.record(fmt.Sprintf("IMAGE %s (%d bytes)", mimeType, len(data)))
	if m.Err != nil {
		return "", m.Err
	}
	return m.Images[mimeType], nil
}

// ExtractPDF mocks PDF text extraction
func (m *MockExtractor) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	m.record(fmt.Sprintf("PDF (%d bytes)", len(data)))
	if m.Err != nil {
		return "", m.Err
	}
	return m.PDF, nil
}

func (m *MockExtractor) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// GeneratePCM returns seconds of 16-bit mono silence at the speech
// sample rate
func GeneratePCM(seconds float64) []byte {
	n := int(seconds * audio.SampleRate)
	return make([]byte, n*2)
}
