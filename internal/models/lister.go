package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ErrNoAPIKey is returned when neither provider is configured
var ErrNoAPIKey = errors.New("no API key found. Set GEMINI_API_KEY or OPENAI_API_KEY environment variable or configure in .educalm.yaml")

// source returns the model IDs of one provider
type source func(ctx context.Context) ([]string, error)

// Lister handles listing available models
type Lister struct {
	geminiKey string
	openaiKey string
	gemini    source
	openai    source
	out       io.Writer
}

// NewLister creates a new model lister
func NewLister(geminiKey, openaiKey string) *Lister {
	return &Lister{
		geminiKey: geminiKey,
		openaiKey: openaiKey,
		gemini:    geminiSource(geminiKey),
		openai:    openaiSource(openai.NewClient(openaiKey)),
		out:       os.Stdout,
	}
}

func geminiSource(apiKey string) source {
	return func(ctx context.Context) ([]string, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		var ids []string
		page, err := client.Models.List(ctx, &genai.ListModelsConfig{PageSize: 100})
		for err == nil {
			for _, m := range page.Items {
				ids = append(ids, strings.TrimPrefix(m.Name, "models/"))
			}
			page, err = page.Next(ctx)
		}
		if !errors.Is(err, genai.ErrPageDone) {
			return nil, err
		}
		return ids, nil
	}
}

func openaiSource(client *openai.Client) source {
	return func(ctx context.Context) ([]string, error) {
		list, err := client.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(list.Models))
		for _, m := range list.Models {
			ids = append(ids, m.ID)
		}
		return ids, nil
	}
}

// ListAvailableModels lists the models of every configured provider
// categorized by use
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.geminiKey == "" && l.openaiKey == "" {
		return ErrNoAPIKey
	}

	if l.geminiKey != "" {
		ids, err := l.gemini(ctx)
		if err != nil {
			return fmt.Errorf("failed to list Gemini models: %w", err)
		}
		tts, text := categorizeGemini(ids)
		fmt.Fprintln(l.out, "Available Gemini Models:")
		l.printSection("Text-to-Speech (TTS) Models:", tts, "No TTS models found")
		l.printSection("Text Extraction Models:", text, "No extraction models found")
	}

	if l.openaiKey != "" {
		ids, err := l.openai(ctx)
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		tts := categorizeOpenAI(ids)
		if l.geminiKey != "" {
			fmt.Fprintln(l.out)
		}
		fmt.Fprintln(l.out, "Available OpenAI Models:")
		l.printSection("Text-to-Speech (TTS) Models:", tts, "No TTS models found")
	}
	return nil
}

func (l *Lister) printSection(title string, models []string, empty string) {
	fmt.Fprintf(l.out, "\n%s\n", title)
	if len(models) == 0 {
		fmt.Fprintf(l.out, "  %s\n", empty)
		return
	}
	for _, model := range models {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
}

// categorizeGemini splits Gemini models into speech models and general
// models able to extract text
func categorizeGemini(ids []string) (tts, text []string) {
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"):
			tts = append(tts, id)
		case strings.HasPrefix(id, "gemini") && !strings.Contains(id, "embedding"):
			text = append(text, id)
		}
	}
	sort.Strings(tts)
	sort.Strings(text)
	return tts, text
}

// categorizeOpenAI keeps the OpenAI speech models
func categorizeOpenAI(ids []string) []string {
	var tts []string
	for _, id := range ids {
		if strings.Contains(id, "tts") {
			tts = append(tts, id)
		}
	}
	sort.Strings(tts)
	return tts
}
