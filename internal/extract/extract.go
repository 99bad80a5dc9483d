package extract

import (
	"context"
	"errors"
	"strings"

	"codeberg.org/snonux/educalm/internal/logging"
	"codeberg.org/snonux/educalm/internal/speech"
)

// ErrNoText is returned when a source yields no readable text.
var ErrNoText = errors.New("no text found")

// PDFMimeType is the only document type ExtractPDF accepts.
const PDFMimeType = "application/pdf"

// LinkExtractor returns the article text behind a URL.
type LinkExtractor interface {
	ExtractLink(ctx context.Context, rawURL string) (string, error)
}

// ImageExtractor returns the visible text of an image.
type ImageExtractor interface {
	ExtractImage(ctx context.Context, data []byte, mimeType string) (string, error)
}

// PDFExtractor returns the text of a PDF document.
type PDFExtractor interface {
	ExtractPDF(ctx context.Context, data []byte) (string, error)
}

// Extractor handles every supported source.
type Extractor interface {
	LinkExtractor
	ImageExtractor
	PDFExtractor
}

func nonEmpty(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// LinkWithFallback tries primary and, unless it was rate limited, falls
// back to secondary.
type LinkWithFallback struct {
	primary   LinkExtractor
	secondary LinkExtractor
	log       logging.Logger
}

// NewLinkWithFallback combines two link extractors.
func NewLinkWithFallback(primary, secondary LinkExtractor, log logging.Logger) *LinkWithFallback {
	if log == nil {
		log = logging.Discard()
	}
	return &LinkWithFallback{primary: primary, secondary: secondary, log: log}
}

func (l *LinkWithFallback) ExtractLink(ctx context.Context, rawURL string) (string, error) {
	text, err := l.primary.ExtractLink(ctx, rawURL)
	if err == nil {
		return text, nil
	}
	if speech.IsRateLimited(err) || ctx.Err() != nil {
		return "", err
	}
	l.log.Warn(ctx, "remote link extraction failed, using local extractor", "url", rawURL, "error", err)

	text, fbErr := l.secondary.ExtractLink(ctx, rawURL)
	if fbErr != nil {
		return "", errors.Join(err, fbErr)
	}
	return text, nil
}

// Combined routes links to one extractor and documents to another.
type Combined struct {
	Links     LinkExtractor
	Documents interface {
		ImageExtractor
		PDFExtractor
	}
}

func (c Combined) ExtractLink(ctx context.Context, rawURL string) (string, error) {
	return c.Links.ExtractLink(ctx, rawURL)
}

func (c Combined) ExtractImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return c.Documents.ExtractImage(ctx, data, mimeType)
}

func (c Combined) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	return c.Documents.ExtractPDF(ctx, data)
}
