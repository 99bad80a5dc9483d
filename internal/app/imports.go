package app

import (
	"context"
	"errors"
	"strings"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/extract"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/navigation"
	"codeberg.org/snonux/educalm/internal/speech"
)

// ErrInvalidPDF is returned when a file that is not a PDF is selected.
var ErrInvalidPDF = errors.New("not a PDF file")

// ErrNothingSelected is returned when extraction starts without input.
var ErrNothingSelected = errors.New("nothing selected")

// noContent is handed to the editor when a link yields no text.
const noContent = "Could not extract content."

// PDFImport picks a PDF and extracts its text.
type PDFImport struct {
	app  *App
	name string
	data []byte
}

// PDFImport opens the PDF import screen.
func (a *App) PDFImport() *PDFImport {
	return &PDFImport{app: a}
}

// Select picks the file. Anything but application/pdf is rejected and
// leaves the previous selection in place.
func (p *PDFImport) Select(ctx context.Context, name, mimeType string, data []byte) error {
	if mimeType != extract.PDFMimeType {
		p.app.notify(ctx, i18n.MsgInvalidPDF)
		return ErrInvalidPDF
	}
	p.name = name
	p.data = data
	return nil
}

// Selected returns the name of the picked file, or "".
func (p *PDFImport) Selected() string { return p.name }

// Extract reads the text of the picked file and opens it in the editor.
func (p *PDFImport) Extract(ctx context.Context) error {
	a := p.app
	if p.data == nil {
		return ErrNothingSelected
	}
	text, err := a.Extractor.ExtractPDF(ctx, p.data)
	if err == nil && strings.TrimSpace(text) == "" {
		err = extract.ErrNoText
	}
	if err != nil {
		if !isCancel(err) {
			a.Log.Warn(ctx, "pdf extraction failed", "file", p.name, "error", err)
			a.notify(ctx, i18n.MsgExtractFailed)
		}
		return err
	}
	a.Nav.PushEditor(navigation.EditorParams{InitialText: text})
	return nil
}

// LinkImport extracts an article from a URL.
type LinkImport struct {
	app *App
}

// LinkImport opens the link import screen.
func (a *App) LinkImport() *LinkImport {
	return &LinkImport{app: a}
}

// Extract fetches the article at rawURL and opens it in the editor. A
// blank URL is ignored. A page without text opens the editor with a
// notice so the user can paste the text.
func (l *LinkImport) Extract(ctx context.Context, rawURL string) error {
	a := l.app
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil
	}

	text, err := a.Extractor.ExtractLink(ctx, rawURL)
	switch {
	case errors.Is(err, extract.ErrNoText):
		text = noContent
	case err != nil:
		if isCancel(err) {
			return err
		}
		a.Log.Warn(ctx, "link extraction failed", "url", rawURL, "error", err)
		if speech.IsRateLimited(err) {
			a.notify(ctx, i18n.MsgExtractLimit)
		} else {
			a.notify(ctx, i18n.MsgExtractFailed)
		}
		return err
	}
	a.Nav.PushEditor(navigation.EditorParams{InitialText: text})
	return nil
}

// OCRScan reads text from a photo and converts it to speech.
type OCRScan struct {
	app  *App
	text string
}

// OCRScan opens the scan screen.
func (a *App) OCRScan() *OCRScan {
	return &OCRScan{app: a}
}

// Scan extracts the text of an image.
func (o *OCRScan) Scan(ctx context.Context, data []byte, mimeType string) error {
	a := o.app
	text, err := a.Extractor.ExtractImage(ctx, data, mimeType)
	if err == nil && strings.TrimSpace(text) == "" {
		err = extract.ErrNoText
	}
	switch {
	case err == nil:
		o.text = text
		return nil
	case isCancel(err):
	case errors.Is(err, extract.ErrNoText):
		a.notify(ctx, i18n.MsgScanNoText)
	case speech.IsRateLimited(err):
		a.notify(ctx, i18n.MsgScanLimit)
	default:
		a.Log.Warn(ctx, "image scan failed", "error", err)
		a.notify(ctx, i18n.MsgScanFailed)
	}
	o.text = ""
	return err
}

// Text returns the scanned text.
func (o *OCRScan) Text() string { return o.text }

// Reset discards the scan.
func (o *OCRScan) Reset() { o.text = "" }

// Edit opens the scanned text in the editor.
func (o *OCRScan) Edit() {
	if o.text != "" {
		o.app.Nav.PushEditor(navigation.EditorParams{InitialText: o.text})
	}
}

// Convert reads the scanned text with a female voice and opens the
// player.
func (o *OCRScan) Convert(ctx context.Context) error {
	a := o.app
	if o.text == "" {
		return ErrNothingSelected
	}
	encoded, err := a.Speech.Generate(ctx, speech.Options{
		Text:     o.text,
		Gender:   audio.Female,
		Language: audio.DetectLanguage(o.text),
	})
	switch {
	case err == nil && encoded == "":
		return ErrNoAudio
	case err == nil:
		a.notify(ctx, i18n.MsgSavedToLibrary)
		a.Nav.PushPlayer(navigation.PlayerParams{AudioBase64: encoded, Text: o.text})
		return nil
	case isCancel(err):
	case speech.IsRateLimited(err):
		a.notify(ctx, i18n.MsgVoiceLimit)
	default:
		a.Log.Warn(ctx, "scan voice generation failed", "error", err)
		a.notify(ctx, i18n.MsgVoiceFailed)
	}
	return err
}
