package app

import (
	"context"
	"strings"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/navigation"
	"codeberg.org/snonux/educalm/internal/speech"
)

// DraftKey holds the unsent editor text.
const DraftKey = "educalm_editor_draft"

// Editor is the text entry screen.
type Editor struct {
	app  *App
	text string
}

// Editor opens the editor with the text handed over by the previous
// screen, or else the stored draft.
func (a *App) Editor(ctx context.Context) *Editor {
	e := &Editor{app: a}
	if p, ok := a.Nav.EditorParams(); ok && p.InitialText != "" {
		e.text = p.InitialText
		return e
	}
	raw, ok, err := a.Store.Get(ctx, DraftKey)
	switch {
	case err != nil:
		a.Log.Warn(ctx, "failed to read editor draft", "error", err)
	case ok:
		e.text = string(raw)
	}
	return e
}

// Text returns the edited text.
func (e *Editor) Text() string { return e.text }

// SetText replaces the text and persists it as the draft.
func (e *Editor) SetText(ctx context.Context, text string) error {
	e.text = text
	return e.app.Store.Set(ctx, DraftKey, []byte(text))
}

// RTL reports whether the text reads right to left.
func (e *Editor) RTL() bool { return audio.IsRTL(e.text) }

// Words returns the word count.
func (e *Editor) Words() int { return len(strings.Fields(e.text)) }

// Generate converts the text with a voice of gender and opens the
// player. Failures are reported through the navigation message.
func (e *Editor) Generate(ctx context.Context, gender audio.Gender) error {
	a := e.app
	t := a.translations(ctx)
	if strings.TrimSpace(e.text) == "" {
		a.Nav.ShowMessage(t.T(i18n.KeySearchPlaceholder))
		return audio.ErrEmptyText
	}

	encoded, err := a.Speech.Generate(ctx, speech.Options{
		Text:     e.text,
		Gender:   gender,
		Language: audio.DetectLanguage(e.text),
	})
	if isCancel(err) {
		return err
	}
	if err != nil || encoded == "" {
		a.Log.Warn(ctx, "editor generation failed", "error", err)
		a.notify(ctx, i18n.MsgGenerationFailed)
		if err == nil {
			err = ErrNoAudio
		}
		return err
	}
	a.Nav.PushPlayer(navigation.PlayerParams{AudioBase64: encoded, Text: e.text})
	return nil
}
