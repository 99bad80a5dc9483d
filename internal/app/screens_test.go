package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/extract"
	"codeberg.org/snonux/educalm/internal/navigation"
	"codeberg.org/snonux/educalm/internal/player"
	"codeberg.org/snonux/educalm/internal/settings"
)

func TestEditorPrefersInitialTextOverDraft(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(f.ctx, DraftKey, []byte("my draft")))

	assert.Equal(t, "my draft", f.app.Editor(f.ctx).Text())

	f.app.Nav.PushEditor(navigation.EditorParams{InitialText: "from link"})
	assert.Equal(t, "from link", f.app.Editor(f.ctx).Text())
}

func TestEditorSetTextPersistsDraft(t *testing.T) {
	f := newFixture(t)
	e := f.app.Editor(f.ctx)
	require.NoError(t, e.SetText(f.ctx, "مرحبا بالعالم"))
	assert.True(t, e.RTL())
	assert.Equal(t, 2, e.Words())

	raw, ok, err := f.store.Get(f.ctx, DraftKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "مرحبا بالعالم", string(raw))
}

func TestEditorGenerate(t *testing.T) {
	f := newFixture(t)
	e := f.app.Editor(f.ctx)

	require.ErrorIs(t, e.Generate(f.ctx, audio.Male), audio.ErrEmptyText)
	assert.Equal(t, "Search Library", f.app.Nav.Message())
	assert.Zero(t, f.speaker.CallCount())

	require.NoError(t, e.SetText(f.ctx, "Hello world"))
	require.NoError(t, e.Generate(f.ctx, audio.Male))
	assert.Equal(t, navigation.Player, f.app.Nav.Current())
	p, ok := f.app.Nav.PlayerParams()
	require.True(t, ok)
	assert.Equal(t, "Hello world", p.Text)
	assert.NotEmpty(t, p.AudioBase64)
	assert.Equal(t, audio.Male, f.speaker.Calls[0].Gender)
}

func TestEditorGenerateFailure(t *testing.T) {
	f := newFixture(t)
	f.speaker.Errors = map[string]error{"Hello": errors.New("boom")}
	e := f.app.Editor(f.ctx)
	require.NoError(t, e.SetText(f.ctx, "Hello"))

	require.Error(t, e.Generate(f.ctx, audio.Female))
	assert.Equal(t, "Generation failed. Please try again.", f.app.Nav.Message())
	assert.Equal(t, navigation.Splash, f.app.Nav.Current())

	f.speaker.Errors = nil
	f.speaker.Responses = map[string]string{"Hello": ""}
	require.ErrorIs(t, e.Generate(f.ctx, audio.Female), ErrNoAudio)
}

func TestPDFImport(t *testing.T) {
	f := newFixture(t)
	f.extractor.PDF = "Chapter one"
	p := f.app.PDFImport()

	require.ErrorIs(t, p.Extract(f.ctx), ErrNothingSelected)
	require.ErrorIs(t, p.Select(f.ctx, "notes.txt", "text/plain", []byte("x")), ErrInvalidPDF)
	assert.Equal(t, "Please select a valid PDF file", f.app.Nav.Message())
	assert.Empty(t, p.Selected())

	require.NoError(t, p.Select(f.ctx, "notes.pdf", extract.PDFMimeType, []byte("%PDF-1.4")))
	assert.Equal(t, "notes.pdf", p.Selected())
	require.NoError(t, p.Extract(f.ctx))
	params, ok := f.app.Nav.EditorParams()
	require.True(t, ok)
	assert.Equal(t, "Chapter one", params.InitialText)
}

func TestPDFImportEmptyIsFailure(t *testing.T) {
	f := newFixture(t)
	p := f.app.PDFImport()
	require.NoError(t, p.Select(f.ctx, "blank.pdf", extract.PDFMimeType, []byte("%PDF")))
	require.ErrorIs(t, p.Extract(f.ctx), extract.ErrNoText)
	assert.Equal(t, navigation.Splash, f.app.Nav.Current())
}

func TestLinkImport(t *testing.T) {
	f := newFixture(t)
	f.extractor.Links = map[string]string{"https://example.com/a": "Article body"}
	l := f.app.LinkImport()

	require.NoError(t, l.Extract(f.ctx, "  "))
	assert.Empty(t, f.extractor.Calls)

	require.NoError(t, l.Extract(f.ctx, "https://example.com/a"))
	params, _ := f.app.Nav.EditorParams()
	assert.Equal(t, "Article body", params.InitialText)

	require.NoError(t, l.Extract(f.ctx, "https://example.com/empty"))
	params, _ = f.app.Nav.EditorParams()
	assert.Equal(t, noContent, params.InitialText)
}

func TestLinkImportErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limited", errors.New("Error 429: RESOURCE_EXHAUSTED"), "Extraction limit reached. Please wait a moment and try again."},
		{"other", errors.New("connection reset"), "Failed to extract article text. Try copying the text manually."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.extractor.Err = tt.err
			require.Error(t, f.app.LinkImport().Extract(f.ctx, "https://example.com"))
			assert.Equal(t, tt.want, f.app.Nav.Message())
			assert.Equal(t, 1, f.app.Nav.Depth())
		})
	}
}

func TestOCRScan(t *testing.T) {
	f := newFixture(t)
	f.extractor.Images = map[string]string{"image/png": "Text on a page"}
	o := f.app.OCRScan()

	require.NoError(t, o.Scan(f.ctx, []byte{0x89, 'P', 'N', 'G'}, "image/png"))
	assert.Equal(t, "Text on a page", o.Text())
	assert.Equal(t, "IMAGE image/png (4 bytes)", f.extractor.Calls[0])

	require.NoError(t, o.Convert(f.ctx))
	assert.Equal(t, "Saved to Library", f.app.Nav.Message())
	assert.Equal(t, navigation.Player, f.app.Nav.Current())
	assert.Equal(t, audio.Female, f.speaker.Calls[0].Gender)

	o.Edit()
	params, _ := f.app.Nav.EditorParams()
	assert.Equal(t, "Text on a page", params.InitialText)

	o.Reset()
	require.ErrorIs(t, o.Convert(f.ctx), ErrNothingSelected)
}

func TestOCRScanErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no text", nil, "No text found in image. Please try again."},
		{"rate limited", errors.New("429 Too Many Requests"), "Daily limit reached. Please try again in a few minutes."},
		{"other", errors.New("dial tcp: timeout"), "Scan failed. Please check your connection."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.extractor.Err = tt.err
			require.Error(t, f.app.OCRScan().Scan(f.ctx, []byte("jpg"), "image/jpeg"))
			assert.Equal(t, tt.want, f.app.Nav.Message())
		})
	}
}

func TestOCRConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limited", errors.New("speech generation failed: quota exceeded"), "Voice limit reached. Please wait a moment before trying again."},
		{"other", errors.New("speech generation failed: bad gateway"), "Voice generation failed."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.extractor.Images = map[string]string{"image/png": "scanned"}
			f.speaker.Errors = map[string]error{"scanned": tt.err}
			o := f.app.OCRScan()
			require.NoError(t, o.Scan(f.ctx, []byte("png"), "image/png"))
			require.Error(t, o.Convert(f.ctx))
			assert.Equal(t, tt.want, f.app.Nav.Message())
		})
	}
}

func TestOpenPlayerRequiresParams(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.OpenPlayer(f.ctx)
	require.ErrorIs(t, err, ErrNothingSelected)
}

func TestOpenPlayerRecordsLastPlayed(t *testing.T) {
	f := newFixture(t)
	f.app.Nav.PushPlayer(navigation.PlayerParams{AudioBase64: "AAAA", Text: "hello there"})

	ps, err := f.app.OpenPlayer(f.ctx)
	require.NoError(t, err)
	defer ps.Close()

	assert.False(t, ps.IsSaved())
	last := f.app.Library.GetLastPlayed(f.ctx)
	require.NotNil(t, last)
	assert.Equal(t, "hello there", last.Text)
	assert.Empty(t, f.app.Library.GetAll(f.ctx))
	assert.Equal(t, player.Playing, ps.Player().Snapshot().State)
	assert.Equal(t, []string{"hello", "there"}, ps.Player().Words())

	require.NoError(t, ps.Save(f.ctx))
	assert.Equal(t, "Saved", f.app.Nav.Message())
	assert.True(t, ps.IsSaved())
	require.NoError(t, ps.Save(f.ctx))
	assert.Equal(t, "Already saved", f.app.Nav.Message())
}

func TestOpenPlayerAutoSaves(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Settings.Set(f.ctx, settings.KeyAutoSaveAudio, true))
	f.app.Nav.PushPlayer(navigation.PlayerParams{AudioBase64: "AAAA", Text: "hi"})

	ps, err := f.app.OpenPlayer(f.ctx)
	require.NoError(t, err)
	assert.True(t, ps.IsSaved())
	assert.Len(t, f.app.Library.GetAll(f.ctx), 1)
	assert.False(t, ps.RTL())
}
