package processor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/educalm/internal/app"
	"codeberg.org/snonux/educalm/internal/archive"
	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/cli"
	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/models"
	"codeberg.org/snonux/educalm/internal/testutil"
)

type fixture struct {
	p         *Processor
	out       *bytes.Buffer
	clock     *clock.Fake
	provider  *testutil.MockProvider
	extractor *testutil.MockExtractor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		out:       &bytes.Buffer{},
		clock:     clock.NewFake(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		provider:  &testutil.MockProvider{},
		extractor: &testutil.MockExtractor{Links: map[string]string{}, Images: map[string]string{}},
	}
	f.p = newProcessor(cli.NewFlags(), cli.Config{}, services{
		store:     kv.NewMemory(),
		provider:  f.provider,
		extractor: f.extractor,
		clock:     f.clock,
	})
	f.p.out = f.out
	return f
}

func (f *fixture) output() string { return f.out.String() }

func TestSpeak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.Speak(ctx, "Hello world"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	items := f.p.app.Library.GetAll(ctx)
	if len(items) != 1 || items[0].Text != "Hello world" {
		t.Fatalf("Expected one saved recording, got %+v", items)
	}
	for _, want := range []string{"Generating female voice for 2 words", "Duration:"} {
		if !strings.Contains(f.output(), want) {
			t.Errorf("Output missing %q:\n%s", want, f.output())
		}
	}
}

func TestSpeak_InvalidGender(t *testing.T) {
	f := newFixture(t)
	f.p.flags.Gender = "robot"

	if err := f.p.Speak(context.Background(), "Hello"); err == nil {
		t.Error("Expected error for invalid gender")
	}
	if len(f.provider.Calls) != 0 {
		t.Errorf("Expected no provider calls, got %d", len(f.provider.Calls))
	}
}

func TestSpeak_ProviderError(t *testing.T) {
	f := newFixture(t)
	f.provider.Errors = map[string]error{"Broken": errors.New("boom")}

	if err := f.p.Speak(context.Background(), "Broken"); err == nil {
		t.Fatal("Expected generation error")
	}
	if n := len(f.p.app.Library.GetAll(context.Background())); n != 0 {
		t.Errorf("Expected empty library, got %d items", n)
	}
}

func TestSpeakBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tmpDir := t.TempDir()
	batchFile := filepath.Join(tmpDir, "texts.txt")
	testutil.CreateTestFile(t, batchFile, []byte("# lesson one\nThe water cycle\nmale = Photosynthesis\n"))

	if err := f.p.SpeakBatch(ctx, batchFile); err != nil {
		t.Fatalf("SpeakBatch failed: %v", err)
	}
	if n := len(f.p.app.Library.GetAll(ctx)); n != 2 {
		t.Fatalf("Expected 2 saved recordings, got %d", n)
	}
	if len(f.provider.Calls) != 2 {
		t.Fatalf("Expected 2 provider calls, got %d", len(f.provider.Calls))
	}
	if f.provider.Calls[0].Gender != audio.Female || f.provider.Calls[1].Gender != audio.Male {
		t.Errorf("Unexpected genders: %s, %s", f.provider.Calls[0].Gender, f.provider.Calls[1].Gender)
	}

	// A second run skips what is already saved
	f.out.Reset()
	if err := f.p.SpeakBatch(ctx, batchFile); err != nil {
		t.Fatalf("Second SpeakBatch failed: %v", err)
	}
	if !strings.Contains(f.output(), "Skipped (already in library): 2") {
		t.Errorf("Expected both texts to be skipped:\n%s", f.output())
	}
	if len(f.provider.Calls) != 2 {
		t.Errorf("Expected no new provider calls, got %d", len(f.provider.Calls))
	}
}

func TestSpeakBatch_Errors(t *testing.T) {
	f := newFixture(t)
	f.provider.Errors = map[string]error{"Second": errors.New("boom")}

	batchFile := filepath.Join(t.TempDir(), "texts.txt")
	testutil.CreateTestFile(t, batchFile, []byte("First\nSecond\nThird\n"))

	err := f.p.SpeakBatch(context.Background(), batchFile)
	if err == nil {
		t.Fatal("Expected error summary")
	}
	if !strings.Contains(f.output(), "Errors: 1") {
		t.Errorf("Expected one error in summary:\n%s", f.output())
	}
	if n := len(f.p.app.Library.GetAll(context.Background())); n != 2 {
		t.Errorf("Expected 2 saved recordings, got %d", n)
	}
}

func TestSpeakBatch_InvalidFile(t *testing.T) {
	f := newFixture(t)
	if err := f.p.SpeakBatch(context.Background(), "/non/existent/file.txt"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestListAndSearchLibrary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.ListLibrary(ctx); err != nil {
		t.Fatalf("ListLibrary failed: %v", err)
	}
	if !strings.Contains(f.output(), "No recordings found") {
		t.Errorf("Expected empty library notice:\n%s", f.output())
	}

	if err := f.p.Speak(ctx, "Cells divide by mitosis"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	f.clock.Advance(time.Second)
	if err := f.p.Speak(ctx, "Rivers flow to the sea"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	f.out.Reset()
	if err := f.p.SearchLibrary(ctx, "mitosis"); err != nil {
		t.Fatalf("SearchLibrary failed: %v", err)
	}
	if !strings.Contains(f.output(), "Cells divide") || strings.Contains(f.output(), "Rivers") {
		t.Errorf("Unexpected search output:\n%s", f.output())
	}
}

func TestDeleteFromLibrary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.Speak(ctx, "First"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	f.clock.Advance(time.Second)
	if err := f.p.Speak(ctx, "Second"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	items := f.p.app.Library.GetAll(ctx)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	f.out.Reset()
	if err := f.p.DeleteFromLibrary(ctx, []string{items[0].ID}); err != nil {
		t.Fatalf("DeleteFromLibrary failed: %v", err)
	}
	if !strings.Contains(f.output(), "Recording deleted") {
		t.Errorf("Expected delete message:\n%s", f.output())
	}
	left := f.p.app.Library.GetAll(ctx)
	if len(left) != 1 || left[0].ID != items[1].ID {
		t.Errorf("Unexpected library after delete: %+v", left)
	}

	if err := f.p.DeleteFromLibrary(ctx, []string{"missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestExportLibrary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.Speak(ctx, "Export me"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	dir := filepath.Join(testutil.CreateTestDirectory(t), "export")
	if err := f.p.ExportLibrary(ctx, dir); err != nil {
		t.Fatalf("ExportLibrary failed: %v", err)
	}
	testutil.AssertFileExists(t, filepath.Join(dir, archive.IndexFile))
	if !strings.Contains(f.output(), "Exported 1 recordings") {
		t.Errorf("Unexpected export output:\n%s", f.output())
	}
}

func TestClearLibrary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.Speak(ctx, "Temporary"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if err := f.p.ClearLibrary(ctx); err != nil {
		t.Fatalf("ClearLibrary failed: %v", err)
	}
	if n := len(f.p.app.Library.GetAll(ctx)); n != 0 {
		t.Errorf("Expected empty library, got %d items", n)
	}
	if f.p.app.Library.GetLastPlayed(ctx) != nil {
		t.Error("Expected last played to be cleared")
	}
	if !strings.Contains(f.output(), "Cache cleared successfully") {
		t.Errorf("Expected clear message:\n%s", f.output())
	}
}

func TestClearLibraryRemovesSpeechCache(t *testing.T) {
	ctx := context.Background()
	cacheDir := filepath.Join(testutil.CreateTestDirectory(t), "cache")
	cached, err := audio.NewCachingProvider(&testutil.MockProvider{}, cacheDir)
	if err != nil {
		t.Fatalf("NewCachingProvider failed: %v", err)
	}

	out := &bytes.Buffer{}
	p := newProcessor(cli.NewFlags(), cli.Config{}, services{
		store:     kv.NewMemory(),
		provider:  cached,
		cache:     cached,
		extractor: &testutil.MockExtractor{},
		clock:     clock.NewFake(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	})
	p.out = out

	if err := p.Speak(ctx, "Cache this clip"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if count, _, _ := cached.GetCacheStats(); count != 1 {
		t.Fatalf("Expected 1 cached clip, got %d", count)
	}

	if err := p.ClearLibrary(ctx); err != nil {
		t.Fatalf("ClearLibrary failed: %v", err)
	}
	testutil.AssertFileNotExists(t, cacheDir)
	if !strings.Contains(out.String(), "Removed 1 cached clips") {
		t.Errorf("Expected cache removal notice:\n%s", out.String())
	}
}

func TestSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.SetSetting(ctx, "defaultSpeed", "1.5"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if !strings.Contains(f.output(), "defaultSpeed = 1.5") {
		t.Errorf("Unexpected output:\n%s", f.output())
	}

	f.out.Reset()
	if err := f.p.GetSetting(ctx, ""); err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	for _, want := range []string{"themeMode = light", "autoSaveAudio = false", "defaultSpeed = 1.5"} {
		if !strings.Contains(f.output(), want) {
			t.Errorf("Output missing %q:\n%s", want, f.output())
		}
	}

	if err := f.p.SetSetting(ctx, "volume", "11"); err == nil {
		t.Error("Expected error for unknown setting")
	}
	if err := f.p.SetSetting(ctx, "autoSaveAudio", "maybe"); err == nil {
		t.Error("Expected error for invalid boolean")
	}
}

func TestAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.p.WhoAmI(ctx); err != nil {
		t.Fatalf("WhoAmI failed: %v", err)
	}
	if !strings.Contains(f.output(), "Not signed in") {
		t.Errorf("Expected signed out state:\n%s", f.output())
	}

	f.out.Reset()
	if err := f.p.Login(ctx); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := f.p.WhoAmI(ctx); err != nil {
		t.Fatalf("WhoAmI failed: %v", err)
	}
	for _, want := range []string{"Logged in with Google", "Google User <user@gmail.com>"} {
		if !strings.Contains(f.output(), want) {
			t.Errorf("Output missing %q:\n%s", want, f.output())
		}
	}

	f.out.Reset()
	if err := f.p.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if !strings.Contains(f.output(), "Signed out successfully") {
		t.Errorf("Expected sign out message:\n%s", f.output())
	}

	f.out.Reset()
	if err := f.p.Skip(ctx); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if err := f.p.WhoAmI(ctx); err != nil {
		t.Fatalf("WhoAmI failed: %v", err)
	}
	if !strings.Contains(f.output(), "Guest") {
		t.Errorf("Expected guest state:\n%s", f.output())
	}
}

func TestImportLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.extractor.Links["https://example.com/article"] = "An article about tides"

	if err := f.p.ImportLink(ctx, "https://example.com/article"); err != nil {
		t.Fatalf("ImportLink failed: %v", err)
	}
	if !strings.Contains(f.output(), "An article about tides") {
		t.Errorf("Expected extracted text:\n%s", f.output())
	}
	if len(f.provider.Calls) != 0 {
		t.Errorf("Expected no speech without --speak, got %d calls", len(f.provider.Calls))
	}

	f.p.flags.Speak = true
	if err := f.p.ImportLink(ctx, "https://example.com/article"); err != nil {
		t.Fatalf("ImportLink with speak failed: %v", err)
	}
	items := f.p.app.Library.GetAll(ctx)
	if len(items) != 1 || items[0].Text != "An article about tides" {
		t.Errorf("Expected article in library, got %+v", items)
	}
}

func TestImportLink_Failure(t *testing.T) {
	f := newFixture(t)
	f.extractor.Err = errors.New("network down")

	if err := f.p.ImportLink(context.Background(), "https://example.com"); err == nil {
		t.Error("Expected extraction error")
	}
	if !strings.Contains(f.output(), "Failed to extract article text") {
		t.Errorf("Expected failure message:\n%s", f.output())
	}
}

func TestImportPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.extractor.PDF = "Chapter one text"

	tmpDir := t.TempDir()
	pdfFile := filepath.Join(tmpDir, "notes.pdf")
	testutil.CreateTestFile(t, pdfFile, []byte("%PDF-1.4\n%fake document\n"))

	if err := f.p.ImportPDF(ctx, pdfFile); err != nil {
		t.Fatalf("ImportPDF failed: %v", err)
	}
	if !strings.Contains(f.output(), "Chapter one text") {
		t.Errorf("Expected extracted text:\n%s", f.output())
	}

	textFile := filepath.Join(tmpDir, "notes.txt")
	testutil.CreateTestFile(t, textFile, []byte("plain text"))
	if err := f.p.ImportPDF(ctx, textFile); !errors.Is(err, app.ErrInvalidPDF) {
		t.Errorf("Expected ErrInvalidPDF, got %v", err)
	}

	if err := f.p.ImportPDF(ctx, filepath.Join(tmpDir, "missing.pdf")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestImportScan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.extractor.Images["image/png"] = "Text on the whiteboard"
	f.p.flags.Speak = true

	imageFile := filepath.Join(t.TempDir(), "board.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")
	if err := os.WriteFile(imageFile, png, 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	if err := f.p.ImportScan(ctx, imageFile); err != nil {
		t.Fatalf("ImportScan failed: %v", err)
	}
	if !strings.Contains(f.output(), "Text on the whiteboard") {
		t.Errorf("Expected scanned text:\n%s", f.output())
	}
	if n := len(f.p.app.Library.GetAll(ctx)); n != 1 {
		t.Errorf("Expected scanned text in library, got %d items", n)
	}
	if len(f.provider.Calls) != 1 || f.provider.Calls[0].Gender != audio.Female {
		t.Errorf("Expected one female voice call, got %+v", f.provider.Calls)
	}
}

func TestPlay_NotFound(t *testing.T) {
	f := newFixture(t)
	if err := f.p.Play(context.Background(), "1234"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListModels_NoKeys(t *testing.T) {
	f := newFixture(t)
	if err := f.p.ListModels(context.Background()); !errors.Is(err, models.ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got %v", err)
	}
}

func TestProviderConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   cli.Config
		provider string
	}{
		{"gemini", cli.Config{GeminiKey: "g", OpenAIKey: "o"}, "gemini"},
		{"openai", cli.Config{OpenAIKey: "o"}, "openai"},
		{"offline", cli.Config{}, "espeak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := providerConfig(tt.config)
			if pc.Provider != tt.provider {
				t.Errorf("Expected provider %s, got %s", tt.provider, pc.Provider)
			}
		})
	}

	pc := providerConfig(cli.Config{})
	if pc.GeminiModel != "gemini-2.5-flash-preview-tts" {
		t.Errorf("Expected default model, got %s", pc.GeminiModel)
	}
}

func TestProviderConfig_ModelFromConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// The root command binds --tts-model with its default to tts.model
	cli.CreateRootCommand(cli.NewFlags(), nil)

	cfgFile := filepath.Join(t.TempDir(), "educalm.yaml")
	testutil.CreateTestFile(t, cfgFile, []byte("tts:\n  model: gemini-2.5-pro-preview-tts\n"))
	cli.InitConfig(cfgFile)

	pc := providerConfig(cli.LoadConfig())
	if pc.GeminiModel != "gemini-2.5-pro-preview-tts" {
		t.Errorf("Expected model from config file, got %s", pc.GeminiModel)
	}
}

func TestProviderConfig_ModelFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("EDUCALM_TTS_MODEL", "gemini-2.5-pro-preview-tts")

	cli.CreateRootCommand(cli.NewFlags(), nil)
	cli.InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	pc := providerConfig(cli.LoadConfig())
	if pc.GeminiModel != "gemini-2.5-pro-preview-tts" {
		t.Errorf("Expected model from environment, got %s", pc.GeminiModel)
	}
}

func TestNewExtractor_WithoutKey(t *testing.T) {
	ex, err := newExtractor(context.Background(), cli.Config{}, nil)
	if err != nil {
		t.Fatalf("newExtractor failed: %v", err)
	}
	if _, err := ex.ExtractPDF(context.Background(), []byte("%PDF")); !errors.Is(err, errNoGeminiKey) {
		t.Errorf("Expected errNoGeminiKey, got %v", err)
	}
}
