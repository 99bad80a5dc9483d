package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/educalm/internal"
	"codeberg.org/snonux/educalm/internal/app"
	"codeberg.org/snonux/educalm/internal/archive"
	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/auth"
	"codeberg.org/snonux/educalm/internal/batch"
	"codeberg.org/snonux/educalm/internal/cli"
	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/extract"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/library"
	"codeberg.org/snonux/educalm/internal/logging"
	"codeberg.org/snonux/educalm/internal/models"
	"codeberg.org/snonux/educalm/internal/player"
	"codeberg.org/snonux/educalm/internal/settings"
	"codeberg.org/snonux/educalm/internal/speech"
)

// WatchInterval is how often playback progress is printed
const WatchInterval = 500 * time.Millisecond

var (
	// ErrNotFound is returned for a recording id that is not in the library
	ErrNotFound = errors.New("recording not found")

	errNoGeminiKey = errors.New("reading PDFs and photos requires a Gemini API key")
)

// Processor handles the commands of the educalm CLI
type Processor struct {
	flags  *cli.Flags
	config cli.Config
	app    *app.App
	models *models.Lister
	log    logging.Logger
	out    io.Writer
	closer io.Closer
}

// services are the backends a Processor drives
type services struct {
	store     kv.Store
	provider  audio.Provider
	cache     app.AudioCache
	extractor extract.Extractor
	sink      func() player.Sink
	clock     clock.Clock
	log       logging.Logger
}

// NewProcessor opens the configured storage and creates the speech and
// extraction backends
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	ctx := context.Background()
	config := cli.LoadConfig()
	log := logging.New(os.Stderr, config.Verbose || flags.Verbose)

	if err := os.MkdirAll(filepath.Dir(config.StoragePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	db, err := kv.OpenSQLite(ctx, config.StoragePath)
	if err != nil {
		return nil, err
	}
	var store kv.Store = db
	if config.StoragePrefix != "" {
		store = kv.WithPrefix(db, config.StoragePrefix)
	}

	provider, err := audio.NewProvider(ctx, providerConfig(config), log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	extractor, err := newExtractor(ctx, config, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	var cache app.AudioCache
	if c, ok := provider.(*audio.CachingProvider); ok {
		cache = c
	}

	p := newProcessor(flags, config, services{
		store:     store,
		provider:  provider,
		cache:     cache,
		extractor: extractor,
		sink: func() player.Sink {
			return &player.CommandSink{TempDir: config.CacheDir}
		},
		log: log,
	})
	p.closer = db
	return p, nil
}

func newProcessor(flags *cli.Flags, config cli.Config, svc services) *Processor {
	if svc.clock == nil {
		svc.clock = clock.Real()
	}
	if svc.log == nil {
		svc.log = logging.Discard()
	}

	authOpts := []auth.Option{auth.WithClock(svc.clock), auth.WithLogger(svc.log)}
	libOpts := []library.Option{
		library.WithClock(svc.clock),
		library.WithLogger(svc.log),
		library.WithFailureRate(config.FailureRate),
	}
	if !config.SimulateLatency {
		authOpts = append(authOpts, auth.WithDelays(0, 0))
		libOpts = append(libOpts, library.WithLatency(0, 0))
	}

	settingsStore := settings.New(svc.store, settings.WithLogger(svc.log))
	authStore := auth.New(svc.store, authOpts...)
	lib := library.New(svc.store, authStore.LibraryKey, libOpts...)

	speechConfig := speech.DefaultConfig()
	speechConfig.Retries = config.RetryCount
	if config.RetryBase > 0 {
		speechConfig.BaseDelay = config.RetryBase
	}
	generator := speech.New(svc.provider, settingsStore, lib,
		speech.WithConfig(speechConfig),
		speech.WithClock(svc.clock),
		speech.WithLogger(svc.log),
	)

	p := &Processor{
		flags:  flags,
		config: config,
		models: models.NewLister(config.GeminiKey, config.OpenAIKey),
		log:    svc.log,
		out:    os.Stdout,
	}
	p.app = app.New(app.Deps{
		Store:     svc.store,
		Settings:  settingsStore,
		Auth:      authStore,
		Library:   lib,
		Speech:    generator,
		Cache:     svc.cache,
		Extractor: svc.extractor,
		Player: func(s settings.Settings) *player.Player {
			opts := []player.Option{
				player.WithClock(svc.clock),
				player.WithRate(s.DefaultSpeed),
				player.WithHighlight(s.HighlightTracking),
				player.WithLogger(svc.log),
			}
			if p.flags.Play && svc.sink != nil {
				opts = append(opts, player.WithSink(svc.sink()))
			}
			return player.New(opts...)
		},
		Clock: svc.clock,
		Log:   svc.log,
	})
	p.app.Settings.ApplyCurrent(context.Background())
	return p
}

// providerConfig selects Gemini when its key is set, then OpenAI, and
// the local espeak-ng engine otherwise
func providerConfig(config cli.Config) *audio.Config {
	pc := audio.DefaultProviderConfig()
	pc.GeminiKey = config.GeminiKey
	pc.OpenAIKey = config.OpenAIKey
	if config.TTSModel != "" {
		pc.GeminiModel = config.TTSModel
	}
	pc.Fallback = config.Fallback
	pc.EnableCache = config.EnableCache
	pc.CacheDir = config.CacheDir

	switch {
	case config.GeminiKey != "":
		pc.Provider = "gemini"
	case config.OpenAIKey != "":
		pc.Provider = "openai"
	default:
		pc.Provider = "espeak"
	}
	return pc
}

// newExtractor reads links with Gemini and falls back to local article
// extraction. Without a Gemini key only links can be read.
func newExtractor(ctx context.Context, config cli.Config, log logging.Logger) (extract.Extractor, error) {
	local := extract.NewReadability(&http.Client{Timeout: 30 * time.Second})
	if config.GeminiKey == "" {
		return extract.Combined{Links: local, Documents: noDocuments{}}, nil
	}
	gemini, err := extract.NewGemini(ctx, config.GeminiKey, config.ExtractModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create text extractor: %w", err)
	}
	return extract.Combined{
		Links:     extract.NewLinkWithFallback(gemini, local, log),
		Documents: gemini,
	}, nil
}

type noDocuments struct{}

func (noDocuments) ExtractImage(context.Context, []byte, string) (string, error) {
	return "", errNoGeminiKey
}

func (noDocuments) ExtractPDF(context.Context, []byte) (string, error) {
	return "", errNoGeminiKey
}

// Close releases the storage
func (p *Processor) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// report prints the current navigation message
func (p *Processor) report() {
	if msg := p.app.Nav.Message(); msg != "" {
		fmt.Fprintln(p.out, msg)
	}
}

func (p *Processor) gender() (audio.Gender, error) {
	switch g := audio.Gender(strings.ToLower(p.flags.Gender)); g {
	case "", audio.Female:
		return audio.Female, nil
	case audio.Male:
		return g, nil
	default:
		return "", fmt.Errorf("invalid gender '%s' (use male or female)", p.flags.Gender)
	}
}

// Speak generates speech for text, saves it and optionally plays it
func (p *Processor) Speak(ctx context.Context, text string) error {
	gender, err := p.gender()
	if err != nil {
		return err
	}
	if err := p.generate(ctx, text, gender); err != nil {
		return err
	}
	return p.present(ctx, p.flags.Play)
}

// generate runs text through the editor screen
func (p *Processor) generate(ctx context.Context, text string, gender audio.Gender) error {
	editor := p.app.Editor(ctx)
	if err := editor.SetText(ctx, text); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Generating %s voice for %d words...\n", gender, editor.Words())
	err := editor.Generate(ctx, gender)
	p.report()
	return err
}

// present opens the generated clip in the player, saves it to the
// library and, when play is set, prints progress until it finishes
func (p *Processor) present(ctx context.Context, play bool) error {
	ps, err := p.app.OpenPlayer(ctx)
	if ps != nil {
		defer ps.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to open player: %w", err)
	}
	if !ps.IsSaved() {
		if err := ps.Save(ctx); err != nil {
			return err
		}
		p.report()
	}

	pl := ps.Player()
	snap := pl.Snapshot()
	fmt.Fprintf(p.out, "Duration: %s\n", player.FormatTime(snap.Duration))
	if !play {
		return nil
	}

	words := pl.Words()
	err = pl.Watch(ctx, WatchInterval, func(s player.Snapshot) {
		word := ""
		if s.WordIndex >= 0 && s.WordIndex < len(words) {
			word = words[s.WordIndex]
		}
		fmt.Fprintf(p.out, "\r%s / %s  %-20s", player.FormatTime(s.Position), player.FormatTime(s.Duration), word)
	})
	fmt.Fprintln(p.out)
	return err
}

// SpeakBatch generates speech for every text in file. Texts already in
// the library are skipped.
func (p *Processor) SpeakBatch(ctx context.Context, file string) error {
	entries, err := batch.ReadBatchFile(file)
	if err != nil {
		return err
	}
	defaultGender, err := p.gender()
	if err != nil {
		return err
	}

	saved := make(map[string]bool)
	for _, it := range p.app.Library.GetAll(ctx) {
		saved[it.Text] = true
	}

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Fprintf(p.out, "\nProcessing %d/%d: %s\n", i+1, len(entries), internal.Snippet(entry.Text, 40))
		if saved[entry.Text] {
			fmt.Fprintf(p.out, "  ✓ Skipping - already in library\n")
			skippedCount++
			continue
		}

		gender := entry.Gender
		if gender == "" {
			gender = defaultGender
		}
		err := p.generate(ctx, entry.Text, gender)
		if err == nil {
			err = p.present(ctx, false)
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", internal.Snippet(entry.Text, 40), err)
			errorCount++
			// Continue with next text
			continue
		}
		saved[entry.Text] = true
		processedCount++
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total texts: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", processedCount)
	fmt.Fprintf(p.out, "Skipped (already in library): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
		return fmt.Errorf("%d of %d texts failed", errorCount, len(entries))
	}
	return nil
}

func (p *Processor) printItems(items []library.AudioItem) {
	if len(items) == 0 {
		fmt.Fprintln(p.out, "No recordings found")
		return
	}
	for _, it := range items {
		fmt.Fprintf(p.out, "%-15s %-12s %s\n", it.ID, it.Date, internal.Snippet(it.Text, 60))
	}
}

// ListLibrary prints the library, newest first
func (p *Processor) ListLibrary(ctx context.Context) error {
	p.printItems(p.app.LibraryScreen(ctx).Items())
	return nil
}

// SearchLibrary prints the recordings whose text contains query
func (p *Processor) SearchLibrary(ctx context.Context, query string) error {
	p.printItems(p.app.LibraryScreen(ctx).Search(ctx, query))
	return nil
}

// DeleteFromLibrary removes the recordings with the given ids
func (p *Processor) DeleteFromLibrary(ctx context.Context, ids []string) error {
	screen := p.app.LibraryScreen(ctx)
	known := make(map[string]bool)
	for _, it := range screen.Items() {
		known[it.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if !screen.IsSelected(id) {
			screen.Toggle(id)
		}
	}
	err := screen.DeleteSelected(ctx)
	p.report()
	return err
}

// ExportLibrary writes the library as WAV files into dir
func (p *Processor) ExportLibrary(ctx context.Context, dir string) error {
	index, err := archive.Export(p.app.Library.GetAll(ctx), dir)
	if err != nil {
		return err
	}
	exported := 0
	for _, entry := range index {
		if entry.Skipped {
			fmt.Fprintf(p.out, "  Skipped %s: %s\n", entry.ID, entry.Reason)
			continue
		}
		exported++
	}
	fmt.Fprintf(p.out, "Exported %d recordings to %s\n", exported, dir)
	return nil
}

// ClearLibrary removes the library, the last played clip and the
// speech cache
func (p *Processor) ClearLibrary(ctx context.Context) error {
	cached := 0
	if p.app.Cache != nil {
		cached, _, _ = p.app.Cache.GetCacheStats()
	}
	err := p.app.SettingsScreen().ClearCache(ctx)
	p.report()
	if err == nil && cached > 0 {
		fmt.Fprintf(p.out, "Removed %d cached clips\n", cached)
	}
	return err
}

// GetSetting prints one setting, or all of them when key is empty
func (p *Processor) GetSetting(ctx context.Context, key string) error {
	current := p.app.SettingsScreen().Current(ctx)
	keys := settings.Keys
	if key != "" {
		keys = []string{key}
	}
	for _, k := range keys {
		value, err := current.Value(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "%s = %s\n", k, value)
	}
	return nil
}

// SetSetting parses value and stores it under key
func (p *Processor) SetSetting(ctx context.Context, key, value string) error {
	parsed, err := settings.ParseValue(key, value)
	if err != nil {
		return err
	}
	if err := p.app.Settings.Set(ctx, key, parsed); err != nil {
		return err
	}
	return p.GetSetting(ctx, key)
}

// Login signs in with the Google account
func (p *Processor) Login(ctx context.Context) error {
	err := p.app.Login().Google(ctx)
	p.report()
	return err
}

// Skip continues as guest
func (p *Processor) Skip(ctx context.Context) error {
	err := p.app.Login().Skip(ctx)
	p.report()
	return err
}

// Logout signs out
func (p *Processor) Logout(ctx context.Context) error {
	err := p.app.Profile(ctx).Logout(ctx)
	p.report()
	return err
}

// WhoAmI prints the account and listening statistics
func (p *Processor) WhoAmI(ctx context.Context) error {
	profile := p.app.Profile(ctx)
	switch {
	case !profile.Guest():
		fmt.Fprintf(p.out, "%s <%s>\n", profile.User.DisplayName, profile.User.Email)
	case p.app.Auth.HasSkipped(ctx):
		fmt.Fprintln(p.out, "Guest")
	default:
		fmt.Fprintln(p.out, "Not signed in")
	}
	fmt.Fprintf(p.out, "Saved recordings: %d\n", profile.SavedCount)
	fmt.Fprintf(p.out, "Reading time: %d min\n", profile.ReadingMinutes)
	return nil
}

// ImportLink extracts the article at rawURL
func (p *Processor) ImportLink(ctx context.Context, rawURL string) error {
	err := p.app.LinkImport().Extract(ctx, rawURL)
	p.report()
	if err != nil {
		return err
	}
	return p.edited(ctx)
}

// ImportPDF extracts the text of the PDF at path
func (p *Processor) ImportPDF(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}
	pdf := p.app.PDFImport()
	if err := pdf.Select(ctx, filepath.Base(path), http.DetectContentType(data), data); err != nil {
		p.report()
		return err
	}
	err = pdf.Extract(ctx)
	p.report()
	if err != nil {
		return err
	}
	return p.edited(ctx)
}

// edited prints the text an import opened the editor with and speaks it
// when requested
func (p *Processor) edited(ctx context.Context) error {
	params, ok := p.app.Nav.EditorParams()
	if !ok {
		return nil
	}
	fmt.Fprintln(p.out, params.InitialText)
	if !p.flags.Speak {
		return nil
	}

	gender, err := p.gender()
	if err != nil {
		return err
	}
	err = p.app.Editor(ctx).Generate(ctx, gender)
	p.report()
	if err != nil {
		return err
	}
	return p.present(ctx, p.flags.Play)
}

// ImportScan reads the text in the image at path
func (p *Processor) ImportScan(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	scan := p.app.OCRScan()
	err = scan.Scan(ctx, data, http.DetectContentType(data))
	p.report()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, scan.Text())
	if !p.flags.Speak {
		return nil
	}

	err = scan.Convert(ctx)
	p.report()
	if err != nil {
		return err
	}
	return p.present(ctx, p.flags.Play)
}

// Play plays the saved recording with id
func (p *Processor) Play(ctx context.Context, id string) error {
	screen := p.app.LibraryScreen(ctx)
	for _, it := range screen.Items() {
		if it.ID == id {
			fmt.Fprintln(p.out, internal.Snippet(it.Text, 60))
			screen.Play(it)
			p.flags.Play = true
			return p.present(ctx, true)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListModels prints the models of the configured providers
func (p *Processor) ListModels(ctx context.Context) error {
	return p.models.ListAvailableModels(ctx)
}
