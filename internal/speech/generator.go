package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/library"
	"codeberg.org/snonux/educalm/internal/logging"
	"codeberg.org/snonux/educalm/internal/settings"
)

const promptFormat = "Please read this %s text clearly and naturally with the correct pronunciation: %s"

// Options is one generation request.
type Options struct {
	Text   string
	Gender audio.Gender
	// Language is the detected language hint. It is used only while
	// automatic language detection is enabled.
	Language i18n.Language
}

// SettingsSource provides the current settings.
type SettingsSource interface {
	Get(ctx context.Context) settings.Settings
}

// Saver stores generated clips.
type Saver interface {
	SaveItem(ctx context.Context, item library.AudioItem) (bool, error)
}

// Config tunes retries and the circuit breaker.
type Config struct {
	Retries         uint64
	BaseDelay       time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultConfig returns three retries starting at two seconds and a
// breaker that opens for 30 s after five consecutive failures.
func DefaultConfig() Config {
	return Config{
		Retries:         3,
		BaseDelay:       2 * time.Second,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
	}
}

// Generator produces speech for educalm texts.
type Generator struct {
	provider audio.Provider
	settings SettingsSource
	library  Saver
	clock    clock.Clock
	log      logging.Logger
	cfg      Config
	breaker  *gobreaker.CircuitBreaker
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig overrides the retry and breaker configuration.
func WithConfig(cfg Config) Option {
	return func(g *Generator) { g.cfg = cfg }
}

// WithClock sets the clock used to stamp saved items.
func WithClock(c clock.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New returns a Generator. lib may be nil to disable auto-save.
func New(provider audio.Provider, src SettingsSource, lib Saver, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		settings: src,
		library:  lib,
		clock:    clock.Real(),
		log:      logging.Discard(),
		cfg:      DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "speech:" + provider.Name(),
		Timeout: g.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= g.cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			// Only outages count toward tripping
			return err == nil || IsRateLimited(err) || errors.Is(err, audio.ErrEmptyText) ||
				errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.Warn(context.Background(), "circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return g
}

// Prompt returns the reading instruction sent with text.
func Prompt(lang i18n.Language, text string) string {
	return fmt.Sprintf(promptFormat, lang, text)
}

// Language resolves the language a request is read in.
func (g *Generator) Language(ctx context.Context, opts Options) i18n.Language {
	s := g.settings.Get(ctx)
	if !s.AutoLanguageDetect {
		return s.Language
	}
	if opts.Language != "" {
		return opts.Language
	}
	return audio.DetectLanguage(opts.Text)
}

// Generate returns the base64 encoded PCM for opts.Text. An empty string
// with a nil error means the provider returned no audio. Generated audio
// is saved to the library; an identical clip already stored is not an
// error.
func (g *Generator) Generate(ctx context.Context, opts Options) (string, error) {
	if err := audio.ValidateText(opts.Text); err != nil {
		return "", err
	}

	lang := g.Language(ctx, opts)
	req := audio.Request{
		Text:        opts.Text,
		Language:    lang,
		Gender:      opts.Gender,
		Instruction: Prompt(lang, opts.Text),
	}

	pcm, err := g.call(ctx, req)
	if err != nil {
		return "", err
	}
	if len(pcm) == 0 {
		g.log.Warn(ctx, "provider returned no audio", "provider", g.provider.Name())
		return "", nil
	}

	encoded := base64.StdEncoding.EncodeToString(pcm)
	g.log.Info(ctx, "speech generated", "provider", g.provider.Name(), "bytes", len(pcm), "language", lang, "gender", opts.Gender)

	if g.library != nil {
		item := library.NewItem(opts.Text, encoded, g.clock.Now())
		saved, err := g.library.SaveItem(ctx, item)
		switch {
		case ctx.Err() != nil:
			return "", ctx.Err()
		case err != nil:
			g.log.Warn(ctx, "failed to save generated clip", "error", err)
		case !saved:
			g.log.Debug(ctx, "generated clip already in library")
		}
	}
	return encoded, nil
}

// call runs the provider through the breaker, retrying rate-limit
// failures with exponential backoff. Backoff delays wait on the
// generator's clock.
func (g *Generator) call(ctx context.Context, req audio.Request) ([]byte, error) {
	backoff := retry.WithMaxRetries(g.cfg.Retries, retry.NewExponential(g.cfg.BaseDelay))

	for attempt := 1; ; attempt++ {
		out, err := g.breaker.Execute(func() (interface{}, error) {
			return g.provider.GenerateSpeech(ctx, req)
		})
		if err == nil {
			pcm, _ := out.([]byte)
			return pcm, nil
		}
		if !IsRateLimited(err) {
			return nil, fmt.Errorf("speech generation failed: %w", err)
		}
		delay, stop := backoff.Next()
		if stop {
			return nil, fmt.Errorf("speech generation failed: %w", err)
		}
		g.log.Warn(ctx, "quota exceeded, retrying", "attempt", attempt, "delay", delay, "error", err)
		if err := clock.Sleep(ctx, g.clock, delay); err != nil {
			return nil, err
		}
	}
}

// BreakerState reports the circuit breaker state, for diagnostics.
func (g *Generator) BreakerState() gobreaker.State {
	return g.breaker.State()
}
