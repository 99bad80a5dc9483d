package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/logging"
)

// StorageKey is the key the settings record lives under.
const StorageKey = "educalm_app_settings"

const recordVersion = 1

var (
	// ErrUnknownKey is returned by Set for a name that is not a setting.
	ErrUnknownKey = errors.New("unknown setting")
	// ErrInvalidValue is returned by Set for a value of the wrong type.
	ErrInvalidValue = errors.New("invalid setting value")
)

// ThemeMode selects the color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Setting names accepted by Set.
const (
	KeyThemeMode          = "themeMode"
	KeyLanguage           = "language"
	KeyAutoLanguageDetect = "autoLanguageDetect"
	KeyHighlightTracking  = "highlightTracking"
	KeyAutoSaveAudio      = "autoSaveAudio"
	KeyDefaultSpeed       = "defaultSpeed"
)

// Keys lists every setting name in display order.
var Keys = []string{
	KeyThemeMode,
	KeyLanguage,
	KeyAutoLanguageDetect,
	KeyHighlightTracking,
	KeyAutoSaveAudio,
	KeyDefaultSpeed,
}

// Settings is the persisted application configuration.
type Settings struct {
	ThemeMode          ThemeMode     `json:"themeMode"`
	Language           i18n.Language `json:"language"`
	AutoLanguageDetect bool          `json:"autoLanguageDetect"`
	HighlightTracking  bool          `json:"highlightTracking"`
	AutoSaveAudio      bool          `json:"autoSaveAudio"`
	DefaultSpeed       float64       `json:"defaultSpeed"`
}

// Defaults returns the settings used when nothing is stored.
func Defaults() Settings {
	return Settings{
		ThemeMode:          ThemeLight,
		Language:           i18n.English,
		AutoLanguageDetect: true,
		HighlightTracking:  true,
		AutoSaveAudio:      false,
		DefaultSpeed:       1.0,
	}
}

// Applier receives the presentation side effects of a settings change.
type Applier interface {
	ApplyTheme(mode ThemeMode, dark bool)
	ApplyLanguage(lang i18n.Language, dir i18n.Direction)
}

type nopApplier struct{}

func (nopApplier) ApplyTheme(ThemeMode, bool)                  {}
func (nopApplier) ApplyLanguage(i18n.Language, i18n.Direction) {}

// Store reads and writes Settings through a kv.Store.
type Store struct {
	kv          kv.Store
	log         logging.Logger
	applier     Applier
	prefersDark func() bool

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithApplier sets the receiver of theme and language changes.
func WithApplier(a Applier) Option {
	return func(s *Store) { s.applier = a }
}

// WithPrefersDark sets the probe used to resolve the system theme.
func WithPrefersDark(f func() bool) Option {
	return func(s *Store) { s.prefersDark = f }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store over store.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:          store,
		log:         logging.Discard(),
		applier:     nopApplier{},
		prefersDark: func() bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored settings merged over the defaults. It never
// fails: unreadable or corrupt data yields the defaults.
func (s *Store) Get(ctx context.Context) Settings {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read settings", "error", err)
		return Defaults()
	}
	if !ok {
		return Defaults()
	}
	return decode(raw)
}

// decode accepts the versioned envelope and the legacy bare object. Both
// are partial: absent fields keep their default.
func decode(raw []byte) Settings {
	out := Defaults()
	if kv.Decode(raw, recordVersion, &out) {
		return out
	}
	out = Defaults()
	if err := json.Unmarshal(raw, &out); err != nil {
		return Defaults()
	}
	return out
}

// Set updates a single setting and persists the full record. Changing
// the theme or the language also notifies the Applier.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.Get(ctx)
	if err := assign(&cur, key, value); err != nil {
		return err
	}
	if err := kv.Save(ctx, s.kv, StorageKey, recordVersion, cur); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Debug(ctx, "setting updated", "key", key, "value", value)

	switch key {
	case KeyThemeMode:
		s.applyTheme(cur.ThemeMode)
	case KeyLanguage:
		s.applyLanguage(cur.Language)
	}
	return nil
}

// ApplyCurrent pushes the stored theme and language to the Applier.
func (s *Store) ApplyCurrent(ctx context.Context) Settings {
	cur := s.Get(ctx)
	s.applyTheme(cur.ThemeMode)
	s.applyLanguage(cur.Language)
	return cur
}

// IsDark resolves mode to a dark or light scheme.
func (s *Store) IsDark(mode ThemeMode) bool {
	return mode == ThemeDark || (mode == ThemeSystem && s.prefersDark())
}

func (s *Store) applyTheme(mode ThemeMode) {
	s.applier.ApplyTheme(mode, s.IsDark(mode))
}

func (s *Store) applyLanguage(lang i18n.Language) {
	s.applier.ApplyLanguage(lang, i18n.DirectionOf(lang))
}

func assign(cur *Settings, key string, value any) error {
	switch key {
	case KeyThemeMode:
		switch v := value.(type) {
		case ThemeMode:
			cur.ThemeMode = v
		case string:
			cur.ThemeMode = ThemeMode(v)
		default:
			return fmt.Errorf("%w: %s wants a string, got %T", ErrInvalidValue, key, value)
		}
	case KeyLanguage:
		switch v := value.(type) {
		case i18n.Language:
			cur.Language = v
		case string:
			cur.Language = i18n.Language(v)
		default:
			return fmt.Errorf("%w: %s wants a string, got %T", ErrInvalidValue, key, value)
		}
	case KeyAutoLanguageDetect, KeyHighlightTracking, KeyAutoSaveAudio:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants a bool, got %T", ErrInvalidValue, key, value)
		}
		switch key {
		case KeyAutoLanguageDetect:
			cur.AutoLanguageDetect = b
		case KeyHighlightTracking:
			cur.HighlightTracking = b
		default:
			cur.AutoSaveAudio = b
		}
	case KeyDefaultSpeed:
		switch v := value.(type) {
		case float64:
			cur.DefaultSpeed = v
		case float32:
			cur.DefaultSpeed = float64(v)
		case int:
			cur.DefaultSpeed = float64(v)
		default:
			return fmt.Errorf("%w: %s wants a number, got %T", ErrInvalidValue, key, value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// ParseValue converts the textual form of a setting, as typed on the
// command line, into the value Set expects.
func ParseValue(key, raw string) (any, error) {
	switch key {
	case KeyThemeMode:
		return ThemeMode(raw), nil
	case KeyLanguage:
		return i18n.Language(raw), nil
	case KeyAutoLanguageDetect, KeyHighlightTracking, KeyAutoSaveAudio:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
		return b, nil
	case KeyDefaultSpeed:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Value returns the named field of s in its textual form.
func (s Settings) Value(key string) (string, error) {
	switch key {
	case KeyThemeMode:
		return string(s.ThemeMode), nil
	case KeyLanguage:
		return string(s.Language), nil
	case KeyAutoLanguageDetect:
		return strconv.FormatBool(s.AutoLanguageDetect), nil
	case KeyHighlightTracking:
		return strconv.FormatBool(s.HighlightTracking), nil
	case KeyAutoSaveAudio:
		return strconv.FormatBool(s.AutoSaveAudio), nil
	case KeyDefaultSpeed:
		return strconv.FormatFloat(s.DefaultSpeed, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
