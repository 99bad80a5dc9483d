package app

import (
	"context"
	"fmt"

	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/settings"
)

// SettingsScreen edits the preferences.
type SettingsScreen struct {
	app *App
}

// SettingsScreen opens the settings screen.
func (a *App) SettingsScreen() *SettingsScreen {
	return &SettingsScreen{app: a}
}

// Current returns the stored settings.
func (s *SettingsScreen) Current(ctx context.Context) settings.Settings {
	return s.app.Settings.Get(ctx)
}

// Toggle flips a boolean setting.
func (s *SettingsScreen) Toggle(ctx context.Context, key string) error {
	cur := s.Current(ctx)
	var v bool
	switch key {
	case settings.KeyAutoLanguageDetect:
		v = cur.AutoLanguageDetect
	case settings.KeyHighlightTracking:
		v = cur.HighlightTracking
	case settings.KeyAutoSaveAudio:
		v = cur.AutoSaveAudio
	default:
		return fmt.Errorf("%w: %s is not a switch", settings.ErrUnknownKey, key)
	}
	return s.app.Settings.Set(ctx, key, !v)
}

// ToggleDarkMode switches between the light and dark theme.
func (s *SettingsScreen) ToggleDarkMode(ctx context.Context) error {
	mode := settings.ThemeDark
	if s.app.Settings.IsDark(s.Current(ctx).ThemeMode) {
		mode = settings.ThemeLight
	}
	return s.SetTheme(ctx, mode)
}

// SetTheme selects the theme.
func (s *SettingsScreen) SetTheme(ctx context.Context, mode settings.ThemeMode) error {
	return s.app.Settings.Set(ctx, settings.KeyThemeMode, mode)
}

// SetLanguage selects the UI language.
func (s *SettingsScreen) SetLanguage(ctx context.Context, lang i18n.Language) error {
	return s.app.Settings.Set(ctx, settings.KeyLanguage, lang)
}

// SetSpeed sets the default playback speed.
func (s *SettingsScreen) SetSpeed(ctx context.Context, speed float64) error {
	return s.app.Settings.Set(ctx, settings.KeyDefaultSpeed, speed)
}

// ClearCache removes the library of the current scope, the last played
// clip and the cached speech files.
func (s *SettingsScreen) ClearCache(ctx context.Context) error {
	a := s.app
	if err := a.Library.Clear(ctx); err != nil {
		return err
	}
	if a.Cache != nil {
		files, size, err := a.Cache.GetCacheStats()
		if err != nil {
			a.Log.Warn(ctx, "failed to read speech cache", "error", err)
		}
		if err := a.Cache.ClearCache(); err != nil {
			return fmt.Errorf("failed to clear speech cache: %w", err)
		}
		a.Log.Info(ctx, "speech cache cleared", "files", files, "bytes", size)
	}
	a.notify(ctx, i18n.MsgCacheCleared)
	return nil
}

// AuthAction signs a user out or sends a guest to the login screen.
func (s *SettingsScreen) AuthAction(ctx context.Context) error {
	return s.app.signOut(ctx)
}
