package app

import (
	"context"
	"errors"

	"codeberg.org/snonux/educalm/internal/auth"
	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/extract"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/library"
	"codeberg.org/snonux/educalm/internal/logging"
	"codeberg.org/snonux/educalm/internal/navigation"
	"codeberg.org/snonux/educalm/internal/player"
	"codeberg.org/snonux/educalm/internal/settings"
	"codeberg.org/snonux/educalm/internal/speech"
)

// FirstLaunchKey is set to "false" once the user got past the login
// screen.
const FirstLaunchKey = "educalm_is_first_launch"

// ErrNoAudio is returned when generation succeeded without audio.
var ErrNoAudio = errors.New("no audio generated")

// Speaker turns text into base64 encoded speech.
type Speaker interface {
	Generate(ctx context.Context, opts speech.Options) (string, error)
}

// AudioCache is the on-disk store of generated speech.
type AudioCache interface {
	ClearCache() error
	GetCacheStats() (fileCount int, totalSize int64, err error)
}

// PlayerFactory builds the player for the player screen from the current
// settings.
type PlayerFactory func(s settings.Settings) *player.Player

// Deps are the services shared by all screens.
type Deps struct {
	Store     kv.Store
	Settings  *settings.Store
	Auth      *auth.Store
	Library   *library.Store
	Speech    Speaker
	Cache     AudioCache // optional
	Extractor extract.Extractor
	Nav       *navigation.Stack
	Player    PlayerFactory
	Clock     clock.Clock
	Log       logging.Logger
}

// App hands out screen controllers bound to one set of services.
type App struct {
	Deps
}

// New returns an App. A nil Nav starts a fresh stack and a nil Player
// builds silent players.
func New(d Deps) *App {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	if d.Nav == nil {
		d.Nav = navigation.New(d.Clock)
	}
	if d.Player == nil {
		d.Player = func(s settings.Settings) *player.Player {
			return player.New(player.WithRate(s.DefaultSpeed), player.WithHighlight(s.HighlightTracking))
		}
	}
	return &App{Deps: d}
}

func (a *App) translations(ctx context.Context) i18n.Translations {
	return i18n.For(a.Settings.Get(ctx).Language)
}

// notify shows the localized transient message for key.
func (a *App) notify(ctx context.Context, key string) {
	a.Nav.ShowMessage(a.translations(ctx).Message(key))
}

func (a *App) isFirstLaunch(ctx context.Context) bool {
	raw, ok, err := a.Store.Get(ctx, FirstLaunchKey)
	if err != nil {
		a.Log.Warn(ctx, "failed to read first launch flag", "error", err)
		return true
	}
	return !ok || string(raw) != "false"
}

func (a *App) markLaunched(ctx context.Context) {
	if err := a.Store.Set(ctx, FirstLaunchKey, []byte("false")); err != nil {
		a.Log.Warn(ctx, "failed to store first launch flag", "error", err)
	}
}

// signOut runs the shared logout action of the settings and profile
// screens. Guests are sent to the login screen without a message.
func (a *App) signOut(ctx context.Context) error {
	if a.Auth.CurrentUser(ctx) == nil {
		a.Nav.Replace(navigation.Login)
		return nil
	}
	if err := a.Auth.SignOut(ctx); err != nil {
		return err
	}
	a.notify(ctx, i18n.MsgSignedOut)
	a.Nav.Replace(navigation.Login)
	return nil
}

// playItem opens the player on a library item.
func (a *App) playItem(item library.AudioItem) {
	a.Nav.PushPlayer(navigation.PlayerParams{AudioBase64: item.AudioBase64, Text: item.Text})
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
