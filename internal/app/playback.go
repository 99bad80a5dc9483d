package app

import (
	"context"

	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/library"
	"codeberg.org/snonux/educalm/internal/navigation"
	"codeberg.org/snonux/educalm/internal/player"
)

// PlayerScreen plays the clip handed over in the player parameters.
type PlayerScreen struct {
	app    *App
	params navigation.PlayerParams
	player *player.Player
	saved  bool
}

// OpenPlayer records the clip as last played, saves it when auto-save is
// on and starts playback.
func (a *App) OpenPlayer(ctx context.Context) (*PlayerScreen, error) {
	params, ok := a.Nav.PlayerParams()
	if !ok {
		return nil, ErrNothingSelected
	}
	s := a.Settings.Get(ctx)
	ps := &PlayerScreen{app: a, params: params, player: a.Player(s)}

	ps.saved = a.Library.IsSaved(ctx, params.AudioBase64)
	if err := a.Library.SetLastPlayed(ctx, ps.item()); err != nil {
		a.Log.Warn(ctx, "failed to record last played", "error", err)
	}
	if s.AutoSaveAudio && !ps.saved {
		if _, err := a.Library.SaveItem(ctx, ps.item()); err != nil {
			a.Log.Warn(ctx, "auto-save failed", "error", err)
		} else {
			ps.saved = true
		}
	}

	if err := ps.player.Load(ctx, params.AudioBase64, params.Text); err != nil {
		return ps, err
	}
	return ps, nil
}

func (ps *PlayerScreen) item() library.AudioItem {
	return library.NewItem(ps.params.Text, ps.params.AudioBase64, ps.app.Clock.Now())
}

// Player returns the playback engine.
func (ps *PlayerScreen) Player() *player.Player { return ps.player }

// Text returns the transcript.
func (ps *PlayerScreen) Text() string { return ps.params.Text }

// RTL reports whether the transcript reads right to left.
func (ps *PlayerScreen) RTL() bool { return audio.IsRTL(ps.params.Text) }

// IsSaved reports whether the clip is in the library.
func (ps *PlayerScreen) IsSaved() bool { return ps.saved }

// Save adds the clip to the library.
func (ps *PlayerScreen) Save(ctx context.Context) error {
	a := ps.app
	saved, err := a.Library.SaveItem(ctx, ps.item())
	if err != nil {
		return err
	}
	ps.saved = true
	if saved {
		a.Nav.ShowMessage(a.translations(ctx).T(i18n.KeySaved))
	} else {
		a.notify(ctx, i18n.MsgAlreadySaved)
	}
	return nil
}

// Close stops playback.
func (ps *PlayerScreen) Close() error { return ps.player.Close() }
