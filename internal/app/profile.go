package app

import (
	"context"
	"math"
	"strings"

	"codeberg.org/snonux/educalm/internal/auth"
)

// WordsPerMinute is the reading speed behind the reading time estimate.
const WordsPerMinute = 150

// Profile shows the account and listening statistics.
type Profile struct {
	app *App

	User           *auth.User
	SavedCount     int
	ReadingMinutes int
}

// Profile opens the profile screen.
func (a *App) Profile(ctx context.Context) *Profile {
	p := &Profile{app: a, User: a.Auth.CurrentUser(ctx)}
	items := a.Library.GetAll(ctx)
	p.SavedCount = len(items)
	words := 0
	for _, it := range items {
		words += len(strings.Fields(it.Text))
	}
	p.ReadingMinutes = ReadingMinutes(words)
	return p
}

// ReadingMinutes converts a word count to whole minutes, rounded up.
func ReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// Guest reports whether nobody is signed in.
func (p *Profile) Guest() bool { return p.User == nil }

// Logout signs out, or sends a guest to the login screen.
func (p *Profile) Logout(ctx context.Context) error {
	return p.app.signOut(ctx)
}
