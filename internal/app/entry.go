package app

import (
	"context"

	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/navigation"
)

// Splash applies the stored theme and language and replaces the stack
// with the first real screen. It returns that route.
func (a *App) Splash(ctx context.Context) navigation.Route {
	a.Settings.ApplyCurrent(ctx)

	route := navigation.Login
	switch {
	case a.isFirstLaunch(ctx):
		route = navigation.Onboarding
	case a.Auth.IsLoggedIn(ctx) || a.Auth.HasSkipped(ctx):
		route = navigation.Home
	}
	a.Nav.Replace(route)
	return route
}

// OnboardingPage is one introduction page.
type OnboardingPage struct {
	Title       string
	Description string
}

// OnboardingPages are shown in order on first launch.
var OnboardingPages = []OnboardingPage{
	{"Turn Text Into Speech", "Convert any text into natural AI voice. Just type, paste, or scan."},
	{"Import From Anywhere", "PDFs, Web articles, or even photos. We extract the text for you."},
	{"Listen & Stay Focused", "Follow highlighted text while listening. Perfect for learning and focus."},
}

// Onboarding pages through the introduction.
type Onboarding struct {
	app  *App
	page int
}

// Onboarding opens the introduction on its first page.
func (a *App) Onboarding() *Onboarding {
	return &Onboarding{app: a}
}

// Page returns the index of the visible page.
func (o *Onboarding) Page() int { return o.page }

// Current returns the visible page.
func (o *Onboarding) Current() OnboardingPage { return OnboardingPages[o.page] }

// Next advances one page. On the last page it moves on to login.
func (o *Onboarding) Next() {
	if o.page < len(OnboardingPages)-1 {
		o.page++
		return
	}
	o.app.Nav.Replace(navigation.Login)
}

// Login is the sign-in screen.
type Login struct {
	app *App
}

// Login opens the sign-in screen.
func (a *App) Login() *Login {
	return &Login{app: a}
}

// Google signs in with the simulated Google account.
func (l *Login) Google(ctx context.Context) error {
	a := l.app
	if _, err := a.Auth.SignInWithGoogle(ctx); err != nil {
		if !isCancel(err) {
			a.notify(ctx, i18n.MsgLoginFailed)
		}
		return err
	}
	a.markLaunched(ctx)
	a.Nav.Replace(navigation.Home)
	a.notify(ctx, i18n.MsgLoggedInGoogle)
	return nil
}

// Skip continues as guest.
func (l *Login) Skip(ctx context.Context) error {
	a := l.app
	if err := a.Auth.SkipLogin(ctx); err != nil {
		return err
	}
	a.markLaunched(ctx)
	a.Nav.Replace(navigation.Home)
	a.notify(ctx, i18n.MsgEnteringGuest)
	return nil
}
