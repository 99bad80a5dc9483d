package app

import (
	"context"
	"strings"

	"codeberg.org/snonux/educalm/internal/auth"
	"codeberg.org/snonux/educalm/internal/i18n"
	"codeberg.org/snonux/educalm/internal/library"
	"codeberg.org/snonux/educalm/internal/navigation"
)

// Home is the dashboard.
type Home struct {
	app *App

	User         *auth.User
	LastPlayed   *library.AudioItem
	LibraryCount int

	query   string
	results []library.AudioItem
}

// Home opens the dashboard with fresh data.
func (a *App) Home(ctx context.Context) *Home {
	h := &Home{app: a}
	h.Refresh(ctx)
	return h
}

// Refresh reloads the user, last played clip and library size.
func (h *Home) Refresh(ctx context.Context) {
	a := h.app
	h.User = a.Auth.CurrentUser(ctx)
	h.LastPlayed = a.Library.GetLastPlayed(ctx)
	h.LibraryCount = len(a.Library.GetAll(ctx))
}

// Search filters the library. A blank query clears the results.
func (h *Home) Search(ctx context.Context, q string) []library.AudioItem {
	h.query = q
	if strings.TrimSpace(q) == "" {
		h.results = nil
		return nil
	}
	h.results = h.app.Library.Search(ctx, q)
	return h.results
}

// Results returns the last search results.
func (h *Home) Results() []library.AudioItem { return h.results }

// Searching reports whether a query is active. The quick actions are
// hidden while searching.
func (h *Home) Searching() bool { return h.query != "" }

// Play opens the player on item.
func (h *Home) Play(item library.AudioItem) { h.app.playItem(item) }

// ContinueListening opens the player on the last played clip, if any.
func (h *Home) ContinueListening() bool {
	if h.LastPlayed == nil {
		return false
	}
	h.app.playItem(*h.LastPlayed)
	return true
}

// QuickAction is a shortcut on the dashboard.
type QuickAction struct {
	Title       string
	Description string
	Route       navigation.Route
}

// QuickActions returns the dashboard shortcuts in display order.
func (h *Home) QuickActions(ctx context.Context) []QuickAction {
	t := h.app.translations(ctx)
	return []QuickAction{
		{t.T(i18n.KeyScanText), "Use camera to scan books & papers", navigation.OCRScan},
		{"Import File", "PDF, DOC, TXT supported", navigation.ImportPDF},
		{t.T(i18n.KeyPasteLink), "Convert articles instantly", navigation.ImportLink},
		{t.T(i18n.KeyWriteText), t.T(i18n.KeyWriteTextSub), navigation.Editor},
	}
}

// Open follows a shortcut.
func (h *Home) Open(route navigation.Route) { h.app.Nav.Push(route) }

// SeeAll opens the list of creation methods.
func (h *Home) SeeAll() { h.app.Nav.Push(navigation.CreateAudioMethods) }

// OpenProfile opens the profile screen.
func (h *Home) OpenProfile() { h.app.Nav.Push(navigation.Profile) }

// Method is one way of creating audio.
type Method struct {
	Title       string
	Description string
	Route       navigation.Route
}

// CreateAudioMethods lists every acquisition route.
func (a *App) CreateAudioMethods(ctx context.Context) []Method {
	t := a.translations(ctx)
	return []Method{
		{t.T(i18n.KeyWriteText), t.T(i18n.KeyWriteTextSub), navigation.Editor},
		{t.T(i18n.KeyUploadPDF), t.T(i18n.KeyUploadPDFSub), navigation.ImportPDF},
		{t.T(i18n.KeyPasteLink), t.T(i18n.KeyPasteLinkSub), navigation.ImportLink},
		{t.T(i18n.KeyScanText), t.T(i18n.KeyScanTextSub), navigation.OCRScan},
	}
}

// ChooseMethod opens the screen of a creation method.
func (a *App) ChooseMethod(m Method) { a.Nav.Push(m.Route) }
