// Package navigation keeps the in-memory route stack of educalm and the
// transient message shown over the current screen.
package navigation

import (
	"sync"
	"time"

	"codeberg.org/snonux/educalm/internal/clock"
)

// Route names a screen.
type Route string

const (
	Home               Route = "/"
	Editor             Route = "/editor"
	Player             Route = "/player"
	Library            Route = "/library"
	ImportPDF          Route = "/import-pdf"
	ImportLink         Route = "/import-link"
	OCRScan            Route = "/ocr-scan"
	Onboarding         Route = "/onboarding"
	Settings           Route = "/settings"
	Splash             Route = "/splash"
	Login              Route = "/login"
	CreateAudioMethods Route = "/create-audio-methods"
	Profile            Route = "/profile"
)

// Routes lists every route.
var Routes = []Route{
	Home, Editor, Player, Library, ImportPDF, ImportLink, OCRScan,
	Onboarding, Settings, Splash, Login, CreateAudioMethods, Profile,
}

// MessageTimeout is how long a transient message stays visible.
const MessageTimeout = 3 * time.Second

// PlayerParams is the clip handed to the player screen.
type PlayerParams struct {
	AudioBase64 string
	Text        string
}

// EditorParams seeds the editor screen.
type EditorParams struct {
	InitialText string
}

// Stack is the navigation state. It is never empty.
type Stack struct {
	clock clock.Clock

	mu      sync.Mutex
	history []Route
	player  *PlayerParams
	editor  *EditorParams
	message string
	timer   clock.Timer
	gen     uint64
}

// New returns a Stack holding only the splash route.
func New(c clock.Clock) *Stack {
	if c == nil {
		c = clock.Real()
	}
	return &Stack{clock: c, history: []Route{Splash}}
}

// Push opens route on top of the stack. Pushing the player or editor
// without parameters clears their parameters.
func (s *Stack) Push(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(route, nil, nil)
	s.history = append(s.history, route)
}

// PushPlayer opens the player with params.
func (s *Stack) PushPlayer(params PlayerParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(Player, &params, nil)
	s.history = append(s.history, Player)
}

// PushEditor opens the editor with params.
func (s *Stack) PushEditor(params EditorParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(Editor, nil, &params)
	s.history = append(s.history, Editor)
}

// Replace resets the stack to route alone.
func (s *Stack) Replace(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(route, nil, nil)
	s.history = []Route{route}
}

// ReplacePlayer resets the stack to the player with params.
func (s *Stack) ReplacePlayer(params PlayerParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(Player, &params, nil)
	s.history = []Route{Player}
}

// ReplaceEditor resets the stack to the editor with params.
func (s *Stack) ReplaceEditor(params EditorParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParams(Editor, nil, &params)
	s.history = []Route{Editor}
}

func (s *Stack) setParams(route Route, player *PlayerParams, editor *EditorParams) {
	switch route {
	case Player:
		s.player = player
	case Editor:
		s.editor = editor
	}
}

// Pop returns to the previous route. The last route is never popped.
func (s *Stack) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) > 1 {
		s.history = s.history[:len(s.history)-1]
	}
}

// Current returns the top route.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history[len(s.history)-1]
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// History returns a copy of the stack, bottom first.
func (s *Stack) History() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Route(nil), s.history...)
}

// PlayerParams returns the current player parameters, if any.
func (s *Stack) PlayerParams() (PlayerParams, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return PlayerParams{}, false
	}
	return *s.player, true
}

// EditorParams returns the current editor parameters, if any.
func (s *Stack) EditorParams() (EditorParams, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return EditorParams{}, false
	}
	return *s.editor, true
}

// ShowMessage displays msg for MessageTimeout. A newer message replaces
// the current one and restarts the timeout.
func (s *Stack) ShowMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.message = msg
	s.timer = s.clock.AfterFunc(MessageTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.message = ""
			s.timer = nil
		}
	})
}

// Message returns the visible transient message, or "".
func (s *Stack) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// ShowsMainTabs reports whether the bottom tab bar belongs on the current
// route.
func (s *Stack) ShowsMainTabs() bool {
	switch s.Current() {
	case Home, Library, Profile, Settings:
		return true
	}
	return false
}
