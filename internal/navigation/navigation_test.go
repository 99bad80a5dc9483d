package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codeberg.org/snonux/educalm/internal/clock"
)

func TestInitialStack(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	assert.Equal(t, Splash, s.Current())
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.ShowsMainTabs())
}

func TestPushPopReplace(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	s.Replace(Home)
	s.Push(Library)
	s.Push(Settings)
	assert.Equal(t, []Route{Home, Library, Settings}, s.History())

	s.Pop()
	assert.Equal(t, Library, s.Current())
	s.Pop()
	s.Pop()
	s.Pop()
	assert.Equal(t, Home, s.Current())
	assert.Equal(t, 1, s.Depth())
}

func TestPlayerParams(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	s.PushPlayer(PlayerParams{AudioBase64: "AAA", Text: "hi"})
	got, ok := s.PlayerParams()
	assert.True(t, ok)
	assert.Equal(t, "AAA", got.AudioBase64)

	// Other routes leave the player params alone
	s.Push(Library)
	_, ok = s.PlayerParams()
	assert.True(t, ok)

	s.Push(Player)
	_, ok = s.PlayerParams()
	assert.False(t, ok)
}

func TestEditorParams(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	s.PushEditor(EditorParams{InitialText: "draft"})
	got, ok := s.EditorParams()
	assert.True(t, ok)
	assert.Equal(t, "draft", got.InitialText)

	s.Push(Editor)
	_, ok = s.EditorParams()
	assert.False(t, ok)

	s.ReplaceEditor(EditorParams{InitialText: "x"})
	assert.Equal(t, []Route{Editor}, s.History())
	got, _ = s.EditorParams()
	assert.Equal(t, "x", got.InitialText)
}

func TestReplacePlayer(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	s.Replace(Home)
	s.Push(Editor)
	s.ReplacePlayer(PlayerParams{AudioBase64: "B", Text: "t"})
	assert.Equal(t, []Route{Player}, s.History())
	got, ok := s.PlayerParams()
	assert.True(t, ok)
	assert.Equal(t, "B", got.AudioBase64)
}

func TestShowMessageClearsAfterTimeout(t *testing.T) {
	fake := clock.NewFake(time.Now())
	s := New(fake)

	s.ShowMessage("Saved")
	assert.Equal(t, "Saved", s.Message())
	fake.Advance(MessageTimeout - time.Millisecond)
	assert.Equal(t, "Saved", s.Message())
	fake.Advance(time.Millisecond)
	assert.Empty(t, s.Message())
}

func TestNewerMessageRearmsTimer(t *testing.T) {
	fake := clock.NewFake(time.Now())
	s := New(fake)

	s.ShowMessage("first")
	fake.Advance(2 * time.Second)
	s.ShowMessage("second")
	assert.Equal(t, "second", s.Message())

	fake.Advance(2 * time.Second)
	assert.Equal(t, "second", s.Message())
	fake.Advance(time.Second)
	assert.Empty(t, s.Message())
	assert.Zero(t, fake.Pending())
}

func TestShowsMainTabs(t *testing.T) {
	s := New(clock.NewFake(time.Now()))
	for _, r := range Routes {
		s.Replace(r)
		want := r == Home || r == Library || r == Profile || r == Settings
		assert.Equal(t, want, s.ShowsMainTabs(), string(r))
	}
}
