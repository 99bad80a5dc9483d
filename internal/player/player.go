package player

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/logging"
)

// ErrNotLoaded is returned by playback controls before a successful Load.
var ErrNotLoaded = errors.New("no audio loaded")

// State is the playback state.
type State string

const (
	Idle     State = "idle"
	Decoding State = "decoding"
	Playing  State = "playing"
	Paused   State = "paused"
	Finished State = "finished"
)

// DefaultSeekStep is the skip distance of the forward and back controls.
const DefaultSeekStep = 10 * time.Second

// DefaultWatchInterval is the progress sampling period.
const DefaultWatchInterval = 50 * time.Millisecond

// Snapshot is the sampled playback status.
type Snapshot struct {
	State     State
	Position  float64 // seconds
	Duration  float64 // seconds
	Progress  float64 // percent, 0 to 100
	WordIndex int     // -1 when nothing is highlighted
}

// Player plays one Buffer at a time through a Sink.
type Player struct {
	clock     clock.Clock
	sink      Sink
	fetcher   Fetcher
	log       logging.Logger
	rate      float64
	highlight bool

	mu     sync.Mutex
	state  State
	buf    *Buffer
	words  []string
	offset float64
	anchor time.Time
}

// Option configures a Player.
type Option func(*Player)

// WithClock sets the clock positions are measured against.
func WithClock(c clock.Clock) Option {
	return func(p *Player) { p.clock = c }
}

// WithSink sets the audio output.
func WithSink(s Sink) Option {
	return func(p *Player) { p.sink = s }
}

// WithFetcher sets the resolver for referenced payloads.
func WithFetcher(f Fetcher) Option {
	return func(p *Player) { p.fetcher = f }
}

// WithRate sets the playback speed. Non-positive rates mean 1.
func WithRate(rate float64) Option {
	return func(p *Player) { p.rate = rate }
}

// WithHighlight enables or disables word tracking.
func WithHighlight(on bool) Option {
	return func(p *Player) { p.highlight = on }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Player) { p.log = l }
}

// New returns an idle Player.
func New(opts ...Option) *Player {
	p := &Player{
		clock:     clock.Real(),
		sink:      NopSink{},
		fetcher:   &DefaultFetcher{},
		log:       logging.Discard(),
		rate:      1,
		highlight: true,
		state:     Idle,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rate <= 0 {
		p.rate = 1
	}
	return p
}

// Load decodes payload and starts playing it from the beginning. text is
// the transcript used for word highlighting.
func (p *Player) Load(ctx context.Context, payload, text string) error {
	p.mu.Lock()
	p.stopSink()
	p.state = Decoding
	p.buf = nil
	p.mu.Unlock()

	buf, err := Decode(ctx, payload, p.fetcher)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = Idle
		return err
	}
	p.buf = buf
	p.words = strings.Fields(text)
	p.offset = 0
	p.log.Debug(ctx, "audio decoded", "seconds", buf.Duration(), "words", len(p.words))
	return p.play()
}

// Play starts or resumes playback at the current offset. Playback that
// reached the end restarts from the beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.play()
}

func (p *Player) play() error {
	if p.buf == nil {
		return ErrNotLoaded
	}
	if p.offset >= p.buf.Duration() {
		p.offset = 0
	}
	p.stopSink()
	if err := p.sink.Start(p.buf, p.offset, p.rate); err != nil {
		p.state = Paused
		return fmt.Errorf("failed to start playback: %w", err)
	}
	p.anchor = p.clock.Now()
	p.state = Playing
	return nil
}

// Pause stops output and remembers the position.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buf == nil {
		return ErrNotLoaded
	}
	if p.state != Playing {
		return nil
	}
	p.offset = p.position(p.clock.Now())
	p.stopSink()
	p.state = Paused
	return nil
}

// Toggle pauses while playing and plays otherwise.
func (p *Player) Toggle() error {
	p.mu.Lock()
	playing := p.state == Playing
	p.mu.Unlock()
	if playing {
		return p.Pause()
	}
	return p.Play()
}

// SeekBy moves the position by d from where playback is now, clamped to
// the buffer. A playing sink is restarted at the new position.
func (p *Player) SeekBy(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buf == nil {
		return ErrNotLoaded
	}

	now := p.clock.Now()
	pos := p.offset
	if p.state == Playing {
		pos = p.position(now)
	}
	p.offset = clamp(pos+d.Seconds(), 0, p.buf.Duration())

	if p.state != Playing {
		if p.state == Finished {
			p.state = Paused
		}
		return nil
	}
	p.stopSink()
	if err := p.sink.Start(p.buf, p.offset, p.rate); err != nil {
		p.state = Paused
		return fmt.Errorf("failed to restart playback: %w", err)
	}
	p.anchor = now
	return nil
}

// Snapshot samples the clock and reports the playback status. Reaching
// the end switches the state to Finished and rewinds.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	dur := p.buf.Duration()
	pos := p.offset
	switch p.state {
	case Playing:
		pos = p.position(p.clock.Now())
		if pos >= dur {
			p.stopSink()
			p.state = Finished
			p.offset = 0
			pos = dur
		}
	case Finished:
		pos = dur
	}

	s := Snapshot{State: p.state, Position: pos, Duration: dur, WordIndex: -1}
	if dur > 0 {
		s.Progress = pos / dur * 100
	}
	if p.highlight {
		s.WordIndex = HighlightIndex(pos, dur, len(p.words))
	}
	return s
}

// Words returns the transcript split on whitespace.
func (p *Player) Words() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.words...)
}

// SetRate changes the playback speed, keeping the current position.
func (p *Player) SetRate(rate float64) error {
	if rate <= 0 {
		rate = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		p.rate = rate
		return nil
	}
	now := p.clock.Now()
	p.offset = p.position(now)
	p.rate = rate
	p.stopSink()
	if err := p.sink.Start(p.buf, p.offset, p.rate); err != nil {
		p.state = Paused
		return fmt.Errorf("failed to restart playback: %w", err)
	}
	p.anchor = now
	return nil
}

// Watch calls fn with a fresh Snapshot every interval until ctx ends or
// playback finishes. It returns nil once the final snapshot was
// delivered.
func (p *Player) Watch(ctx context.Context, interval time.Duration, fn func(Snapshot)) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(interval):
		}
		s := p.Snapshot()
		fn(s)
		if s.State == Finished || s.State == Idle {
			return nil
		}
	}
}

// Close stops any output.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSink()
	if p.state == Playing {
		p.state = Paused
	}
	return nil
}

// position is (now-anchor)*rate + offset clamped to the buffer.
func (p *Player) position(now time.Time) float64 {
	elapsed := now.Sub(p.anchor).Seconds()
	return clamp(p.offset+elapsed*p.rate, 0, p.buf.Duration())
}

func (p *Player) stopSink() {
	if err := p.sink.Stop(); err != nil {
		p.log.Warn(context.Background(), "failed to stop sink", "error", err)
	}
}

// HighlightIndex maps a position to the word being spoken, assuming words
// are spread evenly over the clip. It returns -1 without words or length.
func HighlightIndex(t, duration float64, wordCount int) int {
	if duration <= 0 || wordCount <= 0 {
		return -1
	}
	idx := int(math.Floor(t / duration * float64(wordCount)))
	if idx < 0 {
		return 0
	}
	if idx > wordCount-1 {
		return wordCount - 1
	}
	return idx
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
