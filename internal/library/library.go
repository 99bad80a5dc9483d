package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/logging"
)

// LastPlayedKey holds the last played clip.
const LastPlayedKey = "educalm_last_played"

const recordVersion = 1

// ErrSyncFailed is the simulated remote metadata failure.
var ErrSyncFailed = errors.New("cloud document sync failed. please check your connection")

// Default simulated remote behavior.
const (
	DefaultSaveLatency   = 600 * time.Millisecond
	DefaultDeleteLatency = 400 * time.Millisecond
	DefaultFailureRate   = 0.05
)

// ScopeFunc returns the storage key of the library to operate on.
type ScopeFunc func(ctx context.Context) string

// Store is the library of the identity selected by its ScopeFunc.
type Store struct {
	kv            kv.Store
	scope         ScopeFunc
	clock         clock.Clock
	log           logging.Logger
	saveLatency   time.Duration
	deleteLatency time.Duration
	failureRate   float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for simulated latency.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithLatency overrides the simulated save and per-step delete latency.
func WithLatency(save, del time.Duration) Option {
	return func(s *Store) {
		s.saveLatency = save
		s.deleteLatency = del
	}
}

// WithFailureRate sets the probability of ErrSyncFailed on delete.
func WithFailureRate(rate float64) Option {
	return func(s *Store) { s.failureRate = rate }
}

// WithRand sets the random source consulted for simulated failures.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rnd = r }
}

// New returns a Store over store. scope selects the library key on every
// call, so signing in or out switches libraries immediately.
func New(store kv.Store, scope ScopeFunc, opts ...Option) *Store {
	s := &Store{
		kv:            store,
		scope:         scope,
		clock:         clock.Real(),
		log:           logging.Discard(),
		saveLatency:   DefaultSaveLatency,
		deleteLatency: DefaultDeleteLatency,
		failureRate:   DefaultFailureRate,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveItem prepends item to the library. It reports false, without
// writing, when a clip with the same payload is already stored.
func (s *Store) SaveItem(ctx context.Context, item AudioItem) (bool, error) {
	if err := clock.Sleep(ctx, s.clock, s.saveLatency); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.scope(ctx)
	items := s.load(ctx, key)
	for _, it := range items {
		if it.AudioBase64 == item.AudioBase64 {
			s.log.Debug(ctx, "duplicate clip not saved", "id", item.ID)
			return false, nil
		}
	}

	updated := make([]AudioItem, 0, len(items)+1)
	updated = append(updated, item)
	updated = append(updated, items...)
	if err := kv.Save(ctx, s.kv, key, recordVersion, updated); err != nil {
		return false, fmt.Errorf("failed to save clip: %w", err)
	}
	s.log.Info(ctx, "clip saved", "id", item.ID, "library", key)
	return true, nil
}

// GetAll returns the library, newest first. Missing or corrupt data
// reads as empty.
func (s *Store) GetAll(ctx context.Context) []AudioItem {
	return s.load(ctx, s.scope(ctx))
}

func (s *Store) load(ctx context.Context, key string) []AudioItem {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to read library", "library", key, "error", err)
		return []AudioItem{}
	}
	if !ok {
		return []AudioItem{}
	}
	var items []AudioItem
	if kv.Decode(raw, recordVersion, &items) {
		return items
	}
	items = nil
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn(ctx, "corrupt library ignored", "library", key)
		return []AudioItem{}
	}
	return items
}

// Search returns the items whose text contains q, case-insensitively.
// A blank query returns every item.
func (s *Store) Search(ctx context.Context, q string) []AudioItem {
	items := s.GetAll(ctx)
	if strings.TrimSpace(q) == "" {
		return items
	}
	needle := strings.ToLower(q)
	var out []AudioItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Text), needle) {
			out = append(out, it)
		}
	}
	return out
}

// IsSaved reports whether a clip with this payload is stored.
func (s *Store) IsSaved(ctx context.Context, audioBase64 string) bool {
	for _, it := range s.GetAll(ctx) {
		if it.AudioBase64 == audioBase64 {
			return true
		}
	}
	return false
}

// DeleteItem removes the clip with id. The remote metadata and blob
// deletes are simulated first; a simulated failure leaves the library
// untouched.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return s.DeleteItems(ctx, []string{id})
}

// DeleteItems removes every listed clip with a single simulated round
// trip. Remaining items keep their relative order.
func (s *Store) DeleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	s.log.Debug(ctx, "deleting metadata", "ids", ids)
	if err := clock.Sleep(ctx, s.clock, s.deleteLatency); err != nil {
		return err
	}
	if s.fail() {
		s.log.Warn(ctx, "metadata delete failed", "ids", ids)
		return ErrSyncFailed
	}
	s.log.Debug(ctx, "deleting blobs", "ids", ids)
	if err := clock.Sleep(ctx, s.clock, s.deleteLatency); err != nil {
		return err
	}

	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.scope(ctx)
	items := s.load(ctx, key)
	kept := make([]AudioItem, 0, len(items))
	for _, it := range items {
		if !remove[it.ID] {
			kept = append(kept, it)
		}
	}
	if err := kv.Save(ctx, s.kv, key, recordVersion, kept); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}

	if last := s.GetLastPlayed(ctx); last != nil && remove[last.ID] {
		if err := s.kv.Delete(ctx, LastPlayedKey); err != nil {
			return fmt.Errorf("failed to clear last played: %w", err)
		}
	}
	s.log.Info(ctx, "clips deleted", "count", len(items)-len(kept), "library", key)
	return nil
}

func (s *Store) fail() bool {
	if s.failureRate <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < s.failureRate
}

// SetLastPlayed records item as the last played clip.
func (s *Store) SetLastPlayed(ctx context.Context, item AudioItem) error {
	if err := kv.Save(ctx, s.kv, LastPlayedKey, recordVersion, item); err != nil {
		return fmt.Errorf("failed to save last played: %w", err)
	}
	return nil
}

// GetLastPlayed returns the last played clip, or nil.
func (s *Store) GetLastPlayed(ctx context.Context) *AudioItem {
	var item AudioItem
	ok, err := kv.Load(ctx, s.kv, LastPlayedKey, recordVersion, &item)
	if err != nil {
		s.log.Warn(ctx, "failed to read last played", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &item
}

// Clear removes the current library and the last played clip.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.scope(ctx)); err != nil {
		return fmt.Errorf("failed to clear library: %w", err)
	}
	if err := s.kv.Delete(ctx, LastPlayedKey); err != nil {
		return fmt.Errorf("failed to clear last played: %w", err)
	}
	return nil
}
