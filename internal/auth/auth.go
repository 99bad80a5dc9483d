package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"codeberg.org/snonux/educalm/internal/clock"
	"codeberg.org/snonux/educalm/internal/kv"
	"codeberg.org/snonux/educalm/internal/logging"
)

const (
	UserKey    = "educalm_auth_user"
	SkippedKey = "educalm_skipped_login"

	// GuestLibraryKey holds the library while no user is signed in.
	GuestLibraryKey   = "educalm_guest_library"
	userLibraryPrefix = "educalm_cloud_storage_"

	recordVersion = 1
)

// Default simulated latencies of the identity provider.
const (
	DefaultSignInDelay  = 1500 * time.Millisecond
	DefaultSignOutDelay = 500 * time.Millisecond
)

// User is a signed-in identity.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
}

// Store persists the session and guest flag through a kv.Store.
type Store struct {
	kv           kv.Store
	clock        clock.Clock
	log          logging.Logger
	signInDelay  time.Duration
	signOutDelay time.Duration
	newID        func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for simulated latency and photo seeds.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithDelays overrides the simulated sign-in and sign-out latency.
func WithDelays(signIn, signOut time.Duration) Option {
	return func(s *Store) {
		s.signInDelay = signIn
		s.signOutDelay = signOut
	}
}

// WithIDSource overrides the random part of fabricated uids.
func WithIDSource(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New returns a Store over store.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:           store,
		clock:        clock.Real(),
		log:          logging.Discard(),
		signInDelay:  DefaultSignInDelay,
		signOutDelay: DefaultSignOutDelay,
		newID:        randomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// SignInWithGoogle simulates a Google sign-in and persists the resulting
// user. Any guest flag is cleared.
func (s *Store) SignInWithGoogle(ctx context.Context) (*User, error) {
	if err := clock.Sleep(ctx, s.clock, s.signInDelay); err != nil {
		return nil, err
	}

	u := &User{
		UID:         "google-uid-" + s.newID(),
		DisplayName: "Google User",
		Email:       "user@gmail.com",
		PhotoURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strconv.FormatInt(s.clock.Now().UnixMilli(), 10),
	}
	if err := kv.Save(ctx, s.kv, UserKey, recordVersion, u); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Delete(ctx, SkippedKey); err != nil {
		return nil, fmt.Errorf("failed to clear guest flag: %w", err)
	}
	s.log.Info(ctx, "signed in", "uid", u.UID)
	return u, nil
}

// SkipLogin enters guest mode and drops any session.
func (s *Store) SkipLogin(ctx context.Context) error {
	if err := s.kv.Set(ctx, SkippedKey, []byte("true")); err != nil {
		return fmt.Errorf("failed to set guest flag: %w", err)
	}
	if err := s.kv.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.log.Info(ctx, "entered guest mode")
	return nil
}

// SignOut clears both the session and the guest flag.
func (s *Store) SignOut(ctx context.Context) error {
	if err := clock.Sleep(ctx, s.clock, s.signOutDelay); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.kv.Delete(ctx, SkippedKey); err != nil {
		return fmt.Errorf("failed to clear guest flag: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// CurrentUser returns the persisted session, or nil when there is none
// or it cannot be read.
func (s *Store) CurrentUser(ctx context.Context) *User {
	raw, ok, err := s.kv.Get(ctx, UserKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read session", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var u User
	if kv.Decode(raw, recordVersion, &u) {
		return &u
	}
	// Sessions written before records were versioned.
	if err := json.Unmarshal(raw, &u); err != nil || u.UID == "" {
		return nil
	}
	return &u
}

// IsLoggedIn reports whether a session record exists.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	_, ok, err := s.kv.Get(ctx, UserKey)
	return err == nil && ok
}

// HasSkipped reports whether the guest flag is set.
func (s *Store) HasSkipped(ctx context.Context) bool {
	raw, ok, err := s.kv.Get(ctx, SkippedKey)
	return err == nil && ok && string(raw) == "true"
}

// LibraryKey returns the storage key of the current identity's library.
func (s *Store) LibraryKey(ctx context.Context) string {
	if u := s.CurrentUser(ctx); u != nil {
		return userLibraryPrefix + u.UID
	}
	return GuestLibraryKey
}
