package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// envelope is the on-disk shape of every versioned record.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps v in a versioned envelope.
func Encode(version int, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return json.Marshal(envelope{Version: version, Data: data})
}

// Decode unwraps raw into out. It reports false for malformed JSON, a
// missing or null payload or a version other than version; out must be
// ignored in that case.
func Decode(raw []byte, version int, out any) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.Version != version || len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return false
	}
	return true
}

// Load reads key and decodes it into out. A missing key, a storage error
// or an undecodable record all report false; the storage error is
// returned so callers can log it.
func Load(ctx context.Context, s Store, key string, version int, out any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return Decode(raw, version, out), nil
}

// Save encodes v and stores it under key.
func Save(ctx context.Context, s Store, key string, version int, v any) error {
	raw, err := Encode(version, v)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}
