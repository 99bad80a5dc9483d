package player

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"codeberg.org/snonux/educalm/internal/audio"
)

// Buffer holds decoded mono samples in [-1, 1).
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the length of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Fetcher resolves a referenced payload such as a blob:, file: or http
// URL to the bytes of an audio file.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// IsReference reports whether payload names audio elsewhere instead of
// carrying it inline.
func IsReference(payload string) bool {
	for _, prefix := range []string{"blob:", "file:", "http://", "https://"} {
		if strings.HasPrefix(payload, prefix) {
			return true
		}
	}
	return false
}

// Decode turns a payload into a Buffer. References are fetched and parsed
// as WAV files; anything else is base64 PCM16LE at 24 kHz mono.
func Decode(ctx context.Context, payload string, f Fetcher) (*Buffer, error) {
	if IsReference(payload) {
		if f == nil {
			return nil, fmt.Errorf("no fetcher for %q", payload)
		}
		data, err := f.Fetch(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch audio: %w", err)
		}
		wav, err := audio.DecodeWAV(data)
		if err != nil {
			return nil, err
		}
		return &Buffer{Samples: audio.DecodePCM16(wav.Mono()), SampleRate: wav.SampleRate}, nil
	}

	pcm, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return &Buffer{Samples: audio.DecodePCM16(pcm), SampleRate: audio.SampleRate}, nil
}

// DefaultFetcher reads file: URLs from disk, http(s) URLs over the
// network and blob: URLs from an in-process registry.
type DefaultFetcher struct {
	Client *http.Client

	mu    sync.RWMutex
	blobs map[string][]byte
}

// RegisterBlob makes data available under a blob: URL and returns it.
func (d *DefaultFetcher) RegisterBlob(id string, data []byte) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.blobs == nil {
		d.blobs = make(map[string][]byte)
	}
	ref := "blob:" + id
	d.blobs[ref] = data
	return ref
}

// RevokeBlob forgets a registered blob.
func (d *DefaultFetcher) RevokeBlob(ref string) {
	d.mu.Lock()
	delete(d.blobs, ref)
	d.mu.Unlock()
}

func (d *DefaultFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "blob:"):
		d.mu.RLock()
		data, ok := d.blobs[ref]
		d.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("unknown blob %q", ref)
		}
		return data, nil
	case strings.HasPrefix(ref, "file:"):
		u, err := url.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("invalid file URL: %w", err)
		}
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		return os.ReadFile(path)
	default:
		return d.fetchHTTP(ctx, ref)
	}
}

func (d *DefaultFetcher) fetchHTTP(ctx context.Context, ref string) ([]byte, error) {
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
