package audio

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// CachingProvider stores the PCM of every successful request on disk and
// serves repeats from there.
type CachingProvider struct {
	inner    Provider
	cacheDir string
}

// NewCachingProvider wraps inner with a cache under cacheDir.
func NewCachingProvider(inner Provider, cacheDir string) (*CachingProvider, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &CachingProvider{inner: inner, cacheDir: cacheDir}, nil
}

// GenerateSpeech returns cached audio when present and otherwise calls
// the wrapped provider. Empty results are not cached.
func (p *CachingProvider) GenerateSpeech(ctx context.Context, req Request) ([]byte, error) {
	cacheFile := p.getCacheFilePath(req)
	if data, err := os.ReadFile(cacheFile); err == nil && len(data) > 0 {
		return data, nil
	}

	pcm, err := p.inner.GenerateSpeech(ctx, req)
	if err != nil || len(pcm) == 0 {
		return pcm, err
	}

	if err := os.MkdirAll(filepath.Dir(cacheFile), 0755); err == nil {
		_ = os.WriteFile(cacheFile, pcm, 0644) // Ignore cache errors
	}
	return pcm, nil
}

// getCacheFilePath generates a cache file path for the given request
func (p *CachingProvider) getCacheFilePath(req Request) string {
	// Create a hash of the text and settings
	h := md5.New()
	h.Write([]byte(p.inner.Name()))
	h.Write([]byte{0})
	h.Write([]byte(req.Text))
	h.Write([]byte{0})
	h.Write([]byte(req.Language))
	h.Write([]byte{0})
	h.Write([]byte(req.Gender))
	h.Write([]byte{0})
	h.Write([]byte(req.Instruction))
	hash := hex.EncodeToString(h.Sum(nil))

	// Use first 2 chars as subdirectory for better file system performance
	subdir := hash[:2]
	filename := hash[2:] + ".pcm"

	return filepath.Join(p.cacheDir, subdir, filename)
}

// Name returns the wrapped provider name
func (p *CachingProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable delegates to the wrapped provider
func (p *CachingProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}

// ClearCache removes all cached audio files
func (p *CachingProvider) ClearCache() error {
	if p.cacheDir == "" {
		return nil
	}
	return os.RemoveAll(p.cacheDir)
}

// GetCacheStats returns cache statistics
func (p *CachingProvider) GetCacheStats() (fileCount int, totalSize int64, err error) {
	if p.cacheDir == "" {
		return 0, 0, nil
	}
	if _, err := os.Stat(p.cacheDir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(p.cacheDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			fileCount++
			totalSize += info.Size()
		}
		return nil
	})

	return fileCount, totalSize, err
}
