// Package archive exports the audio library to WAV files and keeps
// earlier exports in a timestamped archive.
package archive

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/educalm/internal"
	"codeberg.org/snonux/educalm/internal/audio"
	"codeberg.org/snonux/educalm/internal/library"
)

// IndexFile lists the exported recordings
const IndexFile = "index.json"

// IndexEntry describes one exported recording
type IndexEntry struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	File    string  `json:"file"`
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
	Skipped bool    `json:"skipped,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// Export writes every inline recording as a WAV file named after its id
// and text into dir, together with an index. A previous export in dir
// is archived first.
func Export(items []library.AudioItem, dir string) ([]IndexEntry, error) {
	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		if err := ArchiveDir(dir); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	index := make([]IndexEntry, 0, len(items))
	for _, it := range items {
		entry := IndexEntry{ID: it.ID, Date: it.Date, Text: it.Text}
		pcm, err := base64.StdEncoding.DecodeString(it.AudioBase64)
		if err != nil {
			// Referenced audio (blob: or URLs) has no inline payload
			entry.Skipped = true
			entry.Reason = "audio is not stored inline"
			index = append(index, entry)
			continue
		}

		entry.File = fmt.Sprintf("%s_%s.wav", it.ID, internal.SanitizeFilename(internal.Snippet(it.Text, 24)))
		entry.Seconds = audio.Duration(pcm, audio.SampleRate).Seconds()
		wav := audio.EncodeWAV(pcm, audio.SampleRate, audio.Channels)
		if err := os.WriteFile(filepath.Join(dir, entry.File), wav, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", entry.File, err)
		}
		index = append(index, entry)
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFile), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write index: %w", err)
	}
	return index, nil
}

// ArchiveDir moves dir into a sibling archive directory with timestamp
func ArchiveDir(dir string) error {
	// Check if the directory exists
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(dir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	base := filepath.Base(dir)
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, timestamp))
	}

	// Rename the directory into the archive
	if err := os.Rename(dir, archivePath); err != nil {
		return fmt.Errorf("failed to archive directory: %w", err)
	}

	fmt.Printf("Previous export archived to: %s\n", archivePath)
	return nil
}
