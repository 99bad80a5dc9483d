// Package batch reads texts to convert from a plain text file.
package batch

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/educalm/internal/audio"
)

// TextEntry is one text to convert with an optional voice override
type TextEntry struct {
	Text string
	// Gender is empty when the line does not name a voice
	Gender audio.Gender
}

// ReadBatchFile reads texts from a file, one per line.
// Supports formats:
// - Text only: "The water cycle has four stages"
// - With voice: "male = The water cycle has four stages"
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]TextEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []TextEntry
	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, parseLine(line))
	}
	return entries, nil
}

func parseLine(line string) TextEntry {
	voice, text, found := strings.Cut(line, "=")
	if !found {
		return TextEntry{Text: line}
	}
	switch g := audio.Gender(strings.ToLower(strings.TrimSpace(voice))); g {
	case audio.Male, audio.Female:
		if text = strings.TrimSpace(text); text != "" {
			return TextEntry{Text: text, Gender: g}
		}
	}
	// The '=' belongs to the text
	return TextEntry{Text: line}
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
