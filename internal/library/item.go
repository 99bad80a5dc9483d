package library

import (
	"strconv"
	"time"
)

// AudioItem is one generated clip.
type AudioItem struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	AudioBase64 string `json:"audioBase64"`
	Date        string `json:"date"`
}

// NewItem builds an item whose id and date derive from now.
func NewItem(text, audioBase64 string, now time.Time) AudioItem {
	return AudioItem{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Text:        text,
		AudioBase64: audioBase64,
		Date:        now.UTC().Format(time.RFC3339),
	}
}

// Time parses the item date. The zero time is returned for a
// malformed date.
func (i AudioItem) Time() time.Time {
	t, err := time.Parse(time.RFC3339, i.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
