package audio

import (
	"errors"
	"strings"
	"unicode"

	"codeberg.org/snonux/educalm/internal/i18n"
)

// ErrEmptyText is returned for blank input.
var ErrEmptyText = errors.New("text cannot be empty")

// arabicBlock is the Unicode Arabic block, U+0600 to U+06FF.
var arabicBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06FF, Stride: 1}},
}

// ValidateText rejects text that has nothing to speak.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// DetectLanguage reports Arabic when any rune falls in the Arabic block
// and English otherwise.
func DetectLanguage(text string) i18n.Language {
	for _, r := range text {
		if unicode.Is(arabicBlock, r) {
			return i18n.Arabic
		}
	}
	return i18n.English
}

// IsRTL reports whether text is written right to left.
func IsRTL(text string) bool {
	return i18n.DirectionOf(DetectLanguage(text)) == i18n.RTL
}
