package audio

import (
	"errors"
	"testing"

	"codeberg.org/snonux/educalm/internal/i18n"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "English sentence",
			text:    "Hello, how are you?",
			wantErr: false,
		},
		{
			name:    "Arabic sentence",
			text:    "مرحبا بالعالم",
			wantErr: false,
		},
		{
			name:    "numbers only",
			text:    "12345",
			wantErr: false,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			text:    "   \t\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrEmptyText) {
				t.Errorf("ValidateText() error = %v, want ErrEmptyText", err)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want i18n.Language
	}{
		{"english", "Read me aloud", i18n.English},
		{"arabic", "اقرأ هذا النص", i18n.Arabic},
		{"mixed", "Lesson 1: الدرس الأول", i18n.Arabic},
		{"block start", "؀", i18n.Arabic},
		{"block end", "ۿ", i18n.Arabic},
		{"just past block", "܀", i18n.English},
		{"cyrillic", "ябълка", i18n.English},
		{"empty", "", i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("مرحبا") {
		t.Error("IsRTL() = false for Arabic text")
	}
	if IsRTL("hello") {
		t.Error("IsRTL() = true for English text")
	}
}
