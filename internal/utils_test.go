package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello world", "hello_world"},
		{"notes-2024_v1", "notes-2024_v1"},
		{"a/b\\c:d", "a_b_c_d"},
		{"مرحبا بكم", "مرحبا_بكم"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"line one\nline   two", 40, "line one line two"},
		{"The quick brown fox", 9, "The quick…"},
		{"The quick brown fox", 10, "The quick…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := Snippet(tt.text, tt.n); got != tt.want {
			t.Errorf("Snippet(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
		}
	}
}
