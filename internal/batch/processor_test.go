package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/educalm/internal/audio"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []TextEntry
		wantErr     bool
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "plain texts",
			fileContent: `The water cycle has four stages.
Photosynthesis turns light into energy.`,
			want: []TextEntry{
				{Text: "The water cycle has four stages."},
				{Text: "Photosynthesis turns light into energy."},
			},
		},
		{
			name: "with voice",
			fileContent: `male = Chapter one
Female=Chapter two
neutral = Chapter three`,
			want: []TextEntry{
				{Text: "Chapter one", Gender: audio.Male},
				{Text: "Chapter two", Gender: audio.Female},
				{Text: "neutral = Chapter three"},
			},
		},
		{
			name: "empty lines and comments",
			fileContent: `
# lecture notes
First line

  Second line  

`,
			want: []TextEntry{
				{Text: "First line"},
				{Text: "Second line"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "one\r\nmale = two\r\nthree",
			want: []TextEntry{
				{Text: "one"},
				{Text: "two", Gender: audio.Male},
				{Text: "three"},
			},
		},
		{
			name:        "equals inside text",
			fileContent: `E = mc squared`,
			want: []TextEntry{
				{Text: "E = mc squared"},
			},
		},
		{
			name:        "voice without text",
			fileContent: `male =`,
			want: []TextEntry{
				{Text: "male ="},
			},
		},
		{
			name:        "arabic text",
			fileContent: "female = مرحبا بكم في الدرس",
			want: []TextEntry{
				{Text: "مرحبا بكم في الدرس", Gender: audio.Female},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "test.txt")
			err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644)
			if err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadBatchFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix line endings",
			input: "line1\nline2\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "windows line endings",
			input: "line1\r\nline2\r\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "mixed line endings",
			input: "line1\nline2\r\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single line no ending",
			input: "single line",
			want:  []string{"single line"},
		},
		{
			name:  "trailing newline",
			input: "line1\nline2\n",
			want:  []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines() = %v, want %v", got, tt.want)
			}
		})
	}
}
