package i18n

import "testing"

func TestEveryTableDefinesEveryKey(t *testing.T) {
	for lang, table := range tables {
		for _, key := range allKeys {
			if table[key] == "" {
				t.Errorf("%s: missing translation for %q", lang, key)
			}
		}
		if len(table) != len(allKeys) {
			t.Errorf("%s: has %d entries, want %d", lang, len(table), len(allKeys))
		}
	}
}

func TestForFallsBackToEnglish(t *testing.T) {
	tr := For("xx")
	if tr.Language() != English {
		t.Errorf("Language() = %s, want en", tr.Language())
	}
	if got := tr.T(KeyAppName); got != "Educalm" {
		t.Errorf("T(appName) = %q, want Educalm", got)
	}
	if got := tr.T("noSuchKey"); got != "noSuchKey" {
		t.Errorf("T(unknown) = %q, want key echoed", got)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		lang Language
		want Direction
	}{
		{English, LTR},
		{Arabic, RTL},
		{French, LTR},
		{German, LTR},
	}
	for _, tt := range tests {
		if got := For(tt.lang).Dir(); got != tt.want {
			t.Errorf("Dir(%s) = %s, want %s", tt.lang, got, tt.want)
		}
	}
}

func TestMessageFallback(t *testing.T) {
	if got := For(Arabic).Message(MsgSignedOut); got != "تم تسجيل الخروج بنجاح" {
		t.Errorf("arabic signed-out message = %q", got)
	}
	if got := For(Arabic).Message(MsgInvalidPDF); got != "Please select a valid PDF file" {
		t.Errorf("arabic falls back to english, got %q", got)
	}
	if got := For(French).Message(MsgAlreadySaved); got != "Already saved" {
		t.Errorf("french falls back to english, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	for _, opt := range Options {
		if !Supported(opt.Code) {
			t.Errorf("option %s has no table", opt.Code)
		}
	}
	if Supported("xx") {
		t.Error("xx should not be supported")
	}
}
