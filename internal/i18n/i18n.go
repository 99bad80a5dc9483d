// Package i18n holds the static display strings of educalm for every
// supported language, plus text direction.
package i18n

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	French  Language = "fr"
	Spanish Language = "es"
	Turkish Language = "tr"
	German  Language = "de"
)

// Direction is the writing direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Option describes a selectable language in the settings screen.
type Option struct {
	Code Language
	Name string
	Flag string
}

// Options lists the selectable languages in display order.
var Options = []Option{
	{English, "English", "🇺🇸"},
	{Arabic, "العربية", "🇸🇦"},
	{French, "Français", "🇫🇷"},
	{Spanish, "Español", "🇪🇸"},
	{Turkish, "Türkçe", "🇹🇷"},
	{German, "Deutsch", "🇩🇪"},
}

var tables = map[Language]map[string]string{
	English: english,
	Arabic:  arabic,
	French:  french,
	Spanish: spanish,
	Turkish: turkish,
	German:  german,
}

// Supported reports whether lang has a translation table.
func Supported(lang Language) bool {
	_, ok := tables[lang]
	return ok
}

// Translations is the string table of one language.
type Translations struct {
	lang  Language
	texts map[string]string
}

// For returns the table for lang, falling back to English.
func For(lang Language) Translations {
	if t, ok := tables[lang]; ok {
		return Translations{lang: lang, texts: t}
	}
	return Translations{lang: English, texts: english}
}

// Language returns the language the table resolved to.
func (t Translations) Language() Language {
	return t.lang
}

// T returns the text for key. Unknown keys render as the key itself.
func (t Translations) T(key string) string {
	if s, ok := t.texts[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}

// Dir returns the writing direction of the table.
func (t Translations) Dir() Direction {
	return DirectionOf(t.lang)
}

// DirectionOf returns RTL for Arabic and LTR for everything else.
func DirectionOf(lang Language) Direction {
	if lang == Arabic {
		return RTL
	}
	return LTR
}
