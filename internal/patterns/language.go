package patterns

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a canonical language name such as "English" or "Dutch"
type Language string

// Supported languages. The first five carry full rule tables; Italian and
// Portuguese are only known to language detection.
const (
	English    Language = "English"
	Dutch      Language = "Dutch"
	German     Language = "German"
	French     Language = "French"
	Spanish    Language = "Spanish"
	Italian    Language = "Italian"
	Portuguese Language = "Portuguese"
)

// DefaultLanguage is used whenever a language is missing or unknown
const DefaultLanguage = English

var isoCodes = map[string]Language{
	"en": English,
	"nl": Dutch,
	"de": German,
	"fr": French,
	"es": Spanish,
	"it": Italian,
	"pt": Portuguese,
}

var languageNames = map[string]Language{
	"english":    English,
	"dutch":      Dutch,
	"nederlands": Dutch,
	"flemish":    Dutch,
	"german":     German,
	"deutsch":    German,
	"french":     French,
	"français":   French,
	"francais":   French,
	"spanish":    Spanish,
	"español":    Spanish,
	"espanol":    Spanish,
	"castellano": Spanish,
	"italian":    Italian,
	"italiano":   Italian,
	"portuguese": Portuguese,
	"português":  Portuguese,
	"portugues":  Portuguese,
}

// Code returns the ISO 639-1 code of the language
func (l Language) Code() string {
	for code, lang := range isoCodes {
		if lang == l {
			return code
		}
	}
	return ""
}

// Lookup normalizes a language code or name. ok is false when the input is
// not recognized; the returned language is then DefaultLanguage.
func Lookup(codeOrName string) (Language, bool) {
	s := strings.ToLower(strings.TrimSpace(codeOrName))
	if s == "" {
		return DefaultLanguage, false
	}
	if lang, ok := languageNames[s]; ok {
		return lang, true
	}
	if lang, ok := isoCodes[s]; ok {
		return lang, true
	}
	// regional tags such as nl-NL, de_AT or pt-BR
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return DefaultLanguage, false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultLanguage, false
	}
	if lang, ok := isoCodes[base.String()]; ok {
		return lang, true
	}
	return DefaultLanguage, false
}

// Canonical normalizes a language code or name, falling back to English
func Canonical(codeOrName string) Language {
	lang, _ := Lookup(codeOrName)
	return lang
}

// Languages returns every language known to the repository in a stable order
func Languages() []Language {
	return []Language{English, Dutch, German, French, Spanish, Italian, Portuguese}
}

// resolve returns the entry for lang, or the English entry when lang has none
func resolve[T any](table map[Language]T, codeOrName string) T {
	if v, ok := table[Canonical(codeOrName)]; ok {
		return v
	}
	return table[DefaultLanguage]
}

func supported[T any](table map[Language]T) []Language {
	var out []Language
	for _, lang := range Languages() {
		if _, ok := table[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}
