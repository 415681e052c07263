package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display-language tag.
type Language string

const (
	LanguageZhTW Language = "zh-TW"
	LanguageEnUS Language = "en-US"

	DefaultLanguage = LanguageZhTW
)

// SupportedLanguages lists every language the UI ships strings for, default first.
var SupportedLanguages = []Language{LanguageZhTW, LanguageEnUS}

// ParseLanguage canonicalises s (e.g. "en-us", "zh_TW") and rejects unsupported tags.
func ParseLanguage(s string) (Language, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if raw == "" {
		return "", fmt.Errorf("domain: empty language tag")
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("domain: parse language %q: %w", s, err)
	}
	canonical := Language(tag.String())
	for _, l := range SupportedLanguages {
		if l == canonical {
			return l, nil
		}
	}
	return "", fmt.Errorf("domain: unsupported language %q", s)
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, s := range SupportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == LanguageZhTW {
		return LanguageEnUS
	}
	return LanguageZhTW
}

// Tag returns the x/text tag for l.
func (l Language) Tag() language.Tag {
	return language.MustParse(string(l))
}

func (l Language) String() string {
	return string(l)
}
