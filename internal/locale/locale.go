// Package locale defines the closed set of languages the site is written in
// and the rules for picking one from a request.
package locale

import (
	"fmt"
	"strings"

	"github.com/nfrund/safebite/internal/domain"
	"golang.org/x/text/language"
)

// Locale is a supported content language code.
type Locale string

const (
	English Locale = "en"
	Korean  Locale = "ko"
)

// Default is the locale every fresh page load starts in.
const Default = English

var supported = []Locale{English, Korean}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Korean})

// Supported returns the supported locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a raw language value ("ko", "ko-KR", "EN") to a supported locale.
func Parse(value string) (Locale, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: empty value", domain.ErrUnsupportedLocale)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, value)
	}
	base, _ := tag.Base()
	l := Locale(base.String())
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, value)
	}
	return l, nil
}

// Normalize coerces unknown values to the fallback locale.
func Normalize(value string, fallback Locale) Locale {
	if l, err := Parse(value); err == nil {
		return l
	}
	return fallback
}

// Match picks the best supported locale for an Accept-Language header.
func Match(acceptLanguage string, fallback Locale) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[idx]
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	for _, s := range supported {
		if s == l {
			return true
		}
	}
	return false
}

// Other returns the locale the switch control moves to from l.
func (l Locale) Other() Locale {
	if l == Korean {
		return English
	}
	return Korean
}

// Tag returns the BCP 47 tag for l.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// Label is the name of the language written in that language.
func (l Locale) Label() string {
	switch l {
	case Korean:
		return "한국어"
	default:
		return "English"
	}
}

func (l Locale) String() string {
	return string(l)
}
