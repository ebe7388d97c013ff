package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the languages the site is authored in.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"

	// Default is used whenever a requested code is not supported.
	Default = English
)

var supported = []Locale{English, Portuguese}

var tagMatcher = language.NewMatcher([]language.Tag{language.English, language.Portuguese})

// Supported returns the supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// String returns the locale code.
func (l Locale) String() string { return string(l) }

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	for _, s := range supported {
		if s == l {
			return true
		}
	}
	return false
}

// Parse maps loosely written user input such as "PT" or "pt-BR" to a
// supported locale. It serves the ?lang= parameter and the lang cookie;
// content lookups go through Resolve.
func Parse(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i != -1 {
		code = code[:i]
	}
	l := Locale(code)
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// Resolve selects the locale for an exact code. Anything other than a
// supported code, including "PT" or "pt-BR", resolves to Default.
func Resolve(code string) Locale {
	if l := Locale(code); l.Valid() {
		return l
	}
	return Default
}

// Match chooses the best supported locale for an Accept-Language header.
func Match(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return Default
	}
	return supported[idx]
}
