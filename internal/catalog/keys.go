package catalog

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

var localePattern = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

// NormalizeKey lowercases and trims a translation key. Keys are dot-joined
// slug segments, e.g. "login.title" or "password.reset.subject".
func NormalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ValidateKey reports whether every dot-separated segment of the key is a
// valid slug.
func ValidateKey(value string) error {
	key := NormalizeKey(value)
	if key == "" {
		return ErrKeyRequired
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	for _, segment := range strings.Split(key, ".") {
		if !slug.IsValid(segment) {
			return ErrKeyInvalid
		}
	}
	return nil
}

// NormalizeLocale trims a locale code and lowercases its language part.
func NormalizeLocale(value string) string {
	trimmed := strings.TrimSpace(value)
	if idx := strings.IndexByte(trimmed, '-'); idx > 0 {
		return strings.ToLower(trimmed[:idx]) + trimmed[idx:]
	}
	return strings.ToLower(trimmed)
}

// ValidateLocale checks a locale code against the supported shape
// (language, optionally followed by a region or script subtag).
func ValidateLocale(value string) error {
	locale := NormalizeLocale(value)
	if locale == "" {
		return ErrLocaleRequired
	}
	if len(locale) > MaxLocaleLength || !localePattern.MatchString(locale) {
		return ErrLocaleInvalid
	}
	return nil
}
