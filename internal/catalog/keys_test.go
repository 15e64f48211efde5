package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/maee-crypto/keephy-translations/internal/catalog"
)

func TestValidateKey(t *testing.T) {
	valid := []string{"greeting", "login.title", "password.reset.subject", "k1", "two-words"}
	for _, key := range valid {
		if err := catalog.ValidateKey(key); err != nil {
			t.Errorf("ValidateKey(%q) = %v, want nil", key, err)
		}
	}

	invalid := map[string]error{
		"":            catalog.ErrKeyRequired,
		"   ":         catalog.ErrKeyRequired,
		"hello world": catalog.ErrKeyInvalid,
		"a..b":        catalog.ErrKeyInvalid,
		"trailing.":   catalog.ErrKeyInvalid,
	}
	for key, want := range invalid {
		if err := catalog.ValidateKey(key); !errors.Is(err, want) {
			t.Errorf("ValidateKey(%q) = %v, want %v", key, err, want)
		}
	}

	long := strings.Repeat("a", catalog.MaxKeyLength+1)
	if err := catalog.ValidateKey(long); !errors.Is(err, catalog.ErrKeyTooLong) {
		t.Errorf("expected ErrKeyTooLong, got %v", err)
	}
}

func TestValidateLocale(t *testing.T) {
	valid := []string{"en", "fr", "pt-BR", "zh-Hans", "ar"}
	for _, locale := range valid {
		if err := catalog.ValidateLocale(locale); err != nil {
			t.Errorf("ValidateLocale(%q) = %v, want nil", locale, err)
		}
	}

	invalid := []string{"", "e", "english", "EN_US", "12"}
	for _, locale := range invalid {
		if err := catalog.ValidateLocale(locale); err == nil {
			t.Errorf("ValidateLocale(%q) = nil, want error", locale)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	if got := catalog.NormalizeLocale(" EN "); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
	if got := catalog.NormalizeLocale("PT-BR"); got != "pt-BR" {
		t.Fatalf("expected pt-BR, got %q", got)
	}
}
