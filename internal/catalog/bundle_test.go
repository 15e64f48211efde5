package catalog_test

import (
	"context"
	"testing"

	"github.com/maee-crypto/keephy-translations/internal/catalog"
)

func TestResolveBundleStructuralCompleteness(t *testing.T) {
	svc, _ := newTestService(t, nil)

	bundle, err := svc.ResolveBundle(context.Background(), catalog.BundleRequest{
		Namespaces: []string{"ui"},
		Locales:    []string{"en", "fr"},
		Status:     "published",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	locales, ok := bundle["ui"]
	if !ok {
		t.Fatal("expected ui namespace key in empty bundle")
	}
	for _, locale := range []string{"en", "fr"} {
		keys, ok := locales[locale]
		if !ok {
			t.Fatalf("expected %s locale key in empty bundle", locale)
		}
		if len(keys) != 0 {
			t.Fatalf("expected empty inner map for %s, got %v", locale, keys)
		}
	}
}

func TestResolveBundleGroupsEntries(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	seed := []struct {
		namespace, key, locale, value string
	}{
		{"ui", "greeting", "en", "Hello"},
		{"ui", "greeting", "fr", "Bonjour"},
		{"ui", "farewell", "en", "Bye"},
		{"errors", "required", "en", "Required field"},
	}
	for _, row := range seed {
		if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
			Namespace: row.namespace, Key: row.key, Locale: row.locale, Value: row.value, CreatedBy: "alice",
		}); err != nil {
			t.Fatalf("upsert %s/%s/%s: %v", row.namespace, row.key, row.locale, err)
		}
	}
	for _, ns := range []string{"ui", "errors"} {
		if _, err := svc.Publish(ctx, catalog.PublishRequest{
			Namespace: ns, Keys: []string{"greeting", "farewell", "required"}, PublishedBy: "bob",
		}); err != nil {
			t.Fatalf("publish %s: %v", ns, err)
		}
	}

	bundle, err := svc.ResolveBundle(ctx, catalog.BundleRequest{
		Namespaces: []string{"ui", "errors"},
		Locales:    []string{"en", "fr"},
		Status:     "published",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got := bundle["ui"]["en"]["greeting"]; got != "Hello" {
		t.Fatalf("expected Hello, got %q", got)
	}
	if got := bundle["ui"]["fr"]["greeting"]; got != "Bonjour" {
		t.Fatalf("expected Bonjour, got %q", got)
	}
	if got := bundle["errors"]["en"]["required"]; got != "Required field" {
		t.Fatalf("expected error message, got %q", got)
	}
	if len(bundle["errors"]["fr"]) != 0 {
		t.Fatalf("expected empty errors/fr map, got %v", bundle["errors"]["fr"])
	}
}

func TestResolveBundleFiltersByStatus(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui", Key: "draft-only", Locale: "en", Value: "wip", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	published, err := svc.ResolveBundle(ctx, catalog.BundleRequest{
		Namespaces: []string{"ui"}, Locales: []string{"en"}, Status: "published",
	})
	if err != nil {
		t.Fatalf("resolve published: %v", err)
	}
	if len(published["ui"]["en"]) != 0 {
		t.Fatalf("draft entry leaked into published bundle: %v", published)
	}

	drafts, err := svc.ResolveBundle(ctx, catalog.BundleRequest{
		Namespaces: []string{"ui"}, Locales: []string{"en"}, Status: "draft",
	})
	if err != nil {
		t.Fatalf("resolve draft: %v", err)
	}
	if drafts["ui"]["en"]["draft-only"] != "wip" {
		t.Fatalf("expected draft bundle to contain entry, got %v", drafts)
	}
}

func TestBuildLocaleBundle(t *testing.T) {
	entries := []*catalog.Entry{
		{Namespace: "ui", Key: "a", Locale: "en", Value: "A"},
		{Namespace: "ui", Key: "b", Locale: "es", Value: "B"},
	}

	bundle := catalog.BuildLocaleBundle("ui", []string{"en", "es", "fr"}, entries)
	if bundle["en"]["a"] != "A" || bundle["es"]["b"] != "B" {
		t.Fatalf("unexpected bundle %v", bundle)
	}
	if keys, ok := bundle["fr"]; !ok || len(keys) != 0 {
		t.Fatalf("expected empty fr map, got %v ok=%v", keys, ok)
	}
}
