package catalog_test

import (
	"context"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/domain"
)

func newCachedEntryRepo(t *testing.T) *catalog.BunEntryRepository {
	t.Helper()

	db := newEntryTestDB(t)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	return catalog.NewBunEntryRepositoryWithCache(db, cacheSvc, repocache.NewDefaultKeySerializer())
}

func TestBunEntryRepository_CachedLookupsStayDistinct(t *testing.T) {
	repo := newCachedEntryRepo(t)
	svc := catalog.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui", Key: "greeting", Locale: "en", Value: "Hello", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("upsert greeting: %v", err)
	}
	if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui", Key: "farewell", Locale: "fr", Value: "Au revoir", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("upsert farewell: %v", err)
	}

	// Warm a lookup, then ask for the other entry.
	greeting, err := repo.Get(ctx, domain.NamespaceUI, "greeting", "en")
	if err != nil {
		t.Fatalf("get greeting: %v", err)
	}
	if greeting.Value != "Hello" {
		t.Fatalf("expected Hello, got %q", greeting.Value)
	}

	farewell, err := repo.Get(ctx, domain.NamespaceUI, "farewell", "fr")
	if err != nil {
		t.Fatalf("get farewell: %v", err)
	}
	if farewell.Value != "Au revoir" {
		t.Fatalf("expected Au revoir, got %q", farewell.Value)
	}
	if farewell.Key != "farewell" || farewell.Locale != "fr" {
		t.Fatalf("lookup returned wrong row: %s/%s", farewell.Key, farewell.Locale)
	}
}

func TestBunEntryRepository_CachedReadsSeeRawWrites(t *testing.T) {
	repo := newCachedEntryRepo(t)
	svc := catalog.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui", Key: "greeting", Locale: "en", Value: "Hello", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := repo.Get(ctx, domain.NamespaceUI, "greeting", "en"); err != nil {
		t.Fatalf("warm lookup: %v", err)
	}

	// Replacement and publication run as raw statements; lookups afterwards
	// must reflect them.
	if _, err := svc.Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui", Key: "greeting", Locale: "en", Value: "Hi there", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	replaced, err := repo.Get(ctx, domain.NamespaceUI, "greeting", "en")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if replaced.Value != "Hi there" {
		t.Fatalf("expected replaced value, got %q", replaced.Value)
	}

	if _, err := svc.Publish(ctx, catalog.PublishRequest{
		Namespace: "ui", Keys: []string{"greeting"}, PublishedBy: "reviewer",
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	published, err := repo.Get(ctx, domain.NamespaceUI, "greeting", "en")
	if err != nil {
		t.Fatalf("get after publish: %v", err)
	}
	if published.Status != domain.StatusPublished {
		t.Fatalf("expected published status, got %s", published.Status)
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected published_at to be stamped")
	}
}
