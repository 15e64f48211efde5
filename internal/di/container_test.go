package di

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/internal/runtimeconfig"
)

func TestNewContainerDefaultsToMemoryRepositories(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if _, ok := container.EntryRepository().(*catalog.MemoryEntryRepository); !ok {
		t.Fatalf("expected memory entry repository, got %T", container.EntryRepository())
	}
	if _, ok := container.TermRepository().(*glossary.MemoryTermRepository); !ok {
		t.Fatalf("expected memory term repository, got %T", container.TermRepository())
	}
	if container.CatalogService() == nil {
		t.Fatal("expected catalog service to be wired")
	}
	if container.GlossaryService() == nil {
		t.Fatal("expected glossary service to be wired")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = ""

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewContainerWithBunDBUsesBunRepositories(t *testing.T) {
	sqldb, err := sql.Open("sqlite3", "file:di_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithBunDB(db))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if _, ok := container.EntryRepository().(*catalog.BunEntryRepository); !ok {
		t.Fatalf("expected bun entry repository, got %T", container.EntryRepository())
	}
	if _, ok := container.TermRepository().(*glossary.BunTermRepository); !ok {
		t.Fatalf("expected bun term repository, got %T", container.TermRepository())
	}
}

func TestNewContainerServiceOverrides(t *testing.T) {
	repo := catalog.NewMemoryEntryRepository()
	svc := catalog.NewService(repo)

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithCatalogService(svc))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.CatalogService() != svc {
		t.Fatal("expected catalog service override to win")
	}
}

func TestContainerServicesRoundTrip(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	ctx := context.Background()
	entry, err := container.CatalogService().Upsert(ctx, catalog.UpsertEntryRequest{
		Namespace: "ui",
		Key:       "buttons.save",
		Locale:    "en",
		Value:     "Save",
		CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if entry.Value != "Save" {
		t.Fatalf("expected value Save, got %q", entry.Value)
	}

	if _, err := container.GlossaryService().CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID:  "t1",
		Term:      "invoice",
		CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create term: %v", err)
	}
}

func TestNewContainerProvisionsCacheWhenEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if !cfg.Cache.Enabled {
		t.Fatal("default config expected to enable caching")
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if container.cacheService == nil {
		t.Fatal("expected cache service to be provisioned")
	}
	if container.keySerializer == nil {
		t.Fatal("expected key serializer to be provisioned")
	}
}

func TestNewContainerRespectsRepositoryOverridesWithBunDB(t *testing.T) {
	sqldb, err := sql.Open("sqlite3", "file:di_override_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	memoryRepo := catalog.NewMemoryEntryRepository()
	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithBunDB(db), WithEntryRepository(memoryRepo))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if container.EntryRepository() != catalog.EntryRepository(memoryRepo) {
		t.Fatalf("expected explicit repository override to win, got %T", container.EntryRepository())
	}
	if _, ok := container.TermRepository().(*glossary.BunTermRepository); !ok {
		t.Fatalf("expected bun term repository for unset slot, got %T", container.TermRepository())
	}
}
