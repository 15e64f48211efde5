package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	translations "github.com/maee-crypto/keephy-translations"
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/di"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/pkg/testsupport"
)

func main() {
	ctx := context.Background()

	bunDB, err := testsupport.NewBunDB("example")
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer bunDB.Close()
	bunDB.SetMaxOpenConns(1)

	if err := testsupport.CreateSchema(ctx, bunDB); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	cfg := translations.DefaultConfig()
	cfg.Locales = []string{"en", "fr", "ar"}
	cfg.Catalog.RequiredLocales = []string{"en", "fr", "ar"}
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "info"

	module, err := translations.New(cfg, di.WithBunDB(bunDB))
	if err != nil {
		log.Fatalf("initialise translations: %v", err)
	}

	catalogSvc := module.Catalog()
	glossarySvc := module.Glossary()

	results, err := catalogSvc.UpsertKey(ctx, catalog.UpsertKeyRequest{
		Namespace: "ui",
		Key:       "buttons.save",
		Values: map[string]string{
			"en": "Save",
			"fr": "Enregistrer",
		},
		CreatedBy: "demo",
	})
	if err != nil {
		log.Fatalf("upsert key: %v", err)
	}
	for _, result := range results {
		if result.Err != nil {
			log.Fatalf("upsert locale %s: %v", result.Locale, result.Err)
		}
	}

	modified, err := catalogSvc.Publish(ctx, catalog.PublishRequest{
		Namespace:   "ui",
		Keys:        []string{"buttons.save"},
		PublishedBy: "demo",
	})
	if err != nil {
		log.Fatalf("publish: %v", err)
	}
	fmt.Printf("published %d entries\n", modified)

	bundle, err := catalogSvc.ResolveBundle(ctx, catalog.BundleRequest{
		Namespaces: []string{"ui"},
		Locales:    cfg.Locales,
		Status:     "published",
	})
	if err != nil {
		log.Fatalf("resolve bundle: %v", err)
	}
	printJSON("bundle", bundle)

	missing, err := catalogSvc.FindMissing(ctx, "ui", cfg.Catalog.RequiredLocales)
	if err != nil {
		log.Fatalf("find missing: %v", err)
	}
	printJSON("missing", missing)

	if _, err := glossarySvc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID:  "acme",
		Term:      "invoice",
		CreatedBy: "demo",
		Translations: []glossary.TermTranslation{
			{Locale: "fr", Value: "facture", IsPreferred: true},
		},
	}); err != nil {
		log.Fatalf("create term: %v", err)
	}
	if _, err := glossarySvc.RecordUsage(ctx, "acme", "invoice"); err != nil {
		log.Fatalf("record usage: %v", err)
	}

	localized, err := glossarySvc.ListForLocale(ctx, glossary.ListForLocaleRequest{
		TenantID: "acme",
		Locale:   "fr",
	})
	if err != nil {
		log.Fatalf("list glossary: %v", err)
	}
	printJSON("glossary", localized)
}

func printJSON(label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", label, err)
	}
	fmt.Printf("%s:\n%s\n", label, data)
}
