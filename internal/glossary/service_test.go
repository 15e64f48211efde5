package glossary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maee-crypto/keephy-translations/internal/domain"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
)

func newTestService(t *testing.T) glossary.Service {
	t.Helper()
	return glossary.NewService(glossary.NewMemoryTermRepository())
}

func TestCreateTermConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := glossary.CreateTermRequest{
		TenantID:  "tenant-1",
		Term:      "invoice",
		Category:  "business",
		CreatedBy: "alice",
	}
	if _, err := svc.CreateTerm(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.CreateTerm(ctx, req)
	var conflict *glossary.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// Same term in a different tenant is fine.
	req.TenantID = "tenant-2"
	if _, err := svc.CreateTerm(ctx, req); err != nil {
		t.Fatalf("create in second tenant: %v", err)
	}
}

func TestSetTranslationPreferredUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "greeting", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetTranslation(ctx, glossary.SetTranslationRequest{
		TenantID: "t1", Term: "greeting", Locale: "en", Value: "Hello", IsPreferred: true,
	}); err != nil {
		t.Fatalf("set en: %v", err)
	}

	term, err := svc.SetTranslation(ctx, glossary.SetTranslationRequest{
		TenantID: "t1", Term: "greeting", Locale: "fr", Value: "Bonjour", IsPreferred: true,
	})
	if err != nil {
		t.Fatalf("set fr: %v", err)
	}

	preferredCount := 0
	for _, tr := range term.Translations {
		if tr.IsPreferred {
			preferredCount++
			if tr.Locale != "fr" {
				t.Fatalf("expected fr to be preferred, got %s", tr.Locale)
			}
		}
	}
	if preferredCount != 1 {
		t.Fatalf("expected exactly one preferred translation, got %d", preferredCount)
	}
}

func TestSetTranslationReplacesLocale(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "invoice", CreatedBy: "alice",
		Translations: []glossary.TermTranslation{
			{Locale: "en", Value: "invoice"},
			{Locale: "fr", Value: "facture"},
		},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	term, err := svc.SetTranslation(ctx, glossary.SetTranslationRequest{
		TenantID: "t1", Term: "invoice", Locale: "fr", Value: "note de frais",
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if len(term.Translations) != 2 {
		t.Fatalf("expected 2 translations after replace, got %d", len(term.Translations))
	}
	if got := glossary.ResolveTranslation(term, "fr"); got != "note de frais" {
		t.Fatalf("expected replaced value, got %q", got)
	}
}

func TestRecordUsageIncrements(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "churn", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.RecordUsage(ctx, "t1", "churn"); err != nil {
			t.Fatalf("record usage %d: %v", i, err)
		}
	}

	term, err := svc.GetTerm(ctx, "t1", "churn")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if term.UsageCount != 3 {
		t.Fatalf("expected usage count 3, got %d", term.UsageCount)
	}
	if term.LastUsed == nil || time.Since(*term.LastUsed) > time.Minute {
		t.Fatalf("expected recent last_used, got %v", term.LastUsed)
	}
}

func TestSearchOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []struct {
		term  string
		usage int
	}{
		{"invoice", 2},
		{"invoice line", 5},
		{"inventory", 5},
		{"billing", 9},
	}
	for _, row := range seed {
		if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
			TenantID: "t1", Term: row.term, CreatedBy: "alice",
		}); err != nil {
			t.Fatalf("create %s: %v", row.term, err)
		}
		for i := 0; i < row.usage; i++ {
			if _, err := svc.RecordUsage(ctx, "t1", row.term); err != nil {
				t.Fatalf("usage %s: %v", row.term, err)
			}
		}
	}

	results, err := svc.Search(ctx, "t1", "inv", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	got := make([]string, 0, len(results))
	for _, term := range results {
		got = append(got, term.Term)
	}
	want := []string{"inventory", "invoice line", "invoice"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "Churn Rate", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := svc.Search(ctx, "t1", "CHURN", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Term != "Churn Rate" {
		t.Fatalf("expected Churn Rate, got %+v", results)
	}
}

func TestListForLocaleAttachesResolution(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "invoice", Category: "business", CreatedBy: "alice",
		Translations: []glossary.TermTranslation{
			{Locale: "fr", Value: "facture", Context: "comptabilité"},
			{Locale: "es", Value: "factura", IsPreferred: true},
		},
	}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "churn", Category: "technical", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create churn: %v", err)
	}

	results, err := svc.ListForLocale(ctx, glossary.ListForLocaleRequest{
		TenantID: "t1", Locale: "fr",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byTerm := make(map[string]glossary.LocalizedTerm, len(results))
	for _, res := range results {
		byTerm[res.Term] = res
	}

	invoice := byTerm["invoice"]
	if invoice.Translation != "facture" || invoice.Context != "comptabilité" {
		t.Fatalf("unexpected invoice resolution %+v", invoice)
	}
	churn := byTerm["churn"]
	if churn.Translation != "churn" || churn.Context != "" {
		t.Fatalf("expected term-name fallback with empty context, got %+v", churn)
	}

	// Category filter narrows the listing.
	filtered, err := svc.ListForLocale(ctx, glossary.ListForLocaleRequest{
		TenantID: "t1", Locale: "fr", Category: "business",
	})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Term != "invoice" {
		t.Fatalf("expected only invoice, got %+v", filtered)
	}
}

func TestArchiveHidesFromListings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "legacy", CreatedBy: "alice",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	term, err := svc.Archive(ctx, "t1", "legacy")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if term.IsActive {
		t.Fatal("expected archived term to be inactive")
	}

	results, err := svc.Search(ctx, "t1", "legacy", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("archived term leaked into search: %+v", results)
	}
}

func TestCreateTermValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  glossary.CreateTermRequest
		want error
	}{
		{"missing tenant", glossary.CreateTermRequest{Term: "x", CreatedBy: "a"}, glossary.ErrTenantRequired},
		{"missing term", glossary.CreateTermRequest{TenantID: "t", CreatedBy: "a"}, glossary.ErrTermRequired},
		{"missing creator", glossary.CreateTermRequest{TenantID: "t", Term: "x"}, glossary.ErrCreatedByRequired},
		{"bad category", glossary.CreateTermRequest{TenantID: "t", Term: "x", CreatedBy: "a", Category: "fancy"}, glossary.ErrCategoryInvalid},
		{"duplicate locale", glossary.CreateTermRequest{
			TenantID: "t", Term: "x", CreatedBy: "a",
			Translations: []glossary.TermTranslation{
				{Locale: "en", Value: "a"},
				{Locale: "en", Value: "b"},
			},
		}, glossary.ErrDuplicateLocale},
		{"two preferred", glossary.CreateTermRequest{
			TenantID: "t", Term: "x", CreatedBy: "a",
			Translations: []glossary.TermTranslation{
				{Locale: "en", Value: "a", IsPreferred: true},
				{Locale: "fr", Value: "b", IsPreferred: true},
			},
		}, glossary.ErrMultiplePreferred},
	}

	for _, tc := range cases {
		if _, err := svc.CreateTerm(ctx, tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestUpdateTermPatchesFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTerm(ctx, glossary.CreateTermRequest{
		TenantID: "t1", Term: "invoice", CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	category := "legal"
	notes := "contract vocabulary"
	updated, err := svc.UpdateTerm(ctx, glossary.UpdateTermRequest{
		TenantID: "t1", TermID: created.ID, Category: &category, Notes: &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Category != domain.CategoryLegal {
		t.Fatalf("expected legal category, got %s", updated.Category)
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Fatalf("expected notes patch, got %v", updated.Notes)
	}

	if _, err := svc.UpdateTerm(ctx, glossary.UpdateTermRequest{TenantID: "t1", TermID: created.ID}); !errors.Is(err, glossary.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}
