package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// MemoryEntryRepository is an in-memory implementation for scaffolding and
// tests. It mirrors the store semantics the bun repository relies on: upsert
// keyed by (namespace, key, locale) and bulk publish as one guarded sweep.
type MemoryEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryEntryRepository creates an empty in-memory entry repository.
func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{
		entries: make(map[string]*Entry),
	}
}

// Upsert inserts or replaces the entry for its (namespace, key, locale)
// triple. Identity, creation time, first-publish timestamp, and review
// metadata survive replacement.
func (m *MemoryEntryRepository) Upsert(_ context.Context, record *Entry) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneEntry(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}

	key := entryKey(record.Namespace, record.Key, record.Locale)
	if existing, ok := m.entries[key]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
		copied.PublishedAt = existing.PublishedAt
		copied.ReviewedBy = existing.ReviewedBy
		copied.ReviewedAt = existing.ReviewedAt
	}

	m.entries[key] = copied
	return cloneEntry(copied), nil
}

// Get retrieves an entry by its composite key.
func (m *MemoryEntryRepository) Get(_ context.Context, namespace domain.Namespace, key, locale string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.entries[entryKey(namespace, key, locale)]
	if !ok {
		return nil, &NotFoundError{Resource: "translation_entry", Key: entryKey(namespace, key, locale)}
	}
	return cloneEntry(rec), nil
}

// Update replaces the stored record matching the entry's composite key.
func (m *MemoryEntryRepository) Update(_ context.Context, record *Entry) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := entryKey(record.Namespace, record.Key, record.Locale)
	if _, ok := m.entries[key]; !ok {
		return nil, &NotFoundError{Resource: "translation_entry", Key: key}
	}

	copied := cloneEntry(record)
	m.entries[key] = copied
	return cloneEntry(copied), nil
}

// List returns every entry matching the filter.
func (m *MemoryEntryRepository) List(_ context.Context, filter ListFilter) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Entry, 0)
	for _, rec := range m.entries {
		if matchesFilter(rec, filter) {
			out = append(out, cloneEntry(rec))
		}
	}
	return out, nil
}

// PublishMany transitions every matching draft or reviewed active entry to
// published in a single locked sweep, stamping the first-publish timestamp
// only when absent.
func (m *MemoryEntryRepository) PublishMany(_ context.Context, namespace domain.Namespace, keys []string, publishedBy string, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keySet := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keySet[k] = struct{}{}
	}

	modified := 0
	for _, rec := range m.entries {
		if rec.Namespace != namespace || !rec.IsActive {
			continue
		}
		if _, ok := keySet[rec.Key]; !ok {
			continue
		}
		if rec.Status != domain.StatusDraft && rec.Status != domain.StatusReviewed {
			continue
		}

		rec.Status = domain.StatusPublished
		if rec.PublishedAt == nil {
			stamped := now
			rec.PublishedAt = &stamped
		}
		rec.CreatedBy = publishedBy
		rec.UpdatedAt = now
		modified++
	}
	return modified, nil
}

// CountByStatus counts active entries grouped by status.
func (m *MemoryEntryRepository) CountByStatus(_ context.Context, namespace domain.Namespace, locale string) (map[domain.Status]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[domain.Status]int)
	for _, rec := range m.entries {
		if rec.Namespace != namespace || !rec.IsActive {
			continue
		}
		if locale != "" && rec.Locale != locale {
			continue
		}
		counts[rec.Status]++
	}
	return counts, nil
}

func matchesFilter(rec *Entry, filter ListFilter) bool {
	if filter.ActiveOnly && !rec.IsActive {
		return false
	}
	if filter.Status != "" && rec.Status != filter.Status {
		return false
	}
	if len(filter.Namespaces) > 0 && !containsNamespace(filter.Namespaces, rec.Namespace) {
		return false
	}
	if len(filter.Keys) > 0 && !containsString(filter.Keys, rec.Key) {
		return false
	}
	if len(filter.Locales) > 0 && !containsString(filter.Locales, rec.Locale) {
		return false
	}
	return true
}

func containsNamespace(values []domain.Namespace, target domain.Namespace) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func cloneEntry(src *Entry) *Entry {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Variables) > 0 {
		copied.Variables = append([]Variable(nil), src.Variables...)
	}
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	if src.Context != nil {
		v := *src.Context
		copied.Context = &v
	}
	if src.Notes != nil {
		v := *src.Notes
		copied.Notes = &v
	}
	if src.ReviewedBy != nil {
		v := *src.ReviewedBy
		copied.ReviewedBy = &v
	}
	if src.ReviewedAt != nil {
		v := *src.ReviewedAt
		copied.ReviewedAt = &v
	}
	if src.PublishedAt != nil {
		v := *src.PublishedAt
		copied.PublishedAt = &v
	}
	if src.Confidence != nil {
		v := *src.Confidence
		copied.Confidence = &v
	}
	return &copied
}
