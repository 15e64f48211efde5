package glossary

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTermRepository is an in-memory implementation for scaffolding and
// tests. Usage increments happen under the repository lock, mirroring the
// store-side atomic increment the bun repository issues.
type MemoryTermRepository struct {
	mu    sync.RWMutex
	terms map[uuid.UUID]*Term
	names map[string]uuid.UUID
}

// NewMemoryTermRepository creates an empty in-memory term repository.
func NewMemoryTermRepository() *MemoryTermRepository {
	return &MemoryTermRepository{
		terms: make(map[uuid.UUID]*Term),
		names: make(map[string]uuid.UUID),
	}
}

func termNameKey(tenantID, term string) string {
	return tenantID + "\x00" + strings.ToLower(term)
}

// Create inserts the term, rejecting duplicates per (tenant, term).
func (m *MemoryTermRepository) Create(_ context.Context, record *Term) (*Term, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := termNameKey(record.TenantID, record.Term)
	if _, exists := m.names[key]; exists {
		return nil, &ConflictError{TenantID: record.TenantID, Term: record.Term}
	}

	copied := cloneTerm(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.terms[copied.ID] = copied
	m.names[key] = copied.ID
	return cloneTerm(copied), nil
}

// GetByID retrieves a term by identifier within a tenant scope.
func (m *MemoryTermRepository) GetByID(_ context.Context, tenantID string, id uuid.UUID) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.terms[id]
	if !ok || rec.TenantID != tenantID {
		return nil, &NotFoundError{Resource: "glossary_term", Key: id.String()}
	}
	return cloneTerm(rec), nil
}

// GetByName retrieves a term by its case-insensitive name.
func (m *MemoryTermRepository) GetByName(_ context.Context, tenantID, term string) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.names[termNameKey(tenantID, term)]
	if !ok {
		return nil, &NotFoundError{Resource: "glossary_term", Key: term}
	}
	return cloneTerm(m.terms[id]), nil
}

// Update replaces the stored term.
func (m *MemoryTermRepository) Update(_ context.Context, record *Term) (*Term, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.terms[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "glossary_term", Key: record.ID.String()}
	}

	copied := cloneTerm(record)
	m.terms[copied.ID] = copied
	return cloneTerm(copied), nil
}

// List returns terms matching the filter, ordered by usage or name.
func (m *MemoryTermRepository) List(_ context.Context, filter TermFilter) ([]*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*Term, 0)
	for _, rec := range m.terms {
		if rec.TenantID != filter.TenantID {
			continue
		}
		if filter.ActiveOnly && !rec.IsActive {
			continue
		}
		if filter.Category != "" && rec.Category != filter.Category {
			continue
		}
		matched = append(matched, cloneTerm(rec))
	}

	if filter.ByUsage {
		sortByUsage(matched)
	} else {
		sort.Slice(matched, func(i, j int) bool { return matched[i].Term < matched[j].Term })
	}

	return paginate(matched, filter.Limit, filter.Offset), nil
}

// Search matches active terms by case-insensitive substring, most used first.
func (m *MemoryTermRepository) Search(_ context.Context, tenantID, query string, limit int) ([]*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(query)
	matched := make([]*Term, 0)
	for _, rec := range m.terms {
		if rec.TenantID != tenantID || !rec.IsActive {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Term), needle) {
			continue
		}
		matched = append(matched, cloneTerm(rec))
	}

	sortByUsage(matched)
	return paginate(matched, limit, 0), nil
}

// IncrementUsage bumps the usage counter under the repository lock.
func (m *MemoryTermRepository) IncrementUsage(_ context.Context, id uuid.UUID, now time.Time) (*Term, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.terms[id]
	if !ok {
		return nil, &NotFoundError{Resource: "glossary_term", Key: id.String()}
	}

	rec.UsageCount++
	stamped := now
	rec.LastUsed = &stamped
	rec.UpdatedAt = now
	return cloneTerm(rec), nil
}

func sortByUsage(terms []*Term) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].UsageCount != terms[j].UsageCount {
			return terms[i].UsageCount > terms[j].UsageCount
		}
		return terms[i].Term < terms[j].Term
	})
}

func paginate(terms []*Term, limit, offset int) []*Term {
	if offset > 0 {
		if offset >= len(terms) {
			return []*Term{}
		}
		terms = terms[offset:]
	}
	if limit > 0 && limit < len(terms) {
		terms = terms[:limit]
	}
	return terms
}

func cloneTerm(src *Term) *Term {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Translations) > 0 {
		copied.Translations = append([]TermTranslation(nil), src.Translations...)
	}
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	if src.BusinessID != nil {
		v := *src.BusinessID
		copied.BusinessID = &v
	}
	if src.Notes != nil {
		v := *src.Notes
		copied.Notes = &v
	}
	if src.LastUsed != nil {
		v := *src.LastUsed
		copied.LastUsed = &v
	}
	return &copied
}
