package catalog

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// ListFilter narrows entry listings. Empty slices mean "any"; Status empty
// means every status. ActiveOnly excludes archived (is_active=false) records.
type ListFilter struct {
	Namespaces []domain.Namespace
	Keys       []string
	Locales    []string
	Status     domain.Status
	ActiveOnly bool
}

// EntryRepository abstracts storage operations for translation entries. The
// write operations map onto the store's atomic primitives: Upsert is a
// create-or-replace keyed on (namespace, key, locale), PublishMany is a
// single bulk update whose filter and patch execute server-side.
type EntryRepository interface {
	Upsert(ctx context.Context, record *Entry) (*Entry, error)
	Get(ctx context.Context, namespace domain.Namespace, key, locale string) (*Entry, error)
	Update(ctx context.Context, record *Entry) (*Entry, error)
	List(ctx context.Context, filter ListFilter) ([]*Entry, error)
	PublishMany(ctx context.Context, namespace domain.Namespace, keys []string, publishedBy string, now time.Time) (int, error)
	CountByStatus(ctx context.Context, namespace domain.Namespace, locale string) (map[domain.Status]int, error)
}

// NewEntryRepository builds the generic bun-backed repository used by
// BunEntryRepository for row-level operations.
func NewEntryRepository(db *bun.DB) repository.Repository[*Entry] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Entry]{
		NewRecord: func() *Entry { return &Entry{} },
		GetID: func(e *Entry) uuid.UUID {
			return e.ID
		},
		SetID: func(e *Entry, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(e *Entry) string {
			if e == nil {
				return ""
			}
			return e.ID.String()
		},
	})
}
