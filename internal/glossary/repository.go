package glossary

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// TermFilter narrows term listings.
type TermFilter struct {
	TenantID   string
	Category   domain.TermCategory
	ActiveOnly bool
	ByUsage    bool
	Limit      int
	Offset     int
}

// TermRepository abstracts storage operations for glossary terms.
// IncrementUsage must be the store's atomic increment, not a read-modify-save
// round trip, so concurrent usage recording never loses updates.
type TermRepository interface {
	Create(ctx context.Context, record *Term) (*Term, error)
	GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*Term, error)
	GetByName(ctx context.Context, tenantID, term string) (*Term, error)
	Update(ctx context.Context, record *Term) (*Term, error)
	List(ctx context.Context, filter TermFilter) ([]*Term, error)
	Search(ctx context.Context, tenantID, query string, limit int) ([]*Term, error)
	IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*Term, error)
}

// NewTermRepository builds the generic bun-backed repository used by
// BunTermRepository for row-level operations.
func NewTermRepository(db *bun.DB) repository.Repository[*Term] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Term]{
		NewRecord: func() *Term { return &Term{} },
		GetID: func(t *Term) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Term, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(t *Term) string {
			if t == nil {
				return ""
			}
			return t.ID.String()
		},
	})
}
