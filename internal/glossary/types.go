package glossary

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// Term is a tenant-scoped glossary entry carrying per-locale overrides.
// Uniqueness is enforced on (tenant_id, term), compared case-insensitively.
type Term struct {
	bun.BaseModel `bun:"table:glossary_terms,alias:gt"`

	ID           uuid.UUID           `bun:",pk,type:uuid" json:"id"`
	TenantID     string              `bun:"tenant_id,notnull" json:"tenant_id"`
	Term         string              `bun:"term,notnull" json:"term"`
	BusinessID   *string             `bun:"business_id" json:"business_id,omitempty"`
	Category     domain.TermCategory `bun:"category,notnull,default:'custom'" json:"category"`
	Translations []TermTranslation   `bun:"translations,type:jsonb" json:"translations,omitempty"`
	CreatedBy    string              `bun:"created_by,notnull" json:"created_by"`
	LastUsed     *time.Time          `bun:"last_used,nullzero" json:"last_used,omitempty"`
	UsageCount   int                 `bun:"usage_count,notnull,default:0" json:"usage_count"`
	Tags         []string            `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Notes        *string             `bun:"notes" json:"notes,omitempty"`
	IsActive     bool                `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt    time.Time           `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time           `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// TermTranslation is one locale's rendering of a glossary term. At most one
// translation per term carries IsPreferred, and at most one exists per locale.
type TermTranslation struct {
	Locale      string `json:"locale"`
	Value       string `json:"value"`
	Context     string `json:"context,omitempty"`
	IsPreferred bool   `json:"is_preferred,omitempty"`
}

// Length bounds applied during validation.
const (
	MaxTermLength        = 200
	MaxTranslationLength = 500
	MaxLocaleLength      = 10
)

// CreateTermRequest captures the payload for a new glossary term.
type CreateTermRequest struct {
	TenantID     string
	Term         string
	Translations []TermTranslation
	Category     string
	BusinessID   *string
	CreatedBy    string
	Tags         []string
	Notes        *string
}

// UpdateTermRequest patches mutable term fields. Nil fields are left alone.
type UpdateTermRequest struct {
	TenantID   string
	TermID     uuid.UUID
	Category   *string
	BusinessID *string
	Tags       *[]string
	Notes      *string
}

// SetTranslationRequest adds or replaces the translation for one locale.
type SetTranslationRequest struct {
	TenantID    string
	Term        string
	Locale      string
	Value       string
	Context     string
	IsPreferred bool
}

// ListForLocaleRequest drives the paginated, locale-resolved listing.
type ListForLocaleRequest struct {
	TenantID string
	Locale   string
	Category string
	Limit    int
	Offset   int
}

// LocalizedTerm pairs a term with its resolved translation for one locale.
// Context is the matching locale's context, or empty when the value came from
// a fallback.
type LocalizedTerm struct {
	Term        string              `json:"term"`
	Translation string              `json:"translation"`
	Category    domain.TermCategory `json:"category"`
	Context     string              `json:"context"`
	UsageCount  int                 `json:"usage_count"`
}
