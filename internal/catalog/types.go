package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// Entry is the canonical record for a single translated string. Uniqueness is
// enforced on the (namespace, key, locale) triple; the uuid primary key exists
// for storage plumbing only.
type Entry struct {
	bun.BaseModel `bun:"table:translation_entries,alias:te"`

	ID          uuid.UUID        `bun:",pk,type:uuid" json:"id"`
	Namespace   domain.Namespace `bun:"namespace,notnull" json:"namespace"`
	Key         string           `bun:"key,notnull" json:"key"`
	Locale      string           `bun:"locale,notnull" json:"locale"`
	Value       string           `bun:"value,notnull" json:"value"`
	Context     *string          `bun:"context" json:"context,omitempty"`
	Status      domain.Status    `bun:"status,notnull,default:'draft'" json:"status"`
	Variables   []Variable       `bun:"variables,type:jsonb" json:"variables,omitempty"`
	IsActive    bool             `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedBy   string           `bun:"created_by,notnull" json:"created_by"`
	ReviewedBy  *string          `bun:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time       `bun:"reviewed_at,nullzero" json:"reviewed_at,omitempty"`
	PublishedAt *time.Time       `bun:"published_at,nullzero" json:"published_at,omitempty"`
	Source      domain.Source    `bun:"source,notnull,default:'manual'" json:"source"`
	Confidence  *float64         `bun:"confidence" json:"confidence,omitempty"`
	Tags        []string         `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Notes       *string          `bun:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time        `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time        `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Variable declares an interpolation slot expected by a translation value.
type Variable struct {
	Name        string              `json:"name"`
	Type        domain.VariableType `json:"type"`
	Required    bool                `json:"required"`
	Description string              `json:"description,omitempty"`
}

// Length bounds applied during validation. Values mirror the persisted column
// constraints.
const (
	MaxKeyLength     = 255
	MaxValueLength   = 5000
	MaxLocaleLength  = 10
	MaxContextLength = 1000
)

// UpsertEntryRequest captures the payload for a single-locale upsert. A
// successful upsert always lands the entry back in draft, regardless of its
// previous status: editing content forces re-review.
type UpsertEntryRequest struct {
	Namespace  string
	Key        string
	Locale     string
	Value      string
	Context    *string
	Variables  []Variable
	CreatedBy  string
	Source     string
	Confidence *float64
	Tags       []string
	Notes      *string
}

// UpsertKeyRequest fans a single key out across multiple locales. Each locale
// upserts independently; partial failure is reported per locale, not rolled
// back.
type UpsertKeyRequest struct {
	Namespace string
	Key       string
	Values    map[string]string
	Context   *string
	Variables []Variable
	CreatedBy string
}

// LocaleResult reports the outcome of one locale within a multi-locale upsert.
type LocaleResult struct {
	Locale string
	Entry  *Entry
	Err    error
}

// UpdateEntryRequest captures a partial in-place update. Status is only
// touched when explicitly supplied, and then only through the transition
// rules.
type UpdateEntryRequest struct {
	Namespace  string
	Key        string
	Locale     string
	Value      *string
	Context    *string
	Variables  *[]Variable
	Status     *string
	ReviewedBy *string
}

// BundleRequest selects entries for bundle resolution.
type BundleRequest struct {
	Namespaces []string
	Locales    []string
	Status     string
}

// Bundle maps namespace to locale to key to value. Every requested namespace
// and locale is present in the result even when no entries matched.
type Bundle map[string]map[string]map[string]string

// LocaleBundle maps locale to key to value for single-namespace consumers.
type LocaleBundle map[string]map[string]string

// EntryDetail is the per-locale projection returned by Get.
type EntryDetail struct {
	Value     string        `json:"value"`
	Context   *string       `json:"context,omitempty"`
	Status    domain.Status `json:"status"`
	Variables []Variable    `json:"variables,omitempty"`
}

// MissingReport lists the locales a published key is still missing.
type MissingReport struct {
	Key     string   `json:"key"`
	Locales []string `json:"locales"`
	Missing []string `json:"missing"`
}

// StatusCount pairs a lifecycle status with the number of active entries in it.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// PublishRequest selects entries for bulk publication.
type PublishRequest struct {
	Namespace   string
	Keys        []string
	PublishedBy string
}
