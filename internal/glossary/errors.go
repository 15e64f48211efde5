package glossary

import (
	"errors"
	"fmt"
)

var (
	ErrTenantRequired      = errors.New("glossary: tenant id is required")
	ErrTermRequired        = errors.New("glossary: term is required")
	ErrTermTooLong         = errors.New("glossary: term exceeds maximum length")
	ErrTermIDRequired      = errors.New("glossary: term id is required")
	ErrLocaleRequired      = errors.New("glossary: locale is required")
	ErrLocaleTooLong       = errors.New("glossary: locale exceeds maximum length")
	ErrTranslationRequired = errors.New("glossary: translation value is required")
	ErrTranslationTooLong  = errors.New("glossary: translation value exceeds maximum length")
	ErrCreatedByRequired   = errors.New("glossary: created_by is required")
	ErrCategoryInvalid     = errors.New("glossary: category is not recognized")
	ErrQueryRequired       = errors.New("glossary: search query is required")
	ErrLimitInvalid        = errors.New("glossary: limit must be positive")
	ErrOffsetInvalid       = errors.New("glossary: offset cannot be negative")
	ErrDuplicateLocale     = errors.New("glossary: duplicate locale in translations")
	ErrMultiplePreferred   = errors.New("glossary: at most one translation can be preferred")
	ErrNoFieldsToUpdate    = errors.New("glossary: no fields to update")
)

// NotFoundError represents missing terms from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ConflictError reports a unique-key violation on term creation. Callers
// should update the existing term instead of retrying the create.
type ConflictError struct {
	TenantID string
	Term     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("glossary: term %q already exists for tenant %s", e.Term, e.TenantID)
}
