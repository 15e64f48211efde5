package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNamespaceInvalid  = errors.New("catalog: namespace is not recognized")
	ErrKeyRequired       = errors.New("catalog: key is required")
	ErrKeyInvalid        = errors.New("catalog: key contains invalid characters")
	ErrKeyTooLong        = errors.New("catalog: key exceeds maximum length")
	ErrLocaleRequired    = errors.New("catalog: locale is required")
	ErrLocaleInvalid     = errors.New("catalog: locale is invalid")
	ErrValueRequired     = errors.New("catalog: value is required")
	ErrValueTooLong      = errors.New("catalog: value exceeds maximum length")
	ErrContextTooLong    = errors.New("catalog: context exceeds maximum length")
	ErrCreatedByRequired = errors.New("catalog: created_by is required")
	ErrSourceInvalid     = errors.New("catalog: source is not recognized")
	ErrConfidenceInvalid = errors.New("catalog: confidence must be between 0 and 1")
	ErrVariableInvalid   = errors.New("catalog: variable declaration is invalid")
	ErrStatusInvalid     = errors.New("catalog: status is not recognized")
	ErrNoLocales         = errors.New("catalog: at least one locale is required")
	ErrNoKeys            = errors.New("catalog: at least one key is required")
	ErrNoFieldsToUpdate  = errors.New("catalog: no fields to update")
)

// NotFoundError represents missing records from repository lookups.
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

// StatusTransitionError reports a lifecycle move the state machine forbids.
type StatusTransitionError struct {
	From string
	To   string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("catalog: cannot transition status from %q to %q", e.From, e.To)
}
