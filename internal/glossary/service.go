package glossary

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maee-crypto/keephy-translations/internal/domain"
	"github.com/maee-crypto/keephy-translations/internal/logging"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

// DefaultListLimit caps listings when callers do not supply one.
const DefaultListLimit = 50

// Service exposes tenant-scoped glossary use-cases.
type Service interface {
	CreateTerm(ctx context.Context, req CreateTermRequest) (*Term, error)
	GetTerm(ctx context.Context, tenantID, term string) (*Term, error)
	UpdateTerm(ctx context.Context, req UpdateTermRequest) (*Term, error)
	SetTranslation(ctx context.Context, req SetTranslationRequest) (*Term, error)
	RecordUsage(ctx context.Context, tenantID, term string) (*Term, error)
	Search(ctx context.Context, tenantID, query string, limit int) ([]*Term, error)
	MostUsed(ctx context.Context, tenantID string, limit int) ([]*Term, error)
	ListForLocale(ctx context.Context, req ListForLocaleRequest) ([]LocalizedTerm, error)
	Archive(ctx context.Context, tenantID, term string) (*Term, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new records.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultListLimit overrides the cap applied when callers omit a limit.
func WithDefaultListLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.listLimit = limit
		}
	}
}

type service struct {
	terms     TermRepository
	now       func() time.Time
	id        IDGenerator
	logger    interfaces.Logger
	listLimit int
}

// NewService constructs a glossary service backed by the provided repository.
func NewService(terms TermRepository, opts ...ServiceOption) Service {
	s := &service{
		terms:     terms,
		now:       time.Now,
		id:        uuid.New,
		logger:    logging.NoOp(),
		listLimit: DefaultListLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTerm registers a new glossary term for a tenant. The supplied
// translations are normalized: one entry per locale, at most one preferred.
func (s *service) CreateTerm(ctx context.Context, req CreateTermRequest) (*Term, error) {
	tenantID := strings.TrimSpace(req.TenantID)
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	name := strings.TrimSpace(req.Term)
	if name == "" {
		return nil, ErrTermRequired
	}
	if len(name) > MaxTermLength {
		return nil, ErrTermTooLong
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, ErrCreatedByRequired
	}
	category, ok := domain.ParseTermCategory(req.Category)
	if !ok {
		return nil, ErrCategoryInvalid
	}
	translations, err := validateTranslations(req.Translations)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.terms.Create(ctx, &Term{
		ID:           s.id(),
		TenantID:     tenantID,
		Term:         name,
		BusinessID:   req.BusinessID,
		Category:     category,
		Translations: translations,
		CreatedBy:    strings.TrimSpace(req.CreatedBy),
		Tags:         req.Tags,
		Notes:        req.Notes,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("glossary.term.created", "tenant_id", tenantID, "term", name)
	return created, nil
}

// GetTerm fetches a tenant's term by name.
func (s *service) GetTerm(ctx context.Context, tenantID, term string) (*Term, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	if strings.TrimSpace(term) == "" {
		return nil, ErrTermRequired
	}
	return s.terms.GetByName(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(term))
}

// UpdateTerm patches mutable fields on an existing term.
func (s *service) UpdateTerm(ctx context.Context, req UpdateTermRequest) (*Term, error) {
	if strings.TrimSpace(req.TenantID) == "" {
		return nil, ErrTenantRequired
	}
	if req.TermID == uuid.Nil {
		return nil, ErrTermIDRequired
	}
	if req.Category == nil && req.BusinessID == nil && req.Tags == nil && req.Notes == nil {
		return nil, ErrNoFieldsToUpdate
	}

	term, err := s.terms.GetByID(ctx, strings.TrimSpace(req.TenantID), req.TermID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		category, ok := domain.ParseTermCategory(*req.Category)
		if !ok {
			return nil, ErrCategoryInvalid
		}
		term.Category = category
	}
	if req.BusinessID != nil {
		term.BusinessID = req.BusinessID
	}
	if req.Tags != nil {
		term.Tags = *req.Tags
	}
	if req.Notes != nil {
		term.Notes = req.Notes
	}

	term.UpdatedAt = s.now().UTC()
	return s.terms.Update(ctx, term)
}

// SetTranslation adds or replaces the translation for one locale. Replacing
// removes the previous entry and appends the new one, so relative ordering of
// other locales is not preserved. A preferred translation demotes every other
// locale's preferred flag.
func (s *service) SetTranslation(ctx context.Context, req SetTranslationRequest) (*Term, error) {
	if strings.TrimSpace(req.TenantID) == "" {
		return nil, ErrTenantRequired
	}
	if strings.TrimSpace(req.Term) == "" {
		return nil, ErrTermRequired
	}
	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if len(locale) > MaxLocaleLength {
		return nil, ErrLocaleTooLong
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, ErrTranslationRequired
	}
	if len(value) > MaxTranslationLength {
		return nil, ErrTranslationTooLong
	}

	term, err := s.terms.GetByName(ctx, strings.TrimSpace(req.TenantID), strings.TrimSpace(req.Term))
	if err != nil {
		return nil, err
	}

	kept := make([]TermTranslation, 0, len(term.Translations)+1)
	for _, tr := range term.Translations {
		if tr.Locale == locale {
			continue
		}
		if req.IsPreferred {
			tr.IsPreferred = false
		}
		kept = append(kept, tr)
	}
	kept = append(kept, TermTranslation{
		Locale:      locale,
		Value:       value,
		Context:     req.Context,
		IsPreferred: req.IsPreferred,
	})

	term.Translations = kept
	term.UpdatedAt = s.now().UTC()
	return s.terms.Update(ctx, term)
}

// RecordUsage increments the term's usage counter and stamps last_used. Each
// call increments; the operation is deliberately not idempotent.
func (s *service) RecordUsage(ctx context.Context, tenantID, term string) (*Term, error) {
	record, err := s.GetTerm(ctx, tenantID, term)
	if err != nil {
		return nil, err
	}
	return s.terms.IncrementUsage(ctx, record.ID, s.now().UTC())
}

// Search finds active terms matching the query, most used first.
func (s *service) Search(ctx context.Context, tenantID, query string, limit int) ([]*Term, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	if limit <= 0 {
		limit = s.listLimit
	}
	return s.terms.Search(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(query), limit)
}

// MostUsed lists a tenant's active terms by descending usage.
func (s *service) MostUsed(ctx context.Context, tenantID string, limit int) ([]*Term, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	if limit <= 0 {
		limit = s.listLimit
	}
	return s.terms.List(ctx, TermFilter{
		TenantID:   strings.TrimSpace(tenantID),
		ActiveOnly: true,
		ByUsage:    true,
		Limit:      limit,
	})
}

// ListForLocale pages through a tenant's active terms and resolves each one
// for the requested locale via the fallback chain.
func (s *service) ListForLocale(ctx context.Context, req ListForLocaleRequest) ([]LocalizedTerm, error) {
	if strings.TrimSpace(req.TenantID) == "" {
		return nil, ErrTenantRequired
	}
	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if req.Offset < 0 {
		return nil, ErrOffsetInvalid
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.listLimit
	}

	var category domain.TermCategory
	if strings.TrimSpace(req.Category) != "" {
		parsed, ok := domain.ParseTermCategory(req.Category)
		if !ok {
			return nil, ErrCategoryInvalid
		}
		category = parsed
	}

	terms, err := s.terms.List(ctx, TermFilter{
		TenantID:   strings.TrimSpace(req.TenantID),
		Category:   category,
		ActiveOnly: true,
		Limit:      limit,
		Offset:     req.Offset,
	})
	if err != nil {
		return nil, err
	}

	out := make([]LocalizedTerm, 0, len(terms))
	for _, term := range terms {
		value, context := ResolveWithContext(term, locale)
		out = append(out, LocalizedTerm{
			Term:        term.Term,
			Translation: value,
			Category:    term.Category,
			Context:     context,
			UsageCount:  term.UsageCount,
		})
	}
	return out, nil
}

// Archive retires a term without removing it.
func (s *service) Archive(ctx context.Context, tenantID, term string) (*Term, error) {
	record, err := s.GetTerm(ctx, tenantID, term)
	if err != nil {
		return nil, err
	}
	if !record.IsActive {
		return record, nil
	}

	record.IsActive = false
	record.UpdatedAt = s.now().UTC()
	updated, err := s.terms.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("glossary.term.archived", "tenant_id", record.TenantID, "term", record.Term)
	return updated, nil
}

func validateTranslations(translations []TermTranslation) ([]TermTranslation, error) {
	if len(translations) == 0 {
		return nil, nil
	}

	out := make([]TermTranslation, 0, len(translations))
	seen := make(map[string]struct{}, len(translations))
	preferred := false
	for _, tr := range translations {
		locale := strings.TrimSpace(tr.Locale)
		if locale == "" {
			return nil, ErrLocaleRequired
		}
		if len(locale) > MaxLocaleLength {
			return nil, ErrLocaleTooLong
		}
		if _, dup := seen[locale]; dup {
			return nil, ErrDuplicateLocale
		}
		seen[locale] = struct{}{}

		value := strings.TrimSpace(tr.Value)
		if value == "" {
			return nil, ErrTranslationRequired
		}
		if len(value) > MaxTranslationLength {
			return nil, ErrTranslationTooLong
		}

		if tr.IsPreferred {
			if preferred {
				return nil, ErrMultiplePreferred
			}
			preferred = true
		}

		out = append(out, TermTranslation{
			Locale:      locale,
			Value:       value,
			Context:     tr.Context,
			IsPreferred: tr.IsPreferred,
		})
	}
	return out, nil
}
