package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maee-crypto/keephy-translations/internal/domain"
	"github.com/maee-crypto/keephy-translations/internal/logging"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

// Service exposes the translation catalog use-cases: entry lifecycle, bundle
// resolution, and bulk publication.
type Service interface {
	Upsert(ctx context.Context, req UpsertEntryRequest) (*Entry, error)
	UpsertKey(ctx context.Context, req UpsertKeyRequest) ([]LocaleResult, error)
	Update(ctx context.Context, req UpdateEntryRequest) (*Entry, error)
	Get(ctx context.Context, namespace, key string, locales []string) (map[string]EntryDetail, error)
	ResolveBundle(ctx context.Context, req BundleRequest) (Bundle, error)
	FindMissing(ctx context.Context, namespace string, requiredLocales []string) ([]MissingReport, error)
	Stats(ctx context.Context, namespace, locale string) ([]StatusCount, error)
	Publish(ctx context.Context, req PublishRequest) (int, error)
	Archive(ctx context.Context, namespace, key, locale string) (*Entry, error)
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

type service struct {
	entries EntryRepository
	now     func() time.Time
	id      IDGenerator
	logger  interfaces.Logger
}

// NewService constructs a catalog service backed by the provided repository.
func NewService(entries EntryRepository, opts ...ServiceOption) Service {
	s := &service{
		entries: entries,
		now:     time.Now,
		id:      uuid.New,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert creates or replaces the entry identified by (namespace, key,
// locale). The result always lands in draft: any content edit invalidates
// prior review and publication for that entry.
func (s *service) Upsert(ctx context.Context, req UpsertEntryRequest) (*Entry, error) {
	entry, err := s.buildEntry(req)
	if err != nil {
		return nil, err
	}
	return s.entries.Upsert(ctx, entry)
}

// UpsertKey fans one key out across locales. Each locale upserts
// independently; the returned results carry per-locale success or failure and
// no compensation is attempted for partially applied batches.
func (s *service) UpsertKey(ctx context.Context, req UpsertKeyRequest) ([]LocaleResult, error) {
	if _, ok := domain.ParseNamespace(req.Namespace); !ok {
		return nil, ErrNamespaceInvalid
	}
	if err := ValidateKey(req.Key); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, ErrCreatedByRequired
	}
	if len(req.Values) == 0 {
		return nil, ErrNoLocales
	}

	locales := make([]string, 0, len(req.Values))
	for locale := range req.Values {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	results := make([]LocaleResult, 0, len(locales))
	for _, locale := range locales {
		entry, err := s.Upsert(ctx, UpsertEntryRequest{
			Namespace: req.Namespace,
			Key:       req.Key,
			Locale:    locale,
			Value:     req.Values[locale],
			Context:   req.Context,
			Variables: req.Variables,
			CreatedBy: req.CreatedBy,
		})
		results = append(results, LocaleResult{
			Locale: NormalizeLocale(locale),
			Entry:  entry,
			Err:    err,
		})
	}
	return results, nil
}

// Update applies a partial edit to an existing entry. Status only changes
// when the request names one, and then only along the lifecycle rules.
func (s *service) Update(ctx context.Context, req UpdateEntryRequest) (*Entry, error) {
	namespace, ok := domain.ParseNamespace(req.Namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	if err := ValidateKey(req.Key); err != nil {
		return nil, err
	}
	if err := ValidateLocale(req.Locale); err != nil {
		return nil, err
	}
	if req.Value == nil && req.Context == nil && req.Variables == nil && req.Status == nil {
		return nil, ErrNoFieldsToUpdate
	}

	entry, err := s.entries.Get(ctx, namespace, NormalizeKey(req.Key), NormalizeLocale(req.Locale))
	if err != nil {
		return nil, err
	}
	if !entry.IsActive {
		return nil, &NotFoundError{Resource: "translation_entry", Key: entryKey(namespace, entry.Key, entry.Locale)}
	}

	if req.Value != nil {
		value := *req.Value
		if strings.TrimSpace(value) == "" {
			return nil, ErrValueRequired
		}
		if len(value) > MaxValueLength {
			return nil, ErrValueTooLong
		}
		entry.Value = value
	}
	if req.Context != nil {
		if len(*req.Context) > MaxContextLength {
			return nil, ErrContextTooLong
		}
		entry.Context = req.Context
	}
	if req.Variables != nil {
		variables, err := validateVariables(*req.Variables)
		if err != nil {
			return nil, err
		}
		entry.Variables = variables
	}
	if req.Status != nil {
		target, ok := domain.ParseStatus(*req.Status)
		if !ok {
			return nil, ErrStatusInvalid
		}
		if err := s.transition(entry, target, req.ReviewedBy); err != nil {
			return nil, err
		}
	}

	entry.UpdatedAt = s.now().UTC()
	return s.entries.Update(ctx, entry)
}

// Get returns the active entries stored for a key, projected per locale. An
// empty locale list returns every stored locale.
func (s *service) Get(ctx context.Context, namespace, key string, locales []string) (map[string]EntryDetail, error) {
	ns, ok := domain.ParseNamespace(namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	normalized, err := normalizeLocales(locales)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, ListFilter{
		Namespaces: []domain.Namespace{ns},
		Keys:       []string{NormalizeKey(key)},
		Locales:    normalized,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &NotFoundError{Resource: "translation_key", Key: entryKey(ns, NormalizeKey(key), strings.Join(normalized, ","))}
	}

	out := make(map[string]EntryDetail, len(entries))
	for _, entry := range entries {
		out[entry.Locale] = EntryDetail{
			Value:     entry.Value,
			Context:   entry.Context,
			Status:    entry.Status,
			Variables: entry.Variables,
		}
	}
	return out, nil
}

// ResolveBundle assembles the nested namespace -> locale -> key -> value
// structure for the requested status. Archived entries never appear because
// archival clears is_active.
func (s *service) ResolveBundle(ctx context.Context, req BundleRequest) (Bundle, error) {
	namespaces, names, err := parseNamespaces(req.Namespaces)
	if err != nil {
		return nil, err
	}
	locales, err := normalizeLocales(req.Locales)
	if err != nil {
		return nil, err
	}
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return nil, ErrStatusInvalid
	}

	entries, err := s.entries.List(ctx, ListFilter{
		Namespaces: namespaces,
		Locales:    locales,
		Status:     status,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return BuildBundle(names, locales, entries), nil
}

// FindMissing reports, for every key with at least one published active
// entry, the required locales that have no published value yet.
func (s *service) FindMissing(ctx context.Context, namespace string, requiredLocales []string) ([]MissingReport, error) {
	ns, ok := domain.ParseNamespace(namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	required, err := normalizeLocales(requiredLocales)
	if err != nil {
		return nil, err
	}
	if len(required) == 0 {
		return nil, ErrNoLocales
	}

	entries, err := s.entries.List(ctx, ListFilter{
		Namespaces: []domain.Namespace{ns},
		Status:     domain.StatusPublished,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	present := make(map[string]map[string]struct{})
	for _, entry := range entries {
		locales, ok := present[entry.Key]
		if !ok {
			locales = make(map[string]struct{})
			present[entry.Key] = locales
		}
		locales[entry.Locale] = struct{}{}
	}

	keys := make([]string, 0, len(present))
	for key := range present {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	reports := make([]MissingReport, 0)
	for _, key := range keys {
		locales := present[key]
		missing := make([]string, 0)
		for _, locale := range required {
			if _, ok := locales[locale]; !ok {
				missing = append(missing, locale)
			}
		}
		if len(missing) == 0 {
			continue
		}

		have := make([]string, 0, len(locales))
		for locale := range locales {
			have = append(have, locale)
		}
		sort.Strings(have)

		reports = append(reports, MissingReport{Key: key, Locales: have, Missing: missing})
	}
	return reports, nil
}

// Stats counts active entries grouped by status, in lifecycle order.
func (s *service) Stats(ctx context.Context, namespace, locale string) ([]StatusCount, error) {
	ns, ok := domain.ParseNamespace(namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	if locale != "" {
		if err := ValidateLocale(locale); err != nil {
			return nil, err
		}
		locale = NormalizeLocale(locale)
	}

	counts, err := s.entries.CountByStatus(ctx, ns, locale)
	if err != nil {
		return nil, err
	}

	out := make([]StatusCount, 0, len(counts))
	for _, status := range domain.Statuses {
		if count, ok := counts[status]; ok {
			out = append(out, StatusCount{Status: status, Count: count})
		}
	}
	return out, nil
}

// Publish bulk-transitions the named keys' draft and reviewed active entries
// to published. The operation is one store-side update: already published or
// archived entries are untouched, so re-invocation reports zero modifications.
func (s *service) Publish(ctx context.Context, req PublishRequest) (int, error) {
	ns, ok := domain.ParseNamespace(req.Namespace)
	if !ok {
		return 0, ErrNamespaceInvalid
	}
	if len(req.Keys) == 0 {
		return 0, ErrNoKeys
	}
	if strings.TrimSpace(req.PublishedBy) == "" {
		return 0, ErrCreatedByRequired
	}

	keys := make([]string, 0, len(req.Keys))
	for _, key := range req.Keys {
		if err := ValidateKey(key); err != nil {
			return 0, err
		}
		keys = append(keys, NormalizeKey(key))
	}

	modified, err := s.entries.PublishMany(ctx, ns, keys, strings.TrimSpace(req.PublishedBy), s.now().UTC())
	if err != nil {
		return 0, err
	}
	s.logger.Info("catalog.publish",
		"namespace", string(ns),
		"keys", len(keys),
		"modified", modified,
	)
	return modified, nil
}

// Archive retires an entry: terminal status plus logical deletion. Archiving
// an already archived entry is a no-op.
func (s *service) Archive(ctx context.Context, namespace, key, locale string) (*Entry, error) {
	ns, ok := domain.ParseNamespace(namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ValidateLocale(locale); err != nil {
		return nil, err
	}

	entry, err := s.entries.Get(ctx, ns, NormalizeKey(key), NormalizeLocale(locale))
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.StatusArchived {
		return entry, nil
	}

	if err := s.transition(entry, domain.StatusArchived, nil); err != nil {
		return nil, err
	}
	entry.UpdatedAt = s.now().UTC()
	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.logger.Info("catalog.archive", "namespace", string(ns), "key", entry.Key, "locale", entry.Locale)
	return updated, nil
}

// transition moves an entry through the status state machine, stamping the
// side effects each target state implies.
func (s *service) transition(entry *Entry, target domain.Status, reviewedBy *string) error {
	if !domain.CanTransition(entry.Status, target) {
		return &StatusTransitionError{From: string(entry.Status), To: string(target)}
	}

	now := s.now().UTC()
	switch target {
	case domain.StatusReviewed:
		entry.ReviewedAt = &now
		if reviewedBy != nil && strings.TrimSpace(*reviewedBy) != "" {
			entry.ReviewedBy = reviewedBy
		}
	case domain.StatusPublished:
		if entry.PublishedAt == nil {
			entry.PublishedAt = &now
		}
	case domain.StatusArchived:
		entry.IsActive = false
	}

	entry.Status = target
	return nil
}

func (s *service) buildEntry(req UpsertEntryRequest) (*Entry, error) {
	namespace, ok := domain.ParseNamespace(req.Namespace)
	if !ok {
		return nil, ErrNamespaceInvalid
	}
	if err := ValidateKey(req.Key); err != nil {
		return nil, err
	}
	if err := ValidateLocale(req.Locale); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Value) == "" {
		return nil, ErrValueRequired
	}
	if len(req.Value) > MaxValueLength {
		return nil, ErrValueTooLong
	}
	if req.Context != nil && len(*req.Context) > MaxContextLength {
		return nil, ErrContextTooLong
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, ErrCreatedByRequired
	}
	source, ok := domain.ParseSource(req.Source)
	if !ok {
		return nil, ErrSourceInvalid
	}
	if req.Confidence != nil && (*req.Confidence < 0 || *req.Confidence > 1) {
		return nil, ErrConfidenceInvalid
	}
	variables, err := validateVariables(req.Variables)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return &Entry{
		ID:         s.id(),
		Namespace:  namespace,
		Key:        NormalizeKey(req.Key),
		Locale:     NormalizeLocale(req.Locale),
		Value:      req.Value,
		Context:    req.Context,
		Status:     domain.StatusDraft,
		Variables:  variables,
		IsActive:   true,
		CreatedBy:  strings.TrimSpace(req.CreatedBy),
		Source:     source,
		Confidence: req.Confidence,
		Tags:       req.Tags,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func validateVariables(variables []Variable) ([]Variable, error) {
	if len(variables) == 0 {
		return nil, nil
	}

	out := make([]Variable, 0, len(variables))
	seen := make(map[string]struct{}, len(variables))
	for _, variable := range variables {
		name := strings.TrimSpace(variable.Name)
		if name == "" {
			return nil, ErrVariableInvalid
		}
		if _, dup := seen[name]; dup {
			return nil, ErrVariableInvalid
		}
		seen[name] = struct{}{}

		varType, ok := domain.ParseVariableType(string(variable.Type))
		if !ok {
			return nil, ErrVariableInvalid
		}

		out = append(out, Variable{
			Name:        name,
			Type:        varType,
			Required:    variable.Required,
			Description: variable.Description,
		})
	}
	return out, nil
}

func parseNamespaces(inputs []string) ([]domain.Namespace, []string, error) {
	if len(inputs) == 0 {
		return nil, nil, ErrNamespaceInvalid
	}

	namespaces := make([]domain.Namespace, 0, len(inputs))
	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		ns, ok := domain.ParseNamespace(input)
		if !ok {
			return nil, nil, ErrNamespaceInvalid
		}
		namespaces = append(namespaces, ns)
		names = append(names, string(ns))
	}
	return namespaces, names, nil
}

func normalizeLocales(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if err := ValidateLocale(input); err != nil {
			return nil, err
		}
		out = append(out, NormalizeLocale(input))
	}
	return out, nil
}
