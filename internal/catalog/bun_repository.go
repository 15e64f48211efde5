package catalog

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/maee-crypto/keephy-translations/internal/domain"
)

// BunEntryRepository implements EntryRepository on top of bun with optional
// caching. Only calls whose arguments serialize to distinct cache keys may go
// through the cached handle; criteria closures all hash to the same key, so
// every filtered query stays on the uncached base repository. Raw statements
// bypass the decorator's invalidation and must clear the model's cache
// namespace themselves.
type BunEntryRepository struct {
	db           *bun.DB
	base         repository.Repository[*Entry]
	repo         repository.Repository[*Entry]
	cacheService cache.CacheService
}

// NewBunEntryRepository creates an entry repository without caching.
func NewBunEntryRepository(db *bun.DB) *BunEntryRepository {
	return NewBunEntryRepositoryWithCache(db, nil, nil)
}

// NewBunEntryRepositoryWithCache creates an entry repository with caching.
func NewBunEntryRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunEntryRepository {
	base := NewEntryRepository(db)
	wrapped := base
	if cacheService != nil && serializer != nil {
		wrapped = repositorycache.New(base, cacheService, serializer)
	}
	return &BunEntryRepository{db: db, base: base, repo: wrapped, cacheService: cacheService}
}

func (r *BunEntryRepository) invalidateCache(ctx context.Context) {
	if r.cacheService == nil {
		return
	}
	_ = r.cacheService.DeleteByPrefix(ctx, "entry"+cache.KeySeparator)
}

// Upsert performs an atomic create-or-replace keyed on (namespace, key,
// locale). The stored published_at survives replacement so first-publish
// timestamps are never lost to content edits.
func (r *BunEntryRepository) Upsert(ctx context.Context, record *Entry) (*Entry, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (namespace, key, locale) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("context = EXCLUDED.context").
		Set("status = EXCLUDED.status").
		Set("variables = EXCLUDED.variables").
		Set("is_active = EXCLUDED.is_active").
		Set("created_by = EXCLUDED.created_by").
		Set("source = EXCLUDED.source").
		Set("confidence = EXCLUDED.confidence").
		Set("tags = EXCLUDED.tags").
		Set("notes = EXCLUDED.notes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("entry repository upsert: %w", err)
	}
	r.invalidateCache(ctx)

	return r.Get(ctx, record.Namespace, record.Key, record.Locale)
}

func (r *BunEntryRepository) Get(ctx context.Context, namespace domain.Namespace, key, locale string) (*Entry, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.namespace = ?", namespace).
				Where("?TableAlias.key = ?", key).
				Where("?TableAlias.locale = ?", locale)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "translation_entry", entryKey(namespace, key, locale))
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "translation_entry", Key: entryKey(namespace, key, locale)}
	}
	return records[0], nil
}

func (r *BunEntryRepository) Update(ctx context.Context, record *Entry) (*Entry, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "translation_entry", entryKey(record.Namespace, record.Key, record.Locale))
	}
	return updated, nil
}

func (r *BunEntryRepository) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	records, _, err := r.base.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return applyFilter(q, filter)
	}))
	if err != nil {
		return nil, fmt.Errorf("entry repository list: %w", err)
	}
	return records, nil
}

// PublishMany executes the bulk publish as a single server-side update.
// COALESCE keeps the first publish timestamp intact on re-publication, and
// the status filter makes repeat invocations report zero modified rows.
func (r *BunEntryRepository) PublishMany(ctx context.Context, namespace domain.Namespace, keys []string, publishedBy string, now time.Time) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	res, err := r.db.NewUpdate().
		Model((*Entry)(nil)).
		Set("status = ?", domain.StatusPublished).
		Set("published_at = COALESCE(published_at, ?)", now).
		Set("created_by = ?", publishedBy).
		Set("updated_at = ?", now).
		Where("?TableAlias.namespace = ?", namespace).
		Where("?TableAlias.key IN (?)", bun.In(keys)).
		Where("?TableAlias.status IN (?)", bun.In([]domain.Status{domain.StatusDraft, domain.StatusReviewed})).
		Where("?TableAlias.is_active = ?", true).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("entry repository publish: %w", err)
	}
	r.invalidateCache(ctx)

	modified, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("entry repository publish count: %w", err)
	}
	return int(modified), nil
}

func (r *BunEntryRepository) CountByStatus(ctx context.Context, namespace domain.Namespace, locale string) (map[domain.Status]int, error) {
	var rows []struct {
		Status domain.Status `bun:"status"`
		Count  int           `bun:"count"`
	}

	q := r.db.NewSelect().
		Model((*Entry)(nil)).
		ColumnExpr("status").
		ColumnExpr("COUNT(*) AS count").
		Where("?TableAlias.namespace = ?", namespace).
		Where("?TableAlias.is_active = ?", true).
		Group("status")
	if locale != "" {
		q = q.Where("?TableAlias.locale = ?", locale)
	}

	if err := q.Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("entry repository stats: %w", err)
	}

	counts := make(map[domain.Status]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func applyFilter(q *bun.SelectQuery, filter ListFilter) *bun.SelectQuery {
	if len(filter.Namespaces) > 0 {
		q = q.Where("?TableAlias.namespace IN (?)", bun.In(filter.Namespaces))
	}
	if len(filter.Keys) > 0 {
		q = q.Where("?TableAlias.key IN (?)", bun.In(filter.Keys))
	}
	if len(filter.Locales) > 0 {
		q = q.Where("?TableAlias.locale IN (?)", bun.In(filter.Locales))
	}
	if filter.Status != "" {
		q = q.Where("?TableAlias.status = ?", filter.Status)
	}
	if filter.ActiveOnly {
		q = q.Where("?TableAlias.is_active = ?", true)
	}
	return q
}

func entryKey(namespace domain.Namespace, key, locale string) string {
	return fmt.Sprintf("%s/%s/%s", namespace, key, locale)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
