package glossary

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTermRepository implements TermRepository on top of bun with optional
// caching. Only calls whose arguments serialize to distinct cache keys go
// through the cached handle (the ID lookup); criteria closures all hash to
// the same key, so filtered queries stay on the uncached base repository.
// Raw statements bypass the decorator's invalidation and must clear the
// model's cache namespace themselves.
type BunTermRepository struct {
	db           *bun.DB
	base         repository.Repository[*Term]
	repo         repository.Repository[*Term]
	cacheService cache.CacheService
}

// NewBunTermRepository creates a term repository without caching.
func NewBunTermRepository(db *bun.DB) *BunTermRepository {
	return NewBunTermRepositoryWithCache(db, nil, nil)
}

// NewBunTermRepositoryWithCache creates a term repository with caching.
func NewBunTermRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTermRepository {
	base := NewTermRepository(db)
	wrapped := base
	if cacheService != nil && serializer != nil {
		wrapped = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTermRepository{db: db, base: base, repo: wrapped, cacheService: cacheService}
}

func (r *BunTermRepository) invalidateCache(ctx context.Context) {
	if r.cacheService == nil {
		return
	}
	_ = r.cacheService.DeleteByPrefix(ctx, "term"+cache.KeySeparator)
}

// Create inserts the term and lets the unique index on (tenant_id,
// lower(term)) arbitrate duplicates, so concurrent creates of the same term
// cannot both pass a pre-check.
func (r *BunTermRepository) Create(ctx context.Context, record *Term) (*Term, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseDuplicate) {
			return nil, &ConflictError{TenantID: record.TenantID, Term: record.Term}
		}
		return nil, fmt.Errorf("term repository create: %w", err)
	}
	return created, nil
}

func (r *BunTermRepository) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*Term, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "glossary_term", id.String())
	}
	if record == nil || record.TenantID != tenantID {
		return nil, &NotFoundError{Resource: "glossary_term", Key: id.String()}
	}
	return record, nil
}

func (r *BunTermRepository) GetByName(ctx context.Context, tenantID, term string) (*Term, error) {
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.tenant_id = ?", tenantID).
				Where("lower(?TableAlias.term) = ?", strings.ToLower(term))
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "glossary_term", term)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "glossary_term", Key: term}
	}
	return records[0], nil
}

func (r *BunTermRepository) Update(ctx context.Context, record *Term) (*Term, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "glossary_term", record.Term)
	}
	return updated, nil
}

func (r *BunTermRepository) List(ctx context.Context, filter TermFilter) ([]*Term, error) {
	processor := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("?TableAlias.tenant_id = ?", filter.TenantID)
		if filter.Category != "" {
			q = q.Where("?TableAlias.category = ?", filter.Category)
		}
		if filter.ActiveOnly {
			q = q.Where("?TableAlias.is_active = ?", true)
		}
		if filter.ByUsage {
			q = q.OrderExpr("?TableAlias.usage_count DESC, ?TableAlias.term ASC")
		} else {
			q = q.OrderExpr("?TableAlias.term ASC")
		}
		return q
	})

	var (
		records []*Term
		err     error
	)
	if filter.Limit > 0 {
		records, _, err = r.base.List(ctx, processor, repository.SelectPaginate(filter.Limit, filter.Offset))
	} else {
		records, _, err = r.base.List(ctx, processor)
	}
	if err != nil {
		return nil, fmt.Errorf("term repository list: %w", err)
	}
	return records, nil
}

// Search matches terms by case-insensitive substring, most used first.
func (r *BunTermRepository) Search(ctx context.Context, tenantID, query string, limit int) ([]*Term, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	records, _, err := r.base.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.tenant_id = ?", tenantID).
				Where("?TableAlias.is_active = ?", true).
				Where("lower(?TableAlias.term) LIKE ?", pattern).
				OrderExpr("?TableAlias.usage_count DESC, ?TableAlias.term ASC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("term repository search: %w", err)
	}
	return records, nil
}

// IncrementUsage bumps usage_count in place so concurrent recordings cannot
// lose updates to a read-modify-save race.
func (r *BunTermRepository) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*Term, error) {
	res, err := r.db.NewUpdate().
		Model((*Term)(nil)).
		Set("usage_count = usage_count + 1").
		Set("last_used = ?", now).
		Set("updated_at = ?", now).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("term repository increment: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, &NotFoundError{Resource: "glossary_term", Key: id.String()}
	}
	r.invalidateCache(ctx)

	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "glossary_term", id.String())
	}
	return record, nil
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
