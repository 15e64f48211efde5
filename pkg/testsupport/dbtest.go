package testsupport

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
)

func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}

// NewBunDB opens a shared in-memory sqlite database wrapped for bun. The name
// keeps independent callers from sharing state.
func NewBunDB(name string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name))
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema provisions the module's tables and unique indexes on db.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*catalog.Entry)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_translation_entries_identity ON translation_entries (namespace, "key", locale)`,
	); err != nil {
		return err
	}
	if _, err := db.NewCreateTable().Model((*glossary.Term)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_glossary_terms_identity ON glossary_terms (tenant_id, lower(term))`,
	); err != nil {
		return err
	}
	return nil
}
