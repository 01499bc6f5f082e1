package sqlrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/datasources"
)

var (
	_ datasources.Repository  = (*Repository)(nil)
	_ datasources.ReviewStore = (*store)(nil)
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// store holds the queries that may run either directly or inside a transaction.
type store struct {
	q       dbtx
	dialect Dialect
}

// Repository implements datasources.Repository over database/sql.
type Repository struct {
	store
	db *sql.DB
}

func New(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{
		store: store{q: db, dialect: dialect},
		db:    db,
	}
}

// InReviewTx runs fn in a transaction bound to a fresh store.
func (r *Repository) InReviewTx(ctx context.Context, fn func(datasources.ReviewStore) error) error {
	return r.inTx(ctx, func(s *store) error { return fn(s) })
}

func (r *Repository) inTx(ctx context.Context, fn func(s *store) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&store{q: tx, dialect: r.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	_ = rows.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
