package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jbeshir/interview-insights/internal/datasources/sqlrepo"
)

// clientFoundRows makes RowsAffected count matched rows, which the compare-and-set updates rely on.
const driverParamStr string = "?parseTime=true&clientFoundRows=true"

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded MySQL schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	return sqlrepo.Migrate(ctx, db, sqlrepo.MySQL, sub)
}

// New returns a repository speaking the MySQL dialect.
func New(db *sql.DB) *sqlrepo.Repository {
	return sqlrepo.New(db, sqlrepo.MySQL)
}
