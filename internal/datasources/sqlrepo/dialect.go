package sqlrepo

import "github.com/huandu/go-sqlbuilder"

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name   string
	Flavor sqlbuilder.Flavor

	// CharLength counts characters, not bytes.
	CharLength string

	// OnDuplicateKeyIgnore ends an INSERT so that a unique-key conflict inserts nothing.
	// Other constraint violations still fail.
	OnDuplicateKeyIgnore string

	migrationsTableDDL string
}

var (
	MySQL = Dialect{
		Name:       "mysql",
		Flavor:     sqlbuilder.MySQL,
		CharLength: "CHAR_LENGTH",

		OnDuplicateKeyIgnore: "ON DUPLICATE KEY UPDATE id = id",

		migrationsTableDDL: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME(6) NOT NULL
		)`,
	}

	SQLite = Dialect{
		Name:       "sqlite",
		Flavor:     sqlbuilder.SQLite,
		CharLength: "LENGTH",

		OnDuplicateKeyIgnore: "ON CONFLICT DO NOTHING",

		migrationsTableDDL: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL
		)`,
	}
)

// buildInsertIgnoringDuplicate builds ib with the dialect's duplicate-key clause appended.
func (d Dialect) buildInsertIgnoringDuplicate(ib *sqlbuilder.InsertBuilder) (string, []interface{}) {
	query, args := ib.Build()
	return query + " " + d.OnDuplicateKeyIgnore, args
}
