// Package migrations embeds the SQL schema of the server database and of
// the client's local snapshot store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects which migration set is applied.
type Dialect string

const (
	// Postgres is the server schema, run through the pgx driver.
	Postgres Dialect = "postgres"
	// SQLite is the client's local snapshot store.
	SQLite Dialect = "sqlite"
)

var gooseDialects = map[Dialect]string{
	Postgres: "pgx",
	SQLite:   "sqlite3",
}

// ErrNilDB is returned when Migrate receives no connection.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
