// Package migrations embeds the SQL schema of every supported database
// dialect and applies it with goose.
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

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":     {goose: "postgres", dir: "postgres"},
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given driver ("pgx" or
// "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
