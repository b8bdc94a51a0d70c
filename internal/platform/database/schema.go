package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ApplySchema creates the warehouse and inventory tables if they do not
// exist yet. It is idempotent and does not track versions.
func (db *DB) ApplySchema(ctx context.Context) error {
	name := "schema/postgres.sql"
	if db.driver == DriverSQLite {
		name = "schema/sqlite.sql"
	}
	content, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	for _, stmt := range strings.Split(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %s: %w", name, err)
		}
	}
	return nil
}
