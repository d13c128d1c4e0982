package seeder

import (
	"context"
	"database/sql"

	"github.com/seedforge-io/seedforge/internal/dialect"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// EnsureTable drops and recreates one table with its secondary indexes.
// Loading is destructive: a table always starts empty with exactly the
// declared shape, so two consecutive runs produce identical schemas.
func EnsureTable(ctx context.Context, db *sql.DB, d dialect.Dialect, t schema.Table) error {
	drop := true
	if q := d.TableExistsSQL(); q != "" {
		var n int
		if err := db.QueryRowContext(ctx, q, t.Name).Scan(&n); err != nil {
			return &DDLError{Dialect: d.Name(), Table: t.Name, Stmt: q, Err: err}
		}
		drop = n > 0
	}
	if drop {
		if err := execDDL(ctx, db, d, t.Name, d.DropTableSQL(t.Name)); err != nil {
			return err
		}
	}

	create, err := d.CreateTableSQL(t)
	if err != nil {
		return &DDLError{Dialect: d.Name(), Table: t.Name, Err: err}
	}
	if err := execDDL(ctx, db, d, t.Name, create); err != nil {
		return err
	}
	for _, stmt := range d.CreateIndexSQL(t) {
		if err := execDDL(ctx, db, d, t.Name, stmt); err != nil {
			return err
		}
	}
	return nil
}

func execDDL(ctx context.Context, db *sql.DB, d dialect.Dialect, table, stmt string) error {
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return &DDLError{Dialect: d.Name(), Table: table, Stmt: stmt, Err: err}
	}
	return nil
}
