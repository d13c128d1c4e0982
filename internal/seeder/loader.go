package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/seedforge-io/seedforge/internal/dialect"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// Progress reports rows committed so far for one table. The seeder calls it
// after every committed batch; done equals total on the last call.
type Progress func(table string, done, total int)

// Load streams count generated rows into a table. Rows are committed in
// batches of batchSize; when one statement cannot carry a whole batch under
// the dialect's bind parameter ceiling, the batch is split across several
// statements inside the same transaction, so commit granularity stays the
// batch regardless of dialect limits. Returns the number of rows durably
// committed, which on error is less than count.
func Load(ctx context.Context, db *sql.DB, d dialect.Dialect, t schema.Table, gen *Generator, count, batchSize int, progress Progress) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	if batchSize < 1 {
		batchSize = 1
	}
	cols := t.InsertColumns()
	if len(cols) == 0 {
		return 0, fmt.Errorf("table %s has no insertable columns", t.Name)
	}

	// Dialects without multi-row VALUES insert one row per statement; the
	// rest fit as many rows per statement as the parameter ceiling allows.
	rowsPerStmt := 1
	if d.SupportsMultiRow() {
		rowsPerStmt = d.MaxBindParams() / len(cols)
		if rowsPerStmt < 1 {
			rowsPerStmt = 1
		}
	}

	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = d.QuoteIdent(col.Name)
	}

	committed := 0
	for start := 0; start < count; start += batchSize {
		n := batchSize
		if start+n > count {
			n = count - start
		}
		if err := loadBatch(ctx, db, d, t, gen, cols, names, start, n, rowsPerStmt); err != nil {
			return committed, &BatchInsertError{
				Dialect:    d.Name(),
				Table:      t.Name,
				StartIndex: start,
				Committed:  committed,
				Err:        err,
			}
		}
		committed += n
		if progress != nil {
			progress(t.Name, committed, count)
		}
	}
	return committed, nil
}

// loadBatch inserts rows [start, start+n) inside one transaction.
func loadBatch(ctx context.Context, db *sql.DB, d dialect.Dialect, t schema.Table, gen *Generator, cols []schema.Column, names []string, start, n, rowsPerStmt int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for offset := 0; offset < n; offset += rowsPerStmt {
		chunk := rowsPerStmt
		if offset+chunk > n {
			chunk = n - offset
		}
		if err := insertChunk(ctx, tx, d, t, gen, cols, names, start+offset, chunk); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// insertChunk builds and executes a single INSERT carrying chunk rows.
func insertChunk(ctx context.Context, tx *sql.Tx, d dialect.Dialect, t schema.Table, gen *Generator, cols []schema.Column, names []string, start, chunk int) error {
	builder := squirrel.Insert(d.QuoteIdent(t.Name)).
		Columns(names...).
		PlaceholderFormat(d.Placeholder())

	for i := 0; i < chunk; i++ {
		row, err := gen.Row(t, start+i)
		if err != nil {
			return err
		}
		args := make([]any, len(cols))
		for j, col := range cols {
			v, err := d.BindValue(col, row[j])
			if err != nil {
				return fmt.Errorf("row %d: %w", start+i, err)
			}
			args[j] = v
		}
		builder = builder.Values(args...)
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, stmt, args...)
	return err
}
