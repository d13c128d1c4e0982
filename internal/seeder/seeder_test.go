package seeder

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/dialect"
	"github.com/seedforge-io/seedforge/internal/schema"
)

func testConfig(dialectName string) *config.Config {
	return &config.Config{
		Dialect:      dialectName,
		Records:      3,
		Batch:        2,
		Seed:         42,
		NullChance:   0.03,
		MaxListLen:   5,
		RetryBackoff: time.Millisecond,
		Postgres: config.Endpoint{
			Host: "localhost", Port: 5432, User: "sentinel",
			Password: "Test_123_Password", Database: "citadel", SSLMode: "disable",
		},
		SQLite: config.Endpoint{Path: "./test.db"},
	}
}

// expectTableSeed queues the DDL and load expectations Run produces for the
// gadgets fixture on postgres with 3 records in batches of 2.
func expectTableSeed(t *testing.T, mock sqlmock.Sqlmock, d dialect.Dialect) {
	t.Helper()
	create, err := d.CreateTableSQL(gadgetTable())
	require.NoError(t, err)

	mock.ExpectQuery(escape(d.TableExistsSQL())).
		WithArgs("gadgets").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(escape(create)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(escape(`CREATE INDEX "idx_gadgets_added_on"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for _, rows := range []int64{2, 1} {
		mock.ExpectBegin()
		mock.ExpectExec(escape(`INSERT INTO "gadgets"`)).
			WillReturnResult(sqlmock.NewResult(0, rows))
		mock.ExpectCommit()
	}
}

func TestRunSeedsEndToEnd(t *testing.T) {
	bootDB, bootMock, err := sqlmock.New()
	require.NoError(t, err)
	workDB, workMock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := New(testConfig("postgres"))
	require.NoError(t, err)

	conns := []*sql.DB{bootDB, workDB}
	var drivers []string
	s.Connect = func(driverName, dsn string) (*sql.DB, error) {
		drivers = append(drivers, driverName)
		db := conns[0]
		conns = conns[1:]
		return db, nil
	}

	bootMock.ExpectQuery(escape("SELECT COUNT(*) FROM pg_database WHERE datname = $1")).
		WithArgs("citadel").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	bootMock.ExpectClose()
	expectTableSeed(t, workMock, s.Dialect)
	workMock.ExpectClose()

	var progressCalls int
	s.Progress = func(table string, done, total int) { progressCalls++ }

	summary, err := s.Run(context.Background(), []schema.Table{gadgetTable()})
	require.NoError(t, err)

	require.NotNil(t, summary)
	assert.Equal(t, "postgres", summary.Dialect)
	assert.Equal(t, int64(42), summary.Seed)
	assert.Equal(t, map[string]int{"gadgets": 3}, summary.Rows)
	assert.Greater(t, summary.Elapsed, time.Duration(0))
	assert.Equal(t, []string{"pgx", "pgx"}, drivers)
	assert.Equal(t, 2, progressCalls)

	require.NoError(t, bootMock.ExpectationsWereMet())
	require.NoError(t, workMock.ExpectationsWereMet())
}

func TestRunSkipsBootstrapWhenDialectHasNone(t *testing.T) {
	workDB, workMock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := New(testConfig("sqlite"))
	require.NoError(t, err)

	var opens int
	s.Connect = func(driverName, dsn string) (*sql.DB, error) {
		opens++
		assert.Equal(t, "sqlite3", driverName)
		assert.Equal(t, "./test.db", dsn)
		return workDB, nil
	}

	create, err := s.Dialect.CreateTableSQL(gadgetTable())
	require.NoError(t, err)
	workMock.ExpectExec(escape(`DROP TABLE IF EXISTS "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(create)).WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(`CREATE INDEX "idx_gadgets_added_on"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for _, rows := range []int64{2, 1} {
		workMock.ExpectBegin()
		workMock.ExpectExec(escape(`INSERT INTO "gadgets"`)).
			WillReturnResult(sqlmock.NewResult(0, rows))
		workMock.ExpectCommit()
	}
	workMock.ExpectClose()

	summary, err := s.Run(context.Background(), []schema.Table{gadgetTable()})
	require.NoError(t, err)
	assert.Equal(t, 1, opens, "sqlite needs no bootstrap connection")
	assert.Equal(t, map[string]int{"gadgets": 3}, summary.Rows)
	require.NoError(t, workMock.ExpectationsWereMet())
}

func TestRunHonorsPerTableRowAndBatchOverrides(t *testing.T) {
	workDB, workMock, err := sqlmock.New()
	require.NoError(t, err)

	// Config says 3 records in batches of 2; the table pins 5 in one batch.
	s, err := New(testConfig("sqlite"))
	require.NoError(t, err)
	s.Connect = func(driverName, dsn string) (*sql.DB, error) { return workDB, nil }

	table := gadgetTable()
	table.Rows = 5
	table.Batch = 5

	create, err := s.Dialect.CreateTableSQL(table)
	require.NoError(t, err)
	workMock.ExpectExec(escape(`DROP TABLE IF EXISTS "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(create)).WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(`CREATE INDEX "idx_gadgets_added_on"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectBegin()
	workMock.ExpectExec(escape(`INSERT INTO "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	workMock.ExpectCommit()
	workMock.ExpectClose()

	summary, err := s.Run(context.Background(), []schema.Table{table})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"gadgets": 5}, summary.Rows)
	require.NoError(t, workMock.ExpectationsWereMet())
}

func TestRunReturnsPartialSummaryOnFailure(t *testing.T) {
	workDB, workMock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := New(testConfig("sqlite"))
	require.NoError(t, err)
	s.Connect = func(driverName, dsn string) (*sql.DB, error) { return workDB, nil }

	create, err := s.Dialect.CreateTableSQL(gadgetTable())
	require.NoError(t, err)
	cause := errors.New("database is locked")

	workMock.ExpectExec(escape(`DROP TABLE IF EXISTS "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(create)).WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(`CREATE INDEX "idx_gadgets_added_on"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectBegin()
	workMock.ExpectExec(escape(`INSERT INTO "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	workMock.ExpectCommit()
	workMock.ExpectBegin()
	workMock.ExpectExec(escape(`INSERT INTO "gadgets"`)).WillReturnError(cause)
	workMock.ExpectRollback()
	workMock.ExpectClose()

	summary, err := s.Run(context.Background(), []schema.Table{gadgetTable()})
	require.Error(t, err)

	require.NotNil(t, summary, "a failed run still reports what was committed")
	assert.Equal(t, map[string]int{"gadgets": 2}, summary.Rows)

	var batchErr *BatchInsertError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 2, batchErr.Committed)
	require.NoError(t, workMock.ExpectationsWereMet())
}

func TestRunValidatesBeforeConnecting(t *testing.T) {
	cfg := testConfig("mssql")
	s, err := New(cfg)
	require.NoError(t, err)

	var opened bool
	s.Connect = func(driverName, dsn string) (*sql.DB, error) {
		opened = true
		return nil, errors.New("must not connect")
	}

	table := schema.Table{
		Name:    "readings",
		Columns: []schema.Column{{Name: "reading", Type: schema.Decimal(40, 2)}},
	}
	_, err = s.Run(context.Background(), []schema.Table{table})
	require.Error(t, err)

	var overflow *dialect.PrecisionOverflowError
	assert.ErrorAs(t, err, &overflow)
	assert.False(t, opened, "validation failures must not open connections")
}

func TestRunRetriesConnectionsWithBackoff(t *testing.T) {
	workDB, workMock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := testConfig("sqlite")
	cfg.ConnectRetries = 2
	cfg.Records = 0 // connection behavior is the point here

	s, err := New(cfg)
	require.NoError(t, err)

	var attempts int
	s.Connect = func(driverName, dsn string) (*sql.DB, error) {
		attempts++
		if attempts <= 2 {
			return nil, errors.New("connection refused")
		}
		return workDB, nil
	}

	workMock.ExpectExec(escape(`DROP TABLE IF EXISTS "gadgets"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	create, err := s.Dialect.CreateTableSQL(gadgetTable())
	require.NoError(t, err)
	workMock.ExpectExec(escape(create)).WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectExec(escape(`CREATE INDEX "idx_gadgets_added_on"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workMock.ExpectClose()

	summary, err := s.Run(context.Background(), []schema.Table{gadgetTable()})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, map[string]int{"gadgets": 0}, summary.Rows)
	require.NoError(t, workMock.ExpectationsWereMet())
}

func TestRunGivesUpAfterConfiguredRetries(t *testing.T) {
	cfg := testConfig("sqlite")
	cfg.ConnectRetries = 1

	s, err := New(cfg)
	require.NoError(t, err)

	var attempts int
	refused := errors.New("connection refused")
	s.Connect = func(driverName, dsn string) (*sql.DB, error) {
		attempts++
		return nil, refused
	}

	_, err = s.Run(context.Background(), []schema.Table{gadgetTable()})
	require.Error(t, err)
	assert.Equal(t, 2, attempts, "one initial attempt plus one retry")

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "sqlite", connErr.Dialect)
	assert.Equal(t, "seeding", connErr.Stage)
	assert.ErrorIs(t, err, refused)
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	cfg := testConfig("postgres")
	cfg.Dialect = "mongodb"
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestEnsureDatabaseCreatesWhenMissing(t *testing.T) {
	bootDB, bootMock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := New(testConfig("postgres"))
	require.NoError(t, err)
	s.Connect = func(driverName, dsn string) (*sql.DB, error) { return bootDB, nil }

	bootMock.ExpectQuery(escape("SELECT COUNT(*) FROM pg_database WHERE datname = $1")).
		WithArgs("citadel").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	bootMock.ExpectExec(escape(`CREATE DATABASE "citadel"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	bootMock.ExpectClose()

	require.NoError(t, s.ensureDatabase(context.Background()))
	require.NoError(t, bootMock.ExpectationsWereMet())
}
