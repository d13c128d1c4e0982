package seeder

import (
	"context"
	"database/sql"
	"time"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/dialect"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// ConnectFunc opens a database handle for a driver and DSN. The default is
// sql.Open; tests swap it out.
type ConnectFunc func(driverName, dsn string) (*sql.DB, error)

// Summary describes a completed or partially completed run. Rows holds what
// was durably committed per table, so it is meaningful even when Run
// returns an error.
type Summary struct {
	Dialect string
	Seed    int64
	Rows    map[string]int
	Elapsed time.Duration
}

// Seeder owns one run: validate, bootstrap the database, recreate tables
// and stream generated rows into them.
type Seeder struct {
	Dialect  dialect.Dialect
	Config   *config.Config
	Connect  ConnectFunc
	Progress Progress
}

func New(cfg *config.Config) (*Seeder, error) {
	d, err := dialect.New(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return &Seeder{Dialect: d, Config: cfg, Connect: defaultConnect}, nil
}

func defaultConnect(driverName, dsn string) (*sql.DB, error) {
	return sql.Open(driverName, dsn)
}

// Run seeds every table in order. The returned summary is never nil; on
// error it reflects the rows committed before the failure.
func (s *Seeder) Run(ctx context.Context, tables []schema.Table) (*Summary, error) {
	started := time.Now()
	summary := &Summary{Dialect: s.Dialect.Name(), Rows: make(map[string]int, len(tables))}
	defer func() { summary.Elapsed = time.Since(started) }()

	// Every (column, dialect) pair must resolve before a connection opens.
	if err := dialect.Validate(s.Dialect, tables); err != nil {
		return summary, err
	}

	seed := s.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	summary.Seed = seed
	gen := NewGenerator(seed, s.Config.NullChance, s.Config.MaxListLen)

	if err := s.ensureDatabase(ctx); err != nil {
		return summary, err
	}

	dsn, err := s.Dialect.DSN(s.Config)
	if err != nil {
		return summary, err
	}
	db, err := s.open(ctx, "seeding", dsn)
	if err != nil {
		return summary, err
	}
	defer db.Close()

	for _, t := range tables {
		if err := EnsureTable(ctx, db, s.Dialect, t); err != nil {
			return summary, err
		}
		records, batch := s.planFor(t)
		n, err := Load(ctx, db, s.Dialect, t, gen, records, batch, s.Progress)
		summary.Rows[t.Name] = n
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// planFor resolves the effective record count and batch size for one table:
// a positive per-table value wins, zero falls back to the run configuration.
func (s *Seeder) planFor(t schema.Table) (records, batch int) {
	records = s.Config.Records
	if t.Rows > 0 {
		records = t.Rows
	}
	batch = s.Config.Batch
	if t.Batch > 0 {
		batch = t.Batch
	}
	return records, batch
}

// ensureDatabase connects with the administrative DSN and creates the target
// database when the dialect has a bootstrap step and the database is absent.
func (s *Seeder) ensureDatabase(ctx context.Context) error {
	dsn, err := s.Dialect.BootstrapDSN(s.Config)
	if err != nil {
		return err
	}
	if dsn == "" {
		return nil
	}
	db, err := s.open(ctx, "bootstrap", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	name := s.Config.EndpointFor(s.Dialect.Name()).Database
	if q := s.Dialect.DatabaseExistsSQL(); q != "" {
		var n int
		if err := db.QueryRowContext(ctx, q, name).Scan(&n); err != nil {
			return &ConnectionError{Dialect: s.Dialect.Name(), Stage: "bootstrap", Err: err}
		}
		if n > 0 {
			return nil
		}
	}
	if stmt := s.Dialect.CreateDatabaseSQL(name); stmt != "" {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return &ConnectionError{Dialect: s.Dialect.Name(), Stage: "bootstrap", Err: err}
		}
	}
	return nil
}

// open connects and pings, retrying with a fixed backoff up to the
// configured attempt count.
func (s *Seeder) open(ctx context.Context, stage, dsn string) (*sql.DB, error) {
	connect := s.Connect
	if connect == nil {
		connect = defaultConnect
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		db, err := connect(s.Dialect.DriverName(), dsn)
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				return db, nil
			}
			db.Close()
		}
		lastErr = err

		if attempt >= s.Config.ConnectRetries {
			return nil, &ConnectionError{Dialect: s.Dialect.Name(), Stage: stage, Err: lastErr}
		}
		select {
		case <-ctx.Done():
			return nil, &ConnectionError{Dialect: s.Dialect.Name(), Stage: stage, Err: ctx.Err()}
		case <-time.After(s.Config.RetryBackoff):
		}
	}
}
