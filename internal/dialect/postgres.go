package dialect

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// Postgres binds the logical schema to PostgreSQL. Arrays, UUID, INET,
// MACADDR and INTERVAL all map to native types.
type Postgres struct{}

const postgresMaxPrecision = 1000

func (p *Postgres) Name() string       { return "postgres" }
func (p *Postgres) DriverName() string { return "pgx" }

func (p *Postgres) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (p *Postgres) QuoteIdent(name string) string { return pq.QuoteIdentifier(name) }

func (p *Postgres) SupportsMultiRow() bool { return true }
func (p *Postgres) MaxBindParams() int     { return 65535 }

func (p *Postgres) TypeOf(table string, col schema.Column) (string, error) {
	if col.Identity {
		if col.Type.Kind == schema.KindInt64 {
			return "BIGSERIAL PRIMARY KEY", nil
		}
		return "SERIAL PRIMARY KEY", nil
	}

	switch col.Type.Kind {
	case schema.KindBool:
		return "BOOLEAN", nil
	case schema.KindInt8, schema.KindInt16:
		return "SMALLINT", nil
	case schema.KindInt32:
		return "INTEGER", nil
	case schema.KindInt64:
		return "BIGINT", nil
	case schema.KindFloat32:
		return "REAL", nil
	case schema.KindFloat64:
		return "DOUBLE PRECISION", nil
	case schema.KindDecimal:
		if col.Type.Precision > postgresMaxPrecision {
			return "", &PrecisionOverflowError{
				Dialect: p.Name(), Table: table, Column: col.Name,
				Precision: col.Type.Precision, Max: postgresMaxPrecision,
			}
		}
		return fmt.Sprintf("NUMERIC(%d,%d)", col.Type.Precision, col.Type.Scale), nil
	case schema.KindMoney:
		return "NUMERIC(19,4)", nil
	case schema.KindString:
		if col.Type.MaxLen > 0 {
			return fmt.Sprintf("VARCHAR(%d)", col.Type.MaxLen), nil
		}
		return "TEXT", nil
	case schema.KindFixedString:
		return fmt.Sprintf("CHAR(%d)", col.Type.MaxLen), nil
	case schema.KindBytes, schema.KindFixedBytes:
		return "BYTEA", nil
	case schema.KindUUID:
		return "UUID", nil
	case schema.KindDate:
		return "DATE", nil
	case schema.KindTime:
		return "TIME", nil
	case schema.KindTimestamp:
		return "TIMESTAMP", nil
	case schema.KindTimestampTZ:
		return "TIMESTAMP WITH TIME ZONE", nil
	case schema.KindList:
		switch col.Type.Elem {
		case schema.KindString:
			return "TEXT[]", nil
		case schema.KindInt32:
			return "INTEGER[]", nil
		case schema.KindInt64:
			return "BIGINT[]", nil
		case schema.KindFloat64:
			return "DOUBLE PRECISION[]", nil
		}
	case schema.KindJSON:
		return "JSONB", nil
	case schema.KindEnum:
		return fmt.Sprintf("VARCHAR(%d)", enumWidth(col.Type.Values)), nil
	case schema.KindInterval:
		return "INTERVAL", nil
	case schema.KindInet:
		return "INET", nil
	case schema.KindMACAddr:
		return "MACADDR", nil
	}
	return "", &UnsupportedTypeError{Dialect: p.Name(), Table: table, Column: col.Name, Kind: col.Type.Kind}
}

func (p *Postgres) BindValue(col schema.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch col.Type.Kind {
	case schema.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return b, nil
	case schema.KindInt8, schema.KindInt16, schema.KindInt32, schema.KindInt64:
		n, ok := v.(int64)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return n, nil
	case schema.KindFloat32, schema.KindFloat64:
		f, ok := v.(float64)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return f, nil
	case schema.KindDecimal, schema.KindMoney:
		return decimalString(col, v)
	case schema.KindString, schema.KindFixedString, schema.KindEnum, schema.KindInet, schema.KindMACAddr:
		return stringValue(col, v)
	case schema.KindBytes, schema.KindFixedBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return b, nil
	case schema.KindUUID:
		id, ok := v.(uuid.UUID)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return id.String(), nil
	case schema.KindDate, schema.KindTimestamp, schema.KindTimestampTZ:
		ts, ok := v.(time.Time)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return ts, nil
	case schema.KindTime:
		tod, ok := v.(schema.TimeOfDay)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return tod.String(), nil
	case schema.KindInterval:
		m, ok := v.(schema.Months)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return m.String(), nil
	case schema.KindList:
		switch v.(type) {
		case []string, []int64, []float64:
			return pq.Array(v), nil
		}
		return nil, bindTypeError(col, v)
	case schema.KindJSON:
		return jsonText(col, v)
	}
	return nil, bindTypeError(col, v)
}

func (p *Postgres) CreateTableSQL(t schema.Table) (string, error) {
	lines := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		decl, err := p.TypeOf(t.Name, col)
		if err != nil {
			return "", err
		}
		line := fmt.Sprintf("    %s %s", p.QuoteIdent(col.Name), decl)
		if !col.Identity {
			if !col.Nullable {
				line += " NOT NULL"
			}
			if col.Unique {
				line += " UNIQUE"
			}
			if col.Default != nil {
				lit, err := defaultLiteral(col, false, "CURRENT_TIMESTAMP")
				if err != nil {
					return "", err
				}
				line += " DEFAULT " + lit
			}
			if col.Type.Kind == schema.KindEnum {
				line += " " + enumCheck(p, col)
			}
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", p.QuoteIdent(t.Name), strings.Join(lines, ",\n")), nil
}

func (p *Postgres) CreateIndexSQL(t schema.Table) []string {
	return indexStatements(p, t)
}

func (p *Postgres) TableExistsSQL() string {
	return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1"
}

func (p *Postgres) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE", p.QuoteIdent(table))
}

func (p *Postgres) DatabaseExistsSQL() string {
	return "SELECT COUNT(*) FROM pg_database WHERE datname = $1"
}

func (p *Postgres) CreateDatabaseSQL(name string) string {
	return fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(name))
}

func (p *Postgres) DSN(cfg *config.Config) (string, error) {
	return p.buildDSN(cfg, cfg.Postgres.Database)
}

// BootstrapDSN connects to the stock postgres database so the working
// database can be created when missing.
func (p *Postgres) BootstrapDSN(cfg *config.Config) (string, error) {
	return p.buildDSN(cfg, "postgres")
}

func (p *Postgres) buildDSN(cfg *config.Config, dbName string) (string, error) {
	ep := cfg.Postgres
	if ep.Host == "" || ep.User == "" || dbName == "" {
		return "", fmt.Errorf("postgres connection requires host, user and database")
	}
	sslMode := ep.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ep.User, ep.Password),
		Host:     fmt.Sprintf("%s:%d", ep.Host, ep.Port),
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String(), nil
}
