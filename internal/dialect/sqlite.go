package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// SQLite binds the logical schema to an embedded SQLite file, the quickest
// way to smoke test a schema without standing up a server.
type SQLite struct{}

// Conservative bind ceiling; builds with the historic
// SQLITE_MAX_VARIABLE_NUMBER default reject anything above it.
const sqliteMaxBindParams = 999

func (s *SQLite) Name() string       { return "sqlite" }
func (s *SQLite) DriverName() string { return "sqlite3" }

func (s *SQLite) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

func (s *SQLite) QuoteIdent(name string) string { return `"` + name + `"` }

func (s *SQLite) SupportsMultiRow() bool { return true }
func (s *SQLite) MaxBindParams() int     { return sqliteMaxBindParams }

func (s *SQLite) TypeOf(table string, col schema.Column) (string, error) {
	if col.Identity {
		return "INTEGER PRIMARY KEY AUTOINCREMENT", nil
	}

	switch col.Type.Kind {
	case schema.KindBool, schema.KindInt8, schema.KindInt16, schema.KindInt32, schema.KindInt64:
		return "INTEGER", nil
	case schema.KindFloat32, schema.KindFloat64:
		return "REAL", nil
	case schema.KindDecimal:
		return fmt.Sprintf("NUMERIC(%d,%d)", col.Type.Precision, col.Type.Scale), nil
	case schema.KindMoney:
		return "NUMERIC(19,4)", nil
	case schema.KindString, schema.KindFixedString:
		return "TEXT", nil
	case schema.KindBytes, schema.KindFixedBytes:
		return "BLOB", nil
	case schema.KindUUID:
		return "TEXT", nil
	case schema.KindDate:
		return "DATE", nil
	case schema.KindTime:
		return "TIME", nil
	case schema.KindTimestamp, schema.KindTimestampTZ:
		return "DATETIME", nil
	case schema.KindList, schema.KindJSON:
		return "TEXT", nil
	case schema.KindEnum:
		return "TEXT", nil
	case schema.KindInterval:
		return "TEXT", nil
	case schema.KindInet, schema.KindMACAddr:
		return "TEXT", nil
	}
	return "", &UnsupportedTypeError{Dialect: s.Name(), Table: table, Column: col.Name, Kind: col.Type.Kind}
}

func (s *SQLite) BindValue(col schema.Column, v any) (any, error) {
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
	case schema.KindDate:
		ts, ok := v.(time.Time)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return ts.Format("2006-01-02"), nil
	case schema.KindTimestamp, schema.KindTimestampTZ:
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
		iv, ok := v.(schema.Months)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return iv.String(), nil
	case schema.KindList:
		return listJSON(col, v)
	case schema.KindJSON:
		return jsonText(col, v)
	}
	return nil, bindTypeError(col, v)
}

func (s *SQLite) CreateTableSQL(t schema.Table) (string, error) {
	lines := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		decl, err := s.TypeOf(t.Name, col)
		if err != nil {
			return "", err
		}
		line := fmt.Sprintf("    %s %s", s.QuoteIdent(col.Name), decl)
		if !col.Identity {
			if !col.Nullable {
				line += " NOT NULL"
			}
			if col.Unique {
				line += " UNIQUE"
			}
			if col.Default != nil {
				lit, err := defaultLiteral(col, true, "CURRENT_TIMESTAMP")
				if err != nil {
					return "", err
				}
				line += " DEFAULT " + lit
			}
			if col.Type.Kind == schema.KindEnum {
				line += " " + enumCheck(s, col)
			}
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", s.QuoteIdent(t.Name), strings.Join(lines, ",\n")), nil
}

func (s *SQLite) CreateIndexSQL(t schema.Table) []string {
	return indexStatements(s, t)
}

func (s *SQLite) TableExistsSQL() string { return "" }

func (s *SQLite) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", s.QuoteIdent(table))
}

// The database file appears on first open; nothing to bootstrap.
func (s *SQLite) DatabaseExistsSQL() string { return "" }

func (s *SQLite) CreateDatabaseSQL(name string) string { return "" }

func (s *SQLite) BootstrapDSN(*config.Config) (string, error) { return "", nil }

func (s *SQLite) DSN(cfg *config.Config) (string, error) {
	if cfg.SQLite.Path == "" {
		return "", fmt.Errorf("sqlite connection requires a file path")
	}
	return cfg.SQLite.Path, nil
}
