package dialect

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// MSSQL binds the logical schema to SQL Server. Text rides on NVARCHAR,
// lists and JSON documents on NVARCHAR(MAX) JSON text.
type MSSQL struct{}

const (
	mssqlMaxPrecision = 38
	mssqlMaxNVarchar  = 4000
	// SQL Server rejects statements with more than 2100 bind parameters.
	mssqlMaxBindParams = 2100
)

func (s *MSSQL) Name() string       { return "mssql" }
func (s *MSSQL) DriverName() string { return "sqlserver" }

func (s *MSSQL) Placeholder() squirrel.PlaceholderFormat { return squirrel.AtP }

func (s *MSSQL) QuoteIdent(name string) string { return "[" + name + "]" }

func (s *MSSQL) SupportsMultiRow() bool { return true }
func (s *MSSQL) MaxBindParams() int     { return mssqlMaxBindParams }

func (s *MSSQL) TypeOf(table string, col schema.Column) (string, error) {
	if col.Identity {
		if col.Type.Kind == schema.KindInt64 {
			return "BIGINT IDENTITY(1,1) PRIMARY KEY", nil
		}
		return "INT IDENTITY(1,1) PRIMARY KEY", nil
	}

	switch col.Type.Kind {
	case schema.KindBool:
		return "BIT", nil
	case schema.KindInt8:
		return "TINYINT", nil
	case schema.KindInt16:
		return "SMALLINT", nil
	case schema.KindInt32:
		return "INT", nil
	case schema.KindInt64:
		return "BIGINT", nil
	case schema.KindFloat32:
		return "REAL", nil
	case schema.KindFloat64:
		return "FLOAT", nil
	case schema.KindDecimal:
		if col.Type.Precision > mssqlMaxPrecision {
			return "", &PrecisionOverflowError{
				Dialect: s.Name(), Table: table, Column: col.Name,
				Precision: col.Type.Precision, Max: mssqlMaxPrecision,
			}
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", col.Type.Precision, col.Type.Scale), nil
	case schema.KindMoney:
		return "MONEY", nil
	case schema.KindString:
		if col.Type.MaxLen > 0 && col.Type.MaxLen <= mssqlMaxNVarchar {
			return fmt.Sprintf("NVARCHAR(%d)", col.Type.MaxLen), nil
		}
		return "NVARCHAR(MAX)", nil
	case schema.KindFixedString:
		return fmt.Sprintf("NCHAR(%d)", col.Type.MaxLen), nil
	case schema.KindBytes:
		return "VARBINARY(MAX)", nil
	case schema.KindFixedBytes:
		return fmt.Sprintf("BINARY(%d)", col.Type.MaxLen), nil
	case schema.KindUUID:
		return "UNIQUEIDENTIFIER", nil
	case schema.KindDate:
		return "DATE", nil
	case schema.KindTime:
		return "TIME", nil
	case schema.KindTimestamp:
		return "DATETIME2", nil
	case schema.KindTimestampTZ:
		return "DATETIMEOFFSET", nil
	case schema.KindList, schema.KindJSON:
		return "NVARCHAR(MAX)", nil
	case schema.KindEnum:
		return fmt.Sprintf("NVARCHAR(%d)", enumWidth(col.Type.Values)), nil
	case schema.KindInterval:
		return "NVARCHAR(50)", nil
	case schema.KindInet:
		return "VARCHAR(45)", nil
	case schema.KindMACAddr:
		return "VARCHAR(17)", nil
	}
	return "", &UnsupportedTypeError{Dialect: s.Name(), Table: table, Column: col.Name, Kind: col.Type.Kind}
}

func (s *MSSQL) BindValue(col schema.Column, v any) (any, error) {
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

func (s *MSSQL) CreateTableSQL(t schema.Table) (string, error) {
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
				now := "GETDATE()"
				if col.Type.Kind == schema.KindTimestampTZ {
					now = "SYSDATETIMEOFFSET()"
				}
				lit, err := defaultLiteral(col, true, now)
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

func (s *MSSQL) CreateIndexSQL(t schema.Table) []string {
	return indexStatements(s, t)
}

func (s *MSSQL) TableExistsSQL() string { return "" }

func (s *MSSQL) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", s.QuoteIdent(table))
}

func (s *MSSQL) DatabaseExistsSQL() string {
	return "SELECT COUNT(*) FROM sys.databases WHERE name = @p1"
}

func (s *MSSQL) CreateDatabaseSQL(name string) string {
	return fmt.Sprintf("CREATE DATABASE %s", s.QuoteIdent(name))
}

func (s *MSSQL) DSN(cfg *config.Config) (string, error) {
	return s.buildDSN(cfg, cfg.MSSQL.Database)
}

// BootstrapDSN connects to master so the working database can be created
// when missing. CREATE DATABASE cannot run inside a transaction there.
func (s *MSSQL) BootstrapDSN(cfg *config.Config) (string, error) {
	return s.buildDSN(cfg, "master")
}

func (s *MSSQL) buildDSN(cfg *config.Config, dbName string) (string, error) {
	ep := cfg.MSSQL
	if ep.Host == "" || ep.User == "" || dbName == "" {
		return "", fmt.Errorf("mssql connection requires host, user and database")
	}
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(ep.User, ep.Password),
		Host:     fmt.Sprintf("%s:%d", ep.Host, ep.Port),
		RawQuery: url.Values{"database": []string{dbName}}.Encode(),
	}
	return u.String(), nil
}
