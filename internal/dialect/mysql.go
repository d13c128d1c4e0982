package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// MySQL binds the logical schema to MySQL 8. Enums are native; lists ride
// on JSON columns since MySQL has no array type.
type MySQL struct{}

const (
	mysqlMaxPrecision = 65
	mysqlMaxScale     = 30
	// utf8mb4 VARCHAR columns above this spill past the row size limit.
	mysqlMaxVarchar = 16383
)

func (m *MySQL) Name() string       { return "mysql" }
func (m *MySQL) DriverName() string { return "mysql" }

func (m *MySQL) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

func (m *MySQL) QuoteIdent(name string) string { return "`" + name + "`" }

func (m *MySQL) SupportsMultiRow() bool { return true }
func (m *MySQL) MaxBindParams() int     { return 65535 }

func (m *MySQL) TypeOf(table string, col schema.Column) (string, error) {
	if col.Identity {
		if col.Type.Kind == schema.KindInt64 {
			return "BIGINT AUTO_INCREMENT PRIMARY KEY", nil
		}
		return "INT AUTO_INCREMENT PRIMARY KEY", nil
	}

	switch col.Type.Kind {
	case schema.KindBool:
		return "BOOLEAN", nil
	case schema.KindInt8:
		return "TINYINT", nil
	case schema.KindInt16:
		return "SMALLINT", nil
	case schema.KindInt32:
		return "INT", nil
	case schema.KindInt64:
		return "BIGINT", nil
	case schema.KindFloat32:
		return "FLOAT", nil
	case schema.KindFloat64:
		return "DOUBLE", nil
	case schema.KindDecimal:
		if col.Type.Precision > mysqlMaxPrecision {
			return "", &PrecisionOverflowError{
				Dialect: m.Name(), Table: table, Column: col.Name,
				Precision: col.Type.Precision, Max: mysqlMaxPrecision,
			}
		}
		if col.Type.Scale > mysqlMaxScale {
			return "", fmt.Errorf("dialect mysql: table %s: column %s: scale %d exceeds maximum %d",
				table, col.Name, col.Type.Scale, mysqlMaxScale)
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", col.Type.Precision, col.Type.Scale), nil
	case schema.KindMoney:
		return "DECIMAL(19,4)", nil
	case schema.KindString:
		if col.Type.MaxLen > 0 && col.Type.MaxLen <= mysqlMaxVarchar {
			return fmt.Sprintf("VARCHAR(%d)", col.Type.MaxLen), nil
		}
		return "TEXT", nil
	case schema.KindFixedString:
		return fmt.Sprintf("CHAR(%d)", col.Type.MaxLen), nil
	case schema.KindBytes:
		return "BLOB", nil
	case schema.KindFixedBytes:
		return fmt.Sprintf("BINARY(%d)", col.Type.MaxLen), nil
	case schema.KindUUID:
		return "CHAR(36)", nil
	case schema.KindDate:
		return "DATE", nil
	case schema.KindTime:
		return "TIME", nil
	case schema.KindTimestamp, schema.KindTimestampTZ:
		return "DATETIME", nil
	case schema.KindList, schema.KindJSON:
		return "JSON", nil
	case schema.KindEnum:
		return fmt.Sprintf("ENUM(%s)", quotedList(col.Type.Values)), nil
	case schema.KindInterval:
		return "VARCHAR(50)", nil
	case schema.KindInet:
		return "VARCHAR(45)", nil
	case schema.KindMACAddr:
		return "VARCHAR(17)", nil
	}
	return "", &UnsupportedTypeError{Dialect: m.Name(), Table: table, Column: col.Name, Kind: col.Type.Kind}
}

func (m *MySQL) BindValue(col schema.Column, v any) (any, error) {
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
	case schema.KindTimestamp:
		ts, ok := v.(time.Time)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return ts, nil
	case schema.KindTimestampTZ:
		ts, ok := v.(time.Time)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		// DATETIME carries no zone; normalize before it is lost.
		return ts.UTC(), nil
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

func (m *MySQL) CreateTableSQL(t schema.Table) (string, error) {
	lines := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		decl, err := m.TypeOf(t.Name, col)
		if err != nil {
			return "", err
		}
		line := fmt.Sprintf("    %s %s", m.QuoteIdent(col.Name), decl)
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
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		m.QuoteIdent(t.Name), strings.Join(lines, ",\n")), nil
}

func (m *MySQL) CreateIndexSQL(t schema.Table) []string {
	return indexStatements(m, t)
}

func (m *MySQL) TableExistsSQL() string { return "" }

func (m *MySQL) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", m.QuoteIdent(table))
}

func (m *MySQL) DatabaseExistsSQL() string { return "" }

func (m *MySQL) CreateDatabaseSQL(name string) string {
	return fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s CHARACTER SET utf8mb4", m.QuoteIdent(name))
}

func (m *MySQL) DSN(cfg *config.Config) (string, error) {
	return m.buildDSN(cfg, cfg.MySQL.Database)
}

// BootstrapDSN connects without a schema selected so the working database
// can be created when missing.
func (m *MySQL) BootstrapDSN(cfg *config.Config) (string, error) {
	return m.buildDSN(cfg, "")
}

func (m *MySQL) buildDSN(cfg *config.Config, dbName string) (string, error) {
	ep := cfg.MySQL
	if ep.Host == "" || ep.User == "" {
		return "", fmt.Errorf("mysql connection requires host and user")
	}
	mc := gomysql.NewConfig()
	mc.User = ep.User
	mc.Passwd = ep.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", ep.Host, ep.Port)
	mc.DBName = dbName
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN(), nil
}
