package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	go_ora "github.com/sijms/go-ora/v2"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// Oracle binds the logical schema to Oracle. Booleans become NUMBER(1)
// check columns, intervals use the native YEAR TO MONTH type, and inserts
// run one row at a time because Oracle has no multi-row VALUES clause.
type Oracle struct{}

const oracleMaxPrecision = 38

// timeAnchor dates clock-time values for the TIMESTAMP encoding.
var timeAnchor = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func (o *Oracle) Name() string       { return "oracle" }
func (o *Oracle) DriverName() string { return "oracle" }

func (o *Oracle) Placeholder() squirrel.PlaceholderFormat { return squirrel.Colon }

// QuoteIdent leaves names unquoted; validated identifiers fold to upper
// case, which keeps the data dictionary queries simple.
func (o *Oracle) QuoteIdent(name string) string { return name }

func (o *Oracle) SupportsMultiRow() bool { return false }
func (o *Oracle) MaxBindParams() int     { return 65535 }

func (o *Oracle) TypeOf(table string, col schema.Column) (string, error) {
	if col.Identity {
		if col.Type.Kind == schema.KindInt64 {
			return "NUMBER(19) GENERATED ALWAYS AS IDENTITY PRIMARY KEY", nil
		}
		return "NUMBER(10) GENERATED ALWAYS AS IDENTITY PRIMARY KEY", nil
	}

	switch col.Type.Kind {
	case schema.KindBool:
		return "NUMBER(1)", nil
	case schema.KindInt8:
		return "NUMBER(3)", nil
	case schema.KindInt16:
		return "NUMBER(5)", nil
	case schema.KindInt32:
		return "NUMBER(10)", nil
	case schema.KindInt64:
		return "NUMBER(19)", nil
	case schema.KindFloat32:
		return "BINARY_FLOAT", nil
	case schema.KindFloat64:
		return "BINARY_DOUBLE", nil
	case schema.KindDecimal:
		if col.Type.Precision > oracleMaxPrecision {
			return "", &PrecisionOverflowError{
				Dialect: o.Name(), Table: table, Column: col.Name,
				Precision: col.Type.Precision, Max: oracleMaxPrecision,
			}
		}
		return fmt.Sprintf("NUMBER(%d,%d)", col.Type.Precision, col.Type.Scale), nil
	case schema.KindMoney:
		return "NUMBER(19,4)", nil
	case schema.KindString:
		if col.Type.MaxLen > 0 && col.Type.MaxLen <= 4000 {
			return fmt.Sprintf("VARCHAR2(%d)", col.Type.MaxLen), nil
		}
		return "CLOB", nil
	case schema.KindFixedString:
		return fmt.Sprintf("CHAR(%d)", col.Type.MaxLen), nil
	case schema.KindBytes:
		return "BLOB", nil
	case schema.KindFixedBytes:
		return fmt.Sprintf("RAW(%d)", col.Type.MaxLen), nil
	case schema.KindUUID:
		return "VARCHAR2(36)", nil
	case schema.KindDate:
		return "DATE", nil
	case schema.KindTime:
		return "TIMESTAMP", nil
	case schema.KindTimestamp:
		return "TIMESTAMP", nil
	case schema.KindTimestampTZ:
		return "TIMESTAMP WITH TIME ZONE", nil
	case schema.KindList, schema.KindJSON:
		return "CLOB", nil
	case schema.KindEnum:
		return fmt.Sprintf("VARCHAR2(%d)", enumWidth(col.Type.Values)), nil
	case schema.KindInterval:
		return "INTERVAL YEAR TO MONTH", nil
	case schema.KindInet:
		return "VARCHAR2(45)", nil
	case schema.KindMACAddr:
		return "VARCHAR2(17)", nil
	}
	return "", &UnsupportedTypeError{Dialect: o.Name(), Table: table, Column: col.Name, Kind: col.Type.Kind}
}

func (o *Oracle) BindValue(col schema.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch col.Type.Kind {
	case schema.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
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
		// Oracle has no clock-only type; anchor the value on a fixed date.
		return timeAnchor.Add(time.Duration(tod.Hour)*time.Hour +
			time.Duration(tod.Minute)*time.Minute +
			time.Duration(tod.Second)*time.Second), nil
	case schema.KindInterval:
		iv, ok := v.(schema.Months)
		if !ok {
			return nil, bindTypeError(col, v)
		}
		return fmt.Sprintf("+%02d-%02d", int(iv)/12, int(iv)%12), nil
	case schema.KindList:
		return listJSON(col, v)
	case schema.KindJSON:
		return jsonText(col, v)
	}
	return nil, bindTypeError(col, v)
}

func (o *Oracle) CreateTableSQL(t schema.Table) (string, error) {
	lines := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		decl, err := o.TypeOf(t.Name, col)
		if err != nil {
			return "", err
		}
		line := fmt.Sprintf("    %s %s", col.Name, decl)
		if !col.Identity {
			// Oracle requires DEFAULT ahead of the inline constraints.
			if col.Default != nil {
				lit, err := defaultLiteral(col, true, "CURRENT_TIMESTAMP")
				if err != nil {
					return "", err
				}
				line += " DEFAULT " + lit
			}
			if !col.Nullable {
				line += " NOT NULL"
			}
			if col.Unique {
				line += " UNIQUE"
			}
			switch col.Type.Kind {
			case schema.KindEnum:
				line += " " + enumCheck(o, col)
			case schema.KindBool:
				line += fmt.Sprintf(" CHECK (%s IN (0,1))", col.Name)
			}
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", t.Name, strings.Join(lines, ",\n")), nil
}

func (o *Oracle) CreateIndexSQL(t schema.Table) []string {
	return indexStatements(o, t)
}

func (o *Oracle) TableExistsSQL() string {
	return "SELECT COUNT(*) FROM user_tables WHERE table_name = UPPER(:1)"
}

func (o *Oracle) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", table)
}

// Oracle schemas are provisioned with the user; there is no database to
// create, so the bootstrap stage is skipped entirely.
func (o *Oracle) DatabaseExistsSQL() string { return "" }

func (o *Oracle) CreateDatabaseSQL(name string) string { return "" }

func (o *Oracle) BootstrapDSN(*config.Config) (string, error) { return "", nil }

func (o *Oracle) DSN(cfg *config.Config) (string, error) {
	ep := cfg.Oracle
	if ep.Host == "" || ep.User == "" || ep.Service == "" {
		return "", fmt.Errorf("oracle connection requires host, user and service")
	}
	return go_ora.BuildUrl(ep.Host, ep.Port, ep.Service, ep.User, ep.Password, nil), nil
}
