package dialect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

// Dialect translates logical table definitions into one database's native
// DDL, bind placeholders and value encodings. Implementations are stateless;
// connections are owned by the caller.
type Dialect interface {
	Name() string
	DriverName() string

	// Placeholder is the bind placeholder format the dialect's driver expects.
	Placeholder() squirrel.PlaceholderFormat
	QuoteIdent(name string) string

	// TypeOf returns the native column declaration for a column, including
	// identity and primary key clauses for identity columns.
	TypeOf(table string, col schema.Column) (string, error)

	// BindValue encodes a generated abstract value into the argument handed
	// to the driver. nil passes through as SQL NULL.
	BindValue(col schema.Column, v any) (any, error)

	// DSN builds the working connection string. BootstrapDSN builds the
	// administrative one used to ensure the database exists; it returns ""
	// when the dialect needs no bootstrap step.
	DSN(cfg *config.Config) (string, error)
	BootstrapDSN(cfg *config.Config) (string, error)

	// DatabaseExistsSQL returns a COUNT query with one bind parameter (the
	// database name), or "" when creation is conditional on its own.
	DatabaseExistsSQL() string
	CreateDatabaseSQL(name string) string

	// TableExistsSQL returns a COUNT query with one bind parameter (the
	// table name), or "" when DropTableSQL is already guarded.
	TableExistsSQL() string
	DropTableSQL(table string) string
	CreateTableSQL(t schema.Table) (string, error)
	CreateIndexSQL(t schema.Table) []string

	// SupportsMultiRow reports whether INSERT ... VALUES (...),(...) works.
	SupportsMultiRow() bool
	// MaxBindParams is the dialect's bind parameter ceiling per statement.
	MaxBindParams() int
}

// New returns the dialect registered under the given name.
func New(name string) (Dialect, error) {
	switch name {
	case "postgresql", "postgres":
		return &Postgres{}, nil
	case "mysql":
		return &MySQL{}, nil
	case "mssql", "sqlserver":
		return &MSSQL{}, nil
	case "oracle":
		return &Oracle{}, nil
	case "sqlite", "sqlite3":
		return &SQLite{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s (supported: postgres, mysql, mssql, oracle, sqlite)", name)
	}
}

// All returns every supported dialect, for connection-free validation runs.
func All() []Dialect {
	return []Dialect{&Postgres{}, &MySQL{}, &MSSQL{}, &Oracle{}, &SQLite{}}
}

// indexStatements builds the secondary index DDL shared by all dialects.
// Index names are table scoped so re-creation never collides.
func indexStatements(d Dialect, t schema.Table) []string {
	var stmts []string
	for _, col := range t.Columns {
		if !col.Index || col.Unique || col.Identity {
			continue
		}
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			d.QuoteIdent(fmt.Sprintf("idx_%s_%s", t.Name, col.Name)),
			d.QuoteIdent(t.Name),
			d.QuoteIdent(col.Name)))
	}
	return stmts
}

// quotedList renders enum values as a 'a','b','c' literal list.
func quotedList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(parts, ",")
}

// enumCheck renders the CHECK constraint used by dialects without native enums.
func enumCheck(d Dialect, col schema.Column) string {
	return fmt.Sprintf("CHECK (%s IN (%s))", d.QuoteIdent(col.Name), quotedList(col.Type.Values))
}

// enumWidth is the declared length for enum columns stored as varchar.
func enumWidth(values []string) int {
	width := 1
	for _, v := range values {
		if len(v) > width {
			width = len(v)
		}
	}
	return width
}

// defaultLiteral renders a declared column default. boolAsInt covers dialects
// without boolean literals; now is the dialect's current-timestamp expression
// for the column's kind.
func defaultLiteral(col schema.Column, boolAsInt bool, now string) (string, error) {
	switch v := col.Default.(type) {
	case schema.NowDefault:
		return now, nil
	case bool:
		if boolAsInt {
			if v {
				return "1", nil
			}
			return "0", nil
		}
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	}
	return "", fmt.Errorf("column %s: no literal form for default %T", col.Name, col.Default)
}

func bindTypeError(col schema.Column, v any) error {
	return fmt.Errorf("column %s: unexpected value type %T for %s", col.Name, v, col.Type)
}

// Shared value encoders. Each returns the driver-level representation used
// by every dialect that stores the kind the same way.

func decimalString(col schema.Column, v any) (any, error) {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return nil, bindTypeError(col, v)
	}
	return d.String(), nil
}

func jsonText(col schema.Column, v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("column %s: failed to encode json value: %w", col.Name, err)
	}
	return string(data), nil
}

// listJSON stores list values as a JSON array, the representation used by
// every dialect without a native array type.
func listJSON(col schema.Column, v any) (any, error) {
	switch v.(type) {
	case []string, []int64, []float64:
		return jsonText(col, v)
	default:
		return nil, bindTypeError(col, v)
	}
}

func stringValue(col schema.Column, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, bindTypeError(col, v)
	}
	return s, nil
}
