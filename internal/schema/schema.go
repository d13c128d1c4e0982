package schema

import (
	"fmt"
	"regexp"
)

// Kind is the logical type tag of a column. Dialects translate a Kind
// (plus its Type parameters) into a native column declaration.
type Kind int

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindMoney
	KindString
	KindFixedString
	KindBytes
	KindFixedBytes
	KindUUID
	KindDate
	KindTime
	KindTimestamp
	KindTimestampTZ
	KindList
	KindJSON
	KindEnum
	KindInterval
	KindInet
	KindMACAddr
)

var kindNames = map[Kind]string{
	KindBool:        "bool",
	KindInt8:        "int8",
	KindInt16:       "int16",
	KindInt32:       "int32",
	KindInt64:       "int64",
	KindFloat32:     "float32",
	KindFloat64:     "float64",
	KindDecimal:     "decimal",
	KindMoney:       "money",
	KindString:      "string",
	KindFixedString: "fixed_string",
	KindBytes:       "bytes",
	KindFixedBytes:  "fixed_bytes",
	KindUUID:        "uuid",
	KindDate:        "date",
	KindTime:        "time",
	KindTimestamp:   "timestamp",
	KindTimestampTZ: "timestamptz",
	KindList:        "list",
	KindJSON:        "json",
	KindEnum:        "enum",
	KindInterval:    "interval",
	KindInet:        "inet",
	KindMACAddr:     "macaddr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is a Kind plus its parameters. Use the constructors below instead of
// building Type values by hand.
type Type struct {
	Kind      Kind
	Precision int      // Decimal only
	Scale     int      // Decimal only
	MaxLen    int      // String (0 = unbounded), FixedString / FixedBytes length
	Elem      Kind     // List element kind
	Values    []string // Enum domain
}

func (t Type) String() string {
	switch t.Kind {
	case KindDecimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case KindString:
		if t.MaxLen > 0 {
			return fmt.Sprintf("string(%d)", t.MaxLen)
		}
		return "string"
	case KindFixedString:
		return fmt.Sprintf("fixed_string(%d)", t.MaxLen)
	case KindFixedBytes:
		return fmt.Sprintf("fixed_bytes(%d)", t.MaxLen)
	case KindList:
		return fmt.Sprintf("list<%s>", t.Elem)
	case KindEnum:
		return fmt.Sprintf("enum(%d values)", len(t.Values))
	default:
		return t.Kind.String()
	}
}

func Bool() Type        { return Type{Kind: KindBool} }
func Int8() Type        { return Type{Kind: KindInt8} }
func Int16() Type       { return Type{Kind: KindInt16} }
func Int32() Type       { return Type{Kind: KindInt32} }
func Int64() Type       { return Type{Kind: KindInt64} }
func Float32() Type     { return Type{Kind: KindFloat32} }
func Float64() Type     { return Type{Kind: KindFloat64} }
func Money() Type       { return Type{Kind: KindMoney} }
func Text() Type        { return Type{Kind: KindString} }
func Bytes() Type       { return Type{Kind: KindBytes} }
func UUID() Type        { return Type{Kind: KindUUID} }
func Date() Type        { return Type{Kind: KindDate} }
func Time() Type        { return Type{Kind: KindTime} }
func Timestamp() Type   { return Type{Kind: KindTimestamp} }
func TimestampTZ() Type { return Type{Kind: KindTimestampTZ} }
func JSON() Type        { return Type{Kind: KindJSON} }
func Interval() Type    { return Type{Kind: KindInterval} }
func Inet() Type        { return Type{Kind: KindInet} }
func MACAddr() Type     { return Type{Kind: KindMACAddr} }

func Decimal(precision, scale int) Type {
	return Type{Kind: KindDecimal, Precision: precision, Scale: scale}
}

func VarChar(maxLen int) Type {
	return Type{Kind: KindString, MaxLen: maxLen}
}

func Char(length int) Type {
	return Type{Kind: KindFixedString, MaxLen: length}
}

func FixedBytes(length int) Type {
	return Type{Kind: KindFixedBytes, MaxLen: length}
}

func ListOf(elem Kind) Type {
	return Type{Kind: KindList, Elem: elem}
}

func EnumOf(values ...string) Type {
	return Type{Kind: KindEnum, Values: values}
}

// NowDefault marks a column default as the database's current-timestamp
// expression; each dialect renders its own native form.
type NowDefault struct{}

// Now is the NowDefault marker used in column definitions.
var Now = NowDefault{}

// Column describes one column of a table. Pool names a registered value
// pool the generator draws string values from; Prefix produces code-style
// values like "EMP-000042" (sequential when Unique, random otherwise).
// Default is an optional DDL default: bool, int, int64, float64, string or
// Now, restricted to forms every dialect can render as a literal.
type Column struct {
	Name     string
	Type     Type
	Nullable bool
	Identity bool // dialect-native auto increment primary key
	Unique   bool
	Index    bool
	Default  any
	Pool     string
	Prefix   string
}

// Table is an ordered column list. Column order is significant: it fixes
// both the CREATE TABLE layout and the positional bind order of inserts.
// Rows and Batch override the run-wide record count and batch size for
// this table; zero inherits the run configuration.
type Table struct {
	Name    string
	Columns []Column
	Rows    int
	Batch   int
	Derive  string // named cross-field policy applied after per-column generation
}

// Row holds one generated record, positionally aligned with the insert
// column list it was generated for. nil marks SQL NULL.
type Row []any

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// InsertColumns returns the columns that participate in inserts,
// skipping identity columns the database fills itself.
func (t Table) InsertColumns() []Column {
	cols := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Identity {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsValidIdentifier checks if a string is a valid SQL identifier.
func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Validate checks a table definition for structural problems. It runs once
// at startup so later stages can trust names and type parameters.
func (t Table) Validate() error {
	if !IsValidIdentifier(t.Name) {
		return fmt.Errorf("invalid table name: %q", t.Name)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", t.Name)
	}
	if t.Rows < 0 {
		return fmt.Errorf("table %s: row count cannot be negative, got %d", t.Name, t.Rows)
	}
	if t.Batch < 0 {
		return fmt.Errorf("table %s: batch size cannot be negative, got %d", t.Name, t.Batch)
	}

	seen := make(map[string]bool, len(t.Columns))
	identities := 0
	for _, c := range t.Columns {
		if !IsValidIdentifier(c.Name) {
			return fmt.Errorf("table %s: invalid column name: %q", t.Name, c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("table %s: duplicate column %s", t.Name, c.Name)
		}
		seen[c.Name] = true

		if c.Identity {
			identities++
			if c.Type.Kind != KindInt32 && c.Type.Kind != KindInt64 {
				return fmt.Errorf("table %s: identity column %s must be int32 or int64, got %s",
					t.Name, c.Name, c.Type.Kind)
			}
			if c.Nullable {
				return fmt.Errorf("table %s: identity column %s cannot be nullable", t.Name, c.Name)
			}
			if c.Default != nil {
				return fmt.Errorf("table %s: identity column %s cannot carry a default", t.Name, c.Name)
			}
		}

		if c.Default != nil {
			if err := validateDefault(c); err != nil {
				return fmt.Errorf("table %s: column %s: %w", t.Name, c.Name, err)
			}
		}

		switch c.Type.Kind {
		case KindDecimal:
			if c.Type.Precision < 1 {
				return fmt.Errorf("table %s: column %s: decimal precision must be >= 1, got %d",
					t.Name, c.Name, c.Type.Precision)
			}
			if c.Type.Scale < 0 || c.Type.Scale > c.Type.Precision {
				return fmt.Errorf("table %s: column %s: decimal scale %d out of range for precision %d",
					t.Name, c.Name, c.Type.Scale, c.Type.Precision)
			}
		case KindFixedString, KindFixedBytes:
			if c.Type.MaxLen < 1 {
				return fmt.Errorf("table %s: column %s: %s needs a positive length",
					t.Name, c.Name, c.Type.Kind)
			}
		case KindEnum:
			if len(c.Type.Values) == 0 {
				return fmt.Errorf("table %s: column %s: enum needs at least one value", t.Name, c.Name)
			}
			for _, v := range c.Type.Values {
				if v == "" {
					return fmt.Errorf("table %s: column %s: empty enum value", t.Name, c.Name)
				}
			}
		case KindList:
			switch c.Type.Elem {
			case KindString, KindInt32, KindInt64, KindFloat64:
			default:
				return fmt.Errorf("table %s: column %s: unsupported list element kind %s",
					t.Name, c.Name, c.Type.Elem)
			}
		}
	}

	if identities > 1 {
		return fmt.Errorf("table %s: more than one identity column", t.Name)
	}
	return nil
}

// validateDefault checks that a declared default matches the column's kind.
// Timestamp columns accept only Now; the current-timestamp expression is the
// one default every dialect spells differently but all of them have.
func validateDefault(c Column) error {
	switch c.Type.Kind {
	case KindBool:
		if _, ok := c.Default.(bool); ok {
			return nil
		}
	case KindInt8, KindInt16, KindInt32, KindInt64:
		switch c.Default.(type) {
		case int, int64:
			return nil
		}
	case KindFloat32, KindFloat64, KindDecimal, KindMoney:
		switch c.Default.(type) {
		case int, int64, float64:
			return nil
		}
	case KindString, KindFixedString:
		if _, ok := c.Default.(string); ok {
			return nil
		}
	case KindEnum:
		s, ok := c.Default.(string)
		if !ok {
			break
		}
		for _, v := range c.Type.Values {
			if v == s {
				return nil
			}
		}
		return fmt.Errorf("default %q is not in the enum domain", s)
	case KindTimestamp, KindTimestampTZ:
		if _, ok := c.Default.(NowDefault); ok {
			return nil
		}
	}
	return fmt.Errorf("unsupported default %T for %s", c.Default, c.Type)
}

// ValidateAll validates a set of tables and rejects duplicate table names.
func ValidateAll(tables []Table) error {
	seen := make(map[string]bool, len(tables))
	for _, t := range tables {
		if seen[t.Name] {
			return fmt.Errorf("duplicate table name: %s", t.Name)
		}
		seen[t.Name] = true
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
