package dialect

import (
	"fmt"

	"github.com/seedforge-io/seedforge/internal/schema"
)

// UnsupportedTypeError reports a column whose logical type has no binding
// for the chosen dialect. It surfaces during startup validation, never
// mid-load.
type UnsupportedTypeError struct {
	Dialect string
	Table   string
	Column  string
	Kind    schema.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("dialect %s: table %s: column %s: no type binding for %s",
		e.Dialect, e.Table, e.Column, e.Kind)
}

// PrecisionOverflowError reports a decimal column whose declared precision
// exceeds what the dialect can represent. Values are never silently clamped.
type PrecisionOverflowError struct {
	Dialect   string
	Table     string
	Column    string
	Precision int
	Max       int
}

func (e *PrecisionOverflowError) Error() string {
	return fmt.Sprintf("dialect %s: table %s: column %s: precision %d exceeds maximum %d",
		e.Dialect, e.Table, e.Column, e.Precision, e.Max)
}
