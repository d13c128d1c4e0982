package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seedforge-io/seedforge/internal/schema"
)

// Validate proves every (column, dialect) pair resolves a native type and
// encodes a probe value. It runs before any connection is opened so a
// misconfigured schema is a startup failure, never a mid-load one.
func Validate(d Dialect, tables []schema.Table) error {
	if err := schema.ValidateAll(tables); err != nil {
		return err
	}

	for _, t := range tables {
		for _, col := range t.Columns {
			if _, err := d.TypeOf(t.Name, col); err != nil {
				return err
			}
			if col.Identity {
				continue
			}
			if _, err := d.BindValue(col, probeValue(col)); err != nil {
				return fmt.Errorf("dialect %s: table %s: %w", d.Name(), t.Name, err)
			}
			if col.Nullable {
				if _, err := d.BindValue(col, nil); err != nil {
					return fmt.Errorf("dialect %s: table %s: column %s: null encoding: %w",
						d.Name(), t.Name, col.Name, err)
				}
			}
		}
		if _, err := d.CreateTableSQL(t); err != nil {
			return err
		}
	}
	return nil
}

// probeValue builds a representative abstract value for a column, shaped
// like what the generator emits for its kind.
func probeValue(col schema.Column) any {
	switch col.Type.Kind {
	case schema.KindBool:
		return true
	case schema.KindInt8, schema.KindInt16, schema.KindInt32, schema.KindInt64:
		return int64(1)
	case schema.KindFloat32, schema.KindFloat64:
		return float64(1.5)
	case schema.KindDecimal:
		return decimal.New(1, -int32(col.Type.Scale))
	case schema.KindMoney:
		return decimal.New(19999, -4)
	case schema.KindString:
		return "probe"
	case schema.KindFixedString:
		return strings.Repeat("x", col.Type.MaxLen)
	case schema.KindBytes:
		return []byte{0x01, 0x02}
	case schema.KindFixedBytes:
		return make([]byte, col.Type.MaxLen)
	case schema.KindUUID:
		return uuid.UUID{}
	case schema.KindDate, schema.KindTimestamp, schema.KindTimestampTZ:
		return time.Unix(0, 0).UTC()
	case schema.KindTime:
		return schema.TimeOfDay{Hour: 12}
	case schema.KindList:
		switch col.Type.Elem {
		case schema.KindInt32, schema.KindInt64:
			return []int64{1}
		case schema.KindFloat64:
			return []float64{1.5}
		default:
			return []string{"probe"}
		}
	case schema.KindJSON:
		return map[string]any{"probe": true}
	case schema.KindEnum:
		return col.Type.Values[0]
	case schema.KindInterval:
		return schema.Months(3)
	case schema.KindInet:
		return "10.0.0.1"
	case schema.KindMACAddr:
		return "00:1b:44:11:3a:b7"
	default:
		return nil
	}
}
