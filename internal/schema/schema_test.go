package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsBuiltinCatalog(t *testing.T) {
	require.NoError(t, ValidateAll(BuiltinTables()))
}

func TestBuiltinCatalogCoversEveryKind(t *testing.T) {
	covered := make(map[Kind]bool)
	for _, table := range BuiltinTables() {
		for _, col := range table.Columns {
			covered[col.Type.Kind] = true
			if col.Type.Kind == KindList {
				covered[col.Type.Elem] = true
			}
		}
	}
	for kind := range kindNames {
		require.Truef(t, covered[kind], "no builtin column exercises kind %s", kind)
	}
}

func TestValidateRejectsDuplicateColumn(t *testing.T) {
	table := Table{
		Name: "t",
		Columns: []Column{
			{Name: "a", Type: Int32()},
			{Name: "a", Type: Int64()},
		},
	}
	err := table.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate column")
}

func TestValidateRejectsBadIdentifiers(t *testing.T) {
	bad := Table{Name: "t; DROP TABLE x", Columns: []Column{{Name: "a", Type: Int32()}}}
	require.Error(t, bad.Validate())

	badCol := Table{Name: "t", Columns: []Column{{Name: "a b", Type: Int32()}}}
	require.Error(t, badCol.Validate())
}

func TestValidateRejectsBadDecimal(t *testing.T) {
	scaleTooBig := Table{Name: "t", Columns: []Column{{Name: "d", Type: Decimal(5, 6)}}}
	require.Error(t, scaleTooBig.Validate())

	zeroPrecision := Table{Name: "t", Columns: []Column{{Name: "d", Type: Decimal(0, 0)}}}
	require.Error(t, zeroPrecision.Validate())

	negativeScale := Table{Name: "t", Columns: []Column{{Name: "d", Type: Decimal(5, -1)}}}
	require.Error(t, negativeScale.Validate())
}

func TestValidateRejectsEmptyEnum(t *testing.T) {
	table := Table{Name: "t", Columns: []Column{{Name: "e", Type: EnumOf()}}}
	require.Error(t, table.Validate())
}

func TestValidateRejectsBadIdentity(t *testing.T) {
	nullable := Table{Name: "t", Columns: []Column{
		{Name: "id", Type: Int32(), Identity: true, Nullable: true},
	}}
	require.Error(t, nullable.Validate())

	wrongKind := Table{Name: "t", Columns: []Column{
		{Name: "id", Type: VarChar(10), Identity: true},
	}}
	require.Error(t, wrongKind.Validate())

	two := Table{Name: "t", Columns: []Column{
		{Name: "a", Type: Int32(), Identity: true},
		{Name: "b", Type: Int64(), Identity: true},
	}}
	require.Error(t, two.Validate())
}

func TestValidateRejectsUnsupportedListElement(t *testing.T) {
	table := Table{Name: "t", Columns: []Column{{Name: "l", Type: ListOf(KindJSON)}}}
	require.Error(t, table.Validate())
}

func TestValidateRejectsBadDefaults(t *testing.T) {
	wrongType := Table{Name: "t", Columns: []Column{
		{Name: "flag", Type: Bool(), Default: "yes"},
	}}
	err := wrongType.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported default")

	outsideEnum := Table{Name: "t", Columns: []Column{
		{Name: "state", Type: EnumOf("NEW", "LIVE"), Default: "GONE"},
	}}
	err = outsideEnum.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not in the enum domain")

	nowOnString := Table{Name: "t", Columns: []Column{
		{Name: "label", Type: VarChar(20), Default: Now},
	}}
	require.Error(t, nowOnString.Validate())

	onIdentity := Table{Name: "t", Columns: []Column{
		{Name: "id", Type: Int32(), Identity: true, Default: 1},
	}}
	err = onIdentity.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot carry a default")
}

func TestValidateAcceptsPortableDefaults(t *testing.T) {
	table := Table{Name: "t", Columns: []Column{
		{Name: "flag", Type: Bool(), Default: true},
		{Name: "tries", Type: Int16(), Default: 10},
		{Name: "rate", Type: Float64(), Default: 1.5},
		{Name: "charge", Type: Decimal(10, 2), Default: 0},
		{Name: "zone", Type: VarChar(50), Default: "UTC"},
		{Name: "state", Type: EnumOf("NEW", "LIVE"), Default: "NEW"},
		{Name: "seen_at", Type: TimestampTZ(), Default: Now},
	}}
	require.NoError(t, table.Validate())
}

func TestValidateRejectsNegativeRowsOrBatch(t *testing.T) {
	cols := []Column{{Name: "a", Type: Int32()}}

	rows := Table{Name: "t", Columns: cols, Rows: -1}
	err := rows.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "row count")

	batch := Table{Name: "t", Columns: cols, Batch: -5}
	err = batch.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "batch size")

	inherit := Table{Name: "t", Columns: cols}
	require.NoError(t, inherit.Validate())
}

func TestValidateAllRejectsDuplicateTables(t *testing.T) {
	a := Table{Name: "same", Columns: []Column{{Name: "x", Type: Int32()}}}
	b := Table{Name: "same", Columns: []Column{{Name: "y", Type: Int32()}}}
	err := ValidateAll([]Table{a, b})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate table")
}

func TestInsertColumnsSkipsIdentity(t *testing.T) {
	inv := Invoices()
	cols := inv.InsertColumns()
	require.Len(t, cols, len(inv.Columns)-1)
	for _, c := range cols {
		require.False(t, c.Identity)
	}
}

func TestColumnIndex(t *testing.T) {
	inv := Invoices()
	require.Equal(t, 0, inv.ColumnIndex("invoice_id"))
	require.Equal(t, -1, inv.ColumnIndex("missing"))

	idx := inv.ColumnIndex("subtotal_amount")
	require.Greater(t, idx, 0)
	require.Equal(t, "subtotal_amount", inv.Columns[idx].Name)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "decimal(12,2)", Decimal(12, 2).String())
	require.Equal(t, "string(50)", VarChar(50).String())
	require.Equal(t, "string", Text().String())
	require.Equal(t, "list<float64>", ListOf(KindFloat64).String())
	require.Equal(t, "fixed_string(16)", Char(16).String())
}
