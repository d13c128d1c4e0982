package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: widgets
    rows: 250
    batch: 50
    columns:
      - name: widget_id
        type: int64
        identity: true
      - name: label
        type: string
        max_len: 80
        default: unnamed
      - name: price
        type: decimal
        precision: 10
        scale: 2
        default: 0
      - name: state
        type: enum
        values: [NEW, USED, BROKEN]
        nullable: true
      - name: tags
        type: list
        elem: string
        pool: tags
      - name: in_stock
        type: bool
        default: true
      - name: listed_at
        type: timestamptz
        default: now
`)

	tables, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	w := tables[0]
	require.Equal(t, "widgets", w.Name)
	require.Equal(t, 250, w.Rows)
	require.Equal(t, 50, w.Batch)
	require.Len(t, w.Columns, 7)
	require.True(t, w.Columns[0].Identity)
	require.Equal(t, KindInt64, w.Columns[0].Type.Kind)
	require.Equal(t, 80, w.Columns[1].Type.MaxLen)
	require.Equal(t, "unnamed", w.Columns[1].Default)
	require.Equal(t, Decimal(10, 2), w.Columns[2].Type)
	require.Equal(t, 0, w.Columns[2].Default)
	require.Equal(t, []string{"NEW", "USED", "BROKEN"}, w.Columns[3].Type.Values)
	require.True(t, w.Columns[3].Nullable)
	require.Equal(t, KindString, w.Columns[4].Type.Elem)
	require.Equal(t, "tags", w.Columns[4].Pool)
	require.Equal(t, true, w.Columns[5].Default)
	require.Equal(t, Now, w.Columns[6].Default)
}

func TestLoadFileRejectsUnknownType(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: widgets
    columns:
      - name: a
        type: geometry
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown type")
}

func TestLoadFileRejectsInvalidTable(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: widgets
    columns:
      - name: d
        type: decimal
        precision: 2
        scale: 5
`)
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileRejectsEmptyFile(t *testing.T) {
	path := writeSchemaFile(t, "tables: []\n")
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseKindRoundTrip(t *testing.T) {
	for kind, name := range kindNames {
		parsed, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}
}
