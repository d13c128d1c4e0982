package dialect

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/schema"
)

func TestMySQLTypeOf(t *testing.T) {
	m := &MySQL{}
	cases := []struct {
		col  schema.Column
		want string
	}{
		{schema.Column{Name: "id", Type: schema.Int32(), Identity: true}, "INT AUTO_INCREMENT PRIMARY KEY"},
		{schema.Column{Name: "id", Type: schema.Int64(), Identity: true}, "BIGINT AUTO_INCREMENT PRIMARY KEY"},
		{schema.Column{Name: "active", Type: schema.Bool()}, "BOOLEAN"},
		{schema.Column{Name: "tiny", Type: schema.Int8()}, "TINYINT"},
		{schema.Column{Name: "amount", Type: schema.Decimal(12, 4)}, "DECIMAL(12,4)"},
		{schema.Column{Name: "price", Type: schema.Money()}, "DECIMAL(19,4)"},
		{schema.Column{Name: "name", Type: schema.VarChar(120)}, "VARCHAR(120)"},
		{schema.Column{Name: "body", Type: schema.Text()}, "TEXT"},
		{schema.Column{Name: "blob", Type: schema.Bytes()}, "BLOB"},
		{schema.Column{Name: "hash", Type: schema.FixedBytes(32)}, "BINARY(32)"},
		{schema.Column{Name: "uid", Type: schema.UUID()}, "CHAR(36)"},
		{schema.Column{Name: "seen", Type: schema.Timestamp()}, "DATETIME"},
		{schema.Column{Name: "created", Type: schema.TimestampTZ()}, "DATETIME"},
		{schema.Column{Name: "tags", Type: schema.ListOf(schema.KindString)}, "JSON"},
		{schema.Column{Name: "meta", Type: schema.JSON()}, "JSON"},
		{schema.Column{Name: "status", Type: schema.EnumOf("OPEN", "CLOSED")}, "ENUM('OPEN','CLOSED')"},
		{schema.Column{Name: "term", Type: schema.Interval()}, "VARCHAR(50)"},
		{schema.Column{Name: "ip", Type: schema.Inet()}, "VARCHAR(45)"},
		{schema.Column{Name: "mac", Type: schema.MACAddr()}, "VARCHAR(17)"},
	}
	for _, tc := range cases {
		got, err := m.TypeOf("t", tc.col)
		require.NoError(t, err, tc.col.Name)
		assert.Equal(t, tc.want, got, tc.col.Name)
	}
}

func TestMySQLRejectsOversizedDecimals(t *testing.T) {
	m := &MySQL{}

	_, err := m.TypeOf("t", schema.Column{Name: "wide", Type: schema.Decimal(66, 2)})
	var overflow *PrecisionOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 65, overflow.Max)

	_, err = m.TypeOf("t", schema.Column{Name: "deep", Type: schema.Decimal(40, 31)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale 31 exceeds maximum 30")
}

func TestMySQLOversizedVarcharFallsBackToText(t *testing.T) {
	m := &MySQL{}
	got, err := m.TypeOf("t", schema.Column{Name: "doc", Type: schema.VarChar(20000)})
	require.NoError(t, err)
	assert.Equal(t, "TEXT", got)
}

func TestMySQLBindValue(t *testing.T) {
	m := &MySQL{}

	t.Run("dates render as plain text", func(t *testing.T) {
		got, err := m.BindValue(schema.Column{Name: "birth", Type: schema.Date()},
			time.Date(1991, 3, 14, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "1991-03-14", got)
	})

	t.Run("zoned timestamps normalize to UTC", func(t *testing.T) {
		ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
		got, err := m.BindValue(schema.Column{Name: "created", Type: schema.TimestampTZ()}, ts)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("naive timestamps pass through", func(t *testing.T) {
		ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		got, err := m.BindValue(schema.Column{Name: "seen", Type: schema.Timestamp()}, ts)
		require.NoError(t, err)
		assert.Equal(t, ts, got)
	})

	t.Run("lists render as json text", func(t *testing.T) {
		got, err := m.BindValue(schema.Column{Name: "tags", Type: schema.ListOf(schema.KindString)}, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, got)
	})

	t.Run("int lists render as json text", func(t *testing.T) {
		got, err := m.BindValue(schema.Column{Name: "ids", Type: schema.ListOf(schema.KindInt64)}, []int64{3, 5})
		require.NoError(t, err)
		assert.Equal(t, `[3,5]`, got)
	})
}

func TestMySQLCreateTableSQL(t *testing.T) {
	m := &MySQL{}
	table := schema.Table{
		Name: "orders",
		Columns: []schema.Column{
			{Name: "id", Type: schema.Int64(), Identity: true},
			{Name: "code", Type: schema.VarChar(20), Unique: true},
			{Name: "note", Type: schema.Text(), Nullable: true},
		},
	}
	sql, err := m.CreateTableSQL(table)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "CREATE TABLE `orders` ("))
	assert.True(t, strings.HasSuffix(sql, ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"))
	assert.Contains(t, sql, "`id` BIGINT AUTO_INCREMENT PRIMARY KEY")
	assert.Contains(t, sql, "`code` VARCHAR(20) NOT NULL UNIQUE")

	// Column order follows the logical definition.
	idPos := strings.Index(sql, "`id`")
	codePos := strings.Index(sql, "`code`")
	notePos := strings.Index(sql, "`note`")
	assert.Less(t, idPos, codePos)
	assert.Less(t, codePos, notePos)
}

func TestMySQLStatements(t *testing.T) {
	m := &MySQL{}
	assert.Equal(t, squirrel.Question, m.Placeholder())
	assert.True(t, m.SupportsMultiRow())
	assert.Equal(t, "DROP TABLE IF EXISTS `events`", m.DropTableSQL("events"))
	assert.Empty(t, m.TableExistsSQL())
	assert.Empty(t, m.DatabaseExistsSQL())
	assert.Equal(t, "CREATE DATABASE IF NOT EXISTS `warehouse` CHARACTER SET utf8mb4",
		m.CreateDatabaseSQL("warehouse"))
}

func TestMySQLDSN(t *testing.T) {
	m := &MySQL{}
	cfg := &config.Config{MySQL: config.Endpoint{
		Host: "db.internal", Port: 3307, User: "app", Password: "s3cret", Database: "warehouse",
	}}

	dsn, err := m.DSN(cfg)
	require.NoError(t, err)
	assert.Contains(t, dsn, "app:s3cret@tcp(db.internal:3307)/warehouse")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	boot, err := m.BootstrapDSN(cfg)
	require.NoError(t, err)
	assert.Contains(t, boot, "@tcp(db.internal:3307)/?")

	_, err = m.DSN(&config.Config{})
	assert.Error(t, err)
}
