package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsCarryContextAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	conn := &ConnectionError{Dialect: "mysql", Stage: "bootstrap", Err: cause}
	assert.ErrorIs(t, conn, cause)
	assert.Contains(t, conn.Error(), "mysql")
	assert.Contains(t, conn.Error(), "bootstrap")

	ddl := &DDLError{Dialect: "oracle", Table: "invoices", Stmt: "CREATE TABLE invoices (...)", Err: cause}
	assert.ErrorIs(t, ddl, cause)
	assert.Contains(t, ddl.Error(), "invoices")
	assert.Contains(t, ddl.Error(), "CREATE TABLE")

	batch := &BatchInsertError{Dialect: "postgres", Table: "employees", StartIndex: 400, Committed: 400, Err: cause}
	assert.ErrorIs(t, batch, cause)
	assert.Contains(t, batch.Error(), "row 400")
	assert.Contains(t, batch.Error(), "400 committed")
}
