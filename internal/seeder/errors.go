package seeder

import "fmt"

// ConnectionError reports a failure to reach the database, including which
// stage of the run was connecting (bootstrap or seeding).
type ConnectionError struct {
	Dialect string
	Stage   string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("dialect %s: %s connection failed: %v", e.Dialect, e.Stage, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DDLError reports a failed schema statement with enough context to rerun
// it by hand.
type DDLError struct {
	Dialect string
	Table   string
	Stmt    string
	Err     error
}

func (e *DDLError) Error() string {
	return fmt.Sprintf("dialect %s: table %s: ddl failed: %v\n%s", e.Dialect, e.Table, e.Err, e.Stmt)
}

func (e *DDLError) Unwrap() error { return e.Err }

// BatchInsertError reports a failed batch. StartIndex is the first row of
// the failed batch and Committed counts the rows already durable, so a rerun
// can resume rather than start over.
type BatchInsertError struct {
	Dialect    string
	Table      string
	StartIndex int
	Committed  int
	Err        error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("dialect %s: table %s: batch starting at row %d failed after %d committed rows: %v",
		e.Dialect, e.Table, e.StartIndex, e.Committed, e.Err)
}

func (e *BatchInsertError) Unwrap() error { return e.Err }
