package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrStorageUnavailable = errors.New("storage unavailable")
var ErrPersistence = errors.New("persistence error")

// PersistenceError is returned when a statement fails against an otherwise reachable store.
// Its message is the message of the underlying store error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func persistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

var schemas = map[string]string{
	DriverSQLite: `CREATE TABLE IF NOT EXISTS bins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		fill_level INTEGER NOT NULL
	)`,
	DriverPostgres: `CREATE TABLE IF NOT EXISTS bins (
		id BIGSERIAL PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		fill_level INTEGER NOT NULL
	)`,
}

// replaceStatements clear the table ahead of a new generation. On postgres the table lock
// makes concurrent replaces queue behind each other; a DELETE that only waited on row locks
// would miss the rows inserted by the transaction it waited for.
var replaceStatements = map[string][]string{
	DriverPostgres: {
		"LOCK TABLE bins IN SHARE ROW EXCLUSIVE MODE",
		"DELETE FROM bins",
	},
}

func clearStatements(dialect string) []string {
	if stmts, ok := replaceStatements[dialect]; ok {
		return stmts
	}
	return []string{"DELETE FROM bins"}
}

// EnsureSchema creates the bins table unless it already exists. Calling it more than once has no effect.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	ddl, ok := schemas[db.Dialector.Name()]
	if !ok {
		return persistenceError("schema", db.WithContext(ctx).AutoMigrate(&Bin{}))
	}

	return persistenceError("schema", db.WithContext(ctx).Exec(ddl).Error)
}
