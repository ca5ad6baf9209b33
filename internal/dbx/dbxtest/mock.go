// Package dbxtest builds sqlmock databases that accept the same argument
// types as the pgx stdlib driver.
package dbxtest

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// pgxArgs passes int64 slices through untouched, as pgx binds them as
// arrays, and converts everything else the database/sql way.
type pgxArgs struct{}

func (pgxArgs) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]int64); ok {
		return ids, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

// New returns a mock database using the regexp query matcher. The database
// is closed when the test ends.
func New(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(pgxArgs{}),
	)
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
