package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Wrap maps a driver error onto the common taxonomy: sql.ErrNoRows becomes
// common.ErrNotFound, anything else is reported as common.ErrUpstream.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	return fmt.Errorf("%w: %w", common.ErrUpstream, err)
}

// CollectRows scans every row with scan and closes rows.
func CollectRows[T any](rows *sql.Rows, scan func(Scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, Wrap(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(err)
	}
	return out, nil
}

// CollectOne expects exactly one row: zero rows yield common.ErrNotFound and
// more than one yield common.ErrInconsistent.
func CollectOne[T any](rows *sql.Rows, scan func(Scanner) (T, error)) (T, error) {
	var zero T
	all, err := CollectRows(rows, scan)
	if err != nil {
		return zero, err
	}
	switch len(all) {
	case 0:
		return zero, common.ErrNotFound
	case 1:
		return all[0], nil
	default:
		return zero, fmt.Errorf("%w: got %d rows", common.ErrInconsistent, len(all))
	}
}
