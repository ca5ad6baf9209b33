package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanID(s Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}

func queryIDs(t *testing.T, rows *sqlmock.Rows) *sql.Rows {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id").WillReturnRows(rows)
	r, err := db.QueryContext(context.Background(), "SELECT id FROM t")
	require.NoError(t, err)
	return r
}

func TestCollectOne(t *testing.T) {
	t.Run("exactly one", func(t *testing.T) {
		r := queryIDs(t, sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
		id, err := CollectOne(r, scanID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("none", func(t *testing.T) {
		r := queryIDs(t, sqlmock.NewRows([]string{"id"}))
		_, err := CollectOne(r, scanID)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("many", func(t *testing.T) {
		r := queryIDs(t, sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)))
		_, err := CollectOne(r, scanID)
		require.ErrorIs(t, err, common.ErrInconsistent)
	})

	t.Run("row error", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)).RowError(1, errors.New("broken"))
		r := queryIDs(t, rows)
		_, err := CollectOne(r, scanID)
		require.ErrorIs(t, err, common.ErrUpstream)
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))
	assert.ErrorIs(t, Wrap(sql.ErrNoRows), common.ErrNotFound)

	err := Wrap(errors.New("conn refused"))
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Equal(t, "db error: conn refused", err.Error())
}
