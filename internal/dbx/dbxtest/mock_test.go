package dbxtest

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userID int64

func TestNew_AcceptsInt64Slices(t *testing.T) {
	db, mock := New(t)

	mock.ExpectExec(`DELETE FROM objects WHERE id = ANY\(\$1::bigint\[\]\) AND owner = \$2`).
		WithArgs([]int64{1, 2}, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	_, err := db.ExecContext(context.Background(),
		`DELETE FROM objects WHERE id = ANY($1::bigint[]) AND owner = $2`, []int64{1, 2}, userID(7))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNew_RejectsOtherSlices(t *testing.T) {
	db, _ := New(t)

	_, err := db.ExecContext(context.Background(), `SELECT $1`, []string{"a"})
	assert.Error(t, err)
}
