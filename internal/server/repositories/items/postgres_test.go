package items

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx/dbxtest"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock := dbxtest.New(t)
	return NewPostgresRepository(db, "vault"), mock, db
}

var itemColumns = []string{
	"id", "repository", "owner", "name", "description", "parent_item",
	"absolute_path", "in_trash", "is_regular_file",
	"size", "mimetype", "timestamp", "object",
	"open_upload", "num_items", "content_size",
}

func fileRow(id, parent int64, path string, inTrash bool) []driver.Value {
	return []driver.Value{
		id, int64(10), int64(5), "a.txt", nil, parent,
		path, inTrash, true,
		int64(100), "text%2Fplain", int64(1700000000000), int64(9),
		nil, nil, nil,
	}
}

func dirRow(id int64, path string, inTrash bool) []driver.Value {
	return []driver.Value{
		id, int64(10), int64(5), "docs", "my%20docs", nil,
		path, inTrash, false,
		nil, nil, nil, nil,
		true, int64(3), int64(42),
	}
}

func TestGet_File(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM "vault"\.item_full_view v WHERE v\.id = \$1 AND NOT v\.in_trash$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(1, 2, "/docs/a.txt", false)...))

	got, err := repo.Get(context.Background(), 1, models.TrashExclude)
	require.NoError(t, err)

	assert.Equal(t, models.ItemID(1), got.ID())
	assert.Equal(t, "/docs/a.txt", got.AbsolutePath.Plain())
	require.NotNil(t, got.ParentItem)
	assert.Equal(t, models.ItemID(2), *got.ParentItem)
	assert.Nil(t, got.Description)

	f, ok := got.File()
	require.True(t, ok)
	assert.Equal(t, int64(100), f.Size)
	assert.Equal(t, "text/plain", f.Mimetype.Plain())
	assert.Equal(t, models.ObjectID(9), f.Object)
}

func TestGet_Directory(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE v\.id = \$1 AND v\.in_trash$`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(dirRow(2, "/docs", true)...))

	got, err := repo.Get(context.Background(), 2, models.TrashOnly)
	require.NoError(t, err)

	assert.True(t, got.IsRoot())
	require.NotNil(t, got.Description)
	assert.Equal(t, "my docs", got.Description.Plain())

	d, ok := got.Directory()
	require.True(t, ok)
	assert.Equal(t, models.DirectoryData{OpenUpload: true, NumItems: 3, ContentSize: 42}, *d)
}

func TestGet_NotFoundAndInconsistent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE v\.id = \$1$`).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(itemColumns))
	_, err := repo.Get(context.Background(), 3, models.TrashEither)
	assert.ErrorIs(t, err, common.ErrNotFound)

	mock.ExpectQuery(`WHERE v\.id = \$1$`).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(fileRow(3, 2, "/a", false)...).
			AddRow(fileRow(3, 2, "/a", false)...))
	_, err = repo.Get(context.Background(), 3, models.TrashEither)
	assert.ErrorIs(t, err, common.ErrInconsistent)
}

func TestGetByPath(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE v\.repository = \$1 AND v\.absolute_path = \$2 AND NOT v\.in_trash`).
		WithArgs(int64(10), "/my%20docs/a.txt").
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(1, 2, "/my%20docs/a.txt", false)...))

	got, err := repo.GetByPath(context.Background(), 10, encx.NewEncPath("my docs", "a.txt"), models.TrashExclude)
	require.NoError(t, err)
	assert.Equal(t, models.ItemID(1), got.ID())

	_, err = repo.GetByPath(context.Background(), 10, nil, models.TrashExclude)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestListings(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery(`WHERE v\.parent_item = \$1 AND NOT v\.in_trash ORDER BY v\.name`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(1, 2, "/docs/a.txt", false)...))
	children, err := repo.Children(ctx, 2, models.TrashExclude)
	require.NoError(t, err)
	assert.Len(t, children, 1)

	mock.ExpectQuery(`WHERE v\.repository = \$1 AND v\.parent_item IS NULL ORDER BY v\.name`).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(dirRow(2, "/docs", false)...))
	roots, err := repo.Roots(ctx, 10, models.TrashEither)
	require.NoError(t, err)
	assert.Len(t, roots, 1)

	mock.ExpectQuery(`WHERE v\.repository = \$1 AND v\.in_trash ORDER BY v\.absolute_path`).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns))
	byRepo, err := repo.ByRepository(ctx, 10, models.TrashOnly)
	require.NoError(t, err)
	assert.Empty(t, byRepo)

	mock.ExpectQuery(`WHERE v\.owner = \$1 AND NOT v\.in_trash ORDER BY v\.repository, v\.absolute_path`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(itemColumns))
	_, err = repo.ByOwner(ctx, 5, models.TrashExclude)
	require.NoError(t, err)

	mock.ExpectQuery(`WHERE v\.object = \$1 ORDER BY v\.id`).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(1, 2, "/docs/a.txt", false)...))
	byObj, err := repo.ByObject(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, byObj, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTrashRoots(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `WHERE v\.repository = \$1 AND v\.in_trash AND \(v\.parent_item IS NULL OR v\.parent_item IN \( SELECT p\.id FROM "vault"\.items p WHERE p\.repository = \$1 AND NOT p\.in_trash \)\)`
	mock.ExpectQuery(q).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(dirRow(2, "/docs", true)...))

	got, err := repo.TrashRoots(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ItemID(2), got[0].ID())
}

func TestSearch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.Search(context.Background(), models.ItemSearch{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	mock.ExpectQuery(`WHERE v\.is_regular_file AND \(\(v\.repository = \$1\)\) AND NOT v\.in_trash ORDER BY`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(1, 2, "/docs/a.txt", false)...))

	got, err := repo.Search(context.Background(), models.ItemSearch{Scopes: []models.SearchScope{{Repository: 10}}})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearch_NameMatchesDecodedText(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// "my%20report.pdf" has no "20" once decoded; the database compares the
	// folded plain name, so only the plain query text is bound.
	mock.ExpectQuery(`strpos\(v\.name_folded, lower\(\$2\)\) > 0`).
		WithArgs(int64(10), "20").
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(fileRow(3, 2, "/docs/report-2020.pdf", false)...))

	name := encx.Encode("20")
	got, err := repo.Search(context.Background(), models.ItemSearch{
		Scopes: []models.SearchScope{{Repository: 10}},
		Name:   &name,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ItemID(3), got[0].ID())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_InsertDirectory(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "vault"\.items .* RETURNING id`).
		WithArgs(int64(10), int64(5), "docs", nil, false, nil, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "vault".directories (id, open_upload) VALUES ($1, $2)`)).
		WithArgs(int64(11), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.Item{
		Repository: 10,
		Owner:      5,
		Name:       encx.Encode("docs"),
		Data:       &models.DirectoryData{OpenUpload: true},
	}
	released, err := repo.CreateOrUpdate(context.Background(), item)
	require.NoError(t, err)
	assert.Empty(t, released)
	assert.Equal(t, models.ItemID(11), item.ID())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_DuplicateSiblingName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "vault"\.items`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "items_repository_path_idx"})

	_, err := repo.CreateOrUpdate(context.Background(), &models.Item{
		Repository: 10, Owner: 5, Name: encx.Encode("docs"), Data: &models.DirectoryData{},
	})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"docs"`)

	mock.ExpectExec(`UPDATE "vault"\.items`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "items_repository_path_idx"})

	_, err = repo.CreateOrUpdate(context.Background(), persistedFile(t, 9))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_OtherErrorsAreUpstream(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "vault"\.items`).WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.CreateOrUpdate(context.Background(), &models.Item{
		Repository: 10, Owner: 5, Name: encx.Encode("docs"), Data: &models.DirectoryData{},
	})
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.NotErrorIs(t, err, common.ErrInvalidArgument)
}

func TestCreateOrUpdate_InsertFile(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	parent := models.ItemID(11)
	mock.ExpectQuery(`INSERT INTO "vault"\.items`).
		WithArgs(int64(10), int64(5), "a.txt", nil, true, int64(11), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`INSERT INTO "vault"\.files \(id, size, mimetype, timestamp, object\)`).
		WithArgs(int64(12), int64(100), "text%2Fplain", int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.Item{
		Repository: 10,
		Owner:      5,
		Name:       encx.Encode("a.txt"),
		ParentItem: &parent,
		Data:       &models.FileData{Size: 100, Mimetype: encx.Encode("text/plain"), Timestamp: 1, Object: 9},
	}
	_, err := repo.CreateOrUpdate(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, models.ItemID(12), item.ID())
}

func TestCreateOrUpdate_Rejects(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()
	ctx := context.Background()

	_, err := repo.CreateOrUpdate(ctx, &models.Item{Repository: 1, Owner: 1, Name: encx.Encode("x")})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = repo.CreateOrUpdate(ctx, &models.Item{
		Repository: 1, Owner: 1, Name: encx.Encode("x"),
		Data: &models.FileData{Size: 1},
	})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func persistedFile(t *testing.T, object models.ObjectID) *models.Item {
	t.Helper()
	item := &models.Item{
		Repository: 10,
		Owner:      5,
		Name:       encx.Encode("b.txt"),
		Data:       &models.FileData{Size: 5, Mimetype: encx.Encode("text/plain"), Timestamp: 2, Object: object},
	}
	require.NoError(t, item.SetID(12))
	return item
}

func TestCreateOrUpdate_UpdateFileReleasesOldObject(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "vault"\.items SET owner = \$2, name = \$3, description = \$4, parent_item = \$5, in_trash = \$6 WHERE id = \$1 AND repository = \$7 AND is_regular_file = \$8`).
		WithArgs(int64(12), int64(5), "b.txt", nil, nil, false, int64(10), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE "vault"\.files f .* RETURNING old\.object`).
		WithArgs(int64(12), int64(5), "text%2Fplain", int64(2), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"object"}).AddRow(int64(9)))
	mock.ExpectQuery(`DELETE FROM "vault"\.objects o`).
		WithArgs([]int64{9}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	released, err := repo.CreateOrUpdate(context.Background(), persistedFile(t, 20))
	require.NoError(t, err)
	assert.Equal(t, []models.ObjectID{9}, released)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_UpdateFileSameObject(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "vault"\.items`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE "vault"\.files f`).
		WillReturnRows(sqlmock.NewRows([]string{"object"}).AddRow(int64(9)))

	released, err := repo.CreateOrUpdate(context.Background(), persistedFile(t, 9))
	require.NoError(t, err)
	assert.Empty(t, released)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_UpdateMissing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "vault"\.items`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateOrUpdate(context.Background(), persistedFile(t, 9))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateOrUpdate_UpdateDirectory(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	item := &models.Item{Repository: 10, Owner: 5, Name: encx.Encode("d"), Data: &models.DirectoryData{}}
	require.NoError(t, item.SetID(2))

	mock.ExpectExec(`UPDATE "vault"\.items`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "vault".directories SET open_upload = $2 WHERE id = $1`)).
		WithArgs(int64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.CreateOrUpdate(context.Background(), item)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTrash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `WITH RECURSIVE subtree AS .* UPDATE "vault"\.items SET in_trash = \$2 WHERE id IN \(SELECT id FROM subtree\)`

	mock.ExpectExec(q).WithArgs(int64(2), true).WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, repo.SetTrash(context.Background(), 2, true))

	mock.ExpectExec(q).WithArgs(int64(99), false).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetTrash(context.Background(), 99, false), common.ErrNotFound)

	mock.ExpectExec(q).WithArgs(int64(2), true).WillReturnError(errors.New("conn reset"))
	err := repo.SetTrash(context.Background(), 2, true)
	assert.ErrorIs(t, err, common.ErrUpstream)
}

func TestDelete_ReleasesUnreferencedObjects(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WITH RECURSIVE subtree AS .* removed AS \( DELETE FROM "vault"\.items WHERE id IN \(SELECT id FROM subtree\) RETURNING id \) SELECT DISTINCT f\.object FROM "vault"\.files f`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"object"}).AddRow(int64(3)).AddRow(int64(4)))
	mock.ExpectQuery(`DELETE FROM "vault"\.objects o`).
		WithArgs([]int64{3, 4}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	item := &models.Item{Repository: 10, Name: encx.Encode("d"), Data: &models.DirectoryData{}}
	require.NoError(t, item.SetID(2))

	released, err := repo.Delete(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, []models.ObjectID{4}, released)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingItemIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WITH RECURSIVE subtree`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"object"}))

	item := &models.Item{}
	require.NoError(t, item.SetID(2))

	released, err := repo.Delete(context.Background(), item)
	require.NoError(t, err)
	assert.Empty(t, released)

	_, err = repo.Delete(context.Background(), &models.Item{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
