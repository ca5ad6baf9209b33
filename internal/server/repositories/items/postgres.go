package items

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/objects"
)

type PostgresRepository struct {
	db      dbx.DBTX
	schema  dbx.Schema
	objects objects.Repository
}

func NewPostgresRepository(db dbx.DBTX, schema dbx.Schema) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		schema:  schema,
		objects: objects.NewPostgresRepository(db, schema),
	}
}

const selectItems = `SELECT v.id, v.repository, v.owner, v.name, v.description, v.parent_item,
	v.absolute_path, v.in_trash, v.is_regular_file,
	v.size, v.mimetype, v.timestamp, v.object,
	v.open_upload, v.num_items, v.content_size
	FROM SCHEMA_NAME.item_full_view v`

const subtreeCTE = `WITH RECURSIVE subtree AS (
		SELECT id FROM SCHEMA_NAME.items WHERE id = $1
		UNION ALL
		SELECT c.id FROM SCHEMA_NAME.items c JOIN subtree s ON c.parent_item = s.id
	)`

func trashFilter(t models.Trash) string {
	switch t {
	case models.TrashOnly:
		return " AND v.in_trash"
	case models.TrashEither:
		return ""
	default:
		return " AND NOT v.in_trash"
	}
}

func scanItem(s dbx.Scanner) (*models.Item, error) {
	var (
		id          models.ItemID
		item        models.Item
		isFile      bool
		size        sql.NullInt64
		mimetype    *encx.EncString
		timestamp   sql.NullInt64
		object      models.ObjectID
		openUpload  sql.NullBool
		numItems    sql.NullInt64
		contentSize sql.NullInt64
	)
	err := s.Scan(
		&id, &item.Repository, &item.Owner, &item.Name, &item.Description, &item.ParentItem,
		&item.AbsolutePath, &item.InTrash, &isFile,
		&size, &mimetype, &timestamp, &object,
		&openUpload, &numItems, &contentSize,
	)
	if err != nil {
		return nil, err
	}
	if err := item.SetID(id); err != nil {
		return nil, err
	}

	if isFile {
		f := &models.FileData{Size: size.Int64, Timestamp: timestamp.Int64, Object: object}
		if mimetype != nil {
			f.Mimetype = *mimetype
		}
		item.Data = f
	} else {
		item.Data = &models.DirectoryData{
			OpenUpload:  openUpload.Bool,
			NumItems:    numItems.Int64,
			ContentSize: contentSize.Int64,
		}
	}
	return &item, nil
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, r.schema.Q(query), args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectOne(rows, scanItem)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, r.schema.Q(query), args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectRows(rows, scanItem)
}

func (r *PostgresRepository) Get(ctx context.Context, id models.ItemID, trash models.Trash) (*models.Item, error) {
	return r.one(ctx, selectItems+` WHERE v.id = $1`+trashFilter(trash), id)
}

func (r *PostgresRepository) GetByPath(ctx context.Context, repo models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty item path", common.ErrInvalidArgument)
	}
	return r.one(ctx, selectItems+` WHERE v.repository = $1 AND v.absolute_path = $2`+trashFilter(trash), repo, path)
}

func (r *PostgresRepository) Children(ctx context.Context, parent models.ItemID, trash models.Trash) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.parent_item = $1`+trashFilter(trash)+` ORDER BY v.name`, parent)
}

func (r *PostgresRepository) ByRepository(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.repository = $1`+trashFilter(trash)+` ORDER BY v.absolute_path`, repo)
}

func (r *PostgresRepository) ByOwner(ctx context.Context, owner models.UserID, trash models.Trash) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.owner = $1`+trashFilter(trash)+` ORDER BY v.repository, v.absolute_path`, owner)
}

func (r *PostgresRepository) ByObject(ctx context.Context, obj models.ObjectID) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.object = $1 ORDER BY v.id`, obj)
}

func (r *PostgresRepository) Roots(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.repository = $1 AND v.parent_item IS NULL`+trashFilter(trash)+` ORDER BY v.name`, repo)
}

func (r *PostgresRepository) TrashRoots(ctx context.Context, repo models.RepositoryID) ([]*models.Item, error) {
	return r.list(ctx, selectItems+` WHERE v.repository = $1 AND v.in_trash
		AND (v.parent_item IS NULL OR v.parent_item IN (
			SELECT p.id FROM SCHEMA_NAME.items p WHERE p.repository = $1 AND NOT p.in_trash
		))
		ORDER BY v.absolute_path`, repo)
}

func (r *PostgresRepository) Search(ctx context.Context, q models.ItemSearch) ([]*models.Item, error) {
	where, args, err := buildSearch(q)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, selectItems+` WHERE `+where+` ORDER BY v.repository, v.absolute_path`, args...)
}

func (r *PostgresRepository) CreateOrUpdate(ctx context.Context, item *models.Item) ([]models.ObjectID, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if f, ok := item.File(); ok && !f.Object.IsValid() {
		return nil, fmt.Errorf("%w: file has no object", common.ErrInvalidArgument)
	}

	if !item.ID().IsValid() {
		return nil, r.insert(ctx, item)
	}
	return r.update(ctx, item)
}

// nameTaken maps a hit on the (repository, absolute_path) unique index: the
// parent already holds an item with this name.
func nameTaken(err error, item *models.Item) error {
	if dbx.IsUniqueViolation(err) {
		return fmt.Errorf("%w: an item named %q already exists in this directory", common.ErrInvalidArgument, item.Name.Plain())
	}
	return dbx.Wrap(err)
}

func (r *PostgresRepository) insert(ctx context.Context, item *models.Item) error {
	query := r.schema.Q(`INSERT INTO SCHEMA_NAME.items
		(repository, owner, name, description, is_regular_file, parent_item, in_trash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`)

	var id models.ItemID
	err := r.db.QueryRowContext(ctx, query,
		item.Repository, item.Owner, item.Name, item.Description,
		item.IsRegularFile(), item.ParentItem, item.InTrash,
	).Scan(&id)
	if err != nil {
		return nameTaken(err, item)
	}

	switch v := item.Data.(type) {
	case *models.FileData:
		query = r.schema.Q(`INSERT INTO SCHEMA_NAME.files (id, size, mimetype, timestamp, object)
			VALUES ($1, $2, $3, $4, $5)`)
		_, err = r.db.ExecContext(ctx, query, id, v.Size, v.Mimetype, v.Timestamp, v.Object)
	case *models.DirectoryData:
		query = r.schema.Q(`INSERT INTO SCHEMA_NAME.directories (id, open_upload) VALUES ($1, $2)`)
		_, err = r.db.ExecContext(ctx, query, id, v.OpenUpload)
	}
	if err != nil {
		return dbx.Wrap(err)
	}

	return item.SetID(id)
}

func (r *PostgresRepository) update(ctx context.Context, item *models.Item) ([]models.ObjectID, error) {
	query := r.schema.Q(`UPDATE SCHEMA_NAME.items
		SET owner = $2, name = $3, description = $4, parent_item = $5, in_trash = $6
		WHERE id = $1 AND repository = $7 AND is_regular_file = $8`)

	res, err := r.db.ExecContext(ctx, query,
		item.ID(), item.Owner, item.Name, item.Description, item.ParentItem, item.InTrash,
		item.Repository, item.IsRegularFile(),
	)
	if err != nil {
		return nil, nameTaken(err, item)
	}
	if err := dbx.ExpectOne(res); err != nil {
		return nil, err
	}

	switch v := item.Data.(type) {
	case *models.FileData:
		query = r.schema.Q(`UPDATE SCHEMA_NAME.files f
			SET size = $2, mimetype = $3, timestamp = $4, object = $5
			FROM SCHEMA_NAME.files old
			WHERE f.id = $1 AND old.id = f.id
			RETURNING old.object`)

		var previous models.ObjectID
		err := r.db.QueryRowContext(ctx, query, item.ID(), v.Size, v.Mimetype, v.Timestamp, v.Object).Scan(&previous)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		if previous == v.Object {
			return nil, nil
		}
		return r.objects.Release(ctx, []models.ObjectID{previous})
	case *models.DirectoryData:
		query = r.schema.Q(`UPDATE SCHEMA_NAME.directories SET open_upload = $2 WHERE id = $1`)
		res, err := r.db.ExecContext(ctx, query, item.ID(), v.OpenUpload)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		return nil, dbx.ExpectOne(res)
	}
	return nil, nil
}

func (r *PostgresRepository) SetTrash(ctx context.Context, id models.ItemID, inTrash bool) error {
	query := r.schema.Q(subtreeCTE + `
		UPDATE SCHEMA_NAME.items SET in_trash = $2 WHERE id IN (SELECT id FROM subtree)`)

	res, err := r.db.ExecContext(ctx, query, id, inTrash)
	if err != nil {
		return dbx.Wrap(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, item *models.Item) ([]models.ObjectID, error) {
	if !item.ID().IsValid() {
		return nil, fmt.Errorf("%w: item has no id", common.ErrInvalidArgument)
	}

	// Every sub-statement sees the same snapshot, so the files of the removed
	// items are still visible to the final SELECT.
	query := r.schema.Q(subtreeCTE + `,
	removed AS (
		DELETE FROM SCHEMA_NAME.items WHERE id IN (SELECT id FROM subtree) RETURNING id
	)
	SELECT DISTINCT f.object FROM SCHEMA_NAME.files f WHERE f.id IN (SELECT id FROM removed)`)

	rows, err := r.db.QueryContext(ctx, query, item.ID())
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	candidates, err := dbx.CollectRows(rows, func(s dbx.Scanner) (models.ObjectID, error) {
		var id models.ObjectID
		err := s.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, err
	}

	return r.objects.Release(ctx, candidates)
}
