package objects

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

// PostgresRepository implements object storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db     dbx.DBTX
	schema dbx.Schema
}

func NewPostgresRepository(db dbx.DBTX, schema dbx.Schema) *PostgresRepository {
	return &PostgresRepository{db: db, schema: schema}
}

func scanObject(s dbx.Scanner) (*models.Object, error) {
	var (
		id   models.ObjectID
		hash string
	)
	if err := s.Scan(&id, &hash); err != nil {
		return nil, err
	}
	o := models.NewObject(hash)
	if err := o.SetID(id); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, obj *models.Object) error {
	query := r.schema.Q(`INSERT INTO SCHEMA_NAME.objects (hash) VALUES ($1) RETURNING id`)

	var id models.ObjectID
	if err := r.db.QueryRowContext(ctx, query, obj.Hash).Scan(&id); err != nil {
		return dbx.Wrap(err)
	}
	return obj.SetID(id)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id models.ObjectID) (*models.Object, error) {
	query := r.schema.Q(`SELECT id, hash FROM SCHEMA_NAME.objects WHERE id = $1`)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectOne(rows, scanObject)
}

func (r *PostgresRepository) FindByHash(ctx context.Context, hash string) ([]*models.Object, error) {
	query := r.schema.Q(`SELECT id, hash FROM SCHEMA_NAME.objects WHERE hash = $1 ORDER BY id`)

	rows, err := r.db.QueryContext(ctx, query, hash)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectRows(rows, scanObject)
}

func (r *PostgresRepository) DeleteMany(ctx context.Context, ids []models.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	query := r.schema.Q(`DELETE FROM SCHEMA_NAME.objects WHERE id = ANY($1::bigint[])`)

	if _, err := r.db.ExecContext(ctx, query, dbx.Int64s(ids)); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Release(ctx context.Context, ids []models.ObjectID) ([]models.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := r.schema.Q(`
		DELETE FROM SCHEMA_NAME.objects o
		WHERE o.id = ANY($1::bigint[])
		  AND NOT EXISTS (SELECT 1 FROM SCHEMA_NAME.files f WHERE f.object = o.id)
		RETURNING o.id`)

	rows, err := r.db.QueryContext(ctx, query, dbx.Int64s(ids))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectRows(rows, func(s dbx.Scanner) (models.ObjectID, error) {
		var id models.ObjectID
		err := s.Scan(&id)
		return id, err
	})
}
