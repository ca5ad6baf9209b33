package subscriptions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type PostgresRepository struct {
	db     dbx.DBTX
	schema dbx.Schema
}

func NewPostgresRepository(db dbx.DBTX, schema dbx.Schema) *PostgresRepository {
	return &PostgresRepository{db: db, schema: schema}
}

func scanSubscription(s dbx.Scanner) (*models.Subscription, error) {
	var (
		sub    models.Subscription
		access string
	)
	if err := s.Scan(&sub.Owner, &sub.Repository, &access); err != nil {
		return nil, err
	}
	sub.AccessType = models.ParseAccessType(access)
	return &sub, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, r.schema.Q(query), args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectRows(rows, scanSubscription)
}

func (r *PostgresRepository) Find(ctx context.Context, user models.UserID, repo models.RepositoryID) (*models.Subscription, error) {
	query := r.schema.Q(`SELECT owner, repository, access_type FROM SCHEMA_NAME.subscriptions
		WHERE owner = $1 AND repository = $2`)

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, user, repo))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return sub, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, user models.UserID) ([]*models.Subscription, error) {
	return r.list(ctx, `SELECT owner, repository, access_type FROM SCHEMA_NAME.subscriptions
		WHERE owner = $1 ORDER BY repository`, user)
}

func (r *PostgresRepository) ListByRepository(ctx context.Context, repo models.RepositoryID) ([]*models.Subscription, error) {
	return r.list(ctx, `SELECT owner, repository, access_type FROM SCHEMA_NAME.subscriptions
		WHERE repository = $1 ORDER BY owner`, repo)
}

func (r *PostgresRepository) Upsert(ctx context.Context, sub *models.Subscription) error {
	query := r.schema.Q(`INSERT INTO SCHEMA_NAME.subscriptions (owner, repository, access_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, repository) DO UPDATE SET access_type = EXCLUDED.access_type`)

	sub.AccessType = sub.AccessType.Normalize()
	if _, err := r.db.ExecContext(ctx, query, sub.Owner, sub.Repository, string(sub.AccessType)); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s or repository %s", common.ErrNotFound, sub.Owner, sub.Repository)
		}
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, user models.UserID, repo models.RepositoryID) error {
	query := r.schema.Q(`DELETE FROM SCHEMA_NAME.subscriptions WHERE owner = $1 AND repository = $2`)

	res, err := r.db.ExecContext(ctx, query, user, repo)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) DeleteByRepository(ctx context.Context, repo models.RepositoryID) error {
	query := r.schema.Q(`DELETE FROM SCHEMA_NAME.subscriptions WHERE repository = $1`)

	if _, err := r.db.ExecContext(ctx, query, repo); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}
