package repos

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/items"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/subscriptions"
)

type PostgresRepository struct {
	db            dbx.DBTX
	schema        dbx.Schema
	items         items.Repository
	subscriptions subscriptions.Repository
}

func NewPostgresRepository(db dbx.DBTX, schema dbx.Schema) *PostgresRepository {
	return &PostgresRepository{
		db:            db,
		schema:        schema,
		items:         items.NewPostgresRepository(db, schema),
		subscriptions: subscriptions.NewPostgresRepository(db, schema),
	}
}

const selectRepos = `SELECT r.id, r.url_name, r.owner, r.description, r.status, r.display_name,
	r.max_file_size, r.visitor_file_lifetime, r.allow_visitor_upload
	FROM SCHEMA_NAME.repositories r`

func scanRepo(s dbx.Scanner) (*models.Repository, error) {
	var (
		id     models.RepositoryID
		status string
		repo   models.Repository
	)
	err := s.Scan(&id, &repo.URLName, &repo.Owner, &repo.Description, &status, &repo.DisplayName,
		&repo.MaxFileSize, &repo.VisitorFileLifetime, &repo.AllowVisitorUpload)
	if err != nil {
		return nil, err
	}
	repo.Status = models.ParseRepositoryStatus(status)
	if err := repo.SetID(id); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Repository, error) {
	rows, err := r.db.QueryContext(ctx, r.schema.Q(query), args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectOne(rows, scanRepo)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Repository, error) {
	rows, err := r.db.QueryContext(ctx, r.schema.Q(query), args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return dbx.CollectRows(rows, scanRepo)
}

func (r *PostgresRepository) Create(ctx context.Context, repo *models.Repository) error {
	if repo.ID().IsValid() {
		return models.ErrIDAlreadySet
	}
	return r.Upsert(ctx, repo)
}

func (r *PostgresRepository) Upsert(ctx context.Context, repo *models.Repository) error {
	if err := repo.Validate(); err != nil {
		return err
	}
	repo.Status = repo.Status.Normalize()

	var err error
	if repo.ID().IsValid() {
		err = r.update(ctx, repo)
	} else {
		err = r.insert(ctx, repo)
	}
	if dbx.IsUniqueViolation(err) {
		return fmt.Errorf("%w: url_name %q already taken", common.ErrInvalidArgument, repo.URLName.Plain())
	}
	return err
}

func (r *PostgresRepository) insert(ctx context.Context, repo *models.Repository) error {
	query := r.schema.Q(`INSERT INTO SCHEMA_NAME.repositories
		(url_name, owner, description, status, display_name, max_file_size, visitor_file_lifetime, allow_visitor_upload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`)

	var id models.RepositoryID
	err := r.db.QueryRowContext(ctx, query,
		repo.URLName, repo.Owner, repo.Description, string(repo.Status), repo.DisplayName,
		repo.MaxFileSize, repo.VisitorFileLifetime, repo.AllowVisitorUpload,
	).Scan(&id)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return err
		}
		return dbx.Wrap(err)
	}
	return repo.SetID(id)
}

func (r *PostgresRepository) update(ctx context.Context, repo *models.Repository) error {
	query := r.schema.Q(`UPDATE SCHEMA_NAME.repositories
		SET url_name = $2, owner = $3, description = $4, status = $5, display_name = $6,
			max_file_size = $7, visitor_file_lifetime = $8, allow_visitor_upload = $9
		WHERE id = $1`)

	res, err := r.db.ExecContext(ctx, query,
		repo.ID(), repo.URLName, repo.Owner, repo.Description, string(repo.Status), repo.DisplayName,
		repo.MaxFileSize, repo.VisitorFileLifetime, repo.AllowVisitorUpload,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return err
		}
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id models.RepositoryID) (*models.Repository, error) {
	return r.one(ctx, selectRepos+` WHERE r.id = $1`, id)
}

func (r *PostgresRepository) FindByOwner(ctx context.Context, owner models.UserID) ([]*models.Repository, error) {
	return r.list(ctx, selectRepos+` WHERE r.owner = $1 ORDER BY r.url_name`, owner)
}

func (r *PostgresRepository) FindSharedWith(ctx context.Context, user models.UserID) ([]*models.Repository, error) {
	return r.list(ctx, selectRepos+` WHERE r.id IN (
		SELECT s.repository FROM SCHEMA_NAME.subscriptions s WHERE s.owner = $1
	) ORDER BY r.url_name`, user)
}

func (r *PostgresRepository) FindByURLName(ctx context.Context, name encx.EncString) (*models.Repository, error) {
	return r.one(ctx, selectRepos+` WHERE lower(r.url_name) = lower($1)`, name)
}

func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.Repository, error) {
	return r.list(ctx, selectRepos+` WHERE r.status = 'public' ORDER BY r.url_name`)
}

func (r *PostgresRepository) Delete(ctx context.Context, repo *models.Repository) ([]models.ObjectID, error) {
	if !repo.ID().IsValid() {
		return nil, fmt.Errorf("%w: repository has no id", common.ErrInvalidArgument)
	}

	roots, err := r.items.Roots(ctx, repo.ID(), models.TrashEither)
	if err != nil {
		return nil, err
	}
	var released []models.ObjectID
	for _, root := range roots {
		ids, err := r.items.Delete(ctx, root)
		if err != nil {
			return released, err
		}
		released = append(released, ids...)
	}

	if err := r.subscriptions.DeleteByRepository(ctx, repo.ID()); err != nil {
		return released, err
	}

	query := r.schema.Q(`DELETE FROM SCHEMA_NAME.repositories WHERE id = $1`)
	res, err := r.db.ExecContext(ctx, query, repo.ID())
	if err != nil {
		return released, dbx.Wrap(err)
	}
	return released, dbx.ExpectOne(res)
}
