package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type PostgresRepository struct {
	db     dbx.DBTX
	schema dbx.Schema
}

func NewPostgresRepository(db dbx.DBTX, schema dbx.Schema) *PostgresRepository {
	return &PostgresRepository{db: db, schema: schema}
}

func scanUser(s dbx.Scanner) (*models.User, error) {
	var id models.UserID
	u := &models.User{}
	if err := s.Scan(&id, &u.Login, &u.Email, &u.DisplayName); err != nil {
		return nil, err
	}
	if err := u.SetID(id); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := r.schema.Q(
		`INSERT INTO SCHEMA_NAME.users (login, email, display_name)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `)

	var id models.UserID
	err := r.db.QueryRowContext(ctx, query, user.Login, user.Email, user.DisplayName).Scan(&id)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: login already taken", common.ErrInvalidArgument)
		}
		return dbx.Wrap(err)
	}

	return user.SetID(id)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id models.UserID) (*models.User, error) {
	query := r.schema.Q(
		`SELECT id, login, email, display_name FROM SCHEMA_NAME.users
		 WHERE id = $1
		 `)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) FindByLogin(ctx context.Context, login encx.EncString) (*models.User, error) {
	query := r.schema.Q(
		`SELECT id, login, email, display_name FROM SCHEMA_NAME.users
		 WHERE lower(login) = lower($1)
		 `)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, login))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return u, nil
}
