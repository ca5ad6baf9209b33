// Package repos persists repository aggregates: the repository row, its
// cascade delete and its content statistics.
package repos

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Repository interface {
	// Create inserts a repository that has no id yet.
	Create(ctx context.Context, repo *models.Repository) error
	// Upsert inserts repositories without an id and replaces the others.
	Upsert(ctx context.Context, repo *models.Repository) error

	FindByID(ctx context.Context, id models.RepositoryID) (*models.Repository, error)
	FindByOwner(ctx context.Context, owner models.UserID) ([]*models.Repository, error)
	// FindSharedWith lists the repositories user holds a subscription on.
	FindSharedWith(ctx context.Context, user models.UserID) ([]*models.Repository, error)
	// FindByURLName matches case-insensitively.
	FindByURLName(ctx context.Context, name encx.EncString) (*models.Repository, error)
	ListPublic(ctx context.Context) ([]*models.Repository, error)

	// Delete removes every item, then every subscription, then the
	// repository row. It returns the objects released by the item deletes.
	Delete(ctx context.Context, repo *models.Repository) ([]models.ObjectID, error)

	Stats(ctx context.Context, id models.RepositoryID) (*models.RepositoryStats, error)
}
