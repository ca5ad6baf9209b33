// Package subscriptions persists the per-user access grants on repositories.
package subscriptions

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Repository interface {
	Find(ctx context.Context, user models.UserID, repo models.RepositoryID) (*models.Subscription, error)
	ListByUser(ctx context.Context, user models.UserID) ([]*models.Subscription, error)
	ListByRepository(ctx context.Context, repo models.RepositoryID) ([]*models.Subscription, error)
	// Upsert inserts the grant or replaces the access type of an existing one.
	Upsert(ctx context.Context, sub *models.Subscription) error
	Delete(ctx context.Context, user models.UserID, repo models.RepositoryID) error
	DeleteByRepository(ctx context.Context, repo models.RepositoryID) error
}
