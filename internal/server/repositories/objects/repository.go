// Package objects stores the content-addressable object records that file
// items point to.
package objects

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Repository interface {
	// Insert persists obj and assigns its id. It does not deduplicate:
	// callers look up FindByHash first.
	Insert(ctx context.Context, obj *models.Object) error
	FindByID(ctx context.Context, id models.ObjectID) (*models.Object, error)
	// FindByHash may return several objects for one hash.
	FindByHash(ctx context.Context, hash string) ([]*models.Object, error)
	// DeleteMany removes the given ids; absent ids are ignored.
	DeleteMany(ctx context.Context, ids []models.ObjectID) error
	// Release removes those of ids no file references any more and returns
	// the ids actually removed.
	Release(ctx context.Context, ids []models.ObjectID) ([]models.ObjectID, error)
}
