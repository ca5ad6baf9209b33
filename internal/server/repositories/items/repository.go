// Package items stores the file and directory tree of every repository.
//
// Reads go through the item_full_view, which computes absolute paths and the
// directory aggregates. Writes touch the items table and its files or
// directories sub-row.
package items

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id models.ItemID, trash models.Trash) (*models.Item, error)
	GetByPath(ctx context.Context, repo models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error)

	Children(ctx context.Context, parent models.ItemID, trash models.Trash) ([]*models.Item, error)
	ByRepository(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error)
	ByOwner(ctx context.Context, owner models.UserID, trash models.Trash) ([]*models.Item, error)
	ByObject(ctx context.Context, obj models.ObjectID) ([]*models.Item, error)
	Roots(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error)
	// TrashRoots returns trashed items whose parent is absent or not trashed.
	TrashRoots(ctx context.Context, repo models.RepositoryID) ([]*models.Item, error)

	Search(ctx context.Context, q models.ItemSearch) ([]*models.Item, error)

	// CreateOrUpdate inserts items without an id and fully replaces the
	// mutable columns of the others. It returns the objects released when a
	// file update replaced its content.
	CreateOrUpdate(ctx context.Context, item *models.Item) ([]models.ObjectID, error)
	// SetTrash flags or unflags the whole subtree rooted at id.
	SetTrash(ctx context.Context, id models.ItemID, inTrash bool) error
	// Delete removes the subtree rooted at item and returns the objects no
	// longer referenced by any remaining file. Deleting a missing item is a
	// no-op.
	Delete(ctx context.Context, item *models.Item) ([]models.ObjectID, error)
}
