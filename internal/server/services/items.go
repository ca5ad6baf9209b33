package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/hashx"
	"github.com/dmitrijs2005/repovault/internal/server/blobs"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/permissions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repomanager"
)

// NewDirectory describes a directory to create.
type NewDirectory struct {
	Repository  models.RepositoryID `json:"repository"`
	Parent      *models.ItemID      `json:"parent_item,omitempty"`
	Name        encx.EncString      `json:"name"`
	Description *encx.EncString     `json:"description,omitempty"`
	OpenUpload  bool                `json:"open_upload"`
}

// NewFile describes an uploaded file. Hash addresses the body the client
// stored through an upload URL.
type NewFile struct {
	Repository  models.RepositoryID `json:"repository"`
	Parent      *models.ItemID      `json:"parent_item,omitempty"`
	Name        encx.EncString      `json:"name"`
	Description *encx.EncString     `json:"description,omitempty"`
	Size        int64               `json:"size"`
	Mimetype    encx.EncString      `json:"mimetype"`
	Timestamp   int64               `json:"timestamp"`
	Hash        string              `json:"hash"`
}

// ItemPatch lists the item fields to change; nil fields are kept.
// MoveToRoot detaches the item from its parent and wins over Parent.
type ItemPatch struct {
	ID               models.ItemID   `json:"id"`
	Name             *encx.EncString `json:"name,omitempty"`
	Description      *encx.EncString `json:"description,omitempty"`
	ClearDescription bool            `json:"clear_description,omitempty"`
	Parent           *models.ItemID  `json:"parent_item,omitempty"`
	MoveToRoot       bool            `json:"move_to_root,omitempty"`
	Mimetype         *encx.EncString `json:"mimetype,omitempty"`
	Timestamp        *int64          `json:"timestamp,omitempty"`
	OpenUpload       *bool           `json:"open_upload,omitempty"`
}

// ItemService runs the item tree use cases.
type ItemService struct {
	base
	blobs     blobs.Locator
	algorithm hashx.Algorithm
}

func NewItemService(db *sql.DB, rm repomanager.RepositoryManager, locator blobs.Locator, alg hashx.Algorithm, opts ...Option) *ItemService {
	return &ItemService{base: newBase(db, rm, opts), blobs: locator, algorithm: alg}
}

// item loads an item and checks the view capability.
func (s *ItemService) item(ctx context.Context, id models.ItemID, trash models.Trash) (*models.Item, *permissions.Gate, error) {
	item, err := s.repomanager.Items(s.db).Get(ctx, id, trash)
	if err != nil {
		return nil, nil, fmt.Errorf("item %s: %w", id, err)
	}
	gate := s.gate(ctx, s.db)
	if err := permissions.Require(gate.ViewItem(ctx, item)); err != nil {
		return nil, nil, err
	}
	return item, gate, nil
}

func (s *ItemService) repository(ctx context.Context, id models.RepositoryID) (*models.Repository, *permissions.Gate, error) {
	repo, err := s.repomanager.Repositories(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("repository %s: %w", id, err)
	}
	gate := s.gate(ctx, s.db)
	if err := permissions.Require(gate.ViewRepository(ctx, repo)); err != nil {
		return nil, nil, err
	}
	return repo, gate, nil
}

func (s *ItemService) Get(ctx context.Context, id models.ItemID, trash models.Trash) (*models.Item, error) {
	item, _, err := s.item(ctx, id, trash)
	return item, err
}

func (s *ItemService) GetByPath(ctx context.Context, repo models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error) {
	if _, _, err := s.repository(ctx, repo); err != nil {
		return nil, err
	}
	return s.repomanager.Items(s.db).GetByPath(ctx, repo, path, trash)
}

func (s *ItemService) Children(ctx context.Context, parent models.ItemID, trash models.Trash) ([]*models.Item, error) {
	if _, _, err := s.item(ctx, parent, models.TrashEither); err != nil {
		return nil, err
	}
	return s.repomanager.Items(s.db).Children(ctx, parent, trash)
}

func (s *ItemService) Roots(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	if _, _, err := s.repository(ctx, repo); err != nil {
		return nil, err
	}
	return s.repomanager.Items(s.db).Roots(ctx, repo, trash)
}

func (s *ItemService) TrashRoots(ctx context.Context, repo models.RepositoryID) ([]*models.Item, error) {
	if _, _, err := s.repository(ctx, repo); err != nil {
		return nil, err
	}
	return s.repomanager.Items(s.db).TrashRoots(ctx, repo)
}

// Search requires view access to every scoped repository.
func (s *ItemService) Search(ctx context.Context, q models.ItemSearch) ([]*models.Item, error) {
	if len(q.Scopes) == 0 {
		return nil, fmt.Errorf("%w: search needs at least one repository scope", common.ErrInvalidArgument)
	}
	for _, scope := range q.Scopes {
		if _, _, err := s.repository(ctx, scope.Repository); err != nil {
			return nil, err
		}
	}
	return s.repomanager.Items(s.db).Search(ctx, q)
}

// requireUpload checks that the caller may add an item under parent in
// repo. Viewers may upload into directories marked open_upload.
func (s *ItemService) requireUpload(ctx context.Context, tx dbx.DBTX, repo models.RepositoryID, parent *models.ItemID) (*models.Repository, models.UserID, error) {
	caller, err := authenticated(ctx)
	if err != nil {
		return nil, 0, err
	}

	r, err := s.repomanager.Repositories(tx).FindByID(ctx, repo)
	if err != nil {
		return nil, 0, fmt.Errorf("repository %s: %w", repo, err)
	}

	var dir *models.DirectoryData
	if parent != nil {
		p, err := s.repomanager.Items(tx).Get(ctx, *parent, models.TrashExclude)
		if err != nil {
			return nil, 0, fmt.Errorf("parent item %s: %w", *parent, err)
		}
		if p.Repository != repo {
			return nil, 0, fmt.Errorf("%w: parent item %s belongs to another repository", common.ErrInvalidArgument, *parent)
		}
		d, ok := p.Directory()
		if !ok {
			return nil, 0, fmt.Errorf("%w: parent item %s is not a directory", common.ErrInvalidArgument, *parent)
		}
		dir = d
	}

	gate := s.gate(ctx, tx)
	d, err := gate.UploadToRepository(ctx, r)
	if err != nil {
		return nil, 0, err
	}
	if d == permissions.Denied && dir != nil && dir.OpenUpload {
		d, err = gate.ViewRepository(ctx, r)
	}
	if err := permissions.Require(d, err); err != nil {
		return nil, 0, err
	}
	return r, caller, nil
}

func (s *ItemService) CreateDirectory(ctx context.Context, in NewDirectory) (_ *models.Item, err error) {
	defer s.observe("directory_create", time.Now(), &err)

	item := &models.Item{
		Repository:  in.Repository,
		Name:        in.Name,
		Description: in.Description,
		ParentItem:  in.Parent,
		Data:        &models.DirectoryData{OpenUpload: in.OpenUpload},
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, caller, err := s.requireUpload(ctx, tx, in.Repository, in.Parent)
		if err != nil {
			return err
		}
		item.Owner = caller
		_, err = s.repomanager.Items(tx).CreateOrUpdate(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func normalizeHash(h string) (string, error) {
	h = strings.ToLower(strings.TrimSpace(h))
	if h == "" {
		return "", fmt.Errorf("%w: empty object hash", common.ErrInvalidArgument)
	}
	if _, err := hex.DecodeString(h); err != nil {
		return "", fmt.Errorf("%w: object hash is not hex", common.ErrInvalidArgument)
	}
	return h, nil
}

// RegisterFile records a file whose body has been stored under its hash.
// An existing object with the same hash is reused.
func (s *ItemService) RegisterFile(ctx context.Context, in NewFile) (_ *models.Item, err error) {
	defer s.observe("file_register", time.Now(), &err)

	hash, err := normalizeHash(in.Hash)
	if err != nil {
		return nil, err
	}
	if in.Size < 0 {
		return nil, fmt.Errorf("%w: negative file size", common.ErrInvalidArgument)
	}

	file := &models.FileData{Size: in.Size, Mimetype: in.Mimetype, Timestamp: in.Timestamp}
	item := &models.Item{
		Repository:  in.Repository,
		Name:        in.Name,
		Description: in.Description,
		ParentItem:  in.Parent,
		Data:        file,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo, caller, err := s.requireUpload(ctx, tx, in.Repository, in.Parent)
		if err != nil {
			return err
		}
		if repo.MaxFileSize != nil && *repo.MaxFileSize > 0 && in.Size > *repo.MaxFileSize {
			return fmt.Errorf("%w: file exceeds the repository limit of %d bytes", common.ErrInvalidArgument, *repo.MaxFileSize)
		}

		obj, err := s.object(ctx, s.repomanager.Objects(tx), hash)
		if err != nil {
			return err
		}
		file.Object = obj.ID()
		item.Owner = caller

		_, err = s.repomanager.Items(tx).CreateOrUpdate(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// object returns the first object stored under hash, inserting one when
// none exists.
func (s *ItemService) object(ctx context.Context, repo objects.Repository, hash string) (*models.Object, error) {
	found, err := repo.FindByHash(ctx, hash)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if len(found) > 0 {
		return found[0], nil
	}
	obj := models.NewObject(hash)
	if err := repo.Insert(ctx, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Update applies patch to an item. Moves stay inside the repository and
// never place an item below itself.
func (s *ItemService) Update(ctx context.Context, patch ItemPatch) (_ *models.Item, err error) {
	defer s.observe("item_update", time.Now(), &err)

	var item *models.Item
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		itemsRepo := s.repomanager.Items(tx)

		var err error
		item, err = itemsRepo.Get(ctx, patch.ID, models.TrashEither)
		if err != nil {
			return fmt.Errorf("item %s: %w", patch.ID, err)
		}
		if err := permissions.Require(s.gate(ctx, tx).EditItem(ctx, item)); err != nil {
			return err
		}

		if patch.Name != nil {
			item.Name = *patch.Name
		}
		switch {
		case patch.ClearDescription:
			item.Description = nil
		case patch.Description != nil:
			item.Description = patch.Description
		}
		if patch.Mimetype != nil || patch.Timestamp != nil {
			f, ok := item.File()
			if !ok {
				return fmt.Errorf("%w: item %s is not a file", common.ErrInvalidArgument, item.ID())
			}
			if patch.Mimetype != nil {
				f.Mimetype = *patch.Mimetype
			}
			if patch.Timestamp != nil {
				f.Timestamp = *patch.Timestamp
			}
		}
		if patch.OpenUpload != nil {
			d, ok := item.Directory()
			if !ok {
				return fmt.Errorf("%w: item %s is not a directory", common.ErrInvalidArgument, item.ID())
			}
			d.OpenUpload = *patch.OpenUpload
		}

		switch {
		case patch.MoveToRoot:
			item.ParentItem = nil
		case patch.Parent != nil:
			if err := s.checkMove(ctx, tx, item, *patch.Parent); err != nil {
				return err
			}
			parent := *patch.Parent
			item.ParentItem = &parent
		}

		if err := item.Validate(); err != nil {
			return err
		}
		released, err := itemsRepo.CreateOrUpdate(ctx, item)
		if err != nil {
			return err
		}
		s.released(ctx, "item_update", released)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// checkMove rejects targets outside the repository, trashed targets,
// non-directories and targets inside the moved subtree.
func (s *ItemService) checkMove(ctx context.Context, tx dbx.DBTX, item *models.Item, target models.ItemID) error {
	itemsRepo := s.repomanager.Items(tx)

	parent, err := itemsRepo.Get(ctx, target, models.TrashEither)
	if err != nil {
		return fmt.Errorf("target %s: %w", target, err)
	}
	if parent.Repository != item.Repository {
		return fmt.Errorf("%w: items cannot move between repositories", common.ErrInvalidArgument)
	}
	if _, ok := parent.Directory(); !ok {
		return fmt.Errorf("%w: target %s is not a directory", common.ErrInvalidArgument, target)
	}
	if parent.InTrash {
		return fmt.Errorf("%w: target %s is in the trash", common.ErrInvalidArgument, target)
	}

	for cur := parent; ; {
		if cur.ID() == item.ID() {
			return fmt.Errorf("%w: cannot move an item below itself", common.ErrInvalidArgument)
		}
		if cur.ParentItem == nil {
			return nil
		}
		cur, err = itemsRepo.Get(ctx, *cur.ParentItem, models.TrashEither)
		if err != nil {
			return fmt.Errorf("ancestor of %s: %w", target, err)
		}
	}
}

// Trash moves an active item and its subtree to the trash.
func (s *ItemService) Trash(ctx context.Context, id models.ItemID) (err error) {
	defer s.observe("item_trash", time.Now(), &err)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		item, err := s.repomanager.Items(tx).Get(ctx, id, models.TrashExclude)
		if err != nil {
			return fmt.Errorf("item %s: %w", id, err)
		}
		if err := permissions.Require(s.gate(ctx, tx).EditItem(ctx, item)); err != nil {
			return err
		}
		return s.repomanager.Items(tx).SetTrash(ctx, id, true)
	})
}

// Restore brings a trash root and its subtree back. Items trashed along with
// an ancestor are restored through that ancestor.
func (s *ItemService) Restore(ctx context.Context, id models.ItemID) (err error) {
	defer s.observe("item_restore", time.Now(), &err)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		itemsRepo := s.repomanager.Items(tx)

		item, err := itemsRepo.Get(ctx, id, models.TrashOnly)
		if err != nil {
			return fmt.Errorf("trashed item %s: %w", id, err)
		}
		if item.ParentItem != nil {
			parent, err := itemsRepo.Get(ctx, *item.ParentItem, models.TrashEither)
			if err != nil {
				return fmt.Errorf("parent of %s: %w", id, err)
			}
			if parent.InTrash {
				return fmt.Errorf("%w: item %s was trashed with its parent %s", common.ErrInvalidArgument, id, parent.ID())
			}
		}
		if err := permissions.Require(s.gate(ctx, tx).EditItem(ctx, item)); err != nil {
			return err
		}
		return itemsRepo.SetTrash(ctx, id, false)
	})
}

// Delete removes an item and its subtree for good, releasing the objects
// nothing else references.
func (s *ItemService) Delete(ctx context.Context, id models.ItemID) (err error) {
	defer s.observe("item_delete", time.Now(), &err)

	var released []models.ObjectID
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		item, err := s.repomanager.Items(tx).Get(ctx, id, models.TrashEither)
		if err != nil {
			return fmt.Errorf("item %s: %w", id, err)
		}
		if err := permissions.Require(s.gate(ctx, tx).EditItem(ctx, item)); err != nil {
			return err
		}
		released, err = s.repomanager.Items(tx).Delete(ctx, item)
		return err
	})
	if err != nil {
		return err
	}

	s.released(ctx, "item_delete", released)
	s.logger.Info(ctx, "item deleted", "item", id, "released_objects", len(released))
	return nil
}

// DownloadURL returns a presigned URL for a file body.
func (s *ItemService) DownloadURL(ctx context.Context, id models.ItemID) (string, error) {
	item, _, err := s.item(ctx, id, models.TrashEither)
	if err != nil {
		return "", err
	}
	f, ok := item.File()
	if !ok {
		return "", fmt.Errorf("%w: item %s is not a file", common.ErrInvalidArgument, id)
	}
	obj, err := s.repomanager.Objects(s.db).FindByID(ctx, f.Object)
	if err != nil {
		return "", fmt.Errorf("object %s: %w", f.Object, err)
	}
	return s.blobs.DownloadURL(ctx, obj.Hash)
}

// UploadURL returns a presigned URL the caller stores a body under before
// RegisterFile.
func (s *ItemService) UploadURL(ctx context.Context, repo models.RepositoryID, parent *models.ItemID, hash string) (string, error) {
	hash, err := normalizeHash(hash)
	if err != nil {
		return "", err
	}
	if _, _, err := s.requireUpload(ctx, s.db, repo, parent); err != nil {
		return "", err
	}
	return s.blobs.UploadURL(ctx, hash)
}

// VerifyFile reports whether the file at name, relative to the configured
// verify root, holds the content of item. Without a verify root the call is
// refused.
func (s *ItemService) VerifyFile(ctx context.Context, id models.ItemID, name string) (bool, error) {
	if s.verifyRoot == "" {
		return false, fmt.Errorf("%w: file verification is disabled", common.ErrPermissionDenied)
	}
	if !filepath.IsLocal(name) {
		return false, fmt.Errorf("%w: %q is not a path inside the verify root", common.ErrInvalidArgument, name)
	}

	item, _, err := s.item(ctx, id, models.TrashEither)
	if err != nil {
		return false, err
	}
	f, ok := item.File()
	if !ok {
		return false, fmt.Errorf("%w: item %s is not a file", common.ErrInvalidArgument, id)
	}
	obj, err := s.repomanager.Objects(s.db).FindByID(ctx, f.Object)
	if err != nil {
		return false, fmt.Errorf("object %s: %w", f.Object, err)
	}

	root, err := os.OpenRoot(s.verifyRoot)
	if err != nil {
		return false, fmt.Errorf("open verify root: %w", err)
	}
	defer root.Close()

	matches, err := objects.VerifyAgainstFile(obj, s.algorithm, root, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %s", common.ErrNotFound, name)
	}
	return matches, err
}
