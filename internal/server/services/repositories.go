package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/permissions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repomanager"
)

// RepositoryService manages repositories and their sharing grants.
type RepositoryService struct {
	base
}

func NewRepositoryService(db *sql.DB, rm repomanager.RepositoryManager, opts ...Option) *RepositoryService {
	return &RepositoryService{base: newBase(db, rm, opts)}
}

// load fetches a repository and checks the view capability.
func (s *RepositoryService) load(ctx context.Context, id models.RepositoryID) (*models.Repository, *permissions.Gate, error) {
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

// Create stores a new repository owned by the caller. A missing url_name is
// derived from the display name.
func (s *RepositoryService) Create(ctx context.Context, repo *models.Repository) (_ *models.Repository, err error) {
	defer s.observe("repository_create", time.Now(), &err)

	caller, err := authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if repo.ID().IsValid() {
		return nil, fmt.Errorf("%w: new repository already has id %s", common.ErrInvalidArgument, repo.ID())
	}
	repo.Owner = caller
	repo.Status = repo.Status.Normalize()
	if repo.URLName.IsEmpty() {
		repo.URLName = repo.DisplayName.URLFormatted()
	}
	if repo.DisplayName.IsEmpty() {
		repo.DisplayName = repo.URLName
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Repositories(tx).Create(ctx, repo)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "repository created", "repository", repo.ID(), "owner", caller, "url_name", repo.URLName)
	return repo, nil
}

func (s *RepositoryService) Get(ctx context.Context, id models.RepositoryID) (*models.Repository, error) {
	repo, _, err := s.load(ctx, id)
	return repo, err
}

func (s *RepositoryService) GetByURLName(ctx context.Context, name encx.EncString) (*models.Repository, error) {
	repo, err := s.repomanager.Repositories(s.db).FindByURLName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", name, err)
	}
	if err := permissions.Require(s.gate(ctx, s.db).ViewRepository(ctx, repo)); err != nil {
		return nil, err
	}
	return repo, nil
}

// ListOwned lists the caller's own repositories.
func (s *RepositoryService) ListOwned(ctx context.Context) ([]*models.Repository, error) {
	caller, err := authenticated(ctx)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Repositories(s.db).FindByOwner(ctx, caller)
}

// ListShared lists the repositories the caller holds a subscription on.
func (s *RepositoryService) ListShared(ctx context.Context) ([]*models.Repository, error) {
	caller, err := authenticated(ctx)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Repositories(s.db).FindSharedWith(ctx, caller)
}

func (s *RepositoryService) ListPublic(ctx context.Context) ([]*models.Repository, error) {
	return s.repomanager.Repositories(s.db).ListPublic(ctx)
}

// Update replaces the editable settings of a repository. The owner is
// never changed.
func (s *RepositoryService) Update(ctx context.Context, repo *models.Repository) (_ *models.Repository, err error) {
	defer s.observe("repository_update", time.Now(), &err)

	current, gate, err := s.load(ctx, repo.ID())
	if err != nil {
		return nil, err
	}
	if err := permissions.Require(gate.EditRepository(ctx, current)); err != nil {
		return nil, err
	}

	repo.Owner = current.Owner
	repo.Status = repo.Status.Normalize()
	if repo.DisplayName.IsEmpty() {
		repo.DisplayName = current.DisplayName
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Repositories(tx).Upsert(ctx, repo)
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Delete removes a repository with all of its items and subscriptions. Only
// the owner may do this.
func (s *RepositoryService) Delete(ctx context.Context, id models.RepositoryID) (err error) {
	defer s.observe("repository_delete", time.Now(), &err)

	repo, gate, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if gate.IsAnonymous() || repo.Owner != gate.Caller() {
		return common.ErrPermissionDenied
	}

	var released []models.ObjectID
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		released, err = s.repomanager.Repositories(tx).Delete(ctx, repo)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "repository delete failed", "repository", id, "error", err)
		return err
	}

	s.released(ctx, "repository_delete", released)
	s.logger.Info(ctx, "repository deleted", "repository", id, "released_objects", len(released))
	return nil
}

func (s *RepositoryService) Stats(ctx context.Context, id models.RepositoryID) (*models.RepositoryStats, error) {
	if _, _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	return s.repomanager.Repositories(s.db).Stats(ctx, id)
}

// Subscribe grants or changes a user's access. Owners and moderators may do
// this.
func (s *RepositoryService) Subscribe(ctx context.Context, sub *models.Subscription) (err error) {
	defer s.observe("subscription_upsert", time.Now(), &err)

	repo, gate, err := s.load(ctx, sub.Repository)
	if err != nil {
		return err
	}
	if err := permissions.Require(gate.EditRepository(ctx, repo)); err != nil {
		return err
	}
	if !sub.Owner.IsValid() {
		return fmt.Errorf("%w: subscription has no user", common.ErrInvalidArgument)
	}
	if sub.Owner == repo.Owner {
		return fmt.Errorf("%w: the repository owner needs no subscription", common.ErrInvalidArgument)
	}
	sub.AccessType = sub.AccessType.Normalize()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Subscriptions(tx).Upsert(ctx, sub)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "subscription granted",
		"repository", sub.Repository, "user", sub.Owner, "access_type", sub.AccessType, "by", gate.Caller())
	return nil
}

// Unsubscribe revokes a grant. Users may always drop their own.
func (s *RepositoryService) Unsubscribe(ctx context.Context, user models.UserID, id models.RepositoryID) (err error) {
	defer s.observe("subscription_delete", time.Now(), &err)

	repo, gate, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if gate.IsAnonymous() || gate.Caller() != user {
		if err := permissions.Require(gate.EditRepository(ctx, repo)); err != nil {
			return err
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Subscriptions(tx).Delete(ctx, user, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "subscription revoked", "repository", id, "user", user, "by", gate.Caller())
	return nil
}

// Subscriptions lists the grants on a repository. Editors only.
func (s *RepositoryService) Subscriptions(ctx context.Context, id models.RepositoryID) ([]*models.Subscription, error) {
	repo, gate, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := permissions.Require(gate.EditRepository(ctx, repo)); err != nil {
		return nil, err
	}
	return s.repomanager.Subscriptions(s.db).ListByRepository(ctx, id)
}
