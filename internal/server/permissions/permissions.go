// Package permissions evaluates what a caller may do with repositories and
// items. A Gate is built once per request for one caller.
package permissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/metrics"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Decision bool

const (
	Denied  Decision = false
	Granted Decision = true
)

func (d Decision) String() string {
	if d {
		return "granted"
	}
	return "denied"
}

// RepositoryFinder resolves the repository an item belongs to.
type RepositoryFinder interface {
	FindByID(ctx context.Context, id models.RepositoryID) (*models.Repository, error)
}

// SubscriptionFinder looks up the caller's grant on a repository.
type SubscriptionFinder interface {
	Find(ctx context.Context, user models.UserID, repo models.RepositoryID) (*models.Subscription, error)
}

type Gate struct {
	caller        models.UserID
	repositories  RepositoryFinder
	subscriptions SubscriptionFinder
	metrics       metrics.GateMetrics
}

// NewGate builds a gate for caller; a zero caller is anonymous. m may be nil.
func NewGate(caller models.UserID, repos RepositoryFinder, subs SubscriptionFinder, m metrics.GateMetrics) *Gate {
	if m == nil {
		m = metrics.NoopGateMetrics{}
	}
	return &Gate{caller: caller, repositories: repos, subscriptions: subs, metrics: m}
}

func (g *Gate) Caller() models.UserID { return g.caller }

func (g *Gate) IsAnonymous() bool { return !g.caller.IsValid() }

func (g *Gate) isOwner(repo *models.Repository) bool {
	return !g.IsAnonymous() && repo.Owner == g.caller
}

// subscription returns the caller's grant, or nil when there is none.
func (g *Gate) subscription(ctx context.Context, repo *models.Repository) (*models.Subscription, error) {
	if g.IsAnonymous() {
		return nil, nil
	}
	sub, err := g.subscriptions.Find(ctx, g.caller, repo.ID())
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("subscription lookup: %w", err)
	}
	return sub, nil
}

func (g *Gate) record(check string, d Decision, err error) (Decision, error) {
	if err != nil {
		return Denied, err
	}
	g.metrics.RecordDecision(check, bool(d))
	return d, nil
}

// ViewRepository grants public and hidden repositories to everyone, and
// private ones to the owner and to any subscriber.
func (g *Gate) ViewRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	d, err := g.viewRepository(ctx, repo)
	return g.record("view_repository", d, err)
}

func (g *Gate) viewRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	switch repo.Status.Normalize() {
	case models.StatusPublic, models.StatusHidden:
		return Granted, nil
	}
	if g.isOwner(repo) {
		return Granted, nil
	}
	sub, err := g.subscription(ctx, repo)
	if err != nil {
		return Denied, err
	}
	return Decision(sub != nil), nil
}

// EditRepository requires view access, then ownership or a moderator
// subscription.
func (g *Gate) EditRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	d, err := g.editRepository(ctx, repo)
	return g.record("edit_repository", d, err)
}

func (g *Gate) editRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	view, err := g.viewRepository(ctx, repo)
	if err != nil || !view {
		return Denied, err
	}
	if g.isOwner(repo) {
		return Granted, nil
	}
	sub, err := g.subscription(ctx, repo)
	if err != nil {
		return Denied, err
	}
	return Decision(sub != nil && sub.AccessType.Normalize().CanModerate()), nil
}

// UploadToRepository requires view access and a signed-in caller, then
// ownership, open visitor upload, or a contributor or moderator subscription.
func (g *Gate) UploadToRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	d, err := g.uploadToRepository(ctx, repo)
	return g.record("upload_to_repository", d, err)
}

func (g *Gate) uploadToRepository(ctx context.Context, repo *models.Repository) (Decision, error) {
	if g.IsAnonymous() {
		return Denied, nil
	}
	view, err := g.viewRepository(ctx, repo)
	if err != nil || !view {
		return Denied, err
	}
	if g.isOwner(repo) || repo.AllowVisitorUpload {
		return Granted, nil
	}
	sub, err := g.subscription(ctx, repo)
	if err != nil {
		return Denied, err
	}
	return Decision(sub != nil && sub.AccessType.Normalize().CanUpload()), nil
}

func (g *Gate) repositoryOf(ctx context.Context, item *models.Item) (*models.Repository, error) {
	repo, err := g.repositories.FindByID(ctx, item.Repository)
	if err != nil {
		return nil, fmt.Errorf("repository of item %s: %w", item.ID(), err)
	}
	return repo, nil
}

// ViewItem delegates to the item's repository.
func (g *Gate) ViewItem(ctx context.Context, item *models.Item) (Decision, error) {
	repo, err := g.repositoryOf(ctx, item)
	if err != nil {
		return Denied, err
	}
	d, err := g.viewRepository(ctx, repo)
	return g.record("view_item", d, err)
}

// EditItem grants repository editors and the item's own owner.
func (g *Gate) EditItem(ctx context.Context, item *models.Item) (Decision, error) {
	repo, err := g.repositoryOf(ctx, item)
	if err != nil {
		return Denied, err
	}
	d, err := g.editItem(ctx, repo, item)
	return g.record("edit_item", d, err)
}

func (g *Gate) editItem(ctx context.Context, repo *models.Repository, item *models.Item) (Decision, error) {
	edit, err := g.editRepository(ctx, repo)
	if err != nil || edit {
		return edit, err
	}
	return Decision(!g.IsAnonymous() && item.Owner == g.caller), nil
}

// Require turns a Denied decision into common.ErrPermissionDenied.
func Require(d Decision, err error) error {
	if err != nil {
		return err
	}
	if !d {
		return common.ErrPermissionDenied
	}
	return nil
}
