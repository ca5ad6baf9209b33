package grpc

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/services"
)

// fakeRepositories records the caller of each call and returns canned values.
type fakeRepositories struct {
	lastCaller models.UserID
	lastID     models.RepositoryID

	getOut  *models.Repository
	getErr  error
	listOut []*models.Repository
	stats   *models.RepositoryStats
	subs    []*models.Subscription
	deleted []models.RepositoryID
}

var _ RepositoryAPI = (*fakeRepositories)(nil)

func (f *fakeRepositories) caller(ctx context.Context) {
	f.lastCaller, _ = auth.UserIDFromContext(ctx)
}

func (f *fakeRepositories) Create(ctx context.Context, repo *models.Repository) (*models.Repository, error) {
	f.caller(ctx)
	return repo, nil
}

func (f *fakeRepositories) Get(ctx context.Context, id models.RepositoryID) (*models.Repository, error) {
	f.caller(ctx)
	f.lastID = id
	return f.getOut, f.getErr
}

func (f *fakeRepositories) GetByURLName(ctx context.Context, _ encx.EncString) (*models.Repository, error) {
	f.caller(ctx)
	return f.getOut, f.getErr
}

func (f *fakeRepositories) ListOwned(ctx context.Context) ([]*models.Repository, error) {
	f.caller(ctx)
	return f.listOut, nil
}

func (f *fakeRepositories) ListShared(ctx context.Context) ([]*models.Repository, error) {
	f.caller(ctx)
	return f.listOut, nil
}

func (f *fakeRepositories) ListPublic(ctx context.Context) ([]*models.Repository, error) {
	f.caller(ctx)
	return f.listOut, nil
}

func (f *fakeRepositories) Update(ctx context.Context, repo *models.Repository) (*models.Repository, error) {
	f.caller(ctx)
	return repo, nil
}

func (f *fakeRepositories) Delete(ctx context.Context, id models.RepositoryID) error {
	f.caller(ctx)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepositories) Stats(ctx context.Context, id models.RepositoryID) (*models.RepositoryStats, error) {
	f.caller(ctx)
	f.lastID = id
	return f.stats, nil
}

func (f *fakeRepositories) Subscribe(ctx context.Context, sub *models.Subscription) error {
	f.caller(ctx)
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeRepositories) Unsubscribe(ctx context.Context, _ models.UserID, id models.RepositoryID) error {
	f.caller(ctx)
	f.lastID = id
	return nil
}

func (f *fakeRepositories) Subscriptions(ctx context.Context, id models.RepositoryID) ([]*models.Subscription, error) {
	f.caller(ctx)
	f.lastID = id
	return nil, nil
}

type fakeItems struct {
	lastTrash  models.Trash
	lastParent *models.ItemID
	lastHash   string
	lastPath   string
	lastPatch  services.ItemPatch
	lastSearch models.ItemSearch
	lastDir    services.NewDirectory
	lastFile   services.NewFile
	children   []*models.Item
	err        error
	url        string
	matches    bool
}

var _ ItemAPI = (*fakeItems)(nil)

func (f *fakeItems) Get(_ context.Context, _ models.ItemID, trash models.Trash) (*models.Item, error) {
	f.lastTrash = trash
	return nil, f.err
}

func (f *fakeItems) GetByPath(_ context.Context, _ models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error) {
	f.lastTrash = trash
	f.lastPath = path.String()
	return nil, f.err
}

func (f *fakeItems) Children(_ context.Context, _ models.ItemID, trash models.Trash) ([]*models.Item, error) {
	f.lastTrash = trash
	return f.children, f.err
}

func (f *fakeItems) Roots(_ context.Context, _ models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	f.lastTrash = trash
	return f.children, f.err
}

func (f *fakeItems) TrashRoots(context.Context, models.RepositoryID) ([]*models.Item, error) {
	return f.children, f.err
}

func (f *fakeItems) Search(_ context.Context, q models.ItemSearch) ([]*models.Item, error) {
	f.lastSearch = q
	return f.children, f.err
}

func (f *fakeItems) CreateDirectory(_ context.Context, in services.NewDirectory) (*models.Item, error) {
	f.lastDir = in
	return nil, f.err
}

func (f *fakeItems) RegisterFile(_ context.Context, in services.NewFile) (*models.Item, error) {
	f.lastFile = in
	return nil, f.err
}

func (f *fakeItems) Update(_ context.Context, patch services.ItemPatch) (*models.Item, error) {
	f.lastPatch = patch
	return nil, f.err
}

func (f *fakeItems) Trash(context.Context, models.ItemID) error   { return f.err }
func (f *fakeItems) Restore(context.Context, models.ItemID) error { return f.err }
func (f *fakeItems) Delete(context.Context, models.ItemID) error  { return f.err }

func (f *fakeItems) DownloadURL(context.Context, models.ItemID) (string, error) {
	return f.url, f.err
}

func (f *fakeItems) UploadURL(_ context.Context, _ models.RepositoryID, parent *models.ItemID, hash string) (string, error) {
	f.lastParent = parent
	f.lastHash = hash
	return f.url, f.err
}

func (f *fakeItems) VerifyFile(_ context.Context, _ models.ItemID, path string) (bool, error) {
	f.lastPath = path
	return f.matches, f.err
}

type fakeUsers struct {
	lastCaller models.UserID
	lastID     models.UserID
	out        *models.User
	err        error
}

var _ UserAPI = (*fakeUsers)(nil)

func (f *fakeUsers) Get(ctx context.Context, id models.UserID) (*models.User, error) {
	f.lastCaller, _ = auth.UserIDFromContext(ctx)
	f.lastID = id
	return f.out, f.err
}

func (f *fakeUsers) Current(ctx context.Context) (*models.User, error) {
	var ok bool
	f.lastCaller, ok = auth.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrPermissionDenied
	}
	return f.out, f.err
}
