package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/items"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repos"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/subscriptions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/users"
)

// memStore backs every fake repository with plain maps.
type memStore struct {
	repos   map[models.RepositoryID]*models.Repository
	items   map[models.ItemID]*models.Item
	objects map[models.ObjectID]*models.Object
	subs    map[[2]int64]*models.Subscription
	users   map[models.UserID]*models.User
	nextID  int64

	failItemWrite error
}

func newMemStore() *memStore {
	m := &memStore{
		repos:   map[models.RepositoryID]*models.Repository{},
		items:   map[models.ItemID]*models.Item{},
		objects: map[models.ObjectID]*models.Object{},
		subs:    map[[2]int64]*models.Subscription{},
		users:   map[models.UserID]*models.User{},
		nextID:  100,
	}
	for id, login := range map[models.UserID]string{owner: "owner", visitor: "visitor", member: "member"} {
		u := &models.User{Login: encx.Encode(login), DisplayName: encx.Encode(login)}
		_ = u.SetID(id)
		m.users[id] = u
	}
	return m
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *memStore) Users(dbx.DBTX) users.Repository                 { return &fakeUsers{m} }
func (m *memStore) Repositories(dbx.DBTX) repos.Repository          { return &fakeRepos{m} }
func (m *memStore) Items(dbx.DBTX) items.Repository                 { return &fakeItems{m} }
func (m *memStore) Objects(dbx.DBTX) objects.Repository             { return &fakeObjects{m} }
func (m *memStore) Subscriptions(dbx.DBTX) subscriptions.Repository { return &fakeSubs{m} }

// addRepo stores a repository with a fixed id.
func (m *memStore) addRepo(t *testing.T, id int64, owner models.UserID, status models.RepositoryStatus) *models.Repository {
	t.Helper()
	r := &models.Repository{Owner: owner, Status: status, URLName: encx.Encode("r" + models.RepositoryID(id).String()), DisplayName: encx.Encode("repo")}
	if err := r.SetID(models.RepositoryID(id)); err != nil {
		t.Fatal(err)
	}
	m.repos[r.ID()] = r
	return r
}

func (m *memStore) addDir(t *testing.T, id int64, repo models.RepositoryID, owner models.UserID, parent *models.ItemID) *models.Item {
	t.Helper()
	return m.addItem(t, id, repo, owner, parent, &models.DirectoryData{})
}

func (m *memStore) addFile(t *testing.T, id int64, repo models.RepositoryID, owner models.UserID, parent *models.ItemID, obj models.ObjectID) *models.Item {
	t.Helper()
	return m.addItem(t, id, repo, owner, parent, &models.FileData{Size: 10, Mimetype: encx.Encode("text/plain"), Object: obj})
}

func (m *memStore) addItem(t *testing.T, id int64, repo models.RepositoryID, owner models.UserID, parent *models.ItemID, data models.Variant) *models.Item {
	t.Helper()
	it := &models.Item{Repository: repo, Owner: owner, Name: encx.Encode("n" + models.ItemID(id).String()), ParentItem: parent, Data: data}
	if err := it.SetID(models.ItemID(id)); err != nil {
		t.Fatal(err)
	}
	m.items[it.ID()] = it
	return it
}

func (m *memStore) addObject(t *testing.T, id int64, hash string) *models.Object {
	t.Helper()
	o := models.NewObject(hash)
	if err := o.SetID(models.ObjectID(id)); err != nil {
		t.Fatal(err)
	}
	m.objects[o.ID()] = o
	return o
}

func (m *memStore) subscribe(user models.UserID, repo models.RepositoryID, access models.AccessType) {
	m.subs[[2]int64{int64(user), int64(repo)}] = &models.Subscription{Owner: user, Repository: repo, AccessType: access}
}

// subtree returns id and all of its descendants.
func (m *memStore) subtree(id models.ItemID) []models.ItemID {
	out := []models.ItemID{id}
	for i := 0; i < len(out); i++ {
		for _, it := range m.items {
			if it.ParentItem != nil && *it.ParentItem == out[i] {
				out = append(out, it.ID())
			}
		}
	}
	return out
}

// copyItem hands out a detached copy like a real row read would.
func copyItem(it *models.Item) *models.Item {
	c := *it
	switch v := it.Data.(type) {
	case *models.FileData:
		f := *v
		c.Data = &f
	case *models.DirectoryData:
		d := *v
		c.Data = &d
	}
	return &c
}

func trashMatch(it *models.Item, trash models.Trash) bool {
	switch trash {
	case models.TrashOnly:
		return it.InTrash
	case models.TrashEither:
		return true
	default:
		return !it.InTrash
	}
}

type fakeRepos struct{ m *memStore }

func (f *fakeRepos) Create(_ context.Context, r *models.Repository) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.SetID(models.RepositoryID(f.m.id())); err != nil {
		return err
	}
	f.m.repos[r.ID()] = r
	return nil
}

func (f *fakeRepos) Upsert(ctx context.Context, r *models.Repository) error {
	if !r.ID().IsValid() {
		return f.Create(ctx, r)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	f.m.repos[r.ID()] = r
	return nil
}

func (f *fakeRepos) FindByID(_ context.Context, id models.RepositoryID) (*models.Repository, error) {
	r, ok := f.m.repos[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *r
	return &c, nil
}

func (f *fakeRepos) FindByOwner(_ context.Context, owner models.UserID) ([]*models.Repository, error) {
	var out []*models.Repository
	for _, r := range f.m.repos {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	sortRepos(out)
	return out, nil
}

func (f *fakeRepos) FindSharedWith(_ context.Context, user models.UserID) ([]*models.Repository, error) {
	var out []*models.Repository
	for k := range f.m.subs {
		if k[0] == int64(user) {
			out = append(out, f.m.repos[models.RepositoryID(k[1])])
		}
	}
	sortRepos(out)
	return out, nil
}

func (f *fakeRepos) FindByURLName(_ context.Context, name encx.EncString) (*models.Repository, error) {
	for _, r := range f.m.repos {
		if strings.EqualFold(r.URLName.Encoded(), name.Encoded()) {
			return r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepos) ListPublic(context.Context) ([]*models.Repository, error) {
	var out []*models.Repository
	for _, r := range f.m.repos {
		if r.Status == models.StatusPublic {
			out = append(out, r)
		}
	}
	sortRepos(out)
	return out, nil
}

func (f *fakeRepos) Delete(ctx context.Context, r *models.Repository) ([]models.ObjectID, error) {
	var released []models.ObjectID
	fi := &fakeItems{f.m}
	for _, it := range f.m.items {
		if it.Repository == r.ID() && it.ParentItem == nil {
			ids, err := fi.Delete(ctx, it)
			if err != nil {
				return nil, err
			}
			released = append(released, ids...)
		}
	}
	for k := range f.m.subs {
		if k[1] == int64(r.ID()) {
			delete(f.m.subs, k)
		}
	}
	delete(f.m.repos, r.ID())
	return released, nil
}

func (f *fakeRepos) Stats(_ context.Context, id models.RepositoryID) (*models.RepositoryStats, error) {
	st := &models.RepositoryStats{Contributors: []models.ContributorStats{}, Extensions: []models.ExtensionStats{}}
	for _, it := range f.m.items {
		if it.Repository != id {
			continue
		}
		if file, ok := it.File(); ok {
			if it.InTrash {
				st.TrashItems++
				st.TrashSize += file.Size
			} else {
				st.Items++
				st.Size += file.Size
			}
		} else if it.InTrash {
			st.TrashDirectories++
		} else {
			st.Directories++
		}
	}
	return st, nil
}

func sortRepos(rs []*models.Repository) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID() < rs[j].ID() })
}

type fakeItems struct{ m *memStore }

func (f *fakeItems) Get(_ context.Context, id models.ItemID, trash models.Trash) (*models.Item, error) {
	it, ok := f.m.items[id]
	if !ok || !trashMatch(it, trash) {
		return nil, common.ErrNotFound
	}
	return copyItem(it), nil
}

func (f *fakeItems) GetByPath(_ context.Context, repo models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error) {
	for _, it := range f.m.items {
		if it.Repository == repo && it.AbsolutePath.Equal(path) && trashMatch(it, trash) {
			return copyItem(it), nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeItems) filter(keep func(*models.Item) bool) []*models.Item {
	var out []*models.Item
	for _, it := range f.m.items {
		if keep(it) {
			out = append(out, copyItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (f *fakeItems) Children(_ context.Context, parent models.ItemID, trash models.Trash) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool {
		return it.ParentItem != nil && *it.ParentItem == parent && trashMatch(it, trash)
	}), nil
}

func (f *fakeItems) ByRepository(_ context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool { return it.Repository == repo && trashMatch(it, trash) }), nil
}

func (f *fakeItems) ByOwner(_ context.Context, owner models.UserID, trash models.Trash) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool { return it.Owner == owner && trashMatch(it, trash) }), nil
}

func (f *fakeItems) ByObject(_ context.Context, obj models.ObjectID) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool {
		file, ok := it.File()
		return ok && file.Object == obj
	}), nil
}

func (f *fakeItems) Roots(_ context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool {
		return it.Repository == repo && it.ParentItem == nil && trashMatch(it, trash)
	}), nil
}

func (f *fakeItems) TrashRoots(_ context.Context, repo models.RepositoryID) ([]*models.Item, error) {
	return f.filter(func(it *models.Item) bool {
		if it.Repository != repo || !it.InTrash {
			return false
		}
		return it.ParentItem == nil || !f.m.items[*it.ParentItem].InTrash
	}), nil
}

func (f *fakeItems) Search(_ context.Context, q models.ItemSearch) ([]*models.Item, error) {
	scoped := map[models.RepositoryID]bool{}
	for _, s := range q.Scopes {
		scoped[s.Repository] = true
	}
	return f.filter(func(it *models.Item) bool {
		_, ok := it.File()
		return ok && scoped[it.Repository] && trashMatch(it, q.Trash)
	}), nil
}

func (f *fakeItems) CreateOrUpdate(_ context.Context, item *models.Item) ([]models.ObjectID, error) {
	if f.m.failItemWrite != nil {
		return nil, f.m.failItemWrite
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	// mirrors the unique (repository, absolute_path) index
	for _, other := range f.m.items {
		if other.ID() != item.ID() && other.Repository == item.Repository &&
			sameParent(other.ParentItem, item.ParentItem) && other.Name == item.Name {
			return nil, fmt.Errorf("%w: an item named %q already exists in this directory", common.ErrInvalidArgument, item.Name.Plain())
		}
	}
	if !item.ID().IsValid() {
		if err := item.SetID(models.ItemID(f.m.id())); err != nil {
			return nil, err
		}
	}
	f.m.items[item.ID()] = copyItem(item)
	return nil, nil
}

func (f *fakeItems) SetTrash(_ context.Context, id models.ItemID, inTrash bool) error {
	if _, ok := f.m.items[id]; !ok {
		return common.ErrNotFound
	}
	for _, d := range f.m.subtree(id) {
		f.m.items[d].InTrash = inTrash
	}
	return nil
}

func (f *fakeItems) Delete(_ context.Context, item *models.Item) ([]models.ObjectID, error) {
	candidates := map[models.ObjectID]bool{}
	for _, d := range f.m.subtree(item.ID()) {
		if file, ok := f.m.items[d].File(); ok {
			candidates[file.Object] = true
		}
		delete(f.m.items, d)
	}
	for _, it := range f.m.items {
		if file, ok := it.File(); ok {
			delete(candidates, file.Object)
		}
	}
	var released []models.ObjectID
	for id := range candidates {
		delete(f.m.objects, id)
		released = append(released, id)
	}
	return released, nil
}

func sameParent(a, b *models.ItemID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeObjects struct{ m *memStore }

func (f *fakeObjects) Insert(_ context.Context, obj *models.Object) error {
	if err := obj.SetID(models.ObjectID(f.m.id())); err != nil {
		return err
	}
	f.m.objects[obj.ID()] = obj
	return nil
}

func (f *fakeObjects) FindByID(_ context.Context, id models.ObjectID) (*models.Object, error) {
	o, ok := f.m.objects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return o, nil
}

func (f *fakeObjects) FindByHash(_ context.Context, hash string) ([]*models.Object, error) {
	var out []*models.Object
	for _, o := range f.m.objects {
		if o.Hash == hash {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeObjects) DeleteMany(_ context.Context, ids []models.ObjectID) error {
	for _, id := range ids {
		delete(f.m.objects, id)
	}
	return nil
}

func (f *fakeObjects) Release(ctx context.Context, ids []models.ObjectID) ([]models.ObjectID, error) {
	return ids, f.DeleteMany(ctx, ids)
}

type fakeSubs struct{ m *memStore }

func (f *fakeSubs) Find(_ context.Context, user models.UserID, repo models.RepositoryID) (*models.Subscription, error) {
	s, ok := f.m.subs[[2]int64{int64(user), int64(repo)}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return s, nil
}

func (f *fakeSubs) ListByUser(_ context.Context, user models.UserID) ([]*models.Subscription, error) {
	var out []*models.Subscription
	for k, s := range f.m.subs {
		if k[0] == int64(user) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) ListByRepository(_ context.Context, repo models.RepositoryID) ([]*models.Subscription, error) {
	var out []*models.Subscription
	for k, s := range f.m.subs {
		if k[1] == int64(repo) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
	return out, nil
}

func (f *fakeSubs) Upsert(_ context.Context, sub *models.Subscription) error {
	if _, ok := f.m.users[sub.Owner]; !ok {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, sub.Owner)
	}
	f.m.subscribe(sub.Owner, sub.Repository, sub.AccessType)
	return nil
}

func (f *fakeSubs) Delete(_ context.Context, user models.UserID, repo models.RepositoryID) error {
	k := [2]int64{int64(user), int64(repo)}
	if _, ok := f.m.subs[k]; !ok {
		return common.ErrNotFound
	}
	delete(f.m.subs, k)
	return nil
}

func (f *fakeSubs) DeleteByRepository(_ context.Context, repo models.RepositoryID) error {
	for k := range f.m.subs {
		if k[1] == int64(repo) {
			delete(f.m.subs, k)
		}
	}
	return nil
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// expectTx registers one transaction that commits or rolls back.
func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func as(user models.UserID) context.Context {
	return auth.WithUserID(context.Background(), user)
}

func itemID(id int64) *models.ItemID {
	v := models.ItemID(id)
	return &v
}

type fakeUsers struct{ m *memStore }

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	if _, err := f.FindByLogin(context.Background(), u.Login); err == nil {
		return common.ErrInvalidArgument
	}
	id := models.UserID(f.m.id())
	if err := u.SetID(id); err != nil {
		return err
	}
	f.m.users[id] = u
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id models.UserID) (*models.User, error) {
	u, ok := f.m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) FindByLogin(_ context.Context, login encx.EncString) (*models.User, error) {
	for _, u := range f.m.users {
		if strings.EqualFold(u.Login.Plain(), login.Plain()) {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}
