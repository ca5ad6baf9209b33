package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/hashx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	uploads, downloads []string
	err                error
}

func (f *fakeLocator) UploadURL(_ context.Context, hash string) (string, error) {
	f.uploads = append(f.uploads, hash)
	return "put:" + hash, f.err
}

func (f *fakeLocator) DownloadURL(_ context.Context, hash string) (string, error) {
	f.downloads = append(f.downloads, hash)
	return "get:" + hash, f.err
}

type recordingStorage struct {
	ops      map[string]error
	released int
}

func (r *recordingStorage) RecordOperation(op string, _ time.Duration, err error) {
	if r.ops == nil {
		r.ops = map[string]error{}
	}
	r.ops[op] = err
}

func (r *recordingStorage) RecordReleasedObjects(n int) { r.released += n }

type itemFixture struct {
	svc     *ItemService
	store   *memStore
	blobs   *fakeLocator
	storage *recordingStorage
	tx      func(commit bool)
	repo    *models.Repository
}

func newItemFixture(t *testing.T, status models.RepositoryStatus) *itemFixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
	})
	f := &itemFixture{store: newMemStore(), blobs: &fakeLocator{}, storage: &recordingStorage{}}
	f.svc = NewItemService(db, f.store, f.blobs, hashx.SHA256, WithMetrics(nil, f.storage))
	f.tx = func(commit bool) { expectTx(mock, commit) }
	f.repo = f.store.addRepo(t, 10, owner, status)
	return f
}

const helloHash = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestItemService_CreateDirectory(t *testing.T) {
	t.Run("contributor creates nested directory", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.addDir(t, 20, f.repo.ID(), owner, nil)
		f.store.subscribe(member, f.repo.ID(), models.AccessContributor)
		f.tx(true)

		dir, err := f.svc.CreateDirectory(as(member), NewDirectory{Repository: f.repo.ID(), Parent: itemID(20), Name: encx.Encode("docs")})
		require.NoError(t, err)

		assert.True(t, dir.ID().IsValid())
		assert.Equal(t, member, dir.Owner)
		assert.Contains(t, f.store.items, dir.ID())
		assert.NoError(t, f.storage.ops["directory_create"])
	})

	t.Run("read-only user is refused", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.subscribe(member, f.repo.ID(), models.AccessReadOnly)
		f.tx(false)

		_, err := f.svc.CreateDirectory(as(member), NewDirectory{Repository: f.repo.ID(), Name: encx.Encode("docs")})
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
		assert.ErrorIs(t, f.storage.ops["directory_create"], common.ErrPermissionDenied)
	})

	t.Run("viewer may upload into open directory", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPublic)
		open := f.store.addDir(t, 20, f.repo.ID(), owner, nil)
		open.Data = &models.DirectoryData{OpenUpload: true}
		f.tx(true)

		_, err := f.svc.CreateDirectory(as(visitor), NewDirectory{Repository: f.repo.ID(), Parent: itemID(20), Name: encx.Encode("drop")})
		require.NoError(t, err)
	})

	t.Run("parent must be a directory of the same repository", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.addFile(t, 20, f.repo.ID(), owner, nil, 1)
		other := f.store.addRepo(t, 11, owner, models.StatusPrivate)
		f.store.addDir(t, 21, other.ID(), owner, nil)

		f.tx(false)
		_, err := f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID(), Parent: itemID(20), Name: encx.Encode("x")})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)

		f.tx(false)
		_, err = f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID(), Parent: itemID(21), Name: encx.Encode("x")})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("sibling names are unique", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.addDir(t, 20, f.repo.ID(), owner, nil)
		f.tx(true)
		_, err := f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID(), Parent: itemID(20), Name: encx.Encode("docs")})
		require.NoError(t, err)

		f.tx(false)
		_, err = f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID(), Parent: itemID(20), Name: encx.Encode("docs")})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)

		f.tx(true)
		_, err = f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID(), Name: encx.Encode("docs")})
		require.NoError(t, err, "the same name is fine under another parent")
		assert.Len(t, f.store.items, 3)
	})

	t.Run("empty name never opens a transaction", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)

		_, err := f.svc.CreateDirectory(as(owner), NewDirectory{Repository: f.repo.ID()})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})
}

func TestItemService_RegisterFile(t *testing.T) {
	t.Run("reuses an object with the same hash", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		existing := f.store.addObject(t, 50, helloHash)
		f.tx(true)

		item, err := f.svc.RegisterFile(as(owner), NewFile{
			Repository: f.repo.ID(), Name: encx.Encode("a.txt"), Size: 5,
			Mimetype: encx.Encode("text/plain"), Hash: "  " + strings.ToUpper(helloHash),
		})
		require.NoError(t, err)

		file, ok := item.File()
		require.True(t, ok)
		assert.Equal(t, existing.ID(), file.Object)
		assert.Len(t, f.store.objects, 1)
	})

	t.Run("inserts novel content", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.tx(true)

		item, err := f.svc.RegisterFile(as(owner), NewFile{Repository: f.repo.ID(), Name: encx.Encode("a.txt"), Hash: "ABCD"})
		require.NoError(t, err)

		file, _ := item.File()
		obj := f.store.objects[file.Object]
		require.NotNil(t, obj)
		assert.Equal(t, "abcd", obj.Hash)
	})

	t.Run("size limit", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		limit := int64(4)
		f.repo.MaxFileSize = &limit
		f.tx(false)

		_, err := f.svc.RegisterFile(as(owner), NewFile{Repository: f.repo.ID(), Name: encx.Encode("a"), Size: 5, Hash: "ab"})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.Empty(t, f.store.objects, "no object stored")
	})

	t.Run("bad hash", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)

		_, err := f.svc.RegisterFile(as(owner), NewFile{Repository: f.repo.ID(), Name: encx.Encode("a"), Hash: "not-hex"})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("name already used by a sibling", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.addDir(t, 20, f.repo.ID(), owner, nil)
		existing := f.store.addFile(t, 21, f.repo.ID(), owner, itemID(20), 1)
		f.store.addObject(t, 1, helloHash)
		f.tx(false)

		_, err := f.svc.RegisterFile(as(owner), NewFile{
			Repository: f.repo.ID(), Parent: itemID(20), Name: existing.Name,
			Size: 5, Mimetype: encx.Encode("text/plain"), Hash: helloHash,
		})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.Len(t, f.store.items, 2)
	})

	t.Run("anonymous upload is refused even with visitor upload", func(t *testing.T) {
		f := newItemFixture(t, models.StatusPublic)
		f.repo.AllowVisitorUpload = true
		f.tx(false)

		_, err := f.svc.RegisterFile(context.Background(), NewFile{Repository: f.repo.ID(), Name: encx.Encode("a"), Hash: "ab"})
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
	})
}

func TestItemService_Update(t *testing.T) {
	setup := func(t *testing.T) *itemFixture {
		f := newItemFixture(t, models.StatusPrivate)
		f.store.addDir(t, 20, f.repo.ID(), owner, nil)
		f.store.addDir(t, 21, f.repo.ID(), owner, itemID(20))
		f.store.addDir(t, 22, f.repo.ID(), owner, nil)
		f.store.addFile(t, 23, f.repo.ID(), member, itemID(20), 1)
		return f
	}

	t.Run("rename and move", func(t *testing.T) {
		f := setup(t)
		f.tx(true)

		name := encx.Encode("renamed")
		got, err := f.svc.Update(as(owner), ItemPatch{ID: 21, Name: &name, Parent: itemID(22)})
		require.NoError(t, err)

		assert.Equal(t, name, got.Name)
		require.NotNil(t, got.ParentItem)
		assert.Equal(t, models.ItemID(22), *f.store.items[21].ParentItem)
	})

	t.Run("move to root", func(t *testing.T) {
		f := setup(t)
		f.tx(true)

		_, err := f.svc.Update(as(owner), ItemPatch{ID: 21, MoveToRoot: true, Parent: itemID(22)})
		require.NoError(t, err)
		assert.Nil(t, f.store.items[21].ParentItem)
	})

	t.Run("cannot move below itself", func(t *testing.T) {
		f := setup(t)

		f.tx(false)
		_, err := f.svc.Update(as(owner), ItemPatch{ID: 20, Parent: itemID(21)})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)

		f.tx(false)
		_, err = f.svc.Update(as(owner), ItemPatch{ID: 20, Parent: itemID(20)})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("target must be a directory", func(t *testing.T) {
		f := setup(t)
		f.tx(false)

		_, err := f.svc.Update(as(owner), ItemPatch{ID: 21, Parent: itemID(23)})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("rename onto a sibling name", func(t *testing.T) {
		f := setup(t)
		f.tx(false)

		taken := f.store.items[22].Name
		_, err := f.svc.Update(as(owner), ItemPatch{ID: 20, Name: &taken})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.NotEqual(t, taken, f.store.items[20].Name)
	})

	t.Run("move next to an item with the same name", func(t *testing.T) {
		f := setup(t)
		clash := f.store.addDir(t, 24, f.repo.ID(), owner, itemID(22))
		clash.Name = f.store.items[21].Name
		f.tx(false)

		_, err := f.svc.Update(as(owner), ItemPatch{ID: 21, Parent: itemID(22)})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("target must not be in the trash", func(t *testing.T) {
		f := setup(t)
		f.store.items[22].InTrash = true
		f.tx(false)

		_, err := f.svc.Update(as(owner), ItemPatch{ID: 21, Parent: itemID(22)})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.Equal(t, models.ItemID(20), *f.store.items[21].ParentItem)
		assert.False(t, f.store.items[21].InTrash)
	})

	t.Run("item owner edits own file", func(t *testing.T) {
		f := setup(t)
		f.store.subscribe(member, f.repo.ID(), models.AccessReadOnly)
		f.tx(true)

		mt := encx.Encode("text/markdown")
		got, err := f.svc.Update(as(member), ItemPatch{ID: 23, Mimetype: &mt, ClearDescription: true})
		require.NoError(t, err)
		file, _ := got.File()
		assert.Equal(t, mt, file.Mimetype)
	})

	t.Run("file fields on a directory", func(t *testing.T) {
		f := setup(t)
		f.tx(false)

		ts := int64(1)
		_, err := f.svc.Update(as(owner), ItemPatch{ID: 20, Timestamp: &ts})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})
}

func TestItemService_TrashLifecycle(t *testing.T) {
	f := newItemFixture(t, models.StatusPrivate)
	f.store.addDir(t, 20, f.repo.ID(), owner, nil)
	f.store.addFile(t, 21, f.repo.ID(), owner, itemID(20), 1)

	f.tx(true)
	require.NoError(t, f.svc.Trash(as(owner), 20))
	assert.True(t, f.store.items[21].InTrash, "trash applies to the subtree")

	roots, err := f.svc.TrashRoots(as(owner), f.repo.ID())
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, models.ItemID(20), roots[0].ID())

	f.tx(false)
	err = f.svc.Restore(as(owner), 21)
	assert.ErrorIs(t, err, common.ErrInvalidArgument, "descendants restore through their trash root")

	f.tx(false)
	err = f.svc.Trash(as(owner), 20)
	assert.ErrorIs(t, err, common.ErrNotFound, "already trashed")

	f.tx(true)
	require.NoError(t, f.svc.Restore(as(owner), 20))
	assert.False(t, f.store.items[21].InTrash)

	f.tx(false)
	err = f.svc.Restore(as(owner), 20)
	assert.ErrorIs(t, err, common.ErrNotFound, "not in trash")
}

func TestItemService_Delete(t *testing.T) {
	f := newItemFixture(t, models.StatusPrivate)
	obj := f.store.addObject(t, 50, "aa")
	f.store.addDir(t, 20, f.repo.ID(), owner, nil)
	f.store.addFile(t, 21, f.repo.ID(), owner, itemID(20), obj.ID())
	f.store.subscribe(visitor, f.repo.ID(), models.AccessReadOnly)

	f.tx(false)
	assert.ErrorIs(t, f.svc.Delete(as(visitor), 20), common.ErrPermissionDenied)

	f.tx(true)
	require.NoError(t, f.svc.Delete(as(owner), 20))

	assert.Empty(t, f.store.items)
	assert.Empty(t, f.store.objects)
	assert.Equal(t, 1, f.storage.released)
}

func TestItemService_Reads(t *testing.T) {
	f := newItemFixture(t, models.StatusPrivate)
	f.store.addDir(t, 20, f.repo.ID(), owner, nil)
	f.store.addFile(t, 21, f.repo.ID(), owner, itemID(20), 1)

	_, err := f.svc.Get(as(visitor), 20, models.TrashExclude)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	children, err := f.svc.Children(as(owner), 20, models.TrashExclude)
	require.NoError(t, err)
	assert.Len(t, children, 1)

	roots, err := f.svc.Roots(as(owner), f.repo.ID(), models.TrashExclude)
	require.NoError(t, err)
	assert.Len(t, roots, 1)

	_, err = f.svc.Search(as(owner), models.ItemSearch{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	hits, err := f.svc.Search(as(owner), models.ItemSearch{Scopes: []models.SearchScope{{Repository: f.repo.ID()}}})
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	_, err = f.svc.Search(as(visitor), models.ItemSearch{Scopes: []models.SearchScope{{Repository: f.repo.ID()}}})
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
}

func TestItemService_BlobURLs(t *testing.T) {
	f := newItemFixture(t, models.StatusPublic)
	obj := f.store.addObject(t, 50, "cafe")
	f.store.addFile(t, 20, f.repo.ID(), owner, nil, obj.ID())
	f.store.addDir(t, 21, f.repo.ID(), owner, nil)

	url, err := f.svc.DownloadURL(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "get:cafe", url)

	_, err = f.svc.DownloadURL(context.Background(), 21)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	url, err = f.svc.UploadURL(as(owner), f.repo.ID(), nil, "BEEF")
	require.NoError(t, err)
	assert.Equal(t, "put:beef", url)

	_, err = f.svc.UploadURL(as(visitor), f.repo.ID(), nil, "beef")
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	f.blobs.err = errors.New("s3 down")
	_, err = f.svc.DownloadURL(context.Background(), 20)
	assert.EqualError(t, err, "s3 down")
}

func TestItemService_VerifyFile(t *testing.T) {
	f := newItemFixture(t, models.StatusPrivate)
	sum := sha256.Sum256([]byte("hello"))
	obj := f.store.addObject(t, 50, hex.EncodeToString(sum[:]))
	f.store.addFile(t, 20, f.repo.ID(), owner, nil, obj.ID())
	f.store.addDir(t, 21, f.repo.ID(), owner, nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good"), []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad"), []byte("hullo"), 0o600))

	t.Run("disabled without a verify root", func(t *testing.T) {
		_, err := f.svc.VerifyFile(as(owner), 20, "good")
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
	})

	f.svc.verifyRoot = dir

	t.Run("matching and differing content", func(t *testing.T) {
		ok, err := f.svc.VerifyFile(as(owner), 20, "good")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.svc.VerifyFile(as(owner), 20, "bad")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("paths outside the root are rejected", func(t *testing.T) {
		for _, name := range []string{"../good", filepath.Join(dir, "good"), ""} {
			_, err := f.svc.VerifyFile(as(owner), 20, name)
			assert.ErrorIs(t, err, common.ErrInvalidArgument, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := f.svc.VerifyFile(as(owner), 20, "absent")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("directories have no content", func(t *testing.T) {
		_, err := f.svc.VerifyFile(as(owner), 21, "good")
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("caller must see the item", func(t *testing.T) {
		_, err := f.svc.VerifyFile(as(visitor), 20, "good")
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
	})
}
