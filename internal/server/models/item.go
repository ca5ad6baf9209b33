package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
)

// Variant is the payload of an Item: exactly one of *FileData or
// *DirectoryData.
type Variant interface {
	isVariant()
}

// FileData describes a regular file. Timestamp is the client supplied
// modification time in Unix milliseconds.
type FileData struct {
	Size      int64
	Mimetype  encx.EncString
	Timestamp int64
	Object    ObjectID
}

// DirectoryData describes a directory. NumItems and ContentSize are computed
// by the item view and ignored on write.
type DirectoryData struct {
	OpenUpload  bool
	NumItems    int64
	ContentSize int64
}

func (*FileData) isVariant()      {}
func (*DirectoryData) isVariant() {}

// Item is a file or directory node of a repository tree.
type Item struct {
	id           ItemID
	Repository   RepositoryID
	Owner        UserID
	Name         encx.EncString
	Description  *encx.EncString
	ParentItem   *ItemID
	AbsolutePath encx.EncPath
	InTrash      bool
	Data         Variant
}

func (i *Item) ID() ItemID { return i.id }

// SetID assigns the persisted id; it fails if the item already has one.
func (i *Item) SetID(id ItemID) error { return assignID(&i.id, id) }

// ClearID resets the id so the item is inserted as a new row on the next
// upsert, and returns the previous value.
func (i *Item) ClearID() ItemID {
	old := i.id
	i.id = 0
	return old
}

// File returns the file payload when the item is a regular file.
func (i *Item) File() (*FileData, bool) {
	f, ok := i.Data.(*FileData)
	return f, ok && f != nil
}

// Directory returns the directory payload when the item is a directory.
func (i *Item) Directory() (*DirectoryData, bool) {
	d, ok := i.Data.(*DirectoryData)
	return d, ok && d != nil
}

func (i *Item) IsRegularFile() bool {
	_, ok := i.File()
	return ok
}

// IsRoot reports whether the item sits directly under the repository.
func (i *Item) IsRoot() bool { return i.ParentItem == nil }

// Validate checks the fields every write requires.
func (i *Item) Validate() error {
	if i.Name.IsEmpty() {
		return fmt.Errorf("%w: item name is empty", common.ErrInvalidArgument)
	}
	if !i.Repository.IsValid() {
		return fmt.Errorf("%w: item has no repository", common.ErrInvalidArgument)
	}
	_, isFile := i.File()
	_, isDir := i.Directory()
	if !isFile && !isDir {
		return fmt.Errorf("%w: item is neither a file nor a directory", common.ErrInvalidArgument)
	}
	if i.ParentItem != nil && *i.ParentItem == i.id && i.id.IsValid() {
		return fmt.Errorf("%w: item cannot be its own parent", common.ErrInvalidArgument)
	}
	return nil
}

type itemJSON struct {
	ID            ItemID          `json:"id"`
	Repository    RepositoryID    `json:"repository"`
	Owner         UserID          `json:"owner"`
	Name          encx.EncString  `json:"name"`
	Description   *encx.EncString `json:"description,omitempty"`
	ParentItem    *ItemID         `json:"parent_item,omitempty"`
	AbsolutePath  encx.EncPath    `json:"absolute_path"`
	InTrash       bool            `json:"in_trash"`
	IsRegularFile bool            `json:"is_regular_file"`

	Size      *int64          `json:"size,omitempty"`
	Mimetype  *encx.EncString `json:"mimetype,omitempty"`
	Timestamp *int64          `json:"timestamp,omitempty"`

	OpenUpload  *bool  `json:"open_upload,omitempty"`
	NumItems    *int64 `json:"num_items,omitempty"`
	ContentSize *int64 `json:"content_size,omitempty"`
}

// MarshalJSON flattens the variant next to the common fields, tagged by
// is_regular_file.
func (i Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ID:           i.id,
		Repository:   i.Repository,
		Owner:        i.Owner,
		Name:         i.Name,
		Description:  i.Description,
		ParentItem:   i.ParentItem,
		AbsolutePath: i.AbsolutePath,
		InTrash:      i.InTrash,
	}
	if out.AbsolutePath == nil {
		out.AbsolutePath = encx.EncPath{}
	}

	switch v := i.Data.(type) {
	case *FileData:
		if v == nil {
			return nil, fmt.Errorf("%w: item is neither a file nor a directory", common.ErrInvalidArgument)
		}
		out.IsRegularFile = true
		out.Size, out.Mimetype, out.Timestamp = &v.Size, &v.Mimetype, &v.Timestamp
	case *DirectoryData:
		if v == nil {
			return nil, fmt.Errorf("%w: item is neither a file nor a directory", common.ErrInvalidArgument)
		}
		out.OpenUpload, out.NumItems, out.ContentSize = &v.OpenUpload, &v.NumItems, &v.ContentSize
	default:
		return nil, fmt.Errorf("%w: item is neither a file nor a directory", common.ErrInvalidArgument)
	}
	return json.Marshal(out)
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var in itemJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	*i = Item{
		id:           in.ID,
		Repository:   in.Repository,
		Owner:        in.Owner,
		Name:         in.Name,
		Description:  in.Description,
		ParentItem:   in.ParentItem,
		AbsolutePath: in.AbsolutePath,
		InTrash:      in.InTrash,
	}

	if in.IsRegularFile {
		f := &FileData{}
		if in.Size != nil {
			f.Size = *in.Size
		}
		if in.Mimetype != nil {
			f.Mimetype = *in.Mimetype
		}
		if in.Timestamp != nil {
			f.Timestamp = *in.Timestamp
		}
		i.Data = f
		return nil
	}

	d := &DirectoryData{}
	if in.OpenUpload != nil {
		d.OpenUpload = *in.OpenUpload
	}
	if in.NumItems != nil {
		d.NumItems = *in.NumItems
	}
	if in.ContentSize != nil {
		d.ContentSize = *in.ContentSize
	}
	i.Data = d
	return nil
}
