package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
)

// RepositoryStatus controls anonymous visibility of a repository.
type RepositoryStatus string

const (
	StatusPrivate RepositoryStatus = "private"
	StatusHidden  RepositoryStatus = "hidden"
	StatusPublic  RepositoryStatus = "public"
)

// ParseRepositoryStatus maps the stored text; unknown values are private.
func ParseRepositoryStatus(s string) RepositoryStatus {
	switch RepositoryStatus(s) {
	case StatusHidden:
		return StatusHidden
	case StatusPublic:
		return StatusPublic
	default:
		return StatusPrivate
	}
}

func (s RepositoryStatus) Normalize() RepositoryStatus { return ParseRepositoryStatus(string(s)) }

// Repository is an owned tree of items with its sharing policy.
type Repository struct {
	id                  RepositoryID
	URLName             encx.EncString   `json:"url_name"`
	Owner               UserID           `json:"owner"`
	Description         *encx.EncString  `json:"description,omitempty"`
	Status              RepositoryStatus `json:"status"`
	DisplayName         encx.EncString   `json:"display_name"`
	MaxFileSize         *int64           `json:"max_file_size,omitempty"`
	VisitorFileLifetime *int64           `json:"visitor_file_lifetime,omitempty"`
	AllowVisitorUpload  bool             `json:"allow_visitor_upload"`
}

func (r *Repository) ID() RepositoryID { return r.id }

func (r *Repository) SetID(id RepositoryID) error { return assignID(&r.id, id) }

// Validate checks the fields every write requires.
func (r *Repository) Validate() error {
	if r.URLName.IsEmpty() {
		return fmt.Errorf("%w: repository url_name is empty", common.ErrInvalidArgument)
	}
	if !r.Owner.IsValid() {
		return fmt.Errorf("%w: repository has no owner", common.ErrInvalidArgument)
	}
	if r.MaxFileSize != nil && *r.MaxFileSize < 0 {
		return fmt.Errorf("%w: negative max_file_size", common.ErrInvalidArgument)
	}
	return nil
}

type repositoryAlias Repository

type repositoryJSON struct {
	ID RepositoryID `json:"id"`
	*repositoryAlias
}

func (r Repository) MarshalJSON() ([]byte, error) {
	return json.Marshal(repositoryJSON{ID: r.id, repositoryAlias: (*repositoryAlias)(&r)})
}

func (r *Repository) UnmarshalJSON(b []byte) error {
	in := repositoryJSON{repositoryAlias: (*repositoryAlias)(r)}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	r.id = in.ID
	r.Status = r.Status.Normalize()
	return nil
}
