package models

import "github.com/dmitrijs2005/repovault/internal/encx"

// SearchScope limits a search to a repository, optionally to the subtrees
// under the given root items.
type SearchScope struct {
	Repository RepositoryID `json:"repository"`
	Roots      []ItemID     `json:"roots,omitempty"`
}

// Int64Range is an inclusive range; a nil bound is open.
type Int64Range struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// ItemSearch is a conjunctive filter over regular files. Scopes must be
// non-empty; every other field is optional.
type ItemSearch struct {
	Scopes    []SearchScope   `json:"scopes"`
	Name      *encx.EncString `json:"name,omitempty"`
	Mimetype  *encx.EncString `json:"mimetype,omitempty"`
	Timestamp Int64Range      `json:"timestamp"`
	Size      Int64Range      `json:"size"`
	Owners    []UserID        `json:"owners,omitempty"`
	Trash     Trash           `json:"trash"`
}
