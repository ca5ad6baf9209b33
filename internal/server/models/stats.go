package models

import "github.com/dmitrijs2005/repovault/internal/encx"

// ContributorStats counts the items owned by one user in a repository.
type ContributorStats struct {
	User  UserID `json:"user"`
	Count int64  `json:"count"`
}

// ExtensionStats counts the files of one mimetype in a repository.
type ExtensionStats struct {
	Mimetype encx.EncString `json:"mimetype"`
	Count    int64          `json:"count"`
}

// RepositoryStats aggregates a repository's content. Every counter is zero
// for an empty repository and the breakdowns are empty, never nil.
type RepositoryStats struct {
	Items            int64              `json:"items"`
	Directories      int64              `json:"directories"`
	Size             int64              `json:"size"`
	TrashItems       int64              `json:"trash_items"`
	TrashDirectories int64              `json:"trash_directories"`
	TrashSize        int64              `json:"trash_size"`
	Contributors     []ContributorStats `json:"contributors"`
	Extensions       []ExtensionStats   `json:"extensions"`
}
