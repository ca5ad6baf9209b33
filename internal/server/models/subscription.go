package models

// AccessType is the sharing tier granted by a subscription.
type AccessType string

const (
	AccessReadOnly    AccessType = "read-only"
	AccessContributor AccessType = "contributor"
	AccessModerator   AccessType = "moderator"
)

// ParseAccessType maps the stored text; unknown values are read-only.
func ParseAccessType(s string) AccessType {
	switch AccessType(s) {
	case AccessContributor:
		return AccessContributor
	case AccessModerator:
		return AccessModerator
	default:
		return AccessReadOnly
	}
}

func (a AccessType) Normalize() AccessType { return ParseAccessType(string(a)) }

// CanUpload reports whether the tier may add items.
func (a AccessType) CanUpload() bool {
	return a == AccessContributor || a == AccessModerator
}

// CanModerate reports whether the tier may edit the repository.
func (a AccessType) CanModerate() bool { return a == AccessModerator }

// Subscription grants a user non-owner access to a repository. It is unique
// per (Owner, Repository).
type Subscription struct {
	Owner      UserID       `json:"owner"`
	Repository RepositoryID `json:"repository"`
	AccessType AccessType   `json:"access_type"`
}
