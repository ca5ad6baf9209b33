package grpc

import (
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/encx"
	pb "github.com/dmitrijs2005/repovault/internal/proto"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/services"
)

// Strings cross the wire in canonical encoded form. Anything else is an
// invalid argument.

func parseEnc(field, s string) (encx.EncString, error) {
	v, err := encx.ParseEncString(s)
	if err != nil {
		return encx.EncString{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func parseOptionalEnc(field string, s *string) (*encx.EncString, error) {
	if s == nil {
		return nil, nil
	}
	v, err := parseEnc(field, *s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalEncoded(s *encx.EncString) *string {
	if s == nil {
		return nil
	}
	v := s.Encoded()
	return &v
}

func optionalID[T ~int64](v *int64) *T {
	if v == nil {
		return nil
	}
	id := T(*v)
	return &id
}

func optionalInt64[T ~int64](id *T) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func ids[T ~int64](in []int64) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

func statusToProto(s models.RepositoryStatus) pb.RepositoryStatus {
	switch s.Normalize() {
	case models.StatusHidden:
		return pb.RepositoryStatus_REPOSITORY_STATUS_HIDDEN
	case models.StatusPublic:
		return pb.RepositoryStatus_REPOSITORY_STATUS_PUBLIC
	default:
		return pb.RepositoryStatus_REPOSITORY_STATUS_PRIVATE
	}
}

func statusFromProto(s pb.RepositoryStatus) models.RepositoryStatus {
	switch s {
	case pb.RepositoryStatus_REPOSITORY_STATUS_HIDDEN:
		return models.StatusHidden
	case pb.RepositoryStatus_REPOSITORY_STATUS_PUBLIC:
		return models.StatusPublic
	default:
		return models.StatusPrivate
	}
}

func accessToProto(a models.AccessType) pb.AccessType {
	switch a.Normalize() {
	case models.AccessContributor:
		return pb.AccessType_ACCESS_TYPE_CONTRIBUTOR
	case models.AccessModerator:
		return pb.AccessType_ACCESS_TYPE_MODERATOR
	default:
		return pb.AccessType_ACCESS_TYPE_READ_ONLY
	}
}

func accessFromProto(a pb.AccessType) models.AccessType {
	switch a {
	case pb.AccessType_ACCESS_TYPE_CONTRIBUTOR:
		return models.AccessContributor
	case pb.AccessType_ACCESS_TYPE_MODERATOR:
		return models.AccessModerator
	default:
		return models.AccessReadOnly
	}
}

func trashFromProto(t pb.Trash) models.Trash {
	switch t {
	case pb.Trash_TRASH_ONLY:
		return models.TrashOnly
	case pb.Trash_TRASH_EITHER:
		return models.TrashEither
	default:
		return models.TrashExclude
	}
}

func repositoryToProto(r *models.Repository) *pb.Repository {
	if r == nil {
		return nil
	}
	return &pb.Repository{
		Id:                  int64(r.ID()),
		UrlName:             r.URLName.Encoded(),
		Owner:               int64(r.Owner),
		Description:         optionalEncoded(r.Description),
		Status:              statusToProto(r.Status),
		DisplayName:         r.DisplayName.Encoded(),
		MaxFileSize:         r.MaxFileSize,
		VisitorFileLifetime: r.VisitorFileLifetime,
		AllowVisitorUpload:  r.AllowVisitorUpload,
	}
}

func repositoryFromProto(in *pb.Repository) (*models.Repository, error) {
	urlName, err := parseEnc("url_name", in.GetUrlName())
	if err != nil {
		return nil, err
	}
	displayName, err := parseEnc("display_name", in.GetDisplayName())
	if err != nil {
		return nil, err
	}
	description, err := parseOptionalEnc("description", in.Description)
	if err != nil {
		return nil, err
	}

	repo := &models.Repository{
		URLName:             urlName,
		Owner:               models.UserID(in.GetOwner()),
		Description:         description,
		Status:              statusFromProto(in.GetStatus()),
		DisplayName:         displayName,
		MaxFileSize:         in.MaxFileSize,
		VisitorFileLifetime: in.VisitorFileLifetime,
		AllowVisitorUpload:  in.GetAllowVisitorUpload(),
	}
	if err := repo.SetID(models.RepositoryID(in.GetId())); err != nil {
		return nil, err
	}
	return repo, nil
}

func repositoriesToProto(list []*models.Repository) []*pb.Repository {
	out := make([]*pb.Repository, 0, len(list))
	for _, r := range list {
		out = append(out, repositoryToProto(r))
	}
	return out
}

func statsToProto(st *models.RepositoryStats) *pb.RepositoryStats {
	if st == nil {
		return nil
	}
	out := &pb.RepositoryStats{
		Items:            st.Items,
		Directories:      st.Directories,
		Size:             st.Size,
		TrashItems:       st.TrashItems,
		TrashDirectories: st.TrashDirectories,
		TrashSize:        st.TrashSize,
	}
	for _, c := range st.Contributors {
		out.Contributors = append(out.Contributors, &pb.ContributorStats{User: int64(c.User), Count: c.Count})
	}
	for _, e := range st.Extensions {
		out.Extensions = append(out.Extensions, &pb.ExtensionStats{Mimetype: e.Mimetype.Encoded(), Count: e.Count})
	}
	return out
}

func subscriptionToProto(s *models.Subscription) *pb.Subscription {
	return &pb.Subscription{
		Owner:      int64(s.Owner),
		Repository: int64(s.Repository),
		AccessType: accessToProto(s.AccessType),
	}
}

func subscriptionFromProto(in *pb.Subscription) *models.Subscription {
	return &models.Subscription{
		Owner:      models.UserID(in.GetOwner()),
		Repository: models.RepositoryID(in.GetRepository()),
		AccessType: accessFromProto(in.GetAccessType()),
	}
}

func itemToProto(it *models.Item) *pb.Item {
	if it == nil {
		return nil
	}
	out := &pb.Item{
		Id:           int64(it.ID()),
		Repository:   int64(it.Repository),
		Owner:        int64(it.Owner),
		Name:         it.Name.Encoded(),
		Description:  optionalEncoded(it.Description),
		ParentItem:   optionalInt64(it.ParentItem),
		AbsolutePath: it.AbsolutePath.String(),
		InTrash:      it.InTrash,
	}
	if f, ok := it.File(); ok {
		out.IsRegularFile = true
		out.Size = f.Size
		out.Mimetype = f.Mimetype.Encoded()
		out.Timestamp = f.Timestamp
	}
	if d, ok := it.Directory(); ok {
		out.OpenUpload = d.OpenUpload
		out.NumItems = d.NumItems
		out.ContentSize = d.ContentSize
	}
	return out
}

func itemsToProto(list []*models.Item) []*pb.Item {
	out := make([]*pb.Item, 0, len(list))
	for _, it := range list {
		out = append(out, itemToProto(it))
	}
	return out
}

func rangeFromProto(r *pb.Int64Range) models.Int64Range {
	if r == nil {
		return models.Int64Range{}
	}
	return models.Int64Range{Min: r.Min, Max: r.Max}
}

func searchFromProto(in *pb.SearchRequest) (models.ItemSearch, error) {
	name, err := parseOptionalEnc("name", in.Name)
	if err != nil {
		return models.ItemSearch{}, err
	}
	mimetype, err := parseOptionalEnc("mimetype", in.Mimetype)
	if err != nil {
		return models.ItemSearch{}, err
	}

	q := models.ItemSearch{
		Name:      name,
		Mimetype:  mimetype,
		Timestamp: rangeFromProto(in.GetTimestamp()),
		Size:      rangeFromProto(in.GetSize()),
		Owners:    ids[models.UserID](in.GetOwners()),
		Trash:     trashFromProto(in.GetTrash()),
	}
	for _, sc := range in.GetScopes() {
		q.Scopes = append(q.Scopes, models.SearchScope{
			Repository: models.RepositoryID(sc.GetRepository()),
			Roots:      ids[models.ItemID](sc.GetRoots()),
		})
	}
	return q, nil
}

func newDirectoryFromProto(in *pb.CreateDirectoryRequest) (services.NewDirectory, error) {
	name, err := parseEnc("name", in.GetName())
	if err != nil {
		return services.NewDirectory{}, err
	}
	description, err := parseOptionalEnc("description", in.Description)
	if err != nil {
		return services.NewDirectory{}, err
	}
	return services.NewDirectory{
		Repository:  models.RepositoryID(in.GetRepository()),
		Parent:      optionalID[models.ItemID](in.ParentItem),
		Name:        name,
		Description: description,
		OpenUpload:  in.GetOpenUpload(),
	}, nil
}

func newFileFromProto(in *pb.RegisterFileRequest) (services.NewFile, error) {
	name, err := parseEnc("name", in.GetName())
	if err != nil {
		return services.NewFile{}, err
	}
	description, err := parseOptionalEnc("description", in.Description)
	if err != nil {
		return services.NewFile{}, err
	}
	mimetype, err := parseEnc("mimetype", in.GetMimetype())
	if err != nil {
		return services.NewFile{}, err
	}
	return services.NewFile{
		Repository:  models.RepositoryID(in.GetRepository()),
		Parent:      optionalID[models.ItemID](in.ParentItem),
		Name:        name,
		Description: description,
		Size:        in.GetSize(),
		Mimetype:    mimetype,
		Timestamp:   in.GetTimestamp(),
		Hash:        in.GetHash(),
	}, nil
}

func itemPatchFromProto(in *pb.UpdateItemRequest) (services.ItemPatch, error) {
	name, err := parseOptionalEnc("name", in.Name)
	if err != nil {
		return services.ItemPatch{}, err
	}
	description, err := parseOptionalEnc("description", in.Description)
	if err != nil {
		return services.ItemPatch{}, err
	}
	mimetype, err := parseOptionalEnc("mimetype", in.Mimetype)
	if err != nil {
		return services.ItemPatch{}, err
	}
	return services.ItemPatch{
		ID:               models.ItemID(in.GetId()),
		Name:             name,
		Description:      description,
		ClearDescription: in.GetClearDescription(),
		Parent:           optionalID[models.ItemID](in.ParentItem),
		MoveToRoot:       in.GetMoveToRoot(),
		Mimetype:         mimetype,
		Timestamp:        in.Timestamp,
		OpenUpload:       in.OpenUpload,
	}, nil
}

// userToProto leaves the email address out.
func userToProto(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:          int64(u.ID()),
		Login:       u.Login.Encoded(),
		DisplayName: u.DisplayName.Encoded(),
	}
}
