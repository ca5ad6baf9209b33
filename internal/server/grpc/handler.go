package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/encx"
	pb "github.com/dmitrijs2005/repovault/internal/proto"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

var (
	_ pb.RepositoryServiceServer = (*GRPCServer)(nil)
	_ pb.ItemServiceServer       = (*GRPCServer)(nil)
	_ pb.UserServiceServer       = (*GRPCServer)(nil)
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func repository(r *models.Repository, err error) (*pb.RepositoryResponse, error) {
	if err != nil {
		return nil, err
	}
	return &pb.RepositoryResponse{Repository: repositoryToProto(r)}, nil
}

func (s *GRPCServer) CreateRepository(ctx context.Context, req *pb.Repository) (*pb.RepositoryResponse, error) {
	repo, err := repositoryFromProto(req)
	if err != nil {
		return nil, err
	}
	return repository(s.repositories.Create(ctx, repo))
}

func (s *GRPCServer) GetRepository(ctx context.Context, req *pb.RepositoryRequest) (*pb.RepositoryResponse, error) {
	return repository(s.repositories.Get(ctx, models.RepositoryID(req.GetId())))
}

func (s *GRPCServer) GetRepositoryByURLName(ctx context.Context, req *pb.URLNameRequest) (*pb.RepositoryResponse, error) {
	name, err := parseEnc("url_name", req.GetUrlName())
	if err != nil {
		return nil, err
	}
	return repository(s.repositories.GetByURLName(ctx, name))
}

func repositories(list []*models.Repository, err error) (*pb.RepositoriesResponse, error) {
	if err != nil {
		return nil, err
	}
	return &pb.RepositoriesResponse{Repositories: repositoriesToProto(list)}, nil
}

func (s *GRPCServer) ListOwnedRepositories(ctx context.Context, _ *pb.Empty) (*pb.RepositoriesResponse, error) {
	return repositories(s.repositories.ListOwned(ctx))
}

func (s *GRPCServer) ListSharedRepositories(ctx context.Context, _ *pb.Empty) (*pb.RepositoriesResponse, error) {
	return repositories(s.repositories.ListShared(ctx))
}

func (s *GRPCServer) ListPublicRepositories(ctx context.Context, _ *pb.Empty) (*pb.RepositoriesResponse, error) {
	return repositories(s.repositories.ListPublic(ctx))
}

func (s *GRPCServer) UpdateRepository(ctx context.Context, req *pb.Repository) (*pb.RepositoryResponse, error) {
	repo, err := repositoryFromProto(req)
	if err != nil {
		return nil, err
	}
	return repository(s.repositories.Update(ctx, repo))
}

func (s *GRPCServer) DeleteRepository(ctx context.Context, req *pb.RepositoryRequest) (*pb.Empty, error) {
	if err := s.repositories.Delete(ctx, models.RepositoryID(req.GetId())); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RepositoryStats(ctx context.Context, req *pb.RepositoryRequest) (*pb.StatsResponse, error) {
	st, err := s.repositories.Stats(ctx, models.RepositoryID(req.GetId()))
	if err != nil {
		return nil, err
	}
	return &pb.StatsResponse{Stats: statsToProto(st)}, nil
}

func (s *GRPCServer) Subscribe(ctx context.Context, req *pb.Subscription) (*pb.Empty, error) {
	if err := s.repositories.Subscribe(ctx, subscriptionFromProto(req)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) Unsubscribe(ctx context.Context, req *pb.UnsubscribeRequest) (*pb.Empty, error) {
	err := s.repositories.Unsubscribe(ctx, models.UserID(req.GetUser()), models.RepositoryID(req.GetRepository()))
	if err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListSubscriptions(ctx context.Context, req *pb.RepositoryRequest) (*pb.SubscriptionsResponse, error) {
	subs, err := s.repositories.Subscriptions(ctx, models.RepositoryID(req.GetId()))
	if err != nil {
		return nil, err
	}
	out := make([]*pb.Subscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, subscriptionToProto(sub))
	}
	return &pb.SubscriptionsResponse{Subscriptions: out}, nil
}

func item(it *models.Item, err error) (*pb.ItemResponse, error) {
	if err != nil {
		return nil, err
	}
	return &pb.ItemResponse{Item: itemToProto(it)}, nil
}

func itemList(list []*models.Item, err error) (*pb.ItemsResponse, error) {
	if err != nil {
		return nil, err
	}
	return &pb.ItemsResponse{Items: itemsToProto(list)}, nil
}

func (s *GRPCServer) GetItem(ctx context.Context, req *pb.ItemRequest) (*pb.ItemResponse, error) {
	return item(s.items.Get(ctx, models.ItemID(req.GetId()), trashFromProto(req.GetTrash())))
}

func (s *GRPCServer) GetItemByPath(ctx context.Context, req *pb.PathRequest) (*pb.ItemResponse, error) {
	path, err := encx.ParseEncPath(req.GetPath())
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	return item(s.items.GetByPath(ctx, models.RepositoryID(req.GetRepository()), path, trashFromProto(req.GetTrash())))
}

func (s *GRPCServer) ListChildren(ctx context.Context, req *pb.ChildrenRequest) (*pb.ItemsResponse, error) {
	return itemList(s.items.Children(ctx, models.ItemID(req.GetParent()), trashFromProto(req.GetTrash())))
}

func (s *GRPCServer) ListRoots(ctx context.Context, req *pb.RootsRequest) (*pb.ItemsResponse, error) {
	return itemList(s.items.Roots(ctx, models.RepositoryID(req.GetRepository()), trashFromProto(req.GetTrash())))
}

func (s *GRPCServer) ListTrashRoots(ctx context.Context, req *pb.RepositoryRequest) (*pb.ItemsResponse, error) {
	return itemList(s.items.TrashRoots(ctx, models.RepositoryID(req.GetId())))
}

func (s *GRPCServer) SearchItems(ctx context.Context, req *pb.SearchRequest) (*pb.ItemsResponse, error) {
	q, err := searchFromProto(req)
	if err != nil {
		return nil, err
	}
	return itemList(s.items.Search(ctx, q))
}

func (s *GRPCServer) CreateDirectory(ctx context.Context, req *pb.CreateDirectoryRequest) (*pb.ItemResponse, error) {
	in, err := newDirectoryFromProto(req)
	if err != nil {
		return nil, err
	}
	return item(s.items.CreateDirectory(ctx, in))
}

func (s *GRPCServer) RegisterFile(ctx context.Context, req *pb.RegisterFileRequest) (*pb.ItemResponse, error) {
	in, err := newFileFromProto(req)
	if err != nil {
		return nil, err
	}
	return item(s.items.RegisterFile(ctx, in))
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.ItemResponse, error) {
	patch, err := itemPatchFromProto(req)
	if err != nil {
		return nil, err
	}
	return item(s.items.Update(ctx, patch))
}

func (s *GRPCServer) TrashItem(ctx context.Context, req *pb.ItemRequest) (*pb.Empty, error) {
	if err := s.items.Trash(ctx, models.ItemID(req.GetId())); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RestoreItem(ctx context.Context, req *pb.ItemRequest) (*pb.Empty, error) {
	if err := s.items.Restore(ctx, models.ItemID(req.GetId())); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *pb.ItemRequest) (*pb.Empty, error) {
	if err := s.items.Delete(ctx, models.ItemID(req.GetId())); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) DownloadURL(ctx context.Context, req *pb.ItemRequest) (*pb.URLResponse, error) {
	url, err := s.items.DownloadURL(ctx, models.ItemID(req.GetId()))
	if err != nil {
		return nil, err
	}
	return &pb.URLResponse{Url: url}, nil
}

func (s *GRPCServer) UploadURL(ctx context.Context, req *pb.UploadURLRequest) (*pb.URLResponse, error) {
	parent := optionalID[models.ItemID](req.ParentItem)
	url, err := s.items.UploadURL(ctx, models.RepositoryID(req.GetRepository()), parent, req.GetHash())
	if err != nil {
		return nil, err
	}
	return &pb.URLResponse{Url: url}, nil
}

func (s *GRPCServer) VerifyFile(ctx context.Context, req *pb.VerifyFileRequest) (*pb.VerifyFileResponse, error) {
	ok, err := s.items.VerifyFile(ctx, models.ItemID(req.GetId()), req.GetPath())
	if err != nil {
		return nil, err
	}
	return &pb.VerifyFileResponse{Matches: ok}, nil
}

func user(u *models.User, err error) (*pb.UserResponse, error) {
	if err != nil {
		return nil, err
	}
	return &pb.UserResponse{User: userToProto(u)}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.UserRequest) (*pb.UserResponse, error) {
	return user(s.users.Get(ctx, models.UserID(req.GetId())))
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	return user(s.users.Current(ctx))
}
