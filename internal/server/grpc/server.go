// Package grpc exposes the repository, item and user use cases over gRPC
// using the stubs generated in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/logging"
	pb "github.com/dmitrijs2005/repovault/internal/proto"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/services"
	"google.golang.org/grpc"
)

// RepositoryAPI is the repository use-case surface served by GRPCServer.
type RepositoryAPI interface {
	Create(ctx context.Context, repo *models.Repository) (*models.Repository, error)
	Get(ctx context.Context, id models.RepositoryID) (*models.Repository, error)
	GetByURLName(ctx context.Context, name encx.EncString) (*models.Repository, error)
	ListOwned(ctx context.Context) ([]*models.Repository, error)
	ListShared(ctx context.Context) ([]*models.Repository, error)
	ListPublic(ctx context.Context) ([]*models.Repository, error)
	Update(ctx context.Context, repo *models.Repository) (*models.Repository, error)
	Delete(ctx context.Context, id models.RepositoryID) error
	Stats(ctx context.Context, id models.RepositoryID) (*models.RepositoryStats, error)
	Subscribe(ctx context.Context, sub *models.Subscription) error
	Unsubscribe(ctx context.Context, user models.UserID, id models.RepositoryID) error
	Subscriptions(ctx context.Context, id models.RepositoryID) ([]*models.Subscription, error)
}

// ItemAPI is the item use-case surface served by GRPCServer.
type ItemAPI interface {
	Get(ctx context.Context, id models.ItemID, trash models.Trash) (*models.Item, error)
	GetByPath(ctx context.Context, repo models.RepositoryID, path encx.EncPath, trash models.Trash) (*models.Item, error)
	Children(ctx context.Context, parent models.ItemID, trash models.Trash) ([]*models.Item, error)
	Roots(ctx context.Context, repo models.RepositoryID, trash models.Trash) ([]*models.Item, error)
	TrashRoots(ctx context.Context, repo models.RepositoryID) ([]*models.Item, error)
	Search(ctx context.Context, q models.ItemSearch) ([]*models.Item, error)
	CreateDirectory(ctx context.Context, in services.NewDirectory) (*models.Item, error)
	RegisterFile(ctx context.Context, in services.NewFile) (*models.Item, error)
	Update(ctx context.Context, patch services.ItemPatch) (*models.Item, error)
	Trash(ctx context.Context, id models.ItemID) error
	Restore(ctx context.Context, id models.ItemID) error
	Delete(ctx context.Context, id models.ItemID) error
	DownloadURL(ctx context.Context, id models.ItemID) (string, error)
	UploadURL(ctx context.Context, repo models.RepositoryID, parent *models.ItemID, hash string) (string, error)
	VerifyFile(ctx context.Context, id models.ItemID, path string) (bool, error)
}

// UserAPI is the read-only user surface served by GRPCServer. Accounts and
// tokens are managed from the command line.
type UserAPI interface {
	Get(ctx context.Context, id models.UserID) (*models.User, error)
	Current(ctx context.Context) (*models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedRepositoryServiceServer
	pb.UnimplementedItemServiceServer
	pb.UnimplementedUserServiceServer
	address      string
	repositories RepositoryAPI
	items        ItemAPI
	users        UserAPI
	logger       logging.Logger
	jwtSecret    []byte
}

func NewGRPCServer(a string, l logging.Logger, rs RepositoryAPI, is ItemAPI, us UserAPI, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		repositories: rs,
		items:        is,
		users:        us,
		jwtSecret:    []byte(secretKey),
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))
	pb.RegisterRepositoryServiceServer(srv, s)
	pb.RegisterItemServiceServer(srv, s)
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
