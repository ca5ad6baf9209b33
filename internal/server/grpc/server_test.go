package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/logging"
	pb "github.com/dmitrijs2005/repovault/internal/proto"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeRepositories{}, &fakeItems{}, &fakeUsers{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeRepositories{}, &fakeItems{}, &fakeUsers{}, "secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// dial starts srv on a loopback listener and returns a client connection.
func dial(t *testing.T, srv *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///"+lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestServe_RoundTrip(t *testing.T) {
	repo := &models.Repository{URLName: encx.Encode("photos"), Status: models.StatusPublic}
	require.NoError(t, repo.SetID(7))
	repos := &fakeRepositories{getOut: repo}

	alice := &models.User{Login: encx.Encode("alice"), DisplayName: encx.Encode("Alice")}
	require.NoError(t, alice.SetID(42))
	users := &fakeUsers{out: alice}

	srv, err := NewGRPCServer("", nopLogger{}, repos, &fakeItems{}, users, "secret")
	require.NoError(t, err)
	conn := dial(t, srv)
	repoClient := pb.NewRepositoryServiceClient(conn)
	userClient := pb.NewUserServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := repoClient.Ping(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	token, err := auth.GenerateToken(42, []byte("secret"), time.Minute)
	require.NoError(t, err)
	authCtx := metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerPrefix+token)

	t.Run("anonymous call reaches the service", func(t *testing.T) {
		var header metadata.MD
		out, err := repoClient.GetRepository(ctx, &pb.RepositoryRequest{Id: 7}, grpc.Header(&header))
		require.NoError(t, err)

		require.NotNil(t, out.Repository)
		assert.Equal(t, int64(7), out.Repository.Id)
		assert.Equal(t, "photos", out.Repository.UrlName)
		assert.Equal(t, pb.RepositoryStatus_REPOSITORY_STATUS_PUBLIC, out.Repository.Status)
		assert.False(t, repos.lastCaller.IsValid())
		assert.NotEmpty(t, header.Get(requestIDHeader))
	})

	t.Run("bearer token identifies the caller", func(t *testing.T) {
		_, err := repoClient.GetRepository(authCtx, &pb.RepositoryRequest{Id: 7})
		require.NoError(t, err)
		assert.Equal(t, models.UserID(42), repos.lastCaller)
	})

	t.Run("current user", func(t *testing.T) {
		out, err := userClient.GetCurrentUser(authCtx, &pb.Empty{})
		require.NoError(t, err)
		assert.Equal(t, int64(42), out.User.Id)
		assert.Equal(t, "alice", out.User.Login)

		_, err = userClient.GetCurrentUser(ctx, &pb.Empty{})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("domain errors become status codes", func(t *testing.T) {
		repos.getErr = common.ErrPermissionDenied
		t.Cleanup(func() { repos.getErr = nil })

		_, err := repoClient.GetRepository(ctx, &pb.RepositoryRequest{Id: 7})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("non-canonical strings are invalid arguments", func(t *testing.T) {
		_, err := repoClient.GetRepositoryByURLName(ctx, &pb.URLNameRequest{UrlName: "two words"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("bad token is unauthenticated", func(t *testing.T) {
		badCtx := metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, "Bearer nope")

		_, err := repoClient.GetRepository(badCtx, &pb.RepositoryRequest{Id: 7})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
