package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

// bearerToken extracts the token from the authorization header. present is
// false when no header was sent.
func bearerToken(ctx context.Context) (token string, present bool, err error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false, nil
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 || values[0] == "" {
		return "", false, nil
	}
	v := values[0]
	if len(v) < len(common.BearerPrefix) || !strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		return "", true, status.Error(codes.Unauthenticated, "malformed authorization header")
	}
	return strings.TrimSpace(v[len(common.BearerPrefix):]), true, nil
}

// authInterceptor resolves the caller from the bearer token, tags the call
// with a request id and maps errors to status codes. Calls without a token
// run as the anonymous user.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := uuid.NewString()
	log := s.logger.With("request_id", requestID, "method", info.FullMethod)
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

	token, present, err := bearerToken(ctx)
	if err != nil {
		log.Warn(ctx, "rejected call", "error", err)
		return nil, err
	}
	if present {
		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			log.Warn(ctx, "rejected token", "error", err)
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		ctx = auth.WithUserID(ctx, userID)
		log = log.With("user", userID)
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		st := toStatus(err)
		if st.Code() == codes.Internal {
			log.Error(ctx, "call failed", "error", err, "duration", time.Since(start))
		} else {
			log.Info(ctx, "call refused", "code", st.Code().String(), "error", err)
		}
		return nil, st.Err()
	}

	log.Debug(ctx, "call served", "duration", time.Since(start))
	return resp, nil
}
