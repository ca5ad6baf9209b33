package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("gate: %w", common.ErrPermissionDenied), codes.PermissionDenied},
		{fmt.Errorf("item 3: %w", common.ErrNotFound), codes.NotFound},
		{fmt.Errorf("%w: empty name", common.ErrInvalidArgument), codes.InvalidArgument},
		{common.ErrTokenExpired, codes.Unauthenticated},
		{fmt.Errorf("%w: conn reset", common.ErrUpstream), codes.Internal},
		{common.ErrInconsistent, codes.Internal},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{status.Error(codes.Aborted, "kept"), codes.Aborted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toStatus(tt.err).Code(), "%v", tt.err)
	}
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	st := toStatus(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal error", st.Message())
}
