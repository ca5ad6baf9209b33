package auth

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type ctxKey struct{}

// WithUserID returns ctx carrying the authenticated caller.
func WithUserID(ctx context.Context, id models.UserID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserIDFromContext returns the caller, or 0 and false for anonymous
// requests.
func UserIDFromContext(ctx context.Context) (models.UserID, bool) {
	id, ok := ctx.Value(ctxKey{}).(models.UserID)
	return id, ok && id.IsValid()
}
