package users

import (
	"context"

	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id models.UserID) (*models.User, error)
	// FindByLogin matches the login case-insensitively.
	FindByLogin(ctx context.Context, login encx.EncString) (*models.User, error)
}
