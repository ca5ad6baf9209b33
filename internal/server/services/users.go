package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repomanager"
)

// UserService manages the local account records and issues bearer tokens
// for them. Verifying credentials happens outside repovault.
type UserService struct {
	base
	secretKey []byte
	validity  time.Duration
}

func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, secretKey string, validity time.Duration, opts ...Option) *UserService {
	return &UserService{
		base:      newBase(db, rm, opts),
		secretKey: []byte(secretKey),
		validity:  validity,
	}
}

func (s *UserService) Register(ctx context.Context, u *models.User) (out *models.User, err error) {
	defer s.observe("user.register", time.Now(), &err)

	if u.Login.IsEmpty() {
		return nil, fmt.Errorf("%w: empty login", common.ErrInvalidArgument)
	}
	if u.DisplayName.IsEmpty() {
		u.DisplayName = u.Login
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user", u.ID())
	return u, nil
}

// IssueToken signs a token for the user with the given login.
func (s *UserService) IssueToken(ctx context.Context, login encx.EncString) (string, error) {
	u, err := s.repomanager.Users(s.db).FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(u.ID(), s.secretKey, s.validity)
}

// Get returns the account with the given id. Any caller may look a user
// up; the email address is never served.
func (s *UserService) Get(ctx context.Context, id models.UserID) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return u, nil
}

// Current returns the account of the authenticated caller.
func (s *UserService) Current(ctx context.Context) (*models.User, error) {
	caller, err := authenticated(ctx)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, caller)
}
