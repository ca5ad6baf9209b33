package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/items"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repos"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/subscriptions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Repositories(db dbx.DBTX) repos.Repository
	Items(db dbx.DBTX) items.Repository
	Objects(db dbx.DBTX) objects.Repository
	Subscriptions(db dbx.DBTX) subscriptions.Repository
}
