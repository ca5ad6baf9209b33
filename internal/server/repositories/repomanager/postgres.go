// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/server/migrations"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/items"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repos"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/subscriptions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories that all
// address the same schema.
type PostgresRepositoryManager struct {
	schema dbx.Schema
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db, m.schema)
}

// Repositories returns a repos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Repositories(db dbx.DBTX) repos.Repository {
	return repos.NewPostgresRepository(db, m.schema)
}

// Items returns an items.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Items(db dbx.DBTX) items.Repository {
	return items.NewPostgresRepository(db, m.schema)
}

// Objects returns an objects.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Objects(db dbx.DBTX) objects.Repository {
	return objects.NewPostgresRepository(db, m.schema)
}

// Subscriptions returns a subscriptions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Subscriptions(db dbx.DBTX) subscriptions.Repository {
	return subscriptions.NewPostgresRepository(db, m.schema)
}

// migrationsUp is a seam for testing migrations.Up.
var migrationsUp = func(ctx context.Context, db *sql.DB, schema dbx.Schema) ([]*goose.MigrationResult, error) {
	return migrations.Up(ctx, db, schema)
}

// RunMigrations applies the embedded scripts to the manager's schema.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := migrationsUp(ctx, db, m.schema); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager
// for the given schema.
func NewPostgresRepositoryManager(schema dbx.Schema) (RepositoryManager, error) {
	if _, err := dbx.NewSchema(string(schema)); err != nil {
		return nil, err
	}
	return &PostgresRepositoryManager{schema: schema}, nil
}
