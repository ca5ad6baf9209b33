// Package server wires the repovault components together: the PostgreSQL
// row-store, the use-case services, the gRPC endpoint and the metrics
// listener. It also handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/hashx"
	"github.com/dmitrijs2005/repovault/internal/logging"
	"github.com/dmitrijs2005/repovault/internal/metrics"
	"github.com/dmitrijs2005/repovault/internal/server/blobs"
	"github.com/dmitrijs2005/repovault/internal/server/config"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/repovault/internal/server/services"

	gs "github.com/dmitrijs2005/repovault/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	repositoryService *services.RepositoryService
	itemService       *services.ItemService
	userService       *services.UserService
}

func NewApp(c *config.Config) (*App, error) {
	if err := config.Validate(c); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	schema, err := dbx.NewSchema(c.SchemaName)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	alg, err := hashx.ParseAlgorithm(c.ObjectHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(schema)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.MetricsAddr != "" {
		metrics.InitRegistry()
	}

	opts := []services.Option{
		services.WithLogger(logger.With("module", "services")),
		services.WithMetrics(metrics.NewGateMetrics(), metrics.NewStorageMetrics()),
		services.WithVerifyRoot(c.VerifyRoot),
	}

	locator := blobs.NewS3Locator(blobs.S3Settings{
		User:     c.S3RootUser,
		Password: c.S3RootPassword,
		Bucket:   c.S3Bucket,
		Region:   c.S3Region,
		Endpoint: c.S3BaseEndpoint,
		Expires:  c.PresignValidityDuration,
	})

	return &App{
		config:            c,
		logger:            logger,
		db:                db,
		repomanager:       rm,
		repositoryService: services.NewRepositoryService(db, rm, opts...),
		itemService:       services.NewItemService(db, rm, locator, alg, opts...),
		userService:       services.NewUserService(db, rm, c.SecretKey, c.AccessTokenValidityDuration, opts...),
	}, nil
}

// Close releases the database pool.
func (app *App) Close() error {
	return app.db.Close()
}

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	app.logger.Info(ctx, "Migrations applied", "schema", app.config.SchemaName)
	return nil
}

// RegisterUser creates a local account for login.
func (app *App) RegisterUser(ctx context.Context, login string) (models.UserID, error) {
	u, err := app.userService.Register(ctx, &models.User{Login: encx.Encode(login)})
	if err != nil {
		return 0, err
	}
	return u.ID(), nil
}

// IssueToken returns a bearer token for the user with the given plain login.
func (app *App) IssueToken(ctx context.Context, login string) (string, error) {
	return app.userService.IssueToken(ctx, encx.Encode(login))
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repositoryService, app.itemService, app.userService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := metrics.NewServer(app.config.MetricsAddr, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run migrates the schema and serves until a signal arrives or a listener
// fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
	return nil
}
