// Package services contains the server-side use cases. Every operation builds
// a permission gate for the calling user, checks it, and then runs the
// storage calls; writes run inside a single transaction.
package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/logging"
	"github.com/dmitrijs2005/repovault/internal/metrics"
	"github.com/dmitrijs2005/repovault/internal/server/auth"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/dmitrijs2005/repovault/internal/server/permissions"
	"github.com/dmitrijs2005/repovault/internal/server/repositories/repomanager"
)

// Option customizes a service.
type Option func(*base)

// WithLogger sets the logger used for cascade and sharing events.
func WithLogger(l logging.Logger) Option {
	return func(b *base) { b.logger = l }
}

// WithMetrics sets the gate and storage collectors. Nil values keep the noop
// defaults.
func WithMetrics(g metrics.GateMetrics, s metrics.StorageMetrics) Option {
	return func(b *base) {
		if g != nil {
			b.gateMetrics = g
		}
		if s != nil {
			b.storageMetrics = s
		}
	}
}

// WithVerifyRoot sets the directory ItemService.VerifyFile reads from.
func WithVerifyRoot(dir string) Option {
	return func(b *base) { b.verifyRoot = dir }
}

type base struct {
	verifyRoot     string
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	logger         logging.Logger
	gateMetrics    metrics.GateMetrics
	storageMetrics metrics.StorageMetrics
}

func newBase(db *sql.DB, rm repomanager.RepositoryManager, opts []Option) base {
	b := base{
		db:             db,
		repomanager:    rm,
		logger:         logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		gateMetrics:    metrics.NoopGateMetrics{},
		storageMetrics: metrics.NoopStorageMetrics{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// gate builds the permission gate for the caller found in ctx.
func (b *base) gate(ctx context.Context, db dbx.DBTX) *permissions.Gate {
	caller, _ := auth.UserIDFromContext(ctx)
	return permissions.NewGate(caller, b.repomanager.Repositories(db), b.repomanager.Subscriptions(db), b.gateMetrics)
}

// authenticated returns the caller, failing for anonymous requests.
func authenticated(ctx context.Context) (models.UserID, error) {
	caller, ok := auth.UserIDFromContext(ctx)
	if !ok || !caller.IsValid() {
		return 0, common.ErrPermissionDenied
	}
	return caller, nil
}

// observe records the outcome of a write; use as
// defer s.observe("op", time.Now(), &err).
func (b *base) observe(op string, start time.Time, err *error) {
	b.storageMetrics.RecordOperation(op, time.Since(start), *err)
}

func (b *base) released(ctx context.Context, op string, ids []models.ObjectID) {
	if len(ids) == 0 {
		return
	}
	b.storageMetrics.RecordReleasedObjects(len(ids))
	b.logger.Debug(ctx, "objects released", "operation", op, "count", len(ids))
}
