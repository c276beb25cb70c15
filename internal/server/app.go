// Package server initializes and runs the vault server.
// It wires the repository manager, domain services, the maintenance
// scheduler and the gRPC transport, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/randx"
	"github.com/dpetrovs/heirvault/internal/server/config"
	"github.com/dpetrovs/heirvault/internal/server/ledger"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/server/services"
	"github.com/dpetrovs/heirvault/internal/timex"

	gs "github.com/dpetrovs/heirvault/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	vaults    *services.VaultService
	invites   *services.InviteService
	payments  *services.PaymentService
	uploads   *services.UploadService
	contents  *services.ContentService
	settings  *services.SettingsService
	scheduler *services.Scheduler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var rm repomanager.RepositoryManager
	var db *sql.DB

	if cfg.DatabaseDSN == "" {
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		pg := repomanager.NewPostgresRepositoryManager(db)
		if err := pg.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("db migration error: %w", err)
		}
		rm = pg
	}

	clock := timex.RealClock{}
	rand := randx.CryptoSource{}
	engine := lifecycle.NewEngine(clock)
	store := services.NewObjectStore(cfg)
	lc := ledger.NewClient(cfg.LedgerEndpoint)

	vaults := services.NewVaultService(db, rm, engine, clock, logger)
	invites := services.NewInviteService(db, rm, engine, clock, rand, logger)
	payments := services.NewPaymentService(db, rm, clock, rand, lc, logger)
	uploads := services.NewUploadService(db, rm, store, clock, cfg.InlineStorageLimit, logger)
	contents := services.NewContentService(db, rm, store, clock, logger)
	settings := services.NewSettingsService(db, rm, logger)
	scheduler := services.NewScheduler(db, rm, vaults, invites, payments, uploads, engine, clock, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		vaults:    vaults,
		invites:   invites,
		payments:  payments,
		uploads:   uploads,
		contents:  contents,
		settings:  settings,
		scheduler: scheduler,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.vaults, app.invites, app.payments, app.uploads, app.contents,
		app.settings, app.scheduler, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// startScheduler runs maintenance passes on a fixed interval until the
// context is cancelled.
func (app *App) startScheduler(ctx context.Context) {

	ticker := time.NewTicker(app.config.SchedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.scheduler.RunOnce(ctx)
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startScheduler(ctx)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}
