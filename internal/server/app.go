// Package server assembles the registry process: storage, the registry
// engine, the gRPC endpoint and the optional snapshot exporter.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/songregistry/internal/logging"
	"github.com/dmitrijs2005/songregistry/internal/otel"
	"github.com/dmitrijs2005/songregistry/internal/server/config"
	"github.com/dmitrijs2005/songregistry/internal/server/ledger"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/songregistry/internal/server/services"
	"github.com/dmitrijs2005/songregistry/internal/server/snapshot"

	gs "github.com/dmitrijs2005/songregistry/internal/server/grpc"
)

const serviceName = "songregistry"

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	registry        *services.RegistryService
	shutdownTracing func(context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	shutdownTracing, err := otel.Setup(ctx, serviceName, c.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing init error: %w", err)
	}

	db, err := repomanager.Open(ctx, c.StorageBackend, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.New(c.StorageBackend)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	heights, err := ledger.NewClock(c.LedgerGenesis, c.BlockInterval)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		registry:        services.NewRegistryService(db, rm, heights),
		shutdownTracing: shutdownTracing,
	}, nil
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
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.registry, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startSnapshotExporter(ctx context.Context) {
	client, err := snapshot.NewS3Client(ctx, snapshot.S3Settings{
		Region:       app.config.S3Region,
		AccessKey:    app.config.S3RootUser,
		SecretKey:    app.config.S3RootPassword,
		BaseEndpoint: app.config.S3BaseEndpoint,
	})
	if err != nil {
		app.logger.Error(ctx, "snapshot exporter disabled", "error", err)
		return
	}

	snapshot.NewExporter(app.registry, client, app.config.S3Bucket, app.logger).
		Run(ctx, app.config.SnapshotInterval)
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// gRPC server fails, then releases the database and tracing resources.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.SnapshotsEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startSnapshotExporter(ctx)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	if err := app.shutdownTracing(context.Background()); err != nil {
		app.logger.Error(ctx, "tracing shutdown error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
