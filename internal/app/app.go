// Package app wires the configured components together and manages their
// lifecycle: the snapshot ticker, the optional archive database, and the
// REST controller.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/chandrakala/vedicclock/internal/controllers/restserver"
	"github.com/chandrakala/vedicclock/internal/database"
	"github.com/chandrakala/vedicclock/internal/log"
	"github.com/chandrakala/vedicclock/internal/ticker"
	"github.com/chandrakala/vedicclock/pkg/config"
	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

// App represents the main application.
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance.
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run starts the application and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Optional snapshot archive
	var archive func(*vedictime.Snapshot) error
	var archiveEvery = a.cfg.TickInterval()
	if a.cfg.Archive != nil {
		dbClient := database.NewClient(a.logger)
		if err := dbClient.Connect(a.cfg.Archive.ConnectionString); err != nil {
			return err
		}
		defer dbClient.Close()
		archive = dbClient.SaveSnapshot
		archiveEvery = a.cfg.Archive.ArchiveInterval()
	}

	observer := vedictime.Location{
		Latitude:  a.cfg.Observer.Latitude,
		Longitude: a.cfg.Observer.Longitude,
	}
	tk := ticker.New(observer, a.cfg.TickInterval(), archive, archiveEvery, a.logger)
	tk.Run(ctx, &wg)

	if a.cfg.RESTServer != nil {
		ctrl, err := restserver.NewController(ctx, &wg, *a.cfg.RESTServer, a.cfg.Observer, tk.Holder(), a.logger)
		if err != nil {
			return err
		}
		if err := ctrl.StartController(); err != nil {
			return err
		}
	}

	log.Info("Application started successfully")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
