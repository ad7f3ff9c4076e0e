package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/tui"
	"github.com/MKhiriev/go-portal-client/internal/workers"
)

type app struct {
	tui      *tui.TUI
	workers  *workers.Workers
	storages *store.ClientStorages
	logger   *logger.Logger
}

func NewApp(ui *tui.TUI, workers *workers.Workers, storages *store.ClientStorages, logger *logger.Logger) Client {
	return &app{tui: ui, workers: workers, storages: storages, logger: logger}
}

// Run starts the background workers, blocks in the TUI and releases
// everything once the operator quits or a stop signal arrives.
func (a *app) Run() error {
	// SIGINT is left to the TUI, which reads ctrl+c as a key press.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	a.workers.Start(ctx)
	defer func() {
		a.workers.Stop()
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "app.Run").Msg("error closing storages")
		}
		a.logger.Info().Msg("client stopped")
	}()

	a.logger.Info().Msg("client started")
	return a.tui.Run(ctx)
}
