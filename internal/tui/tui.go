package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	overview  overviewSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, overview overviewSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, overview: overview, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the operator quits. Focus reporting is enabled so that
// switching away from the terminal counts as going to the background.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return err
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	lock := t.services.Lock
	settings := t.services.Configuration

	pages := map[string]tea.Model{
		pageLock:     NewLockModel(ctx, lock, settings),
		pageSettings: NewSettingsModel(ctx, settings, lock, t.services.Portal),
		pageOverview: NewOverviewModel(ctx, t.services.Portal, t.overview),
	}

	return NewRootModel(pages, startPage(lock, settings), lock, settings, t.overview, t.buildInfo)
}

func startPage(lock sessionLock, settings serverSettings) string {
	switch {
	case lock.Phase() != models.LockPhaseUnlocked:
		return pageLock
	case !settings.IsConfigured():
		return pageSettings
	default:
		return pageOverview
	}
}
