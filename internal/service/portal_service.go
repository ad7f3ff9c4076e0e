package service

import (
	"context"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/models"
)

type clientPortalService struct {
	portal adapter.PortalAdapter
	lock   LockPhaseReader
	config ConfigurationReader

	logger *logger.Logger
}

// NewClientPortalService returns a [ClientPortalService] that gates every
// adapter call on the session lock and the server configuration.
func NewClientPortalService(portal adapter.PortalAdapter, lock LockPhaseReader, config ConfigurationReader, logger *logger.Logger) ClientPortalService {
	return &clientPortalService{
		portal: portal,
		lock:   lock,
		config: config,
		logger: logger,
	}
}

func (s *clientPortalService) Overview(ctx context.Context) (models.Overview, error) {
	if err := s.gate(); err != nil {
		return models.Overview{}, err
	}

	overview, err := s.portal.Overview(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientPortalService.Overview").Msg("error fetching overview")
		return models.Overview{}, mapAdapterError(err)
	}
	return overview, nil
}

func (s *clientPortalService) Ping(ctx context.Context) error {
	if err := s.gate(); err != nil {
		return err
	}
	return mapAdapterError(s.portal.Ping(ctx))
}

func (s *clientPortalService) BotDashboardURL(botID string) (string, error) {
	if err := s.gate(); err != nil {
		return "", err
	}

	url, err := s.portal.BotDashboardURL(botID)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return url, nil
}

func (s *clientPortalService) gate() error {
	if s.lock.Phase() != models.LockPhaseUnlocked {
		return ErrSessionLocked
	}
	if !s.config.IsConfigured() {
		return ErrNotConfigured
	}
	return nil
}
