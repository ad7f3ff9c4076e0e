package service

import (
	"context"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/utils"
)

// ClientServices holds the single owned instance of every client-side
// service. It is built once at start-up and passed to the UI explicitly.
type ClientServices struct {
	Configuration *ServerConfiguration
	Lock          *SessionLockController
	Portal        ClientPortalService
}

func NewClientServices(ctx context.Context, cfg *config.ClientConfig, storages *store.ClientStorages, challenger BiometricChallenger, logger *logger.Logger) *ClientServices {
	configuration := NewServerConfiguration(ctx, storages.Preferences, storages.Secrets, logger)
	lock := NewSessionLockController(ctx, storages.Secrets, challenger, configuration, utils.SystemClock(), cfg.Lock.InactivityThreshold, logger)
	portal := adapter.NewHTTPPortalAdapter(cfg.Adapter, configuration, logger)

	return &ClientServices{
		Configuration: configuration,
		Lock:          lock,
		Portal:        NewClientPortalService(portal, lock, configuration, logger),
	}
}
