package service

import (
	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/store"
)

// Services groups the feed server services handed to the HTTP handler and
// the status worker.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	StatusHub       StatusHub
	AppInfoService  AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hub := NewStatusHub(logger)
	documents := NewDocumentValidationService().Wrap(
		NewDocumentService(repositories, hub, cfg.Feed, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		DocumentService: documents,
		StatusHub:       hub,
		AppInfoService:  appInfo,
	}, nil
}
