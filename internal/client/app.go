package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-statement-list/internal/adapter"
	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/service"
)

type App struct {
	adapter  adapter.ServerAdapter
	services *service.ClientServices
	ui       UI
	cfg      config.ClientConfig
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, services *service.ClientServices, ui UI, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || services == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		adapter:  serverAdapter,
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run implements [Client]. It stops on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	companyID := a.cfg.App.CompanyID

	if a.adapter.Token() == "" {
		token, err := a.adapter.Login(ctx, companyID)
		if err != nil {
			return fmt.Errorf("login as %s: %w", companyID, err)
		}
		event := a.logger.Info().Str("company_id", companyID)
		if token.ExpiresAt != nil {
			event = event.Time("expires_at", token.ExpiresAt.Time)
		}
		event.Msg("token issued")
	}

	lists := a.services.ListService
	if err := lists.Start(ctx); err != nil {
		return fmt.Errorf("start list session: %w", err)
	}
	defer lists.Stop()

	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("company_id", companyID).Msg("client stopped")
	return nil
}
