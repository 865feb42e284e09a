// Package tui is the terminal front end of the statement list client: a
// single screen with the statements and certificates lists of one company.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/models"
)

type TUI struct {
	lists     service.ListService
	details   StatementDetails
	bridge    *Bridge
	companyID string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal UI. bridge must be the listener lists was
// created with; Run attaches it to the program.
func New(lists service.ListService, details StatementDetails, bridge *Bridge, companyID string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		lists:     lists,
		details:   details,
		bridge:    bridge,
		companyID: companyID,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the list screen until the user quits or ctx is cancelled. The
// list session must already be started.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.lists, t.details, t.companyID, t.buildInfo, t.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.bridge.Attach(program.Send)
	defer t.bridge.Attach(nil)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
