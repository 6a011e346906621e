package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/adapter"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/tui"
)

// App runs the admin console on top of a portal adapter.
type App struct {
	portal adapter.PortalAdapter
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(portal adapter.PortalAdapter, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if portal == nil || ui == nil {
		return nil, errors.New("portal adapter and ui are required")
	}
	return &App{portal: portal, ui: ui, logger: log}, nil
}

// Run drives the console until the operator quits. The token is dropped on
// the way out so a recycled process never reuses a stale session.
func (a *App) Run(ctx context.Context) error {
	defer a.portal.SetToken("")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("admin console: %w", err)
	}
	return nil
}
