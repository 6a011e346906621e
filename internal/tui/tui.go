// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Levashov

// Package tui implements the interactive admin console of clientdesk.
//
// The console talks to the server exclusively through
// [adapter.PortalAdapter] and walks the operator through a login form, the
// client list, a per-client detail view with login history, and forms for
// creating clients and patching their profiles.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevashov/clientdesk/internal/adapter"
	"github.com/mlevashov/clientdesk/internal/logger"
)

// ErrUserQuit is returned from the program loop when the operator quits
// deliberately. Callers treat it as a normal exit.
var ErrUserQuit = errors.New("пользователь вышел из программы")

type TUI struct {
	portal adapter.PortalAdapter
}

func New(portal adapter.PortalAdapter, _ *logger.Logger) (*TUI, error) {
	if portal == nil {
		return nil, errors.New("portal adapter is required")
	}
	return &TUI{portal: portal}, nil
}

// Run starts the console and blocks until the operator quits or the program
// fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.portal)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
