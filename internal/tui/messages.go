package tui

import (
	"github.com/mlevashov/clientdesk/models"
)

type loginDoneMsg struct {
	response models.LoginResponse
	err      error
}

type logoutDoneMsg struct {
	err error
}

type clientsLoadedMsg struct {
	clients []models.ClientView
	err     error
}

type entriesLoadedMsg struct {
	clientID string
	entries  []models.LoginEntry
	err      error
}

type clientSavedMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
