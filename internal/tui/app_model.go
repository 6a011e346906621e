package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevashov/clientdesk/internal/adapter"
	"github.com/mlevashov/clientdesk/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenFormClient
	screenFormProfile
)

type appModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	currentScreen screen

	login       loginModel
	list        listModel
	detail      detailModel
	formClient  formClientModel
	formProfile formProfileModel

	showError    bool
	errorOverlay errorOverlayModel
	err          error
}

func newAppModel(ctx context.Context, portal adapter.PortalAdapter) appModel {
	return appModel{
		ctx:           ctx,
		portal:        portal,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.session = msg.response.Session
		m.list.loading = true
		m.currentScreen = screenList
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadClients())
	case logoutDoneMsg:
		m.currentScreen = screenLogin
		m.login = newLoginModel()
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
		}
		return m, textinput.Blink
	case clientsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.clients = msg.clients
		if m.list.idx >= len(m.list.clients) {
			m.list.idx = len(m.list.clients) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case entriesLoadedMsg:
		if msg.clientID != m.detail.client.ID {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.detail.entries = msg.entries
		return m, nil
	case clientSavedMsg:
		m.formClient.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadClients())
	case profileSavedMsg:
		m.formProfile.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadClients())
	case copiedMsg:
		m.list.status = "Скопировано!"
		m.detail.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenFormClient:
		return m.updateFormClient(msg)
	case screenFormProfile:
		return m.updateFormProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenFormClient:
		body = m.formClient.View()
	case screenFormProfile:
		body = m.formProfile.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			payload := m.login.toPayload()
			if payload.ID == "" || payload.Name == "" {
				m.showErrorf("ID и имя обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(payload)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.clients)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		client, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{client: client, loading: m.list.session.IsAdmin()}
		m.currentScreen = screenDetail
		if m.detail.loading {
			return m, m.cmdLoadEntries(client.ID)
		}
	case key.Matches(keyMsg, keys.newItem):
		m.formClient = newFormClientModel()
		m.currentScreen = screenFormClient
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadClients())
	case key.Matches(keyMsg, keys.copy):
		client, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(client.ID)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.listQuit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		m.formProfile = newFormProfileModel(m.detail.client.ID)
		m.currentScreen = screenFormProfile
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.client.ID)
	}

	return m, nil
}

func (m appModel) updateFormClient(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formClient.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formClient.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formClient.submitting {
				return m, nil
			}
			req := m.formClient.toRequest()
			if req.ID == "" || req.Name == "" {
				m.showErrorf("ID и имя обязательны")
				return m, nil
			}
			m.formClient.submitting = true
			return m, m.cmdAddClient(req)
		}
	}

	var cmd tea.Cmd
	m.formClient.inputs[m.formClient.focus], cmd = m.formClient.inputs[m.formClient.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formProfile.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formProfile.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formProfile.submitting {
				return m, nil
			}
			updates := m.formProfile.toUpdates()
			if _, empty := updates[""]; empty {
				m.showErrorf("Ключ обязателен")
				return m, nil
			}
			m.formProfile.submitting = true
			return m, m.cmdUpdateProfile(m.formProfile.clientID, updates)
		}
	}

	var cmd tea.Cmd
	m.formProfile.inputs[m.formProfile.focus], cmd = m.formProfile.inputs[m.formProfile.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(payload models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		response, err := portal.Login(ctx, payload)
		return loginDoneMsg{response: response, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		return logoutDoneMsg{err: portal.Logout(ctx)}
	}
}

func (m appModel) cmdLoadClients() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		clients, err := portal.Clients(ctx)
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

func (m appModel) cmdLoadEntries(clientID string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		entries, err := portal.LoginEntries(ctx, clientID)
		return entriesLoadedMsg{clientID: clientID, entries: entries, err: err}
	}
}

func (m appModel) cmdAddClient(req models.NewClientRequest) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		return clientSavedMsg{err: portal.AddClient(ctx, req)}
	}
}

func (m appModel) cmdUpdateProfile(clientID string, updates map[string]any) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		return profileSavedMsg{err: portal.UpdateClientProfile(ctx, clientID, updates)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clientSavedMsg{err: fmt.Errorf("копирование в буфер: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formClientModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formClientModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formProfileModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formProfileModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
