package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevashov/clientdesk/internal/mock"
	"github.com/mlevashov/clientdesk/models"
)

func newTestAppModel(t *testing.T) (appModel, *mock.MockPortalAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalAdapter(ctrl)
	return newAppModel(context.Background(), portal), portal
}

func TestAppModel_StartsOnLoginScreen(t *testing.T) {
	m, _ := newTestAppModel(t)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Contains(t, m.View(), "ВХОД")
}

func TestAppModel_LoginDoneSwitchesToList(t *testing.T) {
	m, portal := newTestAppModel(t)
	portal.EXPECT().Clients(gomock.Any()).Return([]models.ClientView{{ID: "A1", Name: "Admin"}}, nil)

	updated, cmd := m.Update(loginDoneMsg{response: models.LoginResponse{
		Token:   "token",
		Session: models.Session{ID: "A1", Name: "Admin", Role: models.RoleAdmin},
	}})
	m = updated.(appModel)

	assert.Equal(t, screenList, m.currentScreen)
	assert.True(t, m.list.loading)
	require.NotNil(t, cmd)
	assert.True(t, runBatchCmd(t, cmd))
}

// runBatchCmd executes a batched command returned by Update, running each
// sub-command, and reports whether one of them produced a clientsLoadedMsg.
func runBatchCmd(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var sawClientsLoaded bool
	for _, sub := range batch {
		if _, ok := sub().(clientsLoadedMsg); ok {
			sawClientsLoaded = true
		}
	}
	return sawClientsLoaded
}

func TestAppModel_LoginErrorShowsOverlay(t *testing.T) {
	m, _ := newTestAppModel(t)

	updated, _ := m.Update(loginDoneMsg{err: errors.New("dial tcp: connection refused")})
	m = updated.(appModel)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Сервер недоступен")
}

func TestAppModel_ClientsLoaded(t *testing.T) {
	m, _ := newTestAppModel(t)
	m.currentScreen = screenList
	m.list.loading = true

	updated, _ := m.Update(clientsLoadedMsg{clients: []models.ClientView{
		{ID: "A1", Name: "Admin", Role: models.RoleAdmin},
		{ID: "c1", Name: "Bob"},
	}})
	m = updated.(appModel)

	assert.False(t, m.list.loading)
	assert.Len(t, m.list.clients, 2)
	assert.Contains(t, m.View(), "c1")
}

func TestAppModel_QuitFromAnyScreen(t *testing.T) {
	m, _ := newTestAppModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(appModel)

	assert.ErrorIs(t, m.err, ErrUserQuit)
	require.NotNil(t, cmd)
}

func TestAppModel_EnterOpensDetailAndLoadsEntriesForAdmin(t *testing.T) {
	m, portal := newTestAppModel(t)
	m.currentScreen = screenList
	m.list.loading = false
	m.list.session = models.Session{ID: "A1", Name: "Admin", Role: models.RoleAdmin}
	m.list.clients = []models.ClientView{{ID: "c1", Name: "Bob"}}

	portal.EXPECT().LoginEntries(gomock.Any(), "c1").Return([]models.LoginEntry{{By: "Bob"}}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(appModel)

	assert.Equal(t, screenDetail, m.currentScreen)
	assert.True(t, m.detail.loading)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(appModel)
	assert.False(t, m.detail.loading)
	require.Len(t, m.detail.entries, 1)
	assert.Equal(t, "Bob", m.detail.entries[0].By)
}

func TestAppModel_EnterSkipsEntriesForNonAdmin(t *testing.T) {
	m, _ := newTestAppModel(t)
	m.currentScreen = screenList
	m.list.loading = false
	m.list.session = models.Session{ID: "c1", Name: "Bob", Role: models.RoleClient}
	m.list.clients = []models.ClientView{{ID: "c1", Name: "Bob"}}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(appModel)

	assert.Equal(t, screenDetail, m.currentScreen)
	assert.False(t, m.detail.loading)
	assert.Nil(t, cmd)
}

func TestAppModel_StaleEntriesAreIgnored(t *testing.T) {
	m, _ := newTestAppModel(t)
	m.currentScreen = screenDetail
	m.detail = detailModel{client: models.ClientView{ID: "c2"}, loading: true}

	updated, _ := m.Update(entriesLoadedMsg{clientID: "c1", entries: []models.LoginEntry{{By: "Bob"}}})
	m = updated.(appModel)

	assert.True(t, m.detail.loading)
	assert.Empty(t, m.detail.entries)
}

func TestAppModel_ClientSavedReturnsToList(t *testing.T) {
	m, portal := newTestAppModel(t)
	m.currentScreen = screenFormClient
	m.formClient = newFormClientModel()
	m.formClient.submitting = true

	portal.EXPECT().Clients(gomock.Any()).Return(nil, nil)

	updated, cmd := m.Update(clientSavedMsg{})
	m = updated.(appModel)

	assert.Equal(t, screenList, m.currentScreen)
	require.NotNil(t, cmd)
	assert.True(t, runBatchCmd(t, cmd))
}

func TestAppModel_ClientSaveErrorStaysOnForm(t *testing.T) {
	m, _ := newTestAppModel(t)
	m.currentScreen = screenFormClient
	m.formClient = newFormClientModel()
	m.formClient.submitting = true

	updated, _ := m.Update(clientSavedMsg{err: errors.New("conflict: client already exists")})
	m = updated.(appModel)

	assert.Equal(t, screenFormClient, m.currentScreen)
	assert.False(t, m.formClient.submitting)
	assert.True(t, m.showError)
}

func TestLoginModel_ToPayloadTrims(t *testing.T) {
	m := newLoginModel()
	m.inputs[0].SetValue("  A1 ")
	m.inputs[1].SetValue(" Admin")
	m.inputs[2].SetValue("admin ")
	m.inputs[3].SetValue("secret")

	payload := m.toPayload()
	assert.Equal(t, models.LoginRequest{ID: "A1", Name: "Admin", Role: "admin", Password: "secret"}, payload)
}

func TestFormProfileModel_ToUpdates(t *testing.T) {
	m := newFormProfileModel("c1")
	m.inputs[0].SetValue("tier")
	m.inputs[1].SetValue("studio")

	assert.Equal(t, map[string]any{"tier": "studio"}, m.toUpdates())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "very lo...", fitText("very long value", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен",
		humanizeServerUnavailableError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "boom", humanizeServerUnavailableError(errors.New("boom")))
}
