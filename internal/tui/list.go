package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/mlevashov/clientdesk/models"
)

type listModel struct {
	clients []models.ClientView
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	session models.Session
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.ClientView, bool) {
	if len(m.clients) == 0 || m.idx < 0 || m.idx >= len(m.clients) {
		return models.ClientView{}, false
	}
	return m.clients[m.idx], true
}

func roleMark(role string) string {
	if role == models.RoleAdmin {
		return "[A]"
	}
	return "[К]"
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Сессия: %s (%s)\n\n", m.session.Name, m.session.Role))

	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	} else if len(m.clients) == 0 {
		b.WriteString("Нет клиентов\n")
	} else {
		for i, client := range m.clients {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s — %s\n", cursor, roleMark(client.Role), client.ID, fitText(client.Name, 32)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("CLIENTDESK — КЛИЕНТЫ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новый │ r: обновить │ c: копир. id │ l: выйти из сессии │ q: выход")
}
