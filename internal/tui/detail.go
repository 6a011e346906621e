package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mlevashov/clientdesk/models"
)

type detailModel struct {
	client  models.ClientView
	entries []models.LoginEntry
	loading bool
	status  string
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID:     %s\n", m.client.ID))
	b.WriteString(fmt.Sprintf("Имя:    %s\n", m.client.Name))
	if m.client.Role != "" {
		b.WriteString(fmt.Sprintf("Роль:   %s\n", m.client.Role))
	}
	if m.client.PasswordHash != nil {
		b.WriteString("Пароль: установлен\n")
	}

	b.WriteString("\nПрофиль:\n")
	if len(m.client.Profile) == 0 {
		b.WriteString("  -\n")
	} else {
		for _, key := range sortedKeys(m.client.Profile) {
			b.WriteString(fmt.Sprintf("  %s: %v\n", key, m.client.Profile[key]))
		}
	}

	b.WriteString("\nИстория входов:\n")
	if m.loading {
		b.WriteString("  Загрузка...\n")
	} else if len(m.entries) == 0 {
		b.WriteString("  -\n")
	} else {
		for _, entry := range m.entries {
			line := fmt.Sprintf("  %s — %s", entry.Time.Format("2006-01-02 15:04:05"), entry.By)
			if entry.Note != nil && *entry.Note != "" {
				line += " (" + *entry.Note + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("КЛИЕНТ", strings.TrimRight(b.String(), "\n"),
		"e: изменить профиль │ c: копир. id │ esc: назад")
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
