package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// formProfileModel edits one profile field at a time. The value is sent as a
// string; existing fields with the same key are overwritten by the merge.
type formProfileModel struct {
	clientID   string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormProfileModel(clientID string) formProfileModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "tier"
	inputs[0].Focus()

	return formProfileModel{clientID: clientID, inputs: inputs}
}

func (m formProfileModel) toUpdates() map[string]any {
	return map[string]any{
		strings.TrimSpace(m.inputs[0].Value()): m.inputs[1].Value(),
	}
}

func (m formProfileModel) View() string {
	var b strings.Builder
	b.WriteString("Клиент:   " + m.clientID + "\n\n")
	b.WriteString("Ключ:     [" + m.inputs[0].View() + "]\n")
	b.WriteString("Значение: [" + m.inputs[1].View() + "]\n\n")

	if m.submitting {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Сохранить]")
	}

	return renderPage("ПРОФИЛЬ", b.String(), "esc: отмена │ tab: след. поле │ enter: сохранить")
}
