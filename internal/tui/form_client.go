package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mlevashov/clientdesk/models"
)

type formClientModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormClientModel() formClientModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[2].Placeholder = "client"
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[0].Focus()

	return formClientModel{inputs: inputs}
}

func (m formClientModel) toRequest() models.NewClientRequest {
	return models.NewClientRequest{
		ID:       strings.TrimSpace(m.inputs[0].Value()),
		Name:     strings.TrimSpace(m.inputs[1].Value()),
		Role:     strings.TrimSpace(m.inputs[2].Value()),
		Password: m.inputs[3].Value(),
	}
}

func (m formClientModel) View() string {
	var b strings.Builder
	b.WriteString("ID:      [" + m.inputs[0].View() + "]\n")
	b.WriteString("Имя:     [" + m.inputs[1].View() + "]\n")
	b.WriteString("Роль:    [" + m.inputs[2].View() + "]\n")
	b.WriteString("Пароль:  [" + m.inputs[3].View() + "]\n\n")

	if m.submitting {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Сохранить]")
	}

	return renderPage("НОВЫЙ КЛИЕНТ", b.String(), "esc: отмена │ tab: след. поле │ enter: сохранить")
}
