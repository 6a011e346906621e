package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mlevashov/clientdesk/models"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "A1"
	inputs[1].Placeholder = "Имя"
	inputs[2].Placeholder = "admin"
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[0].Focus()

	return loginModel{inputs: inputs}
}

func (m loginModel) toPayload() models.LoginRequest {
	return models.LoginRequest{
		ID:       strings.TrimSpace(m.inputs[0].Value()),
		Name:     strings.TrimSpace(m.inputs[1].Value()),
		Role:     strings.TrimSpace(m.inputs[2].Value()),
		Password: m.inputs[3].Value(),
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("ID:      [" + m.inputs[0].View() + "]\n")
	b.WriteString("Имя:     [" + m.inputs[1].View() + "]\n")
	b.WriteString("Роль:    [" + m.inputs[2].View() + "]\n")
	b.WriteString("Пароль:  [" + m.inputs[3].View() + "]\n\n")

	if m.submitting {
		b.WriteString("[Вход...]")
	} else {
		b.WriteString("[Войти]")
	}

	return renderPage("CLIENTDESK — ВХОД", b.String(), "tab: след. поле │ enter: войти")
}
