package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldCount
)

var formLabels = [fieldCount]string{
	"Title:   ",
	"Username:",
	"Password:",
	"URL:     ",
	"Notes:   ",
}

type formModel struct {
	inputs     []textinput.Model
	focus      int
	id         string
	legacy     bool
	reveal     bool
	gen        models.GeneratorOptions
	submitting bool
	err        string
}

// newFormModel prepares the add/edit form. A zero form with an empty ID is a
// new entry.
func newFormModel(form models.VaultForm, legacy bool) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 512
	}
	inputs[fieldTitle].CharLimit = 100
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	inputs[fieldTitle].SetValue(form.Title)
	inputs[fieldUsername].SetValue(form.Username)
	inputs[fieldPassword].SetValue(form.Password)
	inputs[fieldURL].SetValue(form.URL)
	inputs[fieldNotes].SetValue(form.Notes)
	inputs[fieldTitle].Focus()

	return formModel{
		inputs: inputs,
		id:     form.ID,
		legacy: legacy,
		gen:    models.DefaultGeneratorOptions(),
	}
}

func (m formModel) editing() bool {
	return m.id != ""
}

func (m formModel) toForm() models.VaultForm {
	return models.VaultForm{
		ID:       m.id,
		Title:    strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Username: m.inputs[fieldUsername].Value(),
		Password: m.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(m.inputs[fieldURL].Value()),
		Notes:    m.inputs[fieldNotes].Value(),
	}
}

func (m *formModel) move(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) setPassword(password string) {
	m.inputs[fieldPassword].SetValue(password)
	m.inputs[fieldPassword].CursorEnd()
}

func (m *formModel) toggleReveal() {
	m.reveal = !m.reveal
	if m.reveal {
		m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
		return
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
}

// adjustLength changes the generated password length by step within the
// generator bounds.
func (m *formModel) adjustLength(step int) {
	m.gen.Length = min(max(m.gen.Length+step, crypto.MinPasswordLength), crypto.MaxPasswordLength)
}

func (m *formModel) toggleLookAlike() {
	m.gen.ExcludeLookAlike = !m.gen.ExcludeLookAlike
}

func (m formModel) generatorLine() string {
	lookAlike := "allowed"
	if m.gen.ExcludeLookAlike {
		lookAlike = "excluded"
	}
	return fmt.Sprintf("Generator: %d chars, look-alikes %s", m.gen.Length, lookAlike)
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	title := "NEW ENTRY"
	if m.editing() {
		title = "EDIT: " + fitText(m.inputs[fieldTitle].Value(), 40)
	}

	var b strings.Builder
	if m.legacy {
		b.WriteString(legacyStyle.Render("Legacy entry: saving re-encrypts it with your account key."))
		b.WriteString("\n\n")
	}
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + formLabels[i] + " [" + in.View() + "]\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.generatorLine()) + "\n")
	if m.submitting {
		b.WriteString("\nSaving...")
	}
	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err))
	}

	return renderPage(titleStyle.Render(title), b.String(),
		"tab: next  ctrl+g: generate  alt+up/down: length  ctrl+l: look-alikes  ctrl+t: show/hide  enter: save  esc: cancel")
}
