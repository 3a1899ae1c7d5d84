package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formAction is what a key press asks the owning page to do.
type formAction int

const (
	formNone formAction = iota
	formBack
	formSubmit
)

type formField struct {
	label string
	input textinput.Model
}

// credentialForm holds the text inputs shared by the sign-in pages.
type credentialForm struct {
	fields     []formField
	focus      int
	submitting bool
	errMsg     string
}

func newFormField(label, placeholder string, limit int, secret bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return formField{label: label, input: in}
}

func newCredentialForm(fields ...formField) credentialForm {
	f := credentialForm{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *credentialForm) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *credentialForm) trimmed(i int) string {
	return strings.TrimSpace(f.value(i))
}

// update moves focus on tab, reports esc and enter to the caller and
// feeds every other message to the focused input.
func (f *credentialForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			f.submitting = false
			f.errMsg = ""
			return formBack, nil
		case key.Matches(k, keys.tab):
			f.moveFocus(1)
			return formNone, nil
		case key.Matches(k, keys.backtab):
			f.moveFocus(-1)
			return formNone, nil
		case key.Matches(k, keys.enter):
			if f.submitting {
				return formNone, nil
			}
			return formSubmit, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return formNone, cmd
}

func (f *credentialForm) moveFocus(step int) {
	n := len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = ((f.focus+step)%n + n) % n
	f.fields[f.focus].input.Focus()
}

func (f *credentialForm) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f *credentialForm) fail(reason string) {
	f.submitting = false
	f.errMsg = reason
}

func (f *credentialForm) view(title, action, pending string) string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for _, field := range f.fields {
		b.WriteString(field.label)
		b.WriteString(strings.Repeat(" ", max(1, 10-len(field.label))))
		b.WriteString("│ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	b.WriteString("\n[")
	if f.submitting {
		b.WriteString(pending)
	} else {
		b.WriteString(action)
	}
	b.WriteString("]\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
