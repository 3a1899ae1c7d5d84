package tui

import (
	"context"

	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minLoginLength    = 3
	minPasswordLength = 6
)

// RegisterModel creates an account. The server signs the new user in
// right away, so a successful [RegisterResult] ends the flow like a login.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	form credentialForm
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialForm(
			newFormField("Name", "name (optional)", 128, false),
			newFormField("Login", "login", 64, false),
			newFormField("Password", "password", 256, true),
			newFormField("Repeat", "repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.form.fail(humanizeError(result.Err))
		if result.Err == nil {
			m.form.reset()
		}
		return m, nil
	}

	action, cmd := m.form.update(msg)
	switch action {
	case formBack:
		return m, navigate(pageMenu)
	case formSubmit:
		user := models.User{
			Name:     m.form.trimmed(0),
			Login:    m.form.trimmed(1),
			Password: m.form.value(2),
		}
		if reason := checkRegistration(user, m.form.value(3)); reason != "" {
			m.form.fail(reason)
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdRegister(user)
	}
	return m, cmd
}

// checkRegistration returns the first problem with the form, or "".
func checkRegistration(user models.User, repeat string) string {
	switch {
	case len(user.Login) < minLoginLength:
		return "Login must be at least 3 characters"
	case len(user.Password) < minPasswordLength:
		return "Password must be at least 6 characters"
	case user.Password != repeat:
		return "Passwords do not match"
	}
	return ""
}

func (m *RegisterModel) View() string {
	return m.form.view("REGISTER", "Register", "Registering...")
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		token, err := auth.Register(ctx, user)
		return RegisterResult{Err: err, Login: user.Login, Token: token}
	}
}
