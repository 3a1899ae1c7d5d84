// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel asks for a login and a password. A successful [LoginResult]
// is picked up by [RootModel], which ends the sign-in program.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	form credentialForm
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialForm(
			newFormField("Login", "login", 64, false),
			newFormField("Password", "password", 256, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.fail(humanizeError(result.Err))
		return m, nil
	}

	action, cmd := m.form.update(msg)
	switch action {
	case formBack:
		return m, navigate(pageMenu)
	case formSubmit:
		login, pass := m.form.trimmed(0), m.form.value(1)
		if login == "" || pass == "" {
			m.form.fail("Login and password are required")
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdLogin(models.User{Login: login, Password: pass})
	}
	return m, cmd
}

func (m *LoginModel) View() string {
	return m.form.view("LOG IN", "Log in", "Logging in...")
}

func (m *LoginModel) cmdLogin(user models.User) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		token, err := auth.Login(ctx, user)
		return LoginResult{Err: err, Login: user.Login, Token: token}
	}
}
