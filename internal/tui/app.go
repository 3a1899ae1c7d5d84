package tui

import (
	"context"

	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

var (
	aboutKey = key.NewBinding(key.WithKeys("v"))
	abortKey = key.NewBinding(key.WithKeys("ctrl+c"))
)

// RootModel routes the sign-in program between its pages. It owns ctrl+c,
// the about window opened from the menu, [NavigateTo] and the final
// [LoginResult] or [RegisterResult] that ends the program.
type RootModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	pages map[string]tea.Model

	current tea.Model

	quitByUser bool
	token      models.Token

	buildInfo     models.AppBuildInfo
	showAbout     bool
	serverVersion string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, auth service.ClientAuthService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		auth:      auth,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, abortKey) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showAbout {
			if key.Matches(msg, keys.esc, aboutKey) {
				r.showAbout = false
			}
			return r, nil
		}
		if key.Matches(msg, aboutKey) && r.onMenu() {
			r.showAbout = true
			if r.serverVersion == "" {
				return r, r.cmdServerVersion()
			}
			return r, nil
		}

	case versionInfoMsg:
		r.serverVersion = msg.version
		if msg.err != nil {
			r.serverVersion = "unreachable"
		}
		return r, nil

	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.showAbout = false
		r.current = next
		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case LoginResult:
		if msg.Err == nil {
			return r.finish(msg.Token)
		}

	case RegisterResult:
		if msg.Err == nil {
			return r.finish(msg.Token)
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) finish(token models.Token) (tea.Model, tea.Cmd) {
	r.token = token
	return r, tea.Quit
}

func (r RootModel) View() string {
	switch {
	case r.showAbout:
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	case r.current == nil:
		return renderPage("SUMMARIUM", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.auth == nil {
		return nil
	}
	ctx, auth := r.ctx, r.auth
	return func() tea.Msg {
		version, err := auth.ServerVersion(ctx)
		return versionInfoMsg{version: version, err: err}
	}
}
