// Package tui is the terminal interface of the Summarium client, built on
// Bubble Tea.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	editorCfg config.ClientEditor
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, editorCfg config.ClientEditor, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, editorCfg: editorCfg, buildInfo: buildInfo, logger: logger}
}

// LoginFlow runs the login and register pages until the user is signed in
// or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(ctx, t.services.AuthService, pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Token{}, ErrUserQuit
	}

	return result.token, nil
}

// MainLoop runs the notes, journal and tasks screens. It reports whether
// the user asked to log out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	bridge := &programBridge{}
	model := newMainLoopModel(ctx, t.services, t.editorCfg, bridge, t.logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.attach(program)
	t.services.Gateway.SetNotifier(func(message string) {
		bridge.Send(toastMsg{text: message})
	})
	defer t.services.Gateway.SetNotifier(nil)

	finalModel, runErr := program.Run()
	bridge.detach()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	result.closeEditor()
	return result.logout, nil
}

// programBridge delivers messages from background goroutines, such as
// autosave timers and AI streams, into the running program. Messages keep
// their order.
type programBridge struct {
	mu      sync.Mutex
	p       *tea.Program
	pending []tea.Msg
	wake    chan struct{}
}

func (b *programBridge) attach(p *tea.Program) {
	b.mu.Lock()
	b.p = p
	b.wake = make(chan struct{}, 1)
	wake := b.wake
	b.mu.Unlock()

	go b.pump(p, wake)
}

// detach drops messages sent after the program has finished.
func (b *programBridge) detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.p == nil {
		return
	}
	b.p = nil
	b.pending = nil
	close(b.wake)
}

// Send never blocks the caller: it may run on the program's own goroutine
// when an editor is flushed from Update.
func (b *programBridge) Send(msg tea.Msg) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.p == nil {
		return
	}
	b.pending = append(b.pending, msg)
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *programBridge) pump(p *tea.Program, wake <-chan struct{}) {
	for range wake {
		b.mu.Lock()
		batch := b.pending
		b.pending = nil
		b.mu.Unlock()

		for _, msg := range batch {
			p.Send(msg)
		}
	}
}
