package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the first page of the sign-in program.
type MenuModel struct {
	items []menuItem
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{items: []menuItem{
		{label: "Log in", page: pageLogin},
		{label: "Register", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.up):
		m.idx = max(0, m.idx-1)
	case key.Matches(k, keys.down):
		m.idx = min(len(m.items)-1, m.idx+1)
	case key.Matches(k, keys.enter):
		return m, navigate(m.items[m.idx].page)
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString("Notes, journals and tasks in your terminal.\n\n")
	for i, item := range m.items {
		line := cursor(i == m.idx) + item.label
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("SUMMARIUM", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
