package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newItem key.Binding
	delete  key.Binding
	archive key.Binding
	showArc key.Binding
	filter  key.Binding
	status  key.Binding
	today   key.Binding
	search  key.Binding
	notes   key.Binding
	journal key.Binding
	tasks   key.Binding
	yes     key.Binding
	no      key.Binding

	// editor
	save     key.Binding
	suggest  key.Binding
	versions key.Binding
	assist   key.Binding
	details  key.Binding
	copy     key.Binding
	focus    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("L")),
	newItem: key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	archive: key.NewBinding(key.WithKeys("a")),
	showArc: key.NewBinding(key.WithKeys("A")),
	filter:  key.NewBinding(key.WithKeys("/")),
	status:  key.NewBinding(key.WithKeys("f")),
	today:   key.NewBinding(key.WithKeys("t")),
	search:  key.NewBinding(key.WithKeys("s")),
	notes:   key.NewBinding(key.WithKeys("1")),
	journal: key.NewBinding(key.WithKeys("2")),
	tasks:   key.NewBinding(key.WithKeys("3")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),

	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	suggest:  key.NewBinding(key.WithKeys("tab")),
	versions: key.NewBinding(key.WithKeys("ctrl+o")),
	assist:   key.NewBinding(key.WithKeys("ctrl+g")),
	details:  key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	focus:    key.NewBinding(key.WithKeys("ctrl+t")),
}
