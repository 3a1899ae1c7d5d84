package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 3 * time.Second

// mainLoopModel is the signed-in part of the client: the three home lists,
// the search page and one editor at a time.
type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	editorCfg config.ClientEditor
	bridge    *programBridge
	logger    *logger.Logger

	tab          homeTab
	notes        []models.Note
	journals     []models.Journal
	tasks        []models.Task
	archived     bool
	statusFilter models.TaskStatus
	idx          int
	loading      bool

	filter    textinput.Model
	filtering bool

	confirmDelete bool

	editor *editorScreen
	search *searchScreen
	// selections keeps the selected version per entity across panels.
	selections map[string]string

	toast    string
	toastSeq int

	width, height int
	logout        bool
	lastEditorID  int
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, editorCfg config.ClientEditor, bridge *programBridge, log *logger.Logger) *mainLoopModel {
	filter := textinput.New()
	filter.Placeholder = "Filter"
	filter.CharLimit = 128
	filter.Prompt = "/ "

	return &mainLoopModel{
		ctx:        ctx,
		services:   services,
		editorCfg:  editorCfg,
		bridge:     bridge,
		logger:     log,
		filter:     filter,
		selections: make(map[string]string),
	}
}

func (m *mainLoopModel) nextEditorID() int {
	m.lastEditorID++
	return m.lastEditorID
}

func (m *mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdLoadJournals(), m.cmdLoadTasks())
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.editor != nil {
			m.editor.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case toastMsg:
		m.toastSeq++
		m.toast = msg.text
		seq := m.toastSeq
		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, toast(humanizeError(msg.err))
		}
		m.notes = msg.notes
		m.clampIndex()
		return m, nil

	case journalsLoadedMsg:
		if msg.err != nil {
			return m, toast(humanizeError(msg.err))
		}
		m.journals = msg.journals
		m.clampIndex()
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			return m, toast(humanizeError(msg.err))
		}
		m.tasks = msg.tasks
		m.clampIndex()
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			return m, toast("Delete failed: " + humanizeError(msg.err))
		}
		return m, m.cmdReload()

	case editorOpenedMsg:
		if msg.err != nil {
			return m, toast(humanizeError(msg.err))
		}
		var closePrev tea.Cmd
		if prev := m.editor; prev != nil {
			closePrev = func() tea.Msg {
				prev.session.Close()
				return flushedMsg{}
			}
		}
		m.editor = msg.screen
		m.editor.setSize(m.width, m.height)
		return m, tea.Batch(closePrev, textinput.Blink)

	case savedMsg:
		if m.editor != nil && m.editor.id == msg.editorID {
			m.editor.savedAt = msg.at
		}
		return m, nil

	case suggestionMsg:
		if m.editor == nil || m.editor.id != msg.editorID {
			return m, nil
		}
		m.editor.suggesting = false
		if msg.err != nil {
			return m, toast(humanizeError(msg.err))
		}
		m.editor.insert(msg.text)
		return m, nil

	case flushedMsg:
		return m, nil
	}

	if cmd, ok := m.handleTaskMsg(msg); ok {
		return m, cmd
	}
	if cmd, ok := m.handleAIMsg(msg); ok {
		return m, cmd
	}

	switch {
	case m.editor != nil:
		return m, m.updateEditor(msg)
	case m.search != nil:
		return m, m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m, m.updateHome(keyMsg)
}

func (m *mainLoopModel) updateHome(msg tea.KeyMsg) tea.Cmd {
	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(msg, keys.yes) {
			return m.cmdDeleteSelected()
		}
		return nil
	}

	if m.filtering {
		switch {
		case key.Matches(msg, keys.esc):
			m.filtering = false
			m.filter.SetValue("")
			m.filter.Blur()
			m.idx = 0
			return nil
		case key.Matches(msg, keys.enter):
			m.filtering = false
			m.filter.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.idx = 0
		return cmd
	}

	rows := m.rows()
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.switchTab((m.tab + 1) % homeTab(len(tabNames)))
	case key.Matches(msg, keys.backtab):
		m.switchTab((m.tab + homeTab(len(tabNames)) - 1) % homeTab(len(tabNames)))
	case key.Matches(msg, keys.notes):
		m.switchTab(tabNotes)
	case key.Matches(msg, keys.journal):
		m.switchTab(tabJournal)
	case key.Matches(msg, keys.tasks):
		m.switchTab(tabTasks)
	case key.Matches(msg, keys.filter):
		m.filtering = true
		return m.filter.Focus()
	case key.Matches(msg, keys.search):
		m.search = newSearchScreen()
		return textinput.Blink
	case key.Matches(msg, keys.today):
		m.switchTab(tabJournal)
		return m.cmdOpenToday()
	case key.Matches(msg, keys.newItem):
		switch m.tab {
		case tabNotes:
			return m.cmdNewNote()
		case tabJournal:
			return m.cmdOpenToday()
		case tabTasks:
			return m.cmdNewTask()
		}
	case key.Matches(msg, keys.showArc):
		if m.tab == tabNotes {
			m.archived = !m.archived
			m.idx = 0
			return m.cmdLoadNotes()
		}
	case key.Matches(msg, keys.status):
		if m.tab == tabTasks {
			m.statusFilter = nextStatusFilter(m.statusFilter)
			m.idx = 0
			return m.cmdLoadTasks()
		}
	case key.Matches(msg, keys.archive):
		if m.tab == tabNotes && m.idx < len(rows) {
			return m.cmdArchive(rows[m.idx].key, !m.archived)
		}
	case key.Matches(msg, keys.delete):
		if m.idx < len(rows) {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(rows) {
			return m.openRow(rows[m.idx])
		}
	}
	return nil
}

// nextStatusFilter cycles through no filter and every status.
func nextStatusFilter(current models.TaskStatus) models.TaskStatus {
	if current == "" {
		return models.TaskStatuses[0]
	}
	for i, s := range models.TaskStatuses {
		if s == current && i+1 < len(models.TaskStatuses) {
			return models.TaskStatuses[i+1]
		}
	}
	return ""
}

func (m *mainLoopModel) switchTab(tab homeTab) {
	m.tab = tab
	m.idx = 0
	m.filter.SetValue("")
}

func (m *mainLoopModel) rows() []listRow {
	var rows []listRow
	switch m.tab {
	case tabNotes:
		rows = noteRows(m.notes)
	case tabJournal:
		rows = journalRows(m.journals)
	case tabTasks:
		rows = taskRows(m.tasks)
	}
	return filterRows(rows, m.filter.Value())
}

func (m *mainLoopModel) clampIndex() {
	if n := len(m.rows()); m.idx >= n {
		m.idx = max(0, n-1)
	}
}

func (m *mainLoopModel) openRow(row listRow) tea.Cmd {
	switch row.kind {
	case models.KindNote:
		return m.cmdOpenNote(row.key)
	case models.KindJournal:
		return m.cmdOpenJournal(row.key)
	case models.KindTask:
		return m.cmdOpenTask(row.key)
	}
	return nil
}

func (m *mainLoopModel) cmdReload() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdLoadJournals(), m.cmdLoadTasks())
}

func (m *mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx, notes, archived := m.ctx, m.services.NoteService, m.archived
	m.loading = true
	return func() tea.Msg {
		list, err := notes.List(ctx, archived)
		return notesLoadedMsg{notes: list, err: err}
	}
}

func (m *mainLoopModel) cmdLoadJournals() tea.Cmd {
	ctx, journals := m.ctx, m.services.JournalService
	return func() tea.Msg {
		list, err := journals.List(ctx)
		return journalsLoadedMsg{journals: list, err: err}
	}
}

func (m *mainLoopModel) cmdLoadTasks() tea.Cmd {
	ctx, tasks, filter := m.ctx, m.services.TaskService, models.TaskFilter{Status: m.statusFilter}
	return func() tea.Msg {
		list, err := tasks.List(ctx, filter)
		return tasksLoadedMsg{tasks: list, err: err}
	}
}

func (m *mainLoopModel) cmdArchive(id string, archived bool) tea.Cmd {
	ctx, notes := m.ctx, m.services.NoteService
	return func() tea.Msg {
		_, err := notes.Archive(ctx, id, archived)
		return deletedMsg{kind: models.KindNote, err: err}
	}
}

func (m *mainLoopModel) cmdDeleteSelected() tea.Cmd {
	rows := m.rows()
	if m.idx >= len(rows) {
		return nil
	}
	row := rows[m.idx]
	ctx, s := m.ctx, m.services

	return func() tea.Msg {
		var err error
		switch row.kind {
		case models.KindNote:
			err = s.NoteService.Delete(ctx, row.key)
		case models.KindJournal:
			err = s.JournalService.Delete(ctx, row.key)
		case models.KindTask:
			err = s.TaskService.Delete(ctx, row.key)
		}
		return deletedMsg{kind: row.kind, err: err}
	}
}

func (m *mainLoopModel) View() string {
	var page string
	switch {
	case m.editor != nil:
		page = m.viewEditor()
	case m.search != nil:
		page = m.viewSearch()
	default:
		page = m.viewHome()
	}

	if m.toast != "" {
		page += "\n\n  " + toastStyle.Render(m.toast)
	}
	return appStyle.Render(page)
}

func (m *mainLoopModel) viewHome() string {
	var b strings.Builder
	b.WriteString(renderTabs(m.tab))
	b.WriteString("\n")

	switch {
	case m.tab == tabNotes && m.archived:
		b.WriteString(helpStyle.Render("archived notes"))
		b.WriteString("\n")
	case m.tab == tabTasks && m.statusFilter != "":
		b.WriteString(helpStyle.Render("status: " + string(m.statusFilter)))
		b.WriteString("\n")
	}
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := m.rows()
	if m.loading && len(rows) == 0 {
		b.WriteString("Loading...")
	} else {
		b.WriteString(renderRows(rows, m.idx, m.width))
	}

	if m.confirmDelete && m.idx < len(rows) {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Delete \"" + rows[m.idx].title + "\"? y/n"))
	}

	return renderPage("SUMMARIUM", b.String(), m.hotKeys())
}

func (m *mainLoopModel) hotKeys() string {
	if m.filtering {
		return "enter: apply │ esc: clear"
	}
	parts := []string{"enter: open", "n: new", "d: delete"}
	switch m.tab {
	case tabNotes:
		parts = append(parts, "a: archive", "A: archived")
	case tabJournal:
		parts = append(parts, "t: today")
	case tabTasks:
		parts = append(parts, "f: status")
	}
	parts = append(parts, "/: filter", "s: search", "1-3/tab: switch", "L: logout", "q: quit")
	return strings.Join(parts, " │ ")
}
