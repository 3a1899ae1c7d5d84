package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/summarium/internal/editor"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editSession is the part of editor.Session the screen uses, whatever the
// entity type.
type editSession interface {
	Title() string
	Content() string
	PlainText() string
	State() editor.State
	SetTitle(title string)
	SetContent(content string)
	Flush()
	Close()
}

// editorScreen edits one note, journal entry or task description. The
// body is edited as plain text and stored as paragraphs.
type editorScreen struct {
	id       int
	kind     models.EntityKind
	heading  string
	session  editSession
	entityID func() string
	// task is set for task editors and drives the details panel.
	task *editor.Session[models.Task]

	title      textinput.Model
	body       textarea.Model
	hasTitle   bool
	focusTitle bool
	lastTitle  string
	lastBody   string
	savedAt    time.Time
	suggesting bool

	versions *versionsPanel
	ai       *aiPanel
	details  *taskPanel
}

type editorOpenedMsg struct {
	screen *editorScreen
	err    error
}

type savedMsg struct {
	editorID int
	at       time.Time
}

type suggestionMsg struct {
	editorID int
	text     string
	err      error
}

type flushedMsg struct{}

func newEditorScreen(id int, kind models.EntityKind, heading string, session editSession, entityID func() string, hasTitle bool) *editorScreen {
	title := textinput.New()
	title.Placeholder = models.UntitledTitle
	title.CharLimit = 512
	title.Width = 60
	title.SetValue(session.Title())

	body := textarea.New()
	body.Placeholder = "Start writing..."
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 10000
	body.SetWidth(76)
	body.SetHeight(16)
	body.SetValue(richtext.PlainText(session.Content()))
	body.Focus()

	return &editorScreen{
		id:        id,
		kind:      kind,
		heading:   heading,
		session:   session,
		entityID:  entityID,
		title:     title,
		body:      body,
		hasTitle:  hasTitle,
		lastTitle: title.Value(),
		lastBody:  body.Value(),
	}
}

func (e *editorScreen) setSize(width, height int) {
	if width > 8 {
		e.body.SetWidth(width - 8)
		e.title.Width = max(10, width-20)
	}
	if height > 0 {
		e.body.SetHeight(max(5, height-16))
	}
}

// sync pushes changed inputs into the session, which schedules the save.
func (e *editorScreen) sync() {
	if v := e.title.Value(); v != e.lastTitle {
		e.lastTitle = v
		e.session.SetTitle(v)
	}
	if v := e.body.Value(); v != e.lastBody {
		e.lastBody = v
		e.session.SetContent(richtext.FromPlainText(v))
	}
}

// insert puts text at the cursor of the body.
func (e *editorScreen) insert(text string) {
	if text == "" {
		return
	}
	e.body.InsertString(text)
	e.sync()
}

// replaceContent loads stored content, e.g. a restored version, keeping
// its markup for the save.
func (e *editorScreen) replaceContent(content string) {
	e.body.SetValue(richtext.PlainText(content))
	e.lastBody = e.body.Value()
	e.session.SetContent(content)
}

func (e *editorScreen) currentLine() string {
	lines := strings.Split(e.body.Value(), "\n")
	row := e.body.Line()
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

func (e *editorScreen) toggleFocus() {
	if !e.hasTitle {
		return
	}
	e.focusTitle = !e.focusTitle
	if e.focusTitle {
		e.body.Blur()
		e.title.Focus()
	} else {
		e.title.Blur()
		e.body.Focus()
	}
}

func (e *editorScreen) stateLine() string {
	switch e.session.State() {
	case editor.StateEditing:
		return "editing..."
	case editor.StateSaving:
		return "saving..."
	}
	if e.savedAt.IsZero() {
		return "no changes"
	}
	return "saved " + e.savedAt.Local().Format("15:04:05")
}

func (m *mainLoopModel) updateEditor(msg tea.Msg) tea.Cmd {
	e := m.editor

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		if e.focusTitle {
			e.title, cmd = e.title.Update(msg)
		} else {
			e.body, cmd = e.body.Update(msg)
		}
		return cmd
	}

	switch {
	case e.versions != nil:
		return m.updateVersions(keyMsg)
	case e.ai != nil:
		return m.updateAI(keyMsg)
	case e.details != nil:
		return m.updateTaskPanel(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.leaveEditor()
	case key.Matches(keyMsg, keys.save):
		session := e.session
		return func() tea.Msg {
			session.Flush()
			return flushedMsg{}
		}
	case key.Matches(keyMsg, keys.versions):
		return m.openVersions()
	case key.Matches(keyMsg, keys.assist):
		e.ai = newAIPanel()
		return textinput.Blink
	case key.Matches(keyMsg, keys.details):
		if e.task != nil {
			e.details = newTaskPanel()
			return m.cmdLoadActivities(e.id, e.task.Entity().ID)
		}
		return nil
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(e.session.PlainText()); err != nil {
			return toast("Copy failed: " + err.Error())
		}
		return toast("Copied to clipboard")
	case key.Matches(keyMsg, keys.focus):
		e.toggleFocus()
		return nil
	case key.Matches(keyMsg, keys.suggest) && !e.focusTitle:
		return m.cmdSuggestion(e)
	}

	var cmd tea.Cmd
	if e.focusTitle {
		if keyMsg.String() == "enter" {
			e.toggleFocus()
			return nil
		}
		e.title, cmd = e.title.Update(msg)
	} else {
		e.body, cmd = e.body.Update(msg)
	}
	e.sync()
	return cmd
}

func (m *mainLoopModel) openVersions() tea.Cmd {
	e := m.editor
	id := e.entityID()
	if id == "" {
		return toast("Nothing saved yet")
	}

	panel, err := openVersionsPanel(m.ctx, m.services.Snapshots, id, e.session.PlainText(), m.selections[id], m.logger)
	if err != nil {
		return toast("Versions unavailable: " + err.Error())
	}
	e.versions = panel
	return nil
}

func (m *mainLoopModel) updateVersions(msg tea.KeyMsg) tea.Cmd {
	e := m.editor
	switch e.versions.update(msg) {
	case versionsRestore:
		content, err := e.versions.browser.Restore()
		if err != nil {
			return toast("Select a version first")
		}
		e.replaceContent(content)
		m.closeVersions()
		return toast("Version restored")
	case versionsClose:
		m.closeVersions()
	}
	return nil
}

// closeVersions keeps the selection for the next time the panel opens.
func (m *mainLoopModel) closeVersions() {
	e := m.editor
	if param := e.versions.browser.SelectionParam(); param != "" {
		m.selections[e.entityID()] = param
	}
	e.versions = nil
}

func (m *mainLoopModel) cmdSuggestion(e *editorScreen) tea.Cmd {
	if e.suggesting {
		return nil
	}
	line := e.currentLine()
	if strings.TrimSpace(line) == "" {
		return nil
	}

	e.suggesting = true
	ctx, ai, editorID := m.ctx, m.services.AIService, e.id
	return func() tea.Msg {
		text, err := ai.OnTabRequested(ctx, line)
		return suggestionMsg{editorID: editorID, text: text, err: err}
	}
}

// leaveEditor returns to the list. The pending save is flushed off the UI
// goroutine before the lists are reloaded.
func (m *mainLoopModel) leaveEditor() tea.Cmd {
	e := m.editor
	m.editor = nil
	if e.ai != nil && e.ai.mode == aiTranscribe && e.ai.cancel != nil {
		e.ai.cancel()
	}
	return tea.Sequence(
		func() tea.Msg {
			e.session.Close()
			return flushedMsg{}
		},
		m.cmdReload(),
	)
}

// closeEditor flushes the open editor synchronously; used once the
// program has exited.
func (m *mainLoopModel) closeEditor() {
	if m.editor == nil {
		return
	}
	m.editor.session.Close()
	m.editor = nil
}

func (m *mainLoopModel) viewEditor() string {
	e := m.editor

	var b strings.Builder
	if e.heading != "" {
		b.WriteString(e.heading)
		b.WriteString("\n\n")
	}
	if e.hasTitle {
		b.WriteString("Title │ ")
		b.WriteString(e.title.View())
		b.WriteString("\n\n")
	}
	if e.task != nil {
		b.WriteString(taskSummary(e.task.Entity()))
		b.WriteString("\n\n")
	}
	b.WriteString(e.body.View())
	b.WriteString("\n")
	status := e.stateLine()
	if e.suggesting {
		status += " │ thinking..."
	}
	b.WriteString(helpStyle.Render(status))

	hotKeys := "esc: back │ tab: suggest │ ctrl+o: versions │ ctrl+g: assistant │ ctrl+y: copy"
	if e.hasTitle {
		hotKeys += " │ ctrl+t: title/body"
	}
	if e.task != nil {
		hotKeys += " │ ctrl+d: details"
	}

	switch {
	case e.versions != nil:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(e.versions.view(m.width)))
		hotKeys = "↑/↓: newer/older │ enter: restore │ esc: close"
	case e.ai != nil:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(e.ai.view()))
		hotKeys = e.ai.hotKeys()
	case e.details != nil:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(e.details.view()))
		hotKeys = e.details.hotKeys()
	}

	return renderPage(strings.ToUpper(string(e.kind)), b.String(), hotKeys)
}

func taskSummary(t models.Task) string {
	due := "-"
	if t.DueDate != nil {
		due = t.DueDate.Local().Format("Mon Jan 2 15:04")
	}
	return fmt.Sprintf("Status: %s │ Priority: %s │ Due: %s", t.Status, t.Priority, due)
}

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// sessionOptions wires a session to the program: saves are reported back
// as savedMsg. Failures are already shown by the persistence gateway.
func sessionOptions[T any](m *mainLoopModel, editorID int, updatedAt func(T) time.Time) editor.Options[T] {
	bridge := m.bridge
	return editor.Options[T]{
		Delay:     m.editorCfg.SaveDelay,
		Snapshots: m.services.Snapshots,
		Logger:    m.logger,
		OnSaved: func(entity T) {
			bridge.Send(savedMsg{editorID: editorID, at: updatedAt(entity)})
		},
	}
}

func (m *mainLoopModel) cmdOpenNote(id string) tea.Cmd {
	ctx, capability := m.ctx, m.services.NoteService.Capability()
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(n models.Note) time.Time { return n.UpdatedAt })
	return func() tea.Msg {
		s, err := editor.Open(ctx, capability, id, opts)
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: noteScreen(editorID, s)}
	}
}

func (m *mainLoopModel) cmdNewNote() tea.Cmd {
	ctx, notes := m.ctx, m.services.NoteService
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(n models.Note) time.Time { return n.UpdatedAt })
	return func() tea.Msg {
		note, err := notes.Create(ctx)
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: noteScreen(editorID, editor.NewSession(ctx, notes.Capability(), note, opts))}
	}
}

func noteScreen(editorID int, s *editor.Session[models.Note]) *editorScreen {
	return newEditorScreen(editorID, models.KindNote, "", s, func() string { return s.Entity().ID }, true)
}

func (m *mainLoopModel) cmdOpenJournal(day string) tea.Cmd {
	ctx, capability := m.ctx, m.services.JournalService.Capability()
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(j models.Journal) time.Time { return j.UpdatedAt })
	return func() tea.Msg {
		s, err := editor.Open(ctx, capability, day, opts)
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: journalScreen(editorID, s)}
	}
}

func (m *mainLoopModel) cmdOpenToday() tea.Cmd {
	ctx, journals := m.ctx, m.services.JournalService
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(j models.Journal) time.Time { return j.UpdatedAt })
	return func() tea.Msg {
		journal, err := journals.Today(ctx)
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: journalScreen(editorID, editor.NewSession(ctx, journals.Capability(), journal, opts))}
	}
}

func journalScreen(editorID int, s *editor.Session[models.Journal]) *editorScreen {
	return newEditorScreen(editorID, models.KindJournal, s.Entity().DisplayTitle(), s, func() string { return s.Entity().ID }, false)
}

func (m *mainLoopModel) cmdOpenTask(id string) tea.Cmd {
	ctx, capability := m.ctx, m.services.TaskService.Capability()
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(t models.Task) time.Time { return t.UpdatedAt })
	return func() tea.Msg {
		s, err := editor.Open(ctx, capability, id, opts)
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: taskScreen(editorID, s)}
	}
}

func (m *mainLoopModel) cmdNewTask() tea.Cmd {
	ctx, tasks := m.ctx, m.services.TaskService
	editorID := m.nextEditorID()
	opts := sessionOptions(m, editorID, func(t models.Task) time.Time { return t.UpdatedAt })
	return func() tea.Msg {
		task, err := tasks.Create(ctx, "")
		if err != nil {
			return editorOpenedMsg{err: err}
		}
		return editorOpenedMsg{screen: taskScreen(editorID, editor.NewSession(ctx, tasks.Capability(), task, opts))}
	}
}

func taskScreen(editorID int, s *editor.Session[models.Task]) *editorScreen {
	screen := newEditorScreen(editorID, models.KindTask, "", s, func() string { return s.Entity().ID }, true)
	screen.task = s
	return screen
}

var (
	_ editSession = (*editor.Session[models.Note])(nil)
	_ editSession = (*editor.Session[models.Journal])(nil)
	_ editSession = (*editor.Session[models.Task])(nil)
)
