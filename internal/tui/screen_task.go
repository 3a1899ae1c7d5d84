package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type taskInput int

const (
	taskInputNone taskInput = iota
	taskInputDue
	taskInputComment
)

// taskPanel edits the fields of a task next to its description and lists
// its activities.
type taskPanel struct {
	activities []models.Activity
	idx        int
	loading    bool
	mode       taskInput
	input      textinput.Model
}

type activitiesLoadedMsg struct {
	editorID   int
	activities []models.Activity
	err        error
}

type activityChangedMsg struct {
	editorID int
	err      error
}

type taskDueMsg struct {
	editorID int
	task     models.Task
	err      error
}

func newTaskPanel() *taskPanel {
	input := textinput.New()
	input.CharLimit = 10000
	input.Width = 60
	return &taskPanel{loading: true, input: input}
}

func (p *taskPanel) startInput(mode taskInput) tea.Cmd {
	p.mode = mode
	p.input.SetValue("")
	switch mode {
	case taskInputDue:
		p.input.Placeholder = "e.g. next friday at 5pm"
		p.input.CharLimit = 128
	case taskInputComment:
		p.input.Placeholder = "Comment"
		p.input.CharLimit = 10000
	}
	return p.input.Focus()
}

func (p *taskPanel) stopInput() {
	p.mode = taskInputNone
	p.input.Blur()
}

func (p *taskPanel) selected() (models.Activity, bool) {
	if p.idx < 0 || p.idx >= len(p.activities) {
		return models.Activity{}, false
	}
	return p.activities[p.idx], true
}

func (m *mainLoopModel) updateTaskPanel(msg tea.KeyMsg) tea.Cmd {
	e := m.editor
	p := e.details

	if p.mode != taskInputNone {
		switch msg.String() {
		case "esc":
			p.stopInput()
			return nil
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			mode := p.mode
			p.stopInput()
			if value == "" {
				return nil
			}
			if mode == taskInputDue {
				return m.cmdSetDue(e, value)
			}
			return m.cmdAddActivity(e, value)
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "esc", "ctrl+d":
		e.details = nil
	case "up", "k":
		if p.idx > 0 {
			p.idx--
		}
	case "down", "j":
		if p.idx < len(p.activities)-1 {
			p.idx++
		}
	case "s":
		e.task.Modify(func(t models.Task) models.Task {
			t.Status = t.Status.Next()
			return t
		})
	case "p":
		e.task.Modify(func(t models.Task) models.Task {
			t.Priority = t.Priority.Next()
			return t
		})
	case "u":
		return p.startInput(taskInputDue)
	case "c":
		return p.startInput(taskInputComment)
	case "x":
		if a, ok := p.selected(); ok {
			return m.cmdDeleteActivity(e.id, a.ID)
		}
	}
	return nil
}

func (m *mainLoopModel) cmdLoadActivities(editorID int, taskID string) tea.Cmd {
	ctx, tasks := m.ctx, m.services.TaskService
	return func() tea.Msg {
		activities, err := tasks.Activities(ctx, taskID)
		return activitiesLoadedMsg{editorID: editorID, activities: activities, err: err}
	}
}

func (m *mainLoopModel) cmdAddActivity(e *editorScreen, comment string) tea.Cmd {
	ctx, tasks, editorID, taskID := m.ctx, m.services.TaskService, e.id, e.task.Entity().ID
	return func() tea.Msg {
		_, err := tasks.AddActivity(ctx, taskID, comment)
		return activityChangedMsg{editorID: editorID, err: err}
	}
}

func (m *mainLoopModel) cmdDeleteActivity(editorID int, id string) tea.Cmd {
	ctx, tasks := m.ctx, m.services.TaskService
	return func() tea.Msg {
		return activityChangedMsg{editorID: editorID, err: tasks.DeleteActivity(ctx, id)}
	}
}

// cmdSetDue sends the phrase to the server, which resolves it; the
// resolved date is then carried by the session like any other edit.
func (m *mainLoopModel) cmdSetDue(e *editorScreen, phrase string) tea.Cmd {
	ctx, tasks, editorID, task := m.ctx, m.services.TaskService, e.id, e.task.Entity()
	return func() tea.Msg {
		saved, err := tasks.Update(ctx, task, phrase)
		return taskDueMsg{editorID: editorID, task: saved, err: err}
	}
}

// handleTaskMsg applies the results of task panel commands to the open
// editor. It reports false for messages of another kind.
func (m *mainLoopModel) handleTaskMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		p := m.detailsFor(msg.editorID)
		if p == nil {
			return nil, true
		}
		p.loading = false
		if msg.err != nil {
			return toast(humanizeError(msg.err)), true
		}
		p.activities = msg.activities
		p.idx = min(p.idx, max(0, len(p.activities)-1))
		return nil, true

	case activityChangedMsg:
		if m.editor == nil || m.editor.id != msg.editorID {
			return nil, true
		}
		if msg.err != nil {
			return toast(humanizeError(msg.err)), true
		}
		if m.editor.details == nil {
			return nil, true
		}
		return m.cmdLoadActivities(msg.editorID, m.editor.task.Entity().ID), true

	case taskDueMsg:
		if m.editor == nil || m.editor.id != msg.editorID || m.editor.task == nil {
			return nil, true
		}
		if msg.err != nil {
			return toast("Due date not set: " + humanizeError(msg.err)), true
		}
		due := msg.task.DueDate
		m.editor.task.Modify(func(t models.Task) models.Task {
			t.DueDate = due
			return t
		})
		return nil, true
	}
	return nil, false
}

func (m *mainLoopModel) detailsFor(editorID int) *taskPanel {
	if m.editor == nil || m.editor.id != editorID {
		return nil
	}
	return m.editor.details
}

func (p *taskPanel) view() string {
	var b strings.Builder
	switch p.mode {
	case taskInputDue:
		b.WriteString("Due │ ")
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
	case taskInputComment:
		b.WriteString("Comment │ ")
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Activity"))
	b.WriteString("\n")
	switch {
	case p.loading:
		b.WriteString("Loading...")
	case len(p.activities) == 0:
		b.WriteString("No activity yet")
	default:
		for i, a := range p.activities {
			line := fmt.Sprintf("%s%s  %s", cursor(i == p.idx), formatTime(a.CreatedAt), fitText(firstLine(a.Comment), 60))
			if i == p.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *taskPanel) hotKeys() string {
	if p.mode != taskInputNone {
		return "enter: confirm │ esc: cancel"
	}
	return "s: status │ p: priority │ u: due │ c: comment │ x: delete comment │ esc: close"
}
