package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/editor"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/testutil"
	"github.com/MKhiriev/summarium/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ──

type fakeNotes struct {
	service.ClientNoteService
	notes   []models.Note
	deleted []string
}

func (f *fakeNotes) List(context.Context, bool) ([]models.Note, error) {
	return f.notes, nil
}

func (f *fakeNotes) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeJournals struct {
	service.ClientJournalService
}

func (fakeJournals) List(context.Context) ([]models.Journal, error) { return nil, nil }

func (fakeJournals) Capability() editor.Capability[models.Journal] { return nil }

type fakeTasks struct {
	service.ClientTaskService
	filters []models.TaskFilter
}

func (f *fakeTasks) List(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	f.filters = append(f.filters, filter)
	return nil, nil
}

type memorySnapshots struct {
	store.SnapshotRepository
	items map[string]models.Snapshot
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{items: make(map[string]models.Snapshot)}
}

func (m *memorySnapshots) Put(_ context.Context, key string, s models.Snapshot) error {
	m.items[key] = s
	return nil
}

func (m *memorySnapshots) List(context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memorySnapshots) Get(_ context.Context, key string) (models.Snapshot, error) {
	s, ok := m.items[key]
	if !ok {
		return models.Snapshot{}, errors.New("no such key")
	}
	return s, nil
}

func (m *memorySnapshots) add(id, text string, at time.Time) {
	s := models.Snapshot{ID: id, Kind: models.KindNote, Content: richtext.FromPlainText(text), SanitizedContent: text, UpdatedAt: at}
	m.items[s.Key()] = s
}

type noteCapability struct{}

func (noteCapability) Load(_ context.Context, id string) (models.Note, error) {
	return models.Note{ID: id}, nil
}

func (noteCapability) Save(_ context.Context, n models.Note) (models.Note, error) {
	return n, nil
}

func (noteCapability) Edit(n models.Note, title, content string) models.Note {
	n.Title = title
	n.Content = content
	n.SanitizedContent = richtext.PlainText(content)
	return n
}

func (noteCapability) Adopt(live, saved models.Note) models.Note {
	if live.ID == "" {
		live.ID = saved.ID
	}
	live.UpdatedAt = saved.UpdatedAt
	return live
}

func (noteCapability) DeriveSnapshot(n models.Note) models.Snapshot {
	return models.Snapshot{ID: n.ID, Kind: models.KindNote, Title: n.Title, Content: n.Content, SanitizedContent: n.SanitizedContent, UpdatedAt: n.UpdatedAt}
}

type fixture struct {
	m         *mainLoopModel
	notes     *fakeNotes
	tasks     *fakeTasks
	snapshots *memorySnapshots
}

func newFixture() *fixture {
	f := &fixture{
		notes:     &fakeNotes{},
		tasks:     &fakeTasks{},
		snapshots: newMemorySnapshots(),
	}
	services := &service.ClientServices{
		NoteService:    f.notes,
		JournalService: fakeJournals{},
		TaskService:    f.tasks,
		Snapshots:      f.snapshots,
	}
	f.m = newMainLoopModel(context.Background(), services, config.ClientEditor{}, nil, logger.Nop())
	return f
}

// openNote puts an editor over a note with the given text in place.
func (f *fixture) openNote(id, text string) *editorScreen {
	note := models.Note{ID: id, Content: richtext.FromPlainText(text), SanitizedContent: text}
	s := editor.NewSession(context.Background(), editor.Capability[models.Note](noteCapability{}), note, editor.Options[models.Note]{
		Clock:     testutil.FixedClock(),
		Snapshots: f.snapshots,
	})
	f.m.editor = noteScreen(f.m.nextEditorID(), s)
	return f.m.editor
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── home ──

func TestMainLoop_DeleteNeedsConfirmation(t *testing.T) {
	f := newFixture()
	f.send(notesLoadedMsg{notes: []models.Note{{ID: "n1", Title: "Groceries"}, {ID: "n2", Title: "Ideas"}}})

	f.send(runes("j"))
	assert.Nil(t, f.send(runes("d")))
	assert.Contains(t, f.m.View(), `Delete "Ideas"? y/n`)

	cmd := f.send(runes("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, deletedMsg{kind: models.KindNote}, msg)
	assert.Equal(t, []string{"n2"}, f.notes.deleted)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	f := newFixture()
	f.send(notesLoadedMsg{notes: []models.Note{{ID: "n1"}}})

	f.send(runes("d"))
	assert.Nil(t, f.send(runes("n")))
	assert.False(t, f.m.confirmDelete)
	assert.Empty(t, f.notes.deleted)
}

func TestMainLoop_FilterNarrowsRows(t *testing.T) {
	f := newFixture()
	f.send(notesLoadedMsg{notes: []models.Note{{ID: "n1", Title: "Groceries"}, {ID: "n2", Title: "Ideas"}}})

	f.send(runes("/"))
	for _, r := range "groc" {
		f.send(runes(string(r)))
	}
	f.send(tea.KeyMsg{Type: tea.KeyEnter})

	rows := f.m.rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "n1", rows[0].key)
	assert.False(t, f.m.filtering)
}

func TestMainLoop_StatusFilterReloadsTasks(t *testing.T) {
	f := newFixture()
	f.send(runes("3"))
	require.Equal(t, tabTasks, f.m.tab)

	cmd := f.send(runes("f"))
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, f.tasks.filters, 1)
	assert.Equal(t, models.StatusBacklog, f.tasks.filters[0].Status)
}

func TestNextStatusFilter(t *testing.T) {
	var seen []models.TaskStatus
	var s models.TaskStatus
	for range len(models.TaskStatuses) + 1 {
		s = nextStatusFilter(s)
		seen = append(seen, s)
	}
	assert.Equal(t, append(append([]models.TaskStatus{}, models.TaskStatuses...), ""), seen)
}

func TestMainLoop_LogoutQuits(t *testing.T) {
	f := newFixture()
	cmd := f.send(runes("L"))
	require.NotNil(t, cmd)
	assert.True(t, f.m.logout)
	assert.Equal(t, tea.Quit(), cmd())
}

// ── toasts ──

func TestMainLoop_ToastClearsOnlyItsOwnTimer(t *testing.T) {
	f := newFixture()

	f.send(toastMsg{text: "first"})
	f.send(toastMsg{text: "second"})
	f.send(clearToastMsg{seq: 1})
	assert.Equal(t, "second", f.m.toast)
	assert.Contains(t, f.m.View(), "second")

	f.send(clearToastMsg{seq: 2})
	assert.Empty(t, f.m.toast)
}

// ── editor ──

func TestMainLoop_TypingUpdatesSession(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "")

	for _, r := range "hi" {
		f.send(runes(string(r)))
	}

	assert.Equal(t, richtext.FromPlainText("hi"), e.session.Content())
	assert.Equal(t, editor.StateEditing, e.session.State())
}

func TestMainLoop_StaleEditorMessagesIgnored(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "text")

	f.send(savedMsg{editorID: e.id + 1, at: testutil.FixedTime})
	assert.True(t, e.savedAt.IsZero())

	f.send(savedMsg{editorID: e.id, at: testutil.FixedTime})
	assert.Equal(t, testutil.FixedTime, e.savedAt)

	e.suggesting = true
	f.send(suggestionMsg{editorID: e.id + 1, text: "ignored"})
	assert.True(t, e.suggesting)
	assert.Equal(t, "text", e.body.Value())
}

func TestMainLoop_SuggestionInsertedAtCursor(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "The plan")
	e.suggesting = true

	f.send(suggestionMsg{editorID: e.id, text: " is ready"})

	assert.False(t, e.suggesting)
	assert.Equal(t, "The plan is ready", e.body.Value())
	assert.Equal(t, richtext.FromPlainText("The plan is ready"), e.session.Content())
}

func TestMainLoop_SuggestionErrorLeavesText(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "The plan")
	e.suggesting = true

	cmd := f.send(suggestionMsg{editorID: e.id, err: service.ErrAIUnavailable})

	require.NotNil(t, cmd)
	assert.Equal(t, toastMsg{text: "The assistant is unavailable"}, cmd())
	assert.Equal(t, "The plan", e.body.Value())
}

func TestMainLoop_AICompletionStreamsIntoEditor(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "")
	e.ai = newAIPanel()
	e.ai.running = true

	f.send(aiDeltaMsg{editorID: e.id, text: "Hello "})
	f.send(aiDeltaMsg{editorID: e.id, text: "world"})
	assert.Contains(t, e.ai.view(), "Hello world")

	f.send(aiDoneMsg{editorID: e.id, mode: aiComplete})

	assert.False(t, e.ai.running)
	assert.Equal(t, "Hello world", e.body.Value())
	assert.Equal(t, richtext.FromPlainText("Hello world"), e.session.Content())
}

func TestMainLoop_AICancelledTranscriptionKeepsText(t *testing.T) {
	f := newFixture()
	e := f.openNote("n1", "before")
	e.ai = newAIPanel()
	e.ai.setMode(aiTranscribe)
	e.ai.running = true

	f.send(aiDeltaMsg{editorID: e.id, text: "partial "})
	cmd := f.send(aiDoneMsg{editorID: e.id, mode: aiTranscribe, err: context.Canceled})

	require.NotNil(t, cmd)
	assert.Equal(t, toastMsg{text: "Transcribe cancelled"}, cmd())
	assert.Equal(t, "before", e.body.Value())
}

func TestAIPanel_TabCyclesModes(t *testing.T) {
	p := newAIPanel()
	var modes []aiMode
	for range 4 {
		p.setMode(p.mode.next())
		modes = append(modes, p.mode)
	}
	assert.Equal(t, []aiMode{aiChat, aiSpeech, aiTranscribe, aiComplete}, modes)
}

// ── versions ──

func TestMainLoop_VersionsRestore(t *testing.T) {
	f := newFixture()
	f.snapshots.add("n1", "first", testutil.FixedTime.Add(time.Minute))
	f.snapshots.add("n1", "second", testutil.FixedTime.Add(2*time.Minute))
	f.snapshots.add("n2", "other", testutil.FixedTime.Add(3*time.Minute))
	e := f.openNote("n1", "third")

	f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, e.versions)
	require.Len(t, e.versions.browser.Versions(), 2)
	assert.Equal(t, 0, e.versions.browser.SelectedIndex())

	f.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, e.versions.browser.SelectedIndex())
	assert.Contains(t, f.m.View(), "+ third")

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, toastMsg{text: "Version restored"}, cmd())
	assert.Nil(t, e.versions)
	assert.Equal(t, "first", e.body.Value())
	assert.Equal(t, richtext.FromPlainText("first"), e.session.Content())
}

func TestMainLoop_VersionsSelectionSurvivesClose(t *testing.T) {
	f := newFixture()
	f.snapshots.add("n1", "first", testutil.FixedTime.Add(time.Minute))
	f.snapshots.add("n1", "second", testutil.FixedTime.Add(2*time.Minute))
	e := f.openNote("n1", "third")

	f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	f.send(tea.KeyMsg{Type: tea.KeyDown})
	f.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, e.versions)
	assert.True(t, strings.HasPrefix(f.m.selections["n1"], "version="))

	f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, e.versions)
	assert.Equal(t, 1, e.versions.browser.SelectedIndex())
}

func TestMainLoop_VersionsNeedSavedEntity(t *testing.T) {
	f := newFixture()
	f.openNote("", "draft")

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	assert.Equal(t, toastMsg{text: "Nothing saved yet"}, cmd())
}
