package editor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/testutil"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	noteA = "11111111-1111-4111-8111-111111111111"
	noteB = "22222222-2222-4222-8222-222222222222"
)

// noteCapability stores notes in memory and stamps each save one second
// after the previous one.
type noteCapability struct {
	mu      sync.Mutex
	saved   []models.Note
	stamp   time.Time
	saveErr error
	during  func()
	// assignID is given to notes saved without an id.
	assignID string
	// archive, when set, is stamped on every stored note.
	archive *time.Time
}

func (c *noteCapability) Load(_ context.Context, id string) (models.Note, error) {
	if id == "missing" {
		return models.Note{}, errors.New("not found")
	}
	return models.Note{ID: id, Title: "Loaded", Content: "<p>body</p>", SanitizedContent: "body"}, nil
}

func (c *noteCapability) Save(_ context.Context, note models.Note) (models.Note, error) {
	if c.during != nil {
		c.during()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saveErr != nil {
		return models.Note{}, c.saveErr
	}
	if note.ID == "" {
		note.ID = c.assignID
	}
	if c.archive != nil {
		note.ArchivedAt = c.archive
	}
	c.stamp = c.stamp.Add(time.Second)
	note.UpdatedAt = c.stamp
	c.saved = append(c.saved, note)
	return note, nil
}

func (c *noteCapability) Edit(note models.Note, title, content string) models.Note {
	note.Title = title
	note.Content = content
	note.SanitizedContent = richtext.PlainText(content)
	return note
}

func (c *noteCapability) Adopt(live, saved models.Note) models.Note {
	if live.ID == "" {
		live.ID = saved.ID
	}
	live.UpdatedAt = saved.UpdatedAt
	return live
}

func (c *noteCapability) DeriveSnapshot(note models.Note) models.Snapshot {
	return models.Snapshot{
		ID:               note.ID,
		Kind:             models.KindNote,
		Title:            note.Title,
		Content:          note.Content,
		SanitizedContent: note.SanitizedContent,
		UpdatedAt:        note.UpdatedAt,
	}
}

func (c *noteCapability) saves() []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Note(nil), c.saved...)
}

type memorySnapshots struct {
	mu   sync.Mutex
	puts map[string]models.Snapshot
	err  error
}

func (m *memorySnapshots) Put(_ context.Context, key string, snapshot models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.puts == nil {
		m.puts = map[string]models.Snapshot{}
	}
	m.puts[key] = snapshot
	return nil
}

type fixture struct {
	clock     *testutil.StubClock
	cap       *noteCapability
	snapshots *memorySnapshots
	toasts    []string
	session   *Session[models.Note]
}

func newFixture(t *testing.T, id string) *fixture {
	t.Helper()
	f := &fixture{
		clock:     testutil.FixedClock(),
		cap:       &noteCapability{stamp: testutil.FixedTime},
		snapshots: &memorySnapshots{},
	}
	f.session = NewSession[models.Note](context.Background(), f.cap, models.Note{ID: id}, Options[models.Note]{
		Clock:     f.clock,
		Snapshots: f.snapshots,
		Notify:    func(msg string) { f.toasts = append(f.toasts, msg) },
	})
	return f
}

// ── debounce ──

func TestSession_SavesOnceAfterQuietPeriod(t *testing.T) {
	f := newFixture(t, noteA)

	edits := []struct {
		at      time.Duration
		content string
	}{
		{0, "<p>h</p>"},
		{100 * time.Millisecond, "<p>he</p>"},
		{200 * time.Millisecond, "<p>hel</p>"},
		{900 * time.Millisecond, "<p>hello</p>"},
	}

	var elapsed time.Duration
	for _, e := range edits {
		f.clock.Advance(e.at - elapsed)
		elapsed = e.at
		f.session.SetContent(e.content)
	}

	f.clock.Advance(999 * time.Millisecond)
	assert.Empty(t, f.cap.saves(), "nothing may be saved before 1900ms")

	f.clock.Advance(time.Millisecond)
	saves := f.cap.saves()
	require.Len(t, saves, 1)
	assert.Equal(t, "<p>hello</p>", saves[0].Content)
	assert.Equal(t, "hello", saves[0].SanitizedContent)
	assert.Equal(t, testutil.FixedTime.Add(1900*time.Millisecond), f.clock.Now())

	f.clock.Advance(time.Minute)
	assert.Len(t, f.cap.saves(), 1)
}

func TestSession_TitleAndContentShareOneSave(t *testing.T) {
	f := newFixture(t, noteA)

	f.session.SetTitle("Groceries")
	f.session.SetContent("<p>milk</p>")
	f.clock.Advance(DefaultSaveDelay)

	saves := f.cap.saves()
	require.Len(t, saves, 1)
	assert.Equal(t, "Groceries", saves[0].Title)
	assert.Equal(t, "<p>milk</p>", saves[0].Content)
}

// ── state machine ──

func TestSession_States(t *testing.T) {
	f := newFixture(t, noteA)
	assert.Equal(t, StateIdle, f.session.State())

	var during State
	f.cap.during = func() { during = f.session.State() }

	f.session.SetContent("<p>x</p>")
	assert.Equal(t, StateEditing, f.session.State())
	assert.Equal(t, "<p>x</p>", f.session.Content(), "edits apply before the save")
	assert.Equal(t, "x", f.session.PlainText())

	f.clock.Advance(DefaultSaveDelay)

	assert.Equal(t, StateSaving, during)
	assert.Equal(t, StateIdle, f.session.State())
}

func TestSession_EditDuringSaveStaysEditing(t *testing.T) {
	f := newFixture(t, noteA)
	f.cap.during = func() {
		f.cap.during = nil
		f.session.SetContent("<p>second</p>")
	}

	f.session.SetContent("<p>first</p>")
	f.clock.Advance(DefaultSaveDelay)

	assert.Equal(t, StateEditing, f.session.State())

	f.clock.Advance(DefaultSaveDelay)
	saves := f.cap.saves()
	require.Len(t, saves, 2)
	assert.Equal(t, "<p>second</p>", saves[1].Content)
	assert.Equal(t, StateIdle, f.session.State())
}

// ── failures ──

func TestSession_FailedSaveNotifiesWithoutRetry(t *testing.T) {
	f := newFixture(t, noteA)
	f.cap.saveErr = errors.New("connection refused")

	f.session.SetContent("<p>lost?</p>")
	f.clock.Advance(DefaultSaveDelay)

	assert.Equal(t, []string{app.MsgSaveFailed}, f.toasts)
	assert.Equal(t, StateIdle, f.session.State())
	assert.Empty(t, f.snapshots.puts)
	assert.Equal(t, "<p>lost?</p>", f.session.Content(), "local state is not rolled back")

	f.cap.saveErr = nil
	f.clock.Advance(time.Hour)
	assert.Empty(t, f.cap.saves())

	f.session.SetContent("<p>lost? no</p>")
	f.clock.Advance(DefaultSaveDelay)
	assert.Len(t, f.cap.saves(), 1)
}

func TestSession_SnapshotFailureKeepsSave(t *testing.T) {
	f := newFixture(t, noteA)
	f.snapshots.err = errors.New("disk full")

	f.session.SetContent("<p>x</p>")
	f.clock.Advance(DefaultSaveDelay)

	assert.Len(t, f.cap.saves(), 1)
	assert.Empty(t, f.toasts)
}

// ── snapshots ──

func TestSession_IdenticalSavesProduceDistinctSnapshots(t *testing.T) {
	f := newFixture(t, noteA)

	for range 2 {
		f.session.SetContent("<p>same</p>")
		f.clock.Advance(DefaultSaveDelay)
	}

	require.Len(t, f.snapshots.puts, 2)
	for key, snapshot := range f.snapshots.puts {
		assert.Equal(t, snapshot.Key(), key)
		assert.Equal(t, noteA, models.SnapshotEntityID(key))
		assert.Equal(t, "same", snapshot.SanitizedContent)
	}
}

// ── navigation ──

func TestSession_CloseFlushesWithCapturedID(t *testing.T) {
	first := newFixture(t, noteA)
	first.session.SetContent("<p>typed in A</p>")
	first.session.Close()

	saves := first.cap.saves()
	require.Len(t, saves, 1)
	assert.Equal(t, noteA, saves[0].ID)

	// a timer left over from A must not fire into anything
	first.clock.Advance(time.Minute)
	assert.Len(t, first.cap.saves(), 1)
}

func TestSession_PendingEditKeepsItsEntity(t *testing.T) {
	f := newFixture(t, noteA)
	f.session.SetContent("<p>for A</p>")

	other := NewSession[models.Note](context.Background(), f.cap, models.Note{ID: noteB}, Options[models.Note]{
		Clock:     f.clock,
		Snapshots: f.snapshots,
	})
	other.SetContent("<p>for B</p>")

	f.clock.Advance(DefaultSaveDelay)

	byID := map[string]string{}
	for _, n := range f.cap.saves() {
		byID[n.ID] = n.Content
	}
	assert.Equal(t, map[string]string{noteA: "<p>for A</p>", noteB: "<p>for B</p>"}, byID)
}

func TestOpen(t *testing.T) {
	capability := &noteCapability{}

	s, err := Open[models.Note](context.Background(), capability, noteA, Options[models.Note]{Snapshots: &memorySnapshots{}})
	require.NoError(t, err)
	assert.Equal(t, "Loaded", s.Title())
	assert.Equal(t, "<p>body</p>", s.Content())

	_, err = Open[models.Note](context.Background(), capability, "missing", Options[models.Note]{Snapshots: &memorySnapshots{}})
	assert.Error(t, err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "saving", StateSaving.String())
}

func TestSession_ModifySavesOtherFields(t *testing.T) {
	f := newFixture(t, noteA)

	f.session.SetContent("<p>text</p>")
	f.session.Modify(func(n models.Note) models.Note {
		n.Title = "renamed elsewhere"
		return n
	})
	assert.Equal(t, StateEditing, f.session.State())

	f.clock.Advance(DefaultSaveDelay)
	saves := f.cap.saves()
	require.Len(t, saves, 1)
	assert.Equal(t, "renamed elsewhere", saves[0].Title)
	assert.Equal(t, "<p>text</p>", saves[0].Content)
}

// ── server-assigned fields ──

func TestSession_AdoptsServerAssignedID(t *testing.T) {
	f := newFixture(t, "")
	f.cap.assignID = "server-assigned"

	f.session.SetContent("<p>first entry</p>")
	f.session.Flush()

	live := f.session.Entity()
	assert.Equal(t, "server-assigned", live.ID)
	assert.Equal(t, testutil.FixedTime.Add(time.Second), live.UpdatedAt)
	assert.Equal(t, "<p>first entry</p>", live.Content)

	require.Len(t, f.snapshots.puts, 1)
	for key := range f.snapshots.puts {
		assert.True(t, strings.HasPrefix(key, "server-assigned+"), key)
	}

	f.session.SetContent("<p>second</p>")
	f.session.Flush()

	saves := f.cap.saves()
	require.Len(t, saves, 2)
	assert.Equal(t, "server-assigned", saves[1].ID, "the next save updates the same record")
}

func TestSession_EditDuringFirstSaveKeepsTextAndTakesID(t *testing.T) {
	f := newFixture(t, "")
	f.cap.assignID = "server-assigned"
	f.cap.during = func() {
		f.cap.during = nil
		f.session.SetContent("<p>typed while saving</p>")
	}

	f.session.SetContent("<p>first</p>")
	f.session.Flush()

	live := f.session.Entity()
	assert.Equal(t, "server-assigned", live.ID)
	assert.Equal(t, "<p>typed while saving</p>", live.Content)
	assert.Equal(t, "<p>typed while saving</p>", f.session.Content())
	assert.Equal(t, StateEditing, f.session.State())

	f.clock.Advance(DefaultSaveDelay)

	saves := f.cap.saves()
	require.Len(t, saves, 2)
	assert.Equal(t, "server-assigned", saves[1].ID)
	assert.Equal(t, "<p>typed while saving</p>", saves[1].Content)
}

func TestSession_TakesStoredEntityWhenNothingChanged(t *testing.T) {
	f := newFixture(t, noteA)
	archived := testutil.FixedTime.Add(48 * time.Hour)
	f.cap.during = func() {
		f.cap.during = nil
		f.cap.mu.Lock()
		f.cap.archive = &archived
		f.cap.mu.Unlock()
	}

	f.session.SetContent("<p>text</p>")
	f.session.Flush()

	live := f.session.Entity()
	require.NotNil(t, live.ArchivedAt, "fields the server sets are folded back")
	assert.Equal(t, archived, *live.ArchivedAt)
	assert.Equal(t, testutil.FixedTime.Add(time.Second), live.UpdatedAt)
}
