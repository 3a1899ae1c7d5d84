package versions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/mock"
	"github.com/MKhiriev/summarium/internal/testutil"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	entityID = "11111111-1111-4111-8111-111111111111"
	otherID  = "22222222-2222-4222-8222-222222222222"
)

type memorySource map[string]models.Snapshot

func (m memorySource) List(context.Context) ([]string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m memorySource) Get(_ context.Context, key string) (models.Snapshot, error) {
	s, ok := m[key]
	if !ok {
		return models.Snapshot{}, errors.New("no such key")
	}
	return s, nil
}

func (m memorySource) add(id, text string, at time.Time) models.Snapshot {
	s := models.Snapshot{
		ID:               id,
		Kind:             models.KindNote,
		Title:            "Note",
		Content:          "<p>" + text + "</p>",
		SanitizedContent: text,
		UpdatedAt:        at,
	}
	m[s.Key()] = s
	return s
}

func minutes(n int) time.Time {
	return testutil.FixedTime.Add(time.Duration(n) * time.Minute)
}

// ── ListVersions ──

func TestListVersions(t *testing.T) {
	src := memorySource{}
	v1 := src.add(entityID, "one", minutes(1))
	v3 := src.add(entityID, "three", minutes(3))
	v2 := src.add(entityID, "two", minutes(2))
	src.add(entityID, "live", minutes(4))
	src.add(otherID, "foreign", minutes(5))

	got, err := ListVersions(context.Background(), src, entityID, "live")
	require.NoError(t, err)
	assert.Equal(t, []models.Snapshot{v3, v2, v1}, got)
}

func TestListVersions_IdenticalSaves(t *testing.T) {
	src := memorySource{}
	older := src.add(entityID, "same", minutes(1))
	newer := src.add(entityID, "same", minutes(2))

	got, err := ListVersions(context.Background(), src, entityID, "same")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ListVersions(context.Background(), src, entityID, "changed")
	require.NoError(t, err)
	assert.Equal(t, []models.Snapshot{newer, older}, got)
}

func TestListVersions_PrefixIsWholeID(t *testing.T) {
	src := memorySource{}
	src.add("abc", "short id", minutes(1))
	long := src.add("abcdef", "long id", minutes(2))

	got, err := ListVersions(context.Background(), src, "abcdef", "")
	require.NoError(t, err)
	assert.Equal(t, []models.Snapshot{long}, got)
}

func TestListVersions_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSnapshotRepository(ctrl)
	key := models.SnapshotKey(entityID, minutes(1))

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("locked"))
	_, err := ListVersions(context.Background(), repo, entityID, "")
	assert.Error(t, err)

	repo.EXPECT().List(gomock.Any()).Return([]string{key}, nil)
	repo.EXPECT().Get(gomock.Any(), key).Return(models.Snapshot{}, errors.New("corrupt"))
	_, err = ListVersions(context.Background(), repo, entityID, "")
	assert.Error(t, err)
}

// ── Browser ──

func openBrowser(t *testing.T, src memorySource, live string) *Browser {
	t.Helper()
	b := NewBrowser(src, entityID, logger.Nop())
	require.NoError(t, b.Open(context.Background(), live))
	return b
}

func TestBrowser_OpenSelectsNewest(t *testing.T) {
	src := memorySource{}
	src.add(entityID, "old", minutes(1))
	newest := src.add(entityID, "new", minutes(2))

	b := openBrowser(t, src, "live")

	got, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, newest, got)
	assert.True(t, b.IsOpen())
	assert.False(t, b.HasNext(), "newest has nothing newer")
	assert.True(t, b.HasPrev())
}

func TestBrowser_EmptyHistory(t *testing.T) {
	b := openBrowser(t, memorySource{}, "live")

	_, ok := b.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, b.SelectedIndex())
	assert.False(t, b.Prev())
	assert.False(t, b.Next())
	assert.Nil(t, b.Diff())
	assert.Empty(t, b.SelectionParam())

	_, err := b.Restore()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestBrowser_Navigation(t *testing.T) {
	src := memorySource{}
	v1 := src.add(entityID, "1", minutes(1))
	v2 := src.add(entityID, "2", minutes(2))
	v3 := src.add(entityID, "3", minutes(3))

	b := openBrowser(t, src, "live")

	assert.True(t, b.Prev())
	assert.Equal(t, 1, b.SelectedIndex())
	assert.True(t, b.Prev())
	got, _ := b.Selected()
	assert.Equal(t, v1, got)

	assert.False(t, b.HasPrev(), "oldest has nothing older")
	assert.False(t, b.Prev())
	got, _ = b.Selected()
	assert.Equal(t, v1, got)

	assert.True(t, b.Next())
	assert.True(t, b.Next())
	assert.False(t, b.Next())
	got, _ = b.Selected()
	assert.Equal(t, v3, got)

	require.NoError(t, b.Select(v2.Key()))
	got, _ = b.Selected()
	assert.Equal(t, v2, got)

	assert.ErrorIs(t, b.Select(models.SnapshotKey(otherID, minutes(2))), ErrUnknownVersion)
	got, _ = b.Selected()
	assert.Equal(t, v2, got)
}

func TestBrowser_DiffAgainstLiveText(t *testing.T) {
	src := memorySource{}
	src.add(entityID, "Groceries\nmilk", minutes(1))

	b := openBrowser(t, src, "Groceries\nmilk\neggs")

	assert.Equal(t, []Segment{
		{Op: Unchanged, Text: "Groceries\n"},
		{Op: Removed, Text: "milk"},
		{Op: Added, Text: "milk\neggs"},
	}, b.Diff())

	b.SetLiveText("Groceries\nmilk")
	for _, s := range b.Diff() {
		assert.Equal(t, Unchanged, s.Op)
	}
}

func TestBrowser_Restore(t *testing.T) {
	src := memorySource{}
	src.add(entityID, "old text", minutes(1))

	b := openBrowser(t, src, "new text")

	content, err := b.Restore()
	require.NoError(t, err)
	assert.Equal(t, "<p>old text</p>", content)
}

func TestBrowser_CloseKeepsSelection(t *testing.T) {
	src := memorySource{}
	v1 := src.add(entityID, "1", minutes(1))
	src.add(entityID, "2", minutes(2))

	b := openBrowser(t, src, "live")
	require.NoError(t, b.Select(v1.Key()))
	b.Close()
	assert.False(t, b.IsOpen())

	src.add(entityID, "3", minutes(3))
	require.NoError(t, b.Open(context.Background(), "live"))

	got, _ := b.Selected()
	assert.Equal(t, v1, got)
}

func TestBrowser_OpenDropsVanishedSelection(t *testing.T) {
	src := memorySource{}
	v1 := src.add(entityID, "1", minutes(1))
	v2 := src.add(entityID, "2", minutes(2))

	b := openBrowser(t, src, "live")
	require.NoError(t, b.Select(v1.Key()))

	// the selected version now equals the live text and is hidden
	require.NoError(t, b.Open(context.Background(), "1"))
	got, _ := b.Selected()
	assert.Equal(t, v2, got)
}

func TestBrowser_SelectionParam(t *testing.T) {
	src := memorySource{}
	v1 := src.add(entityID, "1", minutes(1))
	src.add(entityID, "2", minutes(2))

	b := openBrowser(t, src, "live")
	require.NoError(t, b.Select(v1.Key()))

	param := b.SelectionParam()
	assert.Equal(t, "version="+entityID+"%2B2024-01-15T10%3A31%3A00Z", param)

	restored := NewBrowser(src, entityID, logger.Nop())
	require.NoError(t, restored.RestoreSelection(param))
	require.NoError(t, restored.Open(context.Background(), "live"))
	got, _ := restored.Selected()
	assert.Equal(t, v1, got)
}

func TestBrowser_RestoreSelectionRejects(t *testing.T) {
	b := NewBrowser(memorySource{}, entityID, logger.Nop())

	assert.ErrorIs(t, b.RestoreSelection("version="+otherID+"%2B2024-01-15T10%3A31%3A00Z"), ErrUnknownVersion)
	assert.Error(t, b.RestoreSelection("version=%zz"))
	assert.NoError(t, b.RestoreSelection(""))
}
