package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/mock"
	"github.com/MKhiriev/summarium/internal/search"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/testutil"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID int64 = 7
	testNoteID       = "3f0c3b8e-4f7e-4c52-9a8b-0f6f2d1c9a11"
	testTaskID       = "9d2b8c1e-7a41-4b0e-8f55-1c3a2e6d7b90"
	testDay          = "2024-01-15"
)

// recordingIndexer collects index updates synchronously.
type recordingIndexer struct {
	mu      sync.Mutex
	indexed []search.Document
	removed []string
}

func (r *recordingIndexer) Index(doc search.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed = append(r.indexed, doc)
}

func (r *recordingIndexer) Remove(kind models.EntityKind, userID int64, entityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, search.DocumentID(kind, userID, entityID))
}

// requestContext mimics the withMemo middleware.
func requestContext() context.Context {
	return utils.WithMemo(context.Background(), utils.NewMemo())
}

// ── notes ──

func TestNoteService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewNoteService(repo, indexer, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, testNoteID, n.ID)
			assert.Equal(t, testUserID, n.UserID)
			assert.Equal(t, "Hello world", n.SanitizedContent)
			n.UpdatedAt = testutil.FixedTime
			return n, nil
		})

	saved, err := svc.Save(requestContext(), testUserID, testNoteID, models.SaveNoteRequest{
		Title:   "Greeting",
		Content: "<p>Hello <b>world</b></p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", saved.SanitizedContent)

	require.Len(t, indexer.indexed, 1)
	assert.Equal(t, search.DocumentID(models.KindNote, testUserID, testNoteID), indexer.indexed[0].ID)
	assert.Equal(t, "Greeting", indexer.indexed[0].Title)
}

func TestNoteService_SaveIgnoresClientSanitizedContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(repo, &recordingIndexer{}, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "real", n.SanitizedContent)
			return n, nil
		})

	_, err := svc.Save(context.Background(), testUserID, testNoteID, models.SaveNoteRequest{
		Content:          "<p>real</p>",
		SanitizedContent: "forged",
	})
	require.NoError(t, err)
}

func TestNoteService_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(repo, &recordingIndexer{}, validators.NewRequestValidator(), logger.Nop())
	ctx := context.Background()

	_, err := svc.Get(ctx, testUserID, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Save(ctx, testUserID, "not-a-uuid", models.SaveNoteRequest{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Save(ctx, testUserID, testNoteID, models.SaveNoteRequest{Title: strings.Repeat("x", 513)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.ErrorIs(t, svc.Delete(ctx, testUserID, ""), store.ErrNotFound)
}

func TestNoteService_ListIsMemoizedUntilWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(repo, &recordingIndexer{}, validators.NewRequestValidator(), logger.Nop())
	ctx := requestContext()

	notes := []models.Note{{ID: testNoteID, UserID: testUserID, Title: "a"}}
	repo.EXPECT().List(gomock.Any(), testUserID, false).Return(notes, nil).Times(2)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) { return n, nil })

	for range 2 {
		got, err := svc.List(ctx, testUserID, false)
		require.NoError(t, err)
		assert.Equal(t, notes, got)
	}

	_, err := svc.Save(ctx, testUserID, testNoteID, models.SaveNoteRequest{Title: "b"})
	require.NoError(t, err)

	_, err = svc.List(ctx, testUserID, false)
	require.NoError(t, err)
}

func TestNoteService_ArchiveAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewNoteService(repo, indexer, validators.NewRequestValidator(), logger.Nop())
	ctx := context.Background()

	archivedAt := testutil.FixedTime
	repo.EXPECT().SetArchived(gomock.Any(), testUserID, testNoteID, true).
		Return(models.Note{ID: testNoteID, ArchivedAt: &archivedAt}, nil)
	repo.EXPECT().Delete(gomock.Any(), testUserID, testNoteID).Return(nil)

	note, err := svc.Archive(ctx, testUserID, testNoteID, true)
	require.NoError(t, err)
	assert.True(t, note.Archived())

	require.NoError(t, svc.Delete(ctx, testUserID, testNoteID))
	assert.Equal(t, []string{search.DocumentID(models.KindNote, testUserID, testNoteID)}, indexer.removed)
}

func TestNoteService_DeleteMissingKeepsIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewNoteService(repo, indexer, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Delete(gomock.Any(), testUserID, testNoteID).Return(store.ErrNotFound)

	err := svc.Delete(context.Background(), testUserID, testNoteID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, indexer.removed)
}

// ── journals ──

func TestJournalService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewJournalService(repo, indexer, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j models.Journal) (models.Journal, error) {
			assert.Equal(t, testDay, j.Day)
			assert.Equal(t, "first\nsecond", j.SanitizedContent)
			j.ID = testNoteID
			return j, nil
		})

	saved, err := svc.Save(context.Background(), testUserID, testDay, models.SaveJournalRequest{Content: "<p>first</p><p>second</p>"})
	require.NoError(t, err)
	assert.Equal(t, testDay, saved.Day)

	require.Len(t, indexer.indexed, 1)
	assert.Equal(t, search.DocumentID(models.KindJournal, testUserID, testDay), indexer.indexed[0].ID)
}

func TestJournalService_MalformedDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)
	svc := NewJournalService(repo, &recordingIndexer{}, validators.NewRequestValidator(), logger.Nop())
	ctx := context.Background()

	for _, day := range []string{"", "2024-13-01", "yesterday", "2024-02-30"} {
		_, err := svc.Get(ctx, testUserID, day)
		assert.ErrorIs(t, err, validators.ErrInvalidDay, day)

		_, err = svc.Save(ctx, testUserID, day, models.SaveJournalRequest{})
		assert.ErrorIs(t, err, validators.ErrInvalidDay, day)

		assert.ErrorIs(t, svc.Delete(ctx, testUserID, day), store.ErrNotFound, day)
	}
}

func TestJournalService_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewJournalService(repo, indexer, validators.NewRequestValidator(), logger.Nop())
	ctx := requestContext()

	repo.EXPECT().Get(gomock.Any(), testUserID, testDay).Return(models.Journal{Day: testDay}, nil).Times(1)
	repo.EXPECT().List(gomock.Any(), testUserID).Return([]models.Journal{{Day: testDay}}, nil).Times(2)
	repo.EXPECT().Delete(gomock.Any(), testUserID, testDay).Return(nil)

	for range 2 {
		got, err := svc.Get(ctx, testUserID, testDay)
		require.NoError(t, err)
		assert.Equal(t, testDay, got.Day)
	}

	_, err := svc.List(ctx, testUserID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, testUserID, testDay))
	_, err = svc.List(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, []string{search.DocumentID(models.KindJournal, testUserID, testDay)}, indexer.removed)
}

// ── tasks ──

func newTestTaskService(t *testing.T) (TaskService, *mock.MockTaskRepository, *recordingIndexer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTaskRepository(ctrl)
	indexer := &recordingIndexer{}
	svc := NewTaskService(repo, indexer, validators.NewRequestValidator(), NewDueDateParser(testutil.FixedClock()), logger.Nop())
	return svc, repo, indexer
}

func echoTask(_ context.Context, task models.Task) (models.Task, error) {
	return task, nil
}

func TestTaskService_SaveDefaults(t *testing.T) {
	svc, repo, indexer := newTestTaskService(t)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(echoTask)

	saved, err := svc.Save(context.Background(), testUserID, testTaskID, models.SaveTaskRequest{
		Title:       "Buy milk",
		Description: "<p>two <em>litres</em></p>",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusBacklog, saved.Status)
	assert.Equal(t, models.PriorityNone, saved.Priority)
	assert.Equal(t, "two litres", saved.SanitizedDescription)
	assert.Nil(t, saved.DueDate)
	require.Len(t, indexer.indexed, 1)
	assert.Equal(t, models.KindTask, indexer.indexed[0].Kind)
}

func TestTaskService_SaveResolvesDuePhrase(t *testing.T) {
	svc, repo, _ := newTestTaskService(t)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(echoTask)

	saved, err := svc.Save(context.Background(), testUserID, testTaskID, models.SaveTaskRequest{
		Title: "Call mom",
		Due:   "tomorrow",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.DueDate)
	assert.Equal(t, "2024-01-16", saved.DueDate.Format(time.DateOnly))
}

func TestTaskService_ExplicitDueDateWins(t *testing.T) {
	svc, repo, _ := newTestTaskService(t)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(echoTask)

	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	saved, err := svc.Save(context.Background(), testUserID, testTaskID, models.SaveTaskRequest{
		Title:   "Taxes",
		DueDate: &due,
		Due:     "tomorrow",
	})
	require.NoError(t, err)
	assert.Equal(t, due, *saved.DueDate)
}

func TestTaskService_SaveRejects(t *testing.T) {
	svc, _, indexer := newTestTaskService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, testUserID, testTaskID, models.SaveTaskRequest{Title: "x", Due: "banana"})
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	_, err = svc.Save(ctx, testUserID, testTaskID, models.SaveTaskRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Save(ctx, testUserID, testTaskID, models.SaveTaskRequest{Priority: "whenever"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Save(ctx, testUserID, "123", models.SaveTaskRequest{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Empty(t, indexer.indexed)
}

func TestTaskService_ListFilter(t *testing.T) {
	svc, repo, _ := newTestTaskService(t)
	ctx := context.Background()

	filter := models.TaskFilter{Status: models.StatusTodo, Priority: models.PriorityHigh}
	repo.EXPECT().List(gomock.Any(), testUserID, filter).Return([]models.Task{{ID: testTaskID}}, nil)

	tasks, err := svc.List(ctx, testUserID, filter)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = svc.List(ctx, testUserID, models.TaskFilter{Status: "soon"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_DeleteForgetsActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	taskRepo := mock.NewMockTaskRepository(ctrl)
	activityRepo := mock.NewMockActivityRepository(ctrl)
	validator := validators.NewRequestValidator()
	tasks := NewTaskService(taskRepo, &recordingIndexer{}, validator, NewDueDateParser(nil), logger.Nop())
	activities := NewActivityService(activityRepo, validator, logger.Nop())
	ctx := requestContext()

	activityRepo.EXPECT().List(gomock.Any(), testUserID, testTaskID).Return([]models.Activity{{Comment: "x"}}, nil).Times(2)
	taskRepo.EXPECT().Delete(gomock.Any(), testUserID, testTaskID).Return(nil)

	_, err := activities.List(ctx, testUserID, testTaskID)
	require.NoError(t, err)
	_, err = activities.List(ctx, testUserID, testTaskID)
	require.NoError(t, err)

	require.NoError(t, tasks.Delete(ctx, testUserID, testTaskID))

	_, err = activities.List(ctx, testUserID, testTaskID)
	require.NoError(t, err)
}

// ── activities ──

func TestActivityService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRequestValidator(), logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Create(gomock.Any(), models.Activity{TaskID: testTaskID, UserID: testUserID, Comment: "started"}).
		Return(models.Activity{ID: testNoteID, TaskID: testTaskID, Comment: "started", CreatedAt: testutil.FixedTime}, nil)

	activity, err := svc.Create(ctx, testUserID, testTaskID, models.CreateActivityRequest{Comment: "started"})
	require.NoError(t, err)
	assert.Equal(t, testNoteID, activity.ID)

	_, err = svc.Create(ctx, testUserID, testTaskID, models.CreateActivityRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(ctx, testUserID, "task-1", models.CreateActivityRequest{Comment: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestActivityService_CreateOnForeignTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Activity{}, store.ErrNotFound)

	_, err := svc.Create(context.Background(), testUserID, testTaskID, models.CreateActivityRequest{Comment: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestActivityService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRequestValidator(), logger.Nop())

	repo.EXPECT().Delete(gomock.Any(), testUserID, testNoteID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), testUserID, testNoteID))
	assert.ErrorIs(t, svc.Delete(context.Background(), testUserID, "x"), store.ErrNotFound)
}
