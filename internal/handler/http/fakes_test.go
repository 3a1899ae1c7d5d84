package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
)

// Func-field fakes of the service interfaces. A nil field panics, which
// chi's Recoverer turns into 500, so tests only set what they expect.

const (
	testUserID  int64 = 42
	testToken         = "good-token"
	testEntity        = "3f0c3b8e-4f7e-4c52-9a8b-0f6f2d1c9a11"
	testVersion       = "1.2.3"
)

type fakeAuth struct {
	registerFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn    func(ctx context.Context, user models.User) (models.User, error)
	logoutFn   func(ctx context.Context, token models.Token) error
}

func (f *fakeAuth) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return f.registerFn(ctx, user)
}

func (f *fakeAuth) Login(ctx context.Context, user models.User) (models.User, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeAuth) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-for-" + user.Login, UserID: user.UserID}, nil
}

// ParseToken accepts testToken only.
func (f *fakeAuth) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	token := models.Token{SignedString: tokenString, UserID: testUserID}
	token.ID = "jti-1"
	return token, nil
}

func (f *fakeAuth) Logout(ctx context.Context, token models.Token) error {
	return f.logoutFn(ctx, token)
}

type fakeAppInfo struct{}

func (fakeAppInfo) GetAppVersion(context.Context) string { return testVersion }

type fakeNotes struct {
	listFn    func(ctx context.Context, userID int64, archived bool) ([]models.Note, error)
	getFn     func(ctx context.Context, userID int64, id string) (models.Note, error)
	saveFn    func(ctx context.Context, userID int64, id string, req models.SaveNoteRequest) (models.Note, error)
	archiveFn func(ctx context.Context, userID int64, id string, archived bool) (models.Note, error)
	deleteFn  func(ctx context.Context, userID int64, id string) error
}

func (f *fakeNotes) List(ctx context.Context, userID int64, archived bool) ([]models.Note, error) {
	return f.listFn(ctx, userID, archived)
}

func (f *fakeNotes) Get(ctx context.Context, userID int64, id string) (models.Note, error) {
	return f.getFn(ctx, userID, id)
}

func (f *fakeNotes) Save(ctx context.Context, userID int64, id string, req models.SaveNoteRequest) (models.Note, error) {
	return f.saveFn(ctx, userID, id, req)
}

func (f *fakeNotes) Archive(ctx context.Context, userID int64, id string, archived bool) (models.Note, error) {
	return f.archiveFn(ctx, userID, id, archived)
}

func (f *fakeNotes) Delete(ctx context.Context, userID int64, id string) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeJournals struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Journal, error)
	getFn    func(ctx context.Context, userID int64, day string) (models.Journal, error)
	saveFn   func(ctx context.Context, userID int64, day string, req models.SaveJournalRequest) (models.Journal, error)
	deleteFn func(ctx context.Context, userID int64, day string) error
}

func (f *fakeJournals) List(ctx context.Context, userID int64) ([]models.Journal, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeJournals) Get(ctx context.Context, userID int64, day string) (models.Journal, error) {
	return f.getFn(ctx, userID, day)
}

func (f *fakeJournals) Save(ctx context.Context, userID int64, day string, req models.SaveJournalRequest) (models.Journal, error) {
	return f.saveFn(ctx, userID, day, req)
}

func (f *fakeJournals) Delete(ctx context.Context, userID int64, day string) error {
	return f.deleteFn(ctx, userID, day)
}

type fakeTasks struct {
	listFn   func(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	getFn    func(ctx context.Context, userID int64, id string) (models.Task, error)
	saveFn   func(ctx context.Context, userID int64, id string, req models.SaveTaskRequest) (models.Task, error)
	deleteFn func(ctx context.Context, userID int64, id string) error
}

func (f *fakeTasks) List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	return f.listFn(ctx, userID, filter)
}

func (f *fakeTasks) Get(ctx context.Context, userID int64, id string) (models.Task, error) {
	return f.getFn(ctx, userID, id)
}

func (f *fakeTasks) Save(ctx context.Context, userID int64, id string, req models.SaveTaskRequest) (models.Task, error) {
	return f.saveFn(ctx, userID, id, req)
}

func (f *fakeTasks) Delete(ctx context.Context, userID int64, id string) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeActivities struct {
	listFn   func(ctx context.Context, userID int64, taskID string) ([]models.Activity, error)
	createFn func(ctx context.Context, userID int64, taskID string, req models.CreateActivityRequest) (models.Activity, error)
	deleteFn func(ctx context.Context, userID int64, id string) error
}

func (f *fakeActivities) List(ctx context.Context, userID int64, taskID string) ([]models.Activity, error) {
	return f.listFn(ctx, userID, taskID)
}

func (f *fakeActivities) Create(ctx context.Context, userID int64, taskID string, req models.CreateActivityRequest) (models.Activity, error) {
	return f.createFn(ctx, userID, taskID, req)
}

func (f *fakeActivities) Delete(ctx context.Context, userID int64, id string) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeSearch struct {
	searchFn func(ctx context.Context, userID int64, query string, limit int) (models.SearchResponse, error)
}

func (f *fakeSearch) Search(ctx context.Context, userID int64, query string, limit int) (models.SearchResponse, error) {
	return f.searchFn(ctx, userID, query, limit)
}

type fakeAI struct {
	completionFn func(ctx context.Context, prompt string, onDelta func(string) error) error
	toolsFn      func(ctx context.Context, userID int64, messages []models.ChatMessage, onDelta func(string) error) error
	suggestionFn func(ctx context.Context, query string) (string, error)
	transcribeFn func(ctx context.Context, filename string, audio io.Reader, onWord func(string) error) error
	speechFn     func(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error)
}

func (f *fakeAI) Completion(ctx context.Context, prompt string, onDelta func(string) error) error {
	return f.completionFn(ctx, prompt, onDelta)
}

func (f *fakeAI) Tools(ctx context.Context, userID int64, messages []models.ChatMessage, onDelta func(string) error) error {
	return f.toolsFn(ctx, userID, messages, onDelta)
}

func (f *fakeAI) Suggestion(ctx context.Context, query string) (string, error) {
	return f.suggestionFn(ctx, query)
}

func (f *fakeAI) Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string) error) error {
	return f.transcribeFn(ctx, filename, audio, onWord)
}

func (f *fakeAI) Speech(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error) {
	return f.speechFn(ctx, req)
}

// newTestServices fills every service with an empty fake.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     &fakeAuth{},
		AppInfoService:  fakeAppInfo{},
		NoteService:     &fakeNotes{},
		JournalService:  &fakeJournals{},
		TaskService:     &fakeTasks{},
		ActivityService: &fakeActivities{},
		SearchService:   &fakeSearch{},
		AIService:       &fakeAI{},
	}
}

func newTestRouter(t *testing.T, services *service.Services, cfg config.StructuredConfig) http.Handler {
	t.Helper()
	return NewHandler(services, cfg, logger.Nop()).Init()
}

// serve runs an authorized request through router.
func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// responseBody returns the body the way http.Error wrote it.
func responseBody(rr *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rr.Body.String())
}
