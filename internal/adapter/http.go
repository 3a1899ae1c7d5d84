package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of a signed request body.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient
	// stream has no overall timeout: completions and transcripts last as
	// long as the server keeps writing. Only the context stops them.
	stream *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter]
// for the server at adapterCfg.HTTPAddress. A non-empty appCfg.HashKey makes
// every JSON body signed with the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(utils.WithBaseURL(baseURL), utils.WithTimeout(adapterCfg.RequestTimeout)),
		stream:  utils.NewHTTPClient(utils.WithBaseURL(baseURL)),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── auth ──

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	req, err := h.jsonRequest(h.client.R().SetContext(ctx), user)
	if err != nil {
		return models.Token{}, err
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	tokenString, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	token, err := models.ReadToken(tokenString)
	if err != nil {
		return models.Token{}, err
	}

	h.SetToken(tokenString)
	return token, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// ── notes ──

func (h *httpServerAdapter) ListNotes(ctx context.Context, archived bool) ([]models.Note, error) {
	var notes []models.Note
	err := h.getJSON(ctx, "/api/notes", url.Values{"archived": {strconv.FormatBool(archived)}}, &notes)
	return notes, err
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id string) (models.Note, error) {
	var note models.Note
	err := h.getJSON(ctx, "/api/note/"+url.PathEscape(id), nil, &note)
	return note, err
}

func (h *httpServerAdapter) SaveNote(ctx context.Context, id string, req models.SaveNoteRequest) (models.Note, error) {
	var note models.Note
	err := h.sendJSON(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), req, &note)
	return note, err
}

func (h *httpServerAdapter) ArchiveNote(ctx context.Context, id string, archived bool) (models.Note, error) {
	method := http.MethodPost
	if !archived {
		method = http.MethodDelete
	}

	var note models.Note
	err := h.sendJSON(ctx, method, "/api/notes/"+url.PathEscape(id)+"/archive", nil, &note)
	return note, err
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	return h.sendJSON(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

// ── journals ──

func (h *httpServerAdapter) ListJournals(ctx context.Context) ([]models.Journal, error) {
	var journals []models.Journal
	err := h.getJSON(ctx, "/api/journals", nil, &journals)
	return journals, err
}

func (h *httpServerAdapter) GetJournal(ctx context.Context, day string) (models.Journal, error) {
	var journal models.Journal
	err := h.getJSON(ctx, "/api/journal/"+url.PathEscape(day), nil, &journal)
	return journal, err
}

func (h *httpServerAdapter) SaveJournal(ctx context.Context, day string, req models.SaveJournalRequest) (models.Journal, error) {
	var journal models.Journal
	err := h.sendJSON(ctx, http.MethodPut, "/api/journals/"+url.PathEscape(day), req, &journal)
	return journal, err
}

func (h *httpServerAdapter) DeleteJournal(ctx context.Context, day string) error {
	return h.sendJSON(ctx, http.MethodDelete, "/api/journals/"+url.PathEscape(day), nil, nil)
}

// ── tasks ──

func (h *httpServerAdapter) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Priority != "" {
		query.Set("priority", string(filter.Priority))
	}

	var tasks []models.Task
	err := h.getJSON(ctx, "/api/tasks", query, &tasks)
	return tasks, err
}

func (h *httpServerAdapter) GetTask(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	err := h.getJSON(ctx, "/api/tasks/"+url.PathEscape(id), nil, &task)
	return task, err
}

func (h *httpServerAdapter) SaveTask(ctx context.Context, id string, req models.SaveTaskRequest) (models.Task, error) {
	var task models.Task
	err := h.sendJSON(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req, &task)
	return task, err
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, id string) error {
	return h.sendJSON(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

func (h *httpServerAdapter) ListActivities(ctx context.Context, taskID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := h.getJSON(ctx, "/api/tasks/"+url.PathEscape(taskID)+"/activities", nil, &activities)
	return activities, err
}

func (h *httpServerAdapter) CreateActivity(ctx context.Context, taskID string, req models.CreateActivityRequest) (models.Activity, error) {
	var activity models.Activity
	err := h.sendJSON(ctx, http.MethodPost, "/api/tasks/"+url.PathEscape(taskID)+"/activities", req, &activity)
	return activity, err
}

func (h *httpServerAdapter) DeleteActivity(ctx context.Context, id string) error {
	return h.sendJSON(ctx, http.MethodDelete, "/api/activities/"+url.PathEscape(id), nil, nil)
}

// ── search ──

func (h *httpServerAdapter) Search(ctx context.Context, query string, limit int) (models.SearchResponse, error) {
	params := url.Values{"q": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp models.SearchResponse
	err := h.getJSON(ctx, "/api/search", params, &resp)
	return resp, err
}

// ── plumbing ──

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.authed(ctx, h.client)
}

func (h *httpServerAdapter) authed(ctx context.Context, client *utils.HTTPClient) *resty.Request {
	req := client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// jsonRequest marshals body once so the signature covers exactly the bytes
// that are sent.
func (h *httpServerAdapter) jsonRequest(req *resty.Request, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashHex(payload))
	}
	return req, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	req := h.authedRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// sendJSON issues a write. A nil body sends no payload; a nil dst ignores
// the response body.
func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, body, dst any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		var err error
		if req, err = h.jsonRequest(req, body); err != nil {
			return err
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if dst == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
