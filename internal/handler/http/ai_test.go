package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/summarium/internal/ai"
	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_Streams(t *testing.T) {
	services := newTestServices()
	services.AIService = &fakeAI{
		completionFn: func(_ context.Context, prompt string, onDelta func(string) error) error {
			assert.Equal(t, "Once upon", prompt)
			for _, d := range []string{" a", " time"} {
				if err := onDelta(d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	router := newTestRouter(t, services, config.StructuredConfig{})

	rr := serve(router, http.MethodPost, "/api/completion", `{"prompt":"Once upon"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, " a time", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.True(t, rr.Flushed)
}

func TestCompletion_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		partial    bool
		wantStatus int
		wantBody   string
	}{
		{name: "empty prompt", body: `{"prompt":""}`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "provider down", body: `{"prompt":"x"}`, err: ai.ErrProviderUnavailable, wantStatus: http.StatusBadGateway, wantBody: app.MsgProviderUnavailable},
		{name: "provider refused", body: `{"prompt":"x"}`, err: ai.ErrProviderRejected, wantStatus: http.StatusBadGateway, wantBody: app.MsgProviderRejected},
		{name: "failure after first fragment", body: `{"prompt":"x"}`, err: ai.ErrProviderUnavailable, partial: true, wantStatus: http.StatusOK, wantBody: "half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AIService = &fakeAI{
				completionFn: func(_ context.Context, _ string, onDelta func(string) error) error {
					if tt.partial {
						require.NoError(t, onDelta("half"))
					}
					return tt.err
				},
			}
			router := newTestRouter(t, services, config.StructuredConfig{})

			rr := serve(router, http.MethodPost, "/api/completion", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, responseBody(rr))
		})
	}
}

func TestTools_PassesUserAndMessages(t *testing.T) {
	services := newTestServices()
	services.AIService = &fakeAI{
		toolsFn: func(_ context.Context, userID int64, messages []models.ChatMessage, onDelta func(string) error) error {
			assert.Equal(t, testUserID, userID)
			require.Len(t, messages, 1)
			assert.Equal(t, "user", messages[0].Role)
			return onDelta("Created 1 task.")
		},
	}
	router := newTestRouter(t, services, config.StructuredConfig{})

	rr := serve(router, http.MethodPost, "/api/tools", `{"messages":[{"role":"user","content":"remind me to call mom"}]}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Created 1 task.", rr.Body.String())
}

func TestTools_RejectsUnknownRole(t *testing.T) {
	router := newTestRouter(t, newTestServices(), config.StructuredConfig{})

	rr := serve(router, http.MethodPost, "/api/tools", `{"messages":[{"role":"wizard","content":"hi"}]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSuggestion(t *testing.T) {
	services := newTestServices()
	services.AIService = &fakeAI{
		suggestionFn: func(_ context.Context, query string) (string, error) {
			assert.Equal(t, "buy mi", query)
			return "lk", nil
		},
	}
	router := newTestRouter(t, services, config.StructuredConfig{})

	rr := serve(router, http.MethodGet, "/api/suggestion?query=buy+mi", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"text":"lk"}`, rr.Body.String())
}

func multipartAudio(t *testing.T, field, filename string, audio []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(audio)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestTranscribe(t *testing.T) {
	services := newTestServices()
	services.AIService = &fakeAI{
		transcribeFn: func(_ context.Context, filename string, audio io.Reader, onWord func(string) error) error {
			assert.Equal(t, "memo.webm", filename)
			data, err := io.ReadAll(audio)
			require.NoError(t, err)
			assert.Equal(t, []byte("RIFF"), data)

			for _, w := range []string{"hello ", "there "} {
				if err := onWord(w); err != nil {
					return err
				}
			}
			return nil
		},
	}
	router := newTestRouter(t, services, config.StructuredConfig{})

	body, contentType := multipartAudio(t, TranscribeField, "memo.webm", []byte("RIFF"))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello there ", rr.Body.String())
}

func TestTranscribe_MissingFile(t *testing.T) {
	router := newTestRouter(t, newTestServices(), config.StructuredConfig{})

	body, contentType := multipartAudio(t, "recording", "memo.webm", []byte("RIFF"))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, responseBody(rr))
}

func TestSpeech(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "synthesized",
			body:       `{"id":"note-1","text":"Read this aloud."}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"urls":["/static/speech/note-1-0.mp3"]}`,
		},
		{name: "missing text", body: `{"id":"note-1"}`, wantStatus: http.StatusBadRequest},
		{name: "provider failure", body: `{"id":"note-1","text":"x"}`, err: errors.New("tts exploded"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AIService = &fakeAI{
				speechFn: func(_ context.Context, req models.SpeechRequest) (models.SpeechResponse, error) {
					if tt.err != nil {
						return models.SpeechResponse{}, tt.err
					}
					return models.SpeechResponse{URLs: []string{"/static/speech/" + req.ID + "-0.mp3"}}, nil
				},
			}
			router := newTestRouter(t, services, config.StructuredConfig{})

			rr := serve(router, http.MethodPost, "/api/speech", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
