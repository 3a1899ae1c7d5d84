package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
)

const (
	// TranscribeField is the multipart field carrying the recording.
	TranscribeField = "audio"

	maxAudioSize = 25 << 20
)

// textStream writes plain-text fragments as they arrive, flushing after
// each one. The status is committed by the first fragment, so errors can
// only be reported before it.
type textStream struct {
	w       http.ResponseWriter
	rc      *http.ResponseController
	started bool
}

func newTextStream(w http.ResponseWriter) *textStream {
	return &textStream{w: w, rc: http.NewResponseController(w)}
}

func (s *textStream) write(fragment string) error {
	if !s.started {
		s.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		s.w.Header().Set("X-Content-Type-Options", "nosniff")
		s.w.WriteHeader(http.StatusOK)
		s.started = true
	}
	if _, err := io.WriteString(s.w, fragment); err != nil {
		return err
	}
	if err := s.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}

// finish reports err if nothing has been streamed yet and logs it otherwise.
func (s *textStream) finish(r *http.Request, fn string, err error) {
	switch {
	case err == nil && !s.started:
		s.w.WriteHeader(http.StatusOK)
	case err == nil:
	case !s.started:
		writeError(s.w, r, fn, err)
	default:
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("stream interrupted")
	}
}

func (h *Handler) completion(w http.ResponseWriter, r *http.Request) {
	var req models.CompletionRequest
	if !h.decodeValid(w, r, "*Handler.completion", &req) {
		return
	}

	stream := newTextStream(w)
	err := h.services.AIService.Completion(r.Context(), req.Prompt, stream.write)
	stream.finish(r, "*Handler.completion", err)
}

func (h *Handler) tools(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	var req models.ToolsRequest
	if !h.decodeValid(w, r, "*Handler.tools", &req) {
		return
	}

	stream := newTextStream(w)
	err := h.services.AIService.Tools(r.Context(), userID, req.Messages, stream.write)
	stream.finish(r, "*Handler.tools", err)
}

func (h *Handler) suggestion(w http.ResponseWriter, r *http.Request) {
	text, err := h.services.AIService.Suggestion(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, "*Handler.suggestion", err)
		return
	}

	utils.WriteJSON(w, models.SuggestionResponse{Text: text}, http.StatusOK)
}

// transcribe streams the words of the uploaded recording. A client that
// disconnects cancels the request context and with it the stream.
func (h *Handler) transcribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioSize)
	file, header, err := r.FormFile(TranscribeField)
	if err != nil {
		log.Err(err).Str("func", "*Handler.transcribe").Msg("no audio file in form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer file.Close()

	stream := newTextStream(w)
	err = h.services.AIService.Transcribe(r.Context(), header.Filename, file, stream.write)
	stream.finish(r, "*Handler.transcribe", err)
}

func (h *Handler) speech(w http.ResponseWriter, r *http.Request) {
	var req models.SpeechRequest
	if !h.decodeValid(w, r, "*Handler.speech", &req) {
		return
	}

	resp, err := h.services.AIService.Speech(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.speech", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// decodeValid decodes and validates the JSON body into dst, answering 400
// on failure.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	log := logger.FromRequest(r)

	if err := utils.DecodeJSON(r, dst); err != nil {
		log.Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	if err := h.validator.Validate(r.Context(), dst); err != nil {
		log.Err(err).Str("func", fn).Msg("request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
