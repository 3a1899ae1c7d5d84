package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/MKhiriev/summarium/models"
	"github.com/go-resty/resty/v2"
)

// TranscribeField is the multipart field the server reads the audio from.
const TranscribeField = "audio"

const streamChunkSize = 4096

func (h *httpServerAdapter) Completion(ctx context.Context, prompt string, onDelta func(string)) error {
	return h.streamJSON(ctx, "/api/completion", models.CompletionRequest{Prompt: prompt}, onDelta)
}

func (h *httpServerAdapter) Tools(ctx context.Context, messages []models.ChatMessage, onDelta func(string)) error {
	return h.streamJSON(ctx, "/api/tools", models.ToolsRequest{Messages: messages}, onDelta)
}

func (h *httpServerAdapter) Suggestion(ctx context.Context, query string) (string, error) {
	var resp models.SuggestionResponse
	if err := h.getJSON(ctx, "/api/suggestion", url.Values{"query": {query}}, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (h *httpServerAdapter) Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string)) error {
	resp, err := h.authed(ctx, h.stream).
		SetFileReader(TranscribeField, filename, audio).
		SetDoNotParseResponse(true).
		Post("/api/transcribe")
	if err != nil {
		return fmt.Errorf("transcribe request: %w", err)
	}

	return readStream(resp, onWord)
}

func (h *httpServerAdapter) Speech(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error) {
	var resp models.SpeechResponse
	err := h.sendJSON(ctx, http.MethodPost, "/api/speech", req, &resp)
	return resp, err
}

func (h *httpServerAdapter) streamJSON(ctx context.Context, path string, body any, onDelta func(string)) error {
	req, err := h.jsonRequest(h.authed(ctx, h.stream), body)
	if err != nil {
		return err
	}

	resp, err := req.SetDoNotParseResponse(true).Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}

	return readStream(resp, onDelta)
}

// readStream hands the plain-text body to onDelta chunk by chunk. A rune
// split between two reads is held back until it is complete.
func readStream(resp *resty.Response, onDelta func(string)) error {
	if err := mapStreamError(resp); err != nil {
		return err
	}

	body := resp.RawBody()
	defer body.Close()

	buf := make([]byte, streamChunkSize)
	var pending []byte
	for {
		n, err := body.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			cut := completeRunes(pending)
			if cut > 0 {
				onDelta(string(pending[:cut]))
				pending = append(pending[:0], pending[cut:]...)
			}
		}
		if errors.Is(err, io.EOF) {
			if len(pending) > 0 {
				onDelta(string(pending))
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}
	}
}

// completeRunes returns the length of the longest prefix of b that does not
// end inside a multi-byte rune.
func completeRunes(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}
