package adapter

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed streaming response is read.
const maxErrorBody = 4 << 10

// statusErrors are the answers the server gives on purpose. The body that
// comes with them is one of the app.Msg* texts.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapStreamError maps a response whose body was left unread for streaming.
// On failure the body is drained and closed.
func mapStreamError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}
	defer resp.RawBody().Close()

	body, _ := io.ReadAll(io.LimitReader(resp.RawBody(), maxErrorBody))
	return mapStatus(resp.StatusCode(), string(body))
}

func mapStatus(status int, body string) error {
	if isSuccess(status) {
		return nil
	}

	body = strings.TrimSpace(body)
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
