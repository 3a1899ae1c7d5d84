package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"
	maxTraceIDLen = 64
)

// withTraceID puts a request logger carrying trace_id into the context and
// echoes the id back. An absent or unusable incoming id is replaced.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !usableTraceID(traceID) {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
	})
}

// usableTraceID accepts short printable ASCII ids so a client cannot push
// control characters or huge values into the logs.
func usableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
