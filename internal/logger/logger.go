// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across summarium.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request code should obtain its logger via FromRequest or
// FromContext, which return the logger the withTraceID middleware attached
// together with the request's trace id.
package logger

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the file name the TUI writes to when no path is
// configured. The terminal belongs to bubbletea, so the client never logs
// to stdout.
const DefaultClientLogFile = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server's JSON logger writing to stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// with the fully-qualified function name. level accepts zerolog level names
// ("debug", "info", ...); an empty or unknown value means debug.
func NewLogger(role string, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewClientLogger builds the TUI logger. It appends to path, or to
// DefaultClientLogFile next to the executable when path is empty, and
// discards output if the file cannot be opened.
func NewClientLogger(role string, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role, "debug")
}

func newLogger(out io.Writer, role string, level string) *Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// StdLogger adapts l for APIs that only accept a *log.Logger, such as
// http.Server.ErrorLog.
func (l *Logger) StdLogger() *stdlog.Logger {
	return stdlog.New(l.Logger, "", 0)
}

// WithContext attaches the logger to ctx so FromContext can find it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
