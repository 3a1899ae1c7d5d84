// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns service errors into the short messages shown in
// forms and toasts.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong login or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is taken"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotLoggedIn):
		return "Session expired, log in again"
	case errors.Is(err, service.ErrAIUnavailable):
		return "The assistant is unavailable"
	case errors.Is(err, service.ErrAIRejected):
		return "The assistant rejected the request"
	case errors.Is(err, service.ErrServerNotFound):
		return "Not found"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid data"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
