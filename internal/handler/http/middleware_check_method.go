// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/summarium/internal/logger"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. It answers 404
// instead of chi's 405, so a path served for other methods looks like an
// unknown route.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this path")
	http.NotFound(w, r)
}
