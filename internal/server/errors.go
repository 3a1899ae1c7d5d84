// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoListener is returned by NewServer when there is nothing to serve
	// or nowhere to listen.
	errNoListener = errors.New("server needs HTTP handlers and an address")

	errNoHTTPServer = errors.New("http server is not built")
)
