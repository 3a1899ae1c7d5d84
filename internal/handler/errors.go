// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server has no
// address to listen on.
var errNoHTTPAddress = errors.New("server HTTP address is not configured")
