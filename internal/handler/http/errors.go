// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors logged by the middlewares. Clients never see them: auth failures
// answer app.MsgTokenIsExpiredOrInvalid and hash failures
// app.MsgHashMismatch.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrBodyHashMismatch means the HashSHA256 header does not match the
	// body signed with the server's hash key.
	ErrBodyHashMismatch = errors.New("request body hash mismatch")
)
