// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Summarium server handlers and the client adapter.
//
// All Msg* constants are the plain-text bodies of error responses. The
// client matches on them to restore the server-side sentinel error, so the
// wording must stay stable.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned for an unknown login or a wrong
	// password. The two cases are not told apart.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// missing, expired, badly signed or revoked by logout.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided = "no user ID provided"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
	MsgLoginAlreadyExists = "login already exists"

	// MsgNotFound covers missing entities, entities of other users and
	// malformed ids.
	MsgNotFound = "not found"

	// MsgSaveFailed is shown to the user as a toast when a write fails.
	MsgSaveFailed = "there was an error saving"

	// MsgProviderUnavailable is returned when the AI provider cannot be
	// reached or is overloaded.
	MsgProviderUnavailable = "ai provider unavailable"

	// MsgProviderRejected is returned when the AI provider refused the
	// request.
	MsgProviderRejected = "ai provider rejected the request"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"

	MsgVersionIsNotSpecified = "version is not specified"
)
