// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/store"
)

type statusBody struct {
	status error
	body   string
}

// adapterStatuses is checked in order. The adapter wraps exactly one of them.
var adapterStatuses = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrBadGateway,
	adapter.ErrInternalServerError,
}

// businessErrors maps a status and the server's message to a service
// error. An empty body matches any message of that status.
var businessErrors = map[statusBody]error{
	{adapter.ErrBadRequest, app.MsgInvalidDataProvided}:   ErrInvalidDataProvided,
	{adapter.ErrBadRequest, app.MsgVersionIsNotSpecified}: ErrVersionIsNotSpecified,

	{adapter.ErrUnauthorized, app.MsgInvalidLoginPassword}:    ErrWrongPassword,
	{adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid}: ErrTokenIsExpiredOrInvalid,
	{adapter.ErrUnauthorized, ""}:                             ErrNotLoggedIn,

	{adapter.ErrNotFound, ""}: ErrServerNotFound,

	{adapter.ErrConflict, app.MsgLoginAlreadyExists}: store.ErrLoginAlreadyExists,

	{adapter.ErrBadGateway, app.MsgRegistrationFailed}:  ErrRegisterOnServer,
	{adapter.ErrBadGateway, app.MsgLoginFailed}:         ErrLoginOnServer,
	{adapter.ErrBadGateway, app.MsgProviderUnavailable}: ErrAIUnavailable,
	{adapter.ErrBadGateway, app.MsgProviderRejected}:    ErrAIRejected,

	{adapter.ErrInternalServerError, app.MsgSaveFailed}: ErrSaveFailed,
}

// mapAdapterError turns a transport error of the server adapter into the
// business error the screens know how to show. Unknown errors pass through.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	for _, status := range adapterStatuses {
		if !errors.Is(err, status) {
			continue
		}
		body := responseBody(err, status)
		if mapped, ok := businessErrors[statusBody{status, body}]; ok {
			return mapped
		}
		if mapped, ok := businessErrors[statusBody{status, ""}]; ok {
			return mapped
		}
		return err
	}
	return err
}

// responseBody returns the server message that follows "<status>: ".
func responseBody(err, status error) string {
	_, body, found := strings.Cut(err.Error(), status.Error()+": ")
	if !found {
		return ""
	}
	return strings.TrimSpace(body)
}
