// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs and path parameters before they
// reach the services.
//
// Struct rules live in `validate` tags on the models. Validate accepts an
// optional list of field names (Go names) to check only a subset.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input and optionally restricts validation
// to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
	// ValidateID checks that id is a canonical UUID.
	ValidateID(id string) error
	// ValidateDay checks that day is a YYYY-MM-DD calendar date.
	ValidateDay(day string) error
}
