package ai

import "errors"

var (
	// ErrProviderUnavailable covers network failures, timeouts, 429 and 5xx
	// answers of the provider.
	ErrProviderUnavailable = errors.New("ai provider unavailable")
	// ErrProviderRejected is returned for any other non-2xx answer.
	ErrProviderRejected = errors.New("ai provider rejected the request")
	// ErrEmptyCompletion is returned when the provider answered without a
	// single choice.
	ErrEmptyCompletion = errors.New("ai provider returned no choices")
)
