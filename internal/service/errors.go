package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	// ErrInvalidDueDate is returned when a natural-language due phrase
	// cannot be understood.
	ErrInvalidDueDate = errors.New("due date phrase was not understood")

	// ErrInvalidSpeechID is returned when a speech id cannot be used as a
	// file name.
	ErrInvalidSpeechID = errors.New("speech id must contain only letters, digits, '-' and '_'")

	ErrUnknownTool = errors.New("unknown tool")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrSaveFailed       = errors.New("there was an error saving")
	ErrServerNotFound   = errors.New("not found on server")
	ErrAIUnavailable    = errors.New("ai provider unavailable")
	ErrAIRejected       = errors.New("ai provider rejected the request")
)
