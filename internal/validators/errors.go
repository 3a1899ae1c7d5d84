package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidRequest wraps every rule violation. The message lists the
	// offending fields by their JSON names.
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidID      = errors.New("invalid entity id")
	ErrInvalidDay     = errors.New("invalid journal day")
)
