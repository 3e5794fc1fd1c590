package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrType is the failure class for values whose Go type does not match the declared constraint.
	ErrType = errors.New("type mismatch")

	// ErrValue is the failure class for values that are negative or empty where that is not allowed.
	ErrValue = errors.New("invalid value")

	// ErrUnknownKind is returned when a registry has no kind under the requested name.
	ErrUnknownKind = errors.New("unknown validator kind")

	// ErrDuplicateKind is returned when a kind name is registered twice.
	ErrDuplicateKind = errors.New("validator kind already registered")

	// ErrInvalidKind is returned when registering a kind without a name.
	ErrInvalidKind = errors.New("invalid validator kind")
)
