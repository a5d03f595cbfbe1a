package registry

import "errors"

var (
	// ErrCodeTaken is returned when a tenant code, database name or owner
	// email already exists in the registry.
	ErrCodeTaken = errors.New("tenant code is already taken")

	// ErrInvalidCode is returned when a tenant code violates the naming
	// rules (lowercase alphanumeric, starts with a letter, max 20 chars).
	ErrInvalidCode = errors.New("invalid tenant code")

	// ErrInvalidConfig is returned when a tenant config payload is not a
	// JSON object.
	ErrInvalidConfig = errors.New("tenant config must be a JSON object")

	// ErrMissingField is returned when a required provisioning field is empty.
	ErrMissingField = errors.New("missing required field")
)
