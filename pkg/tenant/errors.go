package tenant

import "errors"

var (
	// ErrMissingTenantID is returned when a protected request carries no
	// tenant identifier in the context or the tenant header.
	ErrMissingTenantID = errors.New("tenant identifier is required")

	// ErrInvalidIdentifier is returned when the identifier format is not a
	// plausible tenant code.
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")

	// ErrTenantNotFound is returned when the master registry has no tenant
	// for the resolved code.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrSubscriptionSuspended is returned when the tenant exists but its
	// subscription is suspended for payment reasons.
	ErrSubscriptionSuspended = errors.New("tenant subscription is suspended")

	// ErrTenantNotOperational is returned when the tenant exists but its
	// status blocks access for a non-payment reason (cancelled, blocked,
	// inactive, deleted).
	ErrTenantNotOperational = errors.New("tenant is not operational")

	// ErrNoTenantInContext is returned when an operation that requires a
	// bound tenant finds none in the context.
	ErrNoTenantInContext = errors.New("no tenant in context")
)
