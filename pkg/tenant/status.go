package tenant

import "github.com/metafit/gymkit/pkg/lifecycle"

// Status is the canonical tenant account status stored in the master
// registry. Earlier iterations of the product carried separate account and
// subscription status vocabularies; this enumeration is the merged source of
// truth for every routing decision.
type Status string

const (
	StatusProvisioning Status = "PROVISIONING"
	StatusTrial        Status = "TRIAL"
	StatusActive       Status = "ACTIVE"
	StatusSuspended    Status = "SUSPENDED"
	StatusInactive     Status = "INACTIVE"
	StatusCancelled    Status = "CANCELLED"
	StatusBlocked      Status = "BLOCKED"
	StatusDeleted      Status = "DELETED"
)

// Lifecycle events accepted by the tenant status machine. Administrative
// tooling fires these through the registry service; direct status writes
// bypass transition validation and are not allowed.
const (
	EventStartTrial = "start_trial"
	EventActivate   = "activate"
	EventSuspend    = "suspend"
	EventDeactivate = "deactivate"
	EventCancel     = "cancel"
	EventBlock      = "block"
	EventDelete     = "delete"
)

func (s Status) String() string { return string(s) }

// Operational reports whether requests for a tenant in this status may
// proceed to data access. Trial and provisioning tenants are allowed in so
// onboarding flows can run before the first payment.
func (s Status) Operational() bool {
	switch s {
	case StatusActive, StatusTrial, StatusProvisioning:
		return true
	}
	return false
}

// Suspended reports whether the tenant is blocked for payment reasons.
// Suspension maps to HTTP 402 rather than the 403 used for the other
// non-operational statuses.
func (s Status) Suspended() bool { return s == StatusSuspended }

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusProvisioning, StatusTrial, StatusActive, StatusSuspended,
		StatusInactive, StatusCancelled, StatusBlocked, StatusDeleted:
		return true
	}
	return false
}

// Lifecycle returns the canonical tenant status machine:
//
//	PROVISIONING -> {TRIAL, ACTIVE}
//	TRIAL        -> {ACTIVE, SUSPENDED}
//	ACTIVE      <-> SUSPENDED, ACTIVE <-> INACTIVE
//	SUSPENDED    -> CANCELLED
//	any live     -> BLOCKED, any -> DELETED
//
// BLOCKED and DELETED are terminal except that a blocked tenant may still be
// deleted.
func Lifecycle() *lifecycle.Machine {
	m := lifecycle.New(StatusProvisioning.String())

	m.Allow(StatusProvisioning.String(), EventStartTrial, StatusTrial.String())
	m.Allow(StatusProvisioning.String(), EventActivate, StatusActive.String())

	m.Allow(StatusTrial.String(), EventActivate, StatusActive.String())
	m.Allow(StatusTrial.String(), EventSuspend, StatusSuspended.String())

	m.Allow(StatusActive.String(), EventSuspend, StatusSuspended.String())
	m.Allow(StatusActive.String(), EventDeactivate, StatusInactive.String())

	m.Allow(StatusSuspended.String(), EventActivate, StatusActive.String())
	m.Allow(StatusSuspended.String(), EventCancel, StatusCancelled.String())

	m.Allow(StatusInactive.String(), EventActivate, StatusActive.String())

	for _, s := range []Status{StatusProvisioning, StatusTrial, StatusActive, StatusSuspended, StatusInactive, StatusCancelled} {
		m.Allow(s.String(), EventBlock, StatusBlocked.String())
	}
	for _, s := range []Status{StatusProvisioning, StatusTrial, StatusActive, StatusSuspended, StatusInactive, StatusCancelled, StatusBlocked} {
		m.Allow(s.String(), EventDelete, StatusDeleted.String())
	}

	return m
}
