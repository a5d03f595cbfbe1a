// Package lifecycle provides a small transition table for validating
// event-driven state changes on persisted entities.
//
// The machine is stateless: the entity row owns its current state, and the
// machine answers whether an event may move it. One machine instance is
// shared safely across all entities and goroutines.
//
//	m := lifecycle.New("PROVISIONING")
//	m.Allow("PROVISIONING", "activate", "ACTIVE")
//	next, err := m.Next(current, "activate")
package lifecycle
