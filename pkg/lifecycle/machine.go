package lifecycle

import (
	"sort"
	"sync"
)

// Machine validates event-driven transitions between named states. Unlike a
// classic state machine it holds no current state: callers own the state (a
// row in the registry) and ask the machine whether an event may move it.
// This keeps one shared Machine safe to use for every tenant concurrently.
type Machine struct {
	mu          sync.RWMutex
	initial     string
	transitions map[string]map[string]string // from -> event -> to
}

// New creates a machine whose Initial() is the state new entities start in.
func New(initial string) *Machine {
	return &Machine{
		initial:     initial,
		transitions: make(map[string]map[string]string),
	}
}

// Initial returns the configured starting state.
func (m *Machine) Initial() string {
	return m.initial
}

// Allow registers a transition: event moves from -> to. Registering the same
// from/event pair again overwrites the previous target.
func (m *Machine) Allow(from, event, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[string]string)
	}
	m.transitions[from][event] = to
}

// Next returns the state the event moves from into, or a *NoTransitionError
// when the event is not allowed in that state.
func (m *Machine) Next(from, event string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events, ok := m.transitions[from]
	if !ok {
		return "", &NoTransitionError{From: from, Event: event}
	}
	to, ok := events[event]
	if !ok {
		return "", &NoTransitionError{From: from, Event: event}
	}
	return to, nil
}

// Can reports whether the event is allowed in the given state.
func (m *Machine) Can(from, event string) bool {
	_, err := m.Next(from, event)
	return err == nil
}

// Events lists the events allowed in the given state, sorted for stable
// output in API responses.
func (m *Machine) Events(from string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]string, 0, len(m.transitions[from]))
	for e := range m.transitions[from] {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}

// Terminal reports whether no event leads out of the given state.
func (m *Machine) Terminal(state string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transitions[state]) == 0
}
