package lifecycle

import (
	"errors"
	"fmt"
)

// NoTransitionError indicates the event is not allowed in the given state.
type NoTransitionError struct {
	From  string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.From, e.Event)
}

// IsNoTransitionError reports whether err is a *NoTransitionError.
func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
