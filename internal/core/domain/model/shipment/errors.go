package shipment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition matches every rejected transition between two known stages.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnknownState matches transitions naming a stage outside the graph.
	// It points at a caller or configuration bug and is not retried.
	ErrUnknownState = errors.New("unknown state")
)

// TransitionError is returned when the status graph rejects a transition.
// Reason is the operator-facing explanation; errors.Is matches either
// ErrUnknownState or ErrInvalidTransition.
type TransitionError struct {
	from   string
	to     string
	reason Reason
}

func newUnknownStateError(name string) *TransitionError {
	return &TransitionError{to: name, reason: ReasonUnknownState}
}

// From returns the name of the stage the order was in.
func (e *TransitionError) From() string {
	return e.from
}

// To returns the name of the requested stage.
func (e *TransitionError) To() string {
	return e.to
}

// Reason returns the rejection reason.
func (e *TransitionError) Reason() string {
	return string(e.reason)
}

func (e *TransitionError) Error() string {
	if e.reason == ReasonUnknownState {
		if e.from == "" {
			return fmt.Sprintf("%s: %q", ErrUnknownState, e.to)
		}
		return fmt.Sprintf("%s: %q -> %q", ErrUnknownState, e.from, e.to)
	}
	return fmt.Sprintf("%s from %q to %q: %s", ErrInvalidTransition, e.from, e.to, e.reason)
}

func (e *TransitionError) Unwrap() error {
	if e.reason == ReasonUnknownState {
		return ErrUnknownState
	}
	return ErrInvalidTransition
}
