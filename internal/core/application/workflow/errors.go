package workflow

import (
	"errors"
	"fmt"
)

const (
	ReasonPersistenceFailed   = "persistence-failed"
	ReasonTransitionCancelled = "transition-cancelled"
)

var (
	// ErrPersistenceFailed matches every store failure after an optimistic
	// copy was handed out. The copy must be discarded and the order re-fetched.
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrTransitionCancelled is reported by a transition cancelled before its
	// store write was issued.
	ErrTransitionCancelled = errors.New("transition cancelled")
)

// PersistenceFailedError wraps the store error behind a failed transition.
// Both ErrPersistenceFailed and the cause match with errors.Is.
type PersistenceFailedError struct {
	OrderID string
	Cause   error
}

func NewPersistenceFailedError(orderID string, cause error) *PersistenceFailedError {
	return &PersistenceFailedError{OrderID: orderID, Cause: cause}
}

func (e *PersistenceFailedError) Error() string {
	return fmt.Sprintf("%s: order %s: %v", ErrPersistenceFailed, e.OrderID, e.Cause)
}

func (e *PersistenceFailedError) Reason() string { return ReasonPersistenceFailed }

func (e *PersistenceFailedError) Unwrap() []error {
	return []error{ErrPersistenceFailed, e.Cause}
}
