package services

import (
	"shipment/internal/core/domain/model/shipment"
)

// TransitionValidator checks status changes requested by name, as they arrive
// from the board or the API. It is pure and safe for concurrent use.
type TransitionValidator struct {
	graph shipment.StatusGraph
}

func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{graph: shipment.Workflow()}
}

// CanTransition parses both names and applies the status graph rules.
//
// Returns:
//   - the graph decision; Allowed is false for every rejection
//   - *shipment.TransitionError when rejected, nil otherwise
//
// A name outside the graph yields an "unknown-state" rejection rather than a
// parse error, so callers handle a single error shape.
func (v TransitionValidator) CanTransition(current, target string) (shipment.Decision, error) {
	from, fromErr := shipment.ParseStatus(current)
	to, toErr := shipment.ParseStatus(target)
	if fromErr != nil {
		return shipment.Decision{Allowed: false, Reason: shipment.ReasonUnknownState}, fromErr
	}
	if toErr != nil {
		return shipment.Decision{Allowed: false, Reason: shipment.ReasonUnknownState}, toErr
	}

	decision := v.graph.CanTransition(from, to)
	return decision, decision.Err(from, to)
}

// Check is CanTransition for already parsed statuses.
func (v TransitionValidator) Check(current, target shipment.Status) (shipment.Decision, error) {
	decision := v.graph.CanTransition(current, target)
	return decision, decision.Err(current, target)
}
