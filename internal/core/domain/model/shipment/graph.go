package shipment

// Reason explains a transition decision. Rejections always carry one of the
// rejecting reasons so operators can tell the rules apart.
type Reason string

const (
	ReasonNoOp                  Reason = "no-op"
	ReasonForward               Reason = "forward"
	ReasonOneStepBack           Reason = "one-step-back"
	ReasonCancel                Reason = "cancel"
	ReasonUnknownState          Reason = "unknown-state"
	ReasonTerminalState         Reason = "terminal-state"
	ReasonBackwardLimitExceeded Reason = "backward-limit-exceeded"
)

// Decision is the outcome of a transition check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err converts a rejected decision into a *TransitionError; allowed decisions
// return nil.
func (d Decision) Err(from, to Status) error {
	if d.Allowed {
		return nil
	}
	return &TransitionError{from: from.String(), to: to.String(), reason: d.Reason}
}

// StatusGraph is the static definition of the shipment workflow: the ordered
// stages plus the Cancelled absorbing stage. It holds no mutable state and is
// shared by all goroutines without locking.
type StatusGraph struct {
	ordered []Status
}

var workflow = StatusGraph{
	ordered: []Status{Draft, Confirmed, Loaded, Shipped, InTransit, Arrived, Delivered},
}

// Workflow returns the process-wide shipment status graph.
func Workflow() StatusGraph {
	return workflow
}

// Ordered returns the stages in workflow order, without Cancelled.
func (g StatusGraph) Ordered() []Status {
	out := make([]Status, len(g.ordered))
	copy(out, g.ordered)
	return out
}

// States returns every stage of the graph: the ordered ones followed by Cancelled.
func (g StatusGraph) States() []Status {
	return append(g.Ordered(), Cancelled)
}

// Position returns the index of s in the ordered sequence. Cancelled and
// values outside the graph report false.
func (g StatusGraph) Position(s Status) (int, bool) {
	for i, candidate := range g.ordered {
		if candidate == s {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether s is a node of the graph.
func (g StatusGraph) Contains(s Status) bool {
	if s == Cancelled {
		return true
	}
	_, ok := g.Position(s)
	return ok
}

// CanTransition decides whether an order may move from current to target.
//
// Rules, first match wins:
//   - either side outside the graph: rejected, "unknown-state"
//   - current == target: allowed no-op, for every stage including terminal ones
//   - current is Delivered or Cancelled: rejected, "terminal-state"
//   - target is Cancelled: allowed, "cancel"
//   - target later than current, any gap: allowed, "forward"
//   - target exactly one stage earlier: allowed, "one-step-back"
//   - anything further back: rejected, "backward-limit-exceeded"
//
// Example:
//
//	d := shipment.Workflow().CanTransition(shipment.Loaded, shipment.Draft)
//	// d.Allowed == false, d.Reason == shipment.ReasonBackwardLimitExceeded
func (g StatusGraph) CanTransition(current, target Status) Decision {
	if !g.Contains(current) || !g.Contains(target) {
		return Decision{Allowed: false, Reason: ReasonUnknownState}
	}

	if current == target {
		return Decision{Allowed: true, Reason: ReasonNoOp}
	}

	if current.IsTerminal() {
		return Decision{Allowed: false, Reason: ReasonTerminalState}
	}

	if target == Cancelled {
		return Decision{Allowed: true, Reason: ReasonCancel}
	}

	i, _ := g.Position(current)
	j, _ := g.Position(target)

	switch {
	case j > i:
		return Decision{Allowed: true, Reason: ReasonForward}
	case j == i-1:
		return Decision{Allowed: true, Reason: ReasonOneStepBack}
	default:
		return Decision{Allowed: false, Reason: ReasonBackwardLimitExceeded}
	}
}
