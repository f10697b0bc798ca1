package shipment

import (
	"fmt"

	"shipment/internal/pkg/errs"
)

// Status is the lifecycle stage of a shipment order.
//
// The ordered stages follow the physical progress of a container:
//
//	Draft ─> Confirmed ─> Loaded ─> Shipped ─> In Transit ─> Arrived ─> Delivered
//	  │          │           │         │           │            │
//	  └──────────┴───────────┴─────────┴───────────┴────────────┴──> Cancelled
//
// Cancelled sits outside the ordered sequence and absorbs any non-terminal
// stage. Delivered and Cancelled are terminal.
//
// On the wire and in the database a Status is always one of its fixed names,
// including the space in "In Transit".
type Status int

const (
	// Unknown is the zero value and never a valid stage.
	Unknown Status = iota

	// Draft is the initial stage assigned at order creation.
	Draft

	// Confirmed means the supplier accepted the purchase order.
	Confirmed

	// Loaded means goods are in the container; the loading record is
	// reconciled in this stage.
	Loaded

	// Shipped means the container left the origin port. From here on the
	// loading record is a historical fact.
	Shipped

	// InTransit means the vessel is under way.
	InTransit

	// Arrived means the container reached the destination port; demurrage
	// starts counting.
	Arrived

	// Delivered is the terminal success stage.
	Delivered

	// Cancelled is the absorbing terminal stage outside the ordered sequence.
	Cancelled
)

const (
	draftName     = "Draft"
	confirmedName = "Confirmed"
	loadedName    = "Loaded"
	shippedName   = "Shipped"
	inTransitName = "In Transit"
	arrivedName   = "Arrived"
	deliveredName = "Delivered"
	cancelledName = "Cancelled"
)

func getStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown has no wire name
	return map[Status]string{
		Draft:     draftName,
		Confirmed: confirmedName,
		Loaded:    loadedName,
		Shipped:   shippedName,
		InTransit: inTransitName,
		Arrived:   arrivedName,
		Delivered: deliveredName,
		Cancelled: cancelledName,
	}
}

// ParseStatus maps a wire name onto a Status. Names are case sensitive.
//
// Returns:
//   - the matching Status
//   - a *TransitionError with reason "unknown-state" for any other input
//
// Example:
//
//	target, err := shipment.ParseStatus("In Transit")
func ParseStatus(name string) (Status, error) {
	for status, statusName := range getStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, newUnknownStateError(name)
}

// Validate checks that the value is one of the graph's stages.
func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "Unknown" for values outside the graph.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no outgoing transition exists from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsShippedOrLater reports whether s is Shipped or a later ordered stage.
// Loading records of such orders are immutable.
func (s Status) IsShippedOrLater() bool {
	return s >= Shipped && s <= Delivered
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
