package order

import (
	"fmt"

	"comanda/internal/core/domain/model/session"
	"comanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a single directed path:
//
//	Ordered ──> Cooking ──> ReadyForPickup ──> Paid
//
// Each status except Ordered has exactly one predecessor and each status
// except Paid has exactly one successor; Paid is terminal. Status is a value
// object: transitions return a new value and never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status: the customer has submitted the cart
	// and the kitchen has not picked it up yet.
	Ordered

	// Cooking means the kitchen is preparing the order.
	Cooking

	// ReadyForPickup means the kitchen has finished and the order awaits
	// payment at the register.
	ReadyForPickup

	// Paid is the terminal status. A paid order is retained for history
	// and never transitions again.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Ordered:        "Ordered",
		Cooking:        "Cooking",
		ReadyForPickup: "ReadyForPickup",
		Paid:           "Paid",
	}
}

// getSuccessors is the adjacency table of the transition graph. A status
// missing from the map has no successor.
func getSuccessors() map[Status]Status {
	return map[Status]Status{
		Ordered:        Cooking,
		Cooking:        ReadyForPickup,
		ReadyForPickup: Paid,
	}
}

// getEntryRoles maps each non-initial status to the role allowed to move an
// order into it. Ordered is absent: orders enter the graph through creation,
// not through a transition.
func getEntryRoles() map[Status]session.Role {
	return map[Status]session.Role{
		Cooking:        session.RoleKitchen,
		ReadyForPickup: session.RoleKitchen,
		Paid:           session.RoleCashier,
	}
}

// Validate checks that the Status is one of the four defined lifecycle
// values. Unknown and out-of-range values are rejected; use this when a
// status arrives from the store or the wire.
func (s Status) Validate() error {
	switch s {
	case Ordered, Cooking, ReadyForPickup, Paid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the status name, "Unknown" for invalid values. The names
// double as the persisted representation, see StatusFromString.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the persisted status name. It is the inverse of
// String for valid statuses and fails for anything else, so a typo in a
// stored document cannot materialize as a new lifecycle state.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", s))
}

// IsTerminal reports whether the status has no successor.
func (s Status) IsTerminal() bool {
	_, ok := getSuccessors()[s]
	return s.Validate() == nil && !ok
}

// Next returns the unique successor of the status. It fails for Paid (the
// terminal status) and for invalid values.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	next, ok := getSuccessors()[s]
	if !ok {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrIllegalTransition, s)
	}
	return next, nil
}

// RequiredRole returns the role permitted to move an order into this
// status. It fails for Ordered (entered by creation, not transition) and
// for invalid values.
func (s Status) RequiredRole() (session.Role, error) {
	if err := s.Validate(); err != nil {
		return session.RoleUnknown, err
	}
	role, ok := getEntryRoles()[s]
	if !ok {
		return session.RoleUnknown, fmt.Errorf("%w: no role may transition an order into %s", ErrIllegalTransition, s)
	}
	return role, nil
}
