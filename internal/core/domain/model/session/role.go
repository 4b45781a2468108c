package session

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Role is the capability tag carried by an authenticated session. It is a
// property of the session, never of an order: the same order is seen by all
// three roles, each through its own view.
//
// RoleUnknown is the zero value and means "no capability": a session whose
// role could not be resolved is unauthorized for every transition.
type Role int

const (
	// RoleUnknown represents an absent or unresolved role.
	RoleUnknown Role = iota

	// RoleCustomer submits orders and watches their own order history.
	RoleCustomer

	// RoleKitchen works the cooking queue: starts cooking and marks orders
	// ready for pickup.
	RoleKitchen

	// RoleCashier settles orders that are ready for pickup.
	RoleCashier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleKitchen:  "Kitchen",
		RoleCashier:  "Cashier",
	}
}

// String returns the human-readable name of the role, "Unknown" for any
// value outside the enumeration.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and values outside the enumeration.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleKitchen, RoleCashier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// RoleFromString parses the persisted role name as stored in the user
// directory. Unrecognized names map to RoleUnknown with an error so callers
// can treat the session as unauthorized rather than failing hard.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Customer":
		return RoleCustomer, nil
	case "Kitchen":
		return RoleKitchen, nil
	case "Cashier":
		return RoleCashier, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role name", s))
	}
}
