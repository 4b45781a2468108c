package services

import (
	"fmt"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
)

// TransitionAuthority validates and authorizes status transitions. It
// encodes no state of its own (the allowed-transition graph lives on
// order.Status) and it never persists anything: on success the caller
// holds the new status and is responsible for writing it.
//
// Because the authority only sees the order the caller has observed, a
// stale caller racing another client passes local validation here and is
// corrected by the store's last-write-wins on status, bounded by the
// monotonic graph (a duplicate write of the same edge is a harmless
// same-value write). Once the caller reconciles the newer status, a repeat
// of the applied edge fails with order.ErrIllegalTransition.
type TransitionAuthority struct{}

// NewTransitionAuthority creates a TransitionAuthority.
func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// AttemptTransition checks that requested is the unique successor of the
// order's current status and that role is permitted to take that edge.
//
// Returns:
//   - (requested, nil) when the transition is valid and authorized
//   - order.ErrIllegalTransition for skips, no-ops, backward moves, and
//     transitions out of the terminal status
//   - order.ErrUnauthorizedRole when the edge exists but the role may not
//     take it
//
// The result is deterministic: the same triple always yields the same
// outcome.
func (TransitionAuthority) AttemptTransition(
	o *order.Order,
	requested order.Status,
	role session.Role,
) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	if err := requested.Validate(); err != nil {
		return order.Unknown, fmt.Errorf("%w: %w", order.ErrIllegalTransition, err)
	}

	next, err := o.Status().Next()
	if err != nil {
		return order.Unknown, err
	}
	if requested != next {
		return order.Unknown, fmt.Errorf("%w: %s -> %s (next valid status is %s)",
			order.ErrIllegalTransition, o.Status(), requested, next)
	}

	required, err := requested.RequiredRole()
	if err != nil {
		return order.Unknown, err
	}
	if role != required {
		return order.Unknown, fmt.Errorf("%w: %s -> %s requires %s, got %s",
			order.ErrUnauthorizedRole, o.Status(), requested, required, role)
	}

	return requested, nil
}
