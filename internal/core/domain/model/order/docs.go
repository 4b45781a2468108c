// Package order contains the Order aggregate and its lifecycle state
// machine.
//
// An Order is created by a customer from a non-empty cart and then advances
// along a single directed path of statuses:
//
//	Ordered ──> Cooking ──> ReadyForPickup ──> Paid
//
// No transition skips a stage or moves backward, and Paid is terminal. The
// items and owner of an order are fixed at creation; status is the only
// field that changes afterwards. Orders are never deleted; a Paid order is
// inert history.
//
// The adjacency table and the role required to take each edge live on
// Status; enforcement of both for a concrete request is the job of
// services.TransitionAuthority.
package order
