package order

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrEmptyCart is returned when an order is created with zero items.
	// An empty cart is rejected before any store interaction.
	ErrEmptyCart = errors.New("order must contain at least one item")

	// ErrIllegalTransition is returned when a requested status is not the
	// unique valid successor of the order's current status. This covers
	// skips, no-ops, backward moves, and the stale re-request of an edge
	// that another client already applied; the caller is expected to
	// re-observe the current status and retry or abandon.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrUnauthorizedRole is returned when the requesting role does not
	// match the role required for the transition edge. It is never retried
	// automatically.
	ErrUnauthorizedRole = errors.New("role is not permitted to perform this transition")

	// ErrMalformedDocument is returned when a document read back from the
	// store fails the aggregate's invariants. Untyped or corrupt store data
	// is stopped at the boundary instead of propagating inward.
	ErrMalformedDocument = errors.New("malformed order document")
)

// Order is the aggregate at the center of the system: one submitted
// restaurant order, observed concurrently by the customer who placed it,
// the kitchen, and the cashier.
//
// Invariants:
//   - items is non-empty and fixed at creation
//   - ownerID identifies exactly one customer and never transfers
//   - status only moves along the path Ordered -> Cooking ->
//     ReadyForPickup -> Paid
//   - id and createdAt are assigned by the store and immutable
//
// The id and createdAt of a freshly built order are zero until the store
// accepts it; every order observed through a query or subscription carries
// both.
type Order struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	items     []Item
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder builds a new order for submission: status Ordered, id and
// createdAt unset until the store assigns them. Fails with ErrEmptyCart for
// an empty cart and rejects invalid owners and items.
func NewOrder(ownerID kernel.UUID, items []Item) (*Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		ownerID:       ownerID,
		items:         append([]Item(nil), items...),
		status:        Ordered,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from a persisted document. Unlike
// NewOrder it requires the store-assigned id and creation time and accepts
// any valid status. Every invariant violation is reported as
// ErrMalformedDocument: the document was already accepted once, so a
// failure here means the store handed back corrupt data.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if err := ownerID.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, ErrEmptyCart)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	}
	if err := status.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("%w: createdAt is not set", ErrMalformedDocument)
	}

	return &Order{
		id:            id,
		ownerID:       ownerID,
		items:         append([]Item(nil), items...),
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier, zero for an unsubmitted order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the customer who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Items returns a copy of the order lines. Mutating the returned slice does
// not affect the order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the store-assigned creation time, zero for an
// unsubmitted order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of the item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price()
	}
	return total
}
