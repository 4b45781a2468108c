package services

import (
	"sort"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
)

// The role views are the pure filter functions each screen derives its
// content from. They are total (empty in, empty out, never an error),
// never mutate their input, and sort deterministically: the key is always
// createdAt with the order id breaking ties, so the output does not depend
// on the input ordering.

// CustomerHistory returns every order owned by the given customer, newest
// first. The full history is exposed, not just the latest order: a customer
// may hold several concurrent active orders.
func CustomerHistory(orders []*order.Order, owner kernel.UUID) []*order.Order {
	return sortedView(orders, true, func(o *order.Order) bool {
		return o.OwnerID().IsEqual(owner)
	})
}

// KitchenQueue returns the orders needing kitchen action, Ordered and
// Cooking, across all owners, oldest first so the queue drains in arrival
// order.
func KitchenQueue(orders []*order.Order) []*order.Order {
	return sortedView(orders, false, func(o *order.Order) bool {
		return o.Status() == order.Ordered || o.Status() == order.Cooking
	})
}

// CashierQueue returns the orders awaiting payment, ReadyForPickup only,
// across all owners, oldest first.
func CashierQueue(orders []*order.Order) []*order.Order {
	return sortedView(orders, false, func(o *order.Order) bool {
		return o.Status() == order.ReadyForPickup
	})
}

// ViewFor dispatches to the view matching the session's role. An unknown
// role sees nothing.
func ViewFor(sess session.Session, orders []*order.Order) []*order.Order {
	switch sess.Role() {
	case session.RoleCustomer:
		return CustomerHistory(orders, sess.UserID())
	case session.RoleKitchen:
		return KitchenQueue(orders)
	case session.RoleCashier:
		return CashierQueue(orders)
	default:
		return []*order.Order{}
	}
}

func sortedView(orders []*order.Order, newestFirst bool, keep func(*order.Order) bool) []*order.Order {
	view := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o != nil && keep(o) {
			view = append(view, o)
		}
	}

	sort.SliceStable(view, func(i, j int) bool {
		ti, tj := view[i].CreatedAt(), view[j].CreatedAt()
		if ti.Equal(tj) {
			// Tie-break on id for a stable, input-order-independent result.
			return view[i].ID().String() < view[j].ID().String()
		}
		if newestFirst {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})

	return view
}
