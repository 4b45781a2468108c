package queries

import (
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/ports"
)

// ScopeFor builds the store predicate matching the session's role view, for
// pushdown into QueryOrders and Subscribe. It mirrors services.ViewFor: the
// customer scope filters on owner, the queue scopes filter on status.
//
// The zero query matches everything, so callers must reject sessions with
// an unknown role before querying; the transport layer does this when it
// builds the session.
func ScopeFor(sess session.Session) ports.OrderQuery {
	switch sess.Role() {
	case session.RoleCustomer:
		owner := sess.UserID()
		return ports.OrderQuery{
			Owner:       &owner,
			NewestFirst: true,
		}
	case session.RoleKitchen:
		return ports.OrderQuery{
			Statuses: []order.Status{order.Ordered, order.Cooking},
		}
	case session.RoleCashier:
		return ports.OrderQuery{
			Statuses: []order.Status{order.ReadyForPickup},
		}
	default:
		return ports.OrderQuery{}
	}
}
