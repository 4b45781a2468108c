package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history. The
// owner filter is pushed down to the store; the domain view re-sorts the
// result so the output ordering never depends on store internals.
type GetCustomerOrdersQueryHandler struct {
	store ports.OrderStore
}

// NewGetCustomerOrdersQueryHandler creates a handler reading from the
// given store.
func NewGetCustomerOrdersQueryHandler(store ports.OrderStore) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{store: store}
}

// Handle executes the query. The result includes terminal (Paid) orders:
// the customer view is history, not a work queue.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	owner := query.Owner()
	orders, err := h.store.QueryOrders(ctx, ports.OrderQuery{
		Owner:       ownerRef(owner),
		NewestFirst: true,
	})
	if err != nil {
		return nil, err
	}

	return services.CustomerHistory(orders, owner), nil
}

func ownerRef(owner kernel.UUID) *kernel.UUID {
	return &owner
}
