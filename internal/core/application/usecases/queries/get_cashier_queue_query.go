package queries

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/guard"
)

// ErrGetCashierQueueQueryIsNotConstructed is returned when a
// GetCashierQueueQuery bypassed its constructor.
var ErrGetCashierQueueQueryIsNotConstructed = errors.New(
	"GetCashierQueueQuery must be created via NewGetCashierQueueQuery",
)

// GetCashierQueueQuery requests the orders awaiting payment, meaning
// ReadyForPickup, across all owners, oldest first.
type GetCashierQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCashierQueueQuery creates a cashier queue query.
func NewGetCashierQueueQuery() GetCashierQueueQuery {
	return GetCashierQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCashierQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetCashierQueueQueryIsNotConstructed)
}

// GetCashierQueueQueryHandler retrieves the cashier's work queue with the
// status filter pushed down to the store.
type GetCashierQueueQueryHandler struct {
	store ports.OrderStore
}

// NewGetCashierQueueQueryHandler creates a handler reading from the given
// store.
func NewGetCashierQueueQueryHandler(store ports.OrderStore) GetCashierQueueQueryHandler {
	return GetCashierQueueQueryHandler{store: store}
}

// Handle executes the query.
func (h GetCashierQueueQueryHandler) Handle(
	ctx context.Context,
	query GetCashierQueueQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.QueryOrders(ctx, ports.OrderQuery{
		Statuses: []order.Status{order.ReadyForPickup},
	})
	if err != nil {
		return nil, err
	}

	return services.CashierQueue(orders), nil
}
