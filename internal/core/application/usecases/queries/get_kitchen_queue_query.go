package queries

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/guard"
)

// ErrGetKitchenQueueQueryIsNotConstructed is returned when a
// GetKitchenQueueQuery bypassed its constructor.
var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery",
)

// GetKitchenQueueQuery requests the orders needing kitchen action,
// meaning Ordered and Cooking, across all owners, oldest first.
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a kitchen queue query.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryHandler retrieves the kitchen's work queue with the
// status filter pushed down to the store.
type GetKitchenQueueQueryHandler struct {
	store ports.OrderStore
}

// NewGetKitchenQueueQueryHandler creates a handler reading from the given
// store.
func NewGetKitchenQueueQueryHandler(store ports.OrderStore) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{store: store}
}

// Handle executes the query.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.QueryOrders(ctx, ports.OrderQuery{
		Statuses: []order.Status{order.Ordered, order.Cooking},
	})
	if err != nil {
		return nil, err
	}

	return services.KitchenQueue(orders), nil
}
