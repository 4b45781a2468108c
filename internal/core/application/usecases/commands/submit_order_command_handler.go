package commands

import (
	"context"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/ports"
)

// SubmitOrderCommandHandler turns a validated cart into a persisted order
// in Ordered status.
//
// The handler is the submission path's single entry point: it validates the
// cart through the entity model first (an empty cart fails with
// order.ErrEmptyCart and never reaches the store) and only then issues the
// create. The store assigns id and createdAt; the caller observes the new
// order through its own live feed rather than through a return value.
type SubmitOrderCommandHandler struct {
	store ports.OrderStore
}

// NewSubmitOrderCommandHandler creates a handler writing to the given
// store.
func NewSubmitOrderCommandHandler(store ports.OrderStore) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{store: store}
}

// Handle processes the submission on behalf of sess.
//
// Only a customer may submit, and only for themselves: any other role, and
// a customer submitting under a different ownerID, fails with
// order.ErrUnauthorizedRole before any store interaction. On success the
// store-assigned order id is returned.
func (h SubmitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOrderCommand,
	sess session.Session,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !sess.Is(session.RoleCustomer) {
		return kernel.UUID{}, fmt.Errorf("%w: submitting an order requires %s, got %s",
			order.ErrUnauthorizedRole, session.RoleCustomer, sess.Role())
	}
	if !sess.UserID().IsEqual(cmd.OwnerID()) {
		return kernel.UUID{}, fmt.Errorf("%w: a customer may only submit their own order",
			order.ErrUnauthorizedRole)
	}

	newOrder, err := order.NewOrder(cmd.OwnerID(), cmd.Items())
	if err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.store.CreateOrder(ctx, newOrder)
	if err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}
