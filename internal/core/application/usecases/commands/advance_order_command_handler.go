package commands

import (
	"context"

	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// AdvanceOrderCommandHandler applies one status transition: local
// authorization through the transition authority, then the store write.
// On any authority failure the error is returned untouched and no write is
// issued.
//
// The re-fetch before validation matters: validating against the caller's
// possibly stale copy would let a client that missed an update re-apply or
// skip edges. Fetching narrows the race window to the unavoidable gap
// between read and write, which the monotonic graph bounds (see package
// doc).
type AdvanceOrderCommandHandler struct {
	store     ports.OrderStore
	authority services.TransitionAuthority
}

// NewAdvanceOrderCommandHandler creates a handler writing to the given
// store.
func NewAdvanceOrderCommandHandler(store ports.OrderStore) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		store:     store,
		authority: services.NewTransitionAuthority(),
	}
}

// Handle processes the transition on behalf of sess. Fails with
// order.ErrIllegalTransition / order.ErrUnauthorizedRole from the
// authority, *errs.ObjectNotFoundError for an unknown order, or a store
// write error.
func (h AdvanceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderCommand,
	sess session.Session,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.store.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	newStatus, err := h.authority.AttemptTransition(current, cmd.RequestedStatus(), sess.Role())
	if err != nil {
		return err
	}

	return h.store.UpdateStatus(ctx, current.ID(), newStatus)
}
