package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/guard"
)

// ErrAdvanceOrderCommandIsNotConstructed is returned when an
// AdvanceOrderCommand bypassed its constructor.
var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand",
)

// AdvanceOrderCommand is a request to move an order to the given status.
// The requested status is named explicitly rather than implied ("advance to
// whatever is next") so a caller acting on a stale view fails loudly
// instead of silently pushing the order further than intended.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requested order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a transition request. The order id must be
// constructed and the requested status must be a valid lifecycle value;
// whether the edge is legal for the concrete order is decided later by the
// transition authority.
func NewAdvanceOrderCommand(orderID kernel.UUID, requested order.Status) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequested(requested),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedStatus returns the target status.
func (c AdvanceOrderCommand) RequestedStatus() order.Status {
	return c.requested
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	c.requested = requested
	return nil
}
