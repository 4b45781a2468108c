package queries

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

// ErrGetCustomerOrdersQueryIsNotConstructed is returned when a
// GetCustomerOrdersQuery bypassed its constructor.
var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery",
)

// GetCustomerOrdersQuery requests the full order history of one customer,
// newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	owner kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a history query for the given owner.
func NewGetCustomerOrdersQuery(owner kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		owner: owner,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Owner returns the customer whose history is requested.
func (q GetCustomerOrdersQuery) Owner() kernel.UUID {
	return q.owner
}
