package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/session"
)

// IdentityProvider resolves the capability of an authenticated user.
// Credential issuance and session storage are external concerns; the core
// only asks which role a user id carries.
type IdentityProvider interface {
	// RoleOf returns the role recorded for the user. An unknown user or a
	// user without a role yields (session.RoleUnknown, nil): an absent role
	// means unauthorized for any transition, not a failure. Errors are
	// reserved for lookup failures.
	RoleOf(ctx context.Context, userID kernel.UUID) (session.Role, error)
}
