// Package session models the authenticated caller of an operation.
//
// Every dispatcher and query takes a Session value explicitly instead of
// reading ambient global state: the session is an immutable snapshot of who
// is acting and with which capability, taken once per operation at the
// transport boundary.
package session

import (
	"comanda/internal/core/domain/model/kernel"
)

// Session is an immutable (userID, role) snapshot of the authenticated
// caller. A session with RoleUnknown is a valid session that is simply not
// authorized for any transition.
type Session struct {
	userID kernel.UUID
	role   Role
}

// NewSession creates a session for the given user. The user ID must be a
// constructed UUID; the role may be RoleUnknown when the identity provider
// could not resolve one.
func NewSession(userID kernel.UUID, role Role) (Session, error) {
	if err := userID.Validate(); err != nil {
		return Session{}, err
	}
	return Session{userID: userID, role: role}, nil
}

// UserID returns the authenticated user's identifier.
func (s Session) UserID() kernel.UUID {
	return s.userID
}

// Role returns the session's capability tag.
func (s Session) Role() Role {
	return s.role
}

// Is reports whether the session carries the given role.
func (s Session) Is(role Role) bool {
	return s.role == role
}
