package memstore

import (
	"context"
	"sync"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/session"
)

// RoleDirectory is an in-memory ports.IdentityProvider. Users absent from
// the directory resolve to session.RoleUnknown without error.
type RoleDirectory struct {
	mu    sync.RWMutex
	roles map[kernel.UUID]session.Role
}

// NewRoleDirectory creates an empty directory.
func NewRoleDirectory() *RoleDirectory {
	return &RoleDirectory{roles: make(map[kernel.UUID]session.Role)}
}

// Assign records the role for a user, replacing any previous one.
func (d *RoleDirectory) Assign(userID kernel.UUID, role session.Role) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roles[userID] = role
}

// RoleOf resolves a user's role.
func (d *RoleDirectory) RoleOf(ctx context.Context, userID kernel.UUID) (session.Role, error) {
	if err := ctx.Err(); err != nil {
		return session.RoleUnknown, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.roles[userID], nil
}
