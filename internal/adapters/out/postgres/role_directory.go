package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/session"
)

// GormRoleDirectory implements ports.IdentityProvider on the users table.
type GormRoleDirectory struct {
	db *gorm.DB
}

// NewGormRoleDirectory creates a directory reading from db.
func NewGormRoleDirectory(db *gorm.DB) *GormRoleDirectory {
	return &GormRoleDirectory{db: db}
}

// RoleOf resolves a user's role. Unknown users and unrecognized role values
// resolve to session.RoleUnknown without error; the caller decides what an
// unauthorized session may do.
func (d *GormRoleDirectory) RoleOf(ctx context.Context, userID kernel.UUID) (session.Role, error) {
	if err := userID.Validate(); err != nil {
		return session.RoleUnknown, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.RoleUnknown, nil
		}
		return session.RoleUnknown, err
	}

	role, err := session.RoleFromString(dto.Role)
	if err != nil {
		return session.RoleUnknown, nil
	}
	return role, nil
}
