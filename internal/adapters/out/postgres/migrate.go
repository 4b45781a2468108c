package postgres

import "gorm.io/gorm"

// Migrate creates or updates the schema for all adapters in this package.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &ProductDTO{}, &UserDTO{})
}
