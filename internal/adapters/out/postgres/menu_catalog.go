package postgres

import (
	"context"

	"gorm.io/gorm"

	"comanda/internal/core/domain/model/menu"
)

// GormMenuCatalog implements ports.MenuCatalog on PostgreSQL.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a catalog reading from db.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// ListProducts returns all products, sorted by name.
func (c *GormMenuCatalog) ListProducts(ctx context.Context) ([]menu.Product, error) {
	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]menu.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
