// Package postgres provides the production adapters for the outbound
// ports, backed by PostgreSQL through GORM. Order change notifications ride
// on LISTEN/NOTIFY so subscribers see writes made by any process sharing
// the database.
package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"
	"comanda/internal/core/domain/model/order"
)

// OrderDTO maps an order to its relational form. Items are stored as a
// JSONB document: line items are only ever read back whole, never queried
// individually.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Items     []byte    `gorm:"type:jsonb"`
	Status    string    `gorm:"type:text;index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

type itemDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func orderFromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, itemDTO{Name: it.Name(), Price: it.Price()})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("marshal order items: %w", err)
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		OwnerID:   o.OwnerID().Bytes(),
		Items:     raw,
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}, nil
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: %w", order.ErrMalformedDocument, err)
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, it := range rawItems {
		item, itemErr := order.NewItem(it.Name, it.Price)
		if itemErr != nil {
			return nil, fmt.Errorf("%w: %w", order.ErrMalformedDocument, itemErr)
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", order.ErrMalformedDocument, err)
	}

	return order.RestoreOrder(id, ownerID, items, status, dto.CreatedAt)
}

// ProductDTO maps a menu product to its relational form.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       float64
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func productToDomain(dto ProductDTO) (menu.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Product{}, err
	}
	return menu.NewProduct(id, dto.Name, dto.Description, dto.Price)
}

// UserDTO maps a directory entry to its relational form. Role holds the
// canonical role name; unrecognized values resolve to no role.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}
