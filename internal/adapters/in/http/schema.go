package http

import (
	"comanda/internal/core/domain/model/menu"
	"comanda/internal/core/domain/model/order"
)

// ItemSchema is one cart line in requests and responses.
type ItemSchema struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Items []ItemSchema `json:"items"`
}

// NewOrderResponse carries the store-assigned identity of a submitted
// order.
type NewOrderResponse struct {
	ID string `json:"id"`
}

// AdvanceOrderRequest is the body of POST /api/v1/orders/:id/status.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// OrderSchema is one order in responses and feed frames.
type OrderSchema struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"ownerId"`
	Items     []ItemSchema `json:"items"`
	Status    string       `json:"status"`
	Total     float64      `json:"total"`
	CreatedAt string       `json:"createdAt"`
}

// ProductSchema is one catalog entry in the menu response.
type ProductSchema struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ErrorSchema is the uniform error body.
type ErrorSchema struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrderSchema(o *order.Order) OrderSchema {
	items := make([]ItemSchema, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, ItemSchema{Name: it.Name(), Price: it.Price()})
	}

	return OrderSchema{
		ID:        o.ID().String(),
		OwnerID:   o.OwnerID().String(),
		Items:     items,
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func toOrderSchemas(orders []*order.Order) []OrderSchema {
	response := make([]OrderSchema, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSchema(o))
	}
	return response
}

func toProductSchemas(products []menu.Product) []ProductSchema {
	response := make([]ProductSchema, 0, len(products))
	for _, p := range products {
		response = append(response, ProductSchema{
			ID:          p.ID().String(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price(),
		})
	}
	return response
}
