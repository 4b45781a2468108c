package memstore

import (
	"sort"

	"comanda/internal/core/domain/model/order"
)

// sortOrders sorts by creation time with the identity string as tiebreak,
// so equal timestamps still yield a deterministic order.
func sortOrders(orders []*order.Order, newestFirst bool) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			if newestFirst {
				return a.CreatedAt().After(b.CreatedAt())
			}
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})
}
