package order_test

import (
	"testing"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItems(t *testing.T) []order.Item {
	t.Helper()

	burger, err := order.NewItem("Burger", 8.50)
	require.NoError(t, err)
	fries, err := order.NewItem("Fries", 3.25)
	require.NoError(t, err)
	return []order.Item{burger, fries}
}

func TestNewItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		item, err := order.NewItem("Burger", 8.50)

		require.NoError(t, err)
		assert.Equal(t, "Burger", item.Name())
		assert.InDelta(t, 8.50, item.Price(), 0.0001)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := order.NewItem("", 8.50)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
	})

	t.Run("should reject a non-positive price", func(t *testing.T) {
		for _, price := range []float64{0, -0.01, -10} {
			_, err := order.NewItem("Burger", price)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should reject the zero value through Validate", func(t *testing.T) {
		var item order.Item
		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create an order in Ordered status", func(t *testing.T) {
		owner := kernel.NewUUID()

		o, err := order.NewOrder(owner, mustItems(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, owner, o.OwnerID())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should leave id and createdAt unset until the store assigns them", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustItems(t))

		require.NoError(t, err)
		require.Error(t, o.ID().Validate())
		assert.True(t, o.CreatedAt().IsZero())
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrEmptyCart)

		_, err = order.NewOrder(kernel.NewUUID(), []order.Item{})
		require.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("should reject an unconstructed owner", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, mustItems(t))
		require.Error(t, err)
	})

	t.Run("should reject invalid items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), []order.Item{{}})
		require.Error(t, err)
	})

	t.Run("should copy the items slice", func(t *testing.T) {
		items := mustItems(t)
		o, err := order.NewOrder(kernel.NewUUID(), items)
		require.NoError(t, err)

		replacement, err := order.NewItem("Soda", 2.00)
		require.NoError(t, err)
		items[0] = replacement

		assert.Equal(t, "Burger", o.Items()[0].Name())
	})

	t.Run("should return a defensive copy from Items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustItems(t))
		require.NoError(t, err)

		got := o.Items()
		replacement, err := order.NewItem("Soda", 2.00)
		require.NoError(t, err)
		got[0] = replacement

		assert.Equal(t, "Burger", o.Items()[0].Name())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	owner := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore a persisted order in any valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Ordered, order.Cooking, order.ReadyForPickup, order.Paid,
		} {
			o, err := order.RestoreOrder(id, owner, mustItems(t), status, createdAt)

			require.NoError(t, err)
			require.NoError(t, o.Validate())
			assert.Equal(t, id, o.ID())
			assert.Equal(t, owner, o.OwnerID())
			assert.Equal(t, status, o.Status())
			assert.Equal(t, createdAt, o.CreatedAt())
		}
	})

	t.Run("should report every invariant violation as a malformed document", func(t *testing.T) {
		items := mustItems(t)

		testCases := []struct {
			name    string
			restore func() (*order.Order, error)
		}{
			{"missing id", func() (*order.Order, error) {
				return order.RestoreOrder(kernel.UUID{}, owner, items, order.Ordered, createdAt)
			}},
			{"missing owner", func() (*order.Order, error) {
				return order.RestoreOrder(id, kernel.UUID{}, items, order.Ordered, createdAt)
			}},
			{"empty cart", func() (*order.Order, error) {
				return order.RestoreOrder(id, owner, nil, order.Ordered, createdAt)
			}},
			{"invalid item", func() (*order.Order, error) {
				return order.RestoreOrder(id, owner, []order.Item{{}}, order.Ordered, createdAt)
			}},
			{"invalid status", func() (*order.Order, error) {
				return order.RestoreOrder(id, owner, items, order.Unknown, createdAt)
			}},
			{"missing createdAt", func() (*order.Order, error) {
				return order.RestoreOrder(id, owner, items, order.Ordered, time.Time{})
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.restore()
				require.ErrorIs(t, err, order.ErrMalformedDocument)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a nil order", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject an order that bypassed the constructors", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum the item prices", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustItems(t))
		require.NoError(t, err)

		assert.InDelta(t, 11.75, o.Total(), 0.0001)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identity only", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now()

		a, err := order.RestoreOrder(id, kernel.NewUUID(), mustItems(t), order.Ordered, createdAt)
		require.NoError(t, err)
		b, err := order.RestoreOrder(id, kernel.NewUUID(), mustItems(t), order.Paid, createdAt)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
