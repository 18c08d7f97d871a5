package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	updatedAt := time.Now()

	order := Order{
		ID:          1,
		TableNumber: "12",
		Items: Cart{
			"burger": {Price: 8, Quantity: 2},
		},
		TotalPrice: 16,
		Status:     OrderStatusReceived,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, "12", order.TableNumber)
	assert.Equal(t, 16, order.TotalPrice)
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, updatedAt, order.UpdatedAt)
}

func TestCart_Total(t *testing.T) {
	cart := Cart{
		"burger": {Price: 8, Quantity: 2},
		"fries":  {Price: 3, Quantity: 1},
	}

	assert.Equal(t, 19, cart.Total())
}

func TestCart_Total_Empty(t *testing.T) {
	assert.Equal(t, 0, Cart{}.Total())
	assert.Equal(t, 0, Cart(nil).Total())
}

func TestCart_Total_ZeroQuantity(t *testing.T) {
	cart := Cart{
		"soup": {Price: 5, Quantity: 0},
	}

	assert.Equal(t, 0, cart.Total())
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusReceived))
	assert.True(t, IsValidOrderStatus(OrderStatusPreparing))
	assert.True(t, IsValidOrderStatus(OrderStatusCompleted))

	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("CANCELED"))
	assert.False(t, IsValidOrderStatus("received"))
}
