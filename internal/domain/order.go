package domain

import "time"

type Order struct {
	ID          int64
	TableNumber string
	Items       Cart
	TotalPrice  int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expected progression is RECEIVED -> PREPARING -> COMPLETED, but transitions
// are not ordered: any recognized status may replace any other.
const (
	OrderStatusReceived  = "RECEIVED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusCompleted = "COMPLETED"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusCompleted:
		return true
	}
	return false
}

// CartLine is one cart entry: the price and quantity captured for a menu item
// key at order time.
type CartLine struct {
	Price    int `json:"price"`
	Quantity int `json:"quantity"`
}

// Cart maps menu item keys to their ordered price and quantity. An Order keeps
// a value copy of it, so later catalog edits never affect stored orders.
type Cart map[string]CartLine

func (c Cart) Total() int {
	total := 0
	for _, line := range c {
		total += line.Price * line.Quantity
	}
	return total
}
