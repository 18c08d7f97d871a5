package notify

import "context"

const (
	EventNewOrder     = "new_order"
	EventStatusUpdate = "status_update"
)

type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type NewOrderPayload struct {
	OrderID     int64  `json:"order_id"`
	TableNumber string `json:"table_number"`
}

type StatusUpdatePayload struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// Publisher delivers events to connected admin viewers. Delivery is
// best-effort: implementations must not block order processing on slow
// consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
