package commands

import "time"

// Event payloads published to subscribers after a command's transaction has
// durably committed. Delivery is best-effort; nothing in this package waits
// for or retries a publish.

// NewOrderEvent notifies a restaurant's subscribers that an order was placed.
type NewOrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	OrderType    string    `json:"order_type"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderStatusEvent notifies an order's subscribers of a lifecycle transition.
type OrderStatusEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// QueueChangedEvent notifies a restaurant's subscribers that its ready-queue
// gained or lost a slot. Subscribers re-read the queue; positions are not
// carried in the event.
type QueueChangedEvent struct {
	Type         string `json:"type"`
	RestaurantID string `json:"restaurant_id"`
}

const (
	eventTypeNewOrder     = "new_order"
	eventTypeOrderStatus  = "order_status_updated"
	eventTypeQueueChanged = "queue_updated"
)
