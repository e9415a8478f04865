package ports

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
)

// EventPublisher is the outbound notification capability injected into
// lifecycle handlers. Delivery is fire-and-forget: handlers publish only
// after their transaction has committed, and publish failures are logged by
// the implementation, never surfaced back into the transaction they
// originated from.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// RestaurantTopic is the per-restaurant topic carrying new-order notifications.
func RestaurantTopic(restaurantID kernel.UUID) string {
	return fmt.Sprintf("restaurant.%s", restaurantID)
}

// OrderTopic is the per-order topic carrying status updates for customers
// tracking their order.
func OrderTopic(orderID kernel.UUID) string {
	return fmt.Sprintf("order.%s", orderID)
}

// QueueTopic is the per-restaurant topic carrying queue change notifications.
func QueueTopic(restaurantID kernel.UUID) string {
	return fmt.Sprintf("restaurant.%s.queue", restaurantID)
}
