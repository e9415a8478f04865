// Package ports defines repository and outbound interfaces for the restaurant
// order core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created once with their items, have their status mutated in
// place, and are never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order (its status).
	// Items and totals are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	// Within a unit of work the order row stays locked until commit, so
	// racing status transitions serialize on this read.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStalePendingOnline retrieves online orders still in Pending status
	// whose requested pickup time lies before the cutoff. Used by the
	// housekeeping job to cancel abandoned orders.
	GetStalePendingOnline(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
