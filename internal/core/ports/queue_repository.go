package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/queue"
)

// QueueRepository defines the persistence contract for ready-queue slots.
//
// The repository owns the density invariant: for any restaurant the live
// positions always form the gap-free run 1..N in arrival order. Position
// assignment and compaction are serialized per restaurant inside the
// surrounding storage transaction, so concurrent enqueues never share a
// position and concurrent dequeues never leave a gap visible to readers.
type QueueRepository interface {
	// Enqueue appends a slot at the tail of the restaurant's queue, assigning
	// position = live count + 1, and returns the created slot. Must be called
	// within an active transaction.
	Enqueue(ctx context.Context, restaurantID, orderID kernel.UUID, estimatedReadyTime time.Time) (*queue.Slot, error)

	// Dequeue removes the slot held by the order, if any, and decrements the
	// position of every slot in the same restaurant that sat behind it.
	// Returns false without error when the order holds no slot.
	Dequeue(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetByOrderID retrieves the slot held by an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*queue.Slot, error)

	// GetByRestaurant retrieves all live slots for a restaurant ordered by position.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*queue.Slot, error)
}
