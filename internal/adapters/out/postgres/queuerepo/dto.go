// Package queuerepo persists ready-queue slots and owns the density invariant:
// for any restaurant the live positions always form the gap-free run 1..N in
// arrival order. Assignment and compaction are serialized per restaurant with
// transaction-scoped advisory locks, so the invariant holds under concurrent
// enqueues and dequeues.
package queuerepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/queue"

	"github.com/google/uuid"
)

// SlotDTO represents a ready-queue slot in the database.
// The (restaurant_id, position) pair is deliberately not unique-constrained:
// the compaction sweep shifts many rows in one statement, which would trip a
// non-deferrable constraint mid-update. The unique order reference and the
// serialized writes keep the data dense instead.
type SlotDTO struct {
	RestaurantID       uuid.UUID `gorm:"type:uuid;index:idx_queue_restaurant_position"`
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position           int       `gorm:"index:idx_queue_restaurant_position"`
	EstimatedReadyTime time.Time
}

// TableName specifies the database table name for queue slot entities.
func (SlotDTO) TableName() string {
	return "queue_slots"
}

func fromDomain(slot *queue.Slot) SlotDTO {
	return SlotDTO{
		RestaurantID:       slot.RestaurantID().Bytes(),
		OrderID:            slot.OrderID().Bytes(),
		Position:           slot.Position(),
		EstimatedReadyTime: slot.EstimatedReadyTime(),
	}
}

func toDomain(dto SlotDTO) (*queue.Slot, error) {
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return queue.NewSlot(restaurantID, orderID, dto.Position, dto.EstimatedReadyTime)
}
