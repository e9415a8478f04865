package queuerepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQueueRepository implements QueueRepository using GORM.
type GormQueueRepository struct {
	db *gorm.DB
}

// NewGormQueueRepository creates a new GORM queue repository.
func NewGormQueueRepository(db *gorm.DB) *GormQueueRepository {
	return &GormQueueRepository{db: db}
}

// Enqueue appends a slot at the tail of the restaurant's queue.
// The restaurant's queue is locked for the rest of the transaction, the next
// position is the live count plus one.
func (r *GormQueueRepository) Enqueue(
	ctx context.Context, restaurantID, orderID kernel.UUID, estimatedReadyTime time.Time,
) (*queue.Slot, error) {
	if err := errors.Join(restaurantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	if err := r.lockRestaurantQueue(ctx, restaurantID); err != nil {
		return nil, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&SlotDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	slot, err := queue.NewSlot(restaurantID, orderID, int(count)+1, estimatedReadyTime)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(slot)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return slot, nil
}

// Dequeue removes the slot held by the order and closes the gap it leaves:
// every slot behind it in the same restaurant shifts forward one position.
// The restaurant's queue is locked before the victim's position is read, so
// concurrent dequeues compact one after the other against live positions.
// Returns false without error when the order holds no slot.
func (r *GormQueueRepository) Dequeue(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	// This first read only resolves the restaurant to key the lock on. The
	// slot's restaurant never changes, but its position can.
	var dto SlotDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return false, err
	}

	if err = r.lockRestaurantQueue(ctx, restaurantID); err != nil {
		return false, err
	}

	// Re-read under the lock: a concurrent dequeue ahead of this slot may
	// have compacted the queue and shifted it since the first read.
	err = r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// lost the race to a concurrent dequeue
			return false, nil
		}
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&SlotDTO{}, "order_id = ?", orderID.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	err = r.db.WithContext(ctx).Model(&SlotDTO{}).
		Where("restaurant_id = ? AND position > ?", dto.RestaurantID, dto.Position).
		Update("position", gorm.Expr("position - 1")).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// GetByOrderID retrieves the slot held by an order.
func (r *GormQueueRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*queue.Slot, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("queue slot", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRestaurant retrieves all live slots for a restaurant ordered by position.
func (r *GormQueueRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*queue.Slot, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SlotDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("position ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	slots := make([]*queue.Slot, 0, len(dtos))
	for _, dto := range dtos {
		slot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// lockRestaurantQueue serializes queue writes for one restaurant using a
// transaction-scoped advisory lock keyed on the restaurant id. The lock
// releases automatically at commit or rollback.
func (r *GormQueueRepository) lockRestaurantQueue(ctx context.Context, restaurantID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", restaurantID.String()).
		Error
}
