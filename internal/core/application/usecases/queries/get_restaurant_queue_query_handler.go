package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantQueueQueryHandler lists a restaurant's queue slots in
// position order.
type GetRestaurantQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueueQueryHandler creates a handler for queue listings.
func NewGetRestaurantQueueQueryHandler(db *gorm.DB) GetRestaurantQueueQueryHandler {
	return GetRestaurantQueueQueryHandler{db: db}
}

// Handle executes the query. An empty queue yields an empty slice, not an
// error.
func (h GetRestaurantQueueQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQueueQuery,
) ([]GetRestaurantQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			position,
			estimated_ready_time
		FROM queue_slots
		WHERE restaurant_id = ?
		ORDER BY position ASC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]GetRestaurantQueueQueryResponse, 0)

	for rows.Next() {
		var (
			orderID            uuid.UUID
			position           int
			estimatedReadyTime time.Time
		)

		if err = rows.Scan(&orderID, &position, &estimatedReadyTime); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		slots = append(slots, GetRestaurantQueueQueryResponse{
			OrderID:            id,
			Position:           position,
			EstimatedReadyTime: estimatedReadyTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
