package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueueQueryIsNotConstructed = errors.New(
		"GetRestaurantQueueQuery must be created via NewGetRestaurantQueueQuery constructor",
	)
)

// GetRestaurantQueueQuery lists a restaurant's ready queue in serving order.
// The queue is public display data; no ownership check applies.
type GetRestaurantQueueQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQueueQuery creates a queue listing query.
func NewGetRestaurantQueueQuery(restaurantID kernel.UUID) (GetRestaurantQueueQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQueueQuery{}, err
	}

	return GetRestaurantQueueQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant whose queue is listed.
func (q GetRestaurantQueueQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueueQueryIsNotConstructed)
}

// GetRestaurantQueueQueryResponse is one slot of a restaurant's ready queue.
type GetRestaurantQueueQueryResponse struct {
	OrderID            kernel.UUID
	Position           int
	EstimatedReadyTime time.Time
}
