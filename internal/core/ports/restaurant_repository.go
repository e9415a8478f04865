package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// RestaurantRepository resolves restaurant ownership for permission checks.
// Restaurant profile management itself is a collaborator concern.
type RestaurantRepository interface {
	// GetOwnerID retrieves the owner of a restaurant.
	// Returns an ObjectNotFoundError when the restaurant does not exist.
	GetOwnerID(ctx context.Context, restaurantID kernel.UUID) (kernel.UUID, error)
}
