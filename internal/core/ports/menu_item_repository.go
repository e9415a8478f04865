package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the read contract for current menu state.
// The order core never writes menu items.
type MenuItemRepository interface {
	// Get retrieves a single menu item by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetByIDs retrieves the menu items for the given identifiers.
	// Missing identifiers are simply absent from the result; the caller
	// decides whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error)

	// GetByRestaurant retrieves a restaurant's menu ordered by category and
	// name, optionally restricted to available items.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID, availableOnly bool) ([]*menu.Item, error)
}
