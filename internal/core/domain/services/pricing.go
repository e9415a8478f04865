package services

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrItemUnavailable is returned when a requested menu item is currently
	// marked unavailable.
	ErrItemUnavailable = errors.New("menu item is not available")

	// ErrItemWrongRestaurant is returned when a requested menu item belongs to
	// a different restaurant than the order.
	ErrItemWrongRestaurant = errors.New("menu item does not belong to this restaurant")
)

// RequestedLine is a single line of a pricing request: which menu item and
// how many units.
type RequestedLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PricingService is a domain service that validates requested order lines
// against the current menu state and prices them.
//
// Business rules:
//   - Every requested menu item must exist, be available, and belong to the
//     order's restaurant
//   - Quantities must be positive integers
//   - Each line is priced at the menu item's current price; the order stores
//     the copy, so later menu edits never reprice past orders
//
// The service is pure: callers fetch the menu items, the service only
// validates and computes. Pricing has no side effects; a failed request
// leaves nothing behind.
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// Price validates the requested lines against the supplied menu items and
// returns priced order items together with the order subtotal.
//
// The items slice is the current menu state for the referenced items; a
// requested line whose menu item is absent fails with an ObjectNotFoundError.
// Unavailable items fail with ErrItemUnavailable, cross-restaurant items with
// ErrItemWrongRestaurant, and non-positive quantities with a ValueIsInvalid
// error. The first violation aborts the whole request.
func (PricingService) Price(
	restaurantID kernel.UUID,
	lines []RequestedLine,
	items []*menu.Item,
) ([]order.Item, kernel.Money, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, kernel.Money{}, err
	}
	if len(lines) == 0 {
		return nil, kernel.Money{}, errs.NewValueIsRequiredError("order items")
	}

	byID := make(map[kernel.UUID]*menu.Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, kernel.Money{}, err
		}
		byID[item.ID()] = item
	}

	priced := make([]order.Item, 0, len(lines))
	subtotal := kernel.ZeroMoney()

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}

		menuItem, ok := byID[line.MenuItemID]
		if !ok {
			return nil, kernel.Money{}, errs.NewObjectNotFoundError("menu item", line.MenuItemID.String())
		}

		if !menuItem.Available() {
			return nil, kernel.Money{}, fmt.Errorf("%w: %s", ErrItemUnavailable, menuItem.Name())
		}

		if !menuItem.RestaurantID().IsEqual(restaurantID) {
			return nil, kernel.Money{}, fmt.Errorf("%w: %s", ErrItemWrongRestaurant, menuItem.Name())
		}

		orderItem, err := order.NewItem(kernel.NewUUID(), menuItem.ID(), line.Quantity, menuItem.Price())
		if err != nil {
			return nil, kernel.Money{}, err
		}

		priced = append(priced, orderItem)
		subtotal = subtotal.Add(orderItem.Subtotal())
	}

	return priced, subtotal, nil
}
