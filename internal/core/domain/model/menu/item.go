// Package menu holds the read model of restaurant menu items consumed by order
// pricing. Menu management itself is a collaborator concern; the order core
// only ever reads current item state.
package menu

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a menu entry with its current price and availability.
// Orders copy the price at order time; an Item is never referenced live
// from a persisted order.
type Item struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	category     string
	available    bool
	updatedAt    time.Time

	isConstructed bool
}

// NewItem creates a menu item with validation.
func NewItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price kernel.Money,
	category string,
	available bool,
	updatedAt time.Time,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Item{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		category:      category,
		available:     available,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (i *Item) RestaurantID() kernel.UUID {
	return i.restaurantID
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Category returns the menu section the item belongs to.
func (i *Item) Category() string {
	return i.category
}

// Available reports whether the item can currently be ordered.
func (i *Item) Available() bool {
	return i.available
}

// UpdatedAt returns the last modification instant.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}
