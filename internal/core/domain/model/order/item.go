package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line: a menu item reference frozen at order time.
//
// The unit price is copied from the menu item when the order is created, so
// later menu edits never change what the customer was charged. Items are
// immutable after creation and live exactly as long as their order.
type Item struct {
	// id is the unique identifier for the line.
	id kernel.UUID

	// menuItemID references the menu item the line was priced from.
	menuItemID kernel.UUID

	// quantity is the number of units ordered (positive).
	quantity int

	// unitPrice is the menu item's price at order time.
	unitPrice kernel.Money

	// subtotal is unitPrice multiplied by quantity.
	subtotal kernel.Money

	// isConstructed ensures the item was created via NewItem.
	isConstructed bool
}

// NewItem creates an order line with validation.
// Quantity must be a positive integer; the line subtotal is derived from the
// unit price, never supplied by the caller.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		unitPrice.Validate(),
	); err != nil {
		return Item{}, err
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:            id,
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price frozen at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the line subtotal (unit price times quantity).
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}
