package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without any lines.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Totals carries the monetary breakdown of an order. Each component is already
// rounded to cents; Total must equal the rounded sum of the other four.
type Totals struct {
	Subtotal kernel.Money
	TaxA     kernel.Money
	TaxB     kernel.Money
	Tip      kernel.Money
	Total    kernel.Money
}

// Validate checks that every component is a valid amount and that the total
// is internally consistent.
func (t Totals) Validate() error {
	if err := errors.Join(
		t.Subtotal.Validate(),
		t.TaxA.Validate(),
		t.TaxB.Validate(),
		t.Tip.Validate(),
		t.Total.Validate(),
	); err != nil {
		return err
	}

	sum := t.Subtotal.Add(t.TaxA).Add(t.TaxB).Add(t.Tip).Round2()
	if !t.Total.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("totals",
			fmt.Errorf("total %s does not equal component sum %s", t.Total, sum))
	}

	return nil
}

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from creation through completion or cancellation.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its restaurant, and its customer
//   - Must contain at least one item; items are immutable after creation
//   - Table orders carry a table number and no requested pickup time
//   - Online orders carry a requested pickup time and no table number
//   - Monetary totals are internally consistent (see Totals)
//   - Status transitions follow the lifecycle state machine (see Status)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are created once, advance
// their status in place, and are never deleted.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID

	orderType Type
	status    Status

	// tableNumber is set iff orderType is Table.
	tableNumber string

	// requestedTime is the desired pickup time, set iff orderType is Online.
	requestedTime *time.Time

	items  []Item
	totals Totals

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// This is the only way to create a fresh order, ensuring all business
// invariants hold from the start.
//
// The tableNumber and requestedTime parameters are conditionally required:
// Table orders must supply tableNumber and no requestedTime, Online orders
// the reverse. Violations return a ValueIsRequired or ValueIsInvalid error.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	tableNumber string,
	requestedTime *time.Time,
	items []Item,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, restaurantID, customerID),
		o.setType(orderType, tableNumber, requestedTime),
		o.setItems(items),
		o.setTotals(totals),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status. It applies the same structural validation as NewOrder but accepts
// any valid status instead of forcing Pending.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	status Status,
	tableNumber string,
	requestedTime *time.Time,
	items []Item,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, restaurantID, customerID, orderType, tableNumber, requestedTime, items, totals, createdAt)
	if err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Call when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Type returns whether the order is a Table or Online order.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TableNumber returns the table number for Table orders, empty otherwise.
func (o *Order) TableNumber() string {
	return o.tableNumber
}

// RequestedTime returns the desired pickup time for Online orders, nil otherwise.
func (o *Order) RequestedTime() *time.Time {
	return o.requestedTime
}

// Items returns the order lines. The returned slice is a copy; items are
// immutable after creation.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the monetary breakdown of the order.
func (o *Order) Totals() Totals {
	return o.totals
}

// CreatedAt returns the order's creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvanceTo moves the order to the target status.
//
// The transition must be either the single next status in the linear
// progression or Cancelled from a non-terminal status; anything else fails
// with an error wrapping ErrInvalidStatusTransition and leaves the order
// unchanged. Side effects of entering Completed or Cancelled (transaction
// recording, queue removal) are the lifecycle handler's responsibility.
func (o *Order) AdvanceTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsPlacedBy reports whether the order belongs to the given customer.
func (o *Order) IsPlacedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) setIDs(id, restaurantID, customerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		customerID.Validate(),
	); err != nil {
		return err
	}

	o.id = id
	o.restaurantID = restaurantID
	o.customerID = customerID
	return nil
}

func (o *Order) setType(orderType Type, tableNumber string, requestedTime *time.Time) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	switch orderType {
	case Table:
		if tableNumber == "" {
			return errs.NewValueIsRequiredError("table number")
		}
		if requestedTime != nil {
			return errs.NewValueIsInvalidErrorWithCause("requested time",
				errors.New("table orders cannot carry a pickup time"))
		}
	case Online:
		if requestedTime == nil {
			return errs.NewValueIsRequiredError("requested time")
		}
		if tableNumber != "" {
			return errs.NewValueIsInvalidErrorWithCause("table number",
				errors.New("online orders cannot carry a table number"))
		}
	}

	o.orderType = orderType
	o.tableNumber = tableNumber
	o.requestedTime = requestedTime
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	o.totals = totals
	return nil
}
