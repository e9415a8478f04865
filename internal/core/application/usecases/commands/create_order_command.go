package commands

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer, the restaurant, the requested lines, and the
// type-specific field: a table number for table orders, a requested pickup
// time for online orders.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, restaurantID,
//	    order.Online, "", &pickupAt, lines, tip,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	orderType     order.Type
	tableNumber   string
	requestedTime *time.Time

	lines []services.RequestedLine
	tip   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the order type with its conditionally required field,
// that at least one line with a positive quantity is present, and that the tip
// is a valid non-negative amount.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	orderType order.Type,
	tableNumber string,
	requestedTime *time.Time,
	lines []services.RequestedLine,
	tip kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID, restaurantID),
		cmd.setType(orderType, tableNumber, requestedTime),
		cmd.setLines(lines),
		cmd.setTip(tip),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant being ordered from.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OrderType returns whether a table or online order is requested.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// TableNumber returns the table number for table orders, empty otherwise.
func (c CreateOrderCommand) TableNumber() string {
	return c.tableNumber
}

// RequestedTime returns the desired pickup time for online orders, nil otherwise.
func (c CreateOrderCommand) RequestedTime() *time.Time {
	return c.requestedTime
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	lines := make([]services.RequestedLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Tip returns the tip amount, zero when none was given.
func (c CreateOrderCommand) Tip() kernel.Money {
	return c.tip
}

func (c *CreateOrderCommand) setIDs(orderID, customerID, restaurantID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setType(orderType order.Type, tableNumber string, requestedTime *time.Time) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	if orderType == order.Table && tableNumber == "" {
		return errs.NewValueIsRequiredError("table number")
	}
	if orderType == order.Online && requestedTime == nil {
		return errs.NewValueIsRequiredError("requested time")
	}

	c.orderType = orderType
	c.tableNumber = tableNumber
	c.requestedTime = requestedTime
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	c.lines = make([]services.RequestedLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setTip(tip kernel.Money) error {
	if err := tip.Validate(); err != nil {
		return err
	}

	c.tip = tip
	return nil
}
