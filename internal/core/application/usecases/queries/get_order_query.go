package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines and, for queued
// online orders, its current queue slot. Only the customer who placed the
// order and the owner of its restaurant may view it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, requesterID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order on behalf of a
// requester. The requester is matched against the order's customer and the
// restaurant's owner during handling.
func NewGetOrderQuery(orderID, requesterID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := requesterID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identifier of the user asking for the order.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is a full view of one order: header, totals, lines
// and the queue slot when the order is waiting in a ready queue.
type GetOrderQueryResponse struct {
	OrderSummary

	Items []GetOrderItemResponse

	// QueuePosition and EstimatedReadyTime are set only while the order
	// occupies a queue slot.
	QueuePosition      *int
	EstimatedReadyTime *time.Time
}

// GetOrderItemResponse is a single priced line of an order.
type GetOrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
}
