package queries

import (
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is the list representation of an order: header and totals
// without the individual lines. Shared by the restaurant and customer
// order listings.
type OrderSummary struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID

	Type   order.Type
	Status order.Status

	TableNumber   string
	RequestedTime *time.Time

	Subtotal kernel.Money
	TaxA     kernel.Money
	TaxB     kernel.Money
	Tip      kernel.Money
	Total    kernel.Money

	CreatedAt time.Time
}

// orderSummaryColumns is the select list scanOrderSummaries expects,
// in scan order.
const orderSummaryColumns = `
	id,
	restaurant_id,
	customer_id,
	order_type,
	status,
	table_number,
	requested_time,
	subtotal,
	tax_a_amount,
	tax_b_amount,
	tip_amount,
	total,
	created_at`

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			id, restaurantID, customerID     uuid.UUID
			orderType, status                int
			tableNumber                      string
			requestedTime                    *time.Time
			subtotal, taxA, taxB, tip, total decimal.Decimal
			createdAt                        time.Time
		)

		err := rows.Scan(
			&id,
			&restaurantID,
			&customerID,
			&orderType,
			&status,
			&tableNumber,
			&requestedTime,
			&subtotal,
			&taxA,
			&taxB,
			&tip,
			&total,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		summary, err := buildOrderSummary(
			id, restaurantID, customerID,
			orderType, status,
			tableNumber, requestedTime,
			subtotal, taxA, taxB, tip, total,
			createdAt,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func buildOrderSummary(
	id, restaurantID, customerID uuid.UUID,
	orderType, status int,
	tableNumber string,
	requestedTime *time.Time,
	subtotal, taxA, taxB, tip, total decimal.Decimal,
	createdAt time.Time,
) (OrderSummary, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}
	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	subtotalMoney, err := kernel.NewMoney(subtotal)
	if err != nil {
		return OrderSummary{}, err
	}
	taxAMoney, err := kernel.NewMoney(taxA)
	if err != nil {
		return OrderSummary{}, err
	}
	taxBMoney, err := kernel.NewMoney(taxB)
	if err != nil {
		return OrderSummary{}, err
	}
	tipMoney, err := kernel.NewMoney(tip)
	if err != nil {
		return OrderSummary{}, err
	}
	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:            orderID,
		RestaurantID:  restID,
		CustomerID:    custID,
		Type:          order.Type(orderType),
		Status:        order.Status(status),
		TableNumber:   tableNumber,
		RequestedTime: requestedTime,
		Subtotal:      subtotalMoney,
		TaxA:          taxAMoney,
		TaxB:          taxBMoney,
		Tip:           tipMoney,
		Total:         totalMoney,
		CreatedAt:     createdAt,
	}, nil
}
