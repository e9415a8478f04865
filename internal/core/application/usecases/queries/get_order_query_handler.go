package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order from the database and enforces
// that the requester is either the customer or the restaurant owner.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and PermissionDeniedError when the requester is neither the
// customer nor the owner of the order's restaurant.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id, restaurantID, customerID     uuid.UUID
		orderType, status                int
		tableNumber                      string
		requestedTime                    *time.Time
		subtotal, taxA, taxB, tip, total decimal.Decimal
		createdAt                        time.Time
		ownerID                          uuid.UUID
		queuePosition                    *int
		estimatedReadyTime               *time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.restaurant_id,
			o.customer_id,
			o.order_type,
			o.status,
			o.table_number,
			o.requested_time,
			o.subtotal,
			o.tax_a_amount,
			o.tax_b_amount,
			o.tip_amount,
			o.total,
			o.created_at,
			r.owner_id,
			q.position,
			q.estimated_ready_time
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN queue_slots q ON q.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
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
		&ownerID,
		&queuePosition,
		&estimatedReadyTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	requester := query.RequesterID().Bytes()
	if requester != customerID && requester != ownerID {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError("order", query.RequesterID())
	}

	summary, err := buildOrderSummary(
		id, restaurantID, customerID,
		orderType, status,
		tableNumber, requestedTime,
		subtotal, taxA, taxB, tip, total,
		createdAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderSummary:       summary,
		Items:              items,
		QueuePosition:      queuePosition,
		EstimatedReadyTime: estimatedReadyTime,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)

	for rows.Next() {
		var (
			id, menuItemID uuid.UUID
			quantity       int
			unitPrice      decimal.Decimal
		)

		if err = rows.Scan(&id, &menuItemID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		menuID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, GetOrderItemResponse{
			ID:         itemID,
			MenuItemID: menuID,
			Quantity:   quantity,
			UnitPrice:  price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
