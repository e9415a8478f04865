package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists a restaurant's orders for its owner.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order
// listings.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query after verifying restaurant ownership.
// Results are sorted by creation time, newest first.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := checkRestaurantOwner(ctx, h.db, query.RestaurantID(), query.OwnerID()); err != nil {
		return nil, err
	}

	sql := `
		SELECT` + orderSummaryColumns + `
		FROM orders
		WHERE restaurant_id = ?`
	args := []any{query.RestaurantID().Bytes()}

	filter := query.Filter()
	if filter.Status != nil {
		sql += ` AND status = ?`
		args = append(args, int(*filter.Status))
	}
	if filter.Type != nil {
		sql += ` AND order_type = ?`
		args = append(args, int(*filter.Type))
	}
	if filter.From != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		sql += ` AND created_at <= ?`
		args = append(args, *filter.To)
	}
	sql += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
