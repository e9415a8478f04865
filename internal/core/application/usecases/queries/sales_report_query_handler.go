package queries

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesReportQueryHandler aggregates transactions into period buckets in
// the database.
type SalesReportQueryHandler struct {
	db *gorm.DB
}

// NewSalesReportQueryHandler creates a handler for sales report queries.
func NewSalesReportQueryHandler(db *gorm.DB) SalesReportQueryHandler {
	return SalesReportQueryHandler{db: db}
}

// Handle executes the report after verifying restaurant ownership. Buckets
// are returned oldest first; periods without transactions are absent.
func (h SalesReportQueryHandler) Handle(
	ctx context.Context,
	query SalesReportQuery,
) ([]SalesReportBucket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := checkRestaurantOwner(ctx, h.db, query.RestaurantID(), query.OwnerID()); err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(`
		SELECT
			date_trunc('%s', created_at) AS period_start,
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(tax_a_amount), 0),
			COALESCE(SUM(tax_b_amount), 0),
			COALESCE(SUM(tip_amount), 0),
			COUNT(*)
		FROM transactions
		WHERE restaurant_id = ?`, query.Period().truncUnit())
	args := []any{query.RestaurantID().Bytes()}

	filter := query.Filter()
	if filter.From != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		sql += ` AND created_at <= ?`
		args = append(args, *filter.To)
	}
	sql += `
		GROUP BY period_start
		ORDER BY period_start ASC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]SalesReportBucket, 0)

	for rows.Next() {
		var (
			periodStart            time.Time
			sales, taxA, taxB, tip decimal.Decimal
			orders                 int64
		)

		if err = rows.Scan(&periodStart, &sales, &taxA, &taxB, &tip, &orders); err != nil {
			return nil, err
		}

		salesMoney, moneyErr := kernel.NewMoney(sales)
		if moneyErr != nil {
			return nil, moneyErr
		}
		taxAMoney, moneyErr := kernel.NewMoney(taxA)
		if moneyErr != nil {
			return nil, moneyErr
		}
		taxBMoney, moneyErr := kernel.NewMoney(taxB)
		if moneyErr != nil {
			return nil, moneyErr
		}
		tipMoney, moneyErr := kernel.NewMoney(tip)
		if moneyErr != nil {
			return nil, moneyErr
		}

		buckets = append(buckets, SalesReportBucket{
			PeriodStart: periodStart,
			Sales:       salesMoney,
			TaxA:        taxAMoney,
			TaxB:        taxBMoney,
			Tips:        tipMoney,
			Orders:      orders,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
