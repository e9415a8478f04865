package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxSummaryQueryHandler totals one fiscal year of transactions in the
// database.
type TaxSummaryQueryHandler struct {
	db *gorm.DB
}

// NewTaxSummaryQueryHandler creates a handler for tax summary queries.
func NewTaxSummaryQueryHandler(db *gorm.DB) TaxSummaryQueryHandler {
	return TaxSummaryQueryHandler{db: db}
}

// Handle executes the summary after verifying restaurant ownership.
func (h TaxSummaryQueryHandler) Handle(
	ctx context.Context,
	query TaxSummaryQuery,
) (TaxSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TaxSummaryQueryResponse{}, err
	}

	if err := checkRestaurantOwner(ctx, h.db, query.RestaurantID(), query.OwnerID()); err != nil {
		return TaxSummaryQueryResponse{}, err
	}

	var (
		sales, taxA, taxB, tips decimal.Decimal
		transactions            int64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(tax_a_amount), 0),
			COALESCE(SUM(tax_b_amount), 0),
			COALESCE(SUM(tip_amount), 0),
			COUNT(*)
		FROM transactions
		WHERE restaurant_id = ? AND fiscal_year = ?
	`, query.RestaurantID().Bytes(), query.FiscalYear()).Row()

	if err := row.Scan(&sales, &taxA, &taxB, &tips, &transactions); err != nil {
		return TaxSummaryQueryResponse{}, err
	}

	salesMoney, err := kernel.NewMoney(sales)
	if err != nil {
		return TaxSummaryQueryResponse{}, err
	}
	taxAMoney, err := kernel.NewMoney(taxA)
	if err != nil {
		return TaxSummaryQueryResponse{}, err
	}
	taxBMoney, err := kernel.NewMoney(taxB)
	if err != nil {
		return TaxSummaryQueryResponse{}, err
	}
	tipsMoney, err := kernel.NewMoney(tips)
	if err != nil {
		return TaxSummaryQueryResponse{}, err
	}

	return TaxSummaryQueryResponse{
		FiscalYear:   query.FiscalYear(),
		Sales:        salesMoney,
		TaxA:         taxAMoney,
		TaxB:         taxBMoney,
		Tips:         tipsMoney,
		Transactions: transactions,
	}, nil
}
