package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// exportHeader is the first row of every export. Monetary columns carry
// plain decimal values with two fraction digits.
var exportHeader = []string{
	"receipt_number",
	"date",
	"fiscal_year",
	"subtotal",
	"tax_a",
	"tax_b",
	"tip",
	"total",
}

// ExportTransactionsQueryHandler renders filtered transactions as CSV.
type ExportTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewExportTransactionsQueryHandler creates a handler for transaction
// exports.
func NewExportTransactionsQueryHandler(db *gorm.DB) ExportTransactionsQueryHandler {
	return ExportTransactionsQueryHandler{db: db}
}

// Handle executes the export after verifying restaurant ownership. The
// result always starts with a header row; a restaurant without matching
// transactions yields just the header. Rows appear newest first, matching
// the transaction listing.
func (h ExportTransactionsQueryHandler) Handle(
	ctx context.Context,
	query ExportTransactionsQuery,
) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := checkRestaurantOwner(ctx, h.db, query.RestaurantID(), query.OwnerID()); err != nil {
		return nil, err
	}

	transactions, err := fetchTransactions(ctx, h.db, query.RestaurantID(), query.Filter())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err = writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, transaction := range transactions {
		// Amount is the grand total; the pre-tax subtotal is derived.
		subtotal := transaction.Amount.Decimal().
			Sub(transaction.TaxA.Decimal()).
			Sub(transaction.TaxB.Decimal()).
			Sub(transaction.Tip.Decimal())

		record := []string{
			transaction.ReceiptNumber,
			transaction.CreatedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(transaction.FiscalYear),
			subtotal.StringFixed(2),
			transaction.TaxA.String(),
			transaction.TaxB.String(),
			transaction.Tip.String(),
			transaction.Amount.String(),
		}
		if err = writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
