package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler lists a restaurant's transactions for its
// owner.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for transaction listings.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle executes the query after verifying restaurant ownership. Results
// are sorted by recording time, newest first.
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := checkRestaurantOwner(ctx, h.db, query.RestaurantID(), query.OwnerID()); err != nil {
		return nil, err
	}

	return fetchTransactions(ctx, h.db, query.RestaurantID(), query.Filter())
}

// fetchTransactions runs the filtered transaction listing. Shared with the
// CSV export, which applies the same criteria.
func fetchTransactions(
	ctx context.Context,
	db *gorm.DB,
	restaurantID kernel.UUID,
	filter TransactionFilter,
) ([]TransactionResponse, error) {
	sql := `
		SELECT
			id,
			order_id,
			restaurant_id,
			amount,
			tax_a_amount,
			tax_b_amount,
			tip_amount,
			fiscal_year,
			receipt_number,
			created_at
		FROM transactions
		WHERE restaurant_id = ?`
	args := []any{restaurantID.Bytes()}

	if filter.From != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		sql += ` AND created_at <= ?`
		args = append(args, *filter.To)
	}
	if filter.FiscalYear != nil {
		sql += ` AND fiscal_year = ?`
		args = append(args, *filter.FiscalYear)
	}
	sql += `
		ORDER BY created_at DESC`

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]TransactionResponse, 0)

	for rows.Next() {
		var (
			id, orderID, restID     uuid.UUID
			amount, taxA, taxB, tip decimal.Decimal
			fiscalYear              int
			receiptNumber           string
			createdAt               time.Time
		)

		err = rows.Scan(
			&id,
			&orderID,
			&restID,
			&amount,
			&taxA,
			&taxB,
			&tip,
			&fiscalYear,
			&receiptNumber,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		transaction, buildErr := buildTransactionResponse(
			id, orderID, restID,
			amount, taxA, taxB, tip,
			fiscalYear, receiptNumber, createdAt,
		)
		if buildErr != nil {
			return nil, buildErr
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func buildTransactionResponse(
	id, orderID, restaurantID uuid.UUID,
	amount, taxA, taxB, tip decimal.Decimal,
	fiscalYear int,
	receiptNumber string,
	createdAt time.Time,
) (TransactionResponse, error) {
	transactionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TransactionResponse{}, err
	}
	ordID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return TransactionResponse{}, err
	}
	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return TransactionResponse{}, err
	}

	amountMoney, err := kernel.NewMoney(amount)
	if err != nil {
		return TransactionResponse{}, err
	}
	taxAMoney, err := kernel.NewMoney(taxA)
	if err != nil {
		return TransactionResponse{}, err
	}
	taxBMoney, err := kernel.NewMoney(taxB)
	if err != nil {
		return TransactionResponse{}, err
	}
	tipMoney, err := kernel.NewMoney(tip)
	if err != nil {
		return TransactionResponse{}, err
	}

	return TransactionResponse{
		ID:            transactionID,
		OrderID:       ordID,
		RestaurantID:  restID,
		Amount:        amountMoney,
		TaxA:          taxAMoney,
		TaxB:          taxBMoney,
		Tip:           tipMoney,
		FiscalYear:    fiscalYear,
		ReceiptNumber: receiptNumber,
		CreatedAt:     createdAt,
	}, nil
}
