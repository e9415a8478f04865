package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionQueryHandler loads a single transaction and enforces that
// the requester owns the restaurant it was recorded for.
type GetTransactionQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionQueryHandler creates a handler for single transaction
// lookups.
func NewGetTransactionQueryHandler(db *gorm.DB) GetTransactionQueryHandler {
	return GetTransactionQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the
// transaction does not exist and PermissionDeniedError when the requester
// does not own the restaurant.
func (h GetTransactionQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionQuery,
) (TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return TransactionResponse{}, err
	}

	var (
		id, orderID, restID     uuid.UUID
		amount, taxA, taxB, tip decimal.Decimal
		fiscalYear              int
		receiptNumber           string
		createdAt               time.Time
		ownerID                 uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.order_id,
			t.restaurant_id,
			t.amount,
			t.tax_a_amount,
			t.tax_b_amount,
			t.tip_amount,
			t.fiscal_year,
			t.receipt_number,
			t.created_at,
			r.owner_id
		FROM transactions t
		JOIN restaurants r ON r.id = t.restaurant_id
		WHERE t.id = ?
	`, query.TransactionID().Bytes()).Row()

	err := row.Scan(
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
		&ownerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TransactionResponse{}, errs.NewObjectNotFoundError("transaction", query.TransactionID())
		}
		return TransactionResponse{}, err
	}

	if ownerID != query.OwnerID().Bytes() {
		return TransactionResponse{}, errs.NewPermissionDeniedError("transaction", query.OwnerID())
	}

	return buildTransactionResponse(
		id, orderID, restID,
		amount, taxA, taxB, tip,
		fiscalYear, receiptNumber, createdAt,
	)
}
