// Package transactionrepo persists financial transaction records.
// Records are append-only; the unique order reference makes recording
// idempotent at the storage level.
package transactionrepo

import (
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents a financial transaction record in the database.
// Indexed by restaurant and fiscal year for reporting queries.
type TransactionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index:idx_transactions_restaurant_year"`

	Amount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxBAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TipAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`

	FiscalYear    int    `gorm:"index:idx_transactions_restaurant_year"`
	ReceiptNumber string `gorm:"uniqueIndex"`

	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for transaction entities.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(transaction *billing.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            transaction.ID().Bytes(),
		OrderID:       transaction.OrderID().Bytes(),
		RestaurantID:  transaction.RestaurantID().Bytes(),
		Amount:        transaction.Amount().Decimal(),
		TaxAAmount:    transaction.TaxAAmount().Decimal(),
		TaxBAmount:    transaction.TaxBAmount().Decimal(),
		TipAmount:     transaction.TipAmount().Decimal(),
		FiscalYear:    transaction.FiscalYear(),
		ReceiptNumber: transaction.ReceiptNumber(),
		CreatedAt:     transaction.CreatedAt(),
	}
}

func toDomain(dto TransactionDTO) (*billing.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	taxA, err := kernel.NewMoney(dto.TaxAAmount)
	if err != nil {
		return nil, err
	}
	taxB, err := kernel.NewMoney(dto.TaxBAmount)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoney(dto.TipAmount)
	if err != nil {
		return nil, err
	}

	return billing.RestoreTransaction(
		id, orderID, restaurantID,
		amount, taxA, taxB, tip,
		dto.FiscalYear, dto.ReceiptNumber, dto.CreatedAt,
	)
}
