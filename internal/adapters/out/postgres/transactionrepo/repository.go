package transactionrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transaction record to the database.
// The unique index on the order reference rejects a second record for the
// same order.
func (r *GormTransactionRepository) Add(ctx context.Context, transaction *billing.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transaction)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(transaction.ID(), transaction)
	return nil
}

// GetByOrderID retrieves the transaction recorded for an order.
func (r *GormTransactionRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.Transaction, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
