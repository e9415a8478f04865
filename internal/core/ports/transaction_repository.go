package ports

import (
	"context"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
)

// TransactionRepository defines the persistence contract for financial
// transaction records. Transactions are append-only and never modified.
type TransactionRepository interface {
	// Add persists a new transaction. The storage layer enforces a unique
	// constraint on the order reference.
	Add(ctx context.Context, transaction *billing.Transaction) error

	// GetByOrderID retrieves the transaction recorded for an order.
	// Returns an ObjectNotFoundError when no transaction exists yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.Transaction, error)
}
