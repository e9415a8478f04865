package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetTransactionQueryIsNotConstructed = errors.New(
		"GetTransactionQuery must be created via NewGetTransactionQuery constructor",
	)
)

// GetTransactionQuery retrieves a single transaction record. Only the owner
// of the restaurant the transaction belongs to may view it.
type GetTransactionQuery struct {
	transactionID kernel.UUID
	ownerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionQuery creates a single transaction lookup for a
// restaurant owner.
func NewGetTransactionQuery(transactionID, ownerID kernel.UUID) (GetTransactionQuery, error) {
	if err := transactionID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}

	return GetTransactionQuery{
		transactionID: transactionID,
		ownerID:       ownerID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// TransactionID returns the identifier of the requested transaction.
func (q GetTransactionQuery) TransactionID() kernel.UUID {
	return q.transactionID
}

// OwnerID returns the requesting owner.
func (q GetTransactionQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionQueryIsNotConstructed)
}
