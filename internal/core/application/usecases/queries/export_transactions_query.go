package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrExportTransactionsQueryIsNotConstructed = errors.New(
		"ExportTransactionsQuery must be created via NewExportTransactionsQuery constructor",
	)
)

// ExportTransactionsQuery renders a restaurant's transactions as CSV for
// bookkeeping handoff. Accepts the same filter as the transaction listing.
// Owner only.
type ExportTransactionsQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	filter       TransactionFilter

	guard guard.ConstructorGuard
}

// NewExportTransactionsQuery creates a CSV export query for a restaurant
// owner.
func NewExportTransactionsQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	filter TransactionFilter,
) (ExportTransactionsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ExportTransactionsQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return ExportTransactionsQuery{}, err
	}
	if err := filter.validate(); err != nil {
		return ExportTransactionsQuery{}, err
	}

	return ExportTransactionsQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant whose transactions are exported.
func (q ExportTransactionsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q ExportTransactionsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Filter returns the optional narrowing criteria.
func (q ExportTransactionsQuery) Filter() TransactionFilter {
	return q.filter
}

// Validate ensures the query was created through the constructor.
func (q ExportTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrExportTransactionsQueryIsNotConstructed)
}
