package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetTransactionsQueryIsNotConstructed = errors.New(
		"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
	)
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	FiscalYear *int
}

func (f TransactionFilter) validate() error {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return errs.NewValueIsInvalidError("date range")
	}
	if f.FiscalYear != nil && *f.FiscalYear <= 0 {
		return errs.NewValueIsInvalidError("fiscal year")
	}
	return nil
}

// GetTransactionsQuery lists a restaurant's recorded transactions, newest
// first, optionally narrowed by recording date range or fiscal year.
// Owner only.
type GetTransactionsQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	filter       TransactionFilter

	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a transaction listing query for a
// restaurant owner.
func NewGetTransactionsQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	filter TransactionFilter,
) (GetTransactionsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetTransactionsQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return GetTransactionsQuery{}, err
	}
	if err := filter.validate(); err != nil {
		return GetTransactionsQuery{}, err
	}

	return GetTransactionsQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant whose transactions are listed.
func (q GetTransactionsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q GetTransactionsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Filter returns the optional narrowing criteria.
func (q GetTransactionsQuery) Filter() TransactionFilter {
	return q.filter
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

// TransactionResponse is one recorded financial transaction.
type TransactionResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	RestaurantID kernel.UUID

	Amount kernel.Money
	TaxA   kernel.Money
	TaxB   kernel.Money
	Tip    kernel.Money

	FiscalYear    int
	ReceiptNumber string

	CreatedAt time.Time
}
