package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrTaxSummaryQueryIsNotConstructed = errors.New(
		"TaxSummaryQuery must be created via NewTaxSummaryQuery constructor",
	)
)

// TaxSummaryQuery totals a restaurant's transactions for one fiscal year:
// gross sales, both tax components, tips and the transaction count.
// Owner only.
type TaxSummaryQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	fiscalYear   int

	guard guard.ConstructorGuard
}

// NewTaxSummaryQuery creates a fiscal year tax summary query for a
// restaurant owner.
func NewTaxSummaryQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	fiscalYear int,
) (TaxSummaryQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return TaxSummaryQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return TaxSummaryQuery{}, err
	}
	if fiscalYear <= 0 {
		return TaxSummaryQuery{}, errs.NewValueIsInvalidError("fiscal year")
	}

	return TaxSummaryQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		fiscalYear:   fiscalYear,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant the summary covers.
func (q TaxSummaryQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q TaxSummaryQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// FiscalYear returns the fiscal year the summary covers.
func (q TaxSummaryQuery) FiscalYear() int {
	return q.fiscalYear
}

// Validate ensures the query was created through the constructor.
func (q TaxSummaryQuery) Validate() error {
	return q.guard.Validate(ErrTaxSummaryQueryIsNotConstructed)
}

// TaxSummaryQueryResponse is one fiscal year's tax totals. A year without
// transactions yields zero totals, not an error.
type TaxSummaryQueryResponse struct {
	FiscalYear int

	Sales kernel.Money
	TaxA  kernel.Money
	TaxB  kernel.Money
	Tips  kernel.Money

	Transactions int64
}
