package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSalesReportQueryIsNotConstructed = errors.New(
		"SalesReportQuery must be created via NewSalesReportQuery constructor",
	)
)

// ReportPeriod is the bucketing granularity of a sales report.
type ReportPeriod int

const (
	// UnknownPeriod represents an invalid or undefined period.
	UnknownPeriod ReportPeriod = iota

	// Daily buckets transactions by calendar day.
	Daily

	// Weekly buckets transactions by ISO week.
	Weekly

	// Monthly buckets transactions by calendar month.
	Monthly

	// Yearly buckets transactions by calendar year.
	Yearly
)

// ReportPeriodFromString parses a period name as it appears in API
// requests: "daily", "weekly", "monthly" or "yearly".
func ReportPeriodFromString(s string) (ReportPeriod, error) {
	switch s {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return UnknownPeriod, errs.NewValueIsInvalidError("report period")
	}
}

// Validate checks that the period is one of the defined granularities.
func (p ReportPeriod) Validate() error {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return nil
	default:
		return errs.NewValueIsInvalidError("report period")
	}
}

// truncUnit maps the period onto a date_trunc field name. The value is
// chosen from a fixed set, never from user input.
func (p ReportPeriod) truncUnit() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return ""
	}
}

// String returns the period name used in API requests.
func (p ReportPeriod) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// SalesReportQuery aggregates a restaurant's recorded transactions into
// period buckets: gross sales, both tax components, tips and the number of
// completed orders per bucket. Owner only.
//
// Example:
//
//	query, err := NewSalesReportQuery(restaurantID, ownerID, Monthly, TransactionFilter{})
//	if err != nil {
//	    return err
//	}
//	handler := NewSalesReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build sales report: %w", err)
//	}
//
//	for _, bucket := range report {
//	    fmt.Printf("%s: %s gross over %d orders\n",
//	        bucket.PeriodStart.Format("2006-01"), bucket.Sales, bucket.Orders)
//	}
type SalesReportQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	period       ReportPeriod
	filter       TransactionFilter

	guard guard.ConstructorGuard
}

// NewSalesReportQuery creates a sales report query for a restaurant owner.
// The filter's date range narrows the report; its fiscal year field is
// rejected here, that axis belongs to the tax summary.
func NewSalesReportQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	period ReportPeriod,
	filter TransactionFilter,
) (SalesReportQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return SalesReportQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return SalesReportQuery{}, err
	}
	if err := period.Validate(); err != nil {
		return SalesReportQuery{}, err
	}
	if err := filter.validate(); err != nil {
		return SalesReportQuery{}, err
	}
	if filter.FiscalYear != nil {
		return SalesReportQuery{}, errs.NewValueIsInvalidError("fiscal year filter")
	}

	return SalesReportQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		period:       period,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant the report covers.
func (q SalesReportQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q SalesReportQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Period returns the bucketing granularity.
func (q SalesReportQuery) Period() ReportPeriod {
	return q.period
}

// Filter returns the optional date range.
func (q SalesReportQuery) Filter() TransactionFilter {
	return q.filter
}

// Validate ensures the query was created through the constructor.
func (q SalesReportQuery) Validate() error {
	return q.guard.Validate(ErrSalesReportQueryIsNotConstructed)
}

// SalesReportBucket is one period's aggregated sales figures.
type SalesReportBucket struct {
	PeriodStart time.Time

	Sales kernel.Money
	TaxA  kernel.Money
	TaxB  kernel.Money
	Tips  kernel.Money

	Orders int64
}
