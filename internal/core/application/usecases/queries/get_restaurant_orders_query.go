package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
)

// OrderFilter narrows an order listing. Nil fields are ignored.
type OrderFilter struct {
	Status *order.Status
	Type   *order.Type
	From   *time.Time
	To     *time.Time
}

func (f OrderFilter) validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.Type != nil {
		if err := f.Type.Validate(); err != nil {
			return err
		}
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return errs.NewValueIsInvalidError("date range")
	}
	return nil
}

// GetRestaurantOrdersQuery lists a restaurant's orders, newest first,
// optionally narrowed by status, type and creation date range. Owner only.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	filter       OrderFilter

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates an order listing query for a
// restaurant owner.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	filter OrderFilter,
) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	if err := filter.validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q GetRestaurantOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Filter returns the optional narrowing criteria.
func (q GetRestaurantOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}
