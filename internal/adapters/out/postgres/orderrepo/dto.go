// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by restaurant, customer, and status.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index:idx_orders_restaurant_status"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`

	OrderType int
	Status    int `gorm:"index:idx_orders_restaurant_status"`

	TableNumber   string
	RequestedTime *time.Time

	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxBAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TipAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `gorm:"index"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the database.
// The unit price is frozen at order time; the line subtotal is derivable and
// not stored.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	totals := aggregate.Totals()
	items := aggregate.Items()

	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		OrderType:     int(aggregate.Type()),
		Status:        int(aggregate.Status()),
		TableNumber:   aggregate.TableNumber(),
		RequestedTime: aggregate.RequestedTime(),
		Subtotal:      totals.Subtotal.Decimal(),
		TaxAAmount:    totals.TaxA.Decimal(),
		TaxBAmount:    totals.TaxB.Decimal(),
		TipAmount:     totals.Tip.Decimal(),
		Total:         totals.Total.Decimal(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines and totals using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		customerID,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		dto.TableNumber,
		dto.RequestedTime,
		items,
		totals,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, menuItemID, dto.Quantity, unitPrice)
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	taxA, err := kernel.NewMoney(dto.TaxAAmount)
	if err != nil {
		return order.Totals{}, err
	}
	taxB, err := kernel.NewMoney(dto.TaxBAmount)
	if err != nil {
		return order.Totals{}, err
	}
	tip, err := kernel.NewMoney(dto.TipAmount)
	if err != nil {
		return order.Totals{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Totals{}, err
	}

	return order.Totals{
		Subtotal: subtotal,
		TaxA:     taxA,
		TaxB:     taxB,
		Tip:      tip,
		Total:    total,
	}, nil
}
