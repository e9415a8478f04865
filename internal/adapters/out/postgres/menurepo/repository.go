// Package menurepo provides read access to menu state for pricing and display.
// Menu management itself belongs to a collaborator; this repository never
// writes.
package menurepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemDTO represents a menu item row.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`

	Name      string
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category  string
	Available bool

	UpdatedAt time.Time
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewItem(id, restaurantID, dto.Name, price, dto.Category, dto.Available, dto.UpdatedAt)
}

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves menu items for the given identifiers.
// Missing identifiers are simply absent from the result.
func (r *GormMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

// GetByRestaurant retrieves a restaurant's menu ordered by category and name.
func (r *GormMenuItemRepository) GetByRestaurant(
	ctx context.Context, restaurantID kernel.UUID, availableOnly bool,
) ([]*menu.Item, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID.Bytes())
	if availableOnly {
		query = query.Where("available")
	}

	var dtos []MenuItemDTO
	if err := query.Order("category ASC, name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

func itemsToDomain(dtos []MenuItemDTO) ([]*menu.Item, error) {
	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
