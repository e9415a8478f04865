// Package restaurantrepo resolves restaurant ownership for permission checks.
package restaurantrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantDTO represents a restaurant row. Only the fields the order core
// reads are mapped; profile management lives elsewhere.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// GetOwnerID retrieves the owner of a restaurant.
func (r *GormRestaurantRepository) GetOwnerID(ctx context.Context, restaurantID kernel.UUID) (kernel.UUID, error) {
	if err := restaurantID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", restaurantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("restaurant", restaurantID.String())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.OwnerID[:])
}
