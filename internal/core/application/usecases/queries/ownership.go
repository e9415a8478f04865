package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// checkRestaurantOwner verifies that ownerID owns the given restaurant.
// Returns ObjectNotFoundError when the restaurant does not exist and
// PermissionDeniedError when it belongs to someone else.
func checkRestaurantOwner(
	ctx context.Context,
	db *gorm.DB,
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
) error {
	var storedOwnerID uuid.UUID

	row := db.WithContext(ctx).Raw(`
		SELECT owner_id
		FROM restaurants
		WHERE id = ?
	`, restaurantID.Bytes()).Row()

	if err := row.Scan(&storedOwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("restaurant", restaurantID)
		}
		return err
	}

	if storedOwnerID != ownerID.Bytes() {
		return errs.NewPermissionDeniedError("restaurant", ownerID)
	}

	return nil
}
