package queue

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrSlotIsNotConstructed is returned when a Slot instance was not created
// through the NewSlot factory method.
var ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot constructor")

// Slot is a restaurant-scoped reservation of a FIFO position for an online
// order awaiting pickup.
//
// Invariants:
//   - at most one slot exists per order
//   - live positions for a restaurant always form the dense run 1..N,
//     ordered by arrival
//
// Slots are created when an online order is placed and removed when the order
// reaches a terminal status; removal compacts the remaining positions.
type Slot struct {
	restaurantID kernel.UUID
	orderID      kernel.UUID

	// position is 1-based; position 1 is next to be ready.
	position int

	estimatedReadyTime time.Time

	isConstructed bool
}

// NewSlot creates a queue slot with validation.
// Position must be a positive integer.
func NewSlot(restaurantID, orderID kernel.UUID, position int, estimatedReadyTime time.Time) (*Slot, error) {
	if err := errors.Join(
		restaurantID.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	if position <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("position",
			fmt.Errorf("%d is not greater than 0", position))
	}

	return &Slot{
		restaurantID:       restaurantID,
		orderID:            orderID,
		position:           position,
		estimatedReadyTime: estimatedReadyTime,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Slot was properly constructed through NewSlot.
func (s *Slot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSlotIsNotConstructed
	}
	return nil
}

// RestaurantID returns the identifier of the restaurant owning the queue.
func (s *Slot) RestaurantID() kernel.UUID {
	return s.restaurantID
}

// OrderID returns the identifier of the order holding the slot.
func (s *Slot) OrderID() kernel.UUID {
	return s.orderID
}

// Position returns the slot's 1-based queue position.
func (s *Slot) Position() int {
	return s.position
}

// EstimatedReadyTime returns when the order is expected to be ready.
func (s *Slot) EstimatedReadyTime() time.Time {
	return s.estimatedReadyTime
}

// ResolveReadyTime picks the estimated ready time for a new slot: the
// customer's requested pickup time when given, otherwise now plus the
// restaurant's default lead time.
func ResolveReadyTime(requested *time.Time, now time.Time, defaultLeadTime time.Duration) time.Time {
	if requested != nil {
		return *requested
	}
	return now.Add(defaultLeadTime)
}

// CheckDensity verifies the density invariant: the positions of the given
// slots form exactly the set {1..N}. The slice order is irrelevant.
func CheckDensity(slots []*Slot) error {
	seen := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return err
		}
		if slot.position < 1 || slot.position > len(slots) {
			return errs.NewValueIsOutOfRangeError("position", slot.position, 1, len(slots))
		}
		if seen[slot.position] {
			return errs.NewValueIsInvalidErrorWithCause("position",
				fmt.Errorf("position %d is duplicated", slot.position))
		}
		seen[slot.position] = true
	}
	return nil
}
