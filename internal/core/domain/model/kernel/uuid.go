package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. Validating a zero-value UUID returns it.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// system: orders, restaurants, customers, menu items and financial records
// all key on it. It wraps github.com/google/uuid so the domain never touches
// the library type directly and the zero value is detectably invalid.
//
// A UUID must come from one of the factory functions; the zero value fails
// Validate. Values are immutable and safe for concurrent use.
//
//	orderID := kernel.NewUUID()
//
//	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // reject the request
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. Every freshly placed order,
// queue slot and transaction record gets its identity here.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, for example
// "415be95d-8865-478c-a483-a22b648a1702". Identity headers and path
// parameters arrive this way.
//
// Returns an error when the string is not a well-formed UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores a UUID from its 16-byte binary form, the
// representation the postgres adapters persist. The result is validated, so
// sixteen zero bytes are rejected rather than silently producing an
// unconstructed value.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// Used for wire responses, log fields and receipt number prefixes. A zero
// value renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID, which the persistence layer binds
// as a 16-byte column value. Slice it (`u.Bytes()[:]`) when an actual []byte
// is needed. Domain code should not need this accessor.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value. Ownership and
// requester checks throughout the use cases compare identities with it.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call it on every identifier they receive, so a forgotten
// assignment surfaces at construction instead of as a nil key in the
// database.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
