package commands

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Role identifies what kind of user is acting on an order.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Owner is a restaurant owner managing their restaurant's orders.
	Owner

	// Customer is a guest acting on their own orders.
	Customer
)

// RoleFromString parses a role name as resolved by the identity collaborator.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "owner":
		return Owner, nil
	case "customer":
		return Customer, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != Owner && r != Customer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name as used over the wire.
func (r Role) String() string {
	switch r {
	case Owner:
		return "owner"
	case Customer:
		return "customer"
	default:
		return "unknown"
	}
}

// Actor is the already-authenticated identity a command runs on behalf of.
// Identity and session issuance are collaborator concerns; the core only
// checks ownership before mutating.
type Actor struct {
	UserID kernel.UUID
	Role   Role
}

// Validate checks the actor carries a valid user and role.
func (a Actor) Validate() error {
	if err := a.UserID.Validate(); err != nil {
		return err
	}
	return a.Role.Validate()
}
