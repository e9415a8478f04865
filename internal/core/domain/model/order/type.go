package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type distinguishes how an order reaches the restaurant.
//
// Table orders are placed by seated guests and carry a table number.
// Online orders are placed remotely for pickup, carry a requested pickup
// time, and occupy a slot in the restaurant's ready-queue.
type Type int

const (
	// UnknownType represents an invalid or undefined order type.
	UnknownType Type = iota

	// Table is an order placed from a table inside the restaurant.
	Table

	// Online is a remote pickup order.
	Online
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Table:       "Table",
		Online:      "Online",
	}
}

// TypeFromString parses an order type name as it appears over the wire or in storage.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "Table":
		return Table, nil
	case "Online":
		return Online, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%q is not a valid order type", s))
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t != Table && t != Online {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
