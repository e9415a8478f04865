package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money is an immutable value object representing a non-negative currency amount.
// It wraps a decimal value so that all monetary arithmetic is exact; floating-point
// money is a correctness bug class this type exists to rule out.
//
// Amounts are stored at full precision; Round2 truncates to cents with half-up
// rounding, which is applied to every tax component before summing.
//
// The zero value of Money is invalid and fails validation - use the constructors.
//
// Example:
//
//	price, err := kernel.MoneyFromString("12.50")
//	if err != nil {
//	    // handle validation error
//	}
//	line := price.MulInt(3) // 37.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "12.50". Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}

	return NewMoney(amount)
}

// ZeroMoney returns a valid Money carrying a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulRate returns the amount multiplied by a fractional rate, without rounding.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate), guard: guard.NewConstructorGuard()}
}

// Round2 returns the amount rounded half-up to two decimal places.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2), guard: guard.NewConstructorGuard()}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money was properly constructed and is non-negative.
func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", m.amount.String()))
	}
	return nil
}
