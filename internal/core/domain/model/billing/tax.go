package billing

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTaxRatesAreNotConstructed is returned when attempting to use improperly
// initialized TaxRates. Rates must be created via NewTaxRates.
var ErrTaxRatesAreNotConstructed = errs.NewValueIsRequiredError(
	"tax rates must be created via NewTaxRates constructor")

// TaxRates holds the two jurisdiction tax rates applied to order subtotals.
// Rates are configuration, never hardcoded; both must lie in [0, 1).
type TaxRates struct { //nolint:recvcheck //using for validation
	rateA decimal.Decimal
	rateB decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTaxRates creates validated tax rates.
func NewTaxRates(rateA, rateB decimal.Decimal) (TaxRates, error) {
	rates := TaxRates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		rates.setRate(&rates.rateA, "rate A", rateA),
		rates.setRate(&rates.rateB, "rate B", rateB),
	); err != nil {
		return TaxRates{}, err
	}

	return rates, nil
}

// TaxRatesFromStrings parses rates from their decimal string representations,
// e.g. "0.05" and "0.07". Used when loading rates from configuration.
func TaxRatesFromStrings(rateA, rateB string) (TaxRates, error) {
	a, err := decimal.NewFromString(rateA)
	if err != nil {
		return TaxRates{}, errs.NewValueIsInvalidErrorWithCause("rate A", err)
	}

	b, err := decimal.NewFromString(rateB)
	if err != nil {
		return TaxRates{}, errs.NewValueIsInvalidErrorWithCause("rate B", err)
	}

	return NewTaxRates(a, b)
}

// RateA returns the first jurisdiction rate.
func (r TaxRates) RateA() decimal.Decimal {
	return r.rateA
}

// RateB returns the second jurisdiction rate.
func (r TaxRates) RateB() decimal.Decimal {
	return r.rateB
}

// Validate ensures the rates were properly constructed.
func (r TaxRates) Validate() error {
	return r.guard.Validate(ErrTaxRatesAreNotConstructed)
}

func (r *TaxRates) setRate(dst *decimal.Decimal, name string, rate decimal.Decimal) error {
	one := decimal.NewFromInt(1)
	if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
		return errs.NewValueIsOutOfRangeError(name, rate.String(), "0", "1")
	}

	*dst = rate
	return nil
}

// TaxBreakdown is the result of a tax computation: the rounded subtotal, the
// two tax components, and the grand total including tip.
type TaxBreakdown struct {
	Subtotal kernel.Money
	TaxA     kernel.Money
	TaxB     kernel.Money
	Total    kernel.Money
}

// CalculateTaxes computes the jurisdiction taxes for an order.
//
// Both taxes apply to the subtotal only; the tip is never taxed. Each tax
// component is independently rounded half-up to cents before summing, and the
// total is the rounded sum of subtotal, both taxes, and the tip:
//
//	taxA  = round2(subtotal * rateA)
//	taxB  = round2(subtotal * rateB)
//	total = round2(subtotal + taxA + taxB + tip)
//
// The function is pure and deterministic; its only failure mode is invalid
// input (negative or unconstructed amounts, unconstructed rates).
func CalculateTaxes(subtotal, tip kernel.Money, rates TaxRates) (TaxBreakdown, error) {
	if err := errors.Join(
		subtotal.Validate(),
		tip.Validate(),
		rates.Validate(),
	); err != nil {
		return TaxBreakdown{}, fmt.Errorf("calculate taxes: %w", err)
	}

	taxA := subtotal.MulRate(rates.rateA).Round2()
	taxB := subtotal.MulRate(rates.rateB).Round2()
	roundedSubtotal := subtotal.Round2()
	total := roundedSubtotal.Add(taxA).Add(taxB).Add(tip).Round2()

	return TaxBreakdown{
		Subtotal: roundedSubtotal,
		TaxA:     taxA,
		TaxB:     taxB,
		Total:    total,
	}, nil
}
