package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through a factory method.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransactionForOrder or RestoreTransaction constructor")

// Transaction is the immutable financial record produced when an order reaches
// the Completed status. Exactly one transaction exists per completed order;
// the recorder guards idempotency and the storage layer enforces a unique
// constraint on the order reference as a second line of defense.
//
// The monetary fields are copied from the order's already-computed totals,
// never recomputed. The fiscal year is the calendar year of the recording
// instant, used for tax-filing attribution.
type Transaction struct {
	id           kernel.UUID
	orderID      kernel.UUID
	restaurantID kernel.UUID

	amount     kernel.Money
	taxAAmount kernel.Money
	taxBAmount kernel.Money
	tipAmount  kernel.Money

	fiscalYear    int
	receiptNumber string
	createdAt     time.Time

	isConstructed bool
}

// NewTransactionForOrder creates the financial record for a completed order,
// stamping the fiscal year and generating a receipt number from the recording
// instant. The order must carry valid totals.
func NewTransactionForOrder(id kernel.UUID, o *order.Order, now time.Time) (*Transaction, error) {
	if err := errors.Join(id.Validate(), o.Validate()); err != nil {
		return nil, err
	}

	totals := o.Totals()
	return &Transaction{
		id:            id,
		orderID:       o.ID(),
		restaurantID:  o.RestaurantID(),
		amount:        totals.Total,
		taxAAmount:    totals.TaxA,
		taxBAmount:    totals.TaxB,
		tipAmount:     totals.Tip,
		fiscalYear:    FiscalYear(now),
		receiptNumber: GenerateReceiptNumber(o.RestaurantID(), now),
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTransaction reconstructs a Transaction from persistence.
func RestoreTransaction(
	id kernel.UUID,
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	amount kernel.Money,
	taxAAmount kernel.Money,
	taxBAmount kernel.Money,
	tipAmount kernel.Money,
	fiscalYear int,
	receiptNumber string,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		restaurantID.Validate(),
		amount.Validate(),
		taxAAmount.Validate(),
		taxBAmount.Validate(),
		tipAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if receiptNumber == "" {
		return nil, errs.NewValueIsRequiredError("receipt number")
	}

	return &Transaction{
		id:            id,
		orderID:       orderID,
		restaurantID:  restaurantID,
		amount:        amount,
		taxAAmount:    taxAAmount,
		taxBAmount:    taxBAmount,
		tipAmount:     tipAmount,
		fiscalYear:    fiscalYear,
		receiptNumber: receiptNumber,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transaction was properly constructed through a factory.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// OrderID returns the identifier of the completed order.
func (t *Transaction) OrderID() kernel.UUID {
	return t.orderID
}

// RestaurantID returns the identifier of the restaurant the sale belongs to.
func (t *Transaction) RestaurantID() kernel.UUID {
	return t.restaurantID
}

// Amount returns the grand total recorded for the order.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// TaxAAmount returns the first jurisdiction tax component.
func (t *Transaction) TaxAAmount() kernel.Money {
	return t.taxAAmount
}

// TaxBAmount returns the second jurisdiction tax component.
func (t *Transaction) TaxBAmount() kernel.Money {
	return t.taxBAmount
}

// TipAmount returns the tip recorded for the order.
func (t *Transaction) TipAmount() kernel.Money {
	return t.tipAmount
}

// FiscalYear returns the reporting year the sale is attributed to.
func (t *Transaction) FiscalYear() int {
	return t.fiscalYear
}

// ReceiptNumber returns the unique receipt number.
func (t *Transaction) ReceiptNumber() string {
	return t.receiptNumber
}

// CreatedAt returns the recording instant.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// FiscalYear derives the reporting year for a recording instant.
func FiscalYear(at time.Time) int {
	return at.Year()
}

// GenerateReceiptNumber builds a receipt number unique across the system:
// a restaurant-scoped prefix, the recording instant in unix milliseconds, and
// a random UUID fragment. The random fragment makes collisions for the same
// restaurant within one millisecond negligible.
func GenerateReceiptNumber(restaurantID kernel.UUID, at time.Time) string {
	prefix := strings.ReplaceAll(restaurantID.String(), "-", "")[:8]
	suffix := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")[:8]
	return fmt.Sprintf("RCP-%s-%d-%s", prefix, at.UnixMilli(), suffix)
}
