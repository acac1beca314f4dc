package ledger

import (
	"errors"
	"time"

	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIsNotConstructed is returned when using an improperly
	// initialized Payment.
	ErrPaymentIsNotConstructed = errors.New(
		"Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentReferencesNothing is returned when a payment would reference
	// no orders and no manual daily entries.
	ErrPaymentReferencesNothing = errs.NewValueIsRequiredError(
		"payment must reference at least one order or manual daily entry")
)

// Payment is the immutable settlement record. It freezes only two facts:
// the amount actually collected from the driver, and the identifiers of the
// orders and manual daily entries whose debt it closed.
//
// Everything derivable (counts, fee totals, share breakdowns) is recomputed
// on read against the current store, so that deleting an order later never
// leaves phantom money in historical reports. The referenced id sets are
// fixed at creation and never mutated; the whole record disappears only via
// settlement reversal.
type Payment struct {
	id             kernel.UUID
	driverID       kernel.UUID
	createdAt      time.Time
	amount         decimal.Decimal
	orderIDs       []kernel.UUID
	manualDailyIDs []kernel.UUID
	guard          guard.ConstructorGuard
}

// NewPayment creates a settlement record for the given driver.
// The referenced sets must not both be empty; the amount must be non-negative.
// Order ids keep their given order so historical listings stay stable.
func NewPayment(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	orderIDs []kernel.UUID,
	manualDailyIDs []kernel.UUID,
) (*Payment, error) {
	return RestorePayment(id, driverID, amount, orderIDs, manualDailyIDs, time.Now().UTC())
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	orderIDs []kernel.UUID,
	manualDailyIDs []kernel.UUID,
	createdAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if len(orderIDs) == 0 && len(manualDailyIDs) == 0 {
		return nil, ErrPaymentReferencesNothing
	}
	for _, oid := range orderIDs {
		if err := oid.Validate(); err != nil {
			return nil, err
		}
	}
	for _, mid := range manualDailyIDs {
		if err := mid.Validate(); err != nil {
			return nil, err
		}
	}

	return &Payment{
		id:             id,
		driverID:       driverID,
		createdAt:      createdAt,
		amount:         amount,
		orderIDs:       append([]kernel.UUID(nil), orderIDs...),
		manualDailyIDs: append([]kernel.UUID(nil), manualDailyIDs...),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payment was properly constructed through a factory.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Driver returns the settled driver's ID.
func (p *Payment) Driver() kernel.UUID {
	return p.driverID
}

// CreatedAt returns the settlement timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// Amount returns the company share actually collected at settlement time.
// This is the only authoritative monetary figure on the record.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// OrderIDs returns a copy of the ordered set of order ids folded into this
// settlement.
func (p *Payment) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), p.orderIDs...)
}

// ManualDailyIDs returns a copy of the manual daily ids folded into this
// settlement.
func (p *Payment) ManualDailyIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), p.manualDailyIDs...)
}
