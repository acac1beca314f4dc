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
	// ErrManualDailyIsNotConstructed is returned when using an improperly
	// initialized ManualDaily.
	ErrManualDailyIsNotConstructed = errors.New(
		"ManualDaily must be created via NewManualDaily or RestoreManualDaily")

	// ErrManualDailyIsReconciled is returned when attempting to mutate or delete
	// an entry that has already been folded into a settlement.
	ErrManualDailyIsReconciled = errs.NewValueIsInvalidErrorWithCause(
		"manualDaily", errors.New("reconciled entries are immutable history"))
)

// ManualDaily is a supplementary ledger entry: an administrator-entered
// lump sum covering a day of deliveries that was not tracked order-by-order.
// Its amount is a pre-computed commission, added directly to the company
// share rather than re-derived from a rate.
//
// Once reconciled, an entry is immutable history: it can no longer be edited
// or deleted, only reopened by reversing the settlement that closed it.
type ManualDaily struct {
	id                kernel.UUID
	driverID          kernel.UUID
	dayDate           time.Time
	ordersCount       int
	totalDeliveryFees decimal.Decimal
	amount            decimal.Decimal
	reconciled        bool
	guard             guard.ConstructorGuard
}

// NewManualDaily creates a new unreconciled ManualDaily entry.
// ordersCount must be non-negative; fees and amount must be non-negative.
func NewManualDaily(
	id kernel.UUID,
	driverID kernel.UUID,
	dayDate time.Time,
	ordersCount int,
	totalDeliveryFees decimal.Decimal,
	amount decimal.Decimal,
) (*ManualDaily, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		validateFigures(ordersCount, totalDeliveryFees, amount),
	); err != nil {
		return nil, err
	}
	if dayDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("dayDate")
	}

	return &ManualDaily{
		id:                id,
		driverID:          driverID,
		dayDate:           dayDate,
		ordersCount:       ordersCount,
		totalDeliveryFees: totalDeliveryFees,
		amount:            amount,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreManualDaily reconstructs a ManualDaily entry from persistence.
func RestoreManualDaily(
	id kernel.UUID,
	driverID kernel.UUID,
	dayDate time.Time,
	ordersCount int,
	totalDeliveryFees decimal.Decimal,
	amount decimal.Decimal,
	reconciled bool,
) (*ManualDaily, error) {
	entry, err := NewManualDaily(id, driverID, dayDate, ordersCount, totalDeliveryFees, amount)
	if err != nil {
		return nil, err
	}
	entry.reconciled = reconciled
	return entry, nil
}

func validateFigures(ordersCount int, totalDeliveryFees, amount decimal.Decimal) error {
	if ordersCount < 0 {
		return errs.NewValueIsInvalidError("ordersCount")
	}
	if totalDeliveryFees.IsNegative() {
		return errs.NewValueIsInvalidError("totalDeliveryFees")
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	return nil
}

// Validate ensures the entry was properly constructed through a factory.
func (m *ManualDaily) Validate() error {
	if m == nil {
		return ErrManualDailyIsNotConstructed
	}
	return m.guard.Validate(ErrManualDailyIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (m *ManualDaily) ID() kernel.UUID {
	return m.id
}

// Driver returns the driver the entry belongs to.
func (m *ManualDaily) Driver() kernel.UUID {
	return m.driverID
}

// DayDate returns the day the entry covers.
func (m *ManualDaily) DayDate() time.Time {
	return m.dayDate
}

// OrdersCount returns the number of orders the lump sum covers.
func (m *ManualDaily) OrdersCount() int {
	return m.ordersCount
}

// TotalDeliveryFees returns the fees collected across the covered orders.
func (m *ManualDaily) TotalDeliveryFees() decimal.Decimal {
	return m.totalDeliveryFees
}

// Amount returns the pre-computed commission owed for this entry.
func (m *ManualDaily) Amount() decimal.Decimal {
	return m.amount
}

// Reconciled reports whether the entry has been folded into a Payment.
func (m *ManualDaily) Reconciled() bool {
	return m.reconciled
}

// Update replaces the entry's figures. Reconciled entries are immutable
// and reject the update.
func (m *ManualDaily) Update(ordersCount int, totalDeliveryFees, amount decimal.Decimal) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.reconciled {
		return ErrManualDailyIsReconciled
	}
	if err := validateFigures(ordersCount, totalDeliveryFees, amount); err != nil {
		return err
	}

	m.ordersCount = ordersCount
	m.totalDeliveryFees = totalDeliveryFees
	m.amount = amount
	return nil
}

// CanDelete reports whether the entry may be removed. Reconciled entries
// are kept as history and return ErrManualDailyIsReconciled.
func (m *ManualDaily) CanDelete() error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.reconciled {
		return ErrManualDailyIsReconciled
	}
	return nil
}

// MarkReconciled flags the entry as folded into a closed Payment.
func (m *ManualDaily) MarkReconciled() {
	m.reconciled = true
}

// ClearReconciled reopens the entry's debt. Used by settlement reversal.
func (m *ManualDaily) ClearReconciled() {
	m.reconciled = false
}
