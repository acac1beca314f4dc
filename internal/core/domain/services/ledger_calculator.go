package services

import (
	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/ledger"
	"fleetledger/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OutstandingSummary is the result of the outstanding-debt derivation for one
// driver: the contributing items plus the monetary breakdown.
type OutstandingSummary struct {
	// Orders are the delivered, unreconciled orders included in the total.
	Orders []*order.Order

	// Dailies are the unreconciled manual daily entries included in the total.
	Dailies []*ledger.ManualDaily

	// OrdersCount counts individually tracked orders plus the orders covered
	// by manual daily entries.
	OrdersCount int

	// TotalFees is the sum of delivery fees actually collected.
	TotalFees decimal.Decimal

	// CompanyShare is the commission owed to the platform, clamped to TotalFees.
	CompanyShare decimal.Decimal

	// DriverShare is what remains with the driver after commission, adjusted
	// by the wallet opening balance.
	DriverShare decimal.Decimal
}

// IsEmpty reports whether nothing contributes to the summary.
func (s OutstandingSummary) IsEmpty() bool {
	return len(s.Orders) == 0 && len(s.Dailies) == 0
}

// OrderIDs returns the identifiers of the contributing orders.
func (s OutstandingSummary) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(s.Orders))
	for _, o := range s.Orders {
		ids = append(ids, o.ID())
	}
	return ids
}

// DailyIDs returns the identifiers of the contributing manual daily entries.
func (s OutstandingSummary) DailyIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(s.Dailies))
	for _, m := range s.Dailies {
		ids = append(ids, m.ID())
	}
	return ids
}

// LedgerCalculator is a domain service deriving a driver's debt position from
// explicit order and manual-daily values. It is a pure function over its
// inputs: no store access, no ambient state, so the arithmetic is unit-testable
// in isolation and identical on the settlement write path and every read path.
//
// Algorithm:
//  1. Sum the delivery fees of the eligible orders.
//  2. Apply the driver's commission configuration: count × rate for fixed
//     commission, fees × rate / 100 for percentage.
//  3. Merge manual daily entries: their order counts and fee totals extend the
//     sums, and their pre-computed amounts are added directly to the company
//     share (dailies carry a commission, not a rate to reapply).
//  4. Clamp the company share to the total fees collected.
//  5. Driver share = fees − company share + wallet opening balance.
type LedgerCalculator struct{}

// NewLedgerCalculator creates a new LedgerCalculator instance.
func NewLedgerCalculator() LedgerCalculator {
	return LedgerCalculator{}
}

// Outstanding derives the driver's current outstanding debt from candidate
// orders and manual daily entries.
//
// Eligibility is enforced here rather than trusted from the caller: an order
// contributes only if it is assigned to the driver, Delivered, and not yet
// reconciled; cancelled orders never contribute. A daily entry contributes
// only if it belongs to the driver and is not yet reconciled.
func (c LedgerCalculator) Outstanding(
	d *driver.Driver,
	orders []*order.Order,
	dailies []*ledger.ManualDaily,
) (OutstandingSummary, error) {
	return c.summarize(d, orders, dailies, false)
}

// SettledBreakdown recomputes the historical breakdown of an already settled
// set, used when displaying payment history. Unlike Outstanding it includes
// reconciled items, since the resolved set of a payment is by definition
// reconciled; cancelled and foreign orders are still dropped.
func (c LedgerCalculator) SettledBreakdown(
	d *driver.Driver,
	orders []*order.Order,
	dailies []*ledger.ManualDaily,
) (OutstandingSummary, error) {
	return c.summarize(d, orders, dailies, true)
}

func (c LedgerCalculator) summarize(
	d *driver.Driver,
	orders []*order.Order,
	dailies []*ledger.ManualDaily,
	includeReconciled bool,
) (OutstandingSummary, error) {
	if err := d.Validate(); err != nil {
		return OutstandingSummary{}, err
	}

	summary := OutstandingSummary{
		TotalFees:    decimal.Zero,
		CompanyShare: decimal.Zero,
		DriverShare:  decimal.Zero,
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return OutstandingSummary{}, err
		}
		if !c.eligible(d, o, includeReconciled) {
			continue
		}
		summary.Orders = append(summary.Orders, o)
		if fee := o.DeliveryFee(); fee != nil {
			summary.TotalFees = summary.TotalFees.Add(*fee)
		}
	}
	summary.OrdersCount = len(summary.Orders)
	summary.CompanyShare = d.CommissionFor(summary.OrdersCount, summary.TotalFees)

	for _, m := range dailies {
		if err := m.Validate(); err != nil {
			return OutstandingSummary{}, err
		}
		if !m.Driver().IsEqual(d.ID()) {
			continue
		}
		if m.Reconciled() && !includeReconciled {
			continue
		}
		summary.Dailies = append(summary.Dailies, m)
		summary.OrdersCount += m.OrdersCount()
		summary.TotalFees = summary.TotalFees.Add(m.TotalDeliveryFees())
		summary.CompanyShare = summary.CompanyShare.Add(m.Amount())
	}

	// The company can never take more than was actually collected.
	if summary.CompanyShare.GreaterThan(summary.TotalFees) {
		summary.CompanyShare = summary.TotalFees
	}

	summary.DriverShare = summary.TotalFees.
		Sub(summary.CompanyShare).
		Add(d.WalletOpeningBalance())

	return summary, nil
}

func (c LedgerCalculator) eligible(d *driver.Driver, o *order.Order, includeReconciled bool) bool {
	if o.Status() != order.StatusDelivered {
		return false
	}
	if o.Reconciled() && !includeReconciled {
		return false
	}
	assigned := o.Driver()
	return assigned != nil && assigned.IsEqual(d.ID())
}
