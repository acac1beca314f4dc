package order

import (
	"errors"
	"time"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/pkg/errs"
	"fleetledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrReconciledRequiresDelivered is returned when the reconciled flag is set on
// an order that is not in Delivered status.
var ErrReconciledRequiresDelivered = errs.NewValueIsInvalidErrorWithCause(
	"reconciled", errors.New("only delivered orders can be reconciled"))

// Order is the aggregate root for a delivery order. It owns the status state
// machine, the coupled driver/fee mutation rules, and the reconciliation flag
// consumed by the settlement ledger.
//
// Invariants maintained by this aggregate:
//   - Status transitions follow the transition table of the order's Type
//   - Pending → Delivered is never a legal edge, for either type
//   - An InTransit order always has a driver and a non-negative delivery fee
//   - Assigning a driver to a Pending order implicitly advances it to InTransit;
//     clearing the driver of an InTransit order implicitly reverts it to Pending
//   - reconciled == true implies status == Delivered
//   - Delivered and Cancelled are terminal
//
// All mutations are permission-gated through the actor value object, so no
// caller can bypass the coupling by writing status directly.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderType selects the transition table that applies to this order
	orderType Type

	// merchantID references the merchant the order belongs to (weak reference)
	merchantID kernel.UUID

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *kernel.UUID

	// deliveryFee is set together with the driver; nil while unassigned
	deliveryFee *decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// reconciled is true once the fee has been folded into a closed Payment
	reconciled bool

	// createdAt is the intake timestamp
	createdAt time.Time

	// deliveredAt is stamped on the transition to Delivered
	deliveredAt *time.Time

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the intake status of its type:
// Pending for standard orders, WaitingMerchant for shopping orders.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - orderType: TypeStandard or TypeShopping
//   - merchantID: owning merchant (must be a valid UUID)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, orderType Type, merchantID kernel.UUID) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		merchantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:         id,
		orderType:  orderType,
		merchantID: merchantID,
		status:     orderType.IntakeStatus(),
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. It re-checks the structural invariants so that corrupted rows are
// rejected at the boundary rather than propagating into the ledger.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	merchantID kernel.UUID,
	status Status,
	driverID *kernel.UUID,
	deliveryFee *decimal.Decimal,
	reconciled bool,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		merchantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryFee != nil && deliveryFee.IsNegative() {
		return nil, errs.NewValueIsInvalidError("deliveryFee")
	}
	if reconciled && status != StatusDelivered {
		return nil, ErrReconciledRequiresDelivered
	}
	if status == StatusInTransit && driverID == nil {
		return nil, errs.NewValueIsRequiredError("driverId")
	}

	return &Order{
		id:          id,
		orderType:   orderType,
		merchantID:  merchantID,
		driverID:    driverID,
		deliveryFee: deliveryFee,
		status:      status,
		reconciled:  reconciled,
		createdAt:   createdAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order's type.
func (o *Order) Type() Type {
	return o.orderType
}

// Merchant returns the owning merchant's ID.
func (o *Order) Merchant() kernel.UUID {
	return o.merchantID
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveryFee returns the delivery fee, or nil while no driver is assigned.
func (o *Order) DeliveryFee() *decimal.Decimal {
	return o.deliveryFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Reconciled reports whether the order's fee has been folded into a Payment.
func (o *Order) Reconciled() bool {
	return o.reconciled
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsActive reports whether the order is still in flight, i.e. not in a
// terminal status. Active orders block settlement for their driver.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// ChangeStatus moves the order to the target status if the edge exists in the
// transition table for the order's type.
//
// Rules enforced here:
//   - The actor needs the manage-orders permission
//   - The edge must be present in the type's transition table; in particular
//     Pending → Delivered always fails and terminal states permit no moves
//   - A move to InTransit requires a driver to already be assigned
//   - The InTransit → Pending move implicitly clears the driver and fee,
//     mirroring UnassignDriver
//   - The move to Delivered stamps deliveredAt
func (o *Order) ChangeStatus(target Status, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}
	if !by.Can(actor.PermManageOrders) {
		return errs.NewPermissionDeniedError("change order status")
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.orderType.CanTransition(o.status, target) {
		return errs.NewInvalidTransitionError(o.orderType.String(), o.status.String(), target.String())
	}
	if target == StatusInTransit && o.driverID == nil {
		return errs.NewValueIsRequiredError("driverId")
	}

	if o.status == StatusInTransit && target == StatusPending {
		o.driverID = nil
		o.deliveryFee = nil
	}

	o.status = target
	if target == StatusDelivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}

// AssignDriver sets the driver and delivery fee on the order.
//
// On a Pending order (or a Ready shopping order awaiting pickup) this is the
// coupled mutation: the order implicitly advances to InTransit. On an
// InTransit order it is a transfer: the driver is swapped without the order
// passing back through Pending. Any other status rejects the assignment.
//
// The fee must be non-negative; a zero fee is allowed only for admin actors.
func (o *Order) AssignDriver(driverID kernel.UUID, fee decimal.Decimal, by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}
	if !by.Can(actor.PermManageOrders) {
		return errs.NewPermissionDeniedError("assign driver")
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	if fee.IsZero() && !by.IsAdmin() {
		return errs.NewPermissionDeniedError("assign zero delivery fee")
	}

	switch {
	case o.status == StatusPending,
		o.status == StatusReady && o.orderType == TypeShopping:
		o.driverID = &driverID
		o.deliveryFee = &fee
		o.status = StatusInTransit
		return nil

	case o.status == StatusInTransit && o.driverID != nil:
		// Transfer: driver swap while the order stays InTransit.
		o.driverID = &driverID
		o.deliveryFee = &fee
		return nil

	default:
		return errs.NewInvalidTransitionError(
			o.orderType.String(), o.status.String(), StatusInTransit.String())
	}
}

// UnassignDriver clears the driver and fee from an InTransit order,
// implicitly reverting it to Pending.
func (o *Order) UnassignDriver(by actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}
	if !by.Can(actor.PermManageOrders) {
		return errs.NewPermissionDeniedError("unassign driver")
	}

	if o.status != StatusInTransit {
		return errs.NewInvalidTransitionError(
			o.orderType.String(), o.status.String(), StatusPending.String())
	}

	o.driverID = nil
	o.deliveryFee = nil
	o.status = StatusPending
	return nil
}

// MarkReconciled flags the order's fee as folded into a closed Payment.
// Only Delivered orders can be reconciled; calling it again is a no-op.
func (o *Order) MarkReconciled() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != StatusDelivered {
		return ErrReconciledRequiresDelivered
	}
	o.reconciled = true
	return nil
}

// ClearReconciled reopens the order's debt. Used by settlement reversal.
func (o *Order) ClearReconciled() {
	o.reconciled = false
}
