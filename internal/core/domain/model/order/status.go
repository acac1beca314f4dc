package order

import (
	"fmt"

	"fleetledger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// Which transitions between statuses are legal is decided by the order's Type;
// see the transition tables in order_type.go.
//
// Standard orders:
//
//	Pending ⇄ InTransit ──> Delivered
//	(Cancelled reachable from any non-terminal state)
//
// Shopping orders:
//
//	WaitingMerchant ⇄ Preparing ⇄ Ready ⇄ Pending ⇄ InTransit ──> Delivered
//	(all forward and backward moves permitted, except Pending ──> Delivered;
//	Cancelled reachable from any non-terminal state)
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the awaiting-driver state. Standard orders start here;
	// shopping orders reach it once the merchant has prepared the goods.
	StatusPending

	// StatusWaitingMerchant is the initial state of a shopping order,
	// before the merchant confirms they will fulfil it.
	StatusWaitingMerchant

	// StatusPreparing indicates the merchant is assembling a shopping order.
	StatusPreparing

	// StatusReady indicates a shopping order is packed and awaiting a driver.
	StatusReady

	// StatusInTransit indicates a driver has been assigned and the order is
	// on its way. An order in this status always has a driver and a fee.
	StatusInTransit

	// StatusDelivered is the successful terminal state. Only delivered orders
	// contribute to driver debt and only they can be reconciled.
	StatusDelivered

	// StatusCancelled is the unsuccessful terminal state. Cancelled orders
	// never contribute to driver debt, reconciled or not.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPending:         "Pending",
		StatusWaitingMerchant: "WaitingMerchant",
		StatusPreparing:       "Preparing",
		StatusReady:           "Ready",
		StatusInTransit:       "InTransit",
		StatusDelivered:       "Delivered",
		StatusCancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:         "Pending",
		StatusWaitingMerchant: "WaitingMerchant",
		StatusPreparing:       "Preparing",
		StatusReady:           "Ready",
		StatusInTransit:       "InTransit",
		StatusDelivered:       "Delivered",
		StatusCancelled:       "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
