package order

import (
	"fmt"

	"fleetledger/internal/pkg/errs"
)

// Type discriminates the two order kinds and selects the transition table
// that applies to an order. Modelling the legal-edge set as an explicit table
// per type keeps it auditable and testable in isolation, instead of scattering
// conditional checks across mutation paths.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeStandard is a plain point-to-point delivery. Standard orders are
	// created in Pending and move to InTransit through driver assignment.
	TypeStandard

	// TypeShopping is an order the merchant first has to assemble. Shopping
	// orders are created in WaitingMerchant and pass through Preparing and
	// Ready before a driver picks them up.
	TypeShopping
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "unknown",
		TypeStandard: "standard",
		TypeShopping: "shopping",
	}
}

// TypeFromString parses an order type from its string representation.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "standard":
		return TypeStandard, nil
	case "shopping":
		return TypeShopping, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%q is not a valid order type", s))
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t != TypeStandard && t != TypeShopping {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the lowercase name of the order type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// IntakeStatus returns the status an order of this type is created in.
func (t Type) IntakeStatus() Status {
	if t == TypeShopping {
		return StatusWaitingMerchant
	}
	return StatusPending
}

// standardTransitions is the legal-edge set for standard orders.
// Pending ⇄ InTransit via driver assignment, InTransit → Delivered,
// Cancelled from any non-terminal state. No edges leave terminal states.
func standardTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusPending, StatusDelivered, StatusCancelled},
	}
}

// shoppingTransitions is the legal-edge set for shopping orders.
// All forward and backward moves among the working statuses are permitted,
// each working status can reach Delivered and Cancelled, with one forbidden
// jump: Pending → Delivered. No edges leave terminal states, no self-edges.
func shoppingTransitions() map[Status][]Status {
	working := []Status{
		StatusWaitingMerchant,
		StatusPreparing,
		StatusReady,
		StatusPending,
		StatusInTransit,
	}

	table := make(map[Status][]Status, len(working))
	for _, from := range working {
		targets := make([]Status, 0, len(working)+1)
		for _, to := range working {
			if to != from {
				targets = append(targets, to)
			}
		}
		if from != StatusPending {
			targets = append(targets, StatusDelivered)
		}
		targets = append(targets, StatusCancelled)
		table[from] = targets
	}
	return table
}

// transitions returns the transition table for the order type.
func (t Type) transitions() map[Status][]Status {
	if t == TypeShopping {
		return shoppingTransitions()
	}
	return standardTransitions()
}

// CanTransition reports whether the edge from → to exists in this type's
// transition table. The forbidden Pending → Delivered jump and every edge out
// of a terminal state are absent from both tables.
func (t Type) CanTransition(from, to Status) bool {
	for _, allowed := range t.transitions()[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
