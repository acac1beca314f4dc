// Package actor models the acting party of every state-changing operation.
// Authentication itself lives outside this core; callers arrive with an already
// resolved role and permission set, and this package only answers whether that
// combination is allowed to perform a given operation.
package actor

import (
	"fmt"

	"fleetledger/internal/pkg/errs"
)

// Role represents the coarse privilege level of an acting party.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOperator is a regular back-office user. Operators manage orders within
	// the limits of their permission set but hold no elevated privilege.
	RoleOperator

	// RoleAdmin is the elevated role. Admins may assign zero delivery fees,
	// reverse settlements, and implicitly hold every permission.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleOperator: "Operator",
		RoleAdmin:    "Admin",
	}
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if r != RoleOperator && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// RoleFromString parses a role from its string representation.
// Returns an error for unknown names, including "Unknown" itself.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Operator":
		return RoleOperator, nil
	case "Admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Permission is a bitmask of fine-grained capabilities an actor may hold.
type Permission uint8

const (
	// PermManageOrders allows creating orders, transitioning their status,
	// and assigning or unassigning drivers.
	PermManageOrders Permission = 1 << iota

	// PermDeleteOrders allows permanent removal of orders, including bulk delete.
	PermDeleteOrders

	// PermManageLedger allows creating, editing and deleting manual daily entries
	// and running settlements.
	PermManageLedger
)

// PermissionFromString parses a single permission from its string representation.
func PermissionFromString(s string) (Permission, error) {
	switch s {
	case "ManageOrders":
		return PermManageOrders, nil
	case "DeleteOrders":
		return PermDeleteOrders, nil
	case "ManageLedger":
		return PermManageLedger, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"permission", fmt.Errorf("%q is not a valid permission", s))
	}
}

// Actor is an immutable value object combining a role and a permission set.
// It is constructed once per request from data supplied by the external
// authentication layer.
type Actor struct {
	role        Role
	permissions Permission
}

// NewActor creates an Actor with the given role and permission set.
// Returns an error if the role is invalid.
func NewActor(role Role, permissions Permission) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{role: role, permissions: permissions}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the elevated admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Can reports whether the actor holds the given permission.
// Admins implicitly hold every permission.
func (a Actor) Can(p Permission) bool {
	if a.IsAdmin() {
		return true
	}
	return a.permissions&p == p
}

// Validate checks that the actor was built with a valid role.
// A zero-value Actor fails validation.
func (a Actor) Validate() error {
	return a.role.Validate()
}
