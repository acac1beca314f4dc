// Package order provides the Order aggregate root and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning status, driver assignment and the
//     reconciliation flag consumed by the settlement ledger
//   - Status: the lifecycle states shared by both order kinds
//   - Type: the standard/shopping discriminant selecting one of two explicit
//     transition tables
//
// Key business rules:
//   - Standard orders: Pending ⇄ InTransit → Delivered, driven by assignment
//   - Shopping orders: free movement among WaitingMerchant, Preparing, Ready,
//     Pending and InTransit, then Delivered
//   - Pending → Delivered is forbidden for both types
//   - Assigning a driver with a fee to a Pending order implicitly advances it
//     to InTransit; clearing the driver reverts it to Pending. The coupling
//     lives in the aggregate so no direct status write can bypass it
//   - reconciled == true implies status == Delivered
//
// The package follows Domain-Driven Design principles: private fields, factory
// constructors, and permission-gated mutations keep every order in a valid state.
package order
