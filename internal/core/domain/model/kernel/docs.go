// Package kernel contains shared value objects used across all domain aggregates.
//
// The package currently provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business rules of their own; they exist so that
// aggregates share one validated representation of primitive concepts.
package kernel
