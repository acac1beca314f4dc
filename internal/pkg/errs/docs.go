// Package errs provides standardized error types for the fleetledger application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic validation errors plus the domain error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: field validation
//   - ObjectNotFoundError: unknown identifiers
//   - InvalidTransitionError: illegal order status edges
//   - PermissionDeniedError: actor lacks a required role or permission
//   - NothingToSettleError / ActiveOrdersPresentError: settlement preconditions
//   - StoreUnavailableError: transient infrastructure failures, safe to retry
//   - ConflictRetryExhaustedError: concurrency conflicts that survived bounded retries
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Validation and permission errors are returned synchronously and are never
// retried automatically; StoreUnavailable and conflict errors are retried a
// small bounded number of times before ConflictRetryExhausted surfaces.
package errs
