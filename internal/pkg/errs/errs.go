package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrNothingToSettle        = errors.New("nothing to settle")
	ErrActiveOrdersPresent    = errors.New("active orders present")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrConflict               = errors.New("concurrent update conflict")
	ErrConflictRetryExhausted = errors.New("conflict retries exhausted")
)

// sanitize removes newlines from values before they are interpolated into
// error messages, so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidTransitionError indicates that a requested order status transition is not
// present in the transition table for the order's type.
type InvalidTransitionError struct {
	OrderType string
	From      string
	To        string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(orderType, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{OrderType: orderType, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s order cannot move from %s to %s",
		ErrInvalidTransition, e.OrderType, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PermissionDeniedError indicates that the acting party lacks the role or
// permission required for an operation.
type PermissionDeniedError struct {
	Action string
	Cause  error
}

// NewPermissionDeniedError creates a PermissionDeniedError for the named action.
func NewPermissionDeniedError(action string) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action}
}

// NewPermissionDeniedErrorWithCause creates a PermissionDeniedError wrapping an underlying cause.
func NewPermissionDeniedErrorWithCause(action string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPermissionDenied, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// NothingToSettleError indicates that a driver has no outstanding orders or
// manual daily entries to fold into a settlement.
type NothingToSettleError struct {
	DriverID string
}

// NewNothingToSettleError creates a NothingToSettleError for the given driver.
func NewNothingToSettleError(driverID string) *NothingToSettleError {
	return &NothingToSettleError{DriverID: driverID}
}

func (e *NothingToSettleError) Error() string {
	return fmt.Sprintf("%s: driver %s has no outstanding debt", ErrNothingToSettle, e.DriverID)
}

func (e *NothingToSettleError) Unwrap() error {
	return ErrNothingToSettle
}

// ActiveOrdersPresentError indicates that settlement is blocked because the
// driver still has deliveries in flight.
type ActiveOrdersPresentError struct {
	DriverID string
	Count    int64
}

// NewActiveOrdersPresentError creates an ActiveOrdersPresentError for the given driver.
func NewActiveOrdersPresentError(driverID string, count int64) *ActiveOrdersPresentError {
	return &ActiveOrdersPresentError{DriverID: driverID, Count: count}
}

func (e *ActiveOrdersPresentError) Error() string {
	return fmt.Sprintf("%s: driver %s has %d active orders", ErrActiveOrdersPresent, e.DriverID, e.Count)
}

func (e *ActiveOrdersPresentError) Unwrap() error {
	return ErrActiveOrdersPresent
}

// StoreUnavailableError indicates a transient infrastructure failure.
// Operations failing with this error are safe to retry.
type StoreUnavailableError struct {
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError wrapping an underlying cause.
func NewStoreUnavailableError(cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrStoreUnavailable, e.Cause)
	}
	return ErrStoreUnavailable.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

// ConflictError indicates that a transaction lost a serialization or locking
// race with a concurrent one. Callers may retry the whole transaction.
type ConflictError struct {
	Cause error
}

// NewConflictError creates a ConflictError wrapping the database error that
// signalled the conflict.
func NewConflictError(cause error) *ConflictError {
	return &ConflictError{Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrConflict, e.Cause)
	}
	return ErrConflict.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ConflictRetryExhaustedError indicates that an optimistic-concurrency or
// serialization conflict could not be resolved within the bounded retry budget.
type ConflictRetryExhaustedError struct {
	Attempts int
	Cause    error
}

// NewConflictRetryExhaustedError creates a ConflictRetryExhaustedError after the
// given number of failed attempts.
func NewConflictRetryExhaustedError(attempts int, cause error) *ConflictRetryExhaustedError {
	return &ConflictRetryExhaustedError{Attempts: attempts, Cause: cause}
}

func (e *ConflictRetryExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: after %d attempts (cause: %s)", ErrConflictRetryExhausted, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("%s: after %d attempts", ErrConflictRetryExhausted, e.Attempts)
}

func (e *ConflictRetryExhaustedError) Unwrap() error {
	return ErrConflictRetryExhausted
}
