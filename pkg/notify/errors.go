package notify

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCallbackTarget is returned when a callback target is not callable.
	ErrInvalidCallbackTarget = errors.New("notify: invalid callback target")

	// ErrInvalidRegistration is returned when Register receives conflicting or malformed arguments.
	ErrInvalidRegistration = errors.New("notify: invalid registration")

	// ErrCallbackInvocationFailed matches every *InvocationError.
	ErrCallbackInvocationFailed = errors.New("notify: callback invocation failed")

	// ErrNotificationKeyNotFound is returned by Notify for unknown keys when the
	// manager was created with WithStrictKeys.
	ErrNotificationKeyNotFound = errors.New("notify: notification key not found")

	// ErrConflictingSelectors is returned when Forget is given both ByID and ByTarget.
	ErrConflictingSelectors = errors.New("notify: id and target selectors are mutually exclusive")

	// ErrUncomparableTarget is returned when ByTarget receives a value without a
	// distinct identity: functions, maps, slices, plain values and pointers to
	// zero-size types. Register a pointer, or wrap functions with Func.
	ErrUncomparableTarget = errors.New("notify: target has no identity")
)

// InvocationError reports a callback that returned an error or panicked.
type InvocationError struct {
	Invoker *Invoker
	Err     error
}

// Error describes the failed callback and its cause.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("notify: callback %s failed: %v", e.Invoker, e.Err)
}

// Unwrap returns the error returned by the callback or a PanicError.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCallbackInvocationFailed.
func (e *InvocationError) Is(target error) bool {
	return target == ErrCallbackInvocationFailed
}

// PanicError wraps a value recovered from a panicking callback.
type PanicError struct {
	Value any
}

// Error formats the recovered value.
func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// IsInvocationError reports whether err wraps an *InvocationError.
func IsInvocationError(err error) bool {
	var e *InvocationError
	return errors.As(err, &e)
}

func registrationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRegistration, fmt.Sprintf(format, args...))
}
