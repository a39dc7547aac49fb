package notify

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
)

// Handler is a callable object that can be registered for notifications.
// The notification key is always passed first.
type Handler interface {
	Handle(ctx context.Context, key string, args Args) error
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(ctx context.Context, key string, args Args) error

func (f HandlerFunc) Handle(ctx context.Context, key string, args Args) error {
	return f(ctx, key, args)
}

// FuncHandler gives a function value a stable identity, so it can later be
// passed to ByTarget. Go function values cannot be compared, a *FuncHandler can.
type FuncHandler struct {
	fn   HandlerFunc
	name string
}

// Func wraps any callable function in a *FuncHandler.
// It panics if fn is not one of the function shapes accepted by NewInvoker.
func Func(fn any) *FuncHandler {
	call, ok := asHandlerFunc(fn)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrInvalidCallbackTarget, fn))
	}
	return &FuncHandler{fn: call, name: funcName(fn)}
}

func (h *FuncHandler) Handle(ctx context.Context, key string, args Args) error {
	return h.fn(ctx, key, args)
}

func (h *FuncHandler) String() string {
	return h.name
}

// Invoker pairs a callback target with arguments bound at construction time.
// An Invoker is immutable once created.
type Invoker struct {
	target any
	call   HandlerFunc
	bound  Args
}

// NewInvoker validates target and binds the given arguments to it.
//
// Accepted targets are values implementing Handler and functions of the form
//
//	func(context.Context, string, Args) error
//	func(string, Args) error
//	func(string, Args)
//
// Any other value yields ErrInvalidCallbackTarget.
func NewInvoker(target any, bound Args) (*Invoker, error) {
	call, ok := callableOf(target)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not callable", ErrInvalidCallbackTarget, target)
	}
	return &Invoker{
		target: target,
		call:   call,
		bound:  bound.clone(),
	}, nil
}

// MustInvoker is like NewInvoker but panics on error.
func MustInvoker(target any, bound Args) *Invoker {
	inv, err := NewInvoker(target, bound)
	if err != nil {
		panic(err)
	}
	return inv
}

// Target returns the wrapped callable exactly as it was passed to NewInvoker.
func (inv *Invoker) Target() any {
	return inv.target
}

// Bound returns a copy of the arguments bound at construction time.
func (inv *Invoker) Bound() Args {
	return inv.bound.clone()
}

// Invoke calls the target with key, then the bound positional values followed
// by call.Positional, then the bound named values overridden by call.Named.
// A returned error or a panic is reported as *InvocationError.
func (inv *Invoker) Invoke(ctx context.Context, key string, call Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InvocationError{Invoker: inv, Err: PanicError{Value: r}}
		}
	}()

	if cerr := inv.call(ctx, key, inv.bound.Merge(call)); cerr != nil {
		return &InvocationError{Invoker: inv, Err: cerr}
	}
	return nil
}

func (inv *Invoker) String() string {
	if inv == nil {
		return "<nil>"
	}
	switch t := inv.target.(type) {
	case fmt.Stringer:
		return t.String()
	case HandlerFunc, func(context.Context, string, Args) error, func(string, Args) error, func(string, Args):
		return funcName(t)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func callableOf(target any) (HandlerFunc, bool) {
	if target == nil {
		return nil, false
	}
	if fn, ok := asHandlerFunc(target); ok {
		return fn, true
	}
	if h, ok := target.(Handler); ok {
		if v := reflect.ValueOf(h); v.Kind() == reflect.Pointer && v.IsNil() {
			return nil, false
		}
		return h.Handle, true
	}
	return nil, false
}

func asHandlerFunc(target any) (HandlerFunc, bool) {
	switch fn := target.(type) {
	case HandlerFunc:
		return fn, fn != nil
	case func(context.Context, string, Args) error:
		return fn, fn != nil
	case func(string, Args) error:
		if fn == nil {
			return nil, false
		}
		return func(_ context.Context, key string, args Args) error {
			return fn(key, args)
		}, true
	case func(string, Args):
		if fn == nil {
			return nil, false
		}
		return func(_ context.Context, key string, args Args) error {
			fn(key, args)
			return nil
		}, true
	}
	return nil, false
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("%T", fn)
}
