package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notify"
)

type call struct {
	key  string
	args notify.Args
}

type recorder struct {
	calls []call
}

func (r *recorder) Handle(_ context.Context, key string, args notify.Args) error {
	r.calls = append(r.calls, call{key: key, args: args})
	return nil
}

func TestNewInvoker(t *testing.T) {
	t.Parallel()

	t.Run("accepts handler and function shapes", func(t *testing.T) {
		t.Parallel()

		targets := []any{
			&recorder{},
			notify.HandlerFunc(func(context.Context, string, notify.Args) error { return nil }),
			func(context.Context, string, notify.Args) error { return nil },
			func(string, notify.Args) error { return nil },
			func(string, notify.Args) {},
			notify.Func(func(string, notify.Args) {}),
		}
		for _, target := range targets {
			inv, err := notify.NewInvoker(target, notify.Args{})
			require.NoError(t, err, "%T", target)
			assert.NotNil(t, inv)
		}
	})

	t.Run("rejects non-callable targets", func(t *testing.T) {
		t.Parallel()

		var nilRecorder *recorder
		var nilFunc func(string, notify.Args)
		targets := []any{nil, 1, "this", struct{}{}, func() {}, nilRecorder, nilFunc}
		for _, target := range targets {
			inv, err := notify.NewInvoker(target, notify.Args{})
			require.Error(t, err, "%T", target)
			assert.ErrorIs(t, err, notify.ErrInvalidCallbackTarget)
			assert.Nil(t, inv)
		}
	})

	t.Run("must invoker panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { notify.MustInvoker(42, notify.Args{}) })
	})
}

func TestInvokerInvoke(t *testing.T) {
	t.Parallel()

	t.Run("key only", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		inv := notify.MustInvoker(r, notify.Args{})
		require.NoError(t, inv.Invoke(context.Background(), "<<Test>>", notify.Args{}))

		require.Len(t, r.calls, 1)
		assert.Equal(t, "<<Test>>", r.calls[0].key)
		assert.Empty(t, r.calls[0].args.Positional)
		assert.Empty(t, r.calls[0].args.Named)
	})

	t.Run("merges bound and call arguments", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		inv := notify.MustInvoker(r, notify.Args{
			Positional: []any{"a", "b"},
			Named:      map[string]any{"x": 1, "y": 2},
		})
		err := inv.Invoke(context.Background(), "<<Test>>", notify.Args{
			Positional: []any{"c", "d"},
			Named:      map[string]any{"y": 3, "z": 4},
		})
		require.NoError(t, err)

		require.Len(t, r.calls, 1)
		assert.Equal(t, "<<Test>>", r.calls[0].key)
		assert.Equal(t, []any{"a", "b", "c", "d"}, r.calls[0].args.Positional)
		assert.Equal(t, map[string]any{"x": 1, "y": 3, "z": 4}, r.calls[0].args.Named)
	})

	t.Run("bound arguments are isolated from caller mutation", func(t *testing.T) {
		t.Parallel()

		positional := []any{1}
		named := map[string]any{"x": 1}
		r := &recorder{}
		inv := notify.MustInvoker(r, notify.Args{Positional: positional, Named: named})

		positional[0] = 100
		named["x"] = 100
		require.NoError(t, inv.Invoke(context.Background(), "k", notify.Args{}))

		assert.Equal(t, []any{1}, r.calls[0].args.Positional)
		assert.Equal(t, map[string]any{"x": 1}, r.calls[0].args.Named)
		assert.Equal(t, []any{1}, inv.Bound().Positional)
	})

	t.Run("callback error becomes invocation error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("just die already")
		inv := notify.MustInvoker(func(string, notify.Args) error { return cause }, notify.Args{})

		err := inv.Invoke(context.Background(), "k", notify.Args{})
		require.Error(t, err)
		assert.ErrorIs(t, err, notify.ErrCallbackInvocationFailed)
		assert.ErrorIs(t, err, cause)
		assert.True(t, notify.IsInvocationError(err))

		var ierr *notify.InvocationError
		require.ErrorAs(t, err, &ierr)
		assert.Same(t, inv, ierr.Invoker)
	})

	t.Run("callback panic becomes invocation error", func(t *testing.T) {
		t.Parallel()

		inv := notify.MustInvoker(func(string, notify.Args) { panic("boom") }, notify.Args{})

		err := inv.Invoke(context.Background(), "k", notify.Args{})
		require.Error(t, err)
		assert.ErrorIs(t, err, notify.ErrCallbackInvocationFailed)

		var perr notify.PanicError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "boom", perr.Value)
	})
}

func TestInvokerTarget(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	inv := notify.MustInvoker(r, notify.Args{})
	assert.Same(t, r, inv.Target())

	h := notify.Func(func(string, notify.Args) {})
	inv = notify.MustInvoker(h, notify.Args{})
	assert.Same(t, h, inv.Target())
	assert.Contains(t, inv.String(), "TestInvokerTarget")
}

func TestFuncPanicsOnInvalidTarget(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { notify.Func(42) })
	assert.Panics(t, func() { notify.Func(&recorder{}) })
}

func TestArgsMerge(t *testing.T) {
	t.Parallel()

	bound := notify.Args{Positional: []any{"a"}, Named: map[string]any{"x": 1}}
	call := notify.Args{Positional: []any{"b"}, Named: map[string]any{"x": 2}}

	merged := bound.Merge(call)
	assert.Equal(t, []any{"a", "b"}, merged.Positional)
	assert.Equal(t, map[string]any{"x": 2}, merged.Named)

	// inputs untouched
	assert.Equal(t, []any{"a"}, bound.Positional)
	assert.Equal(t, 1, bound.Named["x"])

	assert.Equal(t, "a", merged.Arg(0))
	assert.Nil(t, merged.Arg(5))
	v, ok := merged.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, notify.Args{}.IsZero())
	assert.False(t, notify.Positional(1).IsZero())
	assert.False(t, notify.Named(map[string]any{"a": 1}).IsZero())
}
