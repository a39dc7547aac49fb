package notifymetrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notify"
	"github.com/dmitrymomot/notifykit/pkg/notifymetrics"
)

func TestObserver(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := notifymetrics.New(reg, notifymetrics.WithNamespace("test"))
	require.NoError(t, err)

	m := notify.New(notify.WithObserver(obs))
	ok := func(string, notify.Args) {}
	fail := func(string, notify.Args) error { return errors.New("nope") }

	id := m.MustRegister("E", ok)
	m.MustRegister("E", fail)
	m.MustRegister("F", ok)

	ctx := context.Background()
	require.NoError(t, m.Notify(ctx, "E", notify.Args{}))
	require.NoError(t, m.Notify(ctx, "E", notify.Args{}))
	require.NoError(t, m.Notify(ctx, "unknown", notify.Args{}))
	require.NoError(t, m.Forget(notify.ByID(id)))

	expected := `
# HELP test_notify_dispatches_total Notify calls for keys with registrations.
# TYPE test_notify_dispatches_total counter
test_notify_dispatches_total{key="E"} 2
# HELP test_notify_forgotten_total Callbacks removed by Forget.
# TYPE test_notify_forgotten_total counter
test_notify_forgotten_total{key="E"} 1
# HELP test_notify_invocation_failures_total Callback invocations that failed.
# TYPE test_notify_invocation_failures_total counter
test_notify_invocation_failures_total{key="E"} 2
# HELP test_notify_invocations_total Callback invocations.
# TYPE test_notify_invocations_total counter
test_notify_invocations_total{key="E"} 4
# HELP test_notify_registered_total Callbacks registered.
# TYPE test_notify_registered_total counter
test_notify_registered_total{key="E"} 2
test_notify_registered_total{key="F"} 1
# HELP test_notify_registrations Number of live callback registrations.
# TYPE test_notify_registrations gauge
test_notify_registrations{key="E"} 1
test_notify_registrations{key="F"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_notify_dispatches_total",
		"test_notify_forgotten_total",
		"test_notify_invocation_failures_total",
		"test_notify_invocations_total",
		"test_notify_registered_total",
		"test_notify_registrations",
	)
	require.NoError(t, err)

	m.Reset()
	count, err := testutil.GatherAndCount(reg, "test_notify_registrations")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := notifymetrics.New(reg)
	require.NoError(t, err)

	_, err = notifymetrics.New(reg)
	assert.Error(t, err)
	assert.Panics(t, func() { notifymetrics.MustNew(reg) })
}

func TestConstLabels(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs := notifymetrics.MustNew(reg,
		notifymetrics.WithSubsystem("bus"),
		notifymetrics.WithConstLabels(prometheus.Labels{"manager": "shared"}),
	)
	obs.Registered("E")

	count, err := testutil.GatherAndCount(reg, "bus_registered_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
