package notify

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// priorityTable maps a priority to the callbacks registered at it.
type priorityTable map[float64]map[ID]*Invoker

// Manager keeps callbacks registered per notification key and invokes them
// in priority order when a notification is posted.
type Manager struct {
	name     string
	logger   *slog.Logger
	observer Observer
	strict   bool

	mu       sync.RWMutex
	registry map[string]priorityTable
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		logger:   slog.Default(),
		observer: noopObserver{},
		registry: make(map[string]priorityTable),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the display label given at construction.
func (m *Manager) Name() string {
	return m.name
}

// Keys returns the currently registered notification keys in sorted order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.registry))
}

// Len returns the number of live registrations.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, table := range m.registry {
		for _, ids := range table {
			n += len(ids)
		}
	}
	return n
}

// Register adds target as a callback for key and returns its registration id.
//
// target is either a pre-built *Invoker or anything NewInvoker accepts. A
// pre-built *Invoker already carries its arguments, so combining it with
// WithArgs or WithKwargs fails with ErrInvalidRegistration.
func (m *Manager) Register(key string, target any, opts ...RegisterOption) (ID, error) {
	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var inv *Invoker
	if pre, ok := target.(*Invoker); ok {
		if pre == nil {
			return 0, registrationError("callback must be callable")
		}
		if cfg.hasBindings() {
			return 0, registrationError("cannot specify both Invoker and bound arguments")
		}
		inv = pre
	} else {
		var err error
		inv, err = NewInvoker(target, Args{Positional: cfg.args, Named: cfg.kwargs})
		if err != nil {
			return 0, fmt.Errorf("%w: callback must be callable: %w", ErrInvalidRegistration, err)
		}
	}

	if cfg.priorityErr != nil {
		return 0, cfg.priorityErr
	}
	priority, err := ParsePriority(cfg.priority)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	table, ok := m.registry[key]
	if !ok {
		table = make(priorityTable)
		m.registry[key] = table
	}
	ids, ok := table[priority]
	if !ok {
		ids = make(map[ID]*Invoker)
		table[priority] = ids
	}
	id := nextID()
	ids[id] = inv
	m.observer.Registered(key)
	m.mu.Unlock()

	return id, nil
}

// MustRegister is like Register but panics on error.
func (m *Manager) MustRegister(key string, target any, opts ...RegisterOption) ID {
	id, err := m.Register(key, target, opts...)
	if err != nil {
		panic(err)
	}
	return id
}

type dispatchEntry struct {
	priority float64
	id       ID
	inv      *Invoker
}

// Notify invokes every callback registered under key, highest priority first,
// passing args after the key. Callbacks sharing a priority run in no
// particular order.
//
// A failing callback is logged and dispatch moves on to the next one, so
// Notify never reports callback failures. Unknown keys are ignored unless the
// manager was built with WithStrictKeys.
func (m *Manager) Notify(ctx context.Context, key string, args Args) error {
	entries, ok := m.snapshot(key)
	if !ok {
		if m.strict {
			return fmt.Errorf("%w: %q", ErrNotificationKeyNotFound, key)
		}
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	dispatch := Dispatch{ID: uuid.New().String(), Key: key, Manager: m.name}
	ctx = withDispatch(ctx, dispatch)

	failed := 0
	for _, e := range entries {
		err := e.inv.Invoke(ctx, key, args)
		if err == nil {
			continue
		}
		failed++

		var ierr *InvocationError
		if !errors.As(err, &ierr) {
			ierr = &InvocationError{Invoker: e.inv, Err: err}
		}
		m.logger.LogAttrs(ctx, slog.LevelWarn, "Exception raised while invoking notification callback",
			logger.Manager(m.name),
			logger.NotificationKey(key),
			logger.Priority(e.priority),
			logger.RegistrationID(uint64(e.id)),
			logger.Callback(ierr.Invoker.String()),
			logger.DispatchID(dispatch.ID),
			logger.Error(ierr.Err),
		)
	}

	m.observer.Dispatched(key, len(entries), failed)
	return nil
}

// snapshot copies the callbacks of key in dispatch order, so callbacks can
// re-enter the manager while Notify is running.
func (m *Manager) snapshot(key string) ([]dispatchEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	table, ok := m.registry[key]
	if !ok {
		return nil, false
	}

	var entries []dispatchEntry
	priorities := slices.SortedFunc(maps.Keys(table), func(a, b float64) int {
		return cmp.Compare(b, a)
	})
	for _, priority := range priorities {
		ids := slices.Sorted(maps.Keys(table[priority]))
		for _, id := range ids {
			entries = append(entries, dispatchEntry{priority: priority, id: id, inv: table[priority][id]})
		}
	}
	return entries, true
}

// Forget removes the registrations matching every given selector and prunes
// priorities and keys left without callbacks. Forget() removes everything.
//
// Giving both ByID and ByTarget is a programming error reported as
// ErrConflictingSelectors; nothing is removed in that case.
func (m *Manager) Forget(opts ...ForgetOption) error {
	cfg := forgetConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id != nil && cfg.byTarget {
		return ErrConflictingSelectors
	}
	if cfg.byTarget && !hasIdentity(cfg.target) {
		return fmt.Errorf("%w: %T (register a pointer, or wrap functions with Func)", ErrUncomparableTarget, cfg.target)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	keys := slices.Collect(maps.Keys(m.registry))
	if cfg.key != nil {
		keys = []string{*cfg.key}
	}
	for _, key := range keys {
		if n := m.forgetKey(key, cfg); n > 0 {
			m.observer.Forgotten(key, n)
		}
	}
	return nil
}

// forgetKey must be called with m.mu held.
func (m *Manager) forgetKey(key string, cfg forgetConfig) int {
	table, ok := m.registry[key]
	if !ok {
		return 0
	}

	priorities := slices.Collect(maps.Keys(table))
	if cfg.priority != nil {
		priorities = []float64{*cfg.priority}
	}

	n := 0
	for _, priority := range priorities {
		ids, ok := table[priority]
		if !ok {
			continue
		}
		switch {
		case cfg.id != nil:
			if _, ok := ids[*cfg.id]; ok {
				delete(ids, *cfg.id)
				n++
			}
		case cfg.byTarget:
			for id, inv := range ids {
				if sameTarget(inv.Target(), cfg.target) {
					delete(ids, id)
					n++
				}
			}
		default:
			n += len(ids)
			clear(ids)
		}
		if len(ids) == 0 {
			delete(table, priority)
		}
	}

	if len(table) == 0 {
		delete(m.registry, key)
	}
	return n
}

// Reset discards every registration immediately.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.registry = make(map[string]priorityTable)
	m.observer.Cleared()
	m.mu.Unlock()
}

// hasIdentity reports whether v can be told apart from every other value that
// merely looks the same: a non-nil channel or a non-nil pointer to a value of
// non-zero size. Pointers to zero-size values may all share one address.
func hasIdentity(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		return !rv.IsNil() && rv.Type().Elem().Size() > 0
	case reflect.Chan:
		return !rv.IsNil()
	default:
		return false
	}
}

// sameTarget compares a registered target with one accepted by hasIdentity.
func sameTarget(registered, target any) bool {
	if reflect.TypeOf(registered) != reflect.TypeOf(target) {
		return false
	}
	return registered == target
}
