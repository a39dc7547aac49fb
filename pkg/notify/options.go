package notify

import (
	"log/slog"
	"maps"
)

// Option configures a Manager.
type Option func(*Manager)

// WithName sets the display label of the manager.
func WithName(name string) Option {
	return func(m *Manager) {
		m.name = name
	}
}

// WithLogger sets the logger used to report failed callbacks.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver attaches an Observer notified about registry activity.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithStrictKeys makes Notify return ErrNotificationKeyNotFound for keys
// without registrations instead of silently doing nothing.
func WithStrictKeys() Option {
	return func(m *Manager) {
		m.strict = true
	}
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	priority    float64
	priorityErr error
	args        []any
	kwargs      map[string]any
}

func (c *registerConfig) hasBindings() bool {
	return len(c.args) > 0 || len(c.kwargs) > 0
}

// WithPriority sets the callback priority. Higher priorities run first.
func WithPriority(p float64) RegisterOption {
	return func(c *registerConfig) {
		c.priority = p
		c.priorityErr = nil
	}
}

// WithPriorityValue coerces v with ParsePriority. A value that is not a
// number makes Register fail with ErrInvalidRegistration.
func WithPriorityValue(v any) RegisterOption {
	return func(c *registerConfig) {
		c.priority, c.priorityErr = ParsePriority(v)
	}
}

// WithArgs binds positional values passed after the key on every invocation.
func WithArgs(args ...any) RegisterOption {
	return func(c *registerConfig) {
		c.args = append(c.args, args...)
	}
}

// WithKwarg binds a single named value.
func WithKwarg(name string, value any) RegisterOption {
	return func(c *registerConfig) {
		if c.kwargs == nil {
			c.kwargs = make(map[string]any)
		}
		c.kwargs[name] = value
	}
}

// WithKwargs binds named values. Later options win on name conflicts.
func WithKwargs(kwargs map[string]any) RegisterOption {
	return func(c *registerConfig) {
		if len(kwargs) == 0 {
			return
		}
		if c.kwargs == nil {
			c.kwargs = make(map[string]any, len(kwargs))
		}
		maps.Copy(c.kwargs, kwargs)
	}
}

// ForgetOption narrows the registrations removed by Forget.
// Omitted selectors match everything.
type ForgetOption func(*forgetConfig)

type forgetConfig struct {
	key      *string
	priority *float64
	id       *ID
	target   any
	byTarget bool
}

// ForKey limits Forget to a single notification key.
func ForKey(key string) ForgetOption {
	return func(c *forgetConfig) {
		c.key = &key
	}
}

// AtPriority limits Forget to a single priority.
func AtPriority(p float64) ForgetOption {
	return func(c *forgetConfig) {
		c.priority = &p
	}
}

// ByID removes only the registration with the given id.
func ByID(id ID) ForgetOption {
	return func(c *forgetConfig) {
		c.id = &id
	}
}

// ByTarget removes every registration whose wrapped callable is target.
// Matching uses identity: pointer targets match only the same pointer.
func ByTarget(target any) ForgetOption {
	return func(c *forgetConfig) {
		c.target = target
		c.byTarget = true
	}
}
