package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NotificationKey records the notification key under the key "notification_key".
func NotificationKey(key string) slog.Attr {
	return slog.String("notification_key", key)
}

// Priority records a callback priority under the key "priority".
func Priority(p float64) slog.Attr {
	return slog.Float64("priority", p)
}

// RegistrationID records a registration id under the key "registration_id".
func RegistrationID(id uint64) slog.Attr {
	return slog.Uint64("registration_id", id)
}

// Callback records the textual form of a callback under the key "callback".
func Callback(name string) slog.Attr {
	return slog.String("callback", name)
}

// DispatchID records the dispatch correlation id under the key "dispatch_id".
// If id is empty, it returns an empty Attr.
func DispatchID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("dispatch_id", id)
}

// Manager records the notification manager name under the key "manager".
// If name is empty, it returns an empty Attr.
func Manager(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("manager", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
