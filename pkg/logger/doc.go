// Package logger builds log/slog loggers for notifykit and provides attribute
// helpers that keep field names consistent across packages.
//
// New returns a JSON logger at info level writing to stdout. Options change
// that: WithEnvironment applies a development, staging or production preset,
// while WithLevel, WithFormat and WithOutput tune the handler directly. WithAttr
// adds static attributes, and WithContextExtractors adds attributes taken from
// the context of each record.
//
// # Attributes
//
// NotificationKey, Priority, RegistrationID, Callback, DispatchID and Manager
// describe notification dispatch. Error, DispatchID and Manager return an
// empty Attr for zero input, so they can be passed unconditionally:
//
//	log.LogAttrs(ctx, slog.LevelWarn, "callback failed",
//	    logger.NotificationKey(key),
//	    logger.Error(err),
//	)
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("NOTIFY_ENV"), "billing"),
//	    logger.WithContextExtractors(notify.DispatchExtractor),
//	)
//	m := notify.New(notify.WithLogger(log))
package logger
