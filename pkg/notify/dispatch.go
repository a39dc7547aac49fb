package notify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Dispatch describes the Notify call a callback is running in.
type Dispatch struct {
	ID      string
	Key     string
	Manager string
}

type dispatchKey struct{}

func withDispatch(ctx context.Context, d Dispatch) context.Context {
	return context.WithValue(ctx, dispatchKey{}, d)
}

// DispatchFromContext returns the dispatch a callback was invoked from.
func DispatchFromContext(ctx context.Context) (Dispatch, bool) {
	if ctx == nil {
		return Dispatch{}, false
	}
	d, ok := ctx.Value(dispatchKey{}).(Dispatch)
	return d, ok
}

// DispatchExtractor is a logger.ContextExtractor adding the current dispatch
// to log records written from inside callbacks:
//
//	log := logger.New(logger.WithContextExtractors(notify.DispatchExtractor))
func DispatchExtractor(ctx context.Context) (slog.Attr, bool) {
	d, ok := DispatchFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Group("dispatch",
		logger.DispatchID(d.ID),
		logger.NotificationKey(d.Key),
		logger.Manager(d.Manager),
	), true
}

var _ logger.ContextExtractor = DispatchExtractor
