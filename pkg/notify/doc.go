// Package notify provides an in-process notification registry with
// prioritized callbacks.
//
// Callers register interest in a notification key together with a callback
// and a priority. Other callers later post a notification by key and every
// matching callback runs, highest priority first. The poster does not need to
// know who, if anyone, is listening.
//
// # Basic usage
//
//	m := notify.New(notify.WithName("orders"))
//
//	id, err := m.Register("order.created", func(key string, args notify.Args) {
//		fmt.Println(key, args.Arg(0), args.Named["source"])
//	}, notify.WithPriority(10), notify.WithKwarg("source", "web"))
//	if err != nil {
//		return err
//	}
//
//	_ = m.Notify(ctx, "order.created", notify.Positional(orderID))
//
//	_ = m.Forget(notify.ByID(id))
//
// # Arguments
//
// A callback always receives the notification key first. Positional values
// bound at registration come before the ones given to Notify. Named values
// bound at registration are overridden by Notify values with the same name.
//
// # Callbacks
//
// Anything implementing Handler can be registered, as can functions of the
// shapes listed on NewInvoker. A pre-built *Invoker may be registered as is,
// but then no extra arguments may be bound at registration.
//
// # Failures
//
// A callback that returns an error or panics does not stop the dispatch. The
// failure is logged at WARN level with the key, priority, registration id and
// callback name, and the remaining callbacks still run. Nothing is retried.
//
// # Removing callbacks
//
// Forget takes selectors that are intersected: ForKey, AtPriority and one of
// ByID or ByTarget. ByTarget matches by identity, so it only accepts non-nil
// pointers to non-zero-size values and channels. Functions, plain values and
// pointers to empty structs fail with ErrUncomparableTarget. Wrap functions
// with Func when they need to be forgotten by target:
//
//	h := notify.Func(onSaved)
//	m.MustRegister("doc.saved", h)
//	m.MustRegister("doc.exported", h)
//	_ = m.Forget(notify.ByTarget(h)) // removes both
//
// # Shared manager
//
// Shared returns a lazily created process-wide Manager named "shared".
// Registration ids come from a single process-wide counter, so they are
// unique across every Manager.
//
// # Concurrency
//
// A Manager is safe for concurrent use. Callbacks run synchronously on the
// goroutine calling Notify, outside the registry lock, so they may register
// or forget callbacks themselves.
package notify
