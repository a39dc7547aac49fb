package notify_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/notifykit/pkg/notify"
)

func ExampleManager() {
	m := notify.New(notify.WithName("orders"))

	m.MustRegister("order.created", func(key string, args notify.Args) {
		fmt.Println("audit:", key, args.Arg(0))
	}, notify.WithPriority(-10))

	m.MustRegister("order.created", func(key string, args notify.Args) {
		fmt.Println("mail:", key, args.Arg(0), args.Named["channel"])
	}, notify.WithPriority(10), notify.WithKwarg("channel", "email"))

	_ = m.Notify(context.Background(), "order.created", notify.Positional(42))
	// Output:
	// mail: order.created 42 email
	// audit: order.created 42
}

func ExampleManager_Forget() {
	m := notify.New()

	onSaved := notify.Func(func(key string, _ notify.Args) {
		fmt.Println("saved:", key)
	})
	m.MustRegister("doc.saved", onSaved)
	m.MustRegister("doc.exported", onSaved)
	fmt.Println(m.Keys())

	_ = m.Forget(notify.ByTarget(onSaved))
	fmt.Println(m.Keys())
	// Output:
	// [doc.exported doc.saved]
	// []
}

func ExampleInvoker() {
	inv := notify.MustInvoker(func(key string, args notify.Args) {
		fmt.Println(key, args.Positional, args.Named["y"])
	}, notify.Args{Positional: []any{"a", "b"}, Named: map[string]any{"y": 2}})

	_ = inv.Invoke(context.Background(), "E", notify.Args{
		Positional: []any{"c"},
		Named:      map[string]any{"y": 3},
	})
	// Output:
	// E [a b c] 3
}
