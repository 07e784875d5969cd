package app

//go:generate go tool kessoku $GOFILE

import "github.com/mazrean/kessoku"

// FooModule groups the bindings for Foo. The self-binding stays disabled,
// so Foo is built by its constructor.
var FooModule = kessoku.Set(
	// kessoku.Bind[*Foo](kessoku.Provide(NewFoo)),
)

// InitializeFoo creates a Foo that prints to the given writer.
var _ = kessoku.Inject[*Foo](
	"InitializeFoo",
	FooModule,
	kessoku.Provide(NewFoo),
)
