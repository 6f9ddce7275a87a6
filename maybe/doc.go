/*
Package maybe implements an optional value: a Maybe[T] holds either nothing
or exactly one value of type T.

	x := maybe.Just(7)        // infers type
	y := maybe.Nothing[int]() // same as maybe.Maybe[int]{}

A Maybe is a plain value type. Combinators never modify their receiver;
each returns a fresh Maybe (or the receiver itself, by value). Functions
handed to a combinator are called synchronously, exactly once if the
branch they belong to is taken, and never otherwise:

	n := maybe.ThenMaybe(maybe.Just(5), parse).OrElse(15)

Chaining Maybes

Go methods cannot introduce new type parameters, therefore the
type-changing combinators ThenDo and ThenMaybe are package functions. For
transforms staying within T there are the method forms Map and AndThen.

Copies

Go has no move semantics, and assigning a Maybe copies its value the way
assigning a T would. The only “copies” this package knows about are the
ones requested by Clone. Handing ownership to someone else is done with Take,
which leaves the source empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package maybe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.maybe'.
func tracer() tracing.Trace {
	return tracing.Select("fp.maybe")
}
