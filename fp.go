/*
Package fp holds small functional helpers shared by the sub-packages
maybe and result.

The most important one is Unit: the type of “no meaningful value”. Actions
which are run for their side effect only are lifted to functions returning
Unit, so that they can flow through the same generic combinators as ordinary
transforms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package fp

// Unit is the type with exactly one value, Unit{}.
type Unit struct{}

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Discard lifts an action on T to a function returning Unit.
func Discard[T any](action func(T)) func(T) Unit {
	return func(a T) Unit {
		action(a)
		return Unit{}
	}
}

// Thunk lifts a nullary action to a supplier of Unit.
func Thunk(action func()) func() Unit {
	return func() Unit {
		action()
		return Unit{}
	}
}
