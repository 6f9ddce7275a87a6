package maybe

import "github.com/hanlib/fp"

// OrElse returns the held value, or alt if m is Nothing.
func (m Maybe[T]) OrElse(alt T) T {
	if m.just {
		return m.value
	}
	return alt
}

// OrZero returns the held value, or the zero value of T.
func (m Maybe[T]) OrZero() T {
	return m.value
}

// ThenDo applies f to the held value and wraps the result. For Nothing, f is
// not called and Nothing[U] is returned.
func ThenDo[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.just {
		return Just(f(m.value))
	}
	return Nothing[U]()
}

// Map is ThenDo for transforms which do not change the type.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	return ThenDo(m, f)
}

// Tap calls action with the held value, if any, and returns m unchanged.
func (m Maybe[T]) Tap(action func(T)) Maybe[T] {
	_ = ThenDo(m, fp.Discard(action))
	return m
}

// OrElseDo returns m if it holds a value. Otherwise it calls supply and
// returns Just its result.
func (m Maybe[T]) OrElseDo(supply func() T) Maybe[T] {
	if m.just {
		return m
	}
	return Just(supply())
}

// OrElseRun calls action if m is Nothing. It always returns m.
func (m Maybe[T]) OrElseRun(action func()) Maybe[T] {
	if !m.just {
		fp.Thunk(action)()
	}
	return m
}

// ThenMaybe chains a computation which may itself produce Nothing. The
// result of f is returned as is, without further wrapping.
func ThenMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return f(m.value)
	}
	return Nothing[U]()
}

// AndThen is ThenMaybe for computations which do not change the type.
func (m Maybe[T]) AndThen(f func(T) Maybe[T]) Maybe[T] {
	return ThenMaybe(m, f)
}

// OrMaybe returns m if it holds a value, otherwise whatever supply returns.
func (m Maybe[T]) OrMaybe(supply func() Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return supply()
}

// Or returns the first of ms holding a value, or Nothing.
func Or[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.just {
			return m
		}
	}
	return Nothing[T]()
}
