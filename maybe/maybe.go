package maybe

import "fmt"

// Maybe T = Just T | Nothing.
// The zero value is Nothing. If just is false, value is the zero value of T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just returns a Maybe holding x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of bridges Go's comma-ok idiom:
//
//     v, ok := m[key]
//     x := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// FromPtr returns Nothing for a nil pointer, Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the held value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Equal is true if both a and b are Nothing, or both hold the same value.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.just != b.just {
		return false
	}
	return !a.just || a.value == b.value
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch on the constructor of a Maybe:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is handed out as a pointer, so matchers compare by identity even
// if T is not comparable.
type matcher[T any] struct {
	m Maybe[T]
}

func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
