/*
Package result implements a small carrier for the outcome of a computation
which may fail, and its conversion to and from maybe.Maybe.

A Maybe never carries an error. Result is where an error lives until the
caller decides to drop it (ToMaybe) or to supply one for an absent value
(FromMaybe).
*/
package result

import (
	"github.com/hanlib/fp/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.result'.
func tracer() tracing.Trace {
	return tracing.Select("fp.result")
}

type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// FromMaybe turns Just(x) into Ok(x) and Nothing into Err(err). A nil err
// makes Nothing an Ok of the zero value.
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	if x, ok := m.Get(); ok {
		return Ok(x)
	}
	return Err[T](err)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// ToMaybe drops the error, if any.
func (r Result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err != nil {
		tracer().Debugf("result: dropping error %v", r.err)
		return maybe.Nothing[T]()
	}
	return maybe.Just(r.value)
}

func (r Result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r Result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
