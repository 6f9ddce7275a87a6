package maybe_test

import (
	"testing"

	. "github.com/hanlib/fp/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
		w = -1
	}
	if w != -1 {
		t.Errorf("expected to match Nothing, w is %#v", w)
	}
}

func TestMaybeMatchNonComparable(t *testing.T) {
	x := Just([]int{1, 2, 3})
	var v []int
	matched := false
	switch m := x.Match(); m {
	case m.Just(&v):
		matched = true
	case m.Nothing():
	}
	if !matched || len(v) != 3 {
		t.Errorf("expected to match Just([1 2 3]), got %v", v)
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var x Maybe[string]
	if x.IsJust() {
		t.Error("expected zero value of Maybe to be Nothing, isn't")
	}
	if !Equal(x, Nothing[string]()) {
		t.Error("expected zero value to equal Nothing[string](), doesn't")
	}
}

func TestMaybeOrElse(t *testing.T) {
	x := Just(7)
	if xx := x.OrElse(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.OrElse(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
	if y.OrZero() != 0 {
		t.Error("expected Nothing.OrZero() to be 0, isn't")
	}
}

func TestMaybeOrElseIdempotent(t *testing.T) {
	x := Just("held")
	for _, alt := range []string{"a", "b", ""} {
		c := x
		if c.OrElse(alt) != "held" {
			t.Errorf("expected copy of Just(held) to yield 'held' for alternative %q", alt)
		}
	}
}

func TestMaybeOf(t *testing.T) {
	m := map[string]int{"one": 1}
	v, ok := m["one"]
	if Of(v, ok).OrElse(0) != 1 {
		t.Error("expected Of(1, true) to hold 1")
	}
	v, ok = m["two"]
	if Of(v, ok).IsJust() {
		t.Error("expected Of(0, false) to be Nothing")
	}
}

func TestMaybeFromPtr(t *testing.T) {
	n := 3
	if FromPtr(&n).OrElse(0) != 3 {
		t.Error("expected FromPtr(&3) to hold 3")
	}
	if FromPtr[int](nil).IsJust() {
		t.Error("expected FromPtr(nil) to be Nothing")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just(1.5).Get(); !ok || v != 1.5 {
		t.Errorf("expected Get to return (1.5, true), returned (%v, %v)", v, ok)
	}
	if v, ok := Nothing[float64]().Get(); ok || v != 0 {
		t.Errorf("expected Get to return (0, false), returned (%v, %v)", v, ok)
	}
}

func TestMaybeString(t *testing.T) {
	if s := Just(7).String(); s != "Just(7)" {
		t.Errorf("expected Just(7), got %q", s)
	}
	if s := Nothing[int]().String(); s != "Nothing" {
		t.Errorf("expected Nothing, got %q", s)
	}
}

func TestMaybeEqual(t *testing.T) {
	if !Equal(Just(1), Just(1)) {
		t.Error("expected Just(1) == Just(1)")
	}
	if Equal(Just(1), Just(2)) {
		t.Error("expected Just(1) != Just(2)")
	}
	if Equal(Just(0), Nothing[int]()) {
		t.Error("expected Just(0) != Nothing")
	}
}
