package maybe

// Take hands out the state of m and leaves m empty. Taking from a nil
// pointer yields Nothing.
func (m *Maybe[T]) Take() Maybe[T] {
	if m == nil || !m.just {
		return Nothing[T]()
	}
	tracer().Debugf("maybe: ownership of %v taken", m.value)
	taken := *m
	*m = Maybe[T]{}
	return taken
}

// Clone returns an independent copy of m. cp is called exactly once if m holds
// a value and never otherwise. A nil cp means plain assignment.
func (m Maybe[T]) Clone(cp func(dst *T, src T)) Maybe[T] {
	if !m.just {
		return Nothing[T]()
	}
	if cp == nil {
		cp = func(dst *T, src T) { *dst = src }
	}
	var x T
	cp(&x, m.value)
	tracer().Debugf("maybe: cloned %v", x)
	return Just(x)
}
