package filter

// Meta is the conjunction of a fixed, ordered list of predicates. It is built
// with All and cannot be reconfigured afterwards.
type Meta[T any] struct {
	components []Predicate[T]
}

// All composes one or more predicates into a Meta. Components implementing
// Cloner are copied, so the result is frozen with respect to later builder
// calls on the originals. Requiring first makes an empty composition a
// compile-time error.
func All[T any](first Predicate[T], rest ...Predicate[T]) *Meta[T] {
	components := make([]Predicate[T], 0, len(rest)+1)
	for _, p := range append([]Predicate[T]{first}, rest...) {
		if c, ok := p.(Cloner[T]); ok {
			p = c.Clone()
		}
		components = append(components, p)
	}
	return &Meta[T]{components: components}
}

// Evaluate runs the components in declaration order and returns true only if
// all of them accept the record. Evaluation stops at the first rejection.
func (m *Meta[T]) Evaluate(record T) bool {
	for _, p := range m.components {
		if !p.Evaluate(record) {
			return false
		}
	}
	return true
}

// Len returns the number of composed predicates.
func (m *Meta[T]) Len() int {
	return len(m.components)
}

// Clone returns m itself; a Meta is already immutable.
func (m *Meta[T]) Clone() Predicate[T] {
	return m
}
