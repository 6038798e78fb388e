package filter

import "slices"

// Membership accepts records whose field value is one of an accepted set.
// The set is kept as an ordered slice; duplicates are allowed and do not
// change the outcome. An empty set accepts nothing.
type Membership[T any, V comparable] struct {
	field  func(T) V
	values []V
}

// NewMembership creates a Membership over the value returned by field,
// accepting the given values.
func NewMembership[T any, V comparable](field func(T) V, values ...V) *Membership[T, V] {
	return &Membership[T, V]{
		field:  field,
		values: slices.Clone(values),
	}
}

// Add appends value to the accepted set.
func (m *Membership[T, V]) Add(value V) *Membership[T, V] {
	m.values = append(m.values, value)
	return m
}

// Values returns a copy of the accepted values in insertion order.
func (m *Membership[T, V]) Values() []V {
	return slices.Clone(m.values)
}

// Evaluate reports whether field(record) is in the accepted set.
func (m *Membership[T, V]) Evaluate(record T) bool {
	return slices.Contains(m.values, m.field(record))
}

// Clone returns a copy of m that does not share its accepted values.
func (m *Membership[T, V]) Clone() Predicate[T] {
	return &Membership[T, V]{
		field:  m.field,
		values: slices.Clone(m.values),
	}
}
