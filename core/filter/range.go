package filter

import "math"

// Range accepts records whose numeric field lies strictly between a minimum
// and a maximum. Both bounds are exclusive, so a value equal to either bound
// is rejected. A range with min >= max accepts nothing.
type Range[T any] struct {
	field func(T) float64
	min   float64
	max   float64
}

// NewRange creates a Range over the value returned by field, with the default
// bounds 0 and math.MaxFloat64.
func NewRange[T any](field func(T) float64) *Range[T] {
	return &Range[T]{
		field: field,
		min:   0,
		max:   math.MaxFloat64,
	}
}

// WithMin replaces the lower bound.
func (r *Range[T]) WithMin(value float64) *Range[T] {
	r.min = value
	return r
}

// WithMax replaces the upper bound.
func (r *Range[T]) WithMax(value float64) *Range[T] {
	r.max = value
	return r
}

// Bounds returns the current lower and upper bounds.
func (r *Range[T]) Bounds() (lower, upper float64) {
	return r.min, r.max
}

// Evaluate reports whether min < field(record) < max.
func (r *Range[T]) Evaluate(record T) bool {
	v := r.field(record)
	return v > r.min && v < r.max
}

// Clone returns a copy of r with the same bounds.
func (r *Range[T]) Clone() Predicate[T] {
	c := *r
	return &c
}
