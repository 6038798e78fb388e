// Package filter provides composable predicates over in-memory records. Each
// predicate answers yes or no for a single record; predicates are combined
// with All into a single conjunction and applied to a collection in one
// order-preserving pass.
package filter

// Predicate is implemented by anything that can accept or reject a record.
type Predicate[T any] interface {
	// Evaluate reports whether the record passes the predicate.
	Evaluate(record T) bool
}

// Cloner is implemented by predicates with mutable configuration. All uses it
// to take a private copy of each component, so builder calls made after
// composition never reach the composed predicate.
type Cloner[T any] interface {
	Clone() Predicate[T]
}

// Func adapts an ordinary function to the Predicate interface.
type Func[T any] func(record T) bool

// Evaluate calls f(record).
func (f Func[T]) Evaluate(record T) bool {
	return f(record)
}

// Always is the identity predicate. It accepts every record and fills a
// composition slot for which no filtering is wanted.
type Always[T any] struct{}

// Evaluate always returns true.
func (Always[T]) Evaluate(T) bool {
	return true
}
