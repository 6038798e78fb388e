// Package utils holds small helpers shared by the filter packages.
package utils

// Span is a half-open index range [Start, End) into a slice.
type Span struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Partition splits n items into at most parts contiguous spans of nearly
// equal size, in index order. The first n%parts spans are one item longer
// than the rest. It returns nil when n is zero, and a single span when parts
// is less than one.
//
// Example:
//
//	Partition(5, 2) // [{0 3} {3 5}]
func Partition(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	size, extra := n/parts, n%parts
	spans := make([]Span, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < extra {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
