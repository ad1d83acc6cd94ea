// Package rmq provides a static range minimum query index
// built from a Cartesian tree, answering Query(l, r) in O(1)
// after O(n) tree construction.
//
// The array is turned into a Cartesian tree, the tree is walked into an
// Euler tour with a parallel depth sequence, and the minimum of any range
// is the value stored at the lowest common ancestor of its two endpoints.
package rmq

import "golang.org/x/exp/constraints"

// None marks a missing parent or child relation.
const None = -1

// Number is the element type accepted by the index.
// Floating-point NaN values are rejected at build time.
type Number interface {
	constraints.Integer | constraints.Float
}

// RangeMinimum answers minimum queries over an immutable array.
type RangeMinimum[T Number] interface {
	// Len returns the number of values in the array.
	Len() int

	// Query returns min(T[l...r]).
	Query(l, r int) (T, error)

	// QueryIndex returns the leftmost position of min(T[l...r]).
	QueryIndex(l, r int) (int, error)
}

// Range represents a range [Bpos, Epos)
// only valid for Bpos < Epos
type Range struct {
	Bpos int
	Epos int
}

func isNaN[T Number](v T) bool {
	return v != v
}
