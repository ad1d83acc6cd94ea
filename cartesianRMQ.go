package rmq

import (
	"fmt"
	"time"
)

// CartesianRMQ is the core of the library.
// It is immutable once built and safe for concurrent readers.
type CartesianRMQ[T Number] struct {
	vals     []T
	tree     *cartesianTree
	tour     *eulerTour
	index    rangeMinIndex
	kind     IndexKind
	resolver lcaResolver

	buildTime time.Duration
}

// Stats describes a built index.
type Stats struct {
	Size        int           // Number of values
	TourLen     int           // Euler tour length, always 2*Size-1
	Index       IndexKind     // Range-minimum index over the depth sequence
	Levels      int           // Sparse-table levels
	BuildTime   time.Duration // Construction time
	MemoryBytes int           // Approximate memory held by the index
}

var _ RangeMinimum[int] = (*CartesianRMQ[int])(nil)

// New builds the index over vals.
//
// vals is borrowed, not copied, and must not be modified while the index
// is in use. It fails with ErrEmptyInput for an empty array,
// ErrUnorderedValue if vals holds NaN and ErrInputTooLarge above MaxLen.
func New[T Number](vals []T, opts ...Option) (*CartesianRMQ[T], error) {
	o := newOptions(opts)
	start := time.Now()

	tree, err := buildCartesianTree(vals)
	if err != nil {
		return nil, fmt.Errorf("build cartesian tree: %w", err)
	}
	tour := linearize(tree)

	var index rangeMinIndex
	switch o.index {
	case IndexSparse:
		index = newSparseTable(tour.depth)
	case IndexBlock:
		index = newBlockTable(tour.depth)
	default:
		return nil, fmt.Errorf("build range-min index: unknown kind %d", o.index)
	}

	c := &CartesianRMQ[T]{
		vals:     vals,
		tree:     tree,
		tour:     tour,
		index:    index,
		kind:     o.index,
		resolver: lcaResolver{tour: tour, index: index},
	}
	c.buildTime = time.Since(start)

	if o.validate {
		if err := c.Validate(); err != nil {
			o.logger.Error("cartesian rmq validation failed",
				"size", len(vals),
				"error", err,
			)
			return nil, err
		}
	}

	o.logger.Debug("cartesian rmq constructed",
		"size", len(vals),
		"tour_len", tour.len(),
		"index", o.index.String(),
		"levels", index.levels(),
		"build_time", c.buildTime,
	)
	return c, nil
}

// Len returns the number of values.
func (c *CartesianRMQ[T]) Len() int {
	return len(c.vals)
}

// Lookup returns T[pos]
func (c *CartesianRMQ[T]) Lookup(pos int) T {
	return c.vals[pos]
}

// Query returns min(T[l...r]), both ends inclusive.
// It fails with ErrInvalidRange unless 0 <= l <= r < Len().
func (c *CartesianRMQ[T]) Query(l, r int) (T, error) {
	pos, err := c.QueryIndex(l, r)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.vals[pos], nil
}

// QueryIndex returns the position of min(T[l...r]).
// When the minimum occurs more than once, the leftmost position is returned.
func (c *CartesianRMQ[T]) QueryIndex(l, r int) (int, error) {
	if l < 0 || r >= len(c.vals) || l > r {
		return 0, fmt.Errorf("%w: [%d, %d] over %d values", ErrInvalidRange, l, r, len(c.vals))
	}
	return c.resolver.lca(l, r), nil
}

// QueryRange returns min(T[ranze.Bpos, ranze.Epos)).
func (c *CartesianRMQ[T]) QueryRange(ranze Range) (T, error) {
	return c.Query(ranze.Bpos, ranze.Epos-1)
}

// LCA returns the lowest common ancestor of positions u and v in the
// Cartesian tree. LCA(u, u) == u.
func (c *CartesianRMQ[T]) LCA(u, v int) (int, error) {
	n := len(c.vals)
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, fmt.Errorf("%w: lca(%d, %d) over %d values", ErrInvalidRange, u, v, n)
	}
	return c.resolver.lca(u, v), nil
}

// Root returns the position of the tree root, a leftmost minimum of T.
func (c *CartesianRMQ[T]) Root() int {
	return int(c.tree.root)
}

// Parent returns the parent of pos, or None for the root.
func (c *CartesianRMQ[T]) Parent(pos int) int {
	return int(c.tree.parent[pos])
}

// Left returns the left child of pos, or None.
func (c *CartesianRMQ[T]) Left(pos int) int {
	return int(c.tree.left[pos])
}

// Right returns the right child of pos, or None.
func (c *CartesianRMQ[T]) Right(pos int) int {
	return int(c.tree.right[pos])
}

// Tour returns a copy of the Euler tour.
func (c *CartesianRMQ[T]) Tour() []int {
	return widen(c.tour.nodes)
}

// Depths returns a copy of the depth sequence parallel to Tour.
func (c *CartesianRMQ[T]) Depths() []int {
	return widen(c.tour.depth)
}

// FirstVisit returns the first tour position of pos.
func (c *CartesianRMQ[T]) FirstVisit(pos int) int {
	return int(c.tour.first[pos])
}

// Stats returns size and build information.
func (c *CartesianRMQ[T]) Stats() Stats {
	n := len(c.vals)
	return Stats{
		Size:        n,
		TourLen:     c.tour.len(),
		Index:       c.kind,
		Levels:      c.index.levels(),
		BuildTime:   c.buildTime,
		MemoryBytes: 4*(3*n) + 4*(2*c.tour.len()+n) + c.index.memoryBytes(),
	}
}

func widen(xs []int32) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}
