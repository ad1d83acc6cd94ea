package rmq

// Builder collects values for an index.
// A user calls PushBack()s followed by Build().
type Builder[T Number] struct {
	vals []T
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Number]() *Builder[T] {
	return &Builder[T]{vals: make([]T, 0)}
}

// PushBack appends val to the array.
func (b *Builder[T]) PushBack(val T) {
	b.vals = append(b.vals, val)
}

// Len returns the number of values pushed so far.
func (b *Builder[T]) Len() int {
	return len(b.vals)
}

// Build builds an index over the values pushed so far.
// The index owns a copy, so the Builder may keep being used.
func (b *Builder[T]) Build(opts ...Option) (*CartesianRMQ[T], error) {
	vals := make([]T, len(b.vals))
	copy(vals, b.vals)
	return New(vals, opts...)
}
