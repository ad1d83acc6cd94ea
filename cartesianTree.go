package rmq

import (
	"fmt"
	"math"
)

// MaxLen is the largest array accepted by the index.
// The Euler tour has 2n-1 entries and tour positions are stored as int32.
const MaxLen = (math.MaxInt32 + 1) / 2

// cartesianTree holds the tree relations indexed by array position.
// Each slot is either a valid position or None.
type cartesianTree struct {
	parent []int32
	left   []int32
	right  []int32
	root   int32
}

func (t *cartesianTree) size() int {
	return len(t.parent)
}

// buildCartesianTree builds the min-heap ordered tree whose inorder walk
// is 0...len(vals)-1, using a stack of positions with increasing values.
//
// Equal values are not popped, so the leftmost of equal values stays higher
// in the tree and the ones to its right become its descendants.
func buildCartesianTree[T Number](vals []T) (*cartesianTree, error) {
	n := len(vals)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n > MaxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, n, MaxLen)
	}

	relations := make([]int32, 3*n)
	for i := range relations {
		relations[i] = None
	}
	t := &cartesianTree{
		parent: relations[0:n],
		left:   relations[n : 2*n],
		right:  relations[2*n : 3*n],
	}

	stack := make([]int32, 0, 64)
	for i := 0; i < n; i++ {
		v := vals[i]
		if isNaN(v) {
			return nil, fmt.Errorf("%w: position %d", ErrUnorderedValue, i)
		}
		last := int32(None)
		for len(stack) > 0 && vals[stack[len(stack)-1]] > v {
			last = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		cur := int32(i)
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			t.parent[cur] = top
			t.right[top] = cur
		}
		if last != None {
			t.parent[last] = cur
			t.left[cur] = last
		}
		stack = append(stack, cur)
	}

	// The bottom of the stack is never popped by a later element,
	// so it is the only position without a parent.
	t.root = stack[0]
	if t.parent[t.root] != None {
		panic(fmt.Sprintf("rmq: cartesian root %d has parent %d", t.root, t.parent[t.root]))
	}
	return t, nil
}
