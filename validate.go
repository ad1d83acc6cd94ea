package rmq

import "fmt"

// Validate re-checks the structural invariants of the index:
//   - exactly one root, and child and parent relations agree
//   - min-heap order: T[Parent(i)] <= T[i]
//   - the inorder walk of the tree is 0...Len()-1
//   - the tour has 2*Len()-1 entries starting at the root with depth 0
//   - adjacent tour depths differ by exactly one
//   - FirstVisit(i) is the first tour position holding i, one level below its parent
//
// A non-nil result wraps ErrCorrupted and means the index must not be used.
func (c *CartesianRMQ[T]) Validate() error {
	if err := c.validateTree(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if err := c.validateTour(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return nil
}

func (c *CartesianRMQ[T]) validateTree() error {
	t := c.tree
	n := len(c.vals)
	if t.size() != n {
		return fmt.Errorf("tree has %d nodes for %d values", t.size(), n)
	}

	roots := 0
	for i := 0; i < n; i++ {
		p := t.parent[i]
		if p == None {
			roots++
			if int32(i) != t.root {
				return fmt.Errorf("node %d has no parent but root is %d", i, t.root)
			}
			continue
		}
		if t.left[p] != int32(i) && t.right[p] != int32(i) {
			return fmt.Errorf("node %d is not a child of its parent %d", i, p)
		}
		if c.vals[p] > c.vals[i] {
			return fmt.Errorf("heap order broken: T[%d] > T[%d]", p, i)
		}
		if l := t.left[i]; l != None && t.parent[l] != int32(i) {
			return fmt.Errorf("left child %d of %d has parent %d", l, i, t.parent[l])
		}
		if r := t.right[i]; r != None && t.parent[r] != int32(i) {
			return fmt.Errorf("right child %d of %d has parent %d", r, i, t.parent[r])
		}
	}
	if roots != 1 {
		return fmt.Errorf("tree has %d roots", roots)
	}

	next := int32(0)
	stack := make([]int32, 0, 64)
	for cur := t.root; cur != None || len(stack) > 0; {
		for cur != None {
			stack = append(stack, cur)
			cur = t.left[cur]
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur != next {
			return fmt.Errorf("inorder position %d holds node %d", next, cur)
		}
		next++
		cur = t.right[cur]
	}
	if int(next) != n {
		return fmt.Errorf("inorder walk reached %d of %d nodes", next, n)
	}
	return nil
}

func (c *CartesianRMQ[T]) validateTour() error {
	e := c.tour
	n := len(c.vals)
	if e.len() != 2*n-1 || len(e.depth) != e.len() {
		return fmt.Errorf("tour has %d entries and %d depths, want %d", e.len(), len(e.depth), 2*n-1)
	}
	if e.nodes[0] != c.tree.root || e.depth[0] != 0 {
		return fmt.Errorf("tour starts at node %d depth %d", e.nodes[0], e.depth[0])
	}
	for p := 1; p < e.len(); p++ {
		if d := e.depth[p] - e.depth[p-1]; d != 1 && d != -1 {
			return fmt.Errorf("depth step %d at tour position %d", d, p)
		}
	}
	seen := make([]bool, n)
	for p, node := range e.nodes {
		if node < 0 || int(node) >= n {
			return fmt.Errorf("tour position %d holds node %d", p, node)
		}
		if seen[node] {
			continue
		}
		seen[node] = true
		if e.first[node] != int32(p) {
			return fmt.Errorf("node %d first appears at %d, recorded %d", node, p, e.first[node])
		}
	}
	for i := 0; i < n; i++ {
		f := e.first[i]
		if !seen[i] {
			return fmt.Errorf("node %d is missing from the tour", i)
		}
		if par := c.tree.parent[i]; par != None && e.depth[f] != e.depth[e.first[par]]+1 {
			return fmt.Errorf("node %d at depth %d under parent at depth %d", i, e.depth[f], e.depth[e.first[par]])
		}
	}
	return nil
}
