package rmq

import "fmt"

// eulerTour is the node-visit sequence of a depth-first walk that re-emits
// a node after each of its child subtrees returns.
type eulerTour struct {
	nodes []int32 // nodes[p] is the array position visited at tour position p
	depth []int32 // depth[p] is the tree depth of nodes[p]
	first []int32 // first[i] is the smallest p with nodes[p] == i
}

const (
	stageEnter uint8 = iota // not yet emitted
	stageLeft               // emitted, left subtree pending or done
	stageRight              // right subtree pending or done
)

type tourFrame struct {
	node  int32
	stage uint8
}

// linearize walks t from its root, left child before right child.
// The walk keeps its own frame stack, so the height of the tree does not
// bound the call stack; the depth of a frame is its index in that stack.
func linearize(t *cartesianTree) *eulerTour {
	n := t.size()
	m := 2*n - 1
	buf := make([]int32, 2*m+n)
	e := &eulerTour{
		nodes: buf[0:0:m],
		depth: buf[m : m : 2*m],
		first: buf[2*m : 2*m+n],
	}
	for i := range e.first {
		e.first[i] = None
	}

	emit := func(node int32, d int) {
		e.nodes = append(e.nodes, node)
		e.depth = append(e.depth, int32(d))
	}

	stack := []tourFrame{{t.root, stageEnter}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		switch f.stage {
		case stageEnter:
			e.first[f.node] = int32(len(e.nodes))
			emit(f.node, top)
			stack[top].stage = stageLeft
			if c := t.left[f.node]; c != None {
				stack = append(stack, tourFrame{c, stageEnter})
			}
		case stageLeft:
			if t.left[f.node] != None {
				emit(f.node, top)
			}
			stack[top].stage = stageRight
			if c := t.right[f.node]; c != None {
				stack = append(stack, tourFrame{c, stageEnter})
			}
		default:
			if t.right[f.node] != None {
				emit(f.node, top)
			}
			stack = stack[:top]
		}
	}

	if len(e.nodes) != m {
		panic(fmt.Sprintf("rmq: euler tour has %d entries, want %d", len(e.nodes), m))
	}
	return e
}

func (e *eulerTour) len() int {
	return len(e.nodes)
}
