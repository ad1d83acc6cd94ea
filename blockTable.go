package rmq

import "fmt"

// blockTable is a range-minimum index for depth sequences whose adjacent
// entries differ by exactly one. The sequence is cut into blocks of
// blockSize positions; a block is described by the bit pattern of its
// up/down steps, and blocks with the same pattern share one in-block
// answer table. A sparse table over the block minima covers the blocks
// strictly between the two ends of a query.
//
// Preprocessing is O(m) and a query is O(1).
type blockTable struct {
	depth     []int32
	blockSize int
	pattern   []uint16 // pattern[x] is the step pattern of block x
	slot      []int32  // slot[pattern] is the offset of its table in inner, or None
	inner     []uint8  // inner[slot+i*blockSize+j] is the offset of the minimum in [i, j]
	blockMin  []int32  // blockMin[x] is the tour position of the minimum of block x
	summary   *sparseTable
}

func newBlockTable(depth []int32) *blockTable {
	m := len(depth)
	for p := 1; p < m; p++ {
		if d := depth[p] - depth[p-1]; d != 1 && d != -1 {
			panic(fmt.Sprintf("rmq: depth step %d at %d is not +-1", d, p))
		}
	}
	log := floorLogTable(m)
	b := int(log[m]) / 2
	if b < 1 {
		b = 1
	}
	nb := (m + b - 1) / b

	bt := &blockTable{
		depth:     depth,
		blockSize: b,
		pattern:   make([]uint16, nb),
		slot:      make([]int32, 1<<(b-1)),
		blockMin:  make([]int32, nb),
	}
	for i := range bt.slot {
		bt.slot[i] = None
	}

	minDepth := make([]int32, nb)
	for x := 0; x < nb; x++ {
		s := x * b
		e := min(s+b, m)
		var p uint16
		for t := s; t+1 < e; t++ {
			if depth[t+1] > depth[t] {
				p |= 1 << (t - s)
			}
		}
		// Steps past the end of a short last block read as up; those
		// offsets are never queried.
		for t := e - s - 1; t < b-1; t++ {
			p |= 1 << t
		}
		bt.pattern[x] = p
		if bt.slot[p] == None {
			bt.slot[p] = int32(len(bt.inner))
			bt.inner = append(bt.inner, innerTable(p, b)...)
		}
		bt.blockMin[x] = int32(s + bt.inBlock(x, 0, e-s-1))
		minDepth[x] = depth[bt.blockMin[x]]
	}
	bt.summary = newSparseTable(minDepth)
	return bt
}

// innerTable answers every in-block range [i, j] for one step pattern.
func innerTable(p uint16, b int) []uint8 {
	rel := make([]int, b)
	for t := 1; t < b; t++ {
		if p&(1<<(t-1)) != 0 {
			rel[t] = rel[t-1] + 1
		} else {
			rel[t] = rel[t-1] - 1
		}
	}
	out := make([]uint8, b*b)
	for i := 0; i < b; i++ {
		best := i
		for j := i; j < b; j++ {
			if rel[j] < rel[best] {
				best = j
			}
			out[i*b+j] = uint8(best)
		}
	}
	return out
}

// inBlock returns the offset of the minimum of block x over offsets [i, j].
func (bt *blockTable) inBlock(x, i, j int) int {
	base := int(bt.slot[bt.pattern[x]])
	return int(bt.inner[base+i*bt.blockSize+j])
}

func (bt *blockTable) queryIndex(i, j int) int {
	b := bt.blockSize
	bi, bj := i/b, j/b
	if bi == bj {
		return bi*b + bt.inBlock(bi, i-bi*b, j-bi*b)
	}

	best := bi*b + bt.inBlock(bi, i-bi*b, b-1)
	if bj-bi > 1 {
		mid := int(bt.blockMin[bt.summary.queryIndex(bi+1, bj-1)])
		if bt.depth[mid] < bt.depth[best] {
			best = mid
		}
	}
	if tail := bj*b + bt.inBlock(bj, 0, j-bj*b); bt.depth[tail] < bt.depth[best] {
		best = tail
	}
	return best
}

func (bt *blockTable) levels() int {
	return bt.summary.levels()
}

func (bt *blockTable) memoryBytes() int {
	return 2*len(bt.pattern) + 4*len(bt.slot) + len(bt.inner) + 4*len(bt.blockMin) + bt.summary.memoryBytes()
}
