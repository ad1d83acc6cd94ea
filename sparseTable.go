package rmq

// rangeMinIndex returns the position of the minimum depth in depth[i...j].
// Ties go to the earlier position.
type rangeMinIndex interface {
	queryIndex(i, j int) int
	levels() int
	memoryBytes() int
}

// sparseTable is the power-of-two interval index over a depth sequence.
// table[k][p] is the position of the minimum depth in depth[p...p+1<<k-1].
type sparseTable struct {
	depth []int32
	log   []uint8 // log[l] = floor(log2(l)) for 1 <= l <= len(depth)
	table [][]int32
}

// floorLogTable returns log[l] = floor(log2(l)) for 0 < l <= m.
// log[0] is unused.
func floorLogTable(m int) []uint8 {
	log := make([]uint8, m+1)
	for l := 2; l <= m; l++ {
		log[l] = log[l/2] + 1
	}
	return log
}

func newSparseTable(depth []int32) *sparseTable {
	m := len(depth)
	log := floorLogTable(m)
	k := int(log[m]) + 1

	table := make([][]int32, k)
	table[0] = make([]int32, m)
	for p := range table[0] {
		table[0][p] = int32(p)
	}
	for j, s := 1, 2; j < k; j, s = j+1, s*2 {
		prev := table[j-1]
		cur := make([]int32, m-s+1)
		for p := range cur {
			a, b := prev[p], prev[p+s/2]
			if depth[b] < depth[a] {
				a = b
			}
			cur[p] = a
		}
		table[j] = cur
	}
	return &sparseTable{depth: depth, log: log, table: table}
}

// queryIndex compares the two overlapping windows of length 1<<k covering
// depth[i...j]. Requires 0 <= i <= j < len(depth).
func (st *sparseTable) queryIndex(i, j int) int {
	k := st.log[j-i+1]
	a := st.table[k][i]
	b := st.table[k][j-(1<<k)+1]
	if st.depth[b] < st.depth[a] {
		return int(b)
	}
	return int(a)
}

func (st *sparseTable) levels() int {
	return len(st.table)
}

func (st *sparseTable) memoryBytes() int {
	size := len(st.log)
	for _, level := range st.table {
		size += 4 * len(level)
	}
	return size
}
