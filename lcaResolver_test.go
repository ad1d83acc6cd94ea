package rmq

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// origLCA walks both nodes up to the root and returns the deepest shared ancestor.
func origLCA(tree *cartesianTree, u, v int32) int32 {
	ancestors := make(map[int32]struct{})
	for x := u; x != None; x = tree.parent[x] {
		ancestors[x] = struct{}{}
	}
	for x := v; x != None; x = tree.parent[x] {
		if _, ok := ancestors[x]; ok {
			return x
		}
	}
	return None
}

func TestLCAResolver(t *testing.T) {
	Convey("Given the array [5, 2, 8, 1, 9, 3, 7, 4]", t, func() {
		_, tour := buildTour([]int{5, 2, 8, 1, 9, 3, 7, 4})
		r := lcaResolver{tour: tour, index: newSparseTable(tour.depth)}

		So(r.lca(0, 2), ShouldEqual, 1)
		So(r.lca(2, 0), ShouldEqual, 1)
		So(r.lca(4, 6), ShouldEqual, 5)
		So(r.lca(6, 7), ShouldEqual, 7)
		So(r.lca(0, 7), ShouldEqual, 3)
		So(r.lca(1, 4), ShouldEqual, 3)

		Convey("A node is its own ancestor", func() {
			for u := 0; u < 8; u++ {
				So(r.lca(u, u), ShouldEqual, u)
			}
			So(r.lca(5, 4), ShouldEqual, 5)
		})
	})

	Convey("When random trees are resolved with both indexes", t, func() {
		rng := rand.New(rand.NewSource(13))
		for _, dim := range []int64{3, 50, 1 << 40} {
			num := 700
			tree, tour := buildTour(generateValues(rng, num, dim))
			sparse := lcaResolver{tour: tour, index: newSparseTable(tour.depth)}
			block := lcaResolver{tour: tour, index: newBlockTable(tour.depth)}

			okSparse, okBlock := true, true
			for k := 0; k < 3000; k++ {
				u, v := rng.Intn(num), rng.Intn(num)
				want := int(origLCA(tree, int32(u), int32(v)))
				if sparse.lca(u, v) != want {
					okSparse = false
				}
				if block.lca(u, v) != want {
					okBlock = false
				}
			}
			So(okSparse, ShouldBeTrue)
			So(okBlock, ShouldBeTrue)
		}
	})
}
