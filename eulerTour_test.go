package rmq

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func buildTour[T Number](vals []T) (*cartesianTree, *eulerTour) {
	tree, err := buildCartesianTree(vals)
	if err != nil {
		panic(err)
	}
	return tree, linearize(tree)
}

func TestEulerTour(t *testing.T) {
	Convey("Given the array [5, 2, 8, 1, 9, 3, 7, 4]", t, func() {
		_, tour := buildTour([]int{5, 2, 8, 1, 9, 3, 7, 4})

		Convey("The tour re-emits each parent after each child subtree", func() {
			So(tour.nodes, ShouldResemble, []int32{3, 1, 0, 1, 2, 1, 3, 5, 4, 5, 7, 6, 7, 5, 3})
			So(tour.depth, ShouldResemble, []int32{0, 1, 2, 1, 2, 1, 0, 1, 2, 1, 2, 3, 2, 1, 0})
		})
		Convey("The first visits point at the first occurrences", func() {
			So(tour.first, ShouldResemble, []int32{2, 1, 4, 0, 8, 7, 11, 10})
		})
	})

	Convey("Given a single value", t, func() {
		_, tour := buildTour([]int{42})
		So(tour.nodes, ShouldResemble, []int32{0})
		So(tour.depth, ShouldResemble, []int32{0})
		So(tour.first, ShouldResemble, []int32{0})
	})

	Convey("Given equal values", t, func() {
		_, tour := buildTour([]int{1, 1, 1})
		So(tour.nodes, ShouldResemble, []int32{0, 1, 2, 1, 0})
		So(tour.depth, ShouldResemble, []int32{0, 1, 2, 1, 0})
	})

	Convey("Given a strictly increasing array", t, func() {
		num := 200000
		vals := make([]int, num)
		for i := range vals {
			vals[i] = i
		}
		_, tour := buildTour(vals)

		Convey("The right spine is walked without recursion", func() {
			So(tour.len(), ShouldEqual, 2*num-1)
			So(tour.depth[num-1], ShouldEqual, num-1)
			So(tour.nodes[num-1], ShouldEqual, num-1)
			So(tour.depth[tour.len()-1], ShouldEqual, 0)
		})
	})

	Convey("When random arrays are linearized", t, func() {
		rng := rand.New(rand.NewSource(11))
		for _, num := range []int{1, 2, 3, 17, 1000, 4099} {
			vals := generateValues(rng, num, 16)
			tree, tour := buildTour(vals)

			So(tour.len(), ShouldEqual, 2*num-1)
			So(len(tour.depth), ShouldEqual, 2*num-1)
			So(tour.nodes[0], ShouldEqual, tree.root)
			So(tour.depth[0], ShouldEqual, 0)

			adjacent := true
			for p := 1; p < tour.len(); p++ {
				d := tour.depth[p] - tour.depth[p-1]
				if d != 1 && d != -1 {
					adjacent = false
				}
			}
			So(adjacent, ShouldBeTrue)

			firstOK := true
			seen := make([]bool, num)
			for p, node := range tour.nodes {
				if !seen[node] {
					seen[node] = true
					if tour.first[node] != int32(p) {
						firstOK = false
					}
				}
			}
			So(firstOK, ShouldBeTrue)
		}
	})
}
