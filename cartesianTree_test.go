package rmq

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func generateValues(rng *rand.Rand, num int, dim int64) []int64 {
	vals := make([]int64, num)
	for i := range vals {
		vals[i] = rng.Int63n(dim)
	}
	return vals
}

func inorder(t *cartesianTree) []int32 {
	out := make([]int32, 0, t.size())
	var walk func(int32)
	walk = func(i int32) {
		if i == None {
			return
		}
		walk(t.left[i])
		out = append(out, i)
		walk(t.right[i])
	}
	walk(t.root)
	return out
}

func TestCartesianTree(t *testing.T) {
	Convey("Given the array [5, 2, 8, 1, 9, 3, 7, 4]", t, func() {
		tree, err := buildCartesianTree([]int{5, 2, 8, 1, 9, 3, 7, 4})
		So(err, ShouldBeNil)

		Convey("The root is the position of 1", func() {
			So(tree.root, ShouldEqual, 3)
		})
		Convey("The relations follow the monotonic stack", func() {
			So(tree.parent, ShouldResemble, []int32{1, 3, 1, None, 5, 3, 7, 5})
			So(tree.left, ShouldResemble, []int32{None, 0, None, 1, None, 4, None, 6})
			So(tree.right, ShouldResemble, []int32{None, 2, None, 5, None, 7, None, None})
		})
	})

	Convey("Given equal values", t, func() {
		tree, err := buildCartesianTree([]int{1, 1, 1})
		So(err, ShouldBeNil)

		Convey("The leftmost one is the root and the rest hang to its right", func() {
			So(tree.root, ShouldEqual, 0)
			So(tree.parent, ShouldResemble, []int32{None, 0, 1})
			So(tree.right, ShouldResemble, []int32{1, 2, None})
			So(tree.left, ShouldResemble, []int32{None, None, None})
		})
	})

	Convey("Given a single value", t, func() {
		tree, err := buildCartesianTree([]float64{-3.5})
		So(err, ShouldBeNil)
		So(tree.root, ShouldEqual, 0)
		So(tree.parent[0], ShouldEqual, None)
	})

	Convey("When the array is empty", t, func() {
		_, err := buildCartesianTree([]int{})
		So(errors.Is(err, ErrEmptyInput), ShouldBeTrue)
	})

	Convey("When the array holds NaN", t, func() {
		_, err := buildCartesianTree([]float64{1, math.NaN(), 2})
		So(errors.Is(err, ErrUnorderedValue), ShouldBeTrue)
	})

	Convey("When random arrays are built", t, func() {
		rng := rand.New(rand.NewSource(7))
		for _, dim := range []int64{2, 10, 1 << 30} {
			vals := generateValues(rng, 3000, dim)
			tree, err := buildCartesianTree(vals)
			So(err, ShouldBeNil)

			roots := 0
			heap := true
			for i := range vals {
				p := tree.parent[i]
				if p == None {
					roots++
					continue
				}
				if vals[p] > vals[i] {
					heap = false
				}
			}
			So(roots, ShouldEqual, 1)
			So(heap, ShouldBeTrue)

			order := inorder(tree)
			want := make([]int32, len(vals))
			for i := range want {
				want[i] = int32(i)
			}
			So(order, ShouldResemble, want)
		}
	})
}
