package rmq

// lcaResolver finds lowest common ancestors in the Cartesian tree.
// The shallowest tour entry between the first visits of u and v is
// their lowest common ancestor.
type lcaResolver struct {
	tour  *eulerTour
	index rangeMinIndex
}

// lca returns the lowest common ancestor of u and v.
// Both must be valid array positions.
func (r *lcaResolver) lca(u, v int) int {
	if u == v {
		return u
	}
	a, b := r.tour.first[u], r.tour.first[v]
	if a > b {
		a, b = b, a
	}
	return int(r.tour.nodes[r.index.queryIndex(int(a), int(b))])
}
