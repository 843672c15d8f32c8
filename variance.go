package main

import (
	"math"
	"sort"
)

// refreshVariance recomputes v for every node in post-order: children are
// refreshed (and, being leaves, already at v == 0) before their parent's
// v is computed from them, so a parent's decision always sees current
// child variances. This resolves the lossy open question in spec.md §9
// as option (b).
func refreshVariance(n *node) {
	if n == nil || n.isLeaf() {
		if n != nil {
			n.v = 0
		}
		return
	}
	var sum float64
	for _, c := range n.children {
		refreshVariance(c)
		diff := float64(n.m) - float64(c.m)
		sum += c.v*c.v + diff*diff
	}
	n.v = math.Sqrt(sum / 4)
}

// varianceStats holds the median and maximum of all nonzero node
// variances in a tree.
type varianceStats struct {
	median float64
	max    float64
}

// collectVariances gathers nonzero variances across the tree in
// post-order, matching the order the original statistics pass used.
func collectVariances(n *node, out *[]float64) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		collectVariances(c, out)
	}
	if n.v > 0 {
		*out = append(*out, n.v)
	}
}

// computeVarianceStats refreshes every node's variance and reports the
// median and maximum of the nonzero values. An empty sequence (a fully
// uniform tree) reports zero for both.
func computeVarianceStats(t *tree) varianceStats {
	if t == nil || t.root == nil {
		return varianceStats{}
	}
	refreshVariance(t.root)

	var values []float64
	collectVariances(t.root, &values)
	if len(values) == 0 {
		return varianceStats{}
	}
	sort.Float64s(values)
	return varianceStats{
		median: values[len(values)/2],
		max:    values[len(values)-1],
	}
}
