// Package kdtree implements a dynamic k-dimensional tree for spatial search
// over points carrying arbitrary attached data.
//
// Points are inserted one at a time; there is no rebalancing, so the shape of
// the tree follows insertion order. Points with identical coordinates are kept
// on a duplicate chain hanging off a single tree node and are folded back into
// query results when a result set is first iterated.
//
// Basic usage:
//
//	tree, err := kdtree.New[string](2)
//	_ = tree.Insert([]float64{0, 0}, "a")
//	_ = tree.Insert([]float64{1, 1}, "b")
//	rs, err := tree.KNearest([]float64{0.2, 0.1}, 1)
//	for rs.Rewind(); !rs.End(); rs.Next() {
//		e, _ := rs.Current()
//		// e.Data, e.Position, e.DistSq
//	}
//
// # Queries
//
// Distances are always squared Euclidean distances in the dimensionality
// fixed when the tree is created:
//
//	tree.Nearest(p)                    // single nearest neighbour
//	tree.KNearest(p, k)                // bounded k-nearest, ascending
//	tree.WithinRadius(p, r)            // every point with dist² <= r², ascending
//	tree.InBounds(min, max, inclusive) // axis-aligned box, traversal order
//
// QueryKNN and QueryRadius run many queries over flat row-major query data in
// parallel. A Tree is not synchronized: queries may run concurrently with each
// other but never with Insert, Clear or Destroy.
package kdtree
