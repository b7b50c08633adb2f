package kdtree

import (
	"math"
	"time"
)

// Nearest returns a result set holding the stored point closest to point,
// followed by any duplicates at that position once read. The set is empty
// for an empty tree.
func (t *Tree[T]) Nearest(point []float64) (*ResultSet[T], error) {
	start := time.Now()
	rs, err := t.nearest(point)
	t.observe(QueryNearest, rs, start, err)
	return rs, err
}

// NearestEntry returns the single closest entry. ok is false for an empty
// tree. Duplicates at the same position are not reported.
func (t *Tree[T]) NearestEntry(point []float64) (e Entry[T], ok bool, err error) {
	rs, err := t.Nearest(point)
	if err != nil || len(rs.hits) == 0 {
		return e, false, err
	}
	return rs.entry(rs.hits[0]), true, nil
}

// KNearest returns up to k stored points closest to point in ascending
// order of squared distance.
func (t *Tree[T]) KNearest(point []float64, k int) (*ResultSet[T], error) {
	start := time.Now()
	rs, err := t.kNearest(point, k)
	t.observe(QueryKNearest, rs, start, err)
	return rs, err
}

// WithinRadius returns every stored point whose squared distance to point
// is at most radius², in ascending order of distance.
func (t *Tree[T]) WithinRadius(point []float64, radius float64) (*ResultSet[T], error) {
	start := time.Now()
	rs, err := t.withinRadius(point, radius, true)
	t.observe(QueryWithinRadius, rs, start, err)
	return rs, err
}

// WithinRadiusUnordered is WithinRadius without sorting; entries come back
// in traversal order.
func (t *Tree[T]) WithinRadiusUnordered(point []float64, radius float64) (*ResultSet[T], error) {
	start := time.Now()
	rs, err := t.withinRadius(point, radius, false)
	t.observe(QueryWithinRadius, rs, start, err)
	return rs, err
}

// InBounds returns every stored point inside the box [lo, hi], in traversal
// order. With inclusive false the box is open on every side. Entries carry
// no distance.
func (t *Tree[T]) InBounds(lo, hi []float64, inclusive bool) (*ResultSet[T], error) {
	start := time.Now()
	rs, err := t.inBounds(lo, hi, inclusive)
	t.observe(QueryInBounds, rs, start, err)
	return rs, err
}

func (t *Tree[T]) observe(kind QueryKind, rs *ResultSet[T], start time.Time, err error) {
	results := 0
	if rs != nil {
		results = len(rs.hits)
	}
	t.metrics.RecordQuery(kind, results, time.Since(start), err)
	t.logger.LogQuery(kind, results, err)
}

// sides orders n's children relative to point and returns, for each, the
// edge of rect that n's split plane replaces when descending into it.
func sides[T any](n *node[T], point []float64, rect *HyperRect) (near, far *node[T], nearEdge, farEdge *float64) {
	a := n.axis
	if point[a]-n.pos[a] <= 0 {
		return n.left, n.right, &rect.Max[a], &rect.Min[a]
	}
	return n.right, n.left, &rect.Min[a], &rect.Max[a]
}

func (t *Tree[T]) nearest(point []float64) (*ResultSet[T], error) {
	if err := t.checkPoint(point); err != nil {
		return nil, err
	}
	rs := newResultSet[T](0, true)
	if t.root == nil {
		return rs, nil
	}

	s := nearestSearch[T]{
		point:      point,
		rect:       t.rect.Clone(),
		best:       t.root,
		bestDistSq: distSq(t.root.pos, point),
	}
	s.search(t.root)
	rs.push(s.best, s.bestDistSq)
	return rs, nil
}

type nearestSearch[T any] struct {
	point      []float64
	rect       *HyperRect // working copy, sliced and restored on the way down
	best       *node[T]
	bestDistSq float64
}

func (s *nearestSearch[T]) search(n *node[T]) {
	near, far, nearEdge, farEdge := sides(n, s.point, s.rect)
	split := n.pos[n.axis]

	if near != nil {
		saved := *nearEdge
		*nearEdge = split
		s.search(near)
		*nearEdge = saved
	}

	if d := distSq(n.pos, s.point); d < s.bestDistSq {
		s.best, s.bestDistSq = n, d
	}

	if far != nil {
		saved := *farEdge
		*farEdge = split
		if s.rect.DistSq(s.point) < s.bestDistSq {
			s.search(far)
		}
		*farEdge = saved
	}
}

func (t *Tree[T]) kNearest(point []float64, k int) (*ResultSet[T], error) {
	if err := t.checkPoint(point); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}
	rs := newResultSet[T](k, true)
	if t.root == nil {
		return rs, nil
	}

	s := knnSearch[T]{point: point, rect: t.rect.Clone(), rs: rs}
	s.search(t.root)
	return rs, nil
}

// knnSearch is nearestSearch with the single best distance replaced by the
// worst distance held in a bounded result set.
type knnSearch[T any] struct {
	point []float64
	rect  *HyperRect
	rs    *ResultSet[T]
}

func (s *knnSearch[T]) search(n *node[T]) {
	s.rs.offer(n, distSq(n.pos, s.point))

	near, far, nearEdge, farEdge := sides(n, s.point, s.rect)
	split := n.pos[n.axis]

	if near != nil {
		saved := *nearEdge
		*nearEdge = split
		s.search(near)
		*nearEdge = saved
	}

	if far != nil {
		saved := *farEdge
		*farEdge = split
		if s.rect.DistSq(s.point) < s.rs.worst() {
			s.search(far)
		}
		*farEdge = saved
	}
}

func (t *Tree[T]) withinRadius(point []float64, radius float64, ordered bool) (*ResultSet[T], error) {
	if err := t.checkPoint(point); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, ErrInvalidRadius
	}
	rs := newResultSet[T](0, true)
	s := radiusSearch[T]{
		point:    point,
		radius:   radius,
		radiusSq: radius * radius,
		rs:       rs,
	}
	s.search(t.root)
	if ordered {
		rs.sortByDist()
	}
	return rs, nil
}

// radiusSearch prunes on the split plane alone rather than a bounding box,
// which is cheaper when the radius is large.
type radiusSearch[T any] struct {
	point    []float64
	radius   float64
	radiusSq float64
	rs       *ResultSet[T]
}

func (s *radiusSearch[T]) search(n *node[T]) {
	if n == nil {
		return
	}
	if d := distSq(n.pos, s.point); d <= s.radiusSq {
		s.rs.push(n, d)
	}

	dx := s.point[n.axis] - n.pos[n.axis]
	near, far := n.left, n.right
	if dx > 0 {
		near, far = n.right, n.left
	}
	s.search(near)
	// Right-hand points may sit exactly on the plane, so a gap equal to the
	// radius can still hold a hit.
	if math.Abs(dx) <= s.radius {
		s.search(far)
	}
}

func (t *Tree[T]) inBounds(lo, hi []float64, inclusive bool) (*ResultSet[T], error) {
	if err := t.checkBox(lo, hi); err != nil {
		return nil, err
	}
	rs := newResultSet[T](0, false)
	if t.root == nil {
		return rs, nil
	}

	box := &HyperRect{Min: lo, Max: hi}
	inside := box.Contains
	if !inclusive {
		inside = box.ContainsOpen
	}

	stack := make([]*node[T], 0, t.depth+1)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if inside(n.pos) {
			rs.push(n, 0)
		}
		a := n.axis
		if n.left != nil && lo[a] <= n.pos[a] {
			stack = append(stack, n.left)
		}
		if n.right != nil && hi[a] >= n.pos[a] {
			stack = append(stack, n.right)
		}
	}
	return rs, nil
}
