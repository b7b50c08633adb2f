package kdtree

import "slices"

// HyperRect is an axis-aligned bounding box. Min[i] <= Max[i] on every axis.
type HyperRect struct {
	Min []float64
	Max []float64
}

// newHyperRect returns the degenerate box around a single point.
func newHyperRect(p []float64) *HyperRect {
	return &HyperRect{Min: slices.Clone(p), Max: slices.Clone(p)}
}

// Dim returns the number of axes.
func (r *HyperRect) Dim() int { return len(r.Min) }

// Clone returns a deep copy of r.
func (r *HyperRect) Clone() *HyperRect {
	return &HyperRect{Min: slices.Clone(r.Min), Max: slices.Clone(r.Max)}
}

// Extend grows r so that it contains p.
func (r *HyperRect) Extend(p []float64) {
	for i, v := range p {
		if v < r.Min[i] {
			r.Min[i] = v
		}
		if v > r.Max[i] {
			r.Max[i] = v
		}
	}
}

// DistSq returns the squared distance from p to the closest point of r,
// which is 0 when p lies inside.
func (r *HyperRect) DistSq(p []float64) float64 {
	var sum float64
	for i, v := range p {
		if v < r.Min[i] {
			d := r.Min[i] - v
			sum += d * d
		} else if v > r.Max[i] {
			d := v - r.Max[i]
			sum += d * d
		}
	}
	return sum
}

// Contains reports whether p lies inside r, boundary included.
func (r *HyperRect) Contains(p []float64) bool {
	for i, v := range p {
		if v < r.Min[i] || v > r.Max[i] {
			return false
		}
	}
	return true
}

// ContainsOpen reports whether p lies strictly inside r.
func (r *HyperRect) ContainsOpen(p []float64) bool {
	for i, v := range p {
		if v <= r.Min[i] || v >= r.Max[i] {
			return false
		}
	}
	return true
}
