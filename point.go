package kdtree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any numeric type a caller may hold coordinates in.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToPoint converts a sequence of host numbers into point coordinates.
// The result is a fresh slice; xs is not retained.
func ToPoint[N Number](xs []N) []float64 {
	p := make([]float64, len(xs))
	for i, x := range xs {
		p[i] = float64(x)
	}
	return p
}

// distSq returns the squared Euclidean distance between a and b.
func distSq(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// samePosition reports whether a and b are equal on every axis.
func samePosition(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allFinite(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func anyNaN(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
