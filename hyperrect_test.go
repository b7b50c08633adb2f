package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHyperRect_FromPointIsDegenerate(t *testing.T) {
	p := []float64{1, -2, 3}
	r := newHyperRect(p)
	p[0] = 99

	assert.Equal(t, []float64{1, -2, 3}, r.Min)
	assert.Equal(t, []float64{1, -2, 3}, r.Max)
	assert.Equal(t, 3, r.Dim())
	assert.Equal(t, 0.0, r.DistSq([]float64{1, -2, 3}))
}

func TestHyperRect_Extend(t *testing.T) {
	r := newHyperRect([]float64{0, 0})
	r.Extend([]float64{2, -1})
	r.Extend([]float64{-3, 4})
	r.Extend([]float64{1, 1})

	assert.Equal(t, []float64{-3, -1}, r.Min)
	assert.Equal(t, []float64{2, 4}, r.Max)
}

func TestHyperRect_Clone(t *testing.T) {
	r := &HyperRect{Min: []float64{0, 0}, Max: []float64{1, 1}}
	c := r.Clone()
	c.Min[0] = -5
	c.Max[1] = 5

	assert.Equal(t, []float64{0, 0}, r.Min)
	assert.Equal(t, []float64{1, 1}, r.Max)
}

func TestHyperRect_DistSq(t *testing.T) {
	r := &HyperRect{Min: []float64{0, 0}, Max: []float64{2, 2}}
	tests := []struct {
		name string
		p    []float64
		want float64
	}{
		{"Inside", []float64{1, 1}, 0},
		{"OnEdge", []float64{2, 1}, 0},
		{"Left", []float64{-3, 1}, 9},
		{"Above", []float64{1, 5}, 9},
		{"Corner", []float64{3, -1}, 2},
		{"FarCorner", []float64{-1, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.DistSq(tt.p))
		})
	}
}

func TestHyperRect_Contains(t *testing.T) {
	r := &HyperRect{Min: []float64{0, 0}, Max: []float64{1, 1}}

	assert.True(t, r.Contains([]float64{0.5, 0.5}))
	assert.True(t, r.Contains([]float64{0, 1}))
	assert.False(t, r.Contains([]float64{1.01, 0.5}))

	assert.True(t, r.ContainsOpen([]float64{0.5, 0.5}))
	assert.False(t, r.ContainsOpen([]float64{0, 0.5}))
	assert.False(t, r.ContainsOpen([]float64{0.5, 1}))
}
