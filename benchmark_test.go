package kdtree

import (
	"context"
	"math/rand"
	"testing"
)

func generateFlatData(n, dims int) []float64 {
	return generateFlatDataSeed(n, dims, 42)
}

func generateFlatDataSeed(n, dims int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	return data
}

// --- Insert ---

func benchInsert(b *testing.B, n, dims int) {
	b.Helper()
	data := generateFlatData(n, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree, _ := New[int](dims)
		for j := 0; j < n; j++ {
			_ = tree.Insert(data[j*dims:(j+1)*dims], j)
		}
	}
}

func BenchmarkInsert_1000_2D(b *testing.B)  { benchInsert(b, 1000, 2) }
func BenchmarkInsert_10000_2D(b *testing.B) { benchInsert(b, 10000, 2) }
func BenchmarkInsert_10000_8D(b *testing.B) { benchInsert(b, 10000, 8) }

// --- Queries ---

func benchTree(b *testing.B, n, dims int) (*Tree[int], []float64) {
	b.Helper()
	tree := buildTree(b, generateFlatData(n, dims), dims)
	return tree, generateFlatDataSeed(256, dims, 7)
}

func benchNearest(b *testing.B, n, dims int) {
	tree, queries := benchTree(b, n, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := i % 256
		rs, _ := tree.Nearest(queries[q*dims : (q+1)*dims])
		rs.Close()
	}
}

func BenchmarkNearest_10000_2D(b *testing.B) { benchNearest(b, 10000, 2) }
func BenchmarkNearest_10000_8D(b *testing.B) { benchNearest(b, 10000, 8) }

func benchKNearest(b *testing.B, n, dims, k int) {
	tree, queries := benchTree(b, n, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := i % 256
		rs, _ := tree.KNearest(queries[q*dims:(q+1)*dims], k)
		_ = rs.Len()
	}
}

func BenchmarkKNearest_10000_2D_k10(b *testing.B)  { benchKNearest(b, 10000, 2, 10) }
func BenchmarkKNearest_10000_2D_k100(b *testing.B) { benchKNearest(b, 10000, 2, 100) }

func benchWithinRadius(b *testing.B, n, dims int, radius float64) {
	tree, queries := benchTree(b, n, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := i % 256
		rs, _ := tree.WithinRadius(queries[q*dims:(q+1)*dims], radius)
		_ = rs.Len()
	}
}

func BenchmarkWithinRadius_10000_2D_r2(b *testing.B)  { benchWithinRadius(b, 10000, 2, 2) }
func BenchmarkWithinRadius_10000_2D_r10(b *testing.B) { benchWithinRadius(b, 10000, 2, 10) }

func BenchmarkInBounds_10000_3D(b *testing.B) {
	tree, _ := benchTree(b, 10000, 3)
	lo, hi := []float64{20, 20, 20}, []float64{40, 40, 40}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs, _ := tree.InBounds(lo, hi, true)
		_ = rs.Len()
	}
}

// --- Batch ---

func benchQueryKNN(b *testing.B, workers int) {
	tree, queries := benchTree(b, 20000, 3)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = QueryKNN[int](ctx, tree, queries, 256, 10, workers)
	}
}

func BenchmarkQueryKNN_Sequential(b *testing.B) { benchQueryKNN(b, 1) }
func BenchmarkQueryKNN_4Workers(b *testing.B)   { benchQueryKNN(b, 4) }
