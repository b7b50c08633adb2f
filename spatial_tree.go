package kdtree

// Searcher is the read interface of a Tree, used by the batch query
// helpers. Implementations must allow concurrent queries.
type Searcher[T any] interface {
	// Dim returns the number of coordinates per point.
	Dim() int

	// Len returns the number of stored points, duplicates included.
	Len() int

	// Nearest returns the single closest stored point plus its duplicates.
	Nearest(point []float64) (*ResultSet[T], error)

	// KNearest returns up to k closest stored points, ascending by distance.
	KNearest(point []float64, k int) (*ResultSet[T], error)

	// WithinRadius returns every stored point within radius, ascending.
	WithinRadius(point []float64, radius float64) (*ResultSet[T], error)

	// InBounds returns every stored point inside the box [lo, hi].
	InBounds(lo, hi []float64, inclusive bool) (*ResultSet[T], error)
}

var _ Searcher[struct{}] = (*Tree[struct{}])(nil)
