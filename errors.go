package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kdtree: k must be positive")

	// ErrInvalidRadius is returned for a negative or NaN search radius.
	ErrInvalidRadius = errors.New("kdtree: radius must be non-negative")

	// ErrInvalidCoordinate is returned when a point carries NaN, or when an
	// inserted or query point carries an infinite coordinate.
	ErrInvalidCoordinate = errors.New("kdtree: invalid coordinate")

	// ErrDestroyed is returned by every operation on a destroyed tree.
	ErrDestroyed = errors.New("kdtree: tree has been destroyed")
)

// ErrDimensionMismatch indicates a point or box of the wrong length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("kdtree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a tree configured with fewer than one axis.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("kdtree: invalid dimension: %d", e.Dimension)
}

// checkPoint validates a point that will be stored or searched around.
func (t *Tree[T]) checkPoint(p []float64) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if len(p) != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: len(p)}
	}
	if !allFinite(p) {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, p)
	}
	return nil
}

// checkBox validates the corners of a range query. Infinite corners are
// allowed so callers can leave an axis unbounded.
func (t *Tree[T]) checkBox(lo, hi []float64) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if len(lo) != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: len(lo)}
	}
	if len(hi) != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: len(hi)}
	}
	if anyNaN(lo) || anyNaN(hi) {
		return fmt.Errorf("%w: NaN in range bounds", ErrInvalidCoordinate)
	}
	return nil
}
