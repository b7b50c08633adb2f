package kdtree

import (
	"fmt"
	"slices"
	"time"
)

// node is one stored point. left and right own the branch structure; next
// chains further payloads at exactly the same position. Chain members never
// have children of their own.
type node[T any] struct {
	pos   []float64
	axis  int
	data  T
	left  *node[T] // pos[axis] < parent
	right *node[T] // pos[axis] >= parent, full vector differs
	next  *node[T] // same position
}

// Tree is a dynamic KD-tree over points of a fixed dimension, each carrying
// a payload of type T.
//
// Insertion descends from the root choosing the left child when the new
// coordinate on the node's split axis is smaller and the right child
// otherwise. A point equal to a node on every axis joins that node's
// duplicate chain instead of creating a new branch. The tree also tracks the
// bounding box of everything inserted, which the distance queries use for
// pruning.
type Tree[T any] struct {
	dim        int
	root       *node[T]
	rect       *HyperRect // nil until the first insert
	depth      int
	n          int
	destroyed  bool
	destructor func(T)
	logger     *Logger
	metrics    MetricsCollector
}

// New returns an empty tree for points with dim coordinates.
func New[T any](dim int) (*Tree[T], error) {
	return NewWithConfig(DefaultConfig[T](dim))
}

// NewWithConfig returns an empty tree configured by cfg.
func NewWithConfig[T any](cfg Config[T]) (*Tree[T], error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Tree[T]{
		dim:        cfg.Dimension,
		destructor: cfg.Destructor,
		logger:     cfg.Logger.WithDimension(cfg.Dimension),
		metrics:    cfg.Metrics,
	}, nil
}

// Insert stores data at point. point must have Dim() finite coordinates;
// it is copied, so the caller may reuse the slice.
func (t *Tree[T]) Insert(point []float64, data T) error {
	start := time.Now()
	err := t.insert(point, data)
	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(t.n, err)
	return err
}

func (t *Tree[T]) insert(point []float64, data T) error {
	if err := t.checkPoint(point); err != nil {
		return err
	}
	pos := slices.Clone(point)

	link := &t.root
	axis := 0
	depth := 0
	for *link != nil {
		depth++
		cur := *link
		d := cur.axis
		axis = (d + 1) % t.dim

		switch {
		case pos[d] < cur.pos[d]:
			link = &cur.left
		case pos[d] > cur.pos[d]:
			link = &cur.right
		case samePosition(pos, cur.pos):
			for cur.next != nil {
				cur = cur.next
			}
			link = &cur.next
		default:
			// Tied on the split axis only.
			link = &cur.right
		}
	}
	*link = &node[T]{pos: pos, axis: axis, data: data}

	if depth+1 > t.depth {
		t.depth = depth + 1
	}
	if t.rect == nil {
		t.rect = newHyperRect(pos)
	} else {
		t.rect.Extend(pos)
	}
	t.n++
	return nil
}

// InsertFlat inserts len(payloads) points read from data, a flat row-major
// array with Dim() columns, in row order. Every row is validated before the
// first insert, so a rejected batch leaves the tree unchanged.
func (t *Tree[T]) InsertFlat(data []float64, payloads []T) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if len(data) != len(payloads)*t.dim {
		// Expected counts values: one row of Dim() values per payload.
		return fmt.Errorf("kdtree: %d payloads for %d values: %w", len(payloads), len(data),
			&ErrDimensionMismatch{Expected: len(payloads) * t.dim, Actual: len(data)})
	}
	for i := range payloads {
		if err := t.checkPoint(data[i*t.dim : (i+1)*t.dim]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	for i, p := range payloads {
		if err := t.Insert(data[i*t.dim:(i+1)*t.dim], p); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// SetDestructor registers fn to be called once per payload when the tree is
// cleared or destroyed. A nil fn disables the callback.
func (t *Tree[T]) SetDestructor(fn func(T)) {
	t.destructor = fn
}

// Clear removes every point. The destructor, if any, sees each payload once.
// Result sets obtained earlier stay readable.
func (t *Tree[T]) Clear() {
	removed := t.clear()
	t.metrics.RecordClear(removed)
	t.logger.LogClear("clear", removed)
}

// Destroy clears the tree and makes every later call fail with ErrDestroyed.
// Destroying twice is a no-op.
func (t *Tree[T]) Destroy() {
	if t.destroyed {
		return
	}
	removed := t.clear()
	t.destroyed = true
	t.metrics.RecordClear(removed)
	t.logger.LogClear("destroy", removed)
}

// clear walks the tree with an explicit stack, since an unbalanced tree can
// be as deep as it is large.
func (t *Tree[T]) clear() int {
	removed := 0
	if t.root != nil {
		stack := make([]*node[T], 0, t.depth+1)
		stack = append(stack, t.root)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if cur.left != nil {
				stack = append(stack, cur.left)
			}
			if cur.next != nil {
				stack = append(stack, cur.next)
			}
			if cur.right != nil {
				stack = append(stack, cur.right)
			}
			if t.destructor != nil {
				t.destructor(cur.data)
			}
			removed++
		}
	}
	t.root = nil
	t.rect = nil
	t.depth = 0
	t.n = 0
	return removed
}

// Len returns the number of stored points, duplicates included.
func (t *Tree[T]) Len() int { return t.n }

// Dim returns the dimensionality fixed at construction.
func (t *Tree[T]) Dim() int { return t.dim }

// Depth returns the deepest insertion path seen since the last clear.
func (t *Tree[T]) Depth() int { return t.depth }

// Bounds returns a copy of the box enclosing every inserted point.
// ok is false for an empty tree.
func (t *Tree[T]) Bounds() (rect *HyperRect, ok bool) {
	if t.rect == nil {
		return nil, false
	}
	return t.rect.Clone(), true
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("KD-Tree | %d dimensional | %d elements | %d depth", t.dim, t.n, t.depth)
}
