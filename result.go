package kdtree

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"sort"
)

// Entry is one query hit as seen by a caller.
type Entry[T any] struct {
	Data T

	// Position is a copy of the stored coordinates.
	Position []float64

	// DistSq is the squared distance to the query point. It is only
	// meaningful when HasDist is true; range queries have no query point.
	DistSq  float64
	HasDist bool
}

type hit[T any] struct {
	node   *node[T]
	distSq float64
}

// ResultSet is the outcome of a query: an ordered list of hits plus an
// iteration cursor.
//
// Queries only reach the head of a duplicate chain. The first time a result
// set is read, each head is followed by its chain members, which share its
// position and distance. A bounded set (from KNearest) is truncated back to
// its capacity after that expansion.
//
// A ResultSet is owned by the caller and is not safe for concurrent use.
type ResultSet[T any] struct {
	hits     []hit[T]
	cursor   int
	expanded bool
	capacity int // 0 means unbounded
	hasDist  bool
}

func newResultSet[T any](capacity int, hasDist bool) *ResultSet[T] {
	return &ResultSet[T]{capacity: capacity, hasDist: hasDist}
}

// push appends a hit in traversal order.
func (rs *ResultSet[T]) push(n *node[T], d float64) {
	rs.hits = append(rs.hits, hit[T]{node: n, distSq: d})
}

// insertSorted inserts a hit after every hit with distance <= d.
func (rs *ResultSet[T]) insertSorted(n *node[T], d float64) {
	i := sort.Search(len(rs.hits), func(i int) bool { return rs.hits[i].distSq > d })
	rs.hits = slices.Insert(rs.hits, i, hit[T]{node: n, distSq: d})
}

// sortByDist orders hits by ascending distance. Equal distances keep their
// push order.
func (rs *ResultSet[T]) sortByDist() {
	slices.SortStableFunc(rs.hits, func(a, b hit[T]) int {
		return cmp.Compare(a.distSq, b.distSq)
	})
}

// offer adds a candidate to a bounded set. Once the set is full the
// candidate must be strictly closer than the current worst hit, which it
// then evicts.
func (rs *ResultSet[T]) offer(n *node[T], d float64) {
	if len(rs.hits) < rs.capacity {
		rs.insertSorted(n, d)
		return
	}
	last := len(rs.hits) - 1
	if d < rs.hits[last].distSq {
		rs.hits[last] = hit[T]{}
		rs.hits = rs.hits[:last]
		rs.insertSorted(n, d)
	}
}

// worst returns the pruning threshold of a bounded set: the largest held
// distance once full, +Inf before that.
func (rs *ResultSet[T]) worst() float64 {
	if len(rs.hits) < rs.capacity {
		return math.Inf(1)
	}
	return rs.hits[len(rs.hits)-1].distSq
}

// expand folds duplicate chains into the hit list. It runs at most once.
func (rs *ResultSet[T]) expand() {
	if rs.expanded {
		return
	}
	rs.expanded = true

	extra := 0
	for _, h := range rs.hits {
		for c := h.node.next; c != nil; c = c.next {
			extra++
		}
	}
	if extra == 0 {
		return
	}

	out := make([]hit[T], 0, len(rs.hits)+extra)
	for _, h := range rs.hits {
		out = append(out, h)
		for c := h.node.next; c != nil; c = c.next {
			out = append(out, hit[T]{node: c, distSq: h.distSq})
		}
	}
	if rs.capacity > 0 && len(out) > rs.capacity {
		clear(out[rs.capacity:])
		out = out[:rs.capacity]
	}
	rs.hits = out
}

// Rewind expands duplicates if that has not happened yet and moves the
// cursor to the first entry.
func (rs *ResultSet[T]) Rewind() {
	rs.expand()
	rs.cursor = 0
}

// End reports whether the cursor is past the last entry.
func (rs *ResultSet[T]) End() bool {
	rs.expand()
	return rs.cursor >= len(rs.hits)
}

// Next advances the cursor and reports whether it still points at an entry.
func (rs *ResultSet[T]) Next() bool {
	if !rs.End() {
		rs.cursor++
	}
	return !rs.End()
}

// Current returns the entry under the cursor. ok is false at the end.
func (rs *ResultSet[T]) Current() (e Entry[T], ok bool) {
	if rs.End() {
		return e, false
	}
	return rs.entry(rs.hits[rs.cursor]), true
}

func (rs *ResultSet[T]) entry(h hit[T]) Entry[T] {
	e := Entry[T]{
		Data:     h.node.data,
		Position: slices.Clone(h.node.pos),
		HasDist:  rs.hasDist,
	}
	if rs.hasDist {
		e.DistSq = h.distSq
	}
	return e
}

// Len returns the number of entries, duplicates included.
func (rs *ResultSet[T]) Len() int {
	rs.expand()
	return len(rs.hits)
}

// Capacity returns the bound of a k-nearest result, or 0 if unbounded.
func (rs *ResultSet[T]) Capacity() int { return rs.capacity }

// Entries returns every entry in order without moving the cursor.
func (rs *ResultSet[T]) Entries() []Entry[T] {
	rs.expand()
	out := make([]Entry[T], len(rs.hits))
	for i, h := range rs.hits {
		out[i] = rs.entry(h)
	}
	return out
}

// All iterates over every entry in order without moving the cursor.
func (rs *ResultSet[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		rs.expand()
		for _, h := range rs.hits {
			if !yield(rs.entry(h)) {
				return
			}
		}
	}
}

// Close drops every entry. The set reads as empty afterwards.
func (rs *ResultSet[T]) Close() {
	clear(rs.hits)
	rs.hits = nil
	rs.cursor = 0
	rs.expanded = true
}
