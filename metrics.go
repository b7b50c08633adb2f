package kdtree

import (
	"sync/atomic"
	"time"
)

// QueryKind identifies the query that produced a metric or log record.
type QueryKind uint8

const (
	QueryNearest QueryKind = iota
	QueryKNearest
	QueryWithinRadius
	QueryInBounds
	numQueryKinds
)

func (k QueryKind) String() string {
	switch k {
	case QueryNearest:
		return "nearest"
	case QueryKNearest:
		return "k_nearest"
	case QueryWithinRadius:
		return "within_radius"
	case QueryInBounds:
		return "in_bounds"
	default:
		return "unknown"
	}
}

// MetricsCollector receives operational metrics from a Tree.
// Implementations must be safe for concurrent use, since queries may run in
// parallel.
type MetricsCollector interface {
	// RecordInsert is called after each insert. err is nil on success.
	RecordInsert(duration time.Duration, err error)

	// RecordQuery is called after each query. results is the raw result
	// count before duplicate expansion.
	RecordQuery(kind QueryKind, results int, duration time.Duration, err error)

	// RecordClear is called after Clear or Destroy with the number of nodes
	// released, duplicates included.
	RecordClear(removed int)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)                {}
func (NoopMetricsCollector) RecordQuery(QueryKind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClear(int)                                  {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
	ClearCount       atomic.Int64
	ClearedNodes     atomic.Int64

	byKind [numQueryKinds]atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind QueryKind, results int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if kind < numQueryKinds {
		b.byKind[kind].Add(1)
	}
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryResults.Add(int64(results))
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(removed int) {
	b.ClearCount.Add(1)
	b.ClearedNodes.Add(int64(removed))
}

// Queries returns how many queries of the given kind were recorded.
func (b *BasicMetricsCollector) Queries(kind QueryKind) int64 {
	if kind >= numQueryKinds {
		return 0
	}
	return b.byKind[kind].Load()
}

// MetricsStats is a point-in-time copy of a BasicMetricsCollector.
type MetricsStats struct {
	InsertCount   int64
	InsertErrors  int64
	AvgInsertTime time.Duration
	QueryCount    int64
	QueryErrors   int64
	QueryResults  int64
	AvgQueryTime  time.Duration
	ClearCount    int64
	ClearedNodes  int64
}

// GetStats returns a snapshot of the current counters.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		InsertCount:  b.InsertCount.Load(),
		InsertErrors: b.InsertErrors.Load(),
		QueryCount:   b.QueryCount.Load(),
		QueryErrors:  b.QueryErrors.Load(),
		QueryResults: b.QueryResults.Load(),
		ClearCount:   b.ClearCount.Load(),
		ClearedNodes: b.ClearedNodes.Load(),
	}
	if s.InsertCount > 0 {
		s.AvgInsertTime = time.Duration(b.InsertTotalNanos.Load() / s.InsertCount)
	}
	if s.QueryCount > 0 {
		s.AvgQueryTime = time.Duration(b.QueryTotalNanos.Load() / s.QueryCount)
	}
	return s
}
