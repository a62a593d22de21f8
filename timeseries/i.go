// Package timeseries represents piecewise-constant functions of discrete
// time as ordered collections of value-bearing intervals, and provides
// queries, trims, operator-generic merges and sliding-window aggregates
// over them.
package timeseries

// TimeSeries is the capability set shared by every series variant: the
// empty sentinel, a lone Entry, the sequence-backed series and the
// map-backed series. The set is closed, external implementations are not
// supported.
type TimeSeries[V any] interface {
	// At returns the value defined at t. The second return value is false
	// if no entry covers t.
	At(t int64) (V, bool)
	Defined(t int64) bool

	Entries() []Entry[V]
	Head() (Entry[V], bool)
	Last() (Entry[V], bool)
	Size() int

	Map(f func(V) V) TimeSeries[V]
	TrimLeft(at int64) TimeSeries[V]
	TrimRight(at int64) TimeSeries[V]
	Append(other TimeSeries[V]) TimeSeries[V]
	Prepend(other TimeSeries[V]) TimeSeries[V]

	isTimeSeries()
}

// Arithmetic is the numeric capability the aggregation and arithmetic
// helpers require from the value type. Callers pass it explicitly per
// call.
type Arithmetic[V any] interface {
	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Zero() V
}

// MergeOp combines the values of two sides at an instant. A nil pointer
// means the side is not defined there; returning nil means the result is
// not defined there either.
type MergeOp[L, R, O any] func(left *L, right *R) *O
