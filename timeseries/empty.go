package timeseries

// emptySeries answers undefined to every query and is a no-op for every
// transform.
type emptySeries[V any] struct{}

// Empty returns the empty time series.
func Empty[V any]() TimeSeries[V] {
	return emptySeries[V]{}
}

func (emptySeries[V]) At(_ int64) (v V, ok bool) {
	return
}

func (emptySeries[V]) Defined(_ int64) bool {
	return false
}

func (emptySeries[V]) Entries() []Entry[V] {
	return nil
}

func (emptySeries[V]) Head() (e Entry[V], ok bool) {
	return
}

func (emptySeries[V]) Last() (e Entry[V], ok bool) {
	return
}

func (emptySeries[V]) Size() int {
	return 0
}

func (s emptySeries[V]) Map(_ func(V) V) TimeSeries[V] {
	return s
}

func (s emptySeries[V]) TrimLeft(_ int64) TimeSeries[V] {
	return s
}

func (s emptySeries[V]) TrimRight(_ int64) TimeSeries[V] {
	return s
}

func (emptySeries[V]) Append(other TimeSeries[V]) TimeSeries[V] {
	return other
}

func (emptySeries[V]) Prepend(other TimeSeries[V]) TimeSeries[V] {
	return other
}

func (emptySeries[V]) isTimeSeries() {}
