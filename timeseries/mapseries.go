package timeseries

import (
	"sort"
)

// mapSeries keys values by their start time and keeps a sorted key index
// next to the map. Non-overlap of the anchored values is caller-enforced,
// like for the sequence-backed variant.
type mapSeries[V any] struct {
	keys []int64
	m    map[int64]Value[V]
}

// NewMapSeries builds a series from timestamp-keyed values. The map is
// copied; anchored values must not overlap.
func NewMapSeries[V any](values map[int64]Value[V]) TimeSeries[V] {
	if len(values) == 0 {
		return Empty[V]()
	}

	keys := make([]int64, 0, len(values))
	m := make(map[int64]Value[V], len(values))

	for k, v := range values {
		keys = append(keys, k)
		m[k] = v
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if len(keys) == 1 {
		return m[keys[0]].EntryAt(keys[0])
	}

	return mapSeries[V]{keys: keys, m: m}
}

func (s mapSeries[V]) At(t int64) (v V, ok bool) {
	idx, found := searchFloor(len(s.keys), t, func(i int) int64 {
		return s.keys[i]
	})
	if !found {
		return
	}

	key := s.keys[idx]
	if val := s.m[key]; val.ValidAt(key, t) {
		return val.Value, true
	}

	return
}

func (s mapSeries[V]) Defined(t int64) bool {
	_, ok := s.At(t)

	return ok
}

func (s mapSeries[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], len(s.keys))

	for i, k := range s.keys {
		entries[i] = s.m[k].EntryAt(k)
	}

	return entries
}

func (s mapSeries[V]) Head() (Entry[V], bool) {
	k := s.keys[0]

	return s.m[k].EntryAt(k), true
}

func (s mapSeries[V]) Last() (Entry[V], bool) {
	k := s.keys[len(s.keys)-1]

	return s.m[k].EntryAt(k), true
}

func (s mapSeries[V]) Size() int {
	return len(s.keys)
}

func (s mapSeries[V]) Map(f func(V) V) TimeSeries[V] {
	m := make(map[int64]Value[V], len(s.m))

	for k, v := range s.m {
		m[k] = Value[V]{Value: f(v.Value), Validity: v.Validity}
	}

	return mapSeries[V]{keys: s.keys, m: m}
}

func (s mapSeries[V]) TrimLeft(at int64) TimeSeries[V] {
	return makeSeries(trimEntriesLeft(s.Entries(), at))
}

func (s mapSeries[V]) TrimRight(at int64) TimeSeries[V] {
	return makeSeries(trimEntriesRight(s.Entries(), at))
}

func (s mapSeries[V]) Append(other TimeSeries[V]) TimeSeries[V] {
	return appendEntries(s.Entries(), other)
}

func (s mapSeries[V]) Prepend(other TimeSeries[V]) TimeSeries[V] {
	return prependEntries(s.Entries(), other)
}

func (s mapSeries[V]) isTimeSeries() {}
