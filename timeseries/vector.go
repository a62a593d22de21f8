package timeseries

// vectorSeries wraps an ordered, non-overlapping entry sequence. The
// invariant is assumed, queries do not re-validate it.
type vectorSeries[V any] struct {
	entries []Entry[V]
}

// NewSeries builds a series from an already-sorted, non-overlapping
// entry sequence. The invariant is caller-enforced; violating it yields
// undefined query results, not a detected error. Use Builder to sort and
// validate unordered input. The slice is copied.
func NewSeries[V any](entries []Entry[V]) TimeSeries[V] {
	return makeSeries(append([]Entry[V]{}, entries...))
}

// makeSeries picks the series variant for an owned, sorted entry slice.
func makeSeries[V any](entries []Entry[V]) TimeSeries[V] {
	switch len(entries) {
	case 0:
		return Empty[V]()
	case 1:
		return entries[0]
	default:
		return vectorSeries[V]{entries: entries}
	}
}

// searchFloor returns the index of the greatest timestamp not after t in
// a sorted sequence of n timestamps, or false if t precedes all of them.
// The probe rounds up so the lower bound can advance even when the
// candidate range repeatedly shrinks toward its first element.
func searchFloor(n int, t int64, ts func(int) int64) (int, bool) {
	if n == 0 || t < ts(0) {
		return 0, false
	}

	lo, hi := 0, n-1

	for lo < hi {
		mid := lo + (hi-lo+1)/2

		if ts(mid) <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, true
}

// lastEntryAt returns the entry with the greatest timestamp not after t
// and its index, or false if t precedes every entry.
func lastEntryAt[V any](entries []Entry[V], t int64) (Entry[V], int, bool) {
	idx, ok := searchFloor(len(entries), t, func(i int) int64 {
		return entries[i].Timestamp
	})
	if !ok {
		return Entry[V]{}, 0, false
	}

	return entries[idx], idx, true
}

func (s vectorSeries[V]) At(t int64) (v V, ok bool) {
	e, _, found := lastEntryAt(s.entries, t)
	if !found {
		return
	}

	// The found entry may end before t when the sequence has a gap.
	return e.At(t)
}

func (s vectorSeries[V]) Defined(t int64) bool {
	_, ok := s.At(t)

	return ok
}

func (s vectorSeries[V]) Entries() []Entry[V] {
	return append([]Entry[V]{}, s.entries...)
}

func (s vectorSeries[V]) Head() (Entry[V], bool) {
	return s.entries[0], true
}

func (s vectorSeries[V]) Last() (Entry[V], bool) {
	return s.entries[len(s.entries)-1], true
}

func (s vectorSeries[V]) Size() int {
	return len(s.entries)
}

func (s vectorSeries[V]) Map(f func(V) V) TimeSeries[V] {
	entries := make([]Entry[V], len(s.entries))

	for i, e := range s.entries {
		entries[i] = e.MapEntry(f)
	}

	return vectorSeries[V]{entries: entries}
}

func (s vectorSeries[V]) TrimLeft(at int64) TimeSeries[V] {
	return makeSeries(trimEntriesLeft(s.entries, at))
}

func (s vectorSeries[V]) TrimRight(at int64) TimeSeries[V] {
	return makeSeries(trimEntriesRight(s.entries, at))
}

func (s vectorSeries[V]) Append(other TimeSeries[V]) TimeSeries[V] {
	return appendEntries(s.entries, other)
}

func (s vectorSeries[V]) Prepend(other TimeSeries[V]) TimeSeries[V] {
	return prependEntries(s.entries, other)
}

func (s vectorSeries[V]) isTimeSeries() {}

// trimEntriesLeft restricts a sorted sequence to times at or after t,
// splitting the boundary entry if t falls inside its domain. The result
// is a fresh slice.
func trimEntriesLeft[V any](entries []Entry[V], t int64) []Entry[V] {
	e, idx, found := lastEntryAt(entries, t)
	if !found {
		return append([]Entry[V]{}, entries...)
	}

	out := make([]Entry[V], 0, len(entries)-idx)

	if e.DefinedUntil() > t {
		boundary, _ := e.TrimEntryLeft(t)
		out = append(out, boundary)
	}

	return append(out, entries[idx+1:]...)
}

// trimEntriesRight restricts a sorted sequence to times strictly before
// t. The result is a fresh slice.
func trimEntriesRight[V any](entries []Entry[V], t int64) []Entry[V] {
	e, idx, found := lastEntryAt(entries, t)
	if !found {
		return nil
	}

	out := append([]Entry[V]{}, entries[:idx]...)

	if e.Timestamp < t {
		if e.DefinedUntil() <= t {
			out = append(out, e)
		} else {
			boundary, _ := e.TrimEntryRight(t)
			out = append(out, boundary)
		}
	}

	return out
}

// appendEntries trims the receiver sequence to end strictly before
// other's first timestamp and concatenates other behind it.
func appendEntries[V any](entries []Entry[V], other TimeSeries[V]) TimeSeries[V] {
	head, ok := other.Head()
	if !ok {
		return makeSeries(append([]Entry[V]{}, entries...))
	}

	return makeSeries(append(trimEntriesRight(entries, head.Timestamp), other.Entries()...))
}

// prependEntries trims the receiver sequence to start strictly after
// other's last DefinedUntil and concatenates other in front of it.
func prependEntries[V any](entries []Entry[V], other TimeSeries[V]) TimeSeries[V] {
	last, ok := other.Last()
	if !ok {
		return makeSeries(append([]Entry[V]{}, entries...))
	}

	return makeSeries(append(other.Entries(), trimEntriesLeft(entries, last.DefinedUntil())...))
}
