package timeseries

import (
	"github.com/sgostarter/i/commerr"
)

// An Entry is one constant value valid over the half-open interval
// [Timestamp, Timestamp+Validity). Entries are immutable, every
// transformation returns a new value.
type Entry[V any] struct {
	Timestamp int64
	Value     V
	Validity  int64
}

// NewEntry builds an entry, rejecting non-positive validities.
func NewEntry[V any](timestamp int64, value V, validity int64) (Entry[V], error) {
	if validity < 1 {
		return Entry[V]{}, commerr.ErrInvalidArgument
	}

	return Entry[V]{
		Timestamp: timestamp,
		Value:     value,
		Validity:  validity,
	}, nil
}

// DefinedUntil returns the exclusive upper bound of the entry's domain.
func (e Entry[V]) DefinedUntil() int64 {
	return e.Timestamp + e.Validity
}

func (e Entry[V]) At(t int64) (v V, ok bool) {
	if t < e.Timestamp || t >= e.DefinedUntil() {
		return
	}

	return e.Value, true
}

func (e Entry[V]) Defined(t int64) bool {
	_, ok := e.At(t)

	return ok
}

// Overlaps reports whether the two domains intersect. Mere contiguity
// does not count.
func (e Entry[V]) Overlaps(other Entry[V]) bool {
	return e.Timestamp < other.DefinedUntil() && other.Timestamp < e.DefinedUntil()
}

// MapEntry returns a new entry with the value mapped and the interval
// unchanged.
func (e Entry[V]) MapEntry(f func(V) V) Entry[V] {
	return Entry[V]{
		Timestamp: e.Timestamp,
		Value:     f(e.Value),
		Validity:  e.Validity,
	}
}

// ToValue strips the start time off the entry.
func (e Entry[V]) ToValue() Value[V] {
	return Value[V]{
		Value:    e.Value,
		Validity: e.Validity,
	}
}

// TrimEntryRight restricts the entry to times strictly before at. The
// restriction must not be empty: at must lie after the entry's
// timestamp. Bounds at or beyond DefinedUntil leave the entry unchanged.
func (e Entry[V]) TrimEntryRight(at int64) (Entry[V], error) {
	if at <= e.Timestamp {
		return Entry[V]{}, commerr.ErrInvalidArgument
	}

	if at >= e.DefinedUntil() {
		return e, nil
	}

	return Entry[V]{
		Timestamp: e.Timestamp,
		Value:     e.Value,
		Validity:  at - e.Timestamp,
	}, nil
}

// TrimEntryLeft restricts the entry to times at or after at. The
// restriction must not be empty: at must lie before DefinedUntil. Bounds
// at or before the entry's timestamp leave the entry unchanged.
func (e Entry[V]) TrimEntryLeft(at int64) (Entry[V], error) {
	if at >= e.DefinedUntil() {
		return Entry[V]{}, commerr.ErrInvalidArgument
	}

	if at <= e.Timestamp {
		return e, nil
	}

	return Entry[V]{
		Timestamp: at,
		Value:     e.Value,
		Validity:  e.DefinedUntil() - at,
	}, nil
}

// TrimEntryLeftNRight restricts the entry to [l, r). The restriction
// must not be empty; [l, r) containing the whole domain leaves the entry
// unchanged.
func (e Entry[V]) TrimEntryLeftNRight(l, r int64) (Entry[V], error) {
	if l >= e.DefinedUntil() || r <= e.Timestamp || l >= r {
		return Entry[V]{}, commerr.ErrInvalidArgument
	}

	trimmed, err := e.TrimEntryLeft(l)
	if err != nil {
		return Entry[V]{}, err
	}

	return trimmed.TrimEntryRight(r)
}

//
// Entry doubles as the single-entry time series.
//

func (e Entry[V]) Entries() []Entry[V] {
	return []Entry[V]{e}
}

func (e Entry[V]) Head() (Entry[V], bool) {
	return e, true
}

func (e Entry[V]) Last() (Entry[V], bool) {
	return e, true
}

func (e Entry[V]) Size() int {
	return 1
}

func (e Entry[V]) Map(f func(V) V) TimeSeries[V] {
	return e.MapEntry(f)
}

// TrimRight restricts the entry to times strictly before at, as a
// series. An empty restriction yields the empty series.
func (e Entry[V]) TrimRight(at int64) TimeSeries[V] {
	if at <= e.Timestamp {
		return Empty[V]()
	}

	trimmed, _ := e.TrimEntryRight(at)

	return trimmed
}

// TrimLeft restricts the entry to times at or after at, as a series. An
// empty restriction yields the empty series.
func (e Entry[V]) TrimLeft(at int64) TimeSeries[V] {
	if at >= e.DefinedUntil() {
		return Empty[V]()
	}

	trimmed, _ := e.TrimEntryLeft(at)

	return trimmed
}

func (e Entry[V]) Append(other TimeSeries[V]) TimeSeries[V] {
	return appendEntries(e.Entries(), other)
}

func (e Entry[V]) Prepend(other TimeSeries[V]) TimeSeries[V] {
	return prependEntries(e.Entries(), other)
}

func (e Entry[V]) isTimeSeries() {}

// A Value is an entry without its start time. At key k it covers the
// half-open interval [k, k+Validity), the same convention entries use.
type Value[V any] struct {
	Value    V
	Validity int64
}

// ValidAt reports whether the value, anchored at key, covers at.
func (v Value[V]) ValidAt(key, at int64) bool {
	return key <= at && at < key+v.Validity
}

// EntryAt anchors the value at timestamp.
func (v Value[V]) EntryAt(timestamp int64) Entry[V] {
	return Entry[V]{
		Timestamp: timestamp,
		Value:     v.Value,
		Validity:  v.Validity,
	}
}
