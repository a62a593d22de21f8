package timeseries

import (
	"sort"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Builder collects entries in any order and assembles them into the
// fitting series variant. It is the only constructor that sorts and
// validates; the raw constructors trust their input.
type Builder[V any] struct {
	logger l.Wrapper

	entries []Entry[V]
}

func NewBuilder[V any](logger l.Wrapper) *Builder[V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "timeSeriesBuilder"))

	return &Builder[V]{
		logger: logger,
	}
}

func (impl *Builder[V]) Add(timestamp int64, value V, validity int64) *Builder[V] {
	impl.entries = append(impl.entries, Entry[V]{
		Timestamp: timestamp,
		Value:     value,
		Validity:  validity,
	})

	return impl
}

func (impl *Builder[V]) AddEntry(e Entry[V]) *Builder[V] {
	impl.entries = append(impl.entries, e)

	return impl
}

// Result sorts the collected entries and returns the series, rejecting
// non-positive validities and overlapping domains.
func (impl *Builder[V]) Result() (TimeSeries[V], error) {
	entries, err := impl.sorted()
	if err != nil {
		return nil, err
	}

	return makeSeries(entries), nil
}

// ResultCompressed behaves like Result but fuses adjacent contiguous
// entries whose values compare equal under eq.
func (impl *Builder[V]) ResultCompressed(eq func(a, b V) bool) (TimeSeries[V], error) {
	entries, err := impl.sorted()
	if err != nil {
		return nil, err
	}

	if len(entries) < 2 {
		return makeSeries(entries), nil
	}

	compressed := entries[:1]

	for _, e := range entries[1:] {
		last := &compressed[len(compressed)-1]

		if last.DefinedUntil() == e.Timestamp && eq(last.Value, e.Value) {
			last.Validity += e.Validity

			continue
		}

		compressed = append(compressed, e)
	}

	return makeSeries(compressed), nil
}

func (impl *Builder[V]) sorted() ([]Entry[V], error) {
	entries := append([]Entry[V]{}, impl.entries...)

	for _, e := range entries {
		if e.Validity < 1 {
			impl.logger.WithFields(l.StringField("timestamp", cast.ToString(e.Timestamp))).
				Error("builder: non-positive validity")

			return nil, commerr.ErrInvalidArgument
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})

	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp < entries[i-1].DefinedUntil() {
			impl.logger.WithFields(l.StringField("timestamp", cast.ToString(entries[i].Timestamp))).
				Error("builder: overlapping entries")

			return nil, commerr.ErrInvalidArgument
		}
	}

	return entries, nil
}
