package timeseries

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fe(ts int64, v float64, validity int64) Entry[float64] {
	return Entry[float64]{Timestamp: ts, Value: v, Validity: validity}
}

func ie(ts, v, validity int64) Entry[int64] {
	return Entry[int64]{Timestamp: ts, Value: v, Validity: validity}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry[int64](10, 42, 5)
	assert.Nil(t, err)
	assert.EqualValues(t, ie(10, 42, 5), e)

	_, err = NewEntry[int64](10, 42, 0)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewEntry[int64](10, 42, -1)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestEntryAt(t *testing.T) {
	e := ie(10, 42, 5)

	_, ok := e.At(9)
	assert.False(t, ok)

	for at := int64(10); at < 15; at++ {
		v, ok := e.At(at)
		assert.True(t, ok)
		assert.EqualValues(t, 42, v)
	}

	_, ok = e.At(15)
	assert.False(t, ok)

	assert.EqualValues(t, 15, e.DefinedUntil())
	assert.True(t, e.Defined(10))
	assert.False(t, e.Defined(15))
}

func TestEntryTrimRight(t *testing.T) {
	e := ie(10, 42, 5)

	assert.EqualValues(t, e, e.TrimRight(e.DefinedUntil()))
	assert.EqualValues(t, 0, e.TrimRight(e.Timestamp).Size())
	assert.EqualValues(t, 0, e.TrimRight(e.Timestamp-1).Size())
	assert.EqualValues(t, ie(10, 42, 2), e.TrimRight(12))
}

func TestEntryTrimLeft(t *testing.T) {
	e := ie(10, 42, 5)

	assert.EqualValues(t, e, e.TrimLeft(e.Timestamp))
	assert.EqualValues(t, 0, e.TrimLeft(e.DefinedUntil()).Size())
	assert.EqualValues(t, ie(12, 42, 3), e.TrimLeft(12))
}

func TestTrimEntry(t *testing.T) {
	e := ie(10, 42, 5)

	trimmed, err := e.TrimEntryRight(12)
	assert.Nil(t, err)
	assert.EqualValues(t, ie(10, 42, 2), trimmed)

	// Bounds beyond the domain on the non-trimmed side are no-ops.
	trimmed, err = e.TrimEntryRight(100)
	assert.Nil(t, err)
	assert.EqualValues(t, e, trimmed)

	_, err = e.TrimEntryRight(10)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	trimmed, err = e.TrimEntryLeft(12)
	assert.Nil(t, err)
	assert.EqualValues(t, ie(12, 42, 3), trimmed)

	trimmed, err = e.TrimEntryLeft(0)
	assert.Nil(t, err)
	assert.EqualValues(t, e, trimmed)

	_, err = e.TrimEntryLeft(15)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestTrimEntryLeftNRight(t *testing.T) {
	e := ie(10, 42, 10)

	trimmed, err := e.TrimEntryLeftNRight(12, 17)
	assert.Nil(t, err)
	assert.EqualValues(t, ie(12, 42, 5), trimmed)

	// [l, r) containing the domain leaves the entry unchanged.
	trimmed, err = e.TrimEntryLeftNRight(0, 100)
	assert.Nil(t, err)
	assert.EqualValues(t, e, trimmed)

	_, err = e.TrimEntryLeftNRight(20, 25)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = e.TrimEntryLeftNRight(0, 10)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = e.TrimEntryLeftNRight(14, 12)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestEntryOverlaps(t *testing.T) {
	e := ie(10, 1, 5)

	assert.True(t, e.Overlaps(ie(14, 2, 5)))
	assert.True(t, e.Overlaps(ie(5, 2, 6)))
	assert.True(t, e.Overlaps(ie(11, 2, 1)))

	// Contiguity is not an overlap.
	assert.False(t, e.Overlaps(ie(15, 2, 5)))
	assert.False(t, e.Overlaps(ie(5, 2, 5)))
	assert.False(t, e.Overlaps(ie(20, 2, 5)))
}

func TestEntryMap(t *testing.T) {
	e := ie(10, 21, 5)

	mapped := e.MapEntry(func(v int64) int64 { return v * 2 })
	assert.EqualValues(t, ie(10, 42, 5), mapped)
	assert.EqualValues(t, ie(10, 21, 5), e)
}

func TestEntryAsSeries(t *testing.T) {
	e := ie(10, 42, 5)

	assert.EqualValues(t, 1, e.Size())
	assert.EqualValues(t, []Entry[int64]{e}, e.Entries())

	head, ok := e.Head()
	require.True(t, ok)
	assert.EqualValues(t, e, head)

	last, ok := e.Last()
	require.True(t, ok)
	assert.EqualValues(t, e, last)
}

func TestValue(t *testing.T) {
	v := Value[int64]{Value: 42, Validity: 5}

	assert.False(t, v.ValidAt(10, 9))
	assert.True(t, v.ValidAt(10, 10))
	assert.True(t, v.ValidAt(10, 14))
	assert.False(t, v.ValidAt(10, 15))

	assert.EqualValues(t, ie(10, 42, 5), v.EntryAt(10))
	assert.EqualValues(t, v, ie(10, 42, 5).ToValue())
}
