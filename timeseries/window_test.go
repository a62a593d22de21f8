package timeseries

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingSumArguments(t *testing.T) {
	entries := []Entry[int64]{ie(10, 1, 5)}

	_, err := SlidingSum(entries, 0, Int64Arithmetic{})
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = SlidingSum(entries, -3, Int64Arithmetic{})
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = SlidingSum(entries, 2, nil)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	out, err := SlidingSum[int64](nil, 2, Int64Arithmetic{})
	assert.Nil(t, err)
	assert.Empty(t, out)
}

func TestSlidingSumUnitWindowIdentity(t *testing.T) {
	entries := []Entry[int64]{ie(0, 1, 1), ie(1, 2, 1), ie(2, 3, 1), ie(3, 1, 1)}

	out, err := SlidingSum(entries, 1, Int64Arithmetic{})
	assert.Nil(t, err)
	assert.EqualValues(t, entries, out)
}

func TestSlidingSumOverlappingWindows(t *testing.T) {
	out, err := SlidingSum([]Entry[int64]{ie(10, 1, 5), ie(15, 2, 10)}, 2, Int64Arithmetic{})
	assert.Nil(t, err)
	assert.EqualValues(t, []Entry[int64]{ie(10, 1, 5), ie(15, 3, 1), ie(16, 2, 9)}, out)
}

func TestSlidingSumGap(t *testing.T) {
	// The stretch where the window holds nothing yields no entry at
	// all, the sum is undefined there, not zero.
	out, err := SlidingSum([]Entry[int64]{ie(10, 1, 5), ie(17, 2, 10)}, 2, Int64Arithmetic{})
	assert.Nil(t, err)
	assert.EqualValues(t, []Entry[int64]{ie(10, 1, 6), ie(17, 2, 10)}, out)
}

func TestSlidingSumSingleEntry(t *testing.T) {
	// A lone entry keeps contributing until the window slides past it.
	out, err := SlidingSum([]Entry[int64]{ie(10, 7, 5)}, 10, Int64Arithmetic{})
	assert.Nil(t, err)
	assert.EqualValues(t, []Entry[int64]{ie(10, 7, 5)}, out)
}

func TestSlidingSumFloat(t *testing.T) {
	out, err := SlidingSum([]Entry[float64]{fe(0, 0.5, 4), fe(4, 1.5, 4)}, 3, Float64Arithmetic{})
	assert.Nil(t, err)
	assert.EqualValues(t, []Entry[float64]{fe(0, 0.5, 4), fe(4, 2, 2), fe(6, 1.5, 2)}, out)
}

func TestSlidingSumAgainstBruteForce(t *testing.T) {
	entries := []Entry[int64]{ie(0, 1, 4), ie(6, 2, 3), ie(9, 5, 2)}

	const window = int64(3)

	out, err := SlidingSum(entries, window, Int64Arithmetic{})
	require.Nil(t, err)

	result := NewSeries(out)

	for at := int64(0); at < 11; at++ {
		lo := at - window + 1
		want := int64(0)
		defined := false

		for _, e := range entries {
			if e.Timestamp <= at && e.DefinedUntil() > lo {
				want += e.Value
				defined = true
			}
		}

		got, ok := result.At(at)
		require.EqualValues(t, defined, ok, "at %d", at)

		if defined {
			assert.EqualValues(t, want, got, "at %d", at)
		}
	}
}
