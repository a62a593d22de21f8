package timeseries

import (
	"github.com/sgostarter/i/commerr"
)

// SlidingSum computes, over a sorted non-overlapping entry sequence, a
// new entry sequence giving at every instant t the sum of the values of
// the input entries intersecting the trailing window [t-window+1, t].
// Stretches where the window holds nothing produce no output entry: the
// sum is undefined there, not zero.
//
// The loop advances from boundary event to boundary event (an entry
// entering or leaving the window), so the cost is bounded by the entry
// count, never by the magnitude of the time axis or of window.
func SlidingSum[V any](entries []Entry[V], window int64, arith Arithmetic[V]) ([]Entry[V], error) {
	if window < 1 || arith == nil {
		return nil, commerr.ErrInvalidArgument
	}

	if len(entries) == 0 {
		return nil, nil
	}

	end := entries[len(entries)-1].DefinedUntil()
	remaining := entries
	sum := arith.Zero()
	head := entries[0].Timestamp

	var inWindow []Entry[V]

	var out []Entry[V]

	for head < end {
		tail := head - window + 1

		// The head always sits on a boundary: an entry enters, the
		// oldest one leaves, or both at once.
		stepped := false

		if len(remaining) > 0 && remaining[0].Timestamp == head {
			inWindow = append(inWindow, remaining[0])
			sum = arith.Add(sum, remaining[0].Value)
			remaining = remaining[1:]
			stepped = true
		}

		if len(inWindow) > 0 && inWindow[0].DefinedUntil() == tail {
			sum = arith.Sub(sum, inWindow[0].Value)
			inWindow = inWindow[1:]
			stepped = true
		}

		if !stepped {
			// Only reachable when the input was not sorted and
			// non-overlapping to begin with.
			return nil, commerr.ErrInvalidArgument
		}

		next := end

		if len(remaining) > 0 && remaining[0].Timestamp < next {
			next = remaining[0].Timestamp
		}

		if len(inWindow) > 0 {
			if leave := inWindow[0].DefinedUntil() + window - 1; leave < next {
				next = leave
			}
		}

		if len(inWindow) > 0 {
			out = append(out, Entry[V]{
				Timestamp: head,
				Value:     sum,
				Validity:  next - head,
			})
		}

		head = next
	}

	return out, nil
}
