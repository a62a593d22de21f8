package timeseries

import (
	"github.com/sgostarter/i/commerr"
)

// An EitherEntry tags an entry with the side it belongs to in a merge.
// Exactly one of Left and Right is set.
type EitherEntry[L, R any] struct {
	Left  *Entry[L]
	Right *Entry[R]
}

func LeftEntry[L, R any](e Entry[L]) EitherEntry[L, R] {
	return EitherEntry[L, R]{Left: &e}
}

func RightEntry[L, R any](e Entry[R]) EitherEntry[L, R] {
	return EitherEntry[L, R]{Right: &e}
}

func (e EitherEntry[L, R]) valid() bool {
	return (e.Left != nil) != (e.Right != nil)
}

func (e EitherEntry[L, R]) timestamp() int64 {
	if e.Left != nil {
		return e.Left.Timestamp
	}

	return e.Right.Timestamp
}

func (e EitherEntry[L, R]) definedUntil() int64 {
	if e.Left != nil {
		return e.Left.DefinedUntil()
	}

	return e.Right.DefinedUntil()
}

// trimToDomain restricts the tagged entry to [from, until). The second
// return value is false if nothing of it remains.
func (e EitherEntry[L, R]) trimToDomain(from, until int64) (EitherEntry[L, R], bool) {
	if e.Left != nil {
		trimmed, err := e.Left.TrimEntryLeftNRight(from, until)
		if err != nil {
			return EitherEntry[L, R]{}, false
		}

		return LeftEntry[L, R](trimmed), true
	}

	trimmed, err := e.Right.TrimEntryLeftNRight(from, until)
	if err != nil {
		return EitherEntry[L, R]{}, false
	}

	return RightEntry[L, R](trimmed), true
}

// trimLeftAt restricts the tagged entry to times at or after at. The
// second return value is false if nothing of it remains.
func (e EitherEntry[L, R]) trimLeftAt(at int64) (EitherEntry[L, R], bool) {
	if at >= e.definedUntil() {
		return EitherEntry[L, R]{}, false
	}

	if e.Left != nil {
		trimmed, _ := e.Left.TrimEntryLeft(at)

		return LeftEntry[L, R](trimmed), true
	}

	trimmed, _ := e.Right.TrimEntryLeft(at)

	return RightEntry[L, R](trimmed), true
}

// pushSegment appends one result entry covering [from, until) when the
// combined value is defined and the segment is not empty.
func pushSegment[O any](out []Entry[O], v *O, from, until int64) []Entry[O] {
	if v == nil || until <= from {
		return out
	}

	return append(out, Entry[O]{
		Timestamp: from,
		Value:     *v,
		Validity:  until - from,
	})
}

// projectEither evaluates op for a stretch where only the tagged side is
// defined.
func projectEither[L, R, O any](e EitherEntry[L, R], op MergeOp[L, R, O]) *O {
	if e.Left != nil {
		v := e.Left.Value

		return op(&v, nil)
	}

	v := e.Right.Value

	return op(nil, &v)
}

// Merge combines two entries under op, producing the ordered result
// sequence covering the union of their domains, split wherever either
// side's definedness changes.
func Merge[L, R, O any](a Entry[L], b Entry[R], op MergeOp[L, R, O]) []Entry[O] {
	if a.Timestamp < b.DefinedUntil() && b.Timestamp < a.DefinedUntil() {
		out, _ := MergeOverlapping(a, b, op)

		return out
	}

	av, bv := a.Value, b.Value

	var out []Entry[O]

	if a.Timestamp <= b.Timestamp {
		out = pushSegment(out, op(&av, nil), a.Timestamp, a.DefinedUntil())
		out = pushSegment(out, op(nil, nil), a.DefinedUntil(), b.Timestamp)
		out = pushSegment(out, op(nil, &bv), b.Timestamp, b.DefinedUntil())

		return out
	}

	out = pushSegment(out, op(nil, &bv), b.Timestamp, b.DefinedUntil())
	out = pushSegment(out, op(nil, nil), b.DefinedUntil(), a.Timestamp)
	out = pushSegment(out, op(&av, nil), a.Timestamp, a.DefinedUntil())

	return out
}

// MergeOverlapping combines two entries whose domains intersect. The
// union splits into at most three segments: leading (only the earlier
// side defined), middle (both defined) and trailing (only the later
// ending side defined). Zero-length segments contribute nothing.
func MergeOverlapping[L, R, O any](a Entry[L], b Entry[R], op MergeOp[L, R, O]) ([]Entry[O], error) {
	if a.Timestamp >= b.DefinedUntil() || b.Timestamp >= a.DefinedUntil() {
		return nil, commerr.ErrInvalidArgument
	}

	av, bv := a.Value, b.Value

	from := minInt64(a.Timestamp, b.Timestamp)
	bothFrom := maxInt64(a.Timestamp, b.Timestamp)
	bothUntil := minInt64(a.DefinedUntil(), b.DefinedUntil())
	until := maxInt64(a.DefinedUntil(), b.DefinedUntil())

	var out []Entry[O]

	if a.Timestamp < b.Timestamp {
		out = pushSegment(out, op(&av, nil), from, bothFrom)
	} else if b.Timestamp < a.Timestamp {
		out = pushSegment(out, op(nil, &bv), from, bothFrom)
	}

	out = pushSegment(out, op(&av, &bv), bothFrom, bothUntil)

	if a.DefinedUntil() > b.DefinedUntil() {
		out = pushSegment(out, op(&av, nil), bothUntil, until)
	} else if b.DefinedUntil() > a.DefinedUntil() {
		out = pushSegment(out, op(nil, &bv), bothUntil, until)
	}

	return out, nil
}

// MergeEithers unwraps a left-tagged and a right-tagged entry and merges
// them on the overlap path. Two entries carrying the same tag are
// rejected.
func MergeEithers[L, R, O any](x, y EitherEntry[L, R], op MergeOp[L, R, O]) ([]Entry[O], error) {
	switch {
	case x.Left != nil && x.Right == nil && y.Right != nil && y.Left == nil:
		return MergeOverlapping(*x.Left, *y.Right, op)
	case x.Right != nil && x.Left == nil && y.Left != nil && y.Right == nil:
		return MergeOverlapping(*y.Left, *x.Right, op)
	default:
		return nil, commerr.ErrInvalidArgument
	}
}

// MergeSingleToMultiple merges one tagged entry against a sorted,
// non-overlapping sequence of oppositely tagged entries. The sequence is
// trimmed to single's domain first; entries falling entirely outside of
// it are dropped.
func MergeSingleToMultiple[L, R, O any](single EitherEntry[L, R], others []EitherEntry[L, R], op MergeOp[L, R, O]) ([]Entry[O], error) {
	if !single.valid() {
		return nil, commerr.ErrInvalidArgument
	}

	trimmed := make([]EitherEntry[L, R], 0, len(others))

	for _, o := range others {
		if !o.valid() {
			return nil, commerr.ErrInvalidArgument
		}

		if t, ok := o.trimToDomain(single.timestamp(), single.definedUntil()); ok {
			trimmed = append(trimmed, t)
		}
	}

	switch len(trimmed) {
	case 0:
		return nil, nil
	case 1:
		return MergeEithers(single, trimmed[0], op)
	}

	var out []Entry[O]

	// Lead-in where only single is defined, before the first other.
	if first := trimmed[0]; first.timestamp() > single.timestamp() {
		out = pushSegment(out, projectEither(single, op), single.timestamp(), first.timestamp())
	}

	// Merge single against each other over the sub-interval reaching to
	// the next other's start; the pairwise merge fills the trailing
	// single-only stretch of each sub-interval, including the trail-out
	// after the last other.
	for i, cur := range trimmed {
		hi := single.definedUntil()
		if i+1 < len(trimmed) {
			hi = trimmed[i+1].timestamp()
		}

		piece, ok := single.trimToDomain(cur.timestamp(), hi)
		if !ok {
			return nil, commerr.ErrInvalidArgument
		}

		seg, err := MergeEithers(piece, cur, op)
		if err != nil {
			return nil, err
		}

		out = append(out, seg...)
	}

	return out, nil
}

// MergeEntrySeqs merges two sorted, non-overlapping entry sequences
// under op, segment by segment over the union of their domains. Genuine
// gaps inside the union are projected through op with both sides absent.
func MergeEntrySeqs[L, R, O any](left []Entry[L], right []Entry[R], op MergeOp[L, R, O]) []Entry[O] {
	queue := interleave(left, right)

	var out []Entry[O]

	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		// Entries starting inside head's domain. They all carry the
		// opposite tag: same-tagged entries never overlap each other.
		var overlapped []EitherEntry[L, R]

		var leftovers []EitherEntry[L, R]

		i := 0

		for ; i < len(queue) && queue[i].timestamp() < head.definedUntil(); i++ {
			if t, ok := queue[i].trimToDomain(queue[i].timestamp(), head.definedUntil()); ok {
				overlapped = append(overlapped, t)
			}

			if rem, ok := queue[i].trimLeftAt(head.definedUntil()); ok {
				leftovers = append(leftovers, rem)
			}
		}

		queue = append(leftovers, queue[i:]...)

		if len(overlapped) == 0 {
			out = pushSegment(out, projectEither(head, op), head.timestamp(), head.definedUntil())
		} else {
			seg, _ := MergeSingleToMultiple(head, overlapped, op)
			out = append(out, seg...)
		}

		if len(queue) > 0 && queue[0].timestamp() > head.definedUntil() {
			out = pushSegment(out, op(nil, nil), head.definedUntil(), queue[0].timestamp())
		}
	}

	return out
}

// interleave turns two sorted entry sequences into one sorted tagged
// sequence.
func interleave[L, R any](left []Entry[L], right []Entry[R]) []EitherEntry[L, R] {
	out := make([]EitherEntry[L, R], 0, len(left)+len(right))

	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i].Timestamp <= right[j].Timestamp {
			out = append(out, LeftEntry[L, R](left[i]))
			i++
		} else {
			out = append(out, RightEntry[L, R](right[j]))
			j++
		}
	}

	for ; i < len(left); i++ {
		out = append(out, LeftEntry[L, R](left[i]))
	}

	for ; j < len(right); j++ {
		out = append(out, RightEntry[L, R](right[j]))
	}

	return out
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
