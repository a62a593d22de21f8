package timeseries

// Int64Arithmetic is the Arithmetic capability for int64 values.
type Int64Arithmetic struct{}

func (Int64Arithmetic) Add(a, b int64) int64 {
	return a + b
}

func (Int64Arithmetic) Sub(a, b int64) int64 {
	return a - b
}

func (Int64Arithmetic) Mul(a, b int64) int64 {
	return a * b
}

func (Int64Arithmetic) Zero() int64 {
	return 0
}

// Float64Arithmetic is the Arithmetic capability for float64 values.
type Float64Arithmetic struct{}

func (Float64Arithmetic) Add(a, b float64) float64 {
	return a + b
}

func (Float64Arithmetic) Sub(a, b float64) float64 {
	return a - b
}

func (Float64Arithmetic) Mul(a, b float64) float64 {
	return a * b
}

func (Float64Arithmetic) Zero() float64 {
	return 0
}

// StrictSum combines instants where both sides are defined into their
// sum and leaves every other instant undefined.
func StrictSum[V any](arith Arithmetic[V]) MergeOp[V, V, V] {
	return func(left, right *V) *V {
		if left == nil || right == nil {
			return nil
		}

		v := arith.Add(*left, *right)

		return &v
	}
}

// StrictDifference is StrictSum's counterpart for subtraction, left
// minus right.
func StrictDifference[V any](arith Arithmetic[V]) MergeOp[V, V, V] {
	return func(left, right *V) *V {
		if left == nil || right == nil {
			return nil
		}

		v := arith.Sub(*left, *right)

		return &v
	}
}

// StrictProduct is StrictSum's counterpart for multiplication.
func StrictProduct[V any](arith Arithmetic[V]) MergeOp[V, V, V] {
	return func(left, right *V) *V {
		if left == nil || right == nil {
			return nil
		}

		v := arith.Mul(*left, *right)

		return &v
	}
}

// SumSeries merges two series into their pointwise strict sum.
func SumSeries[V any](a, b TimeSeries[V], arith Arithmetic[V]) TimeSeries[V] {
	return makeSeries(MergeEntrySeqs(a.Entries(), b.Entries(), StrictSum(arith)))
}

// DifferenceSeries merges two series into their pointwise strict
// difference, a minus b.
func DifferenceSeries[V any](a, b TimeSeries[V], arith Arithmetic[V]) TimeSeries[V] {
	return makeSeries(MergeEntrySeqs(a.Entries(), b.Entries(), StrictDifference(arith)))
}

// ProductSeries merges two series into their pointwise strict product.
func ProductSeries[V any](a, b TimeSeries[V], arith Arithmetic[V]) TimeSeries[V] {
	return makeSeries(MergeEntrySeqs(a.Entries(), b.Entries(), StrictProduct(arith)))
}
