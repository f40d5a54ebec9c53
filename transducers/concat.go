package transducers

// Concat treats every input as a collection and forwards its elements one
// by one. A Reduced result from downstream stops both the inner and the
// outer reduction.
//
//	out, _ := transducers.Into([]any{}, transducers.Concat(), [][]int{{1, 2}, {3}})
//	// []any{1, 2, 3}
func Concat() Transducer {
	return func(rf Reducer) Reducer {
		inner := preservingReduced(rf)
		return wrap(rf, func(acc, x any) Result {
			return reduce(inner, acc, x)
		})
	}
}
