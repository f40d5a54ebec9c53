package transducers

import (
	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/seq"
)

// Reduce folds source into init with rf. Iteration stops at the first
// Reduced step without pulling another element, and the carried value is
// returned. Reduce never calls rf.Complete.
//
// source may be anything [coll.Iterate] accepts.
func Reduce(rf Reducer, init, source any) (any, error) {
	r := reduce(rf, init, source)
	return r.value, r.err
}

// Transduce applies xf to rf, reduces source starting at init and finally
// calls Complete on the transformed reducer exactly once, also when source
// is empty or the reduction stopped early.
//
//	out, err := transducers.Transduce(
//		transducers.Comp(transducers.Filter(even), transducers.Take(3)),
//		transducers.Conj, []any{}, seq.Count(0),
//	) // []any{0, 2, 4}
func Transduce(xf Transducer, rf Reducer, init, source any) (any, error) {
	if xf == nil {
		xf = Identity
	}
	step := xf(rf)
	r := reduce(step, init, source)
	if r.err != nil {
		return nil, r.err
	}
	c := step.Complete(r.value)
	return c.value, c.err
}

// reduce is Reduce returning a Result so that nested reductions can hand a
// Reduced outcome back to their caller. One level of Reduced is stripped.
func reduce(rf Reducer, acc, source any) Result {
	it, err := coll.Iterate(source)
	if err != nil {
		return Fail(err)
	}
	if _, own := source.(seq.Iterator); !own {
		defer seq.Release(it)
	}
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		r := rf.Step(acc, x)
		if r.err != nil {
			return r
		}
		if r.IsReduced() {
			return r.unreduced()
		}
		acc = r.value
	}
	if err := seq.Err(it); err != nil {
		return Fail(err)
	}
	return Continue(acc)
}

// preservingReduced adds one level of Reduced wrapping to the results of rf,
// so that a Reduced coming from downstream survives the unwrapping done by a
// nested reduce.
func preservingReduced(rf Reducer) Reducer {
	return wrap(rf, func(acc, x any) Result {
		r := rf.Step(acc, x)
		if r.IsReduced() {
			r.depth++
		}
		return r
	})
}
