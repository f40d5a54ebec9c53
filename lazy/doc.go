// Package lazy provides the direct form of the transducer combinators: each
// function takes its arguments followed by a source and returns a lazy,
// single-pass *seq.Seq.
//
//	evens, err := lazy.Filter(func(x int) bool { return x%2 == 0 }, seq.Count(0))
//	firstFive, err := lazy.Take(5, evens)
//	values, err := firstFive.Collect() // [0 2 4 6 8]
//
// Nothing is computed until values are pulled. Sources are anything
// coll.Iterate accepts. Apart from [MapN] and [Concat], every function takes
// exactly one source; any other count fails with [ErrArity].
package lazy
