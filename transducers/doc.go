// Package transducers implements composable transformations that are
// independent of both their input source and their output destination.
//
// A [Reducer] folds inputs into an accumulator. Its Step returns a [Result]
// that either continues, stops early ([Reduced]) or fails; Complete runs once
// after the last input so that buffering transformations can flush.
//
// A [Transducer] turns one Reducer into another. Combinators such as [Map],
// [Filter], [Take] or [Partition] build transducers, and [Comp] chains them:
//
//	xf := transducers.Comp(
//		transducers.Map(func(x int) int { return x * x }),
//		transducers.Filter(func(x int) bool { return x%3 == 0 }),
//		transducers.Drop(10),
//		transducers.Take(3),
//	)
//
// The leftmost transducer sees each input first. The same xf can then be run
// by any driver:
//
//	transducers.Into([]any{}, xf, seq.Range(0, 100))   // []any{900, 1089, 1296}
//	transducers.Transduce(xf, transducers.Conj, []any{}, src)
//	transducers.Generate(xf, seq.Count(0))             // lazy *seq.Seq
//
// # Sources and targets
//
// Sources are anything coll.Iterate accepts: slices, arrays, maps (iterated
// as collections.Pair entries), strings, channels, seq.Iterator values and
// iter.Seq[any] functions, plus every type registered in coll.Default.
// Targets of [Into] and [IntoNew] are appended to with coll.Conj; immutable
// targets are appended to in batches (see [Options]).
//
// # Early termination
//
// A step returning Reduced stops the reduction immediately: no further
// input is pulled, even from an unbounded source such as seq.Count.
// Completion still runs once.
//
// # State
//
// Stateful transducers (Take, Drop, Distinct, Dedupe, Partition, MapIndexed)
// allocate their state when applied to a reducer, i.e. once per driver call.
// A transducer value can therefore be reused across reductions, but one
// applied Reducer must not be shared between concurrent reductions.
//
// Typed combinators assert each input to their parameter type and fail with
// [ErrElementType] on a mismatch. The lazy package provides the direct,
// sequence-in sequence-out form of every combinator.
package transducers
