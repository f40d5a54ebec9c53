package transducers

// Transducer transforms a reducing function into another one. State of
// stateful transducers is allocated each time the transducer is applied,
// which happens once per transduction.
type Transducer func(Reducer) Reducer

// Identity is the neutral transducer.
func Identity(rf Reducer) Reducer { return rf }

// Comp composes transducers right to left: Comp(f, g)(rf) == f(g(rf)).
// As a consequence the leftmost transducer sees each input first, so
//
//	Comp(Filter(even), Map(inc))
//
// filters before mapping. Comp(f) returns f. Nil transducers act as
// [Identity].
func Comp(xf Transducer, xfs ...Transducer) Transducer {
	if len(xfs) == 0 {
		if xf == nil {
			return Identity
		}
		return xf
	}
	chain := make([]Transducer, 0, len(xfs)+1)
	chain = append(chain, xf)
	chain = append(chain, xfs...)
	return func(rf Reducer) Reducer {
		for i := len(chain) - 1; i >= 0; i-- {
			if chain[i] != nil {
				rf = chain[i](rf)
			}
		}
		return rf
	}
}

// Compose composes functions of one type right to left.
//
//	f := transducers.Compose(double, inc) // double(inc(x))
func Compose[T any](f func(T) T, fs ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			v = fs[i](v)
		}
		return f(v)
	}
}

// Compose2 composes two functions of different types: f after g.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}
