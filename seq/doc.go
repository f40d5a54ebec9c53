// Package seq provides the pull-based, single-pass sequence abstraction used
// by the transducer engine.
//
// An [Iterator] yields values one at a time through Next. [Seq] is the
// concrete lazy sequence returned by the constructors in this package and by
// the lazy and transducers packages:
//
//	s := seq.Range(0, 5)
//	for v, ok := s.Next(); ok; v, ok = s.Next() {
//	    fmt.Println(v)
//	}
//
// Nothing is computed until a value is requested. A Seq cannot be restarted:
// once exhausted, or once it failed, every further Next reports false.
// Unbounded sequences such as [Count] are valid sources as long as the
// consumer stops pulling.
//
// Sequences also plug into range-over-func loops via [Seq.All]:
//
//	for v := range seq.Of("a", "b").All() {
//	    fmt.Println(v)
//	}
package seq
