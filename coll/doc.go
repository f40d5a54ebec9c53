// Package coll registers the built-in container kinds with a capability
// registry and exposes the polymorphic operations the transducer engine is
// written against: [Conj], [ConjMany], [Empty], [IsImmutable] and [Iterate].
//
// Each operation dispatches on the exact dynamic type of its container
// argument through [Default] (or an explicit *protocol.Registry with the
// ...In variants). The built-in kinds are:
//
//   - ordered sequences: []any, []int, []string, []float64
//   - sets: [Set]
//   - mappings: map[any]any and map[string]any, appended to with key/value
//     pairs and iterated as collections.Pair[any, any] entries
//   - immutable text: string
//   - immutable sets: [FrozenSet]
//   - immutable sequences: *collections.Collection[any]
//
// Appending to a mutable kind returns the updated container; appending to an
// immutable kind returns a new value and leaves the original unchanged.
// Always use the returned container:
//
//	out, _ := coll.Conj([]any{}, 1, 2)  // []any{1, 2}
//	s, _ := coll.Conj("hello", ", world") // "hello, world"
//
// New kinds are added with [Register] without touching existing code:
//
//	coll.Register(coll.Default, protocol.TypeFor[MyList](), coll.Impl{
//	    ConjOne: func(c, x any) (any, error) { return c.(MyList).With(x), nil },
//	    Empty:   func(any) any { return MyList{} },
//	})
//
// [Key] turns any value into a map key with value-equality semantics, which
// lets distinct and dedupe work on slices and maps as well as on comparable
// values.
package coll
