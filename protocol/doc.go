// Package protocol implements a type-directed capability registry.
//
// A capability is a named operation ("collection.conj_one",
// "iterable.iterator", ...) whose implementation depends on the concrete
// runtime type of the value it is applied to. A [Registry] maps
// (capability, reflect.Type) pairs to implementation values:
//
//	r := protocol.NewRegistry()
//	_ = r.Register(protocol.TypeFor[[]any](), "greet", func(v any) string { return "hello, list" })
//
//	greet, err := protocol.Get[func(any) string](r, "greet", []any{1, 2})
//	// greet([]any{1, 2}) → "hello, list"
//
// # Protocols
//
// A [Protocol] groups several capabilities under one name, so that a type can
// be extended with a consistent set of methods in one call:
//
//	coll := r.Protocol("collection", "conj_one", "empty")
//	err := coll.Extend(protocol.TypeFor[MyList](),
//	    protocol.Method{Name: "conj_one", Impl: conjMyList},
//	    protocol.Method{Name: "empty", Impl: emptyMyList},
//	)
//
// # Exact-type dispatch
//
// Lookups match the exact dynamic type of the value only. There is no walk
// through embedded types, named-type underlying types or implemented
// interfaces: a `type IDs []any` is a different type from []any and must be
// registered on its own. Registering new types never requires changes to the
// code that performs lookups.
//
// # Thread safety
//
// A Registry is safe for concurrent use. Registration normally happens once,
// from init functions, after which the registry is only read.
package protocol
