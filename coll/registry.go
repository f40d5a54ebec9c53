package coll

import (
	"reflect"

	"github.com/hasbyte1/go-transducers/protocol"
	"github.com/hasbyte1/go-transducers/seq"
)

// Capability names, as stored in the registry.
const (
	CapConjOne   = "collection.conj_one"
	CapConjMany  = "collection.conj_many"
	CapEmpty     = "collection.empty"
	CapImmutable = "collection.immutable"
	CapIterator  = "iterable.iterator"
)

// Implementation signatures of the capabilities.
type (
	// ConjOneFunc appends x to c and returns the resulting container.
	ConjOneFunc func(c, x any) (any, error)

	// ConjManyFunc appends xs to c, in order, and returns the resulting
	// container. An empty xs returns c unchanged.
	ConjManyFunc func(c any, xs []any) (any, error)

	// EmptyFunc returns a new empty container of the same type as c.
	EmptyFunc func(c any) any

	// ImmutableFunc reports whether appending to c builds a new container.
	ImmutableFunc func(c any) bool

	// IteratorFunc returns an iterator over the elements of c.
	IteratorFunc func(c any) seq.Iterator
)

// Impl bundles the capability implementations of one container type.
// Nil fields are not registered, except that ConjMany is derived from
// ConjOne and Immutable defaults to false when ConjOne is present.
type Impl struct {
	ConjOne   ConjOneFunc
	ConjMany  ConjManyFunc
	Empty     EmptyFunc
	Immutable ImmutableFunc
	Iterator  IteratorFunc
}

// Default is the registry holding the built-in container kinds.
var Default = protocol.NewRegistry()

// Register extends r with the capabilities in impl for type t.
func Register(r *protocol.Registry, t reflect.Type, impl Impl) error {
	collection := r.Protocol("collection", "conj_one", "conj_many", "empty", "immutable")
	iterable := r.Protocol("iterable", "iterator")

	if impl.ConjOne != nil {
		if impl.ConjMany == nil {
			impl.ConjMany = conjEach(impl.ConjOne)
		}
		if impl.Immutable == nil {
			impl.Immutable = func(any) bool { return false }
		}
	}

	var methods []protocol.Method
	if impl.ConjOne != nil {
		methods = append(methods, protocol.Method{Name: "conj_one", Impl: impl.ConjOne})
	}
	if impl.ConjMany != nil {
		methods = append(methods, protocol.Method{Name: "conj_many", Impl: impl.ConjMany})
	}
	if impl.Empty != nil {
		methods = append(methods, protocol.Method{Name: "empty", Impl: impl.Empty})
	}
	if impl.Immutable != nil {
		methods = append(methods, protocol.Method{Name: "immutable", Impl: impl.Immutable})
	}
	if err := collection.Extend(t, methods...); err != nil {
		return err
	}
	if impl.Iterator != nil {
		return iterable.Extend(t, protocol.Method{Name: "iterator", Impl: impl.Iterator})
	}
	return nil
}

func conjEach(one ConjOneFunc) ConjManyFunc {
	return func(c any, xs []any) (any, error) {
		var err error
		for _, x := range xs {
			if c, err = one(c, x); err != nil {
				return c, err
			}
		}
		return c, nil
	}
}

func mustRegister(t reflect.Type, impl Impl) {
	if err := Register(Default, t, impl); err != nil {
		panic(err)
	}
}
