package coll

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/hasbyte1/go-transducers/collections"
	"github.com/hasbyte1/go-transducers/protocol"
	"github.com/hasbyte1/go-transducers/seq"
)

// Conj appends xs to c and returns the resulting container. Without xs it
// returns c unchanged (after checking that c supports appending).
func Conj(c any, xs ...any) (any, error) {
	return ConjIn(Default, c, xs...)
}

// ConjIn is [Conj] against registry r.
func ConjIn(r *protocol.Registry, c any, xs ...any) (any, error) {
	if len(xs) == 1 {
		one, err := protocol.Get[ConjOneFunc](r, CapConjOne, c)
		if err != nil {
			return c, err
		}
		return one(c, xs[0])
	}
	return ConjManyIn(r, c, xs)
}

// ConjMany appends every element of xs to c in one operation. Immutable
// containers are rebuilt once rather than once per element.
func ConjMany(c any, xs []any) (any, error) {
	return ConjManyIn(Default, c, xs)
}

// ConjManyIn is [ConjMany] against registry r.
func ConjManyIn(r *protocol.Registry, c any, xs []any) (any, error) {
	many, err := protocol.Get[ConjManyFunc](r, CapConjMany, c)
	if err != nil {
		return c, err
	}
	if len(xs) == 0 {
		return c, nil
	}
	return many(c, xs)
}

// Empty returns a new empty container of the same type as c.
func Empty(c any) (any, error) {
	return EmptyIn(Default, c)
}

// EmptyIn is [Empty] against registry r.
func EmptyIn(r *protocol.Registry, c any) (any, error) {
	empty, err := protocol.Get[EmptyFunc](r, CapEmpty, c)
	if err != nil {
		return nil, err
	}
	return empty(c), nil
}

// IsImmutable reports whether appending to c builds a new container.
func IsImmutable(c any) (bool, error) {
	return IsImmutableIn(Default, c)
}

// IsImmutableIn is [IsImmutable] against registry r.
func IsImmutableIn(r *protocol.Registry, c any) (bool, error) {
	immutable, err := protocol.Get[ImmutableFunc](r, CapImmutable, c)
	if err != nil {
		return false, err
	}
	return immutable(c), nil
}

// Iterate returns an iterator over v.
//
// A registered iterator capability takes precedence. Otherwise v is iterated
// natively: seq.Iterator values are returned as is, iter.Seq[any] functions
// are pulled, slices and arrays yield their elements, maps yield
// collections.Pair[any, any] entries, strings yield one-rune strings and
// receive channels yield received values until closed. Anything else fails
// with [ErrNotIterable].
func Iterate(v any) (seq.Iterator, error) {
	return IterateIn(Default, v)
}

// IterateIn is [Iterate] against registry r.
func IterateIn(r *protocol.Registry, v any) (seq.Iterator, error) {
	if impl, err := protocol.Get[IteratorFunc](r, CapIterator, v); err == nil {
		return impl(v), nil
	}
	switch src := v.(type) {
	case seq.Iterator:
		return src, nil
	case iter.Seq[any]:
		return seq.Pull(src), nil
	case func(func(any) bool):
		return seq.Pull(src), nil
	}
	return nativeIterator(v)
}

func nativeIterator(v any) (seq.Iterator, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		idx := 0
		return seq.Func(func() (any, bool) {
			if idx >= rv.Len() {
				return nil, false
			}
			x := rv.Index(idx).Interface()
			idx++
			return x, true
		}), nil
	case reflect.Map:
		keys := sortedValues(rv.MapKeys())
		idx := 0
		return seq.Func(func() (any, bool) {
			if idx >= len(keys) {
				return nil, false
			}
			k := keys[idx]
			idx++
			return collections.Pair[any, any]{First: k.Interface(), Second: rv.MapIndex(k).Interface()}, true
		}), nil
	case reflect.String:
		return runes(rv.String()), nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		return seq.Func(func() (any, bool) {
			x, ok := rv.Recv()
			if !ok {
				return nil, false
			}
			return x.Interface(), true
		}), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, v)
}

func runes(s string) seq.Iterator {
	rs := []rune(s)
	idx := 0
	return seq.Func(func() (any, bool) {
		if idx >= len(rs) {
			return nil, false
		}
		r := rs[idx]
		idx++
		return string(r), true
	})
}
