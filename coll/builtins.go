package coll

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-transducers/collections"
	"github.com/hasbyte1/go-transducers/protocol"
	"github.com/hasbyte1/go-transducers/seq"
)

func init() {
	registerSlice[any]()
	registerSlice[int]()
	registerSlice[string]()
	registerSlice[float64]()

	mustRegister(protocol.TypeFor[Set](), Impl{
		ConjOne: func(c, x any) (any, error) {
			s := c.(Set)
			return s, s.Add(x)
		},
		Empty:    func(any) any { return Set{} },
		Iterator: func(c any) seq.Iterator { return setIterator(c.(Set).Items()) },
	})

	mustRegister(protocol.TypeFor[map[any]any](), Impl{
		ConjOne: func(c, x any) (any, error) {
			k, v, err := entry(x)
			if err != nil {
				return c, err
			}
			if !hashable(k) {
				return c, fmt.Errorf("%w: mapping key %T", ErrUnhashable, k)
			}
			c.(map[any]any)[k] = v
			return c, nil
		},
		Empty:    func(any) any { return map[any]any{} },
		Iterator: func(c any) seq.Iterator { return entries(c.(map[any]any)) },
	})

	mustRegister(protocol.TypeFor[map[string]any](), Impl{
		ConjOne: func(c, x any) (any, error) {
			k, v, err := entry(x)
			if err != nil {
				return c, err
			}
			key, ok := k.(string)
			if !ok {
				return c, fmt.Errorf("%w: map[string]any key %T", ErrElementType, k)
			}
			c.(map[string]any)[key] = v
			return c, nil
		},
		Empty:    func(any) any { return map[string]any{} },
		Iterator: func(c any) seq.Iterator { return entries(c.(map[string]any)) },
	})

	mustRegister(protocol.TypeFor[string](), Impl{
		ConjOne: func(c, x any) (any, error) {
			s, err := text(x)
			if err != nil {
				return c, err
			}
			return c.(string) + s, nil
		},
		ConjMany: func(c any, xs []any) (any, error) {
			var b strings.Builder
			b.WriteString(c.(string))
			for _, x := range xs {
				s, err := text(x)
				if err != nil {
					return c, err
				}
				b.WriteString(s)
			}
			return b.String(), nil
		},
		Empty:     func(any) any { return "" },
		Immutable: func(any) bool { return true },
		Iterator:  func(c any) seq.Iterator { return runes(c.(string)) },
	})

	mustRegister(protocol.TypeFor[FrozenSet](), Impl{
		ConjOne: func(c, x any) (any, error) {
			return c.(FrozenSet).With(x)
		},
		ConjMany: func(c any, xs []any) (any, error) {
			return c.(FrozenSet).With(xs...)
		},
		Empty:     func(any) any { return FrozenSet{} },
		Immutable: func(any) bool { return true },
		Iterator:  func(c any) seq.Iterator { return setIterator(c.(FrozenSet).Items()) },
	})

	mustRegister(protocol.TypeFor[*collections.Collection[any]](), Impl{
		ConjOne: func(c, x any) (any, error) {
			return c.(*collections.Collection[any]).Push(x), nil
		},
		ConjMany: func(c any, xs []any) (any, error) {
			return c.(*collections.Collection[any]).Push(xs...), nil
		},
		Empty:     func(any) any { return collections.Empty[any]() },
		Immutable: func(any) bool { return true },
		Iterator: func(c any) seq.Iterator {
			return seq.Func(c.(*collections.Collection[any]).Cursor())
		},
	})
}

// registerSlice registers []T as an ordered, mutable sequence. Appended
// values must have dynamic type T exactly (nil is accepted for []any).
func registerSlice[T any]() {
	mustRegister(protocol.TypeFor[[]T](), Impl{
		ConjOne: func(c, x any) (any, error) {
			v, err := element[T](x)
			if err != nil {
				return c, err
			}
			return append(c.([]T), v), nil
		},
		ConjMany: func(c any, xs []any) (any, error) {
			out := c.([]T)
			for _, x := range xs {
				v, err := element[T](x)
				if err != nil {
					return out, err
				}
				out = append(out, v)
			}
			return out, nil
		},
		Empty:    func(any) any { return []T{} },
		Iterator: func(c any) seq.Iterator { return seq.FromSlice(c.([]T)) },
	})
}

func element[T any](x any) (T, error) {
	if v, ok := x.(T); ok {
		return v, nil
	}
	var zero T
	if x == nil && protocol.TypeFor[T]() == protocol.TypeFor[any]() {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T into []%s", ErrElementType, x, protocol.TypeFor[T]())
}

// Entry is implemented by key/value pair types, such as every
// collections.Pair instantiation.
type Entry interface {
	Entry() (key, value any)
}

// entry splits a key/value element accepted by mapping containers.
func entry(x any) (any, any, error) {
	switch e := x.(type) {
	case collections.Pair[any, any]:
		return e.First, e.Second, nil
	case Entry:
		k, v := e.Entry()
		return k, v, nil
	case [2]any:
		return e[0], e[1], nil
	}
	return nil, nil, fmt.Errorf("%w: mapping element must be a key/value pair, got %T", ErrElementType, x)
}

func entries[K comparable, V any](m map[K]V) seq.Iterator {
	keys := sortedKeys(m)
	idx := 0
	return seq.Func(func() (any, bool) {
		if idx >= len(keys) {
			return nil, false
		}
		k := keys[idx]
		idx++
		return collections.Pair[any, any]{First: k, Second: m[k]}, true
	})
}

func text(x any) (string, error) {
	switch s := x.(type) {
	case string:
		return s, nil
	case rune:
		return string(s), nil
	}
	return "", fmt.Errorf("%w: %T into string", ErrElementType, x)
}
