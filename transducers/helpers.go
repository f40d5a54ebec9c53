package transducers

import (
	"github.com/hasbyte1/go-transducers/collections"
)

// Number is the constraint of [Sum] and [Product].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up the elements of source, which must all have type T.
//
//	total, _ := transducers.Sum[int](seq.Range(1, 5)) // 10
func Sum[T Number](source any) (T, error) {
	out, err := Reduce(Fold(func(acc, x T) T { return acc + x }), T(0), source)
	if err != nil {
		return 0, err
	}
	return out.(T), nil
}

// Product multiplies the elements of source, which must all have type T.
// The product of an empty source is 1.
func Product[T Number](source any) (T, error) {
	out, err := Reduce(Fold(func(acc, x T) T { return acc * x }), T(1), source)
	if err != nil {
		return 0, err
	}
	return out.(T), nil
}

// GroupBy groups the elements of source by f(x), keeping source order
// within each group.
func GroupBy[K comparable, V any](f func(V) K, source any) (map[K][]V, error) {
	rf := Fold(func(acc map[K][]V, x V) map[K][]V {
		k := f(x)
		acc[k] = append(acc[k], x)
		return acc
	})
	out, err := Reduce(rf, map[K][]V{}, source)
	if err != nil {
		return nil, err
	}
	return out.(map[K][]V), nil
}

// Index maps f(x) to x for every element of source. Later elements replace
// earlier ones with the same key.
func Index[K comparable, V any](f func(V) K, source any) (map[K]V, error) {
	rf := Fold(func(acc map[K]V, x V) map[K]V {
		acc[f(x)] = x
		return acc
	})
	out, err := Reduce(rf, map[K]V{}, source)
	if err != nil {
		return nil, err
	}
	return out.(map[K]V), nil
}

// InvertMap returns a new mapping from the values of m to its keys. m may be
// any map; values that are not comparable fail with coll.ErrUnhashable.
//
//	inv, _ := transducers.InvertMap(map[string]int{"a": 1}) // map[any]any{1: "a"}
func InvertMap(m any) (map[any]any, error) {
	swap := Map(func(p collections.Pair[any, any]) collections.Pair[any, any] { return p.Swap() })
	out, err := Into(map[any]any{}, swap, m)
	if err != nil {
		return nil, err
	}
	return out.(map[any]any), nil
}

// MapKeys returns a copy of m with f applied to every key. Keys that collide
// after mapping keep the value of the last one in iteration order.
func MapKeys[K, J comparable, V any](f func(K) J, m map[K]V) (map[J]V, error) {
	return transformMap(m, func(p collections.Pair[any, any]) collections.Pair[J, V] {
		return collections.Pair[J, V]{First: f(cast[K](p.First)), Second: cast[V](p.Second)}
	})
}

// MapValues returns a copy of m with f applied to every value.
func MapValues[K comparable, V, W any](f func(V) W, m map[K]V) (map[K]W, error) {
	return transformMap(m, func(p collections.Pair[any, any]) collections.Pair[K, W] {
		return collections.Pair[K, W]{First: cast[K](p.First), Second: f(cast[V](p.Second))}
	})
}

func transformMap[K comparable, V any, J comparable, W any](
	m map[K]V,
	f func(collections.Pair[any, any]) collections.Pair[J, W],
) (map[J]W, error) {
	rf := Fold(func(acc map[J]W, p collections.Pair[J, W]) map[J]W {
		acc[p.First] = p.Second
		return acc
	})
	out, err := Transduce(Map(f), rf, make(map[J]W, len(m)), m)
	if err != nil {
		return nil, err
	}
	return out.(map[J]W), nil
}

// cast asserts x to T, mapping nil to the zero value.
func cast[T any](x any) T {
	v, _ := x.(T)
	return v
}
