package coll

import (
	"cmp"
	"reflect"
	"slices"
)

// sortedValues orders map keys or set members so that iteration is
// repeatable. Keys are sorted when they all share an ordered kind (strings,
// signed or unsigned integers, floats); mixed or unordered keys keep map
// order.
func sortedValues(vs []reflect.Value) []reflect.Value {
	kind := commonKind(vs, func(v reflect.Value) reflect.Value { return v })
	if kind == reflect.Invalid {
		return vs
	}
	slices.SortFunc(vs, func(a, b reflect.Value) int { return compareValues(kind, a, b) })
	return vs
}

// sortedKeys returns the keys of m, sorted as by sortedValues.
func sortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	kind := commonKind(keys, func(k K) reflect.Value { return reflect.ValueOf(any(k)) })
	if kind == reflect.Invalid {
		return keys
	}
	slices.SortFunc(keys, func(a, b K) int {
		return compareValues(kind, reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
	})
	return keys
}

func commonKind[T any](xs []T, value func(T) reflect.Value) reflect.Kind {
	if len(xs) < 2 {
		return reflect.Invalid
	}
	kind := orderKind(value(xs[0]))
	for _, x := range xs[1:] {
		if orderKind(value(x)) != kind {
			return reflect.Invalid
		}
	}
	return kind
}

func compareValues(kind reflect.Kind, a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)
	switch kind {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint:
		return cmp.Compare(a.Uint(), b.Uint())
	default:
		return cmp.Compare(a.Float(), b.Float())
	}
}

func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// orderKind folds the reflect kinds that share a comparison into one.
func orderKind(v reflect.Value) reflect.Kind {
	switch unwrap(v).Kind() {
	case reflect.String:
		return reflect.String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	default:
		return reflect.Invalid
	}
}
