package collections

import "fmt"

// Pair holds two values of possibly different types.
//
// Mapping containers iterate as Pair{First: key, Second: value}.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair, inferring its type parameters.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap returns the pair with its members exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Entry returns the pair as an untyped key/value.
func (p Pair[A, B]) Entry() (key, value any) {
	return p.First, p.Second
}
