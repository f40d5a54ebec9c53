package collections

import "fmt"

// Collection is an immutable, ordered sequence of T. The zero value is an
// empty collection. Appending returns a new Collection and never touches the
// receiver, so a Collection may be shared freely between readers.
//
//	a := collections.New(1, 2)
//	b := a.Push(3)
//	a.Count(), b.Count() // 2, 3
type Collection[T any] struct {
	items []T
}

// New builds a Collection holding a copy of items.
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

// Empty returns a Collection with no items.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{}
}

// All returns the items as a new slice. The result is never nil.
func (c *Collection[T]) All() []T {
	return append(make([]T, 0, len(c.items)), c.items...)
}

// Count returns the number of items.
func (c *Collection[T]) Count() int { return len(c.items) }

// Push returns a new Collection with items appended. Pushing several items at
// once copies the receiver only once, which is what bulk appends rely on.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, 0, len(c.items)+len(items))
	out = append(out, c.items...)
	return &Collection[T]{items: append(out, items...)}
}

// Cursor returns a pull function over the items held when it was called.
func (c *Collection[T]) Cursor() func() (T, bool) {
	items, i := c.items, 0
	return func() (T, bool) {
		if i == len(items) {
			var zero T
			return zero, false
		}
		i++
		return items[i-1], true
	}
}

// String formats the collection as "collection[a b c]".
func (c *Collection[T]) String() string {
	return fmt.Sprintf("collection%v", c.All())
}
