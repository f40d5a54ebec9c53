package lazy

import (
	"fmt"

	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/seq"
	"github.com/hasbyte1/go-transducers/transducers"
)

// ErrArity is returned when a function receives an unsupported number of
// sources.
var ErrArity = transducers.ErrArity

// Map yields f(x) for every x of the source. Map takes exactly one source and
// rejects several with [ErrArity]; use [MapN] to zip several sources.
func Map[A, B any](f func(A) B, sources ...any) (*seq.Seq, error) {
	return direct("map", transducers.Map(f), sources)
}

// TryMap yields f(x) for every x of the source. The first error from f ends
// the sequence and is reported by Err.
func TryMap[A, B any](f func(A) (B, error), sources ...any) (*seq.Seq, error) {
	return direct("try_map", transducers.TryMap(f), sources)
}

// MapIndexed yields f(i, x), where i is the 0-based position of x.
func MapIndexed[A, B any](f func(int, A) B, sources ...any) (*seq.Seq, error) {
	return direct("map_indexed", transducers.MapIndexed(f), sources)
}

// Keep yields v for every x of the source where f(x) returns (v, true).
func Keep[A, B any](f func(A) (B, bool), sources ...any) (*seq.Seq, error) {
	return direct("keep", transducers.Keep(f), sources)
}

// Filter yields the elements of the source for which pred returns true.
func Filter[A any](pred func(A) bool, sources ...any) (*seq.Seq, error) {
	return direct("filter", transducers.Filter(pred), sources)
}

// Remove yields the elements of the source for which pred returns false.
func Remove[A any](pred func(A) bool, sources ...any) (*seq.Seq, error) {
	return direct("remove", transducers.Remove(pred), sources)
}

// Take yields the first n elements of the source. Take with n ≤ 0 yields
// nothing and never pulls from the source.
func Take(n int, sources ...any) (*seq.Seq, error) {
	if n <= 0 {
		if err := arity("take", sources); err != nil {
			return nil, err
		}
		return seq.Empty(), nil
	}
	return direct("take", transducers.Take(n), sources)
}

// Drop yields all but the first n elements of the source.
func Drop(n int, sources ...any) (*seq.Seq, error) {
	return direct("drop", transducers.Drop(n), sources)
}

// Distinct yields the first occurrence of every value of the source.
func Distinct(sources ...any) (*seq.Seq, error) {
	return direct("distinct", transducers.Distinct(), sources)
}

// Dedupe collapses runs of equal consecutive values into one.
func Dedupe(sources ...any) (*seq.Seq, error) {
	return direct("dedupe", transducers.Dedupe(), sources)
}

// Partition yields []any groups of n consecutive elements; the last group
// may be shorter.
func Partition(n int, sources ...any) (*seq.Seq, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: partition size must be ≥ 1, got %d", transducers.ErrInvalidOption, n)
	}
	return direct("partition", transducers.Partition(n), sources)
}

// Concat yields the elements of every source in argument order. A source is
// opened only once the one before it is exhausted, so an unbounded source
// works as long as the consumer stops early.
//
//	s, _ := lazy.Concat([]int{1, 2}, "ab", seq.Range(3, 5)) // 1 2 "a" "b" 3 4
func Concat(sources ...any) (*seq.Seq, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: concat needs at least one source", ErrArity)
	}
	c := &chain{sources: sources}
	return seq.NewStoppable(c.next, c.stop), nil
}

type chain struct {
	sources []any
	it      seq.Iterator
	owned   bool
}

func (c *chain) next() (any, bool, error) {
	for {
		if c.it == nil {
			if len(c.sources) == 0 {
				return nil, false, nil
			}
			it, err := coll.Iterate(c.sources[0])
			if err != nil {
				return nil, false, err
			}
			_, own := c.sources[0].(seq.Iterator)
			c.it, c.owned = it, !own
			c.sources = c.sources[1:]
		}
		if x, ok := c.it.Next(); ok {
			return x, true, nil
		}
		if err := seq.Err(c.it); err != nil {
			return nil, false, err
		}
		c.stop()
	}
}

func (c *chain) stop() {
	if c.it != nil && c.owned {
		seq.Release(c.it)
	}
	c.it = nil
}

// MapN zips the sources and yields f applied to one element of each. The
// sequence ends with the shortest source.
//
//	s, _ := lazy.MapN(func(xs ...any) any { return xs[0].(int) + xs[1].(int) },
//		[]int{1, 2, 5, 7}, []int{3, 4, 99})
//	// 4 6 104
func MapN(f func(xs ...any) any, sources ...any) (*seq.Seq, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: map needs at least one source", ErrArity)
	}
	z := &zip{its: make([]seq.Iterator, 0, len(sources))}
	for _, src := range sources {
		it, err := coll.Iterate(src)
		if err != nil {
			z.stop()
			return nil, err
		}
		z.its = append(z.its, it)
		if _, own := src.(seq.Iterator); !own {
			z.owned = append(z.owned, it)
		}
	}
	return seq.NewStoppable(func() (any, bool, error) {
		xs, ok, err := z.next()
		if !ok {
			return nil, false, err
		}
		return f(xs...), true, nil
	}, z.stop), nil
}

type zip struct {
	its   []seq.Iterator
	owned []seq.Iterator
}

func (z *zip) next() ([]any, bool, error) {
	xs := make([]any, len(z.its))
	for i, it := range z.its {
		x, ok := it.Next()
		if !ok {
			return nil, false, seq.Err(it)
		}
		xs[i] = x
	}
	return xs, true, nil
}

func (z *zip) stop() {
	for _, it := range z.owned {
		seq.Release(it)
	}
}

func direct(name string, xf transducers.Transducer, sources []any) (*seq.Seq, error) {
	if err := arity(name, sources); err != nil {
		return nil, err
	}
	return transducers.Generate(xf, sources[0]), nil
}

func arity(name string, sources []any) error {
	if len(sources) != 1 {
		return fmt.Errorf("%w: %s takes exactly one source, got %d", ErrArity, name, len(sources))
	}
	return nil
}
