package seq

import "iter"

// Errorer is implemented by iterators that can fail, such as [*Seq].
type Errorer interface {
	Err() error
}

// Stopper is implemented by iterators that hold resources which must be
// released when the consumer abandons them early.
type Stopper interface {
	Stop()
}

// Err returns the error of it when it implements [Errorer], nil otherwise.
func Err(it Iterator) error {
	if e, ok := it.(Errorer); ok {
		return e.Err()
	}
	return nil
}

// Release stops it when it implements [Stopper].
func Release(it Iterator) {
	if s, ok := it.(Stopper); ok {
		s.Stop()
	}
}

// Collect exhausts it and returns its values. The result is never nil.
func Collect(it Iterator) ([]any, error) {
	out := []any{}
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out, Err(it)
}

// Empty returns an exhausted sequence.
func Empty() *Seq {
	return &Seq{done: true}
}

// Of creates a sequence over the given values.
func Of(values ...any) *Seq {
	return FromSlice(values)
}

// FromSlice creates a sequence over the provided slice without copying.
func FromSlice[T any](values []T) *Seq {
	idx := 0
	return Func(func() (any, bool) {
		if idx >= len(values) {
			return nil, false
		}
		v := values[idx]
		idx++
		return v, true
	})
}

// Range yields the ints in [start, end).
func Range(start, end int) *Seq {
	return RangeStep(start, end, 1)
}

// RangeStep yields start, start+step, ... while the value is before end.
// A zero step yields nothing.
func RangeStep(start, end, step int) *Seq {
	if step == 0 {
		return Empty()
	}
	n := start
	return Func(func() (any, bool) {
		if (step > 0 && n >= end) || (step < 0 && n <= end) {
			return nil, false
		}
		v := n
		n += step
		return v, true
	})
}

// Count yields start, start+1, ... without end.
func Count(start int) *Seq {
	n := start
	return Func(func() (any, bool) {
		v := n
		n++
		return v, true
	})
}

// Repeat yields v forever.
func Repeat(v any) *Seq {
	return Func(func() (any, bool) { return v, true })
}

// Pull converts a push-style iterator into a Seq. The underlying iterator is
// stopped when the Seq is exhausted or [Seq.Stop] is called.
func Pull(s iter.Seq[any]) *Seq {
	next, stop := iter.Pull(s)
	out := Func(next)
	out.stop = stop
	return out
}
