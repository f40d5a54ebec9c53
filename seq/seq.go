package seq

import "iter"

// Iterator is a pull-based iterator. Next returns the next value, or false
// when the iterator is exhausted.
type Iterator interface {
	Next() (any, bool)
}

// Seq is a lazy, single-pass sequence.
//
// Failures raised while producing values stop the sequence; they are
// reported by [Seq.Err] once Next has returned false.
type Seq struct {
	next func() (any, bool, error)
	stop func()
	err  error
	done bool
}

// New creates a Seq from a producer function. The producer returns
// (value, true, nil) for each element, (nil, false, nil) at the end, and a
// non-nil error to abort the sequence. It is never called again after it
// reported the end or an error.
func New(next func() (any, bool, error)) *Seq {
	return &Seq{next: next}
}

// NewStoppable is like [New], and additionally calls stop exactly once when
// the sequence ends, fails or is abandoned with [Seq.Stop].
func NewStoppable(next func() (any, bool, error), stop func()) *Seq {
	return &Seq{next: next, stop: stop}
}

// Func creates a Seq from an infallible producer function.
func Func(next func() (any, bool)) *Seq {
	return New(func() (any, bool, error) {
		v, ok := next()
		return v, ok, nil
	})
}

// Next yields the next value. When ok is false, iteration is complete.
func (s *Seq) Next() (any, bool) {
	if s == nil || s.done || s.next == nil {
		return nil, false
	}
	v, ok, err := s.next()
	if err != nil {
		s.err = err
		s.finish()
		return nil, false
	}
	if !ok {
		s.finish()
		return nil, false
	}
	return v, true
}

// Err returns the error that stopped the sequence, if any.
func (s *Seq) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Stop abandons the sequence, releasing any resources held by its producer.
// Next reports false afterwards.
func (s *Seq) Stop() {
	if s != nil && !s.done {
		s.finish()
	}
}

func (s *Seq) finish() {
	s.done = true
	s.next = nil
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// All returns a range-over-func view of the remaining values. Breaking out of
// the loop leaves the rest of the sequence unconsumed.
func (s *Seq) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect exhausts the sequence and returns its values.
func (s *Seq) Collect() ([]any, error) {
	return Collect(s)
}
