package transducers

import "fmt"

// Partition groups inputs into []any slices of n elements. A full group is
// forwarded as soon as it fills; a trailing partial group is forwarded on
// completion, before the downstream completion runs. n < 1 fails with
// [ErrInvalidOption].
func Partition(n int) Transducer {
	return func(rf Reducer) Reducer {
		var buf []any
		return &reducer{
			step: func(acc, x any) Result {
				if n < 1 {
					return Fail(fmt.Errorf("%w: partition size must be ≥ 1, got %d", ErrInvalidOption, n))
				}
				buf = append(buf, x)
				if len(buf) < n {
					return Continue(acc)
				}
				group := buf
				buf = nil
				return rf.Step(acc, group)
			},
			complete: func(acc any) Result {
				if len(buf) > 0 {
					group := buf
					buf = nil
					r := rf.Step(acc, group)
					if r.err != nil {
						return r
					}
					acc = r.value
				}
				return rf.Complete(acc)
			},
		}
	}
}
