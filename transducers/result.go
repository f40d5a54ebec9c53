package transducers

import (
	"errors"
	"fmt"
)

// Result is the outcome of one reducing step: the accumulator to continue
// with, the accumulator to stop with (Reduced), or a failure.
//
//	r := rf.Step(acc, x)
//	switch {
//	case r.Err() != nil:
//		return r.Err()
//	case r.IsReduced():
//		return r.Value() // stop pulling input
//	}
//	acc = r.Value()
type Result struct {
	value any
	// depth counts Reduced wrappings. It only exceeds 1 while a nested
	// reduction (Concat) hands a Reduced result back to its caller.
	depth uint8
	err   error
}

// Continue returns a result that carries acc on to the next step.
func Continue(acc any) Result {
	return Result{value: acc}
}

// Reduced returns a result that stops the reduction with acc as the final
// accumulator. It is idempotent: Reduced of a reduced Result returns that
// Result unchanged.
func Reduced(acc any) Result {
	if r, ok := acc.(Result); ok {
		return r.Reduced()
	}
	return Result{value: acc, depth: 1}
}

// Fail returns a result that aborts the reduction with err. A nil err is
// replaced by a placeholder so that a failure is never mistaken for success.
func Fail(err error) Result {
	if err == nil {
		err = errors.New("transducers: nil error")
	}
	return Result{err: err}
}

// Reduced marks r as reduced. Failed and already reduced results are
// returned unchanged.
func (r Result) Reduced() Result {
	if r.err != nil || r.depth > 0 {
		return r
	}
	r.depth = 1
	return r
}

// IsReduced reports whether r requests termination.
func (r Result) IsReduced() bool { return r.depth > 0 }

// Value returns the accumulator carried by r.
func (r Result) Value() any { return r.value }

// Err returns the failure carried by r, if any.
func (r Result) Err() error { return r.err }

// String formats r for debugging.
func (r Result) String() string {
	switch {
	case r.err != nil:
		return fmt.Sprintf("Fail(%v)", r.err)
	case r.depth > 0:
		return fmt.Sprintf("Reduced(%v)", r.value)
	default:
		return fmt.Sprintf("Continue(%v)", r.value)
	}
}

// unreduced strips one level of Reduced wrapping.
func (r Result) unreduced() Result {
	if r.depth > 0 {
		r.depth--
	}
	return r
}
