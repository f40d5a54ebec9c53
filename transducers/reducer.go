package transducers

import (
	"fmt"
	"reflect"
)

// Reducer is a reducing function. Step folds one input into the
// accumulator; Complete is called exactly once after the last step so that
// buffering transducers can flush.
type Reducer interface {
	Step(acc, x any) Result
	Complete(acc any) Result
}

// StepFunc adapts a plain step function to a [Reducer]. Its Complete
// returns the accumulator unchanged.
type StepFunc func(acc, x any) Result

// Step calls f(acc, x).
func (f StepFunc) Step(acc, x any) Result { return f(acc, x) }

// Complete returns acc unchanged.
func (f StepFunc) Complete(acc any) Result { return Continue(acc) }

// Completing pairs a step function with an explicit completion. A nil
// complete behaves like [StepFunc].
func Completing(step StepFunc, complete func(acc any) Result) Reducer {
	if complete == nil {
		return step
	}
	return &reducer{step: step, complete: complete}
}

// Fold builds a Reducer from a typed two-argument function. The accumulator
// must have type R and every input type A; anything else fails with
// [ErrElementType].
//
//	sum := transducers.Fold(func(acc, x int) int { return acc + x })
//	total, _ := transducers.Reduce(sum, 0, []int{1, 2, 3}) // 6
func Fold[R, A any](f func(R, A) R) Reducer {
	return StepFunc(func(acc, x any) Result {
		r, err := as[R](acc)
		if err != nil {
			return Fail(fmt.Errorf("accumulator: %w", err))
		}
		a, err := as[A](x)
		if err != nil {
			return Fail(err)
		}
		return Continue(f(r, a))
	})
}

// reducer is the Reducer built by every combinator.
type reducer struct {
	step     func(acc, x any) Result
	complete func(acc any) Result
}

func (r *reducer) Step(acc, x any) Result  { return r.step(acc, x) }
func (r *reducer) Complete(acc any) Result { return r.complete(acc) }

// wrap returns a reducer with the given step that passes completion through
// to rf.
func wrap(rf Reducer, step func(acc, x any) Result) Reducer {
	return &reducer{step: step, complete: rf.Complete}
}

// as asserts x to T. A nil x is the zero value of an interface type T.
func as[T any](x any) (T, error) {
	if v, ok := x.(T); ok {
		return v, nil
	}
	var zero T
	t := reflect.TypeFor[T]()
	if x == nil && t.Kind() == reflect.Interface {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: got %T, want %s", ErrElementType, x, t)
}
