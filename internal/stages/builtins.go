package stages

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/hasbyte1/go-transducers/transducers"
)

type (
	mapFunc  func(any) (any, error)
	predFunc func(any) (bool, error)
)

var mappers = map[string]mapFunc{
	"inc":    numeric(func(i int) any { return i + 1 }, func(f float64) any { return f + 1 }),
	"dec":    numeric(func(i int) any { return i - 1 }, func(f float64) any { return f - 1 }),
	"square": numeric(func(i int) any { return i * i }, func(f float64) any { return f * f }),
	"negate": numeric(func(i int) any { return -i }, func(f float64) any { return -f }),
	"upper":  textual(strings.ToUpper),
	"lower":  textual(strings.ToLower),
	"trim":   textual(strings.TrimSpace),
	"string": func(x any) (any, error) { return fmt.Sprint(x), nil },
	"len":    length,
}

var predicates = map[string]predFunc{
	"even":     intPred(func(i int) bool { return i%2 == 0 }),
	"odd":      intPred(func(i int) bool { return i%2 != 0 }),
	"positive": numPred(func(f float64) bool { return f > 0 }),
	"negative": numPred(func(f float64) bool { return f < 0 }),
	"zero":     numPred(func(f float64) bool { return f == 0 }),
	"nil":      func(x any) (bool, error) { return x == nil, nil },
	"space": func(x any) (bool, error) {
		s, ok := x.(string)
		if !ok {
			return false, fmt.Errorf("%w: space(%T)", ErrOperand, x)
		}
		return strings.TrimFunc(s, unicode.IsSpace) == "", nil
	},
	"empty": func(x any) (bool, error) {
		n, err := length(x)
		if err != nil {
			return false, err
		}
		return n == 0, nil
	},
}

// Mappers lists the builtin names usable by map and keep stages.
func Mappers() []string { return slices.Sorted(maps.Keys(mappers)) }

// Predicates lists the builtin names usable by filter and remove stages.
func Predicates() []string { return slices.Sorted(maps.Keys(predicates)) }

func numeric(fi func(int) any, ff func(float64) any) mapFunc {
	return func(x any) (any, error) {
		switch v := x.(type) {
		case int:
			return fi(v), nil
		case float64:
			return ff(v), nil
		}
		return nil, fmt.Errorf("%w: %T is not a number", ErrOperand, x)
	}
}

func textual(f func(string) string) mapFunc {
	return func(x any) (any, error) {
		s, ok := x.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a string", ErrOperand, x)
		}
		return f(s), nil
	}
}

func length(x any) (any, error) {
	switch v := x.(type) {
	case string:
		return len([]rune(v)), nil
	case []any:
		return len(v), nil
	case map[string]any:
		return len(v), nil
	case map[any]any:
		return len(v), nil
	}
	return nil, fmt.Errorf("%w: %T has no length", ErrOperand, x)
}

func intPred(f func(int) bool) predFunc {
	return func(x any) (bool, error) {
		i, ok := x.(int)
		if !ok {
			return false, fmt.Errorf("%w: %T is not an integer", ErrOperand, x)
		}
		return f(i), nil
	}
}

func numPred(f func(float64) bool) predFunc {
	return func(x any) (bool, error) {
		switch v := x.(type) {
		case int:
			return f(float64(v)), nil
		case float64:
			return f(v), nil
		}
		return false, fmt.Errorf("%w: %T is not a number", ErrOperand, x)
	}
}

// predicate is Filter for a predicate that can fail. With negate set it
// behaves like Remove.
func predicate(p predFunc, negate bool) transducers.Transducer {
	return func(rf transducers.Reducer) transducers.Reducer {
		return transducers.Completing(func(acc, x any) transducers.Result {
			ok, err := p(x)
			if err != nil {
				return transducers.Fail(err)
			}
			if ok == negate {
				return transducers.Continue(acc)
			}
			return rf.Step(acc, x)
		}, rf.Complete)
	}
}

// keepFunc forwards f(x) unless it is nil.
func keepFunc(f mapFunc) transducers.Transducer {
	return func(rf transducers.Reducer) transducers.Reducer {
		return transducers.Completing(func(acc, x any) transducers.Result {
			y, err := f(x)
			if err != nil {
				return transducers.Fail(err)
			}
			if y == nil {
				return transducers.Continue(acc)
			}
			return rf.Step(acc, y)
		}, rf.Complete)
	}
}
