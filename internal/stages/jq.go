package stages

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/itchyny/gojq"

	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/collections"
	"github.com/hasbyte1/go-transducers/transducers"
)

// Query is a compiled jq expression applied to each element.
//
// Elements are presented to jq in its own data model: key/value pairs become
// {"key": k, "value": v} objects, sets become sorted arrays and non-string
// map keys are formatted as strings. An object result with exactly the keys
// "key" and "value" is turned back into a pair, so a map stage over a mapping
// can be collected into a mapping again.
type Query struct {
	Expr string
	code *gojq.Code
}

// ParseQuery parses and compiles expr.
func ParseQuery(expr string) (*Query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}
	return &Query{Expr: expr, code: code}, nil
}

// First runs the query on x and returns its first output.
func (q *Query) First(x any) (any, bool, error) {
	it := q.code.Run(Plain(x))
	v, ok := it.Next()
	if !ok {
		return nil, false, nil
	}
	if err, ok := v.(error); ok {
		return nil, false, fmt.Errorf("jq %q: %w", q.Expr, err)
	}
	return fromJQ(v), true, nil
}

// Truthy reports whether the first output of the query is neither false nor
// null. A query with no output is false.
func (q *Query) Truthy(x any) (bool, error) {
	v, ok, err := q.First(x)
	if err != nil || !ok {
		return false, err
	}
	b, isBool := v.(bool)
	return v != nil && (!isBool || b), nil
}

func (q *Query) transducer(kind string) transducers.Transducer {
	switch kind {
	case KindFilter:
		return predicate(q.Truthy, false)
	case KindRemove:
		return predicate(q.Truthy, true)
	case KindKeep:
		return keepFunc(func(x any) (any, error) {
			v, _, err := q.First(x)
			return v, err
		})
	case KindMapIndexed:
		return q.indexed()
	default:
		return transducers.TryMap(q.mapper)
	}
}

func (q *Query) mapper(x any) (any, error) {
	v, ok, err := q.First(x)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoResult, q.Expr)
	}
	return v, nil
}

// indexed presents each element as {"index": i, "value": x}. The index
// counts elements that reached this stage.
func (q *Query) indexed() transducers.Transducer {
	return func(rf transducers.Reducer) transducers.Reducer {
		i := 0
		return transducers.Completing(func(acc, x any) transducers.Result {
			v, err := q.mapper(map[string]any{"index": i, "value": Plain(x)})
			if err != nil {
				return transducers.Fail(err)
			}
			i++
			return rf.Step(acc, v)
		}, rf.Complete)
	}
}

// Plain converts x to the JSON data model used by jq. Pairs become
// {"key", "value"} objects, sets, collections and slices of any element type
// become arrays, map keys become strings and sized numbers become int or
// float64. Integers outside the int range become *big.Int.
func Plain(x any) any {
	switch v := x.(type) {
	case nil, bool, int, float64, string, *big.Int:
		return x
	case collections.Pair[any, any]:
		return map[string]any{"key": Plain(v.First), "value": Plain(v.Second)}
	case coll.Entry:
		k, val := v.Entry()
		return map[string]any{"key": Plain(k), "value": Plain(val)}
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = Plain(e)
		}
		return out
	case coll.Set:
		return Plain(v.Items())
	case coll.FrozenSet:
		return Plain(v.Items())
	case *collections.Collection[any]:
		return Plain(v.All())
	}
	return plainValue(reflect.ValueOf(x))
}

// plainValue handles named and typed values by kind.
func plainValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return big.NewInt(n)
		}
		return int(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return new(big.Int).SetUint64(n)
		}
		return int(n)
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Plain(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[fmt.Sprint(it.Key().Interface())] = Plain(it.Value().Interface())
		}
		return out
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func fromJQ(v any) any {
	if m, ok := v.(map[string]any); ok && len(m) == 2 {
		k, hasKey := m["key"]
		val, hasValue := m["value"]
		if hasKey && hasValue {
			return collections.PairOf(k, val)
		}
	}
	return v
}
