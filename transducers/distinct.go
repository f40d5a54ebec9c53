package transducers

import "github.com/hasbyte1/go-transducers/coll"

// Distinct forwards the first occurrence of every value and drops later
// duplicates. Values are compared by value ([coll.Key]), so two equal
// slices count as duplicates. The set of seen values grows with the input.
func Distinct() Transducer {
	return func(rf Reducer) Reducer {
		seen := make(map[any]struct{})
		return wrap(rf, func(acc, x any) Result {
			k, err := coll.Key(x)
			if err != nil {
				return Fail(err)
			}
			if _, dup := seen[k]; dup {
				return Continue(acc)
			}
			seen[k] = struct{}{}
			return rf.Step(acc, x)
		})
	}
}

// Dedupe drops an input equal to the one forwarded just before it, so runs
// of equal values collapse to one.
func Dedupe() Transducer {
	return func(rf Reducer) Reducer {
		var (
			last any
			has  bool
		)
		return wrap(rf, func(acc, x any) Result {
			k, err := coll.Key(x)
			if err != nil {
				return Fail(err)
			}
			if has && k == last {
				return Continue(acc)
			}
			last, has = k, true
			return rf.Step(acc, x)
		})
	}
}
