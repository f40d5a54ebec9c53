package transducers

// Map forwards f(x) for every input x.
//
//	inc := transducers.Map(func(x int) int { return x + 1 })
func Map[A, B any](f func(A) B) Transducer {
	return func(rf Reducer) Reducer {
		return wrap(rf, func(acc, x any) Result {
			a, err := as[A](x)
			if err != nil {
				return Fail(err)
			}
			return rf.Step(acc, f(a))
		})
	}
}

// TryMap is [Map] for fallible functions. An error from f stops the
// reduction and is returned by the driver.
func TryMap[A, B any](f func(A) (B, error)) Transducer {
	return func(rf Reducer) Reducer {
		return wrap(rf, func(acc, x any) Result {
			a, err := as[A](x)
			if err != nil {
				return Fail(err)
			}
			b, err := f(a)
			if err != nil {
				return Fail(err)
			}
			return rf.Step(acc, b)
		})
	}
}

// MapIndexed forwards f(i, x), where i counts the inputs forwarded so far,
// starting at 0.
func MapIndexed[A, B any](f func(int, A) B) Transducer {
	return func(rf Reducer) Reducer {
		i := 0
		return wrap(rf, func(acc, x any) Result {
			a, err := as[A](x)
			if err != nil {
				return Fail(err)
			}
			r := rf.Step(acc, f(i, a))
			if r.err == nil {
				i++
			}
			return r
		})
	}
}

// Keep forwards v for every input x where f(x) returns (v, true) and drops
// inputs where it returns false. A nil v is forwarded like any other value.
//
//	parse := transducers.Keep(func(s string) (int, bool) {
//		n, err := strconv.Atoi(s)
//		return n, err == nil
//	})
func Keep[A, B any](f func(A) (B, bool)) Transducer {
	return func(rf Reducer) Reducer {
		return wrap(rf, func(acc, x any) Result {
			a, err := as[A](x)
			if err != nil {
				return Fail(err)
			}
			b, ok := f(a)
			if !ok {
				return Continue(acc)
			}
			return rf.Step(acc, b)
		})
	}
}
