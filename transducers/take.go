package transducers

// Take forwards the first n inputs and then stops the reduction. The step
// that forwards the n-th input already reports Reduced, so no further input
// is pulled. Take(0) stops at the first input without forwarding it.
// Negative n behaves as 0.
func Take(n int) Transducer {
	return func(rf Reducer) Reducer {
		remaining := n
		return wrap(rf, func(acc, x any) Result {
			if remaining <= 0 {
				return Reduced(acc)
			}
			remaining--
			r := rf.Step(acc, x)
			if remaining == 0 {
				return r.Reduced()
			}
			return r
		})
	}
}

// Drop swallows the first n inputs and forwards the rest. Negative n
// behaves as 0.
func Drop(n int) Transducer {
	return func(rf Reducer) Reducer {
		remaining := n
		return wrap(rf, func(acc, x any) Result {
			if remaining > 0 {
				remaining--
				return Continue(acc)
			}
			return rf.Step(acc, x)
		})
	}
}
