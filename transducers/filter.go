package transducers

// Filter forwards the inputs for which pred returns true.
func Filter[A any](pred func(A) bool) Transducer {
	return func(rf Reducer) Reducer {
		return wrap(rf, func(acc, x any) Result {
			a, err := as[A](x)
			if err != nil {
				return Fail(err)
			}
			if !pred(a) {
				return Continue(acc)
			}
			return rf.Step(acc, x)
		})
	}
}

// Remove forwards the inputs for which pred returns false.
func Remove[A any](pred func(A) bool) Transducer {
	return Filter(Complement(pred))
}

// Complement returns the negation of pred.
func Complement[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool { return !pred(a) }
}
