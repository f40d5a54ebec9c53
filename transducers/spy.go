package transducers

import "github.com/rs/zerolog"

// Spy returns a transducer that forwards every input unchanged and logs each
// step and completion of the wrapped reducer at debug level.
//
//	xf := transducers.Comp(transducers.Spy("in", log), transducers.Map(inc))
func Spy(name string, log zerolog.Logger) Transducer {
	return func(rf Reducer) Reducer {
		return SpyReducer(name, log, rf)
	}
}

// SpyReducer wraps rf so that every Step and Complete call is logged with
// its arguments and result.
func SpyReducer(name string, log zerolog.Logger, rf Reducer) Reducer {
	log = log.With().Str("reducer", name).Logger()
	return &reducer{
		step: func(acc, x any) Result {
			r := rf.Step(acc, x)
			log.Debug().
				Interface("acc", acc).
				Interface("input", x).
				Interface("result", r.value).
				Bool("reduced", r.IsReduced()).
				Err(r.err).
				Msg("step")
			return r
		},
		complete: func(acc any) Result {
			r := rf.Complete(acc)
			log.Debug().
				Interface("acc", acc).
				Interface("result", r.value).
				Err(r.err).
				Msg("complete")
			return r
		},
	}
}
