package transducers

import (
	"iter"

	"github.com/hasbyte1/go-transducers/seq"
)

// Generate returns a lazy sequence of the values xf produces from source.
//
// The transduction runs as a coroutine of the consumer: input is pulled only
// when the sequence is asked for a value, and every value a step forwards is
// handed out as soon as it is produced, so a step that expands one input into
// many (e.g. [Concat] over an unbounded collection) never buffers them. Once
// the input is exhausted or a step reports Reduced, completion runs exactly
// once and its values (e.g. the last group of [Partition]) are yielded too.
// Errors end the sequence and are reported by [seq.Seq.Err].
//
// Abandon a sequence that is not read to the end with [seq.Seq.Stop].
//
//	g := transducers.Generate(transducers.Comp(transducers.Drop(5), transducers.Take(3)), seq.Count(0))
//	for v := range g.All() {
//		fmt.Println(v) // 5, 6, 7
//	}
func Generate(xf Transducer, source any) *seq.Seq {
	if xf == nil {
		xf = Identity
	}
	g := &generator{xf: xf, source: source}
	next, stop := iter.Pull(g.run)
	return seq.NewStoppable(func() (any, bool, error) {
		v, ok := next()
		if !ok {
			return nil, false, g.err
		}
		return v, true, nil
	}, stop)
}

type generator struct {
	xf      Transducer
	source  any
	err     error
	stopped bool
}

// run pushes source through xf, yielding each forwarded value.
func (g *generator) run(yield func(any) bool) {
	rf := g.xf(StepFunc(func(acc, x any) Result {
		if g.stopped || !yield(x) {
			g.stopped = true
			return Reduced(acc)
		}
		return Continue(acc)
	}))
	if r := reduce(rf, nil, g.source); r.err != nil {
		g.err = r.err
		return
	}
	if g.stopped {
		return
	}
	if r := rf.Complete(nil); r.err != nil {
		g.err = r.err
	}
}
