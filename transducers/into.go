package transducers

import (
	"fmt"

	"github.com/hasbyte1/go-transducers/coll"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

// DefaultChunkSize is the number of elements buffered before a bulk append
// into an immutable target.
const DefaultChunkSize = 32

// Options configures [IntoWith].
type Options struct {
	// ChunkSize is the batch size used for immutable targets.
	// Minimum: 1.  Default: [DefaultChunkSize].
	ChunkSize int
}

// DefaultOptions returns Options with the default chunk size.
func DefaultOptions() Options {
	return Options{ChunkSize: DefaultChunkSize}
}

// Validate reports out-of-range options with [ErrInvalidOption].
func (o Options) Validate() error {
	if o.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size must be ≥ 1, got %d", ErrInvalidOption, o.ChunkSize)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Conj reducers
// ──────────────────────────────────────────────────────────────────────────────

// Conj is the reducing function that appends each input to the accumulator
// with [coll.Conj].
var Conj Reducer = StepFunc(func(acc, x any) Result {
	out, err := coll.Conj(acc, x)
	if err != nil {
		return Fail(err)
	}
	return Continue(out)
})

// ChunkedConj returns a reducing function that appends to the accumulator in
// batches of size elements with [coll.ConjMany]. Complete appends the
// trailing partial batch. The returned Reducer owns its buffer and must not
// be shared between reductions.
func ChunkedConj(size int) Reducer {
	if size < 1 {
		size = 1
	}
	c := &chunkedConj{size: size}
	return &reducer{step: c.step, complete: c.flush}
}

type chunkedConj struct {
	size int
	buf  []any
}

func (c *chunkedConj) step(acc, x any) Result {
	if c.buf == nil {
		c.buf = make([]any, 0, c.size)
	}
	c.buf = append(c.buf, x)
	if len(c.buf) < c.size {
		return Continue(acc)
	}
	return c.flush(acc)
}

func (c *chunkedConj) flush(acc any) Result {
	batch := c.buf
	c.buf = nil
	out, err := coll.ConjMany(acc, batch)
	if err != nil {
		return Fail(err)
	}
	return Continue(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Drivers
// ──────────────────────────────────────────────────────────────────────────────

// Into appends the inputs of source, transformed by xf, to target and
// returns the resulting container. A nil xf copies source unchanged.
// Immutable targets (strings, frozen sets, collections) are appended to in
// batches of [DefaultChunkSize].
//
//	out, _ := transducers.Into([]any{}, transducers.Map(inc), []int{1, 2})
//	// []any{2, 3}
func Into(target any, xf Transducer, source any) (any, error) {
	return IntoWith(target, xf, source, DefaultOptions())
}

// IntoWith is [Into] with explicit options.
func IntoWith(target any, xf Transducer, source any, opts Options) (any, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	immutable, err := coll.IsImmutable(target)
	if err != nil {
		return nil, err
	}
	rf := Conj
	if immutable {
		rf = ChunkedConj(opts.ChunkSize)
	}
	return Transduce(xf, rf, target, source)
}

// IntoNew is [Into] with an empty container of the same type as source as
// the target.
//
//	out, _ := transducers.IntoNew(transducers.Distinct(), []int{1, 2, 1}) // []int{1, 2}
func IntoNew(xf Transducer, source any) (any, error) {
	target, err := coll.Empty(source)
	if err != nil {
		return nil, err
	}
	return Into(target, xf, source)
}
