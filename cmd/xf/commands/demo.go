package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/collections"
	"github.com/hasbyte1/go-transducers/lazy"
	"github.com/hasbyte1/go-transducers/seq"
	"github.com/hasbyte1/go-transducers/transducers"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the combinators with small examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDemo(cmd.OutOrStdout(), newStyles(defaultTheme))
	},
}

// demo writes labelled results and keeps the first error.
type demo struct {
	w   io.Writer
	st  styles
	err error
}

func (d *demo) section(title string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "\n%s\n", d.st.Title.Render(title))
}

// show returns a function printing a result under label, so that a call
// returning (value, error) can be passed straight to it.
func (d *demo) show(label string) func(v any, err error) {
	return func(v any, err error) {
		if d.err != nil {
			return
		}
		if err != nil {
			d.err = fmt.Errorf("%s: %w", label, err)
			return
		}
		_, d.err = fmt.Fprintf(d.w, "  %s %v\n", d.st.Label.Render(label+" =>"), v)
	}
}

// collect is show for a lazy sequence.
func (d *demo) collect(label string) func(s *seq.Seq, err error) {
	return func(s *seq.Seq, err error) {
		if err != nil {
			d.show(label)(nil, err)
			return
		}
		d.show(label)(s.Collect())
	}
}

func inc(x int) int       { return x + 1 }
func positive(x int) bool { return x > 0 }
func even(x int) bool     { return x%2 == 0 }

func writeDemo(w io.Writer, st styles) error {
	d := &demo{w: w, st: st}
	conj := transducers.Conj

	d.section("take")
	d.collect("take 3")(lazy.Take(3, []int{1, 2, 3, 6, 9, 101}))
	d.collect("take 12")(lazy.Take(12, []int{2, 1, 99}))

	d.section("drop")
	d.collect("drop 3")(lazy.Drop(3, []int{1, 2, 3, 6, 9, 101}))
	d.collect("drop 12")(lazy.Drop(12, []int{2, 1, 99}))

	d.section("conj")
	d.show("list")(coll.Conj([]any{}, 1, 2, 3, 2, 1))
	d.show("set")(coll.Conj(coll.Set{}, 1, 1, 2, 3, 2))
	d.show("frozen set")(coll.Conj(coll.FrozenSet{}, 3, 1, 2))
	d.show("string")(coll.Conj("ab", "c", 'd'))
	d.show("dict")(coll.Conj(map[any]any{}, collections.PairOf(1, 2), collections.PairOf(2, 4)))
	d.show("dict overwrite")(coll.Conj(map[any]any{}, collections.PairOf(1, 2), collections.PairOf(1, 3)))
	d.show("take from a dict")(transducers.Into(map[any]any{}, transducers.Take(2), map[int]int{1: 1, 2: 2, 3: 3}))

	d.section("lazy")
	d.collect("map inc")(lazy.Map(inc, []int{1, 2, 5, 7}))
	add := func(xs ...any) any { return xs[0].(int) + xs[1].(int) }
	d.collect("map add over two sources")(lazy.MapN(add, []int{1, 2, 5, 7}, []int{3, 4, 99}))
	d.collect("concat")(lazy.Concat([]int{1, 2}, "ab", seq.Range(3, 5)))
	d.collect("partition 3")(lazy.Partition(3, seq.Range(0, 7)))

	d.section("transducers")
	l := []int{-1000, -2, -1, 0, 1, 2, 99, 404}
	d.show("a mapper")(transducers.Transduce(transducers.Map(inc), conj, []any{}, []int{9, 10, 11}))
	d.show("a mapper over nothing")(transducers.Transduce(transducers.Map(inc), conj, []any{}, []int{}))
	d.show("a pos filter")(transducers.Transduce(transducers.Filter(positive), conj, []any{}, l))
	d.show("even+pos filter")(transducers.Transduce(
		transducers.Comp(transducers.Filter(positive), transducers.Filter(even)), conj, []any{}, l))
	d.show("increment positives")(transducers.Transduce(
		transducers.Comp(transducers.Filter(positive), transducers.Map(inc)), conj, []any{}, l))
	d.show("positives of increments")(transducers.Transduce(
		transducers.Comp(transducers.Map(inc), transducers.Filter(positive)), conj, []any{}, l))

	firstEvens := transducers.Comp(transducers.Filter(even), transducers.Map(inc), transducers.Take(5))
	d.show("increment first few evens")(transducers.Into([]any{}, firstEvens, seq.Range(0, 20)))
	d.show("... of an unbounded range")(transducers.Into([]any{}, firstEvens, seq.Count(0)))
	d.show("filter odds then map twice")(transducers.Into([]any{},
		transducers.Comp(
			transducers.Filter(transducers.Complement(even)),
			transducers.Map(inc),
			transducers.Map(inc),
		), []int{1, 2, 5, 9, 22, 28}))
	d.show("take 10 then filter evens")(transducers.Into([]any{},
		transducers.Comp(transducers.Take(10), transducers.Filter(even)), seq.Range(0, 300)))
	d.show("drop, stringify, take")(transducers.Into([]any{},
		transducers.Comp(transducers.Drop(6), transducers.Map(strconv.Itoa), transducers.Take(3)), seq.Range(0, 15)))
	d.show("remove nil, take 3")(transducers.Into([]any{},
		transducers.Comp(transducers.Remove(func(v any) bool { return v == nil }), transducers.Take(3)),
		[]any{nil, 1, nil, 2, nil, 6, nil}))
	d.show("distinct")(transducers.IntoNew(transducers.Distinct(), []any{1, 2, 3, 2, 1, 2, 3}))
	d.show("dedupe")(transducers.IntoNew(transducers.Dedupe(), []any{1, 1, 2, 2, 1}))

	d.section("generate")
	g := transducers.Generate(transducers.Comp(transducers.Drop(5), transducers.Map(inc), transducers.Take(6)), seq.Range(0, 50))
	d.collect("drop 5, inc, take 6")(g, nil)
	for n := range 4 {
		d.collect("take "+strconv.Itoa(n)+" of range 2")(transducers.Generate(transducers.Take(n), seq.Range(0, 2)), nil)
	}

	if d.err == nil {
		_, d.err = fmt.Fprintf(w, "\n%s\n", st.Help.Render("see `xf run --help` to build your own pipelines"))
	}
	return d.err
}
