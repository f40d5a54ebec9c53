package transducers_test

import (
	"errors"
	"slices"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-transducers/seq"
	xf "github.com/hasbyte1/go-transducers/transducers"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func inc(x int) int       { return x + 1 }
func square(x int) int    { return x * x }
func even(x int) bool     { return x%2 == 0 }
func positive(x int) bool { return x > 0 }

// counting returns 0, 1, 2, ... forever and counts how many values were
// pulled.
func counting(pulled *int) *seq.Seq {
	n := 0
	return seq.Func(func() (any, bool) {
		*pulled++
		v := n
		n++
		return v, true
	})
}

func into(t *testing.T, target any, x xf.Transducer, source any) any {
	t.Helper()
	out, err := xf.Into(target, x, source)
	if err != nil {
		t.Fatalf("Into: %v", err)
	}
	return out
}

func assertDiff(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Result
// ─────────────────────────────────────────────────────────────────────────────

func TestReducedIsIdempotent(t *testing.T) {
	once := xf.Reduced(1)
	twice := xf.Reduced(xf.Reduced(1))
	if once != twice {
		t.Fatalf("Reduced(Reduced(1)) = %v, want %v", twice, once)
	}
	if once.Reduced() != once {
		t.Fatal("Reduced().Reduced() must not wrap again")
	}
	if xf.Continue(1).Reduced() != once {
		t.Fatal("Continue(1).Reduced() should equal Reduced(1)")
	}
	if !twice.IsReduced() || twice.Value() != 1 {
		t.Fatalf("twice = %v", twice)
	}
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	r := xf.Fail(boom)
	if !errors.Is(r.Err(), boom) || r.IsReduced() {
		t.Fatalf("Fail = %v", r)
	}
	if r.Reduced().IsReduced() {
		t.Fatal("a failed result cannot be reduced")
	}
	if xf.Fail(nil).Err() == nil {
		t.Fatal("Fail(nil) must still carry an error")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce & Transduce
// ─────────────────────────────────────────────────────────────────────────────

func TestReduce(t *testing.T) {
	sum := xf.Fold(func(acc, x int) int { return acc + x })
	got, err := xf.Reduce(sum, 0, []int{1, 2, 3})
	if err != nil || got != 6 {
		t.Fatalf("Reduce = %v, %v", got, err)
	}
}

func TestReduceStopsWithoutPullingMore(t *testing.T) {
	pulled := 0
	rf := xf.StepFunc(func(acc, x any) xf.Result {
		if x.(int) == 2 {
			return xf.Reduced("stopped")
		}
		return xf.Continue(acc)
	})
	got, err := xf.Reduce(rf, nil, counting(&pulled))
	if err != nil || got != "stopped" {
		t.Fatalf("Reduce = %v, %v", got, err)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d values, want 3", pulled)
	}
}

func TestReduceDoesNotComplete(t *testing.T) {
	completed := 0
	rf := xf.Completing(
		func(acc, x any) xf.Result { return xf.Continue(acc) },
		func(acc any) xf.Result { completed++; return xf.Continue(acc) },
	)
	if _, err := xf.Reduce(rf, 0, []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	if completed != 0 {
		t.Fatalf("Reduce called Complete %d times", completed)
	}
}

func TestReduceSourceError(t *testing.T) {
	boom := errors.New("source failed")
	n := 0
	src := seq.New(func() (any, bool, error) {
		n++
		if n > 2 {
			return nil, false, boom
		}
		return n, true, nil
	})
	if _, err := xf.Reduce(xf.Conj, []any{}, src); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestReduceNotIterable(t *testing.T) {
	if _, err := xf.Reduce(xf.Conj, []any{}, 42); err == nil {
		t.Fatal("expected an error for a non-iterable source")
	}
}

func TestTransduceCompletesExactlyOnce(t *testing.T) {
	tests := []struct {
		name   string
		x      xf.Transducer
		source any
	}{
		{"empty", xf.Map(inc), []int{}},
		{"one", xf.Map(inc), []int{1}},
		{"many", xf.Filter(even), []int{1, 2, 3, 4}},
		{"reduced early", xf.Take(2), seq.Count(0)},
		{"partition", xf.Partition(2), seq.Range(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed := 0
			rf := xf.Completing(
				func(acc, x any) xf.Result { return xf.Continue(append(acc.([]any), x)) },
				func(acc any) xf.Result { completed++; return xf.Continue(acc) },
			)
			if _, err := xf.Transduce(tt.x, rf, []any{}, tt.source); err != nil {
				t.Fatal(err)
			}
			if completed != 1 {
				t.Fatalf("Complete called %d times, want 1", completed)
			}
		})
	}
}

func TestTransduceWithConj(t *testing.T) {
	l := []int{-1000, -2, -1, 0, 1, 2, 99, 404}
	tests := []struct {
		name string
		x    xf.Transducer
		in   any
		want []any
	}{
		{"a mapper", xf.Map(inc), []int{9, 10, 11}, []any{10, 11, 12}},
		{"a mapper on empty", xf.Map(inc), []int{}, []any{}},
		{"pos filter", xf.Filter(positive), l, []any{1, 2, 99, 404}},
		{"even+pos", xf.Comp(xf.Filter(positive), xf.Filter(even)), l, []any{2, 404}},
		{"increment positives", xf.Comp(xf.Filter(positive), xf.Map(inc)), l, []any{2, 3, 100, 405}},
		{"positives of increments", xf.Comp(xf.Map(inc), xf.Filter(positive)), l, []any{1, 2, 3, 100, 405}},
		{"odds", xf.Comp(xf.Filter(xf.Complement(even)), xf.Map(inc), xf.Map(inc)), []int{1, 2, 5, 9, 22, 28}, []any{3, 7, 11}},
		{"map five times", xf.Comp(xf.Map(inc), xf.Map(inc), xf.Map(inc), xf.Map(inc), xf.Map(inc)), []int{1, 2, 3}, []any{6, 7, 8}},
		{"take then filter", xf.Comp(xf.Take(10), xf.Filter(even)), seq.Range(0, 300), []any{0, 2, 4, 6, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xf.Transduce(tt.x, xf.Conj, []any{}, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			assertDiff(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

func TestCompOrderMatters(t *testing.T) {
	mapFirst := into(t, []any{}, xf.Comp(xf.Map(inc), xf.Filter(even)), []int{1, 2, 3})
	filterFirst := into(t, []any{}, xf.Comp(xf.Filter(even), xf.Map(inc)), []int{1, 2, 3})
	assertDiff(t, []any{2, 4}, mapFirst)
	assertDiff(t, []any{3}, filterFirst)
}

func TestCompIsAssociative(t *testing.T) {
	a, b, c := xf.Map(inc), xf.Filter(even), xf.Take(3)
	left := into(t, []any{}, xf.Comp(xf.Comp(a, b), c), seq.Range(0, 20))
	right := into(t, []any{}, xf.Comp(a, xf.Comp(b, c)), seq.Range(0, 20))
	flat := into(t, []any{}, xf.Comp(a, b, c), seq.Range(0, 20))
	assertDiff(t, []any{2, 4, 6}, flat)
	assertDiff(t, flat, left)
	assertDiff(t, flat, right)
}

func TestCompIdentity(t *testing.T) {
	got := into(t, []any{}, xf.Comp(xf.Identity, xf.Map(inc), nil), []int{1})
	assertDiff(t, []any{2}, got)
	got = into(t, []any{}, xf.Comp(nil), []int{1})
	assertDiff(t, []any{1}, got)
}

func TestCompose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if got := xf.Compose(double, inc)(5); got != 12 {
		t.Fatalf("Compose(double, inc)(5) = %d, want 12", got)
	}
	if got := xf.Compose(double)(5); got != 10 {
		t.Fatalf("Compose(double)(5) = %d", got)
	}
	length := xf.Compose2(func(s string) int { return len(s) }, func(n int) string { return string(make([]byte, n)) })
	if got := length(4); got != 4 {
		t.Fatalf("Compose2 = %d", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────────────────────────────────────

func TestTakeDropReconstruct(t *testing.T) {
	f := func(xs []int, k uint8) bool {
		n := int(k) % (len(xs) + 3)
		taken, err := xf.Into([]int{}, xf.Take(n), xs)
		if err != nil {
			return false
		}
		dropped, err := xf.Into([]int{}, xf.Drop(n), xs)
		if err != nil {
			return false
		}
		tk, dr := taken.([]int), dropped.([]int)
		return len(tk) == min(n, len(xs)) && slices.Equal(append(tk, dr...), xs)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPipelineOverRange(t *testing.T) {
	pipeline := xf.Comp(
		xf.Map(square),
		xf.Filter(func(x int) bool { return x%3 == 0 }),
		xf.Drop(10),
		xf.Take(3),
	)
	src := make([]int, 100)
	for i := range src {
		src[i] = i
	}
	got, err := xf.IntoNew(pipeline, src)
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, []int{900, 1089, 1296}, got)
}

func TestIntoNewDistinct(t *testing.T) {
	got, err := xf.IntoNew(xf.Distinct(), []int{1, 2, 3, 2, 1, 2, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, []int{1, 2, 3}, got)
}

func TestTransducerReuseHasFreshState(t *testing.T) {
	take2 := xf.Take(2)
	first := into(t, []any{}, take2, []int{1, 2, 3})
	second := into(t, []any{}, take2, []int{4, 5, 6})
	assertDiff(t, []any{1, 2}, first)
	assertDiff(t, []any{4, 5}, second)
}
