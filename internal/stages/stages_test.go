package stages_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-transducers/collections"
	"github.com/hasbyte1/go-transducers/internal/stages"
	"github.com/hasbyte1/go-transducers/seq"
	"github.com/hasbyte1/go-transducers/transducers"
)

func run(t *testing.T, cfgs []stages.Config, source any) []any {
	t.Helper()
	xf, err := stages.Build(cfgs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out, err := transducers.Into([]any{}, xf, source)
	if err != nil {
		t.Fatalf("Into: %v", err)
	}
	return out.([]any)
}

func assertDiff(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Builtins
// ─────────────────────────────────────────────────────────────────────────────

func TestBuildBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		cfgs   []stages.Config
		source any
		want   []any
	}{
		{"empty pipeline", nil, []int{1, 2}, []any{1, 2}},
		{"squares of evens", []stages.Config{
			{Kind: "filter", Fn: "even"},
			{Kind: "map", Fn: "square"},
		}, seq.Range(0, 7), []any{0, 4, 16, 36}},
		{"remove spaces then upper", []stages.Config{
			{Kind: "remove", Fn: "space"},
			{Kind: "map", Fn: "upper"},
		}, "h e y", []any{"H", "E", "Y"}},
		{"floats", []stages.Config{{Kind: "map", Fn: "inc"}}, []any{1.5, 2}, []any{2.5, 3}},
		{"take drop", []stages.Config{
			{Kind: "drop", N: 2},
			{Kind: "take", N: 2},
		}, seq.Count(0), []any{2, 3}},
		{"distinct dedupe", []stages.Config{
			{Kind: "dedupe"},
			{Kind: "distinct"},
		}, []int{1, 1, 2, 1, 3, 3}, []any{1, 2, 3}},
		{"partition sizes", []stages.Config{
			{Kind: "partition", N: 2},
			{Kind: "map", Fn: "len"},
		}, seq.Range(0, 5), []any{2, 2, 1}},
		{"concat", []stages.Config{{Kind: "concat"}}, []any{[]any{1}, "ab"}, []any{1, "a", "b"}},
		{"keep", []stages.Config{{Kind: "keep", Fn: "string"}}, []any{nil, 1}, []any{"<nil>", "1"}},
		{"filter nil", []stages.Config{{Kind: "remove", Fn: "nil"}}, []any{nil, 1, nil}, []any{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDiff(t, tt.want, run(t, tt.cfgs, tt.source))
		})
	}
}

func TestBuiltinOperandError(t *testing.T) {
	xf, err := stages.Build([]stages.Config{{Kind: "filter", Fn: "even"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := transducers.Into([]any{}, xf, []any{1, "x"}); !errors.Is(err, stages.ErrOperand) {
		t.Fatalf("err = %v, want ErrOperand", err)
	}
}

func TestNames(t *testing.T) {
	if len(stages.Mappers()) == 0 || len(stages.Predicates()) == 0 {
		t.Fatal("no builtins registered")
	}
	for _, name := range stages.Predicates() {
		if _, err := stages.Build([]stages.Config{{Kind: "filter", Fn: name}}); err != nil {
			t.Errorf("predicate %q: %v", name, err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// jq expressions
// ─────────────────────────────────────────────────────────────────────────────

func TestBuildExpressions(t *testing.T) {
	tests := []struct {
		name   string
		cfgs   []stages.Config
		source any
		want   []any
	}{
		{"map", []stages.Config{{Kind: "map", Expr: ". * 10"}}, []int{1, 2}, []any{10, 20}},
		{"filter", []stages.Config{{Kind: "filter", Expr: ". > 1"}}, []int{1, 2, 3}, []any{2, 3}},
		{"remove", []stages.Config{{Kind: "remove", Expr: ". > 1"}}, []int{1, 2, 3}, []any{1}},
		{"keep", []stages.Config{{Kind: "keep", Expr: ".name"}},
			[]any{map[string]any{"name": "a"}, map[string]any{}, map[string]any{"name": "b"}},
			[]any{"a", "b"}},
		{"map indexed", []stages.Config{{Kind: "map_indexed", Expr: `"\(.index):\(.value)"`}},
			[]string{"a", "b"}, []any{"0:a", "1:b"}},
		{"objects", []stages.Config{{Kind: "map", Expr: "{n: .}"}}, []int{1}, []any{map[string]any{"n": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDiff(t, tt.want, run(t, tt.cfgs, tt.source))
		})
	}
}

func TestExpressionOverMapping(t *testing.T) {
	xf, err := stages.Build([]stages.Config{
		{Kind: "filter", Expr: ".value > 1"},
		{Kind: "map", Expr: "{key: (.key | ascii_upcase), value: (.value * 2)}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := transducers.IntoNew(xf, map[string]any{"a": 1, "b": 2, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[string]any{"B": 4, "C": 6}, got)
}

func TestQueryFirst(t *testing.T) {
	q, err := stages.ParseQuery(".key")
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := q.First(collections.PairOf[any, any]("k", 1))
	if err != nil || !ok || v != "k" {
		t.Fatalf("First = %v, %v, %v", v, ok, err)
	}
	empty, err := stages.ParseQuery("empty")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := empty.First(1); ok || err != nil {
		t.Fatalf("empty: ok = %v, err = %v", ok, err)
	}
}

func TestExpressionErrors(t *testing.T) {
	xf, err := stages.Build([]stages.Config{{Kind: "map", Expr: "empty"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := transducers.Into([]any{}, xf, []int{1}); !errors.Is(err, stages.ErrNoResult) {
		t.Fatalf("err = %v, want ErrNoResult", err)
	}

	xf, err = stages.Build([]stages.Config{{Kind: "map", Expr: ". + 1"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := transducers.Into([]any{}, xf, []any{map[string]any{}}); err == nil {
		t.Fatal("expected a jq runtime error")
	}
}

type label string

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int slice", []int{1, 2}, []any{1, 2}},
		{"nested typed slices", [][]int{{1}, {2, 3}}, []any{[]any{1}, []any{2, 3}}},
		{"array", [2]uint8{3, 4}, []any{3, 4}},
		{"nil slice", []int(nil), nil},
		{"uint64", uint64(7), 7},
		{"uintptr", uintptr(8), 8},
		{"int64", int64(-9), -9},
		{"float32", float32(0.5), 0.5},
		{"named string", label("x"), "x"},
		{"typed map", map[int][]string{1: {"a"}}, map[string]any{"1": []any{"a"}}},
		{"any keys", map[any]any{true: 1}, map[string]any{"true": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDiff(t, tt.want, stages.Plain(tt.in))
		})
	}
}

func TestPlainLargeUnsigned(t *testing.T) {
	got, ok := stages.Plain(uint64(math.MaxUint64)).(*big.Int)
	if !ok {
		t.Fatalf("Plain(MaxUint64) = %T, want *big.Int", stages.Plain(uint64(math.MaxUint64)))
	}
	if got.String() != "18446744073709551615" {
		t.Fatalf("Plain(MaxUint64) = %s", got)
	}
}

func TestExpressionsOverTypedValues(t *testing.T) {
	got := run(t, []stages.Config{{Kind: "map", Expr: "length"}}, [][]int{{1, 2}, {3}})
	assertDiff(t, []any{2, 1}, got)

	got = run(t, []stages.Config{{Kind: "map", Expr: ". + 1"}}, []uint64{5})
	assertDiff(t, []any{6}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck
// ─────────────────────────────────────────────────────────────────────────────

func TestPluck(t *testing.T) {
	records := []any{
		map[string]any{"user": map[string]any{"name": "ann", "tags": []any{"admin", "ops"}}},
		map[string]any{"user": map[string]any{"tags": []any{}}},
		map[any]any{"user": map[string]any{"name": "bob", "tags": []any{"dev"}}},
		"not a record",
	}
	tests := []struct {
		path string
		want []any
	}{
		{"user.name", []any{"ann", "bob"}},
		{"user.tags.0", []any{"admin", "dev"}},
		{"user.tags.1", []any{"ops"}},
		{"user.tags.x", []any{}},
		{"missing", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assertDiff(t, tt.want, run(t, []stages.Config{{Kind: "pluck", Path: tt.path}}, records))
		})
	}
}

func TestPluckKeepsNilValues(t *testing.T) {
	got := run(t, []stages.Config{{Kind: "pluck", Path: "a"}}, []any{map[string]any{"a": nil}, map[string]any{}})
	assertDiff(t, []any{nil}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func TestInvalidStages(t *testing.T) {
	tests := []struct {
		name string
		cfg  stages.Config
		want error
	}{
		{"missing kind", stages.Config{}, stages.ErrInvalidStage},
		{"unknown kind", stages.Config{Kind: "zip"}, stages.ErrInvalidStage},
		{"negative n", stages.Config{Kind: "take", N: -1}, stages.ErrInvalidStage},
		{"partition zero", stages.Config{Kind: "partition"}, stages.ErrInvalidStage},
		{"map without fn", stages.Config{Kind: "map"}, stages.ErrInvalidStage},
		{"fn and expr", stages.Config{Kind: "map", Fn: "inc", Expr: "."}, stages.ErrInvalidStage},
		{"map indexed with fn", stages.Config{Kind: "map_indexed", Fn: "inc"}, stages.ErrInvalidStage},
		{"pluck without path", stages.Config{Kind: "pluck"}, stages.ErrInvalidStage},
		{"unknown mapper", stages.Config{Kind: "map", Fn: "explode"}, stages.ErrUnknownFunc},
		{"unknown keep", stages.Config{Kind: "keep", Fn: "even"}, stages.ErrUnknownFunc},
		{"unknown predicate", stages.Config{Kind: "filter", Fn: "inc"}, stages.ErrUnknownFunc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stages.Build([]stages.Config{tt.cfg})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := stages.Build([]stages.Config{{Kind: "map", Expr: "."}, {Kind: "map", Expr: ".["}}); err == nil {
		t.Fatal("expected a parse error")
	}
}
