package transducers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-transducers/coll"
	"github.com/hasbyte1/go-transducers/seq"
	xf "github.com/hasbyte1/go-transducers/transducers"
)

// ─────────────────────────────────────────────────────────────────────────────
// Numeric helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestSumAndProduct(t *testing.T) {
	if got, err := xf.Sum[int](seq.Range(1, 5)); err != nil || got != 10 {
		t.Fatalf("Sum = %v, %v", got, err)
	}
	if got, err := xf.Sum[float64]([]float64{0.5, 1.5}); err != nil || got != 2 {
		t.Fatalf("Sum = %v, %v", got, err)
	}
	if got, err := xf.Product[int]([]int{2, 3, 4}); err != nil || got != 24 {
		t.Fatalf("Product = %v, %v", got, err)
	}
	if got, err := xf.Product[int]([]int{}); err != nil || got != 1 {
		t.Fatalf("Product(empty) = %v, %v", got, err)
	}
	if _, err := xf.Sum[int]([]any{1, "2"}); !errors.Is(err, xf.ErrElementType) {
		t.Fatalf("err = %v, want ErrElementType", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	got, err := xf.GroupBy(func(s string) int { return len(s) }, []string{"a", "bb", "c", "dd", "eee"})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[int][]string{1: {"a", "c"}, 2: {"bb", "dd"}, 3: {"eee"}}, got)
}

func TestIndex(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	users := []user{{1, "ann"}, {2, "bob"}, {1, "ada"}}
	got, err := xf.Index(func(u user) int { return u.ID }, users)
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[int]user{1: {1, "ada"}, 2: {2, "bob"}}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Map helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestInvertMap(t *testing.T) {
	empty, err := xf.InvertMap(map[string]int{})
	if err != nil || len(empty) != 0 {
		t.Fatalf("InvertMap(empty) = %v, %v", empty, err)
	}

	d := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
	inv, err := xf.InvertMap(d)
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[any]any{1: "a", 2: "b", 3: "c", 4: "d"}, inv)
	assertDiff(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}, d)

	back, err := xf.InvertMap(inv)
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[any]any{"a": 1, "b": 2, "c": 3, "d": 4}, back)
}

func TestInvertMapUnhashable(t *testing.T) {
	if _, err := xf.InvertMap(map[string]any{"a": []int{1, 2}}); !errors.Is(err, coll.ErrUnhashable) {
		t.Fatalf("err = %v, want ErrUnhashable", err)
	}
}

func TestMapKeysAndValues(t *testing.T) {
	keys, err := xf.MapKeys(strings.ToUpper, map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[string]int{"A": 1, "B": 2}, keys)

	values, err := xf.MapValues(func(v int) bool { return v > 1 }, map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[string]bool{"a": false, "b": true}, values)

	withNil, err := xf.MapValues(func(v any) any { return v }, map[string]any{"a": nil})
	if err != nil {
		t.Fatal(err)
	}
	assertDiff(t, map[string]any{"a": nil}, withNil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Spy
// ─────────────────────────────────────────────────────────────────────────────

func TestSpyLogsStepsAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	got := into(t, []any{}, xf.Comp(xf.Spy("in", log), xf.Map(inc)), []int{1, 2})
	assertDiff(t, []any{2, 3}, got)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3:\n%s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["reducer"] != "in" || entry["message"] != "step" || entry["input"] != float64(1) {
		t.Fatalf("first entry = %v", entry)
	}
	if err := json.Unmarshal([]byte(lines[2]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["message"] != "complete" {
		t.Fatalf("last entry = %v", entry)
	}
}

func TestSpySilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	into(t, []any{}, xf.Spy("quiet", log), []int{1})
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
