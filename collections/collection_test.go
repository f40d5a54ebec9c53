package collections_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-transducers/collections"
)

func assertDiff(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection
// ─────────────────────────────────────────────────────────────────────────────

func TestNewCopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	c := collections.New(items...)
	items[0] = "z"
	assertDiff(t, []string{"a", "b"}, c.All())

	all := c.All()
	all[1] = "z"
	assertDiff(t, []string{"a", "b"}, c.All())
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	if c.Count() != 0 {
		t.Fatalf("Count = %d", c.Count())
	}
	if c.All() == nil {
		t.Fatal("All returned nil for an empty collection")
	}
	var zero collections.Collection[int]
	assertDiff(t, []int{1}, zero.Push(1).All())
}

func TestPushLeavesReceiver(t *testing.T) {
	a := collections.New(1, 2)
	b := a.Push(3, 4)
	c := a.Push(5)
	assertDiff(t, []int{1, 2}, a.All())
	assertDiff(t, []int{1, 2, 3, 4}, b.All())
	assertDiff(t, []int{1, 2, 5}, c.All())
}

func TestCursor(t *testing.T) {
	c := collections.New("x", "y")
	next := c.Cursor()
	c = c.Push("z")

	var got []string
	for v, ok := next(); ok; v, ok = next() {
		got = append(got, v)
	}
	assertDiff(t, []string{"x", "y"}, got)
	if _, ok := next(); ok {
		t.Fatal("exhausted cursor yielded again")
	}
}

func TestString(t *testing.T) {
	if got := collections.New(1, 2).String(); got != "collection[1 2]" {
		t.Fatalf("String = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Pair
// ─────────────────────────────────────────────────────────────────────────────

func TestPair(t *testing.T) {
	p := collections.PairOf("a", 1)
	assertDiff(t, collections.Pair[int, string]{First: 1, Second: "a"}, p.Swap())
	if p.String() != "(a, 1)" {
		t.Fatalf("String = %q", p.String())
	}
	k, v := p.Entry()
	if k != "a" || v != 1 {
		t.Fatalf("Entry = %v, %v", k, v)
	}
}
