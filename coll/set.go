package coll

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-transducers/seq"
)

// Set is a mutable, unordered set of comparable values.
type Set map[any]struct{}

// NewSet builds a Set holding xs.
func NewSet(xs ...any) (Set, error) {
	s := make(Set, len(xs))
	for _, x := range xs {
		if err := s.Add(x); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts x. Non-comparable values fail with [ErrUnhashable].
func (s Set) Add(x any) error {
	if !hashable(x) {
		return fmt.Errorf("%w: %T", ErrUnhashable, x)
	}
	s[x] = struct{}{}
	return nil
}

// Has reports whether x is a member.
func (s Set) Has(x any) bool {
	if !hashable(x) {
		return false
	}
	_, ok := s[x]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Items returns the members, sorted when they share an ordered kind.
func (s Set) Items() []any { return sortedKeys(s) }

// String formats the set like a [FrozenSet].
func (s Set) String() string {
	return fmt.Sprintf("#%v", s.Items())
}

// FrozenSet is an immutable set of comparable values. The zero value is an
// empty set. Adding members returns a new FrozenSet.
type FrozenSet struct {
	members map[any]struct{}
}

// NewFrozenSet builds a FrozenSet holding xs.
func NewFrozenSet(xs ...any) (FrozenSet, error) {
	return FrozenSet{}.With(xs...)
}

// With returns a new set holding the members of f and xs.
func (f FrozenSet) With(xs ...any) (FrozenSet, error) {
	members := make(map[any]struct{}, len(f.members)+len(xs))
	for m := range f.members {
		members[m] = struct{}{}
	}
	for _, x := range xs {
		if !hashable(x) {
			return f, fmt.Errorf("%w: %T", ErrUnhashable, x)
		}
		members[x] = struct{}{}
	}
	return FrozenSet{members: members}, nil
}

// Has reports whether x is a member.
func (f FrozenSet) Has(x any) bool {
	if !hashable(x) {
		return false
	}
	_, ok := f.members[x]
	return ok
}

// Len returns the number of members.
func (f FrozenSet) Len() int { return len(f.members) }

// Items returns the members, sorted when they share an ordered kind.
func (f FrozenSet) Items() []any { return sortedKeys(f.members) }

// Equal reports whether f and other hold the same members.
func (f FrozenSet) Equal(other FrozenSet) bool {
	if len(f.members) != len(other.members) {
		return false
	}
	for m := range f.members {
		if _, ok := other.members[m]; !ok {
			return false
		}
	}
	return true
}

// String formats the set as "#[a b c]".
func (f FrozenSet) String() string {
	return fmt.Sprintf("#%v", f.Items())
}

func hashable(x any) bool {
	if x == nil {
		return true
	}
	return reflect.ValueOf(x).Comparable()
}

func setIterator(items []any) seq.Iterator {
	return seq.FromSlice(items)
}
