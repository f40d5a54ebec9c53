package coll

import (
	"errors"

	"github.com/hasbyte1/go-transducers/protocol"
)

// Sentinel errors returned by container operations.
var (
	// ErrCapabilityNotFound is returned when the container's exact type has
	// no implementation of the requested capability.
	ErrCapabilityNotFound = protocol.ErrCapabilityNotFound

	// ErrElementType is returned when a value cannot be stored in a
	// container, e.g. an int appended to a string or a non-pair appended to
	// a mapping.
	ErrElementType = errors.New("coll: element type not supported by container")

	// ErrUnhashable is returned when a non-comparable value is used as a set
	// member or mapping key.
	ErrUnhashable = errors.New("coll: value is not hashable")

	// ErrNotIterable is returned by [Iterate] for values that are neither
	// registered as iterable nor natively iterable.
	ErrNotIterable = errors.New("coll: value is not iterable")
)
