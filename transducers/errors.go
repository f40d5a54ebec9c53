package transducers

import (
	"errors"

	"github.com/hasbyte1/go-transducers/coll"
)

// Sentinel errors returned by the engine.
var (
	// ErrCapabilityNotFound is returned when a container's exact type has no
	// implementation of a capability the engine needs (conj, empty, ...).
	ErrCapabilityNotFound = coll.ErrCapabilityNotFound

	// ErrArity is returned when a combinator or driver receives an
	// unsupported number of sources.
	ErrArity = errors.New("transducers: unsupported number of sources")

	// ErrElementType is returned when an element cannot be passed to a typed
	// function, e.g. a string reaching Map[int, int].
	ErrElementType = errors.New("transducers: unexpected element type")

	// ErrInvalidOption is returned for out-of-range configuration, such as
	// a chunk size or partition size below 1.
	ErrInvalidOption = errors.New("transducers: invalid option")
)
