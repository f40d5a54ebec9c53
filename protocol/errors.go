package protocol

import "errors"

// Sentinel errors returned by registry operations.
var (
	// ErrCapabilityNotFound is returned when no implementation of the
	// requested capability is registered for the exact type of the value.
	ErrCapabilityNotFound = errors.New("protocol: capability not implemented for type")

	// ErrEmptyCapability is returned by [Registry.Register] when the
	// capability name is an empty string.
	ErrEmptyCapability = errors.New("protocol: capability name must not be empty")

	// ErrNilType is returned by [Registry.Register] when the type is nil.
	ErrNilType = errors.New("protocol: type must not be nil")

	// ErrNilImplementation is returned by [Registry.Register] when the
	// implementation is nil.
	ErrNilImplementation = errors.New("protocol: implementation must not be nil")

	// ErrImplementationType is returned by [Get] when the registered
	// implementation does not have the requested signature.
	ErrImplementationType = errors.New("protocol: implementation has unexpected type")

	// ErrUnknownMethod is returned by [Protocol.Extend] for a method name
	// that is not part of the protocol's interface.
	ErrUnknownMethod = errors.New("protocol: method is not part of the protocol")
)
