// Package collections provides the immutable [Collection] container and the
// [Pair] type used for key/value entries.
//
// Collection is registered by the coll package as an immutable container
// kind, so transducer drivers batch elements before appending to it instead
// of copying it once per element.
//
// Mapping containers iterate as pairs of key and value and accept pairs when
// appending.
package collections
