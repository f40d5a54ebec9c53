package protocol

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry is a goroutine-safe (capability, type) → implementation table.
//
// The zero value is not usable; create registries with [NewRegistry].
type Registry struct {
	mu    sync.RWMutex
	impls map[string]map[reflect.Type]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{impls: make(map[string]map[reflect.Type]any)}
}

// TypeFor returns the reflect.Type of T. It is a shorthand for building
// registration keys without a sample value, and works for interface and
// nil-able types alike.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds or replaces the implementation of capability for type t.
//
//	r.Register(protocol.TypeFor[string](), "immutable", func(any) bool { return true })
func (r *Registry) Register(t reflect.Type, capability string, impl any) error {
	if capability == "" {
		return ErrEmptyCapability
	}
	if t == nil {
		return ErrNilType
	}
	if impl == nil {
		return ErrNilImplementation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byType, ok := r.impls[capability]
	if !ok {
		byType = make(map[reflect.Type]any)
		r.impls[capability] = byType
	}
	byType[t] = impl
	return nil
}

// Lookup returns the implementation of capability registered for the exact
// dynamic type of v. It returns [ErrCapabilityNotFound] when there is none,
// including when v is nil.
func (r *Registry) Lookup(capability string, v any) (any, error) {
	return r.LookupType(capability, reflect.TypeOf(v))
}

// LookupType is like [Registry.Lookup] but takes the type directly.
func (r *Registry) LookupType(capability string, t reflect.Type) (any, error) {
	r.mu.RLock()
	impl, ok := r.impls[capability][t]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s", ErrCapabilityNotFound, capability, typeName(t))
	}
	return impl, nil
}

// Has reports whether capability is implemented for type t.
func (r *Registry) Has(capability string, t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.impls[capability][t]
	return ok
}

// Capabilities returns the sorted names of every capability that has at
// least one registered implementation.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.impls))
	for name, byType := range r.impls {
		if len(byType) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Flush removes every registration.
// Intended for use in tests.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.impls = make(map[string]map[reflect.Type]any)
}

// Get looks up capability for v and asserts the implementation to F.
//
//	empty, err := protocol.Get[func(any) any](r, "collection.empty", v)
func Get[F any](r *Registry, capability string, v any) (F, error) {
	var zero F
	impl, err := r.Lookup(capability, v)
	if err != nil {
		return zero, err
	}
	fn, ok := impl.(F)
	if !ok {
		return zero, fmt.Errorf("%w: %q for %s is %T, want %s",
			ErrImplementationType, capability, typeName(reflect.TypeOf(v)), impl, TypeFor[F]())
	}
	return fn, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
