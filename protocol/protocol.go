package protocol

import (
	"fmt"
	"reflect"
)

// Method pairs a protocol method name with its implementation for one type.
type Method struct {
	Name string
	Impl any
}

// Protocol is a named set of methods backed by a [Registry]. Each method is
// stored in the registry under the capability "<protocol>.<method>".
type Protocol struct {
	name     string
	methods  map[string]struct{}
	registry *Registry
}

// Protocol declares a protocol with the given method names on r. Declaring
// the same protocol twice returns independent handles over the same
// registrations.
func (r *Registry) Protocol(name string, methods ...string) *Protocol {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		set[m] = struct{}{}
	}
	return &Protocol{name: name, methods: set, registry: r}
}

// Name returns the protocol name.
func (p *Protocol) Name() string { return p.name }

// Capability returns the registry capability name of method.
func (p *Protocol) Capability(method string) string {
	return p.name + "." + method
}

// Extend registers implementations of protocol methods for type t.
// Unknown method names are rejected with [ErrUnknownMethod] before anything
// is registered, so a failed Extend leaves the registry untouched.
func (p *Protocol) Extend(t reflect.Type, impls ...Method) error {
	for _, m := range impls {
		if _, ok := p.methods[m.Name]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownMethod, p.name, m.Name)
		}
	}
	for _, m := range impls {
		if err := p.registry.Register(t, p.Capability(m.Name), m.Impl); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the implementation of method for the exact type of v.
func (p *Protocol) Lookup(method string, v any) (any, error) {
	if _, ok := p.methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, p.name, method)
	}
	return p.registry.Lookup(p.Capability(method), v)
}

// Satisfies reports whether every method of the protocol is implemented for
// type t.
func (p *Protocol) Satisfies(t reflect.Type) bool {
	for m := range p.methods {
		if !p.registry.Has(p.Capability(m), t) {
			return false
		}
	}
	return true
}
