// Package stages turns declarative stage configs into a composed transducer.
//
// A stage names a combinator (map, filter, take, ...) and, for the kinds
// that take a function, either a builtin by name or a jq expression:
//
//	pipeline:
//	  - kind: filter
//	    fn: even
//	  - kind: map
//	    expr: ". * 10"
//	  - kind: take
//	    n: 3
//
// The pluck kind takes a dot-notation path instead and forwards the value
// found there, dropping elements where the path does not resolve.
package stages

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hasbyte1/go-transducers/transducers"
)

// Stage kinds.
const (
	KindMap        = "map"
	KindMapIndexed = "map_indexed"
	KindFilter     = "filter"
	KindRemove     = "remove"
	KindKeep       = "keep"
	KindTake       = "take"
	KindDrop       = "drop"
	KindDistinct   = "distinct"
	KindDedupe     = "dedupe"
	KindPartition  = "partition"
	KindConcat     = "concat"
	KindPluck      = "pluck"
)

// Config describes one stage.
type Config struct {
	Kind string `yaml:"kind" mapstructure:"kind" validate:"required,oneof=map map_indexed filter remove keep take drop distinct dedupe partition concat pluck"`
	Fn   string `yaml:"fn" mapstructure:"fn" validate:"excluded_with=Expr"`
	Expr string `yaml:"expr" mapstructure:"expr"`
	N    int    `yaml:"n" mapstructure:"n" validate:"gte=0"`
	Path string `yaml:"path" mapstructure:"path" validate:"required_if=Kind pluck"`
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks c in isolation.
func (c Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStage, err)
	}
	switch c.Kind {
	case KindMap, KindMapIndexed, KindFilter, KindRemove, KindKeep:
		if c.Fn == "" && c.Expr == "" {
			return fmt.Errorf("%w: %s needs fn or expr", ErrInvalidStage, c.Kind)
		}
	case KindPartition:
		if c.N < 1 {
			return fmt.Errorf("%w: partition needs n >= 1", ErrInvalidStage)
		}
	}
	if c.Kind == KindMapIndexed && c.Expr == "" {
		return fmt.Errorf("%w: map_indexed takes a jq expr over {index, value}", ErrInvalidStage)
	}
	return nil
}

// Build composes the stages in order. An empty list yields the identity.
func Build(cfgs []Config) (transducers.Transducer, error) {
	xfs := make([]transducers.Transducer, 0, len(cfgs))
	for i, c := range cfgs {
		xf, err := c.Transducer()
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, c.Kind, err)
		}
		xfs = append(xfs, xf)
	}
	if len(xfs) == 0 {
		return transducers.Identity, nil
	}
	return transducers.Comp(xfs[0], xfs[1:]...), nil
}

// Transducer builds the transducer for a single stage.
func (c Config) Transducer() (transducers.Transducer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case KindTake:
		return transducers.Take(c.N), nil
	case KindDrop:
		return transducers.Drop(c.N), nil
	case KindDistinct:
		return transducers.Distinct(), nil
	case KindDedupe:
		return transducers.Dedupe(), nil
	case KindPartition:
		return transducers.Partition(c.N), nil
	case KindConcat:
		return transducers.Concat(), nil
	case KindPluck:
		return pluck(c.Path), nil
	}

	if c.Expr != "" {
		q, err := ParseQuery(c.Expr)
		if err != nil {
			return nil, err
		}
		return q.transducer(c.Kind), nil
	}

	switch c.Kind {
	case KindMap:
		f, ok := mappers[c.Fn]
		if !ok {
			return nil, fmt.Errorf("%w: map %q", ErrUnknownFunc, c.Fn)
		}
		return transducers.TryMap(f), nil
	case KindKeep:
		f, ok := mappers[c.Fn]
		if !ok {
			return nil, fmt.Errorf("%w: keep %q", ErrUnknownFunc, c.Fn)
		}
		return keepFunc(f), nil
	default:
		p, ok := predicates[c.Fn]
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownFunc, c.Kind, c.Fn)
		}
		return predicate(p, c.Kind == KindRemove), nil
	}
}
