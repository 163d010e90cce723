package effectchain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Factory builds one Runtime instance for a node.
type Factory func(ctx Context) (Runtime, error)

// Registry maps effect type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateEffect = errors.New("duplicate effect type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given effect type.
func (r *Registry) Register(effectType string, factory Factory) error {
	if effectType == "" {
		return errors.New("effectchain: empty effect type")
	}

	if factory == nil {
		return fmt.Errorf("effectchain: nil factory for %s", effectType)
	}

	if _, exists := r.factories[effectType]; exists {
		return fmt.Errorf("effectchain: %w: %s", errDuplicateEffect, effectType)
	}

	r.factories[effectType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(effectType string, factory Factory) {
	err := r.Register(effectType, factory)
	if err != nil {
		panic(err.Error())
	}
}

// Lookup returns the factory for the given effect type, or nil.
func (r *Registry) Lookup(effectType string) Factory {
	return r.factories[effectType]
}

// Types returns the registered effect types in sorted order.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// New builds a runtime for effectType.
func (r *Registry) New(ctx Context, effectType string) (Runtime, error) {
	factory := r.Lookup(effectType)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, effectType)
	}

	rt, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("effectchain: create %s: %w", effectType, err)
	}

	return rt, nil
}
