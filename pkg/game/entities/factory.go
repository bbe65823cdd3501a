package entities

import (
	"fmt"
)

// Constructor turns one descriptor into a live entity of the caller's type.
type Constructor[T any] func(Spawn) T

// Factory dispatches descriptors to per-kind constructors. It belongs to the
// game loop; the generator never builds live entities.
type Factory[T any] struct {
	ctors map[Kind]Constructor[T]
}

// NewFactory creates an empty factory
func NewFactory[T any]() *Factory[T] {
	return &Factory[T]{ctors: make(map[Kind]Constructor[T])}
}

// Register sets the constructor for kind, replacing any previous one
func (f *Factory[T]) Register(kind Kind, ctor Constructor[T]) *Factory[T] {
	f.ctors[kind] = ctor
	return f
}

// RegisterAll sets the same constructor for every defined kind
func (f *Factory[T]) RegisterAll(ctor Constructor[T]) *Factory[T] {
	for _, k := range AllKinds() {
		f.ctors[k] = ctor
	}
	return f
}

// Missing returns the defined kinds that have no constructor
func (f *Factory[T]) Missing() []Kind {
	var missing []Kind
	for _, k := range AllKinds() {
		if _, ok := f.ctors[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Build constructs one entity per spawn, in order. It stops at the first
// spawn whose kind has no registered constructor.
func (f *Factory[T]) Build(spawns []Spawn) ([]T, error) {
	out := make([]T, 0, len(spawns))
	for i, s := range spawns {
		ctor, ok := f.ctors[s.Kind]
		if !ok {
			return out, fmt.Errorf("spawn %d: no constructor for kind %v", i, s.Kind)
		}
		out = append(out, ctor(s))
	}
	return out, nil
}
