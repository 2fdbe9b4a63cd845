package component

import (
	"errors"
	"sync/atomic"
)

// Returned by ecs.Add when a component cannot be stored.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a world's component stores. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key of one store. Two kinds made for the same Go
// type address different stores.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind, which has no store.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what component files export, e.g.
//
//	var JetpackComponent = NewComponent[Jetpack]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
