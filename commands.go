package ecs

import "fmt"

// Command is a deferred mutation applied against a World outside of system
// execution, the way a CommandBuffer replays entity/component edits once a
// stage finishes running its systems.
type Command func(world *World) error

// NewCreateEntityCommand enqueues a new entity creation. If target is non-nil it receives the allocated ID.
func NewCreateEntityCommand(target *EntityID) Command {
	return func(world *World) error {
		id := world.Spawn()
		if target != nil {
			*target = id
		}
		return nil
	}
}

// NewDestroyEntityCommand enqueues an entity deletion.
func NewDestroyEntityCommand(id EntityID) Command {
	return func(world *World) error {
		if id.IsZero() {
			return fmt.Errorf("ecs: destroy zero entity")
		}
		if !world.Despawn(id) {
			return fmt.Errorf("ecs: destroy stale entity %v", id)
		}
		return nil
	}
}

// NewAddComponentCommand enqueues attaching a component of type C to id.
func NewAddComponentCommand[C any](id EntityID, value C) Command {
	return func(world *World) error {
		if id.IsZero() {
			return fmt.Errorf("ecs: add component to zero entity")
		}
		Emplace[C](world.Registry, id, value)
		return nil
	}
}

// NewRemoveComponentCommand enqueues removing a component of type C from id,
// tolerating absence.
func NewRemoveComponentCommand[C any](id EntityID) Command {
	return func(world *World) error {
		if id.IsZero() {
			return fmt.Errorf("ecs: remove component from zero entity")
		}
		Remove[C](world.Registry, id)
		return nil
	}
}
