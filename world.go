package ecs

// World is the aggregate a running App exposes to systems: the entity and
// component store (Registry) plus the keyed singleton table (Resources).
// Systems never reach into World's fields directly — they declare a
// SystemParam and the executor hands them a narrowed view (Resource[T],
// View1[...], the World handle itself, ...).
type World struct {
	Resources *Resources
	Registry  *Registry
}

// NewWorld constructs an empty World with fresh Resources and Registry.
func NewWorld() *World {
	return &World{Resources: NewResources(), Registry: NewRegistry()}
}

// Spawn allocates a new entity in the world's registry.
func (w *World) Spawn() EntityID {
	return w.Registry.Create()
}

// Despawn releases an entity and its components.
func (w *World) Despawn(id EntityID) bool {
	return w.Registry.Destroy(id)
}
