package ecs

// WorldHandle grants a system the whole World, for code that genuinely needs
// it (spawning entities while also touching arbitrary resources). Its
// declared access is read-write on the world's own synthetic TypeId.
// Access.Overlaps compares TypeIds only, so this conflicts with other
// WorldHandle/WorldHandleRO parameters but not with a Resource[T] or View
// on a type stored inside the world.
type WorldHandle struct {
	world *World
}

// Get returns the bound World.
func (h *WorldHandle) Get() *World { return h.world }

func (h *WorldHandle) access() Access { return readWriteAccess(worldHandleID()) }

func (h *WorldHandle) paramInit(world *World) error {
	h.world = world
	return nil
}

// WorldHandleRO is WorldHandle's read-only counterpart: the same whole-World
// access, declared read-only so it conflicts with a WorldHandle but not
// with another WorldHandleRO.
type WorldHandleRO struct {
	world *World
}

// Get returns the bound World; callers are expected to treat it as
// read-only, the same documented (not enforced) convention as ResourceRO.
func (h *WorldHandleRO) Get() *World { return h.world }

func (h *WorldHandleRO) access() Access { return readOnlyAccess(worldHandleID()) }

func (h *WorldHandleRO) paramInit(world *World) error {
	h.world = world
	return nil
}

// RegistryHandle grants direct access to the entity/component Registry,
// for systems that spawn or despawn entities or need Emplace/TryGet calls
// the View parameter kinds don't cover (e.g. adding a brand-new component
// type to a freshly spawned entity).
type RegistryHandle struct {
	registry *Registry
}

// Get returns the bound Registry.
func (h *RegistryHandle) Get() *Registry { return h.registry }

func (h *RegistryHandle) access() Access { return readWriteAccess(registryHandleID()) }

func (h *RegistryHandle) paramInit(world *World) error {
	h.registry = world.Registry
	return nil
}

// RegistryHandleRO is RegistryHandle's read-only counterpart, for systems
// that only need to query the Registry (Has/TryGet/Each) and never spawn,
// despawn, or Emplace.
type RegistryHandleRO struct {
	registry *Registry
}

// Get returns the bound Registry; treat it as read-only by convention.
func (h *RegistryHandleRO) Get() *Registry { return h.registry }

func (h *RegistryHandleRO) access() Access { return readOnlyAccess(registryHandleID()) }

func (h *RegistryHandleRO) paramInit(world *World) error {
	h.registry = world.Registry
	return nil
}

// ResourcesHandle grants direct access to the Resources table, for systems
// that look resources up dynamically rather than through a fixed Resource[T]
// parameter.
type ResourcesHandle struct {
	resources *Resources
}

// Get returns the bound Resources table.
func (h *ResourcesHandle) Get() *Resources { return h.resources }

func (h *ResourcesHandle) access() Access { return readWriteAccess(resourcesHandleID()) }

func (h *ResourcesHandle) paramInit(world *World) error {
	h.resources = world.Resources
	return nil
}

// ResourcesHandleRO is ResourcesHandle's read-only counterpart, for systems
// that only look resources up (GetResource/ContainsResource) and never
// insert, replace, or remove one.
type ResourcesHandleRO struct {
	resources *Resources
}

// Get returns the bound Resources table; treat it as read-only by convention.
func (h *ResourcesHandleRO) Get() *Resources { return h.resources }

func (h *ResourcesHandleRO) access() Access { return readOnlyAccess(resourcesHandleID()) }

func (h *ResourcesHandleRO) paramInit(world *World) error {
	h.resources = world.Resources
	return nil
}

// Commands lets a system defer entity/component mutations instead of
// applying them immediately; the Scheduler drains the world's CommandBuffer
// resource and applies its commands once every system in the current stage
// (or in the startup or teardown bucket) has returned without error.
type Commands struct {
	buf *CommandBuffer
}

// Push enqueues cmd to run once the current stage finishes this tick.
func (c *Commands) Push(cmd Command) { c.buf.Push(cmd) }

func (c *Commands) access() Access { return Access{} }

func (c *Commands) paramInit(world *World) error {
	buf, ok := GetResource[CommandBuffer](world.Resources)
	if !ok {
		buf, _ = TryAddResource(world.Resources, func() CommandBuffer { return CommandBuffer{} })
	}
	c.buf = buf
	return nil
}
