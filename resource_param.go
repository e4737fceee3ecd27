package ecs

// Resource grants read-write access to the single stored value of type T,
// the way a system asks to mutate a shared singleton (a Time clock, a score
// counter, a connection pool) without reaching into World.Resources itself.
type Resource[T any] struct {
	value *T
}

// Get returns the mutable pointer into the Resources table's own copy.
func (r *Resource[T]) Get() *T { return r.value }

func (r *Resource[T]) access() Access { return readWriteAccess(TypeOf[T]()) }

func (r *Resource[T]) paramInit(world *World) error {
	v, ok := GetResource[T](world.Resources)
	if !ok {
		return &MissingResourceError{Type: TypeOf[T]()}
	}
	r.value = v
	return nil
}

// ResourceRO grants read-only access to the stored value of type T. Unlike a
// View's components (see view_param.go), a whole resource parameter can be
// wrapped this way without hitting Go's generic-member-unwrapping problem,
// so Resource<const T> is preserved exactly rather than collapsed to
// read-write.
type ResourceRO[T any] struct {
	value *T
}

// Get returns a pointer callers are expected to treat as read-only; Go has
// no const pointers, so this is a documented convention, not an enforced one.
func (r *ResourceRO[T]) Get() *T { return r.value }

func (r *ResourceRO[T]) access() Access { return readOnlyAccess(TypeOf[T]()) }

func (r *ResourceRO[T]) paramInit(world *World) error {
	v, ok := GetResource[T](world.Resources)
	if !ok {
		return &MissingResourceError{Type: TypeOf[T]()}
	}
	r.value = v
	return nil
}

// OptionResource grants read-write access to T when present, tolerating
// absence instead of failing system initialization.
type OptionResource[T any] struct {
	value *T
}

// Get returns the stored pointer, or nil if T has no resource entry.
func (r *OptionResource[T]) Get() *T { return r.value }

func (r *OptionResource[T]) access() Access { return readWriteAccess(TypeOf[T]()) }

func (r *OptionResource[T]) paramInit(world *World) error {
	r.value, _ = GetResource[T](world.Resources)
	return nil
}

// OptionResourceRO is OptionResource's read-only counterpart.
type OptionResourceRO[T any] struct {
	value *T
}

// Get returns the stored pointer, or nil if T has no resource entry.
func (r *OptionResourceRO[T]) Get() *T { return r.value }

func (r *OptionResourceRO[T]) access() Access { return readOnlyAccess(TypeOf[T]()) }

func (r *OptionResourceRO[T]) paramInit(world *World) error {
	r.value, _ = GetResource[T](world.Resources)
	return nil
}
