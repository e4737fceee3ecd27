package ecs

// Resources is the process-wide (per-World) keyed singleton table. It wraps a
// typeMap with typed, generic operations; every stored value lives behind a
// *T so callers get a stable, mutable view into the store's own copy.
type Resources struct {
	values *typeMap
}

// NewResources constructs an empty Resources table.
func NewResources() *Resources {
	return &Resources{values: newTypeMap()}
}

// SetResource always (re)constructs the slot for T, dropping any previous
// value, and returns a view of the newly stored instance.
func SetResource[T any](r *Resources, value T) *T {
	v := new(T)
	*v = value
	r.values.set(TypeOf[T](), v)
	return v
}

// TryAddResource inserts construct() under T iff no value is already present.
// It always returns a view of the stored instance (existing or new) plus
// whether an insertion happened.
func TryAddResource[T any](r *Resources, construct func() T) (*T, bool) {
	v, inserted := r.values.tryAdd(TypeOf[T](), func() any {
		val := construct()
		p := new(T)
		*p = val
		return p
	})
	return v.(*T), inserted
}

// RemoveResource extracts the stored T, if any, leaving no entry behind.
func RemoveResource[T any](r *Resources) (T, bool) {
	var zero T
	v, ok := r.values.remove(TypeOf[T]())
	if !ok {
		return zero, false
	}
	return *v.(*T), true
}

// GetResource yields a mutable view of the stored T, if present.
func GetResource[T any](r *Resources) (*T, bool) {
	v, ok := r.values.get(TypeOf[T]())
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// ContainsResource reports whether T currently has a stored value.
func ContainsResource[T any](r *Resources) bool {
	return r.values.contains(TypeOf[T]())
}
