package ecs

// Without markers declare components an entity must NOT carry to be
// yielded by a View. They stay zero-sized type-level markers — rather than
// values — because they only ever need to produce a TypeId list for
// filtering, never a typed value back to the caller, which sidesteps the
// problem a read-only per-component wrapper would hit (see View1 below).
type withoutMarker interface {
	typeIDs() []TypeId
}

// Without0 excludes nothing.
type Without0 struct{}

func (Without0) typeIDs() []TypeId { return nil }

// Without1 excludes entities carrying A.
type Without1[A any] struct{}

func (Without1[A]) typeIDs() []TypeId { return []TypeId{TypeOf[A]()} }

// Without2 excludes entities carrying A or B.
type Without2[A, B any] struct{}

func (Without2[A, B]) typeIDs() []TypeId { return []TypeId{TypeOf[A](), TypeOf[B]()} }

func excluded(registry *Registry, without []TypeId, id EntityID) bool {
	for _, t := range without {
		if registry.hasRaw(t, id) {
			return true
		}
	}
	return false
}

// View1 iterates every entity carrying A (and none of W's excluded types).
//
// Go adaptation: view component access is declared read-write only. Carrying
// a per-component const/read-only distinction through a View's type
// parameter list would need either extra method requirements on plain
// component structs, or a way to recover the real component type statically
// from a wrapper type parameter — Go's generics support neither without
// hurting ergonomics, and the single-threaded default executor never
// enforces Access anyway, so the simplification costs nothing observable.
type View1[A any, W withoutMarker] struct {
	registry *Registry
	without  []TypeId
}

func (v *View1[A, W]) access() Access { return readWriteAccess(TypeOf[A]()) }

func (v *View1[A, W]) paramInit(world *World) error {
	v.registry = world.Registry
	var w W
	v.without = w.typeIDs()
	return nil
}

// Each visits every matching (EntityID, *A) pair until fn returns false.
func (v *View1[A, W]) Each(fn func(EntityID, *A) bool) {
	Each(v.registry, func(id EntityID, a *A) bool {
		if excluded(v.registry, v.without, id) {
			return true
		}
		return fn(id, a)
	})
}

// ViewOf1 is View1 with no exclusions, the common case.
type ViewOf1[A any] = View1[A, Without0]

// View2 iterates every entity carrying both A and B (and none of W).
type View2[A, B any, W withoutMarker] struct {
	registry *Registry
	without  []TypeId
}

func (v *View2[A, B, W]) access() Access {
	return mergeAll(readWriteAccess(TypeOf[A]()), readWriteAccess(TypeOf[B]()))
}

func (v *View2[A, B, W]) paramInit(world *World) error {
	v.registry = world.Registry
	var w W
	v.without = w.typeIDs()
	return nil
}

// Each visits every matching (EntityID, *A, *B) triple until fn returns false.
func (v *View2[A, B, W]) Each(fn func(EntityID, *A, *B) bool) {
	Each(v.registry, func(id EntityID, a *A) bool {
		if excluded(v.registry, v.without, id) {
			return true
		}
		b, ok := TryGet[B](v.registry, id)
		if !ok {
			return true
		}
		return fn(id, a, b)
	})
}

// ViewOf2 is View2 with no exclusions.
type ViewOf2[A, B any] = View2[A, B, Without0]

// View3 iterates every entity carrying A, B, and C (and none of W).
type View3[A, B, C any, W withoutMarker] struct {
	registry *Registry
	without  []TypeId
}

func (v *View3[A, B, C, W]) access() Access {
	return mergeAll(
		readWriteAccess(TypeOf[A]()),
		readWriteAccess(TypeOf[B]()),
		readWriteAccess(TypeOf[C]()),
	)
}

func (v *View3[A, B, C, W]) paramInit(world *World) error {
	v.registry = world.Registry
	var w W
	v.without = w.typeIDs()
	return nil
}

// Each visits every matching (EntityID, *A, *B, *C) quadruple until fn
// returns false.
func (v *View3[A, B, C, W]) Each(fn func(EntityID, *A, *B, *C) bool) {
	Each(v.registry, func(id EntityID, a *A) bool {
		if excluded(v.registry, v.without, id) {
			return true
		}
		b, ok := TryGet[B](v.registry, id)
		if !ok {
			return true
		}
		c, ok := TryGet[C](v.registry, id)
		if !ok {
			return true
		}
		return fn(id, a, b, c)
	})
}

// ViewOf3 is View3 with no exclusions.
type ViewOf3[A, B, C any] = View3[A, B, C, Without0]
