package ecs

// Access records which types a system (or a single parameter) reads versus
// reads and writes. The invariant ReadOnly ∩ ReadWrite = ∅ is maintained by
// Merge and must not be violated by direct construction outside this package.
type Access struct {
	ReadOnly  map[TypeId]struct{}
	ReadWrite map[TypeId]struct{}
}

func readOnlyAccess(ids ...TypeId) Access {
	a := Access{ReadOnly: make(map[TypeId]struct{}, len(ids))}
	for _, id := range ids {
		a.ReadOnly[id] = struct{}{}
	}
	return a
}

func readWriteAccess(ids ...TypeId) Access {
	a := Access{ReadWrite: make(map[TypeId]struct{}, len(ids))}
	for _, id := range ids {
		a.ReadWrite[id] = struct{}{}
	}
	return a
}

// Merge unions two Access sets: read_write is the union of both read_write
// sets; read_only is the union of both read_only sets minus anything present
// in the merged read_write set.
func Merge(a, b Access) Access {
	out := Access{
		ReadOnly:  make(map[TypeId]struct{}),
		ReadWrite: make(map[TypeId]struct{}),
	}
	for id := range a.ReadWrite {
		out.ReadWrite[id] = struct{}{}
	}
	for id := range b.ReadWrite {
		out.ReadWrite[id] = struct{}{}
	}
	for id := range a.ReadOnly {
		out.ReadOnly[id] = struct{}{}
	}
	for id := range b.ReadOnly {
		out.ReadOnly[id] = struct{}{}
	}
	for id := range out.ReadWrite {
		delete(out.ReadOnly, id)
	}
	return out
}

func mergeAll(parts ...Access) Access {
	out := Access{ReadOnly: map[TypeId]struct{}{}, ReadWrite: map[TypeId]struct{}{}}
	for _, p := range parts {
		out = Merge(out, p)
	}
	return out
}

// Overlaps reports whether a and b touch any common type with at least one
// side writing it — the condition two systems must avoid to run concurrently.
func (a Access) Overlaps(b Access) bool {
	for id := range a.ReadWrite {
		if _, ok := b.ReadWrite[id]; ok {
			return true
		}
		if _, ok := b.ReadOnly[id]; ok {
			return true
		}
	}
	for id := range b.ReadWrite {
		if _, ok := a.ReadOnly[id]; ok {
			return true
		}
	}
	return false
}
