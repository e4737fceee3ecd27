package ecs

import (
	"hash/fnv"
	"reflect"
)

// TypeId is a stable, comparable identity for a host type: a numeric hash of
// its display name paired with the name itself. Two TypeIds compare equal iff
// both fields match; Hash alone is what callers should use as a map key when
// only the numeric identity is needed.
type TypeId struct {
	Hash uint64
	Name string
}

func hashName(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

// TypeOf returns the TypeId of T. It is the canonical way to name a component,
// resource, or handle kind structurally rather than by value.
func TypeOf[T any]() TypeId {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return TypeId{Hash: hashName(name), Name: name}
}

func typeIDOf[T any]() TypeId { return TypeOf[T]() }

// worldHandleID, resourcesHandleID, and registryHandleID name the three raw
// handle parameter kinds (mutable World&, Resources&, Registry&) for Access
// purposes. They are distinct from any user-defined type's TypeId because no
// user type can be named "ecs.World"/"ecs.Resources"/"ecs.Registry" from
// outside the package while also matching reflect's string rendering of these
// exported types.
func worldHandleID() TypeId     { return TypeOf[World]() }
func resourcesHandleID() TypeId { return TypeOf[Resources]() }
func registryHandleID() TypeId  { return TypeOf[Registry]() }
