package ecs

// Param is the non-generic face every SystemParam kind satisfies so the
// executor can bind and drop it without knowing its concrete type. Concrete
// parameter kinds (Resource[T], View2[...], Local[T], ...) are generic
// structs whose instantiated methods are ordinary, non-generic methods —
// Go disallows generic methods, so the generic-ness lives entirely in the
// struct's type parameters, not in Param itself.
type Param interface {
	// access reports which resource/component types this parameter reads
	// or writes. It must be callable on a zero-valued parameter so a
	// system's declared Access can be computed once at registration time,
	// before the system ever runs against a real World.
	access() Access
}

// paramPtr is the constraint satisfied by *P for every parameter kind P. Its
// core type is literally *P, which lets Go's constraint type inference
// recover P automatically from a call site that only mentions the parameter
// struct type — this is what lets NewSystem2(fn) work without the caller
// spelling out pointer types explicitly.
type paramPtr[P any] interface {
	*P
	Param
	// paramInit binds the parameter against a running World immediately
	// before a system call.
	paramInit(world *World) error
}
