package ecs

import (
	"reflect"
	"runtime"
)

// LabelID is the hash of a label's display name.
type LabelID uint64

// Label is a value-typed handle identifying a system or stage for ordering
// purposes. Two labels compare equal iff their IDs are equal.
type Label struct {
	ID   LabelID
	Name string
}

// L builds a Label from a plain string name.
func L(name string) Label {
	return Label{ID: LabelID(hashName(name)), Name: name}
}

// TypeLabel builds a Label named after the type T, with no value of T ever
// constructed. This is the Go stand-in for labelling systems/stages with an
// empty tag type.
func TypeLabel[T any]() Label {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return Label{ID: LabelID(hashName(name)), Name: name}
}

// FuncLabel builds a Label named after a callable's runtime function name. If
// the name cannot be recovered (e.g. fn is not actually a func value), it
// falls back to the stable placeholder "<anonymous>".
func FuncLabel(fn any) Label {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return L("<anonymous>")
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	if name == "" {
		name = "<anonymous>"
	}
	return Label{ID: LabelID(hashName(name)), Name: name}
}

// Ordering asserts before/after constraints against other labelled nodes.
// "Before contains L" means the owning node must run before every node
// labelled L; "After contains L" means it must run after every node labelled L.
type Ordering struct {
	Before []Label
	After  []Label
}

func (o Ordering) clone() Ordering {
	out := Ordering{}
	if len(o.Before) > 0 {
		out.Before = append([]Label(nil), o.Before...)
	}
	if len(o.After) > 0 {
		out.After = append([]Label(nil), o.After...)
	}
	return out
}
