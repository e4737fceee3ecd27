package ecs

// box is an owning, type-erased holder for a single value, standing in for
// the source's move-only erased value box in a garbage-collected host: there
// is no manual drop function, but ownership is still single and Take still
// leaves the box empty rather than yielding a second live reference.
type box struct {
	value any
	set   bool
}

func newBox(v any) box { return box{value: v, set: true} }

func (b box) Get() (any, bool) { return b.value, b.set }

// Take moves the value out, leaving the box empty.
func (b *box) Take() (any, bool) {
	if !b.set {
		return nil, false
	}
	v := b.value
	b.value = nil
	b.set = false
	return v, true
}
