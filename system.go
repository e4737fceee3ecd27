package ecs

import "fmt"

// SystemMeta is a system's registration-time identity: its Label (used for
// ordering and lookup), declared Ordering constraints, and the Access its
// parameters computed from their zero values.
type SystemMeta struct {
	Label    Label
	Ordering Ordering
	Access   Access
}

// System is a type-erased, runnable unit of scheduler work. Every
// NewSystemN constructor returns one, already bound to its parameter
// kinds — callers never see the generic machinery that built it.
type System struct {
	meta SystemMeta
	run  func(world *World) error
}

// Meta returns the system's registration-time metadata.
func (s *System) Meta() SystemMeta { return s.meta }

// Run executes the system once against world. If any parameter fails to
// bind (for example a Resource[T] whose T has no stored value), Run returns
// that error wrapped with the system's label and does not call the system
// function.
func (s *System) Run(world *World) error {
	return s.run(world)
}

// Before returns a copy of the system with an additional "must run before
// these labels" ordering constraint.
func (s *System) Before(labels ...Label) *System {
	clone := *s
	clone.meta.Ordering.Before = append(append([]Label(nil), clone.meta.Ordering.Before...), labels...)
	return &clone
}

// After returns a copy of the system with an additional "must run after
// these labels" ordering constraint.
func (s *System) After(labels ...Label) *System {
	clone := *s
	clone.meta.Ordering.After = append(append([]Label(nil), clone.meta.Ordering.After...), labels...)
	return &clone
}

func panicOnInitError(label Label, err error) {
	if err != nil {
		panic(fmt.Sprintf("ecs: system %q failed to initialize: %v", label.Name, err))
	}
}

// NewSystem0 builds a system taking no parameters.
func NewSystem0(label Label, fn func()) *System {
	return &System{
		meta: SystemMeta{Label: label},
		run: func(world *World) error {
			fn()
			return nil
		},
	}
}

// NewSystem1 builds a system taking a single SystemParam. P's pointer type
// is inferred from PP's core type (*P), so callers write NewSystem1(label,
// fn) without spelling out *Resource[Foo] anywhere. The parameter value
// itself is allocated once, here, and reused on every Run — the only way a
// Local[T] parameter's state can outlive a single tick, since it is owned
// by this System record and nothing else.
func NewSystem1[P any, PP paramPtr[P]](label Label, fn func(PP)) *System {
	var p P
	pp := PP(&p)
	access := pp.access()
	return &System{
		meta: SystemMeta{Label: label, Access: access},
		run: func(world *World) error {
			if err := pp.paramInit(world); err != nil {
				return fmt.Errorf("ecs: system %q: %w", label.Name, err)
			}
			fn(pp)
			return nil
		},
	}
}

// NewSystem2 builds a system taking two SystemParams.
func NewSystem2[P1 any, P1P paramPtr[P1], P2 any, P2P paramPtr[P2]](label Label, fn func(P1P, P2P)) *System {
	var p1 P1
	var p2 P2
	pp1, pp2 := P1P(&p1), P2P(&p2)
	access := mergeAll(pp1.access(), pp2.access())
	return &System{
		meta: SystemMeta{Label: label, Access: access},
		run: func(world *World) error {
			if err := pp1.paramInit(world); err != nil {
				return fmt.Errorf("ecs: system %q: %w", label.Name, err)
			}
			if err := pp2.paramInit(world); err != nil {
				return fmt.Errorf("ecs: system %q: %w", label.Name, err)
			}
			fn(pp1, pp2)
			return nil
		},
	}
}

// NewSystem3 builds a system taking three SystemParams.
func NewSystem3[P1 any, P1P paramPtr[P1], P2 any, P2P paramPtr[P2], P3 any, P3P paramPtr[P3]](label Label, fn func(P1P, P2P, P3P)) *System {
	var p1 P1
	var p2 P2
	var p3 P3
	pp1, pp2, pp3 := P1P(&p1), P2P(&p2), P3P(&p3)
	access := mergeAll(pp1.access(), pp2.access(), pp3.access())
	return &System{
		meta: SystemMeta{Label: label, Access: access},
		run: func(world *World) error {
			for _, err := range []error{pp1.paramInit(world), pp2.paramInit(world), pp3.paramInit(world)} {
				if err != nil {
					return fmt.Errorf("ecs: system %q: %w", label.Name, err)
				}
			}
			fn(pp1, pp2, pp3)
			return nil
		},
	}
}

// NewSystem4 builds a system taking four SystemParams.
func NewSystem4[P1 any, P1P paramPtr[P1], P2 any, P2P paramPtr[P2], P3 any, P3P paramPtr[P3], P4 any, P4P paramPtr[P4]](label Label, fn func(P1P, P2P, P3P, P4P)) *System {
	var p1 P1
	var p2 P2
	var p3 P3
	var p4 P4
	pp1, pp2, pp3, pp4 := P1P(&p1), P2P(&p2), P3P(&p3), P4P(&p4)
	access := mergeAll(pp1.access(), pp2.access(), pp3.access(), pp4.access())
	return &System{
		meta: SystemMeta{Label: label, Access: access},
		run: func(world *World) error {
			for _, err := range []error{pp1.paramInit(world), pp2.paramInit(world), pp3.paramInit(world), pp4.paramInit(world)} {
				if err != nil {
					return fmt.Errorf("ecs: system %q: %w", label.Name, err)
				}
			}
			fn(pp1, pp2, pp3, pp4)
			return nil
		},
	}
}
