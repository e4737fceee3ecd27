package ecs

// Stage is an ordered bucket of systems run together during one update. It
// exposes only append-and-enumerate; all ordering is resolved once by the
// Scheduler's dependency graph during initialize_systems.
type Stage struct {
	Label    Label
	Ordering Ordering
	systems  []*System
}

// NewStage constructs an empty stage identified by label.
func NewStage(label Label) *Stage {
	return &Stage{Label: label}
}

// AddSystem appends sys to the stage's bucket.
func (s *Stage) AddSystem(sys *System) {
	s.systems = append(s.systems, sys)
}

// Systems returns the stage's current system list, in whatever order
// initialize_systems last sorted it into (registration order before that).
func (s *Stage) Systems() []*System {
	return s.systems
}
