package ecs

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type schedulerState int

const (
	schedulerBuilding schedulerState = iota
	schedulerInitialized
	schedulerRunning
	schedulerStopped
)

// Scheduler owns a World for the duration of initialize_systems, startup,
// update, and teardown, running stages and systems in the order its
// dependency graph resolves them to. It moves through the state machine
// Building -> Initialized -> Running -> Stopped exactly once each way;
// calling startup/update/teardown before initialize_systems is a
// programming error and panics, matching the source scheduler's own
// precondition discipline.
type Scheduler struct {
	mu    sync.Mutex
	state schedulerState
	world *World

	stages     []*Stage
	stageIndex map[LabelID]int
	firstLabel *Label
	lastLabel  *Label

	startupSystems  []*System
	teardownSystems []*System

	executor *Executor
	observer Observer
	tick     uint64
}

// NewScheduler constructs a scheduler bound to world (or a fresh World if
// nil).
func NewScheduler(world *World) *Scheduler {
	if world == nil {
		world = NewWorld()
	}
	return &Scheduler{
		world:      world,
		stageIndex: make(map[LabelID]int),
		executor:   NewInlineExecutor(),
		observer:   noopObserver{},
	}
}

// SetObserver installs the Observer the scheduler reports stage summaries
// to.
func (s *Scheduler) SetObserver(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if observer == nil {
		observer = noopObserver{}
	}
	s.observer = observer
}

// SetExecutor installs the Executor used to run each system.
func (s *Scheduler) SetExecutor(executor *Executor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if executor == nil {
		executor = NewInlineExecutor()
	}
	s.executor = executor
}

// World returns the world the scheduler runs against.
func (s *Scheduler) World() *World { return s.world }

func (s *Scheduler) stageByLabel(label Label) (*Stage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.stageIndex[label.ID]
	if !ok {
		return nil, false
	}
	return s.stages[idx], true
}

// AddStage appends a stage, injecting after-first/before-last ordering if
// SetFirstStage/SetLastStage already ran. Duplicate primary labels fail with
// DuplicateStageError.
func (s *Scheduler) AddStage(stage *Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.stageIndex[stage.Label.ID]; exists {
		return &DuplicateStageError{Label: stage.Label}
	}
	if s.firstLabel != nil && stage.Label.ID != s.firstLabel.ID {
		stage.Ordering.After = append(stage.Ordering.After, *s.firstLabel)
	}
	if s.lastLabel != nil && stage.Label.ID != s.lastLabel.ID {
		stage.Ordering.Before = append(stage.Ordering.Before, *s.lastLabel)
	}
	s.stageIndex[stage.Label.ID] = len(s.stages)
	s.stages = append(s.stages, stage)
	return nil
}

// SetFirstStage designates stage as the scheduler's first stage. May be
// called at most once; a second call fails with ErrAlreadySet. Every stage
// already registered gets "after first" added to its ordering.
func (s *Scheduler) SetFirstStage(stage *Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.firstLabel != nil {
		return ErrAlreadySet
	}
	label := stage.Label
	s.firstLabel = &label
	for _, st := range s.stages {
		if st.Label.ID == label.ID {
			continue
		}
		st.Ordering.After = append(st.Ordering.After, label)
	}
	return nil
}

// SetLastStage designates stage as the scheduler's last stage. May be
// called at most once; a second call fails with ErrAlreadySet. Every stage
// already registered gets "before last" added to its ordering.
func (s *Scheduler) SetLastStage(stage *Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastLabel != nil {
		return ErrAlreadySet
	}
	label := stage.Label
	s.lastLabel = &label
	for _, st := range s.stages {
		if st.Label.ID == label.ID {
			continue
		}
		st.Ordering.Before = append(st.Ordering.Before, label)
	}
	return nil
}

// AddSystemToStage appends sys to the stage identified by stageLabel,
// failing with UnknownStageError if no such stage was registered.
func (s *Scheduler) AddSystemToStage(sys *System, stageLabel Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.stageIndex[stageLabel.ID]
	if !ok {
		return &UnknownStageError{Label: stageLabel}
	}
	s.stages[idx].AddSystem(sys)
	return nil
}

// AddStartupSystem appends sys to the startup bucket, run once before the
// first update.
func (s *Scheduler) AddStartupSystem(sys *System) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startupSystems = append(s.startupSystems, sys)
}

// AddTeardownSystem appends sys to the teardown bucket, run once after the
// update loop stops.
func (s *Scheduler) AddTeardownSystem(sys *System) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownSystems = append(s.teardownSystems, sys)
}

func systemNodes(systems []*System) []depNode {
	nodes := make([]depNode, len(systems))
	for i, sys := range systems {
		nodes[i] = depNode{name: sys.meta.Label.Name, labels: []Label{sys.meta.Label}, ordering: sys.meta.Ordering}
	}
	return nodes
}

func sortSystems(bucket string, systems []*System) ([]*System, error) {
	order, err := topologicalOrder(bucket, systemNodes(systems))
	if err != nil {
		return nil, err
	}
	sorted := make([]*System, len(systems))
	for i, idx := range order {
		sorted[i] = systems[idx]
	}
	return sorted, nil
}

// InitializeSystems sorts the startup bucket, teardown bucket, every
// stage's system list, and the stage list itself using the dependency
// graph, then transitions Building -> Initialized. Calling it more than
// once is a programming error and panics. A cycle or unknown label
// anywhere in the declared ordering is a runtime error, not a panic, and is
// returned as-is.
func (s *Scheduler) InitializeSystems() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != schedulerBuilding {
		panic("ecs: InitializeSystems called more than once")
	}

	sortedStartup, err := sortSystems("startup", s.startupSystems)
	if err != nil {
		return err
	}
	sortedTeardown, err := sortSystems("teardown", s.teardownSystems)
	if err != nil {
		return err
	}
	for _, stage := range s.stages {
		sorted, err := sortSystems("stage:"+stage.Label.Name, stage.systems)
		if err != nil {
			return err
		}
		stage.systems = sorted
	}

	stageNodes := make([]depNode, len(s.stages))
	for i, stage := range s.stages {
		stageNodes[i] = depNode{name: stage.Label.Name, labels: []Label{stage.Label}, ordering: stage.Ordering}
	}
	order, err := topologicalOrder("stages", stageNodes)
	if err != nil {
		return err
	}
	sortedStages := make([]*Stage, len(s.stages))
	for i, idx := range order {
		sortedStages[i] = s.stages[idx]
		s.stageIndex[sortedStages[i].Label.ID] = i
	}

	s.startupSystems = sortedStartup
	s.teardownSystems = sortedTeardown
	s.stages = sortedStages
	s.state = schedulerInitialized
	return nil
}

func (s *Scheduler) requireInitialized() {
	if s.state == schedulerBuilding {
		panic("ecs: scheduler method called before InitializeSystems")
	}
}

func (s *Scheduler) flushCommands() error {
	buf, ok := GetResource[CommandBuffer](s.world.Resources)
	if !ok {
		return nil
	}
	for _, cmd := range buf.Drain() {
		if err := cmd(s.world); err != nil {
			return err
		}
	}
	return nil
}

// Startup runs the startup bucket, in the order InitializeSystems resolved.
// Calling it before InitializeSystems is a programming error and panics.
func (s *Scheduler) Startup() error {
	s.mu.Lock()
	s.requireInitialized()
	systems := s.startupSystems
	s.mu.Unlock()

	if err := s.runSystemsNoLock("startup", systems); err != nil {
		return err
	}
	s.mu.Lock()
	if s.state == schedulerInitialized {
		s.state = schedulerRunning
	}
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) runSystemsNoLock(bucket string, systems []*System) error {
	for _, sys := range systems {
		sys := sys
		err := s.executor.Run(context.Background(), func(context.Context) error {
			return sys.Run(s.world)
		})
		if err != nil {
			return fmt.Errorf("ecs: %s system %q: %w", bucket, sys.meta.Label.Name, err)
		}
	}
	return s.flushCommands()
}

// Update runs every stage in order, each stage running its systems in
// order, and reports a StageSummary per stage to the configured Observer.
// Calling it before InitializeSystems is a programming error and panics.
func (s *Scheduler) Update() error {
	s.mu.Lock()
	s.requireInitialized()
	stages := s.stages
	tick := s.tick
	s.mu.Unlock()

	for _, stage := range stages {
		start := time.Now()
		executed, skipped := 0, 0
		var stageErr error
		for _, sys := range stage.systems {
			sys := sys
			err := s.executor.Run(context.Background(), func(context.Context) error {
				return sys.Run(s.world)
			})
			if err != nil {
				stageErr = fmt.Errorf("ecs: stage %q system %q: %w", stage.Label.Name, sys.meta.Label.Name, err)
				skipped = len(stage.systems) - executed - 1
				break
			}
			executed++
		}
		if stageErr == nil {
			stageErr = s.flushCommands()
		}
		s.observer.StageCompleted(StageSummary{
			Stage:           stage.Label,
			Tick:            tick,
			Duration:        time.Since(start),
			SystemsTotal:    len(stage.systems),
			SystemsExecuted: executed,
			SystemsSkipped:  skipped,
			Err:             stageErr,
		})
		if stageErr != nil {
			return stageErr
		}
	}

	s.mu.Lock()
	s.tick++
	s.mu.Unlock()
	return nil
}

// Teardown runs the teardown bucket and transitions the scheduler to
// Stopped. Calling it before InitializeSystems is a programming error and
// panics.
func (s *Scheduler) Teardown() error {
	s.mu.Lock()
	s.requireInitialized()
	systems := s.teardownSystems
	s.mu.Unlock()

	if err := s.runSystemsNoLock("teardown", systems); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = schedulerStopped
	s.mu.Unlock()
	return nil
}

// TickIndex returns the number of completed Update calls.
func (s *Scheduler) TickIndex() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}
