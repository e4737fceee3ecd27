package ecs

import "github.com/rs/zerolog"

// Runner is the outer loop App.Run hands control to, installed via
// SetRunner. The default runner is installed by DefaultPlugins.
type Runner func(app *App) error

// Plugin is any value callable with an *App, used to group related stage,
// system, and resource registration into one reusable unit.
type Plugin func(app *App)

// App composes a Scheduler and its World behind a convenience surface:
// insert resources, register stages and systems, install plugins, and pick
// a runner, mirroring the source scheduler's own App façade.
type App struct {
	scheduler *Scheduler
	runner    Runner
}

// NewApp constructs an App over a fresh World and Scheduler.
func NewApp() *App {
	world := NewWorld()
	return &App{scheduler: NewScheduler(world)}
}

// World returns the app's world.
func (a *App) World() *World { return a.scheduler.World() }

// Scheduler returns the app's scheduler.
func (a *App) Scheduler() *Scheduler { return a.scheduler }

// InsertResource stores value in the world's resources table, overwriting
// any previous value of the same type. A method can't carry its own type
// parameter, so this is a package-level function taking the App explicitly:
// ecs.InsertResource(app, Time{}).
func InsertResource[T any](a *App, value T) *T {
	return SetResource(a.scheduler.World().Resources, value)
}

// AddStage registers stage with the scheduler.
func (a *App) AddStage(stage *Stage) error {
	return a.scheduler.AddStage(stage)
}

// SetFirstStage designates the stage registered under label as the
// scheduler's first stage.
func (a *App) SetFirstStage(label Label) error {
	stage, ok := a.scheduler.stageByLabel(label)
	if !ok {
		return &UnknownStageError{Label: label}
	}
	return a.scheduler.SetFirstStage(stage)
}

// SetLastStage designates the stage registered under label as the
// scheduler's last stage.
func (a *App) SetLastStage(label Label) error {
	stage, ok := a.scheduler.stageByLabel(label)
	if !ok {
		return &UnknownStageError{Label: label}
	}
	return a.scheduler.SetLastStage(stage)
}

// AddSystemToStage appends sys to the stage identified by stageLabel.
func (a *App) AddSystemToStage(sys *System, stageLabel Label) error {
	return a.scheduler.AddSystemToStage(sys, stageLabel)
}

// AddSystem appends sys to the Update stage, the default home for
// application logic.
func (a *App) AddSystem(sys *System) error {
	return a.scheduler.AddSystemToStage(sys, StageUpdate)
}

// AddStartupSystem appends sys to the startup bucket, run once before the
// first update.
func (a *App) AddStartupSystem(sys *System) {
	a.scheduler.AddStartupSystem(sys)
}

// AddTeardownSystem appends sys to the teardown bucket, run once after the
// update loop stops.
func (a *App) AddTeardownSystem(sys *System) {
	a.scheduler.AddTeardownSystem(sys)
}

// AddPlugin invokes plugin(a).
func (a *App) AddPlugin(plugin Plugin) {
	plugin(a)
}

// AddDefaultStages installs First, PreUpdate, Update, PostUpdate, Last,
// with First/Last marked as the scheduler's first/last stages.
func (a *App) AddDefaultStages() {
	for _, label := range []Label{StageFirst, StagePreUpdate, StageUpdate, StagePostUpdate, StageLast} {
		if err := a.AddStage(NewStage(label)); err != nil {
			panic(err)
		}
	}
	if err := a.SetFirstStage(StageFirst); err != nil {
		panic(err)
	}
	if err := a.SetLastStage(StageLast); err != nil {
		panic(err)
	}
}

// SetLogger overrides the zerolog.Logger resource SystemLogger parameters
// bind against, which DefaultPlugins otherwise seeds with a no-op logger.
func (a *App) SetLogger(logger zerolog.Logger) {
	InsertResource(a, logger)
}

// SetObservation builds the observer chain described by cfg (structured
// logging via logger, prometheus stage metrics, or a caller-supplied
// Observer, fanned out together) and installs it on the scheduler, giving
// callers of App a single place to opt into the observability stack
// instead of reaching into the scheduler directly.
func (a *App) SetObservation(logger zerolog.Logger, cfg ObservationSettings) {
	a.scheduler.SetObserver(buildObserverChain(logger, cfg))
}

// SetRunner installs the outer loop Run invokes.
func (a *App) SetRunner(runner Runner) {
	a.runner = runner
}

// Run invokes the installed runner, failing with ErrNoRunner if none was
// set via SetRunner.
func (a *App) Run() error {
	if a.runner == nil {
		return ErrNoRunner
	}
	return a.runner(a)
}

// DefaultRunner is the standard App.Run outer loop: initialize systems,
// run startup once, loop update until AppExit.ShouldExit is set (checked
// at the top of each iteration, never mid-stage), then run teardown once.
func DefaultRunner(a *App) error {
	if err := a.scheduler.InitializeSystems(); err != nil {
		return err
	}
	if err := a.scheduler.Startup(); err != nil {
		return err
	}
	for {
		if exit, ok := GetResource[AppExit](a.scheduler.World().Resources); ok && exit.ShouldExit {
			break
		}
		if err := a.scheduler.Update(); err != nil {
			return err
		}
	}
	return a.scheduler.Teardown()
}
