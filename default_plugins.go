package ecs

import (
	"time"

	"github.com/rs/zerolog"
)

// Time is the default clock resource, updated once per tick by the time
// system installed in the First stage. Delta is zero on the very first
// update, matching the source scheduler's own startup convention (there is
// no prior tick to measure a delta against).
type Time struct {
	startedAt time.Time
	lastTick  time.Time
	delta     time.Duration
	elapsed   time.Duration
	ticked    bool
}

// Update advances the clock to now, recording the elapsed time since the
// previous call (zero on the first call).
func (t *Time) Update(now time.Time) {
	if !t.ticked {
		t.startedAt = now
		t.lastTick = now
		t.delta = 0
		t.ticked = true
		return
	}
	t.delta = now.Sub(t.lastTick)
	t.elapsed += t.delta
	t.lastTick = now
}

// Delta returns the duration of the most recently completed tick.
func (t *Time) Delta() time.Duration { return t.delta }

// Elapsed returns the total duration since the first Update call.
func (t *Time) Elapsed() time.Duration { return t.elapsed }

// TimeSinceStartup returns the duration since the first Update call, an
// alias kept for parity with the reference clock's time_since_startup.
func (t *Time) TimeSinceStartup() time.Duration { return t.elapsed }

// AppExit is the resource systems set to ask the default runner to stop
// after the current tick.
type AppExit struct {
	ShouldExit bool
}

var (
	// StageFirst runs once per tick, before anything else; the time system
	// lives here.
	StageFirst = L("First")
	// StagePreUpdate runs after First and before Update.
	StagePreUpdate = L("PreUpdate")
	// StageUpdate is where application systems default to when none is
	// specified.
	StageUpdate = L("Update")
	// StagePostUpdate runs after Update and before Last.
	StagePostUpdate = L("PostUpdate")
	// StageLast runs once per tick, after everything else.
	StageLast = L("Last")
)

func timeSystem(res *Resource[Time]) {
	res.Get().Update(time.Now())
}

// DefaultPlugins installs the standard First/PreUpdate/Update/PostUpdate/Last
// stage pipeline, the Time and AppExit resources, and the time system that
// keeps Time current, mirroring the source scheduler's own bootstrap plugin.
func DefaultPlugins(app *App) {
	app.AddDefaultStages()

	InsertResource(app, Time{})
	InsertResource(app, AppExit{})
	InsertResource(app, *NewCommandBuffer())
	InsertResource(app, zerolog.Nop())

	if err := app.AddSystemToStage(NewSystem1(L("time_system"), timeSystem), StageFirst); err != nil {
		panic(err)
	}

	app.SetRunner(DefaultRunner)
}
