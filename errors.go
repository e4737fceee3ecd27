package ecs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoRunner is returned by App.Run when no runner has been installed via SetRunner.
	ErrNoRunner = errors.New("ecs: App does not have a runner set. Set one via App.SetRunner")
	// ErrAlreadySet is returned by SetFirstStage/SetLastStage on a second call.
	ErrAlreadySet = errors.New("ecs: first/last stage already set")

	// ErrWorkerPoolClosed indicates jobs cannot be submitted because the pool closed.
	ErrWorkerPoolClosed = errors.New("ecs: worker pool closed")
)

// DuplicateStageError is returned when a stage is registered whose primary label
// collides with one already held by the scheduler.
type DuplicateStageError struct {
	Label Label
}

func (e *DuplicateStageError) Error() string {
	return fmt.Sprintf("ecs: duplicate stage %q", e.Label.Name)
}

// UnknownStageError is returned when add_system_to_stage references a stage that
// was never registered.
type UnknownStageError struct {
	Label Label
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("ecs: unknown stage %q", e.Label.Name)
}

// UnknownLabelError is returned when the dependency graph encounters an ordering
// constraint referencing a label no node carries.
type UnknownLabelError struct {
	Label Label
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("ecs: unknown label %q", e.Label.Name)
}

// MissingResourceError is returned when a Resource[T] parameter is bound against
// a World whose Resources table has no entry for T.
type MissingResourceError struct {
	Type TypeId
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("ecs: missing resource %s", e.Type.Name)
}

// DependencyCycleError is returned when topological sort detects a cycle. Names
// holds the display name of every node on the cycle path, in path order, not yet
// closed back to the first entry.
type DependencyCycleError struct {
	Bucket string
	Cycle  []int
	Names  []string
}

func (e *DependencyCycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found a dependency cycle in %s:\n", e.Bucket)
	for i, name := range e.Names {
		fmt.Fprintf(&b, "- `%s`\n", name)
		if i < len(e.Names)-1 {
			b.WriteString("  wants to be after\n")
		}
	}
	if len(e.Names) > 0 {
		b.WriteString("  wants to be after\n")
		fmt.Fprintf(&b, "- `%s`\n", e.Names[0])
	}
	return b.String()
}
