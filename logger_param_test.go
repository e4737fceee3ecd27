package ecs

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSystemLoggerDefaultsToNoop(t *testing.T) {
	world := NewWorld()
	var log SystemLogger
	if err := log.paramInit(world); err != nil {
		t.Fatalf("init: %v", err)
	}
	scoped := log.With("tick", 1)
	scoped.Info("hello")
}

func TestSystemLoggerBindsInsertedResource(t *testing.T) {
	world := NewWorld()
	SetResource(world.Resources, zerolog.Nop())

	var log SystemLogger
	if err := log.paramInit(world); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !ContainsResource[zerolog.Logger](world.Resources) {
		t.Fatalf("expected a zerolog.Logger resource to remain bound")
	}
}
