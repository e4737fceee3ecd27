package ecs_test

import (
	"testing"

	"github.com/novaecs/ecs"
)

func TestCreateEntityCommand(t *testing.T) {
	world := ecs.NewWorld()
	var id ecs.EntityID
	cmd := ecs.NewCreateEntityCommand(&id)
	if err := cmd(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if id.IsZero() {
		t.Fatalf("expected id to be populated")
	}
	if !world.Registry.IsAlive(id) {
		t.Fatalf("expected entity to exist")
	}
}

func TestDestroyEntityCommand(t *testing.T) {
	world := ecs.NewWorld()
	id := world.Registry.Create()
	cmd := ecs.NewDestroyEntityCommand(id)
	if err := cmd(world); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if world.Registry.IsAlive(id) {
		t.Fatalf("expected entity destroyed")
	}
}

type commandTestPosition struct{ X, Y int }

func TestAddRemoveComponentCommands(t *testing.T) {
	world := ecs.NewWorld()
	id := world.Registry.Create()

	add := ecs.NewAddComponentCommand(id, commandTestPosition{X: 1, Y: 99})
	if err := add(world); err != nil {
		t.Fatalf("apply add: %v", err)
	}

	value, ok := ecs.TryGet[commandTestPosition](world.Registry, id)
	if !ok || value.Y != 99 {
		t.Fatalf("unexpected component state: value=%v, ok=%v", value, ok)
	}

	remove := ecs.NewRemoveComponentCommand[commandTestPosition](id)
	if err := remove(world); err != nil {
		t.Fatalf("apply remove: %v", err)
	}
	if ecs.Has[commandTestPosition](world.Registry, id) {
		t.Fatalf("component should be removed")
	}
}
