package ecs_test

import (
	"testing"

	"github.com/novaecs/ecs"
)

type registryTestPosition struct{ X, Y int }
type registryTestVelocity struct{ DX, DY int }

func TestRegistryEmplaceTryGetHasErase(t *testing.T) {
	reg := ecs.NewRegistry()
	id := reg.Create()

	if ecs.Has[registryTestPosition](reg, id) {
		t.Fatalf("expected no position before Emplace")
	}

	ecs.Emplace(reg, id, registryTestPosition{X: 1, Y: 2})
	got, ok := ecs.TryGet[registryTestPosition](reg, id)
	if !ok || got.X != 1 || got.Y != 2 {
		t.Fatalf("expected position {1 2}, got %#v ok=%v", got, ok)
	}
	if !ecs.Has[registryTestPosition](reg, id) {
		t.Fatalf("expected Has to report true after Emplace")
	}

	ecs.Erase[registryTestPosition](reg, id)
	if ecs.Has[registryTestPosition](reg, id) {
		t.Fatalf("expected Has to report false after Erase")
	}
}

func TestRegistryErasePanicsWhenAbsent(t *testing.T) {
	reg := ecs.NewRegistry()
	id := reg.Create()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Erase to panic for an absent component")
		}
	}()
	ecs.Erase[registryTestPosition](reg, id)
}

func TestRegistryRemoveTolerantOfAbsence(t *testing.T) {
	reg := ecs.NewRegistry()
	id := reg.Create()
	if ecs.Remove[registryTestPosition](reg, id) {
		t.Fatalf("expected Remove to report false for an absent component")
	}
	ecs.Emplace(reg, id, registryTestPosition{X: 3, Y: 4})
	if !ecs.Remove[registryTestPosition](reg, id) {
		t.Fatalf("expected Remove to report true for a present component")
	}
}

func TestRegistryDestroyClearsComponentsAndRecyclesGeneration(t *testing.T) {
	reg := ecs.NewRegistry()
	id := reg.Create()
	ecs.Emplace(reg, id, registryTestPosition{X: 5, Y: 6})

	if !reg.Destroy(id) {
		t.Fatalf("expected Destroy to succeed for a live entity")
	}
	if reg.IsAlive(id) {
		t.Fatalf("expected entity to be dead after Destroy")
	}
	if ecs.Has[registryTestPosition](reg, id) {
		t.Fatalf("expected components to be cleared after Destroy")
	}

	recycled := reg.Create()
	if recycled.Index() != id.Index() {
		t.Fatalf("expected the free-listed index to be recycled")
	}
	if recycled.Generation() == id.Generation() {
		t.Fatalf("expected a recycled index to bump its generation")
	}
	if ecs.Has[registryTestPosition](reg, recycled) {
		t.Fatalf("a stale generation must not see the destroyed entity's components")
	}
}

func TestRegistryEachVisitsEveryMatchingEntity(t *testing.T) {
	reg := ecs.NewRegistry()
	a := reg.Create()
	b := reg.Create()
	c := reg.Create()

	ecs.Emplace(reg, a, registryTestVelocity{DX: 1})
	ecs.Emplace(reg, b, registryTestVelocity{DX: 2})
	ecs.Emplace(reg, c, registryTestPosition{X: 9})

	seen := map[ecs.EntityID]int{}
	ecs.Each(reg, func(id ecs.EntityID, v *registryTestVelocity) bool {
		seen[id] = v.DX
		return true
	})

	if len(seen) != 2 {
		t.Fatalf("expected 2 entities with velocity, got %d", len(seen))
	}
	if seen[a] != 1 || seen[b] != 2 {
		t.Fatalf("unexpected velocity values: %#v", seen)
	}
}
