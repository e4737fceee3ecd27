package storage

import (
	"testing"

	"github.com/novaecs/ecs"
)

type GameStats struct {
	Health       int
	AttackDamage int
	Defense      int
}

func TestSharedPoolBasicOperations(t *testing.T) {
	pool := NewSharedPool[GameStats]()

	entity1 := ecs.EntityIDFromParts(1, 1)
	entity2 := ecs.EntityIDFromParts(2, 1)
	stats := GameStats{Health: 100, AttackDamage: 25, Defense: 10}

	pool.Set(entity1, stats)
	pool.Set(entity2, stats)

	val1, ok := pool.Get(entity1)
	if !ok || val1.Health != 100 {
		t.Fatalf("expected entity1 health 100, got %#v ok=%v", val1, ok)
	}
	val2, ok := pool.Get(entity2)
	if !ok || val2.AttackDamage != 25 {
		t.Fatalf("expected entity2 attack 25, got %#v ok=%v", val2, ok)
	}
}

func TestSharedPoolDeduplicatesIdenticalValues(t *testing.T) {
	pool := NewSharedPool[GameStats]()

	zombieStats := GameStats{Health: 50, AttackDamage: 10, Defense: 5}
	playerStats := GameStats{Health: 100, AttackDamage: 25, Defense: 15}

	pool.Set(ecs.EntityIDFromParts(1, 1), zombieStats)
	pool.Set(ecs.EntityIDFromParts(2, 1), zombieStats)
	pool.Set(ecs.EntityIDFromParts(3, 1), playerStats)

	stats := pool.Stats()
	if stats.EntityCount != 3 {
		t.Fatalf("expected 3 entities, got %d", stats.EntityCount)
	}
	if stats.UniqueValueCount != 2 {
		t.Fatalf("expected 2 unique values, got %d", stats.UniqueValueCount)
	}
	if stats.SharingRatio != 1.5 {
		t.Fatalf("expected sharing ratio 1.5, got %.2f", stats.SharingRatio)
	}
}

func TestSharedPoolRemoveDecrementsRefCount(t *testing.T) {
	pool := NewSharedPool[GameStats]()
	stats := GameStats{Health: 50, AttackDamage: 10, Defense: 5}
	e1 := ecs.EntityIDFromParts(1, 1)
	e2 := ecs.EntityIDFromParts(2, 1)

	pool.Set(e1, stats)
	pool.Set(e2, stats)
	if got := pool.Stats().UniqueValueCount; got != 1 {
		t.Fatalf("expected 1 unique value, got %d", got)
	}

	if !pool.Remove(e1) {
		t.Fatalf("expected remove of e1 to succeed")
	}
	if got := pool.Stats().UniqueValueCount; got != 1 {
		t.Fatalf("expected value to survive while e2 still references it, got %d", got)
	}

	pool.Remove(e2)
	if got := pool.Stats().UniqueValueCount; got != 0 {
		t.Fatalf("expected 0 unique values once every referent is gone, got %d", got)
	}
}

func TestSharedPoolSetReplacesPreviousValue(t *testing.T) {
	pool := NewSharedPool[GameStats]()
	e1 := ecs.EntityIDFromParts(1, 1)

	pool.Set(e1, GameStats{Health: 50})
	pool.Set(e1, GameStats{Health: 100})

	if got := pool.Stats().UniqueValueCount; got != 1 {
		t.Fatalf("expected the stale value to be released, got %d unique values", got)
	}
	val, ok := pool.Get(e1)
	if !ok || val.Health != 100 {
		t.Fatalf("expected updated health 100, got %#v ok=%v", val, ok)
	}
}

func TestSharedPoolMemoryEfficiencyAtScale(t *testing.T) {
	pool := NewSharedPool[GameStats]()
	common := GameStats{Health: 50, AttackDamage: 10, Defense: 5}

	for i := 0; i < 1000; i++ {
		pool.Set(ecs.EntityIDFromParts(uint32(i+1), 1), common)
	}

	stats := pool.Stats()
	if stats.EntityCount != 1000 {
		t.Fatalf("expected 1000 entities, got %d", stats.EntityCount)
	}
	if stats.UniqueValueCount != 1 {
		t.Fatalf("expected 1 unique value, got %d", stats.UniqueValueCount)
	}
	if stats.SharingRatio != 1000.0 {
		t.Fatalf("expected sharing ratio 1000, got %.2f", stats.SharingRatio)
	}
}
