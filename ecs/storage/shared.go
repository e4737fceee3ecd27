// Package storage holds component storage adjuncts that sit alongside the
// core Registry rather than inside it — utilities a game built on top of
// the scheduler can opt into for a specific component, without the
// Registry itself needing to know they exist.
package storage

import (
	"reflect"
	"sync"

	"github.com/novaecs/ecs"
)

// SharedPool deduplicates identical values of C behind reference-counted
// handles, the way many entities of the same archetype (all zombies, all
// basic arrows) can point at one shared BaseStats instance instead of each
// carrying its own copy. Values are treated as immutable once shared: Set
// always looks up-or-creates a handle for the new value rather than
// mutating the previous one in place, so two entities already sharing a
// handle never see each other's "modification".
type SharedPool[C any] struct {
	mu            sync.RWMutex
	entityToValue map[ecs.EntityID]uint32
	values        map[uint32]*sharedEntry[C]
	nextID        uint32
}

type sharedEntry[C any] struct {
	data     C
	refCount int
}

// NewSharedPool constructs an empty pool for component type C.
func NewSharedPool[C any]() *SharedPool[C] {
	return &SharedPool[C]{
		entityToValue: make(map[ecs.EntityID]uint32),
		values:        make(map[uint32]*sharedEntry[C]),
		nextID:        1,
	}
}

// Set attaches value to id, deduplicating against any value already shared
// by another entity via reflect.DeepEqual.
func (p *SharedPool[C]) Set(id ecs.EntityID, value C) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if oldID, exists := p.entityToValue[id]; exists {
		p.decrementLocked(oldID)
	}
	p.entityToValue[id] = p.findOrCreateLocked(value)
}

// Get returns the value shared with id, if any.
func (p *SharedPool[C]) Get(id ecs.EntityID) (C, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var zero C
	valueID, exists := p.entityToValue[id]
	if !exists {
		return zero, false
	}
	entry, ok := p.values[valueID]
	if !ok {
		return zero, false
	}
	return entry.data, true
}

// Remove detaches id from whatever value it shared, releasing the
// underlying value once its last referent is gone.
func (p *SharedPool[C]) Remove(id ecs.EntityID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	valueID, exists := p.entityToValue[id]
	if !exists {
		return false
	}
	delete(p.entityToValue, id)
	p.decrementLocked(valueID)
	return true
}

// Stats reports how many entities share how many distinct values.
func (p *SharedPool[C]) Stats() SharedPoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	unique := len(p.values)
	ratio := 0.0
	if unique > 0 {
		ratio = float64(len(p.entityToValue)) / float64(unique)
	}
	return SharedPoolStats{
		EntityCount:      len(p.entityToValue),
		UniqueValueCount: unique,
		SharingRatio:     ratio,
	}
}

func (p *SharedPool[C]) findOrCreateLocked(value C) uint32 {
	for id, entry := range p.values {
		if reflect.DeepEqual(entry.data, value) {
			entry.refCount++
			return id
		}
	}
	id := p.nextID
	p.nextID++
	p.values[id] = &sharedEntry[C]{data: value, refCount: 1}
	return id
}

func (p *SharedPool[C]) decrementLocked(valueID uint32) {
	entry, ok := p.values[valueID]
	if !ok {
		return
	}
	entry.refCount--
	if entry.refCount <= 0 {
		delete(p.values, valueID)
	}
}

// SharedPoolStats captures a pool's deduplication efficiency.
type SharedPoolStats struct {
	EntityCount      int
	UniqueValueCount int
	SharingRatio     float64
}
