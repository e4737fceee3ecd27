package ecs

import "testing"

type paramTestClock struct{ Tick int }
type paramTestScore struct{ Value int }

// P3 — Access.merge keeps read_write disjoint from read_only, and demotes
// anything written on either side out of the merged read-only set.
func TestAccessMergeDisjointness(t *testing.T) {
	clockID := TypeOf[paramTestClock]()
	scoreID := TypeOf[paramTestScore]()

	a := Access{
		ReadOnly:  map[TypeId]struct{}{clockID: {}},
		ReadWrite: map[TypeId]struct{}{},
	}
	b := Access{
		ReadOnly:  map[TypeId]struct{}{},
		ReadWrite: map[TypeId]struct{}{clockID: {}, scoreID: {}},
	}

	merged := Merge(a, b)
	if _, ok := merged.ReadWrite[clockID]; !ok {
		t.Fatalf("expected clock to be read-write in the merge")
	}
	if _, ok := merged.ReadOnly[clockID]; ok {
		t.Fatalf("expected clock to be removed from read-only once it is written")
	}
	if _, ok := merged.ReadWrite[scoreID]; !ok {
		t.Fatalf("expected score to be read-write in the merge")
	}
	for id := range merged.ReadOnly {
		if _, ok := merged.ReadWrite[id]; ok {
			t.Fatalf("read-only and read-write sets must stay disjoint, both contain %v", id)
		}
	}
}

// P4 — set/get/remove/try_add resource semantics.
func TestResourceSetGetRemoveTryAdd(t *testing.T) {
	res := NewResources()

	SetResource(res, 7)
	got, ok := GetResource[int](res)
	if !ok || *got != 7 {
		t.Fatalf("expected get to return 7, got %v ok=%v", got, ok)
	}

	removed, ok := RemoveResource[int](res)
	if !ok || removed != 7 {
		t.Fatalf("expected remove to return 7, got %v ok=%v", removed, ok)
	}
	if _, ok := GetResource[int](res); ok {
		t.Fatalf("expected get after remove to report absent")
	}

	SetResource(res, 9)
	view, inserted := TryAddResource(res, func() int { return 42 })
	if inserted {
		t.Fatalf("expected try_add to report no insertion when a value already exists")
	}
	if *view != 9 {
		t.Fatalf("expected try_add to return the existing value 9, got %d", *view)
	}
}

// P5 — two Local[T] parameters in two different systems are distinct
// instances; a mutation in one system is never visible from the other, and
// each system's own Local state persists across ticks.
func TestLocalParamsAreIsolatedAndPersistent(t *testing.T) {
	world := NewWorld()

	var seenA, seenB []int
	sysA := NewSystem1(L("a"), func(local *Local[int]) {
		*local.Get()++
		seenA = append(seenA, *local.Get())
	})
	sysB := NewSystem1(L("b"), func(local *Local[int]) {
		*local.Get() += 10
		seenB = append(seenB, *local.Get())
	})

	for i := 0; i < 3; i++ {
		if err := sysA.Run(world); err != nil {
			t.Fatalf("run a: %v", err)
		}
		if err := sysB.Run(world); err != nil {
			t.Fatalf("run b: %v", err)
		}
	}

	if got := []int{1, 2, 3}; !equalInts(seenA, got) {
		t.Fatalf("system a local state: got %#v, want %#v", seenA, got)
	}
	if got := []int{10, 20, 30}; !equalInts(seenB, got) {
		t.Fatalf("system b local state: got %#v, want %#v", seenB, got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
