package region

// ArenaMetrics is a snapshot of an arena's observability counters (SPEC_FULL
// §6). Sampling it has no effect on arena semantics. Allocs, Frees,
// MemoryInUse and TotalMemoryRequested count from the arena's creation or
// its last Reset or Destroy, whichever is latest; both zero them.
type ArenaMetrics struct {
	Allocs               int64 // number of successful Alloc calls
	Frees                int64 // number of Free calls
	MemoryInUse          int64 // bytes currently reachable as live allocations
	TotalMemoryRequested int64 // cumulative bytes requested via Alloc
	NumFields            int   // fields currently in the chain
	Capacity             int64 // total mapped bytes across all fields
}

// counters holds the raw, single-threaded tallies backing Metrics.
type counters struct {
	allocs, frees               int64
	memoryInUse, totalRequested int64
}

func (c *counters) onAlloc(requested, charged uintptr) {
	c.allocs++
	c.totalRequested += int64(requested)
	c.memoryInUse += int64(charged)
}

func (c *counters) onFree(size uintptr) {
	c.frees++
	c.memoryInUse -= int64(size)
}

func (c *counters) reset() {
	*c = counters{}
}

// Metrics returns a snapshot of a's allocation counters.
func (a *Arena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		Allocs:               a.counters.allocs,
		Frees:                a.counters.frees,
		MemoryInUse:          a.counters.memoryInUse,
		TotalMemoryRequested: a.counters.totalRequested,
	}
	for f := a.head; f != nil; f = f.next {
		m.NumFields++
		m.Capacity += int64(f.size)
	}
	return m
}

// Metrics thread-safely returns a snapshot of the wrapped arena's counters.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
