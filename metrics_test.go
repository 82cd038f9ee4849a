package region

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := newTestArena(1024)
	defer a.Destroy()

	m := a.Metrics()
	if m.Allocs != 0 || m.Frees != 0 || m.MemoryInUse != 0 {
		t.Errorf("initial metrics = %+v, want all zero counters", m)
	}
	if m.NumFields != 0 {
		t.Errorf("initial NumFields = %d, want 0 before first Alloc", m.NumFields)
	}

	a.Alloc(100, 8)
	a.Alloc(200, 8)

	m = a.Metrics()
	if m.Allocs != 2 {
		t.Errorf("Allocs = %d, want 2", m.Allocs)
	}
	if m.MemoryInUse == 0 {
		t.Error("MemoryInUse should be > 0 after allocations")
	}
	if m.TotalMemoryRequested < 300 {
		t.Errorf("TotalMemoryRequested = %d, want >= 300", m.TotalMemoryRequested)
	}
	if m.NumFields != 1 {
		t.Errorf("NumFields = %d, want 1", m.NumFields)
	}
	if m.Capacity == 0 {
		t.Error("Capacity should be > 0")
	}

	// Force field growth by requesting more than the minimum field size.
	a.Alloc(4096, 8)
	m = a.Metrics()
	if m.NumFields != 2 {
		t.Errorf("NumFields after growth = %d, want 2", m.NumFields)
	}
	if m.Capacity <= 1024 {
		t.Errorf("Capacity after growth = %d, want > 1024", m.Capacity)
	}
}

func TestArenaMetricsFree(t *testing.T) {
	a := newTestArena(4096)
	defer a.Destroy()

	p := a.Alloc(64, 8)
	before := a.Metrics().MemoryInUse

	a.Free(p)
	m := a.Metrics()
	if m.Frees != 1 {
		t.Errorf("Frees = %d, want 1", m.Frees)
	}
	if m.MemoryInUse >= before {
		t.Errorf("MemoryInUse after Free = %d, want < %d", m.MemoryInUse, before)
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := newTestArena(1024)
	defer a.Destroy()

	a.Alloc(500, 8)
	if a.Metrics().MemoryInUse == 0 {
		t.Error("expected non-zero MemoryInUse before reset")
	}

	a.Reset()
	m := a.Metrics()
	if m.Allocs != 0 || m.Frees != 0 || m.MemoryInUse != 0 || m.TotalMemoryRequested != 0 {
		t.Errorf("metrics after Reset = %+v, want all counters zeroed", m)
	}
	// Capacity (the head field's mapping) should remain.
	if m.NumFields == 0 {
		t.Error("NumFields should not be 0 after Reset")
	}
	if m.Capacity == 0 {
		t.Error("Capacity should not be 0 after Reset")
	}
}

func TestArenaMetricsAfterDestroy(t *testing.T) {
	a := newTestArena(1024)
	a.Alloc(100, 8)
	a.Destroy()

	m := a.Metrics()
	if m.NumFields != 0 {
		t.Errorf("NumFields after Destroy = %d, want 0", m.NumFields)
	}
	if m.Capacity != 0 {
		t.Errorf("Capacity after Destroy = %d, want 0", m.Capacity)
	}
}

func TestSafeArenaMetricsSnapshot(t *testing.T) {
	s := newTestSafeArena(2048)
	defer s.Destroy()

	s.Alloc(300, 8)

	m := s.Metrics()
	if m.MemoryInUse == 0 {
		t.Error("SafeArena Metrics.MemoryInUse should be > 0")
	}
	if m.NumFields == 0 {
		t.Error("SafeArena Metrics.NumFields should be > 0")
	}
	if m.Capacity == 0 {
		t.Error("SafeArena Metrics.Capacity should be > 0")
	}
}

func BenchmarkMetrics(b *testing.B) {
	a := newTestArena(1024 * 1024)
	for i := 0; i < 100; i++ {
		a.Alloc(1000, 8)
	}
	defer a.Destroy()

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})
}

func BenchmarkSafeArenaMetrics(b *testing.B) {
	s := newTestSafeArena(1024 * 1024)
	for i := 0; i < 100; i++ {
		s.Alloc(1000, 8)
	}
	defer s.Destroy()

	b.Run("SafeMetrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Metrics()
		}
	})
}
