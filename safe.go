package region

import (
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but pay for mutex locking. The
// core Arena is deliberately not made safe itself (SPEC_FULL.md §5); this
// wrapper is the "assign one mutex" alternative the spec's own design
// notes suggest.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena.
func NewSafeArena() *SafeArena {
	return &SafeArena{a: New()}
}

// Alloc thread-safely allocates size bytes aligned to align.
func (s *SafeArena) Alloc(size, align uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size, align)
}

// Free thread-safely frees a block previously returned by Alloc.
func (s *SafeArena) Free(ptr unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(ptr)
}

// Reset thread-safely resets the wrapped arena.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Destroy thread-safely destroys the wrapped arena.
func (s *SafeArena) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Destroy()
}

// SetMinimumFieldSize thread-safely sets the wrapped arena's field-size
// floor. Like the unwrapped Arena, this must happen before the first
// allocation to take effect.
func (s *SafeArena) SetMinimumFieldSize(n uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.MinimumFieldSize = n
}
