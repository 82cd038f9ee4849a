package region

import "unsafe"

// sizeAlignFor returns the (size, align) pair to request from Arena.Alloc
// for a value of type T, padded up so size >= align and size >= 1 — Alloc
// rejects align > size and size < 1, which a zero-sized T (struct{}) would
// otherwise violate.
func sizeAlignFor[T any]() (size, align uintptr) {
	var zero T
	size = unsafe.Sizeof(zero)
	align = unsafe.Alignof(zero)
	if size < align {
		size = align
	}
	if size == 0 {
		size = 1
	}
	return size, align
}

// Alloc returns a pointer to a zeroed T allocated from a, or nil if a
// could not satisfy the request.
func Alloc[T any](a *Arena) *T {
	size, align := sizeAlignFor[T]()
	p := a.Alloc(size, align)
	if p == nil {
		return nil
	}
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p)
}

// AllocZeroed is identical to Alloc, provided for API consistency with
// AllocSliceZeroed.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in a without zeroing memory.
// Faster than Alloc, but the memory's contents are whatever was last
// written there: zero on first use of freshly mapped memory, which is
// OS-zero-filled, but old data after a Reset re-bumps over it or when a
// freed block is reused from the free-list.
func AllocUninitialized[T any](a *Arena) *T {
	size, align := sizeAlignFor[T]()
	p := a.Alloc(size, align)
	if p == nil {
		return nil
	}
	return (*T)(p)
}

// AllocSlice allocates a slice of n elements of type T from a without
// zeroing them. Returns nil if n <= 0 or a could not satisfy the request.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	elemSize, align := sizeAlignFor[T]()
	total := elemSize * uintptr(n)
	p := a.Alloc(total, align)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed allocates a slice of n zeroed elements of type T from a.
// Returns nil if n <= 0 or a could not satisfy the request.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	elemSize, align := sizeAlignFor[T]()
	total := elemSize * uintptr(n)
	p := a.Alloc(total, align)
	if p == nil {
		return nil
	}
	clear(unsafe.Slice((*byte)(p), total))
	return unsafe.Slice((*T)(p), n)
}

// Free returns a *T previously obtained from Alloc/AllocUninitialized back
// to a's free-list index. See (*Arena).Free for the aliasing rules this
// must respect.
func Free[T any](a *Arena, p *T) {
	a.Free(unsafe.Pointer(p))
}

// SafeAlloc thread-safely allocates a zeroed T from s.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n zeroed
// elements of type T.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafeFree thread-safely frees a *T previously obtained from s.
func SafeFree[T any](s *SafeArena, p *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Free(s.a, p)
}
