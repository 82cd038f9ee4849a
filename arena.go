// Package region implements a growable bump allocator (memory arena) with
// size-classed free-lists for individual frees.
//
// Typical usage: create one arena, bump-allocate many blocks from it, and
// either Free individual blocks back into the size-classed free-lists for
// reuse, or Reset the whole arena in one O(1)-ish call when every live
// allocation can be discarded at once.
package region

import "unsafe"

// DefaultMinimumFieldSize is the floor for newly mapped fields (256 MiB),
// matching the spec's default.
const DefaultMinimumFieldSize = 256 << 20

// Arena is a growable, size-classed bump allocator. It owns a LIFO chain
// of page-mapped fields and a segregated free-list index. Not
// goroutine-safe; use SafeArena for concurrent access, or confine one
// Arena to one goroutine.
type Arena struct {
	head             *field
	MinimumFieldSize uintptr
	buckets          freeList
	pages            pageSource
	counters         counters

	// Logger, if non-nil, receives diagnostics for conditions the public
	// API can only signal as a nil return (e.g. a page-source failure).
	// The zero value is silent operation.
	Logger Logger
}

// New creates an empty Arena: no fields are mapped until the first Alloc
// that cannot be served from the free-list.
func New() *Arena {
	return &Arena{
		MinimumFieldSize: DefaultMinimumFieldSize,
		pages:            osPageSource{},
	}
}

// Alloc returns a pointer to size bytes aligned to align, or nil.
//
// align must be a positive power of two and align <= size; any other
// combination, or a malformed arena (MinimumFieldSize == 0), returns nil
// without changing any state. A field-push failure also returns nil but
// leaves the arena and every previously returned pointer valid — this
// module resolves spec.md §9's open question in favor of the safer policy
// rather than the original's "destroy the arena" behavior.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if a == nil || a.MinimumFieldSize == 0 {
		return nil
	}
	if size < 1 {
		return nil
	}
	if !isPowerOfTwo(align) || align > size {
		return nil
	}

	if b := a.buckets.search(size, align); b != nil {
		raw := uintptr(unsafe.Pointer(b)) + sizeOfHeaderSz
		aligned := alignUp(raw, align)
		zeroRange(raw, aligned)
		a.counters.onAlloc(size, b.size)
		return unsafe.Pointer(aligned)
	}

	return a.allocSlow(size, align)
}

// allocSlow bump-allocates from the head field, pushing new fields as
// needed, per SPEC_FULL.md §4.3.
func (a *Arena) allocSlow(size, align uintptr) unsafe.Pointer {
	requested := size
	if size < minPayloadBytes {
		size = minPayloadBytes
	}

	if a.head == nil {
		if !a.pushField(size) {
			return nil
		}
	}

	for {
		f := a.head
		effAlign := align
		if hAlign > effAlign {
			effAlign = hAlign
		}
		raw := f.top + sizeOfHeaderSz
		aligned := alignUp(raw, effAlign)
		newTop := alignUp(aligned+size, hAlign)

		if newTop <= f.base+f.size {
			zeroRange(f.top, aligned)
			hdr := (*header)(unsafe.Pointer(f.top))
			hdr.size = newTop - raw
			f.top = newTop
			a.counters.onAlloc(requested, hdr.size)
			return unsafe.Pointer(aligned)
		}

		if !a.pushField(size) {
			return nil
		}
	}
}

// pushField maps a new field sized for requested and pushes it onto the
// head of the field chain. Reports success.
func (a *Arena) pushField(requested uintptr) bool {
	f := newField(a.pages, a.MinimumFieldSize, requested)
	if f == nil {
		a.logf("region: failed to map a new field for a %d-byte request", requested)
		return false
	}
	f.next = a.head
	a.head = f
	return true
}

// Free returns the block at ptr to the arena's free-list index. ptr must
// be a payload pointer previously returned by Alloc on this arena, not
// already freed, and the arena must not have been Reset or Destroyed in
// between — violating this is undefined behavior (see SPEC_FULL.md §7).
//
// A nil arena or nil ptr is a no-op.
func (a *Arena) Free(ptr unsafe.Pointer) {
	if a == nil || ptr == nil {
		return
	}
	h := headerStart(uintptr(ptr))
	a.counters.onFree(h.size)
	a.buckets.insert(h)
}

// Reset retains the newest field, releases every other field back to the
// page source, rewinds the retained field's bump cursor to its base, and
// clears every free-list bucket. MinimumFieldSize is preserved.
func (a *Arena) Reset() {
	if a.head == nil {
		return
	}
	for f := a.head.next; f != nil; {
		next := f.next
		if err := deleteField(a.pages, f); err != nil {
			a.logf("region: reset: failed to unmap a field: %v", err)
		}
		f = next
	}
	a.head.top = a.head.base
	a.head.next = nil
	a.buckets.reset()
	a.counters.reset()
}

// Destroy releases every field back to the page source and clears the
// arena. Using the arena afterward is undefined behavior, matching
// Free/Reset's own contract.
func (a *Arena) Destroy() {
	for f := a.head; f != nil; {
		next := f.next
		if err := deleteField(a.pages, f); err != nil {
			a.logf("region: destroy: failed to unmap a field: %v", err)
		}
		f = next
	}
	a.head = nil
	a.buckets.reset()
	a.counters.reset()
}

func (a *Arena) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}
