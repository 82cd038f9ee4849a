// Package region implements a growable arena (region) allocator: bump
// allocation inside a chain of page-mapped fields, individual frees via
// size-classed free-lists, and O(1)-ish bulk reset.
//
// # Overview
//
// An arena allocator hands out sub-allocations from large backing regions
// obtained straight from the operating system. This is particularly
// useful for:
//
//   - Coarse-grained lifetime control with fast bump allocation
//   - Workloads that still need occasional individual block reuse without
//     tearing down the whole arena
//   - Reducing garbage collection pressure by keeping allocations off the
//     Go heap entirely
//
// # Basic Usage
//
//	a := region.New()
//	defer a.Destroy()
//
//	p := a.Alloc(64, 8) // 64 bytes, 8-byte aligned
//	a.Free(p)           // returned to the size-classed free-list
//
//	// Typed convenience layer atop Alloc/Free:
//	ptr := region.Alloc[MyStruct](a)
//	slice := region.AllocSlice[int](a, 100)
//
//	// Reset for reuse, keeping the newest field mapped
//	a.Reset()
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access, use SafeArena:
//
//	s := region.NewSafeArena()
//	defer s.Destroy()
//
//	p := s.Alloc(64, 8)
//	ptr := region.SafeAlloc[MyStruct](s)
//
// # Memory Layout
//
// The arena grows by chaining fields obtained from the host's virtual
// memory (mmap on unix, VirtualAlloc on Windows). Only the newest field
// participates in bump allocation; older fields remain reachable only
// through the free-list. A field's size is the smallest
// MinimumFieldSize*2^k that leaves the requesting allocation at most half
// the field.
//
// # Individual Free
//
// Free(ptr) recovers the block's header by scanning backward from ptr
// through a zero-fill gap until it finds a non-zero byte, then rounds down
// to header alignment. The block is inserted, LIFO, into the free-list
// bucket for its size class. There is no coalescing and no splitting:
// freed blocks are handed back whole on a later Alloc that fits.
//
// # Important Notes
//
//   - Allocated memory is only valid until Free, Reset, or Destroy runs on
//     its arena
//   - Alloc does not zero the returned payload; use Alloc[T]/
//     AllocSliceZeroed for zeroed typed allocations
//   - align must be a power of two and align <= size
//   - Two concurrent Alloc/Free calls on the same Arena are not supported
//
// # Metrics
//
// Metrics returns a snapshot of allocation counters:
//
//	m := a.Metrics()
//	fmt.Printf("in use: %d bytes across %d fields\n", m.MemoryInUse, m.NumFields)
package region
