package region

import "unsafe"

// header is the record placed at the very beginning of every allocation,
// live or freed. While live, only size is meaningful. While on a free-list,
// next links to the following block in the same bucket.
//
// size must be the first field: it must land on the header's own natural
// alignment (hAlign) so that headerStart's backward byte scan can always
// alignDown onto the header's true address, regardless of which byte of
// the encoded size value happens to be non-zero.
type header struct {
	size uintptr
	next *header
}

// hAlign is the natural alignment of header, called H-align in the spec.
// sizeOfHeaderSz must equal hAlign for the header-recovery scan in
// headerStart to be correct: every byte of the encoded size field then
// rounds down to the same address under alignDown, so it does not matter
// which individual byte the backward scan happens to land on.
const (
	hAlign          = unsafe.Alignof(header{})
	sizeOfHeader    = unsafe.Sizeof(header{})
	sizeOfHeaderSz  = unsafe.Sizeof(uintptr(0))
	minPayloadBytes = sizeOfHeader - sizeOfHeaderSz
)

func init() {
	if sizeOfHeaderSz != hAlign {
		panic("region: platform header alignment invariant violated")
	}
}

// headerStart recovers the header of the block whose payload pointer is
// ptr, by scanning backward through the zero-fill gap until it finds the
// first non-zero byte, then rounding down to header alignment. See
// SPEC_FULL.md §4.6 / §3 for why this is always correct for allocator-
// issued pointers.
func headerStart(ptr uintptr) *header {
	p := ptr
	for {
		p--
		b := *(*byte)(unsafe.Pointer(p))
		if b != 0 {
			break
		}
	}
	return (*header)(unsafe.Pointer(alignDown(p, hAlign)))
}

// zeroRange zeroes the byte range [lo, hi) of raw memory.
func zeroRange(lo, hi uintptr) {
	if hi <= lo {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(lo)), hi-lo)
	clear(b)
}
