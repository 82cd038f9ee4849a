package region

import "unsafe"

// sizeClassBoundaries are the fixed size-class boundaries, {2^5 .. 2^20}
// bytes. Bucket i holds freed blocks with recorded size <= boundary i;
// the final bucket holds everything larger than the last boundary.
var sizeClassBoundaries = [...]uintptr{
	1 << 5, 1 << 6, 1 << 7, 1 << 8, 1 << 9, 1 << 10, 1 << 11, 1 << 12,
	1 << 13, 1 << 14, 1 << 15, 1 << 16, 1 << 17, 1 << 18, 1 << 19, 1 << 20,
}

// numBuckets is the 16 size classes plus one bucket for blocks larger than
// every boundary.
const numBuckets = len(sizeClassBoundaries) + 1

// sizeClassIndex returns the smallest i such that size <= boundary[i], or
// numBuckets-1 if size exceeds every boundary.
func sizeClassIndex(size uintptr) int {
	for i, b := range sizeClassBoundaries {
		if size <= b {
			return i
		}
	}
	return numBuckets - 1
}

// freeList is the arena's segregated free-list index: a fixed array of
// singly-linked lists of freed headers, one per size class.
type freeList struct {
	buckets [numBuckets]*header
}

// insert LIFO-inserts h into the bucket for its recorded size.
func (fl *freeList) insert(h *header) {
	idx := sizeClassIndex(h.size)
	h.next = fl.buckets[idx]
	fl.buckets[idx] = h
}

// search scans buckets starting at the class for size through the last
// bucket, first-fit, alignment-aware. A block B with recorded size bs wins
// iff either bs has enough slack for the worst-case alignment shift, or the
// exact post-realignment remainder is still big enough. On a hit the block
// is unlinked (O(1), predecessor tracked while walking) and returned; the
// block is never split. Returns nil if every bucket is exhausted.
func (fl *freeList) search(size, align uintptr) *header {
	start := sizeClassIndex(size)
	for i := start; i < numBuckets; i++ {
		prev := &fl.buckets[i]
		for b := *prev; b != nil; b = b.next {
			bs := b.size
			payload := uintptr(unsafe.Pointer(b)) + sizeOfHeaderSz
			payloadEnd := payload + bs
			sufficient := bs >= size+align-1
			exact := bs >= size && payloadEnd-alignUp(payload, align) >= size
			if sufficient || exact {
				*prev = b.next
				return b
			}
			prev = &b.next
		}
	}
	return nil
}

// reset clears every bucket; Go's zero value does the work the C original
// needs a memset for.
func (fl *freeList) reset() {
	*fl = freeList{}
}
