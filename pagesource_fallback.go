//go:build !unix && !windows

package region

import "runtime"

// mapPages falls back to an ordinary Go allocation on GOOS targets without
// an x/sys mmap-equivalent wired in (see pagesource_unix.go,
// pagesource_windows.go). The slice is pinned so the raw uintptr
// arithmetic the arena performs on it (header placement, header recovery)
// stays valid for as long as fallbackPinners holds a pinner for it; make
// already zero-fills the backing array.
func mapPages(n uintptr) ([]byte, error) {
	mem := make([]byte, n)
	var pinner runtime.Pinner
	pinner.Pin(&mem[0])
	fallbackPinners.store(&mem[0], &pinner)
	return mem, nil
}

// unmapPages unpins and drops the reference to a region returned by
// mapPages, letting the Go GC reclaim it.
func unmapPages(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	fallbackPinners.unpin(&mem[0])
	return nil
}
