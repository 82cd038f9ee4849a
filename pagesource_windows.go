//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapPages reserves and commits a zero-filled region of at least n bytes
// via VirtualAlloc. Windows zero-fills freshly committed pages, matching
// the page source contract.
func mapPages(n uintptr) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, n, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

// unmapPages releases a region previously returned by mapPages.
func unmapPages(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&mem[0]))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
