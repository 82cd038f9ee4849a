//go:build unix

package region

import "golang.org/x/sys/unix"

// mapPages reserves an anonymous, private, zero-filled mapping of at least
// n bytes via mmap(2). The kernel rounds n up to a whole number of pages,
// which always exceeds hAlign, so the returned slice's base address is
// suitably aligned for every header placed inside it.
func mapPages(n uintptr) ([]byte, error) {
	return unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// unmapPages releases a mapping previously returned by mapPages.
func unmapPages(mem []byte) error {
	return unix.Munmap(mem)
}
