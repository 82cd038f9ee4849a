package region

import "github.com/pkg/errors"

// pageSource requests and releases page-aligned, zero-initialized memory
// from the host. It is satisfied by real OS virtual memory on every GOOS
// this module has a platform file for (pagesource_unix.go,
// pagesource_windows.go), and by a pinned Go-heap fallback everywhere
// else (pagesource_fallback.go).
type pageSource interface {
	// Map returns a zero-filled region of at least n bytes, or an error.
	Map(n uintptr) ([]byte, error)
	// Unmap releases a region previously returned by Map.
	Unmap(mem []byte) error
}

// osPageSource is the default pageSource, backed by mapPages/unmapPages
// (platform-specific).
type osPageSource struct{}

func (osPageSource) Map(n uintptr) ([]byte, error) {
	mem, err := mapPages(n)
	if err != nil {
		return nil, errors.Wrap(err, "region: map pages")
	}
	return mem, nil
}

func (osPageSource) Unmap(mem []byte) error {
	if err := unmapPages(mem); err != nil {
		return errors.Wrap(err, "region: unmap pages")
	}
	return nil
}
