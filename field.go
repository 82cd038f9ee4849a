package region

import "unsafe"

// field is one contiguous backing region obtained from the page source. The
// chain of fields forms a LIFO stack; only the head field participates in
// bump allocation.
type field struct {
	mem  []byte // raw backing payload, owns the mapping
	base uintptr
	size uintptr // usable payload capacity
	top  uintptr // bump cursor; base <= top <= base+size
	next *field
}

// chooseFieldSize rounds requested up to the smallest size of the form
// minimumFieldSize * 2^k (k >= 0) such that requested <= size/2.
func chooseFieldSize(minimumFieldSize, requested uintptr) uintptr {
	size := minimumFieldSize
	for requested > size/2 {
		size *= 2
	}
	return size
}

// newField maps a field able to satisfy an allocation of at least
// requested bytes, sized per chooseFieldSize. Returns nil on page-source
// failure.
func newField(pages pageSource, minimumFieldSize, requested uintptr) *field {
	size := chooseFieldSize(minimumFieldSize, requested)
	mem, err := pages.Map(size)
	if err != nil {
		return nil
	}
	base := uintptr(unsafe.Pointer(&mem[0]))
	return &field{
		mem:  mem,
		base: base,
		size: uintptr(len(mem)),
		top:  base,
	}
}

// deleteField returns a field's mapping to the page source.
func deleteField(pages pageSource, f *field) error {
	return pages.Unmap(f.mem)
}
