package region

import (
	"testing"
	"unsafe"
)

// alignedHeaderIn returns an H-aligned address at or after mem[off], for
// tests that plant synthetic headers directly into a plain byte slice
// without going through Arena.Alloc.
func alignedHeaderIn(mem []byte, off int) unsafe.Pointer {
	base := uintptr(unsafe.Pointer(&mem[0]))
	addr := alignUp(base+uintptr(off), hAlign)
	return unsafe.Pointer(addr)
}

func TestChooseFieldSize(t *testing.T) {
	tests := []struct {
		minimum, requested, want uintptr
	}{
		{4096, 100, 4096},
		{4096, 2047, 4096},
		{4096, 2048, 4096},
		{4096, 2049, 8192},
		{4096, 10240, 32768},
	}
	for _, tt := range tests {
		got := chooseFieldSize(tt.minimum, tt.requested)
		if got != tt.want {
			t.Errorf("chooseFieldSize(%d, %d) = %d, want %d", tt.minimum, tt.requested, got, tt.want)
		}
		if tt.requested > got/2 {
			t.Errorf("chooseFieldSize(%d, %d) = %d violates requested <= size/2", tt.minimum, tt.requested, got)
		}
	}
}

func TestNewFieldInvariants(t *testing.T) {
	f := newField(osPageSource{}, 4096, 100)
	if f == nil {
		t.Fatal("newField returned nil")
	}
	defer deleteField(osPageSource{}, f)

	if f.base > f.top || f.top > f.base+f.size {
		t.Errorf("field invariant violated: base=%d top=%d size=%d", f.base, f.top, f.size)
	}
	if f.top != f.base {
		t.Errorf("fresh field top = %d, want == base %d", f.top, f.base)
	}
	if f.size < 100 {
		t.Errorf("field size = %d, want >= 100", f.size)
	}
}

func TestDeleteFieldReleasesMapping(t *testing.T) {
	f := newField(osPageSource{}, 4096, 100)
	if f == nil {
		t.Fatal("newField returned nil")
	}
	if err := deleteField(osPageSource{}, f); err != nil {
		t.Fatalf("deleteField: %v", err)
	}
}
