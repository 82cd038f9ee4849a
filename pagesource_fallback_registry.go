//go:build !unix && !windows

package region

import (
	"runtime"
	"sync"
)

// fallbackPinners tracks the runtime.Pinner for each fallback mapping so
// unmapPages can Unpin it. The allocator itself is single-threaded, but
// Destroy/Reset on one arena and Map on another may race on this shared
// registry, so it is guarded independently.
var fallbackPinners = pinnerRegistry{m: make(map[*byte]*runtime.Pinner)}

type pinnerRegistry struct {
	mu sync.Mutex
	m  map[*byte]*runtime.Pinner
}

func (r *pinnerRegistry) store(key *byte, p *runtime.Pinner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = p
}

func (r *pinnerRegistry) unpin(key *byte) {
	r.mu.Lock()
	p, ok := r.m[key]
	if ok {
		delete(r.m, key)
	}
	r.mu.Unlock()
	if ok {
		p.Unpin()
	}
}
