// Package evict provides caller-side eviction for a rectpack allocator.
//
// The allocator itself never frees anything; it only reports
// rectpack.ErrAllocationFailed. A [Manager] pairs an allocator with a
// [Policy] that remembers live handles and picks victims when space runs
// out, so the allocator can be reused with FIFO, LRU or custom strategies
// without modification.
//
//	atlas, _ := rectpack.New(rectpack.DefaultConfig())
//	m := evict.NewManager(atlas, evict.NewFIFO(), evict.DefaultOptions())
//
//	h, err := m.Allocate(w, h)
//	if errors.Is(err, rectpack.ErrAllocationFailed) {
//	    // the oldest handles were evicted; try again next frame
//	}
//
// Neither the policies nor the Manager are safe for concurrent use.
package evict
