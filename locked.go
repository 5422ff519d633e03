package rectpack

import "sync"

// Locked wraps an Atlas with a single mutex held for the whole of each call.
// Allocation and release both rewrite several tree nodes, so finer grained
// locking is not offered.
type Locked struct {
	mu    sync.Mutex
	atlas *Atlas
}

// NewLocked returns a Locked guarding a. The caller must not use a directly
// afterwards.
func NewLocked(a *Atlas) *Locked {
	return &Locked{atlas: a}
}

// Find is Atlas.Find under the lock.
func (l *Locked) Find(width, height int) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.atlas.Find(width, height)
}

// Clear is Atlas.Clear under the lock.
func (l *Locked) Clear(h Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.atlas.Clear(h)
}

// Reset is Atlas.Reset under the lock.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.atlas.Reset()
}

// Allocations is Atlas.Allocations under the lock.
func (l *Locked) Allocations() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.atlas.Allocations()
}

// Utilization is Atlas.Utilization under the lock.
func (l *Locked) Utilization() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.atlas.Utilization()
}
