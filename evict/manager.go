package evict

import (
	"errors"
	"fmt"

	"github.com/gogpu/rectpack"
)

// Allocator is the allocation surface a Manager drives.
// *rectpack.Atlas and *rectpack.Locked satisfy it.
type Allocator interface {
	Find(width, height int) (rectpack.Handle, error)
	Clear(h rectpack.Handle) error
	Reset()
}

// DefaultBatch is the number of handles evicted per miss.
const DefaultBatch = 10

// Options configures a Manager.
type Options struct {
	// Batch is how many handles are evicted after a failed allocation.
	// Values below 1 select DefaultBatch. Default: 10
	Batch int

	// Retry allocates once more after evicting. When false the miss is
	// reported and the freed space is used by the next call. Default: false
	Retry bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{Batch: DefaultBatch}
}

// Stats holds allocation counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Manager composes an Allocator with an eviction Policy.
type Manager struct {
	alloc  Allocator
	policy Policy
	opts   Options
	stats  Stats
}

// NewManager creates a manager. The policy must be empty and the allocator
// should not be used directly while the manager owns its handles.
func NewManager(alloc Allocator, policy Policy, opts Options) *Manager {
	if opts.Batch < 1 {
		opts.Batch = DefaultBatch
	}
	return &Manager{alloc: alloc, policy: policy, opts: opts}
}

// Allocate finds a width x height region and tracks it.
//
// When the allocator is full the Manager counts a miss and evicts up to
// Batch handles chosen by the policy. With Retry set it then tries once
// more; otherwise, or if the retry fails too, rectpack.ErrAllocationFailed
// is returned. Other errors are returned unchanged.
func (m *Manager) Allocate(width, height int) (rectpack.Handle, error) {
	h, err := m.alloc.Find(width, height)
	if err == nil {
		m.track(h)
		return h, nil
	}
	if !errors.Is(err, rectpack.ErrAllocationFailed) {
		return rectpack.Handle{}, err
	}

	m.stats.Misses++
	n, evictErr := m.Evict(m.opts.Batch)
	if evictErr != nil {
		return rectpack.Handle{}, evictErr
	}
	if !m.opts.Retry || n == 0 {
		return rectpack.Handle{}, err
	}

	h, err = m.alloc.Find(width, height)
	if err != nil {
		return rectpack.Handle{}, err
	}
	m.track(h)
	return h, nil
}

func (m *Manager) track(h rectpack.Handle) {
	m.stats.Hits++
	m.policy.Push(h)
}

// Touch reports a use of h to the policy.
func (m *Manager) Touch(h rectpack.Handle) {
	m.policy.Touch(h)
}

// Evict clears up to n victims chosen by the policy and returns how many
// were cleared.
//
// A victim the allocator rejects with rectpack.ErrInvalidHandle holds no
// space and is dropped. On any other Clear error the victim is tracked
// again as the newest handle.
func (m *Manager) Evict(n int) (int, error) {
	evicted := 0
	for evicted < n {
		h, ok := m.policy.Victim()
		if !ok {
			break
		}
		if err := m.alloc.Clear(h); err != nil {
			if !errors.Is(err, rectpack.ErrInvalidHandle) {
				m.policy.Push(h)
			}
			return evicted, fmt.Errorf("evict %v: %w", h, err)
		}
		evicted++
		m.stats.Evictions++
	}
	if evicted > 0 {
		rectpack.Logger().Debug("evict: cleared handles", "count", evicted, "live", m.policy.Len())
	}
	return evicted, nil
}

// Release clears h ahead of eviction.
// Returns an error wrapping rectpack.ErrInvalidHandle if h is not tracked.
func (m *Manager) Release(h rectpack.Handle) error {
	if !m.policy.Remove(h) {
		return fmt.Errorf("release %v: %w", h, rectpack.ErrInvalidHandle)
	}
	return m.alloc.Clear(h)
}

// Reset releases every allocation and stops tracking all handles.
// Stats are kept.
func (m *Manager) Reset() {
	m.alloc.Reset()
	m.policy.Reset()
	rectpack.Logger().Debug("evict: reset")
}

// Live returns the number of tracked handles.
func (m *Manager) Live() int {
	return m.policy.Len()
}

// Stats returns the allocation counters.
func (m *Manager) Stats() Stats {
	return m.stats
}
