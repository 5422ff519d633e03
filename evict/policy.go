package evict

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/simplelru"

	"github.com/gogpu/rectpack"
	"github.com/gogpu/rectpack/internal/list"
)

// Policy tracks live handles and decides which one to evict next.
type Policy interface {
	// Push records a newly allocated handle.
	Push(h rectpack.Handle)

	// Touch marks h as used. Policies that ignore recency treat it as a no-op.
	Touch(h rectpack.Handle)

	// Victim removes and returns the next handle to evict.
	// Returns false if no handle is tracked.
	Victim() (rectpack.Handle, bool)

	// Remove stops tracking h. Returns false if h was not tracked.
	Remove(h rectpack.Handle) bool

	// Len returns the number of tracked handles.
	Len() int

	// Reset stops tracking every handle.
	Reset()
}

// FIFO evicts handles in allocation order, oldest first.
type FIFO struct {
	queue *list.Ordered[rectpack.Handle]
}

// NewFIFO creates an empty FIFO policy.
func NewFIFO() *FIFO {
	return &FIFO{queue: list.New[rectpack.Handle]()}
}

// Push appends h as the newest handle.
func (f *FIFO) Push(h rectpack.Handle) { f.queue.PushBack(h) }

// Touch does nothing: FIFO order ignores use.
func (f *FIFO) Touch(rectpack.Handle) {}

// Victim removes and returns the oldest handle.
func (f *FIFO) Victim() (rectpack.Handle, bool) { return f.queue.PopFront() }

// Remove stops tracking h.
func (f *FIFO) Remove(h rectpack.Handle) bool { return f.queue.Remove(h) }

// Len returns the number of tracked handles.
func (f *FIFO) Len() int { return f.queue.Len() }

// Reset drops every tracked handle.
func (f *FIFO) Reset() { f.queue.Clear() }

// Handles returns the tracked handles from oldest to newest.
func (f *FIFO) Handles() []rectpack.Handle { return f.queue.Keys() }

// ErrInvalidCapacity is returned by NewLRU for a non-positive capacity.
var ErrInvalidCapacity = errors.New("evict: capacity must be positive")

// LRU evicts the least recently pushed or touched handle first.
//
// The capacity bounds how many handles are tracked. Pushing beyond it
// does not lose handles: the displaced ones are returned first by Victim
// so the caller still clears them.
type LRU struct {
	cache    *lru.LRU
	overflow []rectpack.Handle

	// removing suppresses the eviction callback for explicit removals.
	removing bool
}

// NewLRU creates an LRU policy tracking up to capacity handles.
func NewLRU(capacity int) (*LRU, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	l := &LRU{}
	c, err := lru.NewLRU(capacity, l.onEvict)
	if err != nil {
		return nil, fmt.Errorf("evict: %w", err)
	}
	l.cache = c
	return l, nil
}

func (l *LRU) onEvict(key, _ interface{}) {
	if l.removing {
		return
	}
	l.overflow = append(l.overflow, key.(rectpack.Handle))
}

// Push records h as the most recently used handle.
func (l *LRU) Push(h rectpack.Handle) { l.cache.Add(h, struct{}{}) }

// Touch marks h as most recently used.
func (l *LRU) Touch(h rectpack.Handle) { l.cache.Get(h) }

// Victim removes and returns the least recently used handle.
func (l *LRU) Victim() (rectpack.Handle, bool) {
	if n := len(l.overflow); n > 0 {
		h := l.overflow[0]
		l.overflow = l.overflow[1:]
		return h, true
	}
	l.removing = true
	key, _, ok := l.cache.RemoveOldest()
	l.removing = false
	if !ok {
		return rectpack.Handle{}, false
	}
	return key.(rectpack.Handle), true
}

// Remove stops tracking h.
func (l *LRU) Remove(h rectpack.Handle) bool {
	for i, o := range l.overflow {
		if o == h {
			l.overflow = append(l.overflow[:i], l.overflow[i+1:]...)
			return true
		}
	}
	l.removing = true
	ok := l.cache.Remove(h)
	l.removing = false
	return ok
}

// Reset drops every tracked handle, including displaced ones.
func (l *LRU) Reset() {
	l.removing = true
	l.cache.Purge()
	l.removing = false
	l.overflow = l.overflow[:0]
}

// Len returns the number of tracked handles.
func (l *LRU) Len() int { return l.cache.Len() + len(l.overflow) }
