package rectpack

import (
	"fmt"
	"strconv"
)

// Atlas allocates rectangular regions across a fixed set of equally sized
// faces, one Tree per face. Faces are independent: an allocation on one
// never affects another.
//
// Atlas never evicts. When Find returns ErrAllocationFailed the caller
// releases some of its handles with Clear and may retry.
//
// Atlas is not safe for concurrent use; see Locked.
type Atlas struct {
	trees []*Tree
	side  int
	order FaceOrder

	// next is the first face tried by OrderRoundRobin.
	next int
}

// New creates an atlas from cfg. A zero MaxNodes selects DefaultMaxNodes.
func New(cfg Config) (*Atlas, error) {
	if cfg.MaxNodes == 0 {
		cfg.MaxNodes = DefaultMaxNodes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Atlas{
		trees: make([]*Tree, cfg.Faces),
		side:  cfg.Side,
		order: cfg.Order,
	}
	for i := range a.trees {
		t, err := NewTree(cfg.Side, cfg.MaxNodes)
		if err != nil {
			return nil, err
		}
		a.trees[i] = t
	}
	return a, nil
}

// Find allocates a width x height region on the first face that can hold it.
//
// Returns ErrAllocationFailed if every face is too full or fragmented, and a
// *ConfigError if either dimension is not in 1..Side. Nothing is allocated
// when an error is returned.
func (a *Atlas) Find(width, height int) (Handle, error) {
	if err := a.checkSize(width, height); err != nil {
		return Handle{}, err
	}

	faces := len(a.trees)
	start := 0
	if a.order == OrderRoundRobin {
		start = a.next
	}
	for i := range faces {
		face := (start + i) % faces
		r, ok := a.trees[face].Allocate(width, height)
		if !ok {
			continue
		}
		a.next = (face + 1) % faces
		return Handle{Face: face, Rect: r}, nil
	}

	Logger().Debug("rectpack: allocation failed",
		"width", width, "height", height, "utilization", a.Utilization())
	return Handle{}, ErrAllocationFailed
}

func (a *Atlas) checkSize(width, height int) error {
	if width < 1 {
		return &ConfigError{Field: "width", Reason: "must be positive, got " + strconv.Itoa(width)}
	}
	if height < 1 {
		return &ConfigError{Field: "height", Reason: "must be positive, got " + strconv.Itoa(height)}
	}
	if width > a.side {
		return &ConfigError{Field: "width", Reason: "exceeds face side " + strconv.Itoa(a.side)}
	}
	if height > a.side {
		return &ConfigError{Field: "height", Reason: "exceeds face side " + strconv.Itoa(a.side)}
	}
	return nil
}

// Clear releases the region described by h.
//
// Returns an error wrapping ErrInvalidHandle if h does not name a currently
// occupied region, which includes clearing the same handle twice.
func (a *Atlas) Clear(h Handle) error {
	if h.Face < 0 || h.Face >= len(a.trees) {
		Logger().Warn("rectpack: clear with unknown face", "face", h.Face, "rect", h.Rect)
		return fmt.Errorf("clear face %d: %w", h.Face, ErrInvalidHandle)
	}
	if err := a.trees[h.Face].Release(h.Rect); err != nil {
		Logger().Warn("rectpack: clear of unoccupied region",
			"face", h.Face, "rect", h.Rect, "tree", a.trees[h.Face])
		return fmt.Errorf("clear face %d: %w", h.Face, err)
	}
	return nil
}

// Reset releases every allocation on every face.
func (a *Atlas) Reset() {
	for _, t := range a.trees {
		t.Reset()
	}
	a.next = 0
}

// Faces returns the number of faces.
func (a *Atlas) Faces() int {
	return len(a.trees)
}

// Side returns the face width and height.
func (a *Atlas) Side() int {
	return a.side
}

// Order returns the face search order.
func (a *Atlas) Order() FaceOrder {
	return a.order
}

// Allocations returns the number of live allocations across all faces.
func (a *Atlas) Allocations() int {
	n := 0
	for _, t := range a.trees {
		n += t.Allocations()
	}
	return n
}

// Utilization returns the fraction of the total face area in use.
func (a *Atlas) Utilization() float64 {
	used := 0
	for _, t := range a.trees {
		used += t.UsedArea()
	}
	return float64(used) / float64(len(a.trees)*a.side*a.side)
}

// FaceUtilization returns the fraction of face i in use.
// It returns 0 for an out of range index.
func (a *Atlas) FaceUtilization(i int) float64 {
	if i < 0 || i >= len(a.trees) {
		return 0
	}
	return a.trees[i].Utilization()
}

// Walk calls fn for every leaf region of face i; see Tree.Walk.
func (a *Atlas) Walk(face int, fn func(Region) bool) {
	if face < 0 || face >= len(a.trees) {
		return
	}
	a.trees[face].Walk(fn)
}
