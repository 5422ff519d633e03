package rectpack

import (
	"fmt"
	"log/slog"
)

// noNode marks an absent child or parent link.
const noNode int32 = -1

// node is one entry of a Tree arena.
//
// A node covers rect. When it holds (or held) an allocation, used is the
// allocated portion anchored at rect's origin, right covers the leftover
// width strip for the allocated height and bottom covers the leftover height
// strip for the full width. A released node whose residuals are still in
// use keeps used: a request of exactly that size re-occupies the node, and
// a smaller one creates inner, a free child covering used, and splits it.
type node struct {
	rect     Rect
	used     Rect
	occupied bool

	parent int32
	right  int32
	bottom int32
	inner  int32
}

func (n *node) isLeaf() bool {
	return n.right == noNode && n.bottom == noNode && n.inner == noNode
}

func (n *node) isFreeLeaf() bool {
	return !n.occupied && n.isLeaf()
}

// RegionState describes a region reported by Walk.
type RegionState uint8

const (
	// RegionFree is space available to a future allocation.
	RegionFree RegionState = iota

	// RegionOccupied is space held by a live allocation.
	RegionOccupied

	// RegionDormant is released space that the node budget leaves no room
	// to split. Only a request of exactly its size can reuse it.
	RegionDormant
)

// String returns the state name.
func (s RegionState) String() string {
	switch s {
	case RegionOccupied:
		return "occupied"
	case RegionDormant:
		return "dormant"
	default:
		return "free"
	}
}

// Region is a leaf region of a Tree as seen by Walk.
type Region struct {
	Rect  Rect
	State RegionState
}

// Tree manages free and occupied space on one square surface.
//
// Nodes live in an arena addressed by index so that splitting and retiring
// never invalidates other nodes. Retired slots are recycled.
//
// Tree is not safe for concurrent use.
type Tree struct {
	side     int
	maxNodes int

	nodes []node
	free  []int32 // recycled arena slots

	allocCount int
	usedArea   int

	stack []visit // reused traversal stack
}

// visit is a traversal stack entry. When own is set the entry stands for
// the reclaimable used area of a released node that has no inner child.
type visit struct {
	idx int32
	own bool
}

// NewTree creates a tree for a side x side surface holding at most
// maxNodes nodes (the root included).
func NewTree(side, maxNodes int) (*Tree, error) {
	if side < 1 {
		return nil, &ConfigError{Field: "Side", Reason: "must be positive"}
	}
	if maxNodes < 1 {
		return nil, &ConfigError{Field: "MaxNodes", Reason: "must be at least 1"}
	}
	t := &Tree{
		side:     side,
		maxNodes: maxNodes,
		nodes:    make([]node, 0, min(maxNodes, 64)),
		stack:    make([]visit, 0, 32),
	}
	t.Reset()
	return t, nil
}

// Reset releases every allocation, leaving a single free root.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0] // Keep capacity
	t.free = t.free[:0]
	t.nodes = append(t.nodes, node{
		rect:   Rect{Width: t.side, Height: t.side},
		parent: noNode,
		right:  noNode,
		bottom: noNode,
		inner:  noNode,
	})
	t.allocCount = 0
	t.usedArea = 0
}

// Allocate finds space for a w x h rectangle.
// Returns the allocated rect and true, or a zero Rect and false if no free
// region fits (or the size is out of range).
//
// The search is first-fit in pre-order: a node's right residual subtree is
// visited before its bottom residual subtree, then any reclaimed area.
// Subtrees smaller than the request are skipped.
func (t *Tree) Allocate(w, h int) (Rect, bool) {
	if w < 1 || h < 1 || w > t.side || h > t.side {
		return Rect{}, false
	}

	refused := 0
	t.stack = append(t.stack[:0], visit{idx: 0})
	for len(t.stack) > 0 {
		v := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		n := &t.nodes[v.idx]

		if v.own {
			if n.used.Width < w || n.used.Height < h {
				continue
			}
			if n.used.Width == w && n.used.Height == h {
				n.occupied = true
				t.allocCount++
				t.usedArea += n.used.Area()
				return n.used, true
			}
			// inner child plus the split inside it
			if t.NodeCount()+1+residualCount(n.used, w, h) > t.maxNodes {
				refused++
				continue
			}
			in := t.newNode(n.used, v.idx)
			t.nodes[v.idx].inner = in
			return t.place(in, w, h), true
		}

		if n.rect.Width < w || n.rect.Height < h {
			continue
		}

		if n.isFreeLeaf() {
			if t.NodeCount()+residualCount(n.rect, w, h) > t.maxNodes {
				refused++
				continue
			}
			return t.place(v.idx, w, h), true
		}

		// Push in reverse so that right is visited first.
		if !n.occupied && n.inner == noNode && !n.isLeaf() {
			t.stack = append(t.stack, visit{idx: v.idx, own: true})
		}
		if n.inner != noNode {
			t.stack = append(t.stack, visit{idx: n.inner})
		}
		if n.bottom != noNode {
			t.stack = append(t.stack, visit{idx: n.bottom})
		}
		if n.right != noNode {
			t.stack = append(t.stack, visit{idx: n.right})
		}
	}

	if refused > 0 {
		Logger().Debug("rectpack: node budget refused fitting regions",
			"side", t.side, "max_nodes", t.maxNodes, "refused", refused,
			"width", w, "height", h)
	}
	return Rect{}, false
}

// residualCount returns how many residual nodes splitting r for w x h creates.
func residualCount(r Rect, w, h int) int {
	n := 0
	if r.Width > w {
		n++
	}
	if r.Height > h {
		n++
	}
	return n
}

// place marks the free leaf idx occupied by a w x h rect at its origin and
// creates the right and bottom residuals.
func (t *Tree) place(idx int32, w, h int) Rect {
	r := t.nodes[idx].rect
	used := Rect{X: r.X, Y: r.Y, Width: w, Height: h}

	if r.Width > w {
		right := t.newNode(Rect{X: r.X + w, Y: r.Y, Width: r.Width - w, Height: h}, idx)
		t.nodes[idx].right = right
	}
	if r.Height > h {
		bottom := t.newNode(Rect{X: r.X, Y: r.Y + h, Width: r.Width, Height: r.Height - h}, idx)
		t.nodes[idx].bottom = bottom
	}

	n := &t.nodes[idx]
	n.used = used
	n.occupied = true

	t.allocCount++
	t.usedArea += used.Area()
	return used
}

// Release frees a rect previously returned by Allocate.
// Returns an error wrapping ErrInvalidHandle if no occupied region equals r.
//
// Free neighbours are not merged. A node's split is undone only once the
// node and all its residuals are free; that retirement then continues up
// through free ancestors.
func (t *Tree) Release(r Rect) error {
	idx := t.lookup(r)
	if idx == noNode {
		return fmt.Errorf("release %v: %w", r, ErrInvalidHandle)
	}

	n := &t.nodes[idx]
	n.occupied = false
	t.allocCount--
	t.usedArea -= r.Area()

	t.retire(idx)
	return nil
}

// lookup returns the occupied node whose allocation equals r, or noNode.
func (t *Tree) lookup(r Rect) int32 {
	if !r.IsValid() || r.X < 0 || r.Y < 0 || r.Right() > t.side || r.Bottom() > t.side {
		return noNode
	}

	idx := int32(0)
	for idx != noNode {
		n := &t.nodes[idx]
		if n.occupied && n.used == r {
			return idx
		}
		next := noNode
		// Children cover disjoint areas, at most one can contain r.
		for _, c := range [...]int32{n.right, n.bottom, n.inner} {
			if c != noNode && t.nodes[c].rect.ContainsRect(r) {
				next = c
				break
			}
		}
		idx = next
	}
	return noNode
}

// retire collapses idx and then each free ancestor whose children are all
// free leaves back into a single free leaf.
func (t *Tree) retire(idx int32) {
	for idx != noNode {
		n := &t.nodes[idx]
		if n.occupied || !t.childrenIdle(idx) {
			return
		}
		if !n.isLeaf() {
			Logger().Debug("rectpack: retiring split", "rect", n.rect)
		}
		for _, c := range [...]int32{n.right, n.bottom, n.inner} {
			if c != noNode {
				t.freeNode(c)
			}
		}
		n = &t.nodes[idx]
		n.right, n.bottom, n.inner = noNode, noNode, noNode
		n.used = Rect{}
		idx = n.parent
	}
}

// childrenIdle reports whether every child of idx is a free leaf.
// A free node with children always has an occupied descendant, so this
// is equivalent to the whole subtree being free.
func (t *Tree) childrenIdle(idx int32) bool {
	n := &t.nodes[idx]
	for _, c := range [...]int32{n.right, n.bottom, n.inner} {
		if c != noNode && !t.nodes[c].isFreeLeaf() {
			return false
		}
	}
	return true
}

func (t *Tree) newNode(r Rect, parent int32) int32 {
	nd := node{
		rect:   r,
		parent: parent,
		right:  noNode,
		bottom: noNode,
		inner:  noNode,
	}
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[idx] = nd
		return idx
	}
	t.nodes = append(t.nodes, nd)
	return int32(len(t.nodes) - 1)
}

func (t *Tree) freeNode(idx int32) {
	t.nodes[idx] = node{parent: noNode, right: noNode, bottom: noNode, inner: noNode}
	t.free = append(t.free, idx)
}

// Walk calls fn for every leaf region in traversal order until fn returns
// false. Occupied, free and dormant regions together tile the surface.
func (t *Tree) Walk(fn func(Region) bool) {
	stack := []int32{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[idx]

		switch {
		case n.occupied:
			if !fn(Region{Rect: n.used, State: RegionOccupied}) {
				return
			}
		case n.isLeaf():
			if !fn(Region{Rect: n.rect, State: RegionFree}) {
				return
			}
		case n.inner == noNode:
			// released, area not yet reclaimed
			if !fn(Region{Rect: n.used, State: t.releasedState()}) {
				return
			}
		}

		if n.inner != noNode {
			stack = append(stack, n.inner)
		}
		if n.bottom != noNode {
			stack = append(stack, n.bottom)
		}
		if n.right != noNode {
			stack = append(stack, n.right)
		}
	}
}

// releasedState classifies the used area of a released split node. Reusing
// it for a smaller request takes an inner node and at least one residual.
func (t *Tree) releasedState() RegionState {
	if t.NodeCount()+2 > t.maxNodes {
		return RegionDormant
	}
	return RegionFree
}

// Side returns the surface width and height.
func (t *Tree) Side() int {
	return t.side
}

// MaxNodes returns the node budget.
func (t *Tree) MaxNodes() int {
	return t.maxNodes
}

// NodeCount returns the number of live nodes, the root included.
func (t *Tree) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// Allocations returns the number of live allocations.
func (t *Tree) Allocations() int {
	return t.allocCount
}

// UsedArea returns the total area of live allocations.
func (t *Tree) UsedArea() int {
	return t.usedArea
}

// TotalArea returns the surface area.
func (t *Tree) TotalArea() int {
	return t.side * t.side
}

// Utilization returns the fraction of the surface in use (0.0 to 1.0).
func (t *Tree) Utilization() float64 {
	return float64(t.usedArea) / float64(t.TotalArea())
}

// LogValue implements slog.LogValuer.
func (t *Tree) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("side", t.side),
		slog.Int("nodes", t.NodeCount()),
		slog.Int("allocations", t.allocCount),
	)
}
