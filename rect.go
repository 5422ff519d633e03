package rectpack

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned region inside a single surface.
// The origin is the top-left corner; X grows right and Y grows down.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsValid returns true if the rect has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Area returns Width * Height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the point (x, y) is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects returns true if r and o share any area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Image converts the rect to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// String returns a string representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Handle identifies one allocation: the face that satisfied it and the
// region on that face. It is returned by Find and passed back unchanged
// to Clear. A handle carries no reference into the allocator.
type Handle struct {
	Face int
	Rect Rect
}

// String returns a string representation of the handle.
func (h Handle) String() string {
	return fmt.Sprintf("face %d %v", h.Face, h.Rect)
}
