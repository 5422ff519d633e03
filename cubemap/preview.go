package cubemap

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/rectpack"
)

// snapshotGap is the spacing between faces in a snapshot strip.
const snapshotGap = 2

// Preview is a CPU-side copy of every face, used to visualize which
// regions are allocated.
type Preview struct {
	side       int
	faces      []*image.RGBA
	background *image.Uniform
}

// NewPreview creates faces side x side images filled with background.
func NewPreview(faces, side int, background color.Color) *Preview {
	p := &Preview{
		side:       side,
		faces:      make([]*image.RGBA, faces),
		background: image.NewUniform(background),
	}
	for i := range p.faces {
		img := image.NewRGBA(image.Rect(0, 0, side, side))
		draw.Draw(img, img.Bounds(), p.background, image.Point{}, draw.Src)
		p.faces[i] = img
	}
	return p
}

// Fill paints the region of h with c.
func (p *Preview) Fill(h rectpack.Handle, c color.Color) error {
	face, err := p.face(h)
	if err != nil {
		return err
	}
	draw.Draw(face, h.Rect.Image(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Erase paints the region of h with the background color.
func (p *Preview) Erase(h rectpack.Handle) error {
	face, err := p.face(h)
	if err != nil {
		return err
	}
	draw.Draw(face, h.Rect.Image(), p.background, image.Point{}, draw.Src)
	return nil
}

func (p *Preview) face(h rectpack.Handle) (*image.RGBA, error) {
	if h.Face < 0 || h.Face >= len(p.faces) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, h)
	}
	img := p.faces[h.Face]
	if !h.Rect.Image().In(img.Bounds()) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, h)
	}
	return img, nil
}

// Face returns face i, or nil for an out of range index.
func (p *Preview) Face(i int) *image.RGBA {
	if i < 0 || i >= len(p.faces) {
		return nil
	}
	return p.faces[i]
}

// Faces returns the number of faces.
func (p *Preview) Faces() int {
	return len(p.faces)
}

// Snapshot lays the faces out left to right, each scaled to
// faceSide x faceSide with nearest-neighbor sampling.
func (p *Preview) Snapshot(faceSide int) *image.RGBA {
	if faceSide < 1 {
		faceSide = p.side
	}
	n := len(p.faces)
	width := n*faceSide + (n-1)*snapshotGap
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), faceSide))

	for i, face := range p.faces {
		x := i * (faceSide + snapshotGap)
		dr := image.Rect(x, 0, x+faceSide, faceSide)
		draw.NearestNeighbor.Scale(dst, dr, face, face.Bounds(), draw.Src, nil)
	}
	return dst
}
