package cubemap

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rectpack"
)

// Faces is the number of faces of a cube texture.
const Faces = 6

var (
	// ErrUnsupportedFormat is returned for formats without a fixed
	// per-pixel size.
	ErrUnsupportedFormat = errors.New("cubemap: unsupported texture format")

	// ErrOutOfBounds is returned when a handle lies outside the texture.
	ErrOutOfBounds = errors.New("cubemap: region outside texture")
)

// Layout describes a cube texture whose faces are managed by a rectpack
// atlas with the same side.
type Layout struct {
	Side   int
	Format gputypes.TextureFormat
}

// Extent returns the texture size with one array layer per face.
func (l Layout) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(l.Side),
		Height:             uint32(l.Side),
		DepthOrArrayLayers: Faces,
	}
}

// BytesPerPixel returns the texel size of the layout's format.
func (l Layout) BytesPerPixel() (int, error) {
	switch l.Format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4, nil
	case gputypes.TextureFormatR8Unorm:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, l.Format)
}

// UploadTarget is where the pixels for one allocation go.
type UploadTarget struct {
	// Origin is the region's top-left texel; Z is the face.
	Origin gputypes.Origin3D

	// Size is the region extent, one layer deep.
	Size gputypes.Extent3D

	// Layout describes tightly packed source rows.
	Layout gputypes.TextureDataLayout
}

// Bytes returns the size of the source data for the upload.
func (u UploadTarget) Bytes() int {
	return int(u.Layout.BytesPerRow) * int(u.Layout.RowsPerImage)
}

// Target returns the upload target for h.
func (l Layout) Target(h rectpack.Handle) (UploadTarget, error) {
	bpp, err := l.BytesPerPixel()
	if err != nil {
		return UploadTarget{}, err
	}
	r := h.Rect
	if h.Face < 0 || h.Face >= Faces || !r.IsValid() ||
		r.X < 0 || r.Y < 0 || r.Right() > l.Side || r.Bottom() > l.Side {
		return UploadTarget{}, fmt.Errorf("%w: %v", ErrOutOfBounds, h)
	}

	return UploadTarget{
		Origin: gputypes.Origin3D{
			X: uint32(r.X),
			Y: uint32(r.Y),
			Z: uint32(h.Face),
		},
		Size: gputypes.Extent3D{
			Width:              uint32(r.Width),
			Height:             uint32(r.Height),
			DepthOrArrayLayers: 1,
		},
		Layout: gputypes.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(r.Width * bpp),
			RowsPerImage: uint32(r.Height),
		},
	}, nil
}
