package cubemap

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rectpack"
)

func TestLayout_Extent(t *testing.T) {
	l := Layout{Side: 2048, Format: gputypes.TextureFormatBGRA8Unorm}
	e := l.Extent()
	if e.Width != 2048 || e.Height != 2048 || e.DepthOrArrayLayers != 6 {
		t.Errorf("Extent() = %+v", e)
	}
}

func TestLayout_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format  gputypes.TextureFormat
		want    int
		wantErr bool
	}{
		{gputypes.TextureFormatBGRA8Unorm, 4, false},
		{gputypes.TextureFormatRGBA8Unorm, 4, false},
		{gputypes.TextureFormatR8Unorm, 1, false},
		{gputypes.TextureFormatDepth24PlusStencil8, 0, true},
	}
	for _, tt := range tests {
		got, err := Layout{Side: 16, Format: tt.format}.BytesPerPixel()
		if (err != nil) != tt.wantErr {
			t.Errorf("BytesPerPixel(%v) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("BytesPerPixel(%v) error = %v, want ErrUnsupportedFormat", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("BytesPerPixel(%v) = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestLayout_Target(t *testing.T) {
	l := Layout{Side: 256, Format: gputypes.TextureFormatBGRA8Unorm}
	h := rectpack.Handle{Face: 4, Rect: rectpack.Rect{X: 10, Y: 20, Width: 30, Height: 40}}

	target, err := l.Target(h)
	if err != nil {
		t.Fatalf("Target() = %v", err)
	}
	if target.Origin != (gputypes.Origin3D{X: 10, Y: 20, Z: 4}) {
		t.Errorf("Origin = %+v", target.Origin)
	}
	if target.Size != (gputypes.Extent3D{Width: 30, Height: 40, DepthOrArrayLayers: 1}) {
		t.Errorf("Size = %+v", target.Size)
	}
	if target.Layout.BytesPerRow != 120 || target.Layout.RowsPerImage != 40 {
		t.Errorf("Layout = %+v", target.Layout)
	}
	if target.Bytes() != 30*40*4 {
		t.Errorf("Bytes() = %d, want %d", target.Bytes(), 30*40*4)
	}
}

func TestLayout_TargetOutOfBounds(t *testing.T) {
	l := Layout{Side: 64, Format: gputypes.TextureFormatRGBA8Unorm}
	bad := []rectpack.Handle{
		{Face: 6, Rect: rectpack.Rect{Width: 1, Height: 1}},
		{Face: -1, Rect: rectpack.Rect{Width: 1, Height: 1}},
		{Face: 0, Rect: rectpack.Rect{X: 60, Width: 8, Height: 1}},
		{Face: 0, Rect: rectpack.Rect{Y: 64, Width: 1, Height: 1}},
		{Face: 0, Rect: rectpack.Rect{Width: 0, Height: 1}},
	}
	for _, h := range bad {
		if _, err := l.Target(h); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Target(%v) = %v, want ErrOutOfBounds", h, err)
		}
	}
}

func TestLayout_TargetMatchesAtlas(t *testing.T) {
	a, err := rectpack.New(rectpack.Config{Faces: Faces, Side: 128, MaxNodes: 64})
	if err != nil {
		t.Fatal(err)
	}
	l := Layout{Side: a.Side(), Format: gputypes.TextureFormatBGRA8Unorm}
	for range 20 {
		h, err := a.Find(100, 100)
		if errors.Is(err, rectpack.ErrAllocationFailed) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if _, err := l.Target(h); err != nil {
			t.Errorf("Target(%v) = %v", h, err)
		}
	}
}
