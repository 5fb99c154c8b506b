package paint

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm, err := NewPixmap(10, 4)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	if pm.Width() != 10 || pm.Height() != 4 || len(pm.Data()) != 160 {
		t.Errorf("got %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
	if !pm.IsTransparent() {
		t.Error("new pixmap is not transparent")
	}
}

func TestNewPixmapInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
		{"too large", 1 << 15, 1 << 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, err := NewPixmap(tt.w, tt.h)
			if !errors.Is(err, ErrAllocation) || pm != nil {
				t.Errorf("NewPixmap(%d, %d) = %v, %v; want nil, ErrAllocation", tt.w, tt.h, pm, err)
			}
		})
	}
}

// TestSetPixelPremultiplies verifies straight colors are stored premultiplied.
func TestSetPixelPremultiplies(t *testing.T) {
	pm := newTestPixmap(t, 4, 4)
	pm.SetPixel(1, 2, RGBA2(1, 0.5, 0, 0.5))

	if got, want := pm.RGBAAt(1, 2), (color.RGBA{R: 128, G: 64, B: 0, A: 128}); got != want {
		t.Errorf("RGBAAt = %v, want %v", got, want)
	}
	r, g, b, a := pm.At(1, 2).RGBA()
	if r != 128*257 || g != 64*257 || b != 0 || a != 128*257 {
		t.Errorf("At().RGBA() = %d %d %d %d", r, g, b, a)
	}
	back := pm.GetPixel(1, 2)
	if !colorNear(back, RGBA2(1, 0.5, 0, 0.5)) {
		t.Errorf("GetPixel = %+v, want about {1 0.5 0 0.5}", back)
	}
}

// TestSetPixelOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestSetPixelOutOfBounds(t *testing.T) {
	pm := newTestPixmap(t, 10, 10)
	pm.Clear(Black)
	before := pm.Clone()

	for _, c := range []struct{ x, y int }{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100}} {
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %v, want Transparent", c.x, c.y, got)
		}
		if got := pm.RGBAAt(c.x, c.y); got != (color.RGBA{}) {
			t.Errorf("RGBAAt(%d, %d) = %v, want zero", c.x, c.y, got)
		}
	}
	if !pm.Equal(before) {
		t.Error("out-of-bounds write modified data")
	}
}

func TestPixmapCloneAndEqual(t *testing.T) {
	pm := newTestPixmap(t, 3, 3)
	pm.Clear(Blue)
	c := pm.Clone()
	if !pm.Equal(c) {
		t.Fatal("clone differs")
	}
	c.SetPixel(0, 0, Red)
	if pm.Equal(c) {
		t.Error("clone shares memory with original")
	}

	other := newTestPixmap(t, 3, 4)
	if pm.Equal(other) {
		t.Error("pixmaps of different size compare equal")
	}
	var nilPm *Pixmap
	if pm.Equal(nil) || !nilPm.Equal(nil) {
		t.Error("nil handling in Equal is wrong")
	}
}

func TestDrawPixmap(t *testing.T) {
	tests := []struct {
		name    string
		dst     RGBA
		src     RGBA
		opacity float64
		want    color.RGBA
	}{
		{"opaque over", White, Red, 1, color.RGBA{255, 0, 0, 255}},
		{"zero opacity", White, Red, 0, color.RGBA{255, 255, 255, 255}},
		{"negative opacity", White, Red, -1, color.RGBA{255, 255, 255, 255}},
		{"half opacity", White, Black, 0.5, color.RGBA{127, 127, 127, 255}},
		{"transparent source", Green, Transparent, 1, color.RGBA{0, 255, 0, 255}},
		{"onto transparent", Transparent, Blue.WithAlpha(0.5), 1, color.RGBA{0, 0, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newTestPixmap(t, 2, 2)
			src := newTestPixmap(t, 2, 2)
			dst.Clear(tt.dst)
			src.Clear(tt.src)
			dst.DrawPixmap(src, tt.opacity)
			if got := dst.RGBAAt(1, 1); got != tt.want {
				t.Errorf("result = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := newTestPixmap(t, 5, 3)
	pm.SetPixel(2, 1, RGBA2(0.2, 0.4, 0.6, 0.8))
	pm.SetPixel(4, 2, Red)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("ToImage bounds = %v", img.Bounds())
	}
	back, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(pm) {
		t.Error("ToImage/FromImage round trip changed pixels")
	}

	// Pixmap is an image.Image itself.
	dst := image.NewRGBA(pm.Bounds())
	draw.Draw(dst, dst.Bounds(), pm, image.Point{}, draw.Src)
	if dst.RGBAAt(2, 1) != pm.RGBAAt(2, 1) {
		t.Error("draw.Draw from Pixmap disagrees with RGBAAt")
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel is not RGBAModel")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	src.SetNRGBA(10, 20, color.NRGBA{255, 0, 0, 128})
	pm, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 4 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", pm.Width(), pm.Height())
	}
	if got := pm.RGBAAt(0, 0); got.A != 128 || got.R != 128 {
		t.Errorf("top-left = %v, want premultiplied half red", got)
	}

	if _, err := FromImage(image.NewRGBA(image.Rectangle{})); !errors.Is(err, ErrAllocation) {
		t.Errorf("empty image error = %v, want ErrAllocation", err)
	}
}

func BenchmarkDrawPixmap(b *testing.B) {
	dst := newTestPixmap(b, 512, 512)
	src := newTestPixmap(b, 512, 512)
	dst.Clear(White)
	src.Clear(Blue.WithAlpha(0.5))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.DrawPixmap(src, 0.75)
	}
}
