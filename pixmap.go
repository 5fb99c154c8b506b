package paint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/paint/internal/blend"
)

// maxPixmapPixels bounds surface allocations. Larger requests fail with
// ErrAllocation instead of exhausting memory.
const maxPixmapPixels = 1 << 28

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, row-major with
// a stride of 4*width, origin at the top-left. This is the layout of
// image.RGBA, so a Pixmap converts to the standard library without any
// channel math.
//
// Pixmap is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
// It returns ErrAllocation for zero, negative or oversized dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocation, width, height)
	}
	if int64(width)*int64(height) > maxPixmapPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, maxPixmapPixels)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Equal reports whether two pixmaps have the same size and identical bytes.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != q.data[i] {
			return false
		}
	}
	return true
}

// row returns the byte span for pixels [x0, x1) of row y.
func (p *Pixmap) row(y, x0, x1 int) []uint8 {
	o := y*p.width*4 + x0*4
	return p.data[o : o+(x1-x0)*4]
}

// SetPixel stores a straight-alpha color at (x, y), replacing its content.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	px := c.premultiplied()
	i := (y*p.width + x) * 4
	p.data[i+0] = px.R
	p.data[i+1] = px.G
	p.data[i+2] = px.B
	p.data[i+3] = px.A
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := p.data[i+3]
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return RGBA{
		R: float64(p.data[i+0]) / fa,
		G: float64(p.data[i+1]) / fa,
		B: float64(p.data[i+2]) / fa,
		A: fa / 255,
	}
}

// RGBAAt returns the stored premultiplied value of a pixel.
// Out-of-bounds coordinates return the zero color.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := c.premultiplied()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = px.R
		p.data[i+1] = px.G
		p.data[i+2] = px.B
		p.data[i+3] = px.A
	}
}

// DrawPixmap composites src over p with SourceOver at the given opacity.
// Both pixmaps must have the same dimensions; mismatched sizes are composited
// over their common top-left region.
func (p *Pixmap) DrawPixmap(src *Pixmap, opacity float64) {
	op := blend.Scale(opacity)
	if op == 0 {
		return
	}
	w := min(p.width, src.width)
	h := min(p.height, src.height)
	for y := 0; y < h; y++ {
		blend.CompositeSpan(p.row(y, 0, w), src.row(y, 0, w), op)
	}
}

// fillMask blends c through the 8-bit coverage mask onto p. The mask
// rectangle is in pixmap coordinates and must lie within the pixmap.
func (p *Pixmap) fillMask(mask *image.Alpha, c RGBA, mode blend.Mode) {
	r := mask.Rect.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	px := c.premultiplied()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mo := mask.PixOffset(r.Min.X, y)
		blend.FillMasked(p.row(y, r.Min.X, r.Max.X), mask.Pix[mo:mo+r.Dx()], px, mode)
	}
}

// ToImage converts the pixmap to an image.RGBA (a copy).
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// view returns an image.RGBA sharing p's pixel memory. Callers must not
// retain it past the next mutation.
func (p *Pixmap) view() *image.RGBA {
	return &image.RGBA{Pix: p.data, Stride: p.width * 4, Rect: p.Bounds()}
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			i := (y*pm.width + x) * 4
			pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// IsTransparent reports whether every pixel has zero alpha.
func (p *Pixmap) IsTransparent() bool {
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] != 0 {
			return false
		}
	}
	return true
}

// validDimensions reports whether a surface of width×height can be allocated.
func validDimensions(width, height int) bool {
	return width > 0 && height > 0 && int64(width)*int64(height) <= maxPixmapPixels
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
