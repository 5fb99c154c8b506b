package paint

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/paint/internal/blend"
)

// Rasterizer writes a stroke's brush coverage into a surface.
//
// The brush is a filled circle of diameter Stroke.Width centered on every
// stamp returned by Stroke.Stamps. Coverage of all stamps is unioned into a
// single mask before blending, so overlapping stamps never darken a
// translucent color twice. The mask is then applied once:
//
//   - StrokePaint: premultiplied source-over of Color×coverage
//   - StrokeErase: destination-out by Color.A×coverage
//
// Rasterize only fails for a nil/empty surface (ErrInvalidSurface) or a
// malformed stroke (ErrInvalidStroke); in both cases dst is not modified.
type Rasterizer interface {
	Rasterize(dst *Pixmap, s Stroke) error
	Mode() RasterizerMode
}

// NewRasterizer returns the rasterizer for mode. Unknown modes fall back to
// RasterizerSDF.
func NewRasterizer(mode RasterizerMode) Rasterizer {
	if mode == RasterizerVector {
		return vectorRasterizer{}
	}
	return sdfRasterizer{}
}

// coverageFunc fills mask (already sized and positioned in surface
// coordinates) with the union coverage of stamps of the given radius.
type coverageFunc func(mask *image.Alpha, stamps []Point, radius float64)

func rasterize(dst *Pixmap, s Stroke, cover coverageFunc) error {
	if dst == nil || dst.width <= 0 || dst.height <= 0 {
		return ErrInvalidSurface
	}
	if err := s.Validate(); err != nil {
		return err
	}
	stamps := s.stampsWithin(dst.Bounds())
	var r image.Rectangle
	for _, c := range stamps {
		r = r.Union(stampRect(c, s.Width/2))
	}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}
	mask := image.NewAlpha(r)
	cover(mask, stamps, s.Width/2)

	mode := blend.SourceOver
	if s.Mode == StrokeErase {
		mode = blend.DestinationOut
	}
	dst.fillMask(mask, s.Color.Clamp(), mode)
	return nil
}

// stampRect returns the pixel rectangle a stamp of the given radius can
// touch, fringe included.
func stampRect(c Point, radius float64) image.Rectangle {
	pad := radius + 1
	return image.Rect(
		floorCoord(c.X-pad), floorCoord(c.Y-pad),
		ceilCoord(c.X+pad), ceilCoord(c.Y+pad),
	)
}

// sdfRasterizer computes analytic circle coverage per pixel center.
type sdfRasterizer struct{}

func (sdfRasterizer) Mode() RasterizerMode { return RasterizerSDF }

func (sdfRasterizer) Rasterize(dst *Pixmap, s Stroke) error {
	return rasterize(dst, s, sdfCoverage)
}

func sdfCoverage(mask *image.Alpha, stamps []Point, radius float64) {
	outer := radius + sdfAntialiasWidth
	outerSq := outer * outer
	for _, c := range stamps {
		r := stampRect(c, radius).Intersect(mask.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			py := float64(y) + 0.5
			dy := py - c.Y
			row := mask.Pix[mask.PixOffset(r.Min.X, y):]
			for x := r.Min.X; x < r.Max.X; x++ {
				px := float64(x) + 0.5
				dx := px - c.X
				if dx*dx+dy*dy >= outerSq {
					continue
				}
				cov := blend.Scale(SDFFilledCircleCoverage(px, py, c.X, c.Y, radius))
				if i := x - r.Min.X; cov > row[i] {
					row[i] = cov
				}
			}
		}
	}
}

// vectorRasterizer accumulates Bézier circles in an x/image/vector
// rasterizer. Nonzero accumulation is clamped to 1, which unions stamps.
type vectorRasterizer struct{}

func (vectorRasterizer) Mode() RasterizerMode { return RasterizerVector }

func (vectorRasterizer) Rasterize(dst *Pixmap, s Stroke) error {
	return rasterize(dst, s, vectorCoverage)
}

// circleKappa is the cubic Bézier control distance for a quarter circle.
const circleKappa = 0.5522847498307936

func vectorCoverage(mask *image.Alpha, stamps []Point, radius float64) {
	b := mask.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src

	drawn := false
	for _, c := range stamps {
		if !stampRect(c, radius).Overlaps(b) {
			continue
		}
		cx := float32(c.X - float64(b.Min.X))
		cy := float32(c.Y - float64(b.Min.Y))
		r := float32(radius)
		k := float32(radius * circleKappa)

		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	z.Draw(mask, b, image.Opaque, image.Point{})
}
