package paint

import "fmt"

// DefaultGridColor is the light translucent gray used for canvas grids.
var DefaultGridColor = RGBA{R: 0.8, G: 0.8, B: 0.8, A: 0.4}

// DrawGrid draws 1 px wide vertical and horizontal lines every spacing
// pixels across dst, starting at the origin. It is a debugging and
// alignment overlay, usually drawn onto a preview rather than a layer.
func DrawGrid(dst *Pixmap, spacing float64, c RGBA) error {
	if dst == nil || dst.width <= 0 || dst.height <= 0 {
		return ErrInvalidSurface
	}
	if !(spacing >= 1) || !finite(spacing) {
		return fmt.Errorf("%w: grid spacing %v", ErrInvalidStroke, spacing)
	}
	r := NewRasterizer(RasterizerSDF)
	w, h := float64(dst.width), float64(dst.height)
	line := func(a, b Point) error {
		return r.Rasterize(dst, Stroke{Points: []Point{a, b}, Color: c, Width: 1})
	}
	for x := 0.0; x <= w; x += spacing {
		if err := line(Pt(x, 0), Pt(x, h)); err != nil {
			return err
		}
	}
	for y := 0.0; y <= h; y += spacing {
		if err := line(Pt(0, y), Pt(w, y)); err != nil {
			return err
		}
	}
	return nil
}
