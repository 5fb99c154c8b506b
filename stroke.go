package paint

import (
	"fmt"
	"image"
	"math"
)

// MinStampStep is the smallest distance in pixels between two interpolated
// brush stamps, whatever the brush width.
const MinStampStep = 0.5

// stampSpacing is the stamp step as a fraction of the brush width. A quarter
// of the diameter keeps consecutive circles overlapping by 75%.
const stampSpacing = 0.25

// StrokeMode selects how a stroke's coverage is applied to a surface.
type StrokeMode uint8

const (
	// StrokePaint blends the stroke color over the surface (alpha-over).
	StrokePaint StrokeMode = iota

	// StrokeErase subtracts coverage×alpha from the surface (destination-out).
	// The stroke color's RGB is ignored.
	StrokeErase
)

// String returns the stroke mode name.
func (m StrokeMode) String() string {
	switch m {
	case StrokePaint:
		return "Paint"
	case StrokeErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Stroke is an ordered sequence of sampled pointer positions plus the brush
// parameters they were drawn with. Insertion order is drawing order.
type Stroke struct {
	Points []Point
	Color  RGBA
	Width  float64
	Mode   StrokeMode
}

// NewStroke returns an empty paint stroke with the given color and width.
func NewStroke(color RGBA, width float64) Stroke {
	return Stroke{Color: color, Width: width}
}

// AddPoint appends a sample. Consecutive duplicates are kept.
func (s *Stroke) AddPoint(p Point) {
	s.Points = append(s.Points, p)
}

// Len returns the number of samples.
func (s Stroke) Len() int {
	return len(s.Points)
}

// IsEmpty reports whether the stroke has no samples.
func (s Stroke) IsEmpty() bool {
	return len(s.Points) == 0
}

// Clone returns a copy of s that shares no memory with it.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = append([]Point(nil), s.Points...)
	return c
}

// Validate reports ErrInvalidStroke for strokes that cannot be rasterized.
func (s Stroke) Validate() error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidStroke)
	}
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("%w: width %v", ErrInvalidStroke, s.Width)
	}
	for i, p := range s.Points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidStroke, i)
		}
	}
	return nil
}

// StampStep returns the interpolation step used between samples.
func (s Stroke) StampStep() float64 {
	return max(s.Width*stampSpacing, MinStampStep)
}

// Stamps returns the centers of every brush circle the stroke paints: each
// sample plus the points linearly interpolated between consecutive samples
// at StampStep spacing. A single-sample stroke yields exactly one stamp.
//
// Stamps enumerates the whole polyline. Rasterizers only need the stamps
// that can reach the surface and use stampsWithin instead.
func (s Stroke) Stamps() []Point {
	if len(s.Points) == 0 {
		return nil
	}
	step := s.StampStep()
	stamps := make([]Point, 0, len(s.Points))
	stamps = append(stamps, s.Points[0])
	for i := 1; i < len(s.Points); i++ {
		p1, p2 := s.Points[i-1], s.Points[i]
		steps := int(math.Ceil(p1.Distance(p2) / step))
		for k := 1; k <= steps; k++ {
			stamps = append(stamps, p1.Lerp(p2, float64(k)/float64(steps)))
		}
	}
	return stamps
}

// Bounds returns the pixel rectangle that may receive coverage from the
// stroke, including the anti-aliasing fringe. Coordinates are clamped to
// ±maxCoord so far-away samples cannot overflow the conversion to int.
func (s Stroke) Bounds() image.Rectangle {
	if len(s.Points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	pad := s.Width/2 + 1
	return image.Rect(
		floorCoord(minX-pad), floorCoord(minY-pad),
		ceilCoord(maxX+pad), ceilCoord(maxY+pad),
	)
}

// maxCoord bounds pixel coordinates derived from stroke geometry.
const maxCoord = 1 << 30

func floorCoord(v float64) int {
	return int(math.Max(-maxCoord, math.Min(maxCoord, math.Floor(v))))
}

func ceilCoord(v float64) int {
	return int(math.Max(-maxCoord, math.Min(maxCoord, math.Ceil(v))))
}

// stampsWithin returns the stamps whose circles can reach r. Every segment
// is first clipped to r grown by the brush radius plus one pixel, so the
// stamp count follows the visible length of the stroke, not its total
// length. Samples inside the grown rectangle are always stamped.
func (s Stroke) stampsWithin(r image.Rectangle) []Point {
	if len(s.Points) == 0 || r.Empty() {
		return nil
	}
	pad := s.Width/2 + 1
	box := clipBox{
		minX: float64(r.Min.X) - pad, minY: float64(r.Min.Y) - pad,
		maxX: float64(r.Max.X) + pad, maxY: float64(r.Max.Y) + pad,
	}
	step := s.StampStep()

	var stamps []Point
	if box.contains(s.Points[0]) {
		stamps = append(stamps, s.Points[0])
	}
	for i := 1; i < len(s.Points); i++ {
		p1, p2 := s.Points[i-1], s.Points[i]
		a, b, ok := box.clip(p1, p2)
		if !ok {
			continue
		}
		if a != p1 {
			stamps = append(stamps, a)
		}
		steps := int(math.Ceil(a.Distance(b) / step))
		for k := 1; k <= steps; k++ {
			stamps = append(stamps, a.Lerp(b, float64(k)/float64(steps)))
		}
	}
	return stamps
}

// clipBox is an axis-aligned rectangle in canvas coordinates.
type clipBox struct {
	minX, minY, maxX, maxY float64
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (b clipBox) outcode(p Point) int {
	code := 0
	switch {
	case p.X < b.minX:
		code |= outLeft
	case p.X > b.maxX:
		code |= outRight
	}
	switch {
	case p.Y < b.minY:
		code |= outTop
	case p.Y > b.maxY:
		code |= outBottom
	}
	return code
}

func (b clipBox) contains(p Point) bool {
	return b.outcode(p) == 0
}

// clip returns the part of the segment p-q inside b (Cohen-Sutherland).
// Endpoints already inside are returned unchanged.
func (b clipBox) clip(p, q Point) (Point, Point, bool) {
	cp, cq := b.outcode(p), b.outcode(q)
	for iter := 0; iter < 8; iter++ {
		if cp|cq == 0 {
			return p, q, true
		}
		if cp&cq != 0 {
			return p, q, false
		}
		if cp != 0 {
			p = b.toEdge(p, q, cp)
			cp = b.outcode(p)
		} else {
			q = b.toEdge(q, p, cq)
			cq = b.outcode(q)
		}
	}
	// Rounding kept an endpoint a hair outside; pin both to the box.
	return b.pin(p), b.pin(q), true
}

// toEdge moves the outside endpoint out along the segment out-in onto the
// box edge named by code.
func (b clipBox) toEdge(out, in Point, code int) Point {
	switch {
	case code&outLeft != 0:
		return crossX(out, in, b.minX)
	case code&outRight != 0:
		return crossX(out, in, b.maxX)
	case code&outTop != 0:
		return crossY(out, in, b.minY)
	default:
		return crossY(out, in, b.maxY)
	}
}

func (b clipBox) pin(p Point) Point {
	return Point{X: min(max(p.X, b.minX), b.maxX), Y: min(max(p.Y, b.minY), b.maxY)}
}

// crossX returns the point of segment p-q on the vertical line at x. The
// other coordinate is interpolated from the endpoint nearer the line, with
// halved coordinates so far-apart finite points cannot overflow.
func crossX(p, q Point, x float64) Point {
	if math.Abs(q.X-x) > math.Abs(p.X-x) {
		p, q = q, p
	}
	t := (x/2 - q.X/2) / (p.X/2 - q.X/2)
	return Point{X: x, Y: q.Y*(1-t) + p.Y*t}
}

// crossY is crossX for a horizontal line at y.
func crossY(p, q Point, y float64) Point {
	if math.Abs(q.Y-y) > math.Abs(p.Y-y) {
		p, q = q, p
	}
	t := (y/2 - q.Y/2) / (p.Y/2 - q.Y/2)
	return Point{X: q.X*(1-t) + p.X*t, Y: y}
}
