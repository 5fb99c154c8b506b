package paint

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/paint/internal/blend"
)

// Layer is one independently addressable drawing surface plus the ordered
// history of strokes committed to it.
//
// The surface is the rendering source of truth. The history records which
// strokes produced it and is never replayed. Both always change together:
// a stroke appears in the history if and only if it was rasterized onto the
// surface.
//
// Layer is not safe for concurrent use.
type Layer struct {
	id       uuid.UUID
	name     string
	surface  *Pixmap
	strokes  []Stroke
	visible  bool
	opacity  float64
	raster   Rasterizer
	revision uint64
}

// NewLayer creates a visible, fully opaque layer with a transparent
// width×height surface. It returns ErrAllocation for degenerate sizes.
func NewLayer(name string, width, height int) (*Layer, error) {
	return newLayer(name, width, height, NewRasterizer(RasterizerSDF))
}

func newLayer(name string, width, height int, r Rasterizer) (*Layer, error) {
	pm, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	return &Layer{
		id:      uuid.New(),
		name:    normalizeName(name),
		surface: pm,
		visible: true,
		opacity: 1,
		raster:  r,
	}, nil
}

// ID returns the layer's unique identifier. It never changes, even when the
// layer is renamed or moved.
func (l *Layer) ID() uuid.UUID {
	return l.id
}

// Name returns the display name.
func (l *Layer) Name() string {
	return l.name
}

// SetName renames the layer. The name is trimmed and normalized to Unicode
// NFC; a name that is empty after trimming leaves the current name in place.
func (l *Layer) SetName(name string) {
	if n := normalizeName(name); n != "" {
		l.name = n
	}
}

// Visible reports whether the layer takes part in compositing.
func (l *Layer) Visible() bool {
	return l.visible
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// Opacity returns the compositing opacity in [0, 1].
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity sets the compositing opacity, clamped to [0, 1]. NaN becomes 0.
func (l *Layer) SetOpacity(v float64) {
	l.opacity = clampUnit(v)
}

// Surface returns the layer's pixel surface. The caller must not resize or
// retain it across mutations of the layer. Writes made directly to the
// surface do not advance Revision, so a stack with a composite cache will
// not see them until the layer next changes.
func (l *Layer) Surface() *Pixmap {
	return l.surface
}

// Width returns the surface width in pixels.
func (l *Layer) Width() int {
	return l.surface.width
}

// Height returns the surface height in pixels.
func (l *Layer) Height() int {
	return l.surface.height
}

// Strokes returns a copy of the committed stroke history, oldest first.
func (l *Layer) Strokes() []Stroke {
	out := make([]Stroke, len(l.strokes))
	for i, s := range l.strokes {
		out[i] = s.Clone()
	}
	return out
}

// StrokeCount returns the number of committed strokes.
func (l *Layer) StrokeCount() int {
	return len(l.strokes)
}

// Revision returns a counter that increases every time the surface pixels
// change. Metadata changes (name, visibility, opacity) do not bump it.
func (l *Layer) Revision() uint64 {
	return l.revision
}

// AddStroke rasterizes s onto the surface and appends a copy of it to the
// history. If rasterization fails, neither happens and the error is returned.
func (l *Layer) AddStroke(s Stroke) error {
	if err := l.raster.Rasterize(l.surface, s); err != nil {
		return err
	}
	l.strokes = append(l.strokes, s.Clone())
	l.revision++
	return nil
}

// Clear makes the surface fully transparent and drops the stroke history.
func (l *Layer) Clear() {
	l.Fill(Transparent)
}

// Fill replaces every pixel with c and drops the stroke history, which no
// longer describes the surface.
func (l *Layer) Fill(c RGBA) {
	l.surface.Clear(c.Clamp())
	l.strokes = nil
	l.revision++
}

// reset replaces the surface with a blank one of the given size. The history
// goes with the old pixels.
func (l *Layer) reset(pm *Pixmap) {
	l.surface = pm
	l.strokes = nil
	l.revision++
}

// normalizeName trims surrounding whitespace and converts to NFC.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// opacityByte returns the opacity as the 0-255 factor used by compositing.
func (l *Layer) opacityByte() byte {
	return blend.Scale(l.opacity)
}
