package paint

import (
	"fmt"
	"math"
)

// Brush size limits enforced by ToolSettings.SetBrushSize.
const (
	MinBrushSize     = 1.0
	MaxBrushSize     = 20.0
	DefaultBrushSize = 2.0
)

// Tool is the drawing tool selected in the toolbar.
type Tool int

const (
	// ToolPen paints with the brush color.
	ToolPen Tool = iota
	// ToolEraser removes paint.
	ToolEraser
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "Pen"
	case ToolEraser:
		return "Eraser"
	default:
		return "Unknown"
	}
}

// EraseMode selects how the eraser removes paint.
type EraseMode int

const (
	// EraseOverpaint paints with the canvas background color (default).
	// On a layer above others this hides what lies below instead of
	// revealing it.
	EraseOverpaint EraseMode = iota

	// EraseAlpha subtracts alpha from the active layer so lower layers show
	// through.
	EraseAlpha
)

// String returns the erase mode name.
func (m EraseMode) String() string {
	switch m {
	case EraseOverpaint:
		return "Overpaint"
	case EraseAlpha:
		return "Alpha"
	default:
		return "Unknown"
	}
}

// BrushParams is the brush state a stroke is drawn with. PaintEngine takes
// a copy at stroke start, so later tool changes never affect a stroke that
// is already in progress.
type BrushParams struct {
	Color RGBA
	Width float64
	Mode  StrokeMode
}

// Validate reports ErrInvalidBrush for a non-positive or non-finite width.
func (b BrushParams) Validate() error {
	if !(b.Width > 0) || math.IsInf(b.Width, 0) {
		return fmt.Errorf("%w: width %v", ErrInvalidBrush, b.Width)
	}
	return nil
}

// ToolSettings is the toolbar state: current tool, brush and colors.
// The zero value is not useful; use NewToolSettings.
type ToolSettings struct {
	Tool         Tool
	BrushSize    float64
	BrushOpacity float64
	BrushColor   RGBA
	Background   RGBA
	EraseMode    EraseMode
}

// NewToolSettings returns the default toolbar state: an opaque black pen of
// size 2 on a white background.
func NewToolSettings() *ToolSettings {
	return &ToolSettings{
		Tool:         ToolPen,
		BrushSize:    DefaultBrushSize,
		BrushOpacity: 1,
		BrushColor:   Black,
		Background:   White,
		EraseMode:    EraseOverpaint,
	}
}

// SetBrushSize sets the brush diameter clamped to [MinBrushSize,
// MaxBrushSize]. NaN is ignored.
func (t *ToolSettings) SetBrushSize(size float64) {
	if math.IsNaN(size) {
		return
	}
	t.BrushSize = min(max(size, MinBrushSize), MaxBrushSize)
}

// SetBrushOpacity sets the pen opacity clamped to [0, 1].
func (t *ToolSettings) SetBrushOpacity(a float64) {
	t.BrushOpacity = clampUnit(a)
}

// IsEraser reports whether the eraser is selected.
func (t *ToolSettings) IsEraser() bool {
	return t.Tool == ToolEraser
}

// CurrentColor returns the color the selected tool paints with: the brush
// color at brush opacity for the pen, the Background field for the
// overpaint eraser.
func (t *ToolSettings) CurrentColor() RGBA {
	return t.colorOn(t.Background)
}

func (t *ToolSettings) colorOn(bg RGBA) RGBA {
	if t.Tool == ToolEraser {
		return bg
	}
	return t.BrushColor.WithAlpha(t.BrushColor.A * clampUnit(t.BrushOpacity))
}

// Snapshot returns the brush parameters for a stroke started now, with the
// overpaint eraser painting the Background field. Code that draws into a
// LayerStack should use SnapshotOn with the stack's background, as
// PaintEngine.HandleEvent does.
func (t *ToolSettings) Snapshot() BrushParams {
	return t.SnapshotOn(t.Background)
}

// SnapshotOn returns the brush parameters for a stroke started now on a
// canvas whose background is bg.
func (t *ToolSettings) SnapshotOn(bg RGBA) BrushParams {
	b := BrushParams{Color: t.colorOn(bg).Clamp(), Width: t.BrushSize}
	if t.Tool == ToolEraser && t.EraseMode == EraseAlpha {
		b.Color = Black
		b.Mode = StrokeErase
	}
	return b
}
