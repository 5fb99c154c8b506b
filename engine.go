package paint

import "fmt"

// EngineState is the stroke lifecycle state of a PaintEngine.
type EngineState int

const (
	// StateIdle means no stroke is in progress.
	StateIdle EngineState = iota
	// StateDrawing means a stroke has been started and not yet ended.
	StateDrawing
)

// String returns the state name.
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// PaintEngine turns pointer input into committed strokes.
//
//	Idle --StartStroke--> Drawing --EndStroke----> Idle (stroke committed)
//	                              --CancelStroke-> Idle (stroke dropped)
//
// Brush parameters are frozen when the stroke starts. The in-progress stroke
// belongs to the engine until EndStroke hands it to the active layer.
//
// PaintEngine is not safe for concurrent use.
type PaintEngine struct {
	state       EngineState
	stroke      Stroke
	clickPolicy ClickPolicy
}

// NewPaintEngine creates an idle engine.
func NewPaintEngine(opts ...EngineOption) *PaintEngine {
	e := &PaintEngine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current lifecycle state.
func (e *PaintEngine) State() EngineState {
	return e.state
}

// IsDrawing reports whether a stroke is in progress.
func (e *PaintEngine) IsDrawing() bool {
	return e.state == StateDrawing
}

// ClickPolicy returns how single-sample strokes are treated.
func (e *PaintEngine) ClickPolicy() ClickPolicy {
	return e.clickPolicy
}

// StartStroke begins a stroke at p drawn with brush.
//
// While a stroke is already in progress it returns ErrStrokeInProgress and
// keeps the current stroke. Invalid brushes (ErrInvalidBrush) and
// non-finite points (ErrInvalidPoint) are rejected without a state change.
func (e *PaintEngine) StartStroke(p Point, brush BrushParams) error {
	if e.state == StateDrawing {
		return ErrStrokeInProgress
	}
	if err := brush.Validate(); err != nil {
		return err
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, p)
	}
	e.stroke = Stroke{
		Points: []Point{p},
		Color:  brush.Color,
		Width:  brush.Width,
		Mode:   brush.Mode,
	}
	e.state = StateDrawing
	return nil
}

// ContinueStroke appends p to the stroke in progress. Repeated positions
// are kept.
func (e *PaintEngine) ContinueStroke(p Point) error {
	if e.state != StateDrawing {
		return ErrNotDrawing
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, p)
	}
	e.stroke.AddPoint(p)
	return nil
}

// EndStroke commits the stroke in progress to the active layer of stack and
// returns to Idle.
//
// A stroke with a single sample is committed as one dot under
// ClickCommitDot and dropped under ClickDiscard. If the layer rejects the
// stroke, the engine still returns to Idle and the error is returned. A nil
// stack is rejected with an ErrNoOp-family error and the stroke stays in
// progress.
func (e *PaintEngine) EndStroke(stack *LayerStack) error {
	if e.state != StateDrawing {
		return ErrNotDrawing
	}
	if stack == nil {
		return fmt.Errorf("%w: nil stack", ErrNoOp)
	}
	s := e.stroke
	e.reset()

	if s.Len() == 1 && e.clickPolicy == ClickDiscard {
		Logger().Debug("click discarded", "x", s.Points[0].X, "y", s.Points[0].Y)
		return nil
	}
	if err := stack.ActiveLayer().AddStroke(s); err != nil {
		return err
	}
	Logger().Debug("stroke committed", "layer", stack.ActiveLayer().Name(),
		"points", s.Len(), "width", s.Width, "mode", s.Mode)
	return nil
}

// CancelStroke drops the stroke in progress, if any, and returns to Idle.
func (e *PaintEngine) CancelStroke() {
	e.reset()
}

// CurrentStroke returns a copy of the stroke in progress.
func (e *PaintEngine) CurrentStroke() (Stroke, bool) {
	if e.state != StateDrawing {
		return Stroke{}, false
	}
	return e.stroke.Clone(), true
}

// HandleEvent dispatches a pointer event. Tool settings are read only on
// PointerDown, and the overpaint eraser takes its color from the stack
// background. Events that make no sense in the current state, such as a
// move without a preceding down, return an ErrNoOp-family error and change
// nothing. A nil tools or stack is rejected the same way.
func (e *PaintEngine) HandleEvent(ev PointerEvent, tools *ToolSettings, stack *LayerStack) error {
	if tools == nil || stack == nil {
		return fmt.Errorf("%w: nil tools or stack", ErrNoOp)
	}
	switch ev.Kind {
	case PointerDown:
		return e.StartStroke(ev.Point(), tools.SnapshotOn(stack.Background()))
	case PointerMove:
		return e.ContinueStroke(ev.Point())
	case PointerUp:
		return e.EndStroke(stack)
	case PointerCancel:
		e.CancelStroke()
		return nil
	default:
		return fmt.Errorf("%w: unknown pointer event %d", ErrNoOp, int(ev.Kind))
	}
}

// RenderPreview returns the stack composite with the stroke in progress
// drawn on top, as it will look once committed to a topmost layer. Nothing
// is committed. Without a stroke in progress it is the plain composite.
//
// An erase stroke in progress is previewed as a background-colored stroke,
// since the composite has no layer to subtract from.
func (e *PaintEngine) RenderPreview(stack *LayerStack) (*Pixmap, error) {
	if stack == nil {
		return nil, fmt.Errorf("%w: nil stack", ErrNoOp)
	}
	preview := stack.Composite()
	if e.state != StateDrawing {
		return preview, nil
	}
	s := e.stroke
	if s.Mode == StrokeErase {
		s.Mode = StrokePaint
		s.Color = stack.Background().WithAlpha(stack.Background().A * s.Color.A)
	}
	if err := stack.raster.Rasterize(preview, s); err != nil {
		return nil, err
	}
	return preview, nil
}

func (e *PaintEngine) reset() {
	e.state = StateIdle
	e.stroke = Stroke{}
}
