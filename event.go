package paint

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	// PointerDown starts a stroke.
	PointerDown PointerKind = iota
	// PointerMove extends the stroke in progress.
	PointerMove
	// PointerUp commits the stroke in progress.
	PointerUp
	// PointerCancel drops the stroke in progress, for example when the
	// pointer leaves the canvas or the window loses focus.
	PointerCancel
)

// String returns the pointer kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	case PointerCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer sample in canvas-local pixel coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Point returns the event position.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}
