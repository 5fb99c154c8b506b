// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mobile

import (
	"golang.org/x/mobile/event/mouse"

	"github.com/gogpu/paint"
)

// Tracker converts mouse events to pointer events and remembers whether the
// drawing button is held between events.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	// Origin is the window position of the canvas top-left corner. It is
	// subtracted from every event position.
	Origin paint.Point

	pressed bool
}

// NewTracker returns a tracker for a canvas placed at origin in the window.
func NewTracker(origin paint.Point) *Tracker {
	return &Tracker{Origin: origin}
}

// Pressed reports whether the drawing button is currently held.
func (t *Tracker) Pressed() bool {
	return t.pressed
}

// Translate converts e. It returns false for events that do not affect
// drawing.
func (t *Tracker) Translate(e mouse.Event) (paint.PointerEvent, bool) {
	ev := paint.PointerEvent{
		X: float64(e.X) - t.Origin.X,
		Y: float64(e.Y) - t.Origin.Y,
	}
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		t.pressed = true
		ev.Kind = paint.PointerDown
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if !t.pressed {
			return paint.PointerEvent{}, false
		}
		t.pressed = false
		ev.Kind = paint.PointerUp
	case e.Direction == mouse.DirNone && t.pressed:
		ev.Kind = paint.PointerMove
	default:
		return paint.PointerEvent{}, false
	}
	return ev, true
}

// Dispatch translates e and hands the result to engine. Ignored events
// return nil.
func (t *Tracker) Dispatch(e mouse.Event, engine *paint.PaintEngine, tools *paint.ToolSettings, stack *paint.LayerStack) error {
	ev, ok := t.Translate(e)
	if !ok {
		return nil
	}
	return engine.HandleEvent(ev, tools, stack)
}

// Release forgets a held button and cancels the stroke in progress. Call it
// when the window loses focus or the pointer is captured elsewhere, since
// the matching release event may never arrive.
func (t *Tracker) Release(engine *paint.PaintEngine) {
	t.pressed = false
	engine.CancelStroke()
}
