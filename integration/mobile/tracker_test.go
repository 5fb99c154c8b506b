// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mobile

import (
	"testing"

	"golang.org/x/mobile/event/mouse"

	"github.com/gogpu/paint"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		events []mouse.Event
		want   []paint.PointerEvent
	}{
		{
			name: "press drag release",
			events: []mouse.Event{
				{X: 15, Y: 25, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
				{X: 20, Y: 25, Direction: mouse.DirNone},
				{X: 30, Y: 35, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
			},
			want: []paint.PointerEvent{
				{Kind: paint.PointerDown, X: 5, Y: 5},
				{Kind: paint.PointerMove, X: 10, Y: 5},
				{Kind: paint.PointerUp, X: 20, Y: 15},
			},
		},
		{
			name: "hover is ignored",
			events: []mouse.Event{
				{X: 50, Y: 50, Direction: mouse.DirNone},
			},
			want: nil,
		},
		{
			name: "right button and wheel are ignored",
			events: []mouse.Event{
				{X: 50, Y: 50, Button: mouse.ButtonRight, Direction: mouse.DirPress},
				{X: 50, Y: 50, Button: mouse.ButtonWheelDown, Direction: mouse.DirStep},
				{X: 50, Y: 50, Button: mouse.ButtonRight, Direction: mouse.DirRelease},
			},
			want: nil,
		},
		{
			name: "stray release is ignored",
			events: []mouse.Event{
				{X: 50, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(paint.Pt(10, 20))
			var got []paint.PointerEvent
			for _, e := range tt.events {
				if ev, ok := tr.Translate(e); ok {
					got = append(got, ev)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if tr.Pressed() {
				t.Error("tracker still pressed at end of sequence")
			}
		})
	}
}

func TestDispatchDrawsStroke(t *testing.T) {
	stack, err := paint.NewLayerStack(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	engine := paint.NewPaintEngine()
	tools := paint.NewToolSettings()
	tools.SetBrushSize(6)
	tr := NewTracker(paint.Point{})

	for _, e := range []mouse.Event{
		{X: 2, Y: 2, Direction: mouse.DirNone},
		{X: 10, Y: 32, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
		{X: 30, Y: 32, Direction: mouse.DirNone},
		{X: 50, Y: 32, Direction: mouse.DirNone},
		{X: 50, Y: 32, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
	} {
		if err := tr.Dispatch(e, engine, tools, stack); err != nil {
			t.Fatalf("Dispatch(%+v): %v", e, err)
		}
	}

	strokes := stack.ActiveLayer().Strokes()
	if len(strokes) != 1 || strokes[0].Len() != 3 {
		t.Fatalf("committed strokes = %+v, want one stroke of 3 points", strokes)
	}
	if a := stack.ActiveLayer().Surface().RGBAAt(30, 32).A; a != 255 {
		t.Errorf("stroke pixel alpha = %d, want 255", a)
	}
}

func TestRelease(t *testing.T) {
	stack, _ := paint.NewLayerStack(16, 16)
	engine := paint.NewPaintEngine()
	tools := paint.NewToolSettings()
	tr := NewTracker(paint.Point{})

	_ = tr.Dispatch(mouse.Event{X: 4, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, engine, tools, stack)
	if !tr.Pressed() || !engine.IsDrawing() {
		t.Fatal("press did not start a stroke")
	}
	tr.Release(engine)
	if tr.Pressed() || engine.IsDrawing() {
		t.Error("Release left the stroke running")
	}

	// The late release no longer reaches the engine.
	err := tr.Dispatch(mouse.Event{X: 4, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, engine, tools, stack)
	if err != nil {
		t.Errorf("late release error = %v, want nil", err)
	}
	if stack.TotalStrokeCount() != 0 {
		t.Error("cancelled stroke was committed")
	}
}
