// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mobile feeds golang.org/x/mobile mouse events into a paint engine.
//
// Windowing drivers built on x/mobile events (golang.org/x/exp/shiny and
// golang.org/x/mobile/app) deliver pointer input as mouse.Event values in
// window coordinates. A Tracker turns them into paint.PointerEvent values in
// canvas coordinates:
//
//	left button press            -> PointerDown
//	motion while the button held -> PointerMove
//	left button release          -> PointerUp
//
// Motion without a held button, other buttons and wheel steps are ignored.
//
// # Usage
//
//	tr := mobile.NewTracker(paint.Pt(toolbarWidth, tabHeight))
//	for {
//	    switch e := w.NextEvent().(type) {
//	    case mouse.Event:
//	        if err := tr.Dispatch(e, engine, tools, stack); err != nil && !errors.Is(err, paint.ErrNoOp) {
//	            log.Print(err)
//	        }
//	    case lifecycle.Event:
//	        if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
//	            tr.Release(engine)
//	        }
//	    }
//	}
package mobile
