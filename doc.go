// Package paint provides the raster core of a layered painting program.
//
// # Overview
//
// paint turns freehand pointer input into anti-aliased strokes on RGBA8
// layers and flattens the layers into a single image for display. It has no
// windowing or GPU dependencies: a front end feeds it pointer events and
// blits the composited Pixmap however it likes.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	stack, err := paint.NewLayerStack(800, 600)
//	if err != nil {
//		return err
//	}
//	engine := paint.NewPaintEngine()
//	tools := paint.NewToolSettings()
//	tools.BrushColor = paint.Red
//	tools.SetBrushSize(6)
//
//	_ = engine.StartStroke(paint.Pt(10, 10), tools.Snapshot())
//	_ = engine.ContinueStroke(paint.Pt(200, 120))
//	_ = engine.EndStroke(stack)
//
//	img := stack.Composite()
//	_ = png.Encode(w, img)
//
// # Architecture
//
// The package is organized into:
//   - Geometry and color: Point, RGBA, Pixmap (premultiplied RGBA8)
//   - Strokes: Stroke, Stamps and the Rasterizer back-ends (SDF, vector)
//   - Documents: Layer, LayerStack, Action and the composite cache
//   - Interaction: PaintEngine, PointerEvent, ToolSettings, Preset
//   - Internal: blend (Porter-Duff on premultiplied bytes), cache (LRU)
//
// A stroke is drawn by stamping discs of the brush diameter along its
// polyline no more than max(width/4, 0.5) pixels apart. All stamps are
// unioned into one coverage mask before blending, so a translucent stroke
// has uniform alpha where it overlaps itself.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at the top-left corner of the top-left pixel
//   - X increases right
//   - Y increases down
//   - Pixels are sampled at their centers (x+0.5, y+0.5)
//
// # Concurrency
//
// LayerStack and PaintEngine are not safe for concurrent use. Drive them
// from a single UI goroutine. The package logger may be replaced at any time
// with SetLogger.
package paint
