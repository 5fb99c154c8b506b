// Command paintdemo replays scripted pointer input through the paint engine
// and writes the composited canvas as a PNG.
package main

import (
	"flag"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/paint"
)

// defaultPresets is used when no -presets file is given.
const defaultPresets = `
- name: Ink
  size: 4
  color: midnightblue
- name: Marker
  size: 14
  color: orangered
  opacity: 0.6
- name: Eraser
  tool: eraser
  erase: alpha
  size: 18
`

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		output  = flag.String("output", "paint.png", "output file")
		presets = flag.String("presets", "", "brush preset file, YAML or .toml (built-in presets if empty)")
		vector  = flag.Bool("vector", false, "use the x/image/vector rasterizer")
		grid    = flag.Float64("grid", 0, "overlay a grid with this spacing (0 disables)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode := paint.RasterizerSDF
	if *vector {
		mode = paint.RasterizerVector
	}
	stack, err := paint.NewLayerStack(*width, *height,
		paint.WithRasterizerMode(mode),
		paint.WithCompositeCache(64<<20))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	brushes, err := loadPresets(*presets)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	tools := paint.NewToolSettings()
	engine := paint.NewPaintEngine()
	w, h := float64(*width), float64(*height)

	// Bottom layer: a sine wave in ink.
	use(brushes, "Ink", tools)
	drag(engine, tools, stack, wave(w, h))

	// Middle layer: translucent marker loops, partly erased.
	if _, err := stack.AddLayer("Marker"); err != nil {
		log.Fatalf("Failed to add layer: %v", err)
	}
	use(brushes, "Marker", tools)
	drag(engine, tools, stack, spiral(w/2, h/2, math.Min(w, h)/3))
	use(brushes, "Eraser", tools)
	drag(engine, tools, stack, []paint.Point{paint.Pt(w*0.2, h*0.5), paint.Pt(w*0.8, h*0.5)})

	// Top layer: a row of dots from single clicks.
	if _, err := stack.AddLayer(""); err != nil {
		log.Fatalf("Failed to add layer: %v", err)
	}
	use(brushes, "Ink", tools)
	tools.SetBrushSize(12)
	for x := w * 0.1; x < w*0.9; x += w * 0.1 {
		drag(engine, tools, stack, []paint.Point{paint.Pt(x, h*0.85)})
	}
	_ = stack.SetLayerOpacity(stack.Active(), 0.7)

	img := stack.Composite()
	if *grid > 0 {
		if err := paint.DrawGrid(img, *grid, paint.DefaultGridColor); err != nil {
			log.Fatalf("Failed to draw grid: %v", err)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	for _, info := range stack.Layers() {
		log.Printf("layer %q: %d strokes, opacity %.2f", info.Name, info.StrokeCount, info.Opacity)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func loadPresets(path string) (map[string]paint.Preset, error) {
	var r io.Reader = strings.NewReader(defaultPresets)
	load := paint.LoadPresets
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			load = paint.LoadPresetsTOML
		}
	}
	list, err := load(r)
	if err != nil {
		return nil, err
	}
	m := make(map[string]paint.Preset, len(list))
	for _, p := range list {
		m[p.Name] = p
	}
	return m, nil
}

func use(brushes map[string]paint.Preset, name string, tools *paint.ToolSettings) {
	p, ok := brushes[name]
	if !ok {
		log.Printf("preset %q not found, keeping current tool", name)
		return
	}
	p.Apply(tools)
}

// drag plays a press, moves and a release through the engine.
func drag(engine *paint.PaintEngine, tools *paint.ToolSettings, stack *paint.LayerStack, pts []paint.Point) {
	events := make([]paint.PointerEvent, 0, len(pts)+1)
	for i, p := range pts {
		kind := paint.PointerMove
		if i == 0 {
			kind = paint.PointerDown
		}
		events = append(events, paint.PointerEvent{Kind: kind, X: p.X, Y: p.Y})
	}
	events = append(events, paint.PointerEvent{Kind: paint.PointerUp})
	for _, ev := range events {
		if err := engine.HandleEvent(ev, tools, stack); err != nil {
			log.Printf("event %v ignored: %v", ev.Kind, err)
		}
	}
}

func wave(w, h float64) []paint.Point {
	var pts []paint.Point
	for x := w * 0.05; x <= w*0.95; x += 12 {
		pts = append(pts, paint.Pt(x, h*0.3+h*0.15*math.Sin(x/w*4*math.Pi)))
	}
	return pts
}

func spiral(cx, cy, r float64) []paint.Point {
	var pts []paint.Point
	for a := 0.0; a < 6*math.Pi; a += 0.2 {
		rr := r * a / (6 * math.Pi)
		pts = append(pts, paint.Pt(cx+rr*math.Cos(a), cy+rr*math.Sin(a)))
	}
	return pts
}
