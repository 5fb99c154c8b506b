package paint

// StackOption configures a LayerStack during creation.
//
// Example:
//
//	// White canvas, SDF brushes, no composite cache
//	stack, err := paint.NewLayerStack(800, 600)
//
//	// Transparent canvas with a 64 MiB composite cache
//	stack, err := paint.NewLayerStack(800, 600,
//	    paint.WithBackground(paint.Transparent),
//	    paint.WithCompositeCache(64<<20))
type StackOption func(*stackOptions)

// stackOptions holds optional configuration for LayerStack creation.
type stackOptions struct {
	background RGBA
	mode       RasterizerMode
	cacheBytes int64
}

// defaultStackOptions returns the default stack options.
func defaultStackOptions() stackOptions {
	return stackOptions{
		background: White,
		mode:       RasterizerSDF,
	}
}

// WithBackground sets the color Composite starts from. The default is
// opaque white.
func WithBackground(c RGBA) StackOption {
	return func(o *stackOptions) {
		o.background = c.Clamp()
	}
}

// WithRasterizerMode selects the coverage algorithm used by every layer of
// the stack.
func WithRasterizerMode(m RasterizerMode) StackOption {
	return func(o *stackOptions) {
		o.mode = m
	}
}

// WithCompositeCache enables memoization of partial composites, bounded to
// maxBytes of pixel memory. Zero or negative disables the cache.
//
// Composite output is identical with and without the cache. The cache pays
// off when only the upper layers change between repaints, which is the
// common case while drawing on the active layer.
func WithCompositeCache(maxBytes int64) StackOption {
	return func(o *stackOptions) {
		o.cacheBytes = maxBytes
	}
}

// EngineOption configures a PaintEngine during creation.
type EngineOption func(*PaintEngine)

// ClickPolicy decides what happens to a stroke that ends with a single
// sample, i.e. a click without any drag.
type ClickPolicy int

const (
	// ClickCommitDot commits a single brush stamp (default).
	ClickCommitDot ClickPolicy = iota

	// ClickDiscard drops single-sample strokes without touching the layer.
	ClickDiscard
)

// String returns the click policy name.
func (p ClickPolicy) String() string {
	switch p {
	case ClickCommitDot:
		return "CommitDot"
	case ClickDiscard:
		return "Discard"
	default:
		return "Unknown"
	}
}

// WithClickPolicy sets how EndStroke treats single-sample strokes.
func WithClickPolicy(p ClickPolicy) EngineOption {
	return func(e *PaintEngine) {
		e.clickPolicy = p
	}
}
