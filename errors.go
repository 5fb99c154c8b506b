package paint

import (
	"errors"
	"fmt"
)

// Errors returned by paint operations.
//
// None of them is fatal: every operation that returns one of these leaves the
// receiver exactly as it was before the call.
var (
	// ErrAllocation is returned when a pixel surface cannot be created at the
	// requested size (zero, negative or overflowing dimensions).
	ErrAllocation = errors.New("paint: surface allocation failed")

	// ErrNoOp is the parent of every "request ignored" condition. Stale or
	// malformed requests from the presentation layer degrade to no-ops that
	// satisfy errors.Is(err, ErrNoOp).
	ErrNoOp = errors.New("paint: no-op")

	// ErrInvalidIndex is returned for an out-of-range layer index.
	ErrInvalidIndex = fmt.Errorf("%w: layer index out of range", ErrNoOp)

	// ErrLastLayer is returned when deleting the only remaining layer.
	ErrLastLayer = fmt.Errorf("%w: cannot remove the last layer", ErrNoOp)

	// ErrAtBoundary is returned when moving a layer past the top or bottom of
	// the stack.
	ErrAtBoundary = fmt.Errorf("%w: layer already at stack boundary", ErrNoOp)

	// ErrNotDrawing is returned when a stroke operation needs an in-progress
	// stroke and there is none.
	ErrNotDrawing = fmt.Errorf("%w: no stroke in progress", ErrNoOp)

	// ErrStrokeInProgress is returned by StartStroke while another stroke is
	// still being drawn.
	ErrStrokeInProgress = fmt.Errorf("%w: stroke already in progress", ErrNoOp)

	// ErrInvalidStroke is returned when a stroke has no points or a
	// non-positive width.
	ErrInvalidStroke = errors.New("paint: invalid stroke")

	// ErrInvalidBrush is returned when brush parameters carry a non-positive
	// or non-finite width.
	ErrInvalidBrush = errors.New("paint: invalid brush parameters")

	// ErrInvalidPoint is returned for points with non-finite coordinates.
	ErrInvalidPoint = errors.New("paint: invalid point")

	// ErrInvalidSurface is returned when rasterizing into a nil or empty surface.
	ErrInvalidSurface = errors.New("paint: invalid surface")

	// ErrInvalidPreset is returned when brush presets cannot be decoded.
	ErrInvalidPreset = errors.New("paint: invalid brush preset")
)
