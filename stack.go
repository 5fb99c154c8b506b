package paint

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/paint/internal/cache"
)

// LayerStack is an ordered collection of canvas-sized layers with one
// active layer. Index 0 is the bottom of the stack.
//
// The stack always holds at least one layer, the active index is always
// valid, and every layer surface has the canvas size. Operations that would
// break one of these rules are rejected with an error from the ErrNoOp
// family and leave the stack unchanged.
//
// LayerStack is not safe for concurrent use.
type LayerStack struct {
	layers     []*Layer
	active     int
	width      int
	height     int
	background RGBA
	raster     Rasterizer
	cache      *cache.Cache[uint64, *Pixmap]

	// fullKey is the cache key of the last full composite, if any.
	fullKey uint64
	hasFull bool
}

// LayerInfo is a read-only summary of one layer for a layer panel.
type LayerInfo struct {
	ID          uuid.UUID
	Name        string
	Visible     bool
	Opacity     float64
	StrokeCount int
	Active      bool
}

// NewLayerStack creates a stack of width×height with a single active layer
// named "Layer 1". It returns ErrAllocation for degenerate sizes.
func NewLayerStack(width, height int, opts ...StackOption) (*LayerStack, error) {
	o := defaultStackOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &LayerStack{
		width:      width,
		height:     height,
		background: o.background,
		raster:     NewRasterizer(o.mode),
	}
	if o.cacheBytes > 0 {
		s.cache = cache.New[uint64, *Pixmap](o.cacheBytes, func(pm *Pixmap) int64 {
			return int64(len(pm.data))
		})
	}

	first, err := newLayer("Layer 1", width, height, s.raster)
	if err != nil {
		Logger().Warn("layer stack allocation failed", "width", width, "height", height, "err", err)
		return nil, err
	}
	s.layers = []*Layer{first}
	return s, nil
}

// Size returns the canvas dimensions.
func (s *LayerStack) Size() (width, height int) {
	return s.width, s.height
}

// Background returns the color Composite starts from.
func (s *LayerStack) Background() RGBA {
	return s.background
}

// Len returns the number of layers.
func (s *LayerStack) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index i.
func (s *LayerStack) Layer(i int) (*Layer, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	return s.layers[i], nil
}

// Active returns the index of the active layer.
func (s *LayerStack) Active() int {
	return s.active
}

// ActiveLayer returns the layer strokes are committed to.
func (s *LayerStack) ActiveLayer() *Layer {
	return s.layers[s.active]
}

// SetActive makes layer i the active layer.
func (s *LayerStack) SetActive(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.active = i
	return nil
}

// AddLayer appends a new transparent layer on top of the stack and makes it
// active. An empty name becomes "Layer N" where N is the new layer count.
// It returns the new layer's index. If the surface cannot be allocated the
// stack is left unchanged.
func (s *LayerStack) AddLayer(name string) (int, error) {
	if normalizeName(name) == "" {
		name = fmt.Sprintf("Layer %d", len(s.layers)+1)
	}
	l, err := newLayer(name, s.width, s.height, s.raster)
	if err != nil {
		Logger().Warn("layer allocation failed", "name", name, "err", err)
		return 0, err
	}
	s.layers = append(s.layers, l)
	s.active = len(s.layers) - 1
	Logger().Debug("layer added", "name", l.name, "index", s.active, "count", len(s.layers))
	return s.active, nil
}

// RemoveLayer deletes layer i. The last remaining layer cannot be removed
// (ErrLastLayer).
//
// The active index is repaired so it stays valid: removing the active layer
// selects the layer below it (or the new bottom layer), removing a layer
// below the active one shifts the index down by one, and removing a layer
// above it changes nothing.
func (s *LayerStack) RemoveLayer(i int) error {
	if len(s.layers) <= 1 {
		return ErrLastLayer
	}
	if err := s.checkIndex(i); err != nil {
		return err
	}
	name := s.layers[i].name

	copy(s.layers[i:], s.layers[i+1:])
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]

	switch {
	case i == s.active:
		s.active = min(max(i-1, 0), len(s.layers)-1)
	case s.active > i:
		s.active--
	}
	Logger().Debug("layer removed", "name", name, "index", i, "active", s.active)
	return nil
}

// MoveLayerUp swaps layer i with the layer above it (i+1). The active index
// follows the layer it pointed at.
func (s *LayerStack) MoveLayerUp(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if i == len(s.layers)-1 {
		return ErrAtBoundary
	}
	s.swap(i, i+1)
	return nil
}

// MoveLayerDown swaps layer i with the layer below it (i-1). The active
// index follows the layer it pointed at.
func (s *LayerStack) MoveLayerDown(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if i == 0 {
		return ErrAtBoundary
	}
	s.swap(i, i-1)
	return nil
}

func (s *LayerStack) swap(i, j int) {
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
	switch s.active {
	case i:
		s.active = j
	case j:
		s.active = i
	}
	Logger().Debug("layer moved", "name", s.layers[j].name, "from", i, "to", j)
}

// SetLayerOpacity sets the opacity of layer i, clamped to [0, 1].
func (s *LayerStack) SetLayerOpacity(i int, v float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.layers[i].SetOpacity(v)
	return nil
}

// SetLayerVisible shows or hides layer i.
func (s *LayerStack) SetLayerVisible(i int, v bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.layers[i].SetVisible(v)
	return nil
}

// RenameLayer renames layer i. See Layer.SetName.
func (s *LayerStack) RenameLayer(i int, name string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.layers[i].SetName(name)
	return nil
}

// Layers returns a summary of every layer, bottom to top.
func (s *LayerStack) Layers() []LayerInfo {
	out := make([]LayerInfo, len(s.layers))
	for i, l := range s.layers {
		out[i] = LayerInfo{
			ID:          l.id,
			Name:        l.name,
			Visible:     l.visible,
			Opacity:     l.opacity,
			StrokeCount: len(l.strokes),
			Active:      i == s.active,
		}
	}
	return out
}

// TotalStrokeCount returns the number of committed strokes over all layers.
func (s *LayerStack) TotalStrokeCount() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.strokes)
	}
	return n
}

// ClearActive clears the active layer's pixels and history.
func (s *LayerStack) ClearActive() {
	s.layers[s.active].Clear()
}

// ClearAll clears every layer's pixels and history. Layer metadata is kept.
func (s *LayerStack) ClearAll() {
	for _, l := range s.layers {
		l.Clear()
	}
}

// Resize replaces every layer surface with a blank width×height one.
//
// Resize is lossy: pixel content and stroke history of every layer are
// discarded, only names, visibility and opacity survive. On ErrAllocation
// nothing changes.
func (s *LayerStack) Resize(width, height int) error {
	surfaces := make([]*Pixmap, len(s.layers))
	for i := range s.layers {
		pm, err := NewPixmap(width, height)
		if err != nil {
			Logger().Warn("resize allocation failed", "width", width, "height", height, "err", err)
			return err
		}
		surfaces[i] = pm
	}
	for i, l := range s.layers {
		l.reset(surfaces[i])
	}
	s.width, s.height = width, height
	if s.cache != nil {
		Logger().Debug("composite cache cleared", "entries", s.cache.Len(), "bytes", s.cache.Cost())
		s.cache.Clear()
		s.cache.ResetStats()
		s.hasFull = false
	}
	Logger().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// Composite returns a new canvas-sized surface holding the background color
// with every visible layer blended over it, bottom to top, each with its
// opacity. Hidden layers and layers with zero opacity contribute nothing.
// The stack is not modified.
func (s *LayerStack) Composite() *Pixmap {
	if s.cache == nil {
		dst := s.blankCanvas()
		s.blendRange(dst, 0, len(s.layers))
		return dst
	}
	return s.compositeCached()
}

// compositeCached memoizes two prefixes: everything below the active layer
// and the full stack. While strokes land on the active layer only the
// layers from the active one upwards are blended again.
func (s *LayerStack) compositeCached() *Pixmap {
	keys := s.prefixKeys()
	n := len(s.layers)

	if pm, ok := s.cache.Get(keys[n]); ok {
		st := s.cache.Stats()
		Logger().Debug("composite cache hit", "layers", n,
			"hits", st.Hits, "misses", st.Misses, "hit_rate", st.HitRate)
		return pm.Clone()
	}

	dst, ok := s.cache.Get(keys[s.active])
	if ok {
		dst = dst.Clone()
	} else {
		dst = s.blankCanvas()
		s.blendRange(dst, 0, s.active)
		s.cache.Set(keys[s.active], dst.Clone())
	}
	s.blendRange(dst, s.active, n)

	// Keep only the latest full composite. The previous one may double as
	// the prefix just used when a layer was added on top.
	if s.hasFull && s.fullKey != keys[s.active] {
		s.cache.Delete(s.fullKey)
	}
	s.fullKey, s.hasFull = keys[n], s.cache.Set(keys[n], dst.Clone())
	return dst
}

// prefixKeys fingerprints the composite inputs. keys[k] identifies the
// result of blending layers[0:k] over the background.
func (s *LayerStack) prefixKeys() []uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	}

	writeUint(uint64(s.width))
	writeUint(uint64(s.height))
	bg := s.background.premultiplied()
	_, _ = h.Write([]byte{bg.R, bg.G, bg.B, bg.A})

	keys := make([]uint64, len(s.layers)+1)
	keys[0] = h.Sum64()
	for i, l := range s.layers {
		_, _ = h.Write(l.id[:])
		writeUint(l.revision)
		vis := byte(0)
		if l.visible {
			vis = 1
		}
		_, _ = h.Write([]byte{vis, l.opacityByte()})
		keys[i+1] = h.Sum64()
	}
	return keys
}

// blendRange composites layers[from:to] onto dst.
func (s *LayerStack) blendRange(dst *Pixmap, from, to int) {
	for _, l := range s.layers[from:to] {
		if !l.visible {
			continue
		}
		dst.DrawPixmap(l.surface, l.opacity)
	}
}

// blankCanvas allocates a canvas-sized surface filled with the background.
// The stack's dimensions were validated on construction and on Resize.
func (s *LayerStack) blankCanvas() *Pixmap {
	pm := &Pixmap{width: s.width, height: s.height, data: make([]uint8, s.width*s.height*4)}
	pm.Clear(s.background)
	return pm
}

// Thumbnail returns layer i scaled down to fit within maxW×maxH, keeping
// its aspect ratio. Layers smaller than the box are returned at full size.
// The image holds premultiplied pixels, as image.RGBA does.
func (s *LayerStack) Thumbnail(i, maxW, maxH int) (*image.RGBA, error) {
	l, err := s.Layer(i)
	if err != nil {
		return nil, err
	}
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("%w: thumbnail box %dx%d", ErrAllocation, maxW, maxH)
	}
	scale := min(float64(maxW)/float64(s.width), float64(maxH)/float64(s.height), 1)
	w := max(int(float64(s.width)*scale+0.5), 1)
	h := max(int(float64(s.height)*scale+0.5), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	src := l.surface.view()
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// checkIndex returns ErrInvalidIndex unless 0 <= i < Len().
func (s *LayerStack) checkIndex(i int) error {
	if i < 0 || i >= len(s.layers) {
		return fmt.Errorf("%w: %d (have %d layers)", ErrInvalidIndex, i, len(s.layers))
	}
	return nil
}
