package paint

import (
	"errors"
	"math"
	"testing"
)

func TestNewLayer(t *testing.T) {
	l, err := NewLayer("  Sketch ", 32, 16)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	if l.Name() != "Sketch" {
		t.Errorf("Name() = %q, want %q", l.Name(), "Sketch")
	}
	if l.Width() != 32 || l.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", l.Width(), l.Height())
	}
	if !l.Visible() || l.Opacity() != 1 {
		t.Errorf("Visible=%v Opacity=%v, want true and 1", l.Visible(), l.Opacity())
	}
	if !l.Surface().IsTransparent() {
		t.Error("new layer surface is not transparent")
	}
	if l.StrokeCount() != 0 || l.Revision() != 0 {
		t.Errorf("StrokeCount=%d Revision=%d, want 0 and 0", l.StrokeCount(), l.Revision())
	}
}

func TestNewLayerInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {1 << 20, 1 << 20}} {
		if _, err := NewLayer("x", sz[0], sz[1]); !errors.Is(err, ErrAllocation) {
			t.Errorf("NewLayer(%d, %d) error = %v, want ErrAllocation", sz[0], sz[1], err)
		}
	}
}

func TestLayerIDsAreUnique(t *testing.T) {
	a, _ := NewLayer("a", 4, 4)
	b, _ := NewLayer("a", 4, 4)
	if a.ID() == b.ID() {
		t.Error("two layers share an ID")
	}
}

func TestLayerAddStroke(t *testing.T) {
	l, _ := NewLayer("ink", 40, 40)
	s := Stroke{Points: []Point{Pt(10, 10), Pt(30, 30)}, Color: Black, Width: 4}
	if err := l.AddStroke(s); err != nil {
		t.Fatalf("AddStroke: %v", err)
	}
	if l.StrokeCount() != 1 || l.Revision() != 1 {
		t.Errorf("StrokeCount=%d Revision=%d, want 1 and 1", l.StrokeCount(), l.Revision())
	}
	if l.Surface().RGBAAt(20, 20).A != 255 {
		t.Error("stroke was not rasterized onto the surface")
	}

	// History holds a copy: mutating the caller's stroke or the returned
	// history must not leak into the layer.
	s.Points[0] = Pt(0, 0)
	h := l.Strokes()
	h[0].Points[1] = Pt(99, 99)
	if got := l.Strokes()[0].Points; got[0] != Pt(10, 10) || got[1] != Pt(30, 30) {
		t.Errorf("history was mutated through an alias: %v", got)
	}
}

func TestLayerAddStrokeFailureKeepsSync(t *testing.T) {
	l, _ := NewLayer("ink", 16, 16)
	before := l.Surface().Clone()
	err := l.AddStroke(Stroke{Color: Black, Width: 3})
	if !errors.Is(err, ErrInvalidStroke) {
		t.Fatalf("AddStroke error = %v, want ErrInvalidStroke", err)
	}
	if l.StrokeCount() != 0 || l.Revision() != 0 || !l.Surface().Equal(before) {
		t.Error("failed AddStroke changed the layer")
	}
}

func TestLayerClear(t *testing.T) {
	l, _ := NewLayer("ink", 16, 16)
	_ = l.AddStroke(Stroke{Points: []Point{Pt(8, 8)}, Color: Red, Width: 6})
	l.Clear()
	if !l.Surface().IsTransparent() {
		t.Error("Clear left pixels behind")
	}
	if l.StrokeCount() != 0 {
		t.Errorf("StrokeCount() = %d after Clear, want 0", l.StrokeCount())
	}
	if l.Revision() != 2 {
		t.Errorf("Revision() = %d, want 2", l.Revision())
	}
}

func TestLayerSetOpacity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	l, _ := NewLayer("x", 2, 2)
	for _, tt := range tests {
		l.SetOpacity(tt.in)
		if got := l.Opacity(); got != tt.want {
			t.Errorf("SetOpacity(%v): Opacity() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLayerSetName(t *testing.T) {
	l, _ := NewLayer("Layer 1", 2, 2)

	l.SetName("   ")
	if l.Name() != "Layer 1" {
		t.Errorf("blank rename changed name to %q", l.Name())
	}

	// "e" + combining acute accent normalizes to the precomposed form.
	l.SetName("Cafe\u0301")
	if l.Name() != "Caf\u00e9" {
		t.Errorf("Name() = %q, want NFC %q", l.Name(), "Caf\u00e9")
	}
}

func TestLayerMetadataDoesNotBumpRevision(t *testing.T) {
	l, _ := NewLayer("x", 2, 2)
	l.SetName("y")
	l.SetVisible(false)
	l.SetOpacity(0.3)
	if l.Revision() != 0 {
		t.Errorf("Revision() = %d after metadata changes, want 0", l.Revision())
	}
}
