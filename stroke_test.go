package paint

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"
)

func TestStrokeStamps(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		width  float64
		want   int
	}{
		{"single point is one stamp", []Point{Pt(5, 5)}, 10, 1},
		{"segment at quarter width", []Point{Pt(10, 10), Pt(20, 10)}, 10, 5},
		{"duplicate samples add nothing", []Point{Pt(3, 3), Pt(3, 3), Pt(3, 3)}, 4, 1},
		{"short hop still stamps endpoint", []Point{Pt(0, 0), Pt(0.1, 0)}, 8, 2},
		{"empty", nil, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stroke{Points: tt.points, Color: Black, Width: tt.width}
			if got := len(s.Stamps()); got != tt.want {
				t.Errorf("len(Stamps()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStrokeStampsSpacing(t *testing.T) {
	s := Stroke{Points: []Point{Pt(0, 0), Pt(97, 13), Pt(-40, 60)}, Color: Black, Width: 6}
	stamps := s.Stamps()
	step := s.StampStep()
	for i := 1; i < len(stamps); i++ {
		if d := stamps[i].Distance(stamps[i-1]); d > step+1e-9 {
			t.Fatalf("gap %v between stamps %d and %d exceeds step %v", d, i-1, i, step)
		}
	}
	last := stamps[len(stamps)-1]
	if last.Distance(Pt(-40, 60)) > 1e-9 {
		t.Errorf("last stamp = %v, want final sample", last)
	}
}

func TestStrokeStampStepMinimum(t *testing.T) {
	s := Stroke{Width: 0.4}
	if got := s.StampStep(); got != MinStampStep {
		t.Errorf("StampStep() = %v, want %v", got, MinStampStep)
	}
	s.Width = 12
	if got := s.StampStep(); got != 3 {
		t.Errorf("StampStep() = %v, want 3", got)
	}
}

func TestStrokeValidate(t *testing.T) {
	tests := []struct {
		name    string
		stroke  Stroke
		wantErr bool
	}{
		{"valid", Stroke{Points: []Point{Pt(1, 1)}, Width: 1}, false},
		{"no points", Stroke{Width: 1}, true},
		{"zero width", Stroke{Points: []Point{Pt(1, 1)}}, true},
		{"negative width", Stroke{Points: []Point{Pt(1, 1)}, Width: -3}, true},
		{"nan width", Stroke{Points: []Point{Pt(1, 1)}, Width: math.NaN()}, true},
		{"infinite point", Stroke{Points: []Point{Pt(math.Inf(1), 1)}, Width: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stroke.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidStroke) {
				t.Errorf("Validate() error = %v, want ErrInvalidStroke", err)
			}
		})
	}
}

func TestStrokeBounds(t *testing.T) {
	s := Stroke{Points: []Point{Pt(10, 10), Pt(20, 15)}, Width: 4}
	want := image.Rect(7, 7, 23, 18)
	if got := s.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if !(Stroke{}).Bounds().Empty() {
		t.Error("empty stroke should have empty bounds")
	}
}

func TestStrokeBoundsFarAway(t *testing.T) {
	s := Stroke{Points: []Point{Pt(10, 10), Pt(1e300, -1e300)}, Width: 4}
	b := s.Bounds()
	if b.Empty() || !image.Pt(10, 10).In(b) {
		t.Errorf("Bounds() = %v, want a rectangle containing (10,10)", b)
	}
}

func TestStrokeStampsWithin(t *testing.T) {
	canvas := image.Rect(0, 0, 100, 100)

	inside := Stroke{Points: []Point{Pt(10, 10), Pt(40, 30), Pt(20, 80)}, Width: 6}
	if got, want := inside.stampsWithin(canvas), inside.Stamps(); !slices.Equal(got, want) {
		t.Errorf("on-canvas stroke: got %d stamps, want the %d of Stamps()", len(got), len(want))
	}

	outside := Stroke{Points: []Point{Pt(-50, -50), Pt(-50, 500)}, Width: 6}
	if got := outside.stampsWithin(canvas); len(got) != 0 {
		t.Errorf("off-canvas stroke produced %d stamps", len(got))
	}

	// Only the visible part of a very long segment is stamped.
	long := Stroke{Points: []Point{Pt(10, 10), Pt(1e8, 10)}, Width: 1}
	got := long.stampsWithin(canvas)
	if len(got) == 0 || len(got) > 300 {
		t.Fatalf("long segment produced %d stamps, want a bounded number", len(got))
	}
	if got[0] != Pt(10, 10) {
		t.Errorf("first stamp = %v, want the sample (10,10)", got[0])
	}
	for i := 1; i < len(got); i++ {
		if d := got[i].Distance(got[i-1]); d > long.StampStep()+1e-9 {
			t.Fatalf("gap of %v between stamps %d and %d", d, i-1, i)
		}
	}
	if last := got[len(got)-1]; last.X < 101 || last.X > 103 {
		t.Errorf("last stamp = %v, want the clip edge near x=101.5", last)
	}

	// A segment entering from far away starts with its entry point.
	entering := Stroke{Points: []Point{Pt(-1e300, 50), Pt(50, 50)}, Width: 2}
	got = entering.stampsWithin(canvas)
	if len(got) == 0 || math.Abs(got[0].X-(-2)) > 1e-6 || got[len(got)-1] != Pt(50, 50) {
		t.Errorf("entering segment stamps run from %v to %v", got[0], got[len(got)-1])
	}
}

func TestStrokeClone(t *testing.T) {
	s := NewStroke(Red, 3)
	s.AddPoint(Pt(1, 2))
	c := s.Clone()
	c.AddPoint(Pt(3, 4))
	c.Points[0] = Pt(9, 9)

	if s.Len() != 1 || s.Points[0] != Pt(1, 2) {
		t.Errorf("Clone shares memory with original: %+v", s.Points)
	}
	if c.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", c.Len())
	}
}

func TestStrokeModeString(t *testing.T) {
	if StrokePaint.String() != "Paint" || StrokeErase.String() != "Erase" || StrokeMode(9).String() != "Unknown" {
		t.Error("unexpected stroke mode names")
	}
}
