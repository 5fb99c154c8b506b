package paint

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{name: "css name", in: "red", want: RGB(1, 0, 0)},
		{name: "css name mixed case", in: " Black ", want: RGB(0, 0, 0)},
		{name: "hex6", in: "#00ff00", want: RGB(0, 1, 0)},
		{name: "hex3", in: "#fff", want: RGB(1, 1, 1)},
		{name: "hex8", in: "#0000ff80", want: RGBA2(0, 0, 1, 128.0/255)},
		{name: "empty", in: "", wantErr: true},
		{name: "bad digit", in: "#zzzzzz", wantErr: true},
		{name: "bad length", in: "#12345", wantErr: true},
		{name: "unknown name", in: "notacolor", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexMalformedIsBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(nope) = %+v, want Black", got)
	}
	if got := Hex("#f00"); !colorNear(got, Red) {
		t.Errorf("Hex(#f00) = %+v, want Red", got)
	}
}

func TestRGBAClamp(t *testing.T) {
	got := RGBA{R: -1, G: 2, B: math.NaN(), A: 0.5}.Clamp()
	want := RGBA{R: 0, G: 1, B: 0, A: 0.5}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestRGBARoundtrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, Red, Green, Blue, RGBA2(0.2, 0.4, 0.6, 0.8)} {
		got := FromColor(c.Color())
		if !colorNear(got, c) {
			t.Errorf("roundtrip %+v -> %+v", c, got)
		}
	}
}

func TestFromColorPremultipliedInput(t *testing.T) {
	// color.RGBA is premultiplied; FromColor must return straight alpha.
	got := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if math.Abs(got.R-1) > 0.01 || math.Abs(got.A-128.0/255) > 0.01 {
		t.Errorf("FromColor(premul half red) = %+v", got)
	}
}

func colorNear(a, b RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}
