package blend

// Pixel is a premultiplied RGBA8 color.
type Pixel struct {
	R, G, B, A byte
}

// Premultiply converts a straight-alpha color in unit range to a
// premultiplied Pixel. Channels are clamped to [0, 1].
func Premultiply(r, g, b, a float64) Pixel {
	pa := Scale(a)
	return Pixel{
		R: MulDiv255(Scale(r), pa),
		G: MulDiv255(Scale(g), pa),
		B: MulDiv255(Scale(b), pa),
		A: pa,
	}
}

// Scaled returns p with every channel multiplied by f/255.
func (p Pixel) Scaled(f byte) Pixel {
	switch f {
	case 255:
		return p
	case 0:
		return Pixel{}
	}
	return Pixel{
		R: MulDiv255(p.R, f),
		G: MulDiv255(p.G, f),
		B: MulDiv255(p.B, f),
		A: MulDiv255(p.A, f),
	}
}

// FillMasked blends the solid color c into the RGBA8 span dst, weighting
// each pixel by the matching coverage byte in cov. len(dst) must be at least
// 4*len(cov). Zero-coverage pixels are left untouched.
func FillMasked(dst []byte, cov []byte, c Pixel, mode Mode) {
	fn := FuncFor(mode)
	for i, m := range cov {
		if m == 0 {
			continue
		}
		s := c.Scaled(m)
		o := i * 4
		dst[o+0], dst[o+1], dst[o+2], dst[o+3] = fn(
			s.R, s.G, s.B, s.A,
			dst[o+0], dst[o+1], dst[o+2], dst[o+3],
		)
	}
}

// CompositeSpan composites the premultiplied RGBA8 span src onto dst with
// SourceOver, scaling src by opacity (0-255). Both spans must hold the same
// number of pixels.
//
// An opacity of 0 leaves dst unchanged; 255 applies src at full strength.
func CompositeSpan(dst, src []byte, opacity byte) {
	if opacity == 0 {
		return
	}
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for o := 0; o+3 < n; o += 4 {
		sa := src[o+3]
		if sa == 0 && src[o] == 0 && src[o+1] == 0 && src[o+2] == 0 {
			continue
		}
		s := Pixel{R: src[o], G: src[o+1], B: src[o+2], A: sa}.Scaled(opacity)
		dst[o+0], dst[o+1], dst[o+2], dst[o+3] = sourceOver(
			s.R, s.G, s.B, s.A,
			dst[o+0], dst[o+1], dst[o+2], dst[o+3],
		)
	}
}
