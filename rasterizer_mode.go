package paint

// RasterizerMode controls which coverage algorithm turns brush stamps into
// an 8-bit coverage mask.
//
// Both modes are deterministic: identical strokes on identical surfaces
// produce pixel-identical results. They differ slightly in edge shape, so a
// stack should keep one mode for its whole lifetime.
type RasterizerMode int

const (
	// RasterizerSDF computes coverage analytically from the signed distance
	// to each stamp circle, with a smoothstep ramp at the edge (default).
	RasterizerSDF RasterizerMode = iota

	// RasterizerVector emits every stamp as a Bézier circle into the
	// golang.org/x/image/vector area-coverage rasterizer.
	RasterizerVector
)

// String returns the rasterizer mode name.
func (m RasterizerMode) String() string {
	switch m {
	case RasterizerSDF:
		return "SDF"
	case RasterizerVector:
		return "Vector"
	default:
		return "Unknown"
	}
}
