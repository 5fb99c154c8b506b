// Package blend implements the premultiplied Porter-Duff operators used to
// paint brush coverage onto layer surfaces and to composite layers.
//
// All operations work on premultiplied RGBA8 values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a Porter-Duff compositing operation.
type Mode uint8

const (
	// SourceOver paints source on top of destination. Result: S + D*(1-Sa).
	SourceOver Mode = iota
	// DestinationOut removes destination where source is opaque. Result: D*(1-Sa).
	DestinationOut
	// Source replaces destination. Result: S.
	Source
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case DestinationOut:
		return "DestinationOut"
	case Source:
		return "Source"
	default:
		return "Unknown"
	}
}

// Func is the signature for a per-pixel blend operation on premultiplied values.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for mode.
// Unknown modes fall back to SourceOver.
func FuncFor(mode Mode) Func {
	switch mode {
	case DestinationOut:
		return destinationOut
	case Source:
		return source
	default:
		return sourceOver
	}
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
		return dr, dg, db, da
	}
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// destinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// source replaces destination with source.
func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}
