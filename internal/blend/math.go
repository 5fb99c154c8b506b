package blend

// div255 divides x by 255 with round-to-nearest, without a hardware divide.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every product of two
// bytes (0..65025), which keeps blending deterministic and symmetric.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255 with rounding.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// Scale converts a unit-range value to a byte with rounding, clamping
// out-of-range and NaN inputs.
func Scale(v float64) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
