package pix

// Rounding of float values bound for integer destinations is selected once
// per build, never at runtime. The default target rounds halves away from
// zero for every destination width. Building with the pixelcast_device tag
// selects rounding that matches what accelerator kernels produce: the
// hardware round-to-nearest instructions break ties to even for
// destinations of 32 bits or fewer, and destinations wider than the
// hardware integer emulate rounding as floor(f + 0.5).
//
// The two targets intentionally disagree at exact halves (2.5 rounds to 3
// on the host target and to 2 on the device target). Callers comparing
// host-computed and device-computed buffers must build both sides for the
// same target.

// roundFor applies the build target's round-to-nearest for a destination of
// the given bit width.
func roundFor(bits int, f float64) float64 {
	if bits > 32 {
		return roundWide(f)
	}
	return roundNarrow(f)
}

// saturate01 clamps f into [0, 1], mapping NaN to 0.
func saturate01(f float64) float64 {
	if f > 0 {
		if f > 1 {
			return 1
		}
		return f
	}
	return 0
}
