//go:build pixelcast_device

package pix

import "math"

// Device rounding target: matches accelerator hardware. Destinations up to
// 32 bits use the round-to-nearest-even instructions; 64-bit destinations
// have no hardware rounding and are emulated as floor(f + 0.5), which
// resolves exact halves upward instead of to even.

const deviceRounding = true

func roundNarrow(f float64) float64 {
	return math.RoundToEven(f)
}

func roundWide(f float64) float64 {
	return math.Floor(f + 0.5)
}
