//go:build !pixelcast_device

package pix

import "math"

// Host rounding target: round halves away from zero, all widths.

const deviceRounding = false

func roundNarrow(f float64) float64 {
	return math.Round(f)
}

func roundWide(f float64) float64 {
	return math.Round(f)
}
