//go:build !amd64 && !arm64

package pix

func init() {
	// Other architectures fall back to library rounding.
	hasNativeRoundEven = false
}
