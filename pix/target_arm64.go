//go:build arm64

package pix

import "golang.org/x/sys/cpu"

func init() {
	// FRINTN is part of the baseline NEON instruction set.
	hasNativeRoundEven = cpu.ARM64.HasASIMD
}
