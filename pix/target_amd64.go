//go:build amd64

package pix

import "golang.org/x/sys/cpu"

func init() {
	// ROUNDSS/ROUNDSD arrived with SSE4.1.
	hasNativeRoundEven = cpu.X86.HasSSE41
}
