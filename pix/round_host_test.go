//go:build !pixelcast_device

package pix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostRoundingTiesAwayFromZero(t *testing.T) {
	assert.Equal(t, int32(3), Convert[int32](2.5))
	assert.Equal(t, int32(-3), Convert[int32](-2.5))
	assert.Equal(t, int32(1), Convert[int32](0.5))
	assert.Equal(t, int64(3), Convert[int64](2.5))
	assert.Equal(t, int64(-3), Convert[int64](-2.5))
	assert.Equal(t, uint8(4), Convert[uint8](3.5))
}

func TestHostTarget(t *testing.T) {
	assert.Equal(t, TargetHost, ActiveTarget())
	assert.Equal(t, "host", ActiveTarget().String())
}
