package pix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetString(t *testing.T) {
	assert.Equal(t, "host", TargetHost.String())
	assert.Equal(t, "device", TargetDevice.String())
	assert.Equal(t, "unknown", Target(9).String())
}

func TestHasNativeRoundEven(t *testing.T) {
	// Detection is architecture-dependent; the probe just has to have run.
	t.Logf("native round-to-even: %v", HasNativeRoundEven())
}

func TestSaturate01(t *testing.T) {
	assert.Equal(t, 0.0, saturate01(-2))
	assert.Equal(t, 0.0, saturate01(0))
	assert.Equal(t, 0.25, saturate01(0.25))
	assert.Equal(t, 1.0, saturate01(1))
	assert.Equal(t, 1.0, saturate01(7))
}
