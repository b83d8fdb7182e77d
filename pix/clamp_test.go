package pix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSignedNarrowing(t *testing.T) {
	assert.Equal(t, int8(127), Clamp[int8](int16(300)))
	assert.Equal(t, int8(-128), Clamp[int8](int16(-300)))
	assert.Equal(t, int8(42), Clamp[int8](int16(42)))
	assert.Equal(t, int32(math.MaxInt32), Clamp[int32](int64(math.MaxInt64)))
	assert.Equal(t, int32(math.MinInt32), Clamp[int32](int64(math.MinInt64)))
}

func TestClampCrossSignExactWidth(t *testing.T) {
	// Same-width pairs where the extremes of one side are unrepresentable
	// in the other.
	assert.Equal(t, int32(math.MaxInt32), Clamp[int32](uint32(0x80000000)))
	assert.Equal(t, int32(0x7ffffffe), Clamp[int32](uint32(0x7ffffffe)))
	assert.Equal(t, uint32(0), Clamp[uint32](int32(-7)))
	assert.Equal(t, uint32(123), Clamp[uint32](int32(123)))
	assert.Equal(t, uint32(math.MaxUint32), Clamp[uint32](int64(math.MaxInt64)))
	assert.Equal(t, int32(math.MaxInt32), Clamp[int32](uint64(math.MaxUint64)))
	assert.Equal(t, uint32(math.MaxUint32), Clamp[uint32](uint64(1<<33)))
	assert.Equal(t, uint64(math.MaxInt64), Clamp[uint64](int64(math.MaxInt64)))
	assert.Equal(t, uint64(0), Clamp[uint64](int64(-1)))
}

func TestClampUnsignedNarrowing(t *testing.T) {
	assert.Equal(t, uint8(255), Clamp[uint8](uint16(1000)))
	assert.Equal(t, uint8(200), Clamp[uint8](uint16(200)))
	assert.Equal(t, uint16(math.MaxUint16), Clamp[uint16](uint64(1<<40)))
}

func TestClampFloatToInt(t *testing.T) {
	// Clamp casts directly when in range: truncation, not rounding.
	assert.Equal(t, uint8(100), Clamp[uint8](100.7))
	assert.Equal(t, uint8(0), Clamp[uint8](-3.9))
	assert.Equal(t, uint8(255), Clamp[uint8](1e9))
	assert.Equal(t, int16(-32768), Clamp[int16](-1e9))
	assert.Equal(t, int64(math.MaxInt64), Clamp[int64](9.3e18))
	assert.Equal(t, int64(math.MinInt64), Clamp[int64](-9.3e18))
	assert.Equal(t, uint64(math.MaxUint64), Clamp[uint64](1e30))
	assert.Equal(t, uint8(255), Clamp[uint8](math.Inf(1)))
	assert.Equal(t, int8(-128), Clamp[int8](math.Inf(-1)))
}

func TestClampNaN(t *testing.T) {
	// NaN has no order; integer destinations get zero so the result is
	// deterministic on every architecture.
	assert.Equal(t, uint8(0), Clamp[uint8](math.NaN()))
	assert.Equal(t, int16(0), Clamp[int16](math.NaN()))
	assert.Equal(t, uint64(0), Clamp[uint64](float32(math.NaN())))
	assert.True(t, math.IsNaN(float64(Clamp[float32](math.NaN()))))
}

func TestClampFloatNarrowing(t *testing.T) {
	assert.Equal(t, float32(math.MaxFloat32), Clamp[float32](1e300))
	assert.Equal(t, float32(-math.MaxFloat32), Clamp[float32](-1e300))
	assert.Equal(t, float32(math.MaxFloat32), Clamp[float32](math.Inf(1)))
	assert.Equal(t, float32(1.5), Clamp[float32](1.5))
	assert.Equal(t, Float16MaxValue, Clamp[Float16](1e6))
	assert.Equal(t, Float16MinValue, Clamp[Float16](float32(-1e30)))
}

func TestClampBoolDestination(t *testing.T) {
	assert.True(t, Clamp[bool](int8(-3)))
	assert.True(t, Clamp[bool](0.25))
	assert.True(t, Clamp[bool](uint64(math.MaxUint64)))
	assert.False(t, Clamp[bool](int32(0)))
	assert.False(t, Clamp[bool](0.0))
}

func TestClampIdentity(t *testing.T) {
	assert.Equal(t, int8(-128), Clamp[int8](int8(-128)))
	assert.Equal(t, uint64(math.MaxUint64), Clamp[uint64](uint64(math.MaxUint64)))
	assert.Equal(t, int64(-5), Clamp[int64](int32(-5)))
	assert.Equal(t, uint16(250), Clamp[uint16](uint8(250)))
	assert.Equal(t, uint8(1), Clamp[uint8](true))
}
