package planar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goimaging/go-pixelcast/pix"
)

func TestNewPlane(t *testing.T) {
	p := NewPlane[uint8](7, 3)
	assert.Equal(t, 7, p.Width())
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 7, p.Stride())
	assert.Len(t, p.Row(2), 7)

	empty := NewPlane[uint8](0, 5)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 0, empty.Height())
}

func TestPlaneAtSet(t *testing.T) {
	p := NewPlane[int16](4, 2)
	p.Set(3, 1, -42)
	assert.Equal(t, int16(-42), p.At(3, 1))
	assert.Equal(t, int16(-42), p.Row(1)[3])
}

func TestPlaneOfStride(t *testing.T) {
	// 3 used samples per row inside a stride-5 buffer; padding stays put.
	buf := make([]uint8, 5*2)
	for i := range buf {
		buf[i] = 200
	}
	src := PlaneOf(buf, 3, 2, 5)
	dst := NewPlane[float32](3, 2)
	require.NoError(t, ConvertNormPlane(dst, src))
	assert.InDelta(t, 200.0/255.0, float64(dst.At(0, 0)), 1e-6)
	assert.Equal(t, uint8(200), buf[3]) // padding untouched
}

func TestConvertSlices(t *testing.T) {
	src := []int16{0, 16384, 32767, -32768, 300}
	dst := make([]uint8, 5)

	n := ConvertSatSlice(dst, src)
	assert.Equal(t, 5, n)
	assert.Equal(t, []uint8{0, 255, 255, 0, 255}, dst)

	n = ConvertSatNormSlice(dst, src)
	assert.Equal(t, 5, n)
	for i, v := range src {
		assert.Equal(t, pix.ConvertSatNorm[uint8](v), dst[i])
	}
}

func TestConvertSlicePrefix(t *testing.T) {
	src := []float32{0.1, 0.9, 0.5}
	dst := make([]uint8, 2)
	n := ConvertNormSlice(dst, src)
	assert.Equal(t, 2, n)
	assert.Equal(t, pix.ConvertNorm[uint8](float32(0.1)), dst[0])
	assert.Equal(t, pix.ConvertNorm[uint8](float32(0.9)), dst[1])
}

func TestConvertPlaneSizeMismatch(t *testing.T) {
	dst := NewPlane[uint8](4, 4)
	src := NewPlane[uint16](4, 5)
	err := ConvertSatPlane(dst, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestConvertSatNormPlane(t *testing.T) {
	src := NewPlane[uint16](16, 4)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			src.Set(x, y, uint16(x*4369)) // 0..65535 across the row
		}
	}
	dst := NewPlane[uint8](16, 4)
	require.NoError(t, ConvertSatNormPlane(dst, src))
	assert.Equal(t, uint8(0), dst.At(0, 0))
	assert.Equal(t, uint8(255), dst.At(15, 3))
	for x := 0; x < 16; x++ {
		assert.Equal(t, pix.ConvertSatNorm[uint8](src.At(x, 1)), dst.At(x, 1))
	}
}

func TestMapParallelMatchesSerial(t *testing.T) {
	src := make([]float32, 10000)
	for i := range src {
		src[i] = float32(i)/5000 - 1 // [-1, 1)
	}
	serial := make([]int16, len(src))
	ConvertSatNormSlice(serial, src)

	parallel := make([]int16, len(src))
	err := ConvertSatNormSliceParallel(context.Background(), parallel, src, 4)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestMapParallelDefaultWorkers(t *testing.T) {
	src := []uint8{0, 127, 255}
	dst := make([]float64, 3)
	err := MapParallel(context.Background(), dst, src, 0, pix.ConvertNorm[float64, uint8])
	require.NoError(t, err)
	assert.Equal(t, 1.0, dst[2])
}

func TestMapParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := make([]float32, 1<<16)
	dst := make([]uint8, len(src))
	err := ConvertSatNormSliceParallel(ctx, dst, src, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
