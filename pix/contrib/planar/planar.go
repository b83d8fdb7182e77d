// Copyright 2026 go-pixelcast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package planar applies the pix conversion policies element-wise over
// sample slices and single-channel 2D planes.
//
// A Plane[T] stores one channel with an explicit row stride, the shape in
// which codec pipelines hand sample buffers to conversion stages:
//
//	src := planar.NewPlane[uint16](640, 480)
//	dst := planar.NewPlane[uint8](640, 480)
//	_ = planar.ConvertSatNormPlane(dst, src)
//
// The slice helpers convert the overlapping prefix of dst and src and
// return the element count. MapParallel chunks a slice over a bounded
// worker group for large buffers.
package planar

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/goimaging/go-pixelcast/pix"
)

// Plane is a single-channel 2D sample buffer. Rows are stride elements
// apart; stride >= width, and any row padding is never converted.
type Plane[T pix.Scalar] struct {
	data   []T
	width  int
	height int
	stride int
}

// NewPlane allocates a width x height plane with stride == width.
// Non-positive dimensions yield an empty plane.
func NewPlane[T pix.Scalar](width, height int) *Plane[T] {
	if width <= 0 || height <= 0 {
		return &Plane[T]{}
	}
	return &Plane[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// PlaneOf wraps an existing buffer without copying. The buffer must hold at
// least stride*(height-1)+width elements.
func PlaneOf[T pix.Scalar](data []T, width, height, stride int) *Plane[T] {
	return &Plane[T]{data: data, width: width, height: height, stride: stride}
}

// Width returns the plane width in samples.
func (p *Plane[T]) Width() int { return p.width }

// Height returns the plane height in rows.
func (p *Plane[T]) Height() int { return p.height }

// Stride returns the distance between rows in samples.
func (p *Plane[T]) Stride() int { return p.stride }

// Row returns row y as a slice of width samples.
func (p *Plane[T]) Row(y int) []T {
	off := y * p.stride
	return p.data[off : off+p.width]
}

// At returns the sample at (x, y).
func (p *Plane[T]) At(x, y int) T {
	return p.data[y*p.stride+x]
}

// Set stores a sample at (x, y).
func (p *Plane[T]) Set(x, y int, v T) {
	p.data[y*p.stride+x] = v
}

// Map applies fn to the overlapping prefix of src and dst and returns the
// number of elements converted.
func Map[Out pix.Scalar, In pix.Scalar](dst []Out, src []In, fn func(In) Out) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = fn(src[i])
	}
	return n
}

// ConvertSlice converts src into dst with pix.Convert.
func ConvertSlice[Out pix.Scalar, In pix.Scalar](dst []Out, src []In) int {
	return Map(dst, src, pix.Convert[Out, In])
}

// ConvertSatSlice converts src into dst with pix.ConvertSat.
func ConvertSatSlice[Out pix.Scalar, In pix.Scalar](dst []Out, src []In) int {
	return Map(dst, src, pix.ConvertSat[Out, In])
}

// ConvertNormSlice converts src into dst with pix.ConvertNorm.
func ConvertNormSlice[Out pix.Scalar, In pix.Scalar](dst []Out, src []In) int {
	return Map(dst, src, pix.ConvertNorm[Out, In])
}

// ConvertSatNormSlice converts src into dst with pix.ConvertSatNorm.
func ConvertSatNormSlice[Out pix.Scalar, In pix.Scalar](dst []Out, src []In) int {
	return Map(dst, src, pix.ConvertSatNorm[Out, In])
}

// MapParallel applies fn to src chunk-wise across a bounded worker group.
// It returns ctx.Err() if the context is cancelled before all chunks run;
// dst contents are unspecified in that case. workers <= 0 uses GOMAXPROCS.
func MapParallel[Out pix.Scalar, In pix.Scalar](ctx context.Context, dst []Out, src []In, workers int, fn func(In) Out) error {
	n := min(len(dst), len(src))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (n + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				dst[i] = fn(src[i])
			}
			return nil
		})
	}
	return g.Wait()
}

// ConvertSatNormSliceParallel is ConvertSatNormSlice chunked over workers.
func ConvertSatNormSliceParallel[Out pix.Scalar, In pix.Scalar](ctx context.Context, dst []Out, src []In, workers int) error {
	return MapParallel(ctx, dst, src, workers, pix.ConvertSatNorm[Out, In])
}

// mapPlane applies fn row-wise; the planes must have equal dimensions.
func mapPlane[Out pix.Scalar, In pix.Scalar](dst *Plane[Out], src *Plane[In], fn func(In) Out) error {
	if dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("planar: plane size mismatch: %dx%d vs %dx%d",
			dst.width, dst.height, src.width, src.height)
	}
	for y := 0; y < src.height; y++ {
		Map(dst.Row(y), src.Row(y), fn)
	}
	return nil
}

// ConvertPlane converts src into dst with pix.Convert.
func ConvertPlane[Out pix.Scalar, In pix.Scalar](dst *Plane[Out], src *Plane[In]) error {
	return mapPlane(dst, src, pix.Convert[Out, In])
}

// ConvertSatPlane converts src into dst with pix.ConvertSat.
func ConvertSatPlane[Out pix.Scalar, In pix.Scalar](dst *Plane[Out], src *Plane[In]) error {
	return mapPlane(dst, src, pix.ConvertSat[Out, In])
}

// ConvertNormPlane converts src into dst with pix.ConvertNorm.
func ConvertNormPlane[Out pix.Scalar, In pix.Scalar](dst *Plane[Out], src *Plane[In]) error {
	return mapPlane(dst, src, pix.ConvertNorm[Out, In])
}

// ConvertSatNormPlane converts src into dst with pix.ConvertSatNorm.
func ConvertSatNormPlane[Out pix.Scalar, In pix.Scalar](dst *Plane[Out], src *Plane[In]) error {
	return mapPlane(dst, src, pix.ConvertSatNorm[Out, In])
}
