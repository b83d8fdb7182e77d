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

package pix

import "math"

// This file is the clamp engine. Every comparison runs in a domain wide
// enough to hold both the source value and the destination extreme (int64,
// uint64 or float64), so the exact-width cross-sign pairs (uint32->int32,
// int64->uint32, uint64->uint32, ...) need no per-pair special cases.
//
// Clamp never rounds: a float source inside the destination range is cast
// directly, truncating toward zero. The Convert* operations round before
// they clamp.

// Clamp saturates v into the representable range of Out and returns it.
// A value already representable passes through unchanged. A boolean
// destination coerces any nonzero value to true. NaN clamps to zero for
// integer destinations and is preserved for float destinations.
func Clamp[Out Scalar, In Scalar](v In) Out {
	if same, ok := any(v).(Out); ok {
		return same
	}
	out := infoOf[Out]()
	in := widen(v)
	switch out.kind {
	case KindBool:
		return boolTo[Out](in.truthy())
	case KindFloat:
		return clampToFloat[Out](out, in.float())
	default:
		return clampToInt[Out](out, in)
	}
}

// clampToInt saturates an already-widened value into an integer destination.
func clampToInt[Out Scalar](out typeInfo, in wide) Out {
	if out.kind == KindSigned {
		var x int64
		switch in.k {
		case KindSigned:
			x = clampS(in.i, out.imin, out.imax)
		case KindUnsigned:
			x = clampUToS(in.u, out.imax)
		default:
			x = clampFToS(in.f, out.imin, out.imax)
		}
		return fromSigned[Out](x)
	}
	var u uint64
	switch in.k {
	case KindSigned:
		u = clampSToU(in.i, out.umax)
	case KindUnsigned:
		u = clampU(in.u, out.umax)
	default:
		u = clampFToU(in.f, out.umax)
	}
	return fromUnsigned[Out](u)
}

// clampToFloat saturates f into the finite range of a float destination.
// NaN passes through; infinities saturate to the finite extremes.
func clampToFloat[Out Scalar](out typeInfo, f float64) Out {
	if f <= -out.fmax {
		return fromFloat[Out](-out.fmax)
	}
	if f >= out.fmax {
		return fromFloat[Out](out.fmax)
	}
	return fromFloat[Out](f)
}

func clampS(x, lo, hi int64) int64 {
	if x <= lo {
		return lo
	}
	if x >= hi {
		return hi
	}
	return x
}

func clampU(u, hi uint64) uint64 {
	if u >= hi {
		return hi
	}
	return u
}

// clampUToS saturates an unsigned value against a signed maximum (hi >= 0).
func clampUToS(u uint64, hi int64) int64 {
	if u >= uint64(hi) {
		return hi
	}
	return int64(u)
}

// clampSToU maps negative values to zero and saturates the rest.
func clampSToU(x int64, hi uint64) uint64 {
	if x <= 0 {
		return 0
	}
	if uint64(x) >= hi {
		return hi
	}
	return uint64(x)
}

// clampFToS compares in float64 before narrowing. float64(lo) and
// float64(hi) are exact for every signed extreme up to ±2^63, so the range
// check happens before any lossy conversion.
func clampFToS(f float64, lo, hi int64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	if f <= float64(lo) {
		return lo
	}
	if f >= float64(hi) {
		return hi
	}
	return int64(f)
}

// clampFToU is clampFToS for unsigned destinations; float64(hi) is exact
// (2^64 for the uint64 maximum), so f >= float64(hi) catches every value
// the direct conversion could not represent.
func clampFToU(f float64, hi uint64) uint64 {
	if math.IsNaN(f) {
		return 0
	}
	if f <= 0 {
		return 0
	}
	if f >= float64(hi) {
		return hi
	}
	return uint64(f)
}
