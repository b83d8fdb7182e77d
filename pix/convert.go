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

// This file is the converter dispatch. Each (source kind, destination kind)
// pair selects one of five formula families: float->float, int->float,
// float->int, int->int same sign, int->int cross sign. A boolean
// destination coerces truth under every policy, and a same-type conversion
// is the exact identity. The formulas follow the normalized sample model:
// integers stand for [0,1] (unsigned) or [-1,1] (signed) fractions of
// their maximum magnitude.

// Convert converts value to type Out, rounding float sources bound for
// integer destinations to the nearest integer. The result is unspecified
// (but never unsafe) when the mathematical result is not representable in
// Out; use ConvertSat when saturation is needed.
//
//	Convert[uint8](100.2) // == 100
//	Convert[uint8](100.7) // == 101
//	Convert[uint8](-5)    // discouraged, wraps
//	Convert[uint8](-5.0)  // unspecified
func Convert[Out Scalar, In Scalar](value In) Out {
	if same, ok := any(value).(Out); ok {
		return same
	}
	out := infoOf[Out]()
	in := widen(value)
	switch {
	case out.kind == KindBool:
		return boolTo[Out](in.truthy())
	case out.kind == KindFloat:
		return fromFloat[Out](in.float())
	case in.k == KindFloat:
		r := roundFor(out.bits, in.f)
		if out.kind == KindSigned {
			return fromSigned[Out](int64(r))
		}
		return fromUnsigned[Out](uint64(r))
	case in.k == KindSigned:
		return fromSigned[Out](in.i)
	default:
		return fromUnsigned[Out](in.u)
	}
}

// ConvertSat converts value to type Out, rounding float sources bound for
// integer destinations and saturating the result into Out's range.
//
//	ConvertSat[uint8](-1)       // == 0
//	ConvertSat[uint8](1000)     // == 255
//	ConvertSat[int8](-1000.0)   // == -128
//	ConvertSat[uint32](-1000.0) // == 0
func ConvertSat[Out Scalar, In Scalar](value In) Out {
	if same, ok := any(value).(Out); ok {
		return same
	}
	out := infoOf[Out]()
	in := widen(value)
	switch out.kind {
	case KindBool:
		return boolTo[Out](in.truthy())
	case KindFloat:
		return fromFloat[Out](in.float())
	default:
		if in.k == KindFloat {
			in.f = roundFor(out.bits, in.f)
		}
		return clampToInt[Out](out, in)
	}
}

// ConvertNorm converts value to type Out preserving normalized dynamic
// range: an integer source is read as a fraction of its maximum magnitude,
// and an integer destination receives the fraction scaled to its own
// maximum. The result is unspecified when it does not fit Out; use
// ConvertSatNorm when saturation is needed.
//
//	ConvertNorm[float32](uint8(255)) // == 1.0
//	ConvertNorm[uint8](0.502)        // == 128
//	ConvertNorm[int8](-1.0)          // == -127
//	ConvertNorm[uint8](int8(-1))     // unspecified
func ConvertNorm[Out Scalar, In Scalar](value In) Out {
	if same, ok := any(value).(Out); ok {
		return same
	}
	out := infoOf[Out]()
	in := widen(value)
	switch {
	case out.kind == KindBool:
		return boolTo[Out](in.truthy())
	case in.k == KindFloat && out.kind == KindFloat:
		return fromFloat[Out](in.f)
	case out.kind == KindFloat:
		return fromFloat[Out](in.float() / in.mag)
	case in.k == KindFloat:
		return normToInt[Out](out, in.f)
	default:
		return intToIntNorm[Out](out, in, false)
	}
}

// ConvertSatNorm converts value to type Out preserving normalized dynamic
// range and saturating into Out's range. This is the only operation that is
// both range-safe and dynamic-range-preserving.
//
//	ConvertSatNorm[uint8](0.502)          // == 128
//	ConvertSatNorm[int8](int16(21845))    // == 85 scaled: 21845*127/32767
//	ConvertSatNorm[uint8](int8(-1))       // == 0
func ConvertSatNorm[Out Scalar, In Scalar](value In) Out {
	if same, ok := any(value).(Out); ok {
		return same
	}
	out := infoOf[Out]()
	in := widen(value)
	switch {
	case out.kind == KindBool:
		return boolTo[Out](in.truthy())
	case in.k == KindFloat && out.kind == KindFloat:
		return fromFloat[Out](in.f)
	case out.kind == KindFloat:
		return fromFloat[Out](in.float() / in.mag)
	case in.k == KindFloat:
		return satNormToInt[Out](out, in.f)
	default:
		return intToIntNorm[Out](out, in, true)
	}
}

// normToInt scales a normalized fraction into an integer destination
// without saturation: round(f * max(Out)).
func normToInt[Out Scalar](out typeInfo, f float64) Out {
	r := roundFor(out.bits, f*out.mag)
	if out.kind == KindSigned {
		return fromSigned[Out](int64(r))
	}
	return fromUnsigned[Out](uint64(r))
}

// satNormToInt scales a normalized fraction into an integer destination
// with saturation. On the device target an unsigned destination scales the
// [0,1]-saturated fraction directly, the way accelerator kernels do, which
// also maps NaN to zero.
func satNormToInt[Out Scalar](out typeInfo, f float64) Out {
	if out.kind == KindSigned {
		r := roundFor(out.bits, f*out.mag)
		return fromSigned[Out](clampFToS(r, out.imin, out.imax))
	}
	if deviceRounding {
		r := roundFor(out.bits, saturate01(f)*out.mag)
		return fromUnsigned[Out](uint64(r))
	}
	r := roundFor(out.bits, f*out.mag)
	return fromUnsigned[Out](clampFToU(r, out.umax))
}

// intToIntNorm rescales one integer type onto another through a normalized
// float64 intermediate.
//
// Same-signedness pairs scale linearly by max(Out)/max(In) and clamp the
// rounded result, so the saturating variant coincides with the plain one.
// Cross-signedness pairs remap the source fraction between [0,1] and
// [-1,1] first; only the saturating variant clamps the final stage.
func intToIntNorm[Out Scalar](out typeInfo, in wide, sat bool) Out {
	inSigned := in.k == KindSigned
	outSigned := out.kind == KindSigned
	switch {
	case inSigned == outSigned:
		r := roundFor(out.bits, in.float()*(out.mag/in.mag))
		if outSigned {
			return fromSigned[Out](clampFToS(r, out.imin, out.imax))
		}
		return fromUnsigned[Out](clampFToU(r, out.umax))
	case inSigned:
		// [-1,1] onto [0,1]
		f := 0.5 * (1 + in.float()/in.mag)
		if sat {
			return satNormToInt[Out](out, f)
		}
		return normToInt[Out](out, f)
	default:
		// [0,1] onto [-1,1]
		f := -1 + 2*(in.float()/in.mag)
		if sat {
			return satNormToInt[Out](out, f)
		}
		return normToInt[Out](out, f)
	}
}

// wide is a widened scalar value: exactly one of i, u or f holds the value,
// selected by k (bool widens as unsigned 0/1). mag is the source type's
// positive full-scale magnitude for the normalizing formulas.
type wide struct {
	k   Kind
	i   int64
	u   uint64
	f   float64
	mag float64
}

// float returns the widened value as a float64.
func (w wide) float() float64 {
	switch w.k {
	case KindSigned:
		return float64(w.i)
	case KindUnsigned:
		return float64(w.u)
	default:
		return w.f
	}
}

// truthy reports whether the widened value is nonzero. NaN is nonzero.
func (w wide) truthy() bool {
	switch w.k {
	case KindSigned:
		return w.i != 0
	case KindUnsigned:
		return w.u != 0
	default:
		return w.f != 0
	}
}

// widen lifts a scalar into its wide representation.
func widen[In Scalar](v In) wide {
	var w wide
	switch x := any(v).(type) {
	case bool:
		w.k = KindUnsigned
		if x {
			w.u = 1
		}
		w.mag = 1
	case int8:
		w = wide{k: KindSigned, i: int64(x), mag: math.MaxInt8}
	case int16:
		w = wide{k: KindSigned, i: int64(x), mag: math.MaxInt16}
	case int32:
		w = wide{k: KindSigned, i: int64(x), mag: math.MaxInt32}
	case int64:
		w = wide{k: KindSigned, i: x, mag: float64(math.MaxInt64)}
	case uint8:
		w = wide{k: KindUnsigned, u: uint64(x), mag: math.MaxUint8}
	case uint16:
		w = wide{k: KindUnsigned, u: uint64(x), mag: math.MaxUint16}
	case uint32:
		w = wide{k: KindUnsigned, u: uint64(x), mag: math.MaxUint32}
	case uint64:
		w = wide{k: KindUnsigned, u: x, mag: float64(math.MaxUint64)}
	case float32:
		w = wide{k: KindFloat, f: float64(x), mag: 1}
	case float64:
		w = wide{k: KindFloat, f: x, mag: 1}
	case Float16:
		w = wide{k: KindFloat, f: x.Float64(), mag: 1}
	}
	return w
}

// fromSigned materializes a signed wide value into an integer destination.
// Out-of-range values truncate the way Go integer conversions do.
func fromSigned[Out Scalar](x int64) Out {
	var v Out
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(x)
	case *int16:
		*p = int16(x)
	case *int32:
		*p = int32(x)
	case *int64:
		*p = x
	case *uint8:
		*p = uint8(x)
	case *uint16:
		*p = uint16(x)
	case *uint32:
		*p = uint32(x)
	case *uint64:
		*p = uint64(x)
	}
	return v
}

// fromUnsigned materializes an unsigned wide value into an integer
// destination.
func fromUnsigned[Out Scalar](u uint64) Out {
	var v Out
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(u)
	case *int16:
		*p = int16(u)
	case *int32:
		*p = int32(u)
	case *int64:
		*p = int64(u)
	case *uint8:
		*p = uint8(u)
	case *uint16:
		*p = uint16(u)
	case *uint32:
		*p = uint32(u)
	case *uint64:
		*p = u
	}
	return v
}

// fromFloat materializes a float64 into a float destination.
func fromFloat[Out Scalar](f float64) Out {
	var v Out
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	case *Float16:
		*p = NewFloat16FromFloat64(f)
	}
	return v
}

// boolTo materializes a truth value into a boolean destination.
func boolTo[Out Scalar](b bool) Out {
	var v Out
	if p, ok := any(&v).(*bool); ok {
		*p = b
	}
	return v
}
