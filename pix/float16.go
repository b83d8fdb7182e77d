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

// Float16 is an IEEE 754 half-precision (binary16) sample value, stored as
// raw bits. Image pipelines use it for HDR sample buffers; this package
// treats it as a float-kind scalar with a representable range of ±65504.
//
// Layout: sign (1 bit) | exponent (5 bits, bias 15) | mantissa (10 bits).
type Float16 uint16

// Special Float16 bit patterns.
const (
	Float16Zero     Float16 = 0x0000
	Float16One      Float16 = 0x3C00
	Float16NegOne   Float16 = 0xBC00
	Float16MaxValue Float16 = 0x7BFF // 65504, largest finite value
	Float16MinValue Float16 = 0xFBFF // -65504
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00 // canonical quiet NaN

	float16MaxFinite = 65504.0
)

// Float16FromBits reinterprets raw bits as a Float16.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the raw bit representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// IsNaN reports whether h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x03FF != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// Float32 widens h to float32. Zeros, denormals, infinities and NaN are
// all preserved.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x03FF

	switch exp {
	case 0:
		if mant == 0 {
			// signed zero
			return math.Float32frombits(sign)
		}
		// Denormal: normalize by shifting the mantissa up until the
		// implicit leading bit appears.
		e := uint32(127 - 15 + 1)
		for mant&0x0400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x03FF
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		// NaN, keep the quiet bit and payload
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
	}
}

// Float64 widens h to float64.
func (h Float16) Float64() float64 {
	return float64(h.Float32())
}

// NewFloat16 narrows a float32 to Float16, rounding to nearest even.
// Values beyond ±65504 become infinities; tiny values flush through the
// denormal range down to signed zero.
func NewFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int(bits>>23&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case exp >= 0x1F:
		if int(bits>>23&0xFF) == 0xFF {
			if mant != 0 {
				// NaN, keep the quiet bit and part of the payload
				return Float16(sign | 0x7E00 | uint16(mant>>13))
			}
			return Float16(sign | 0x7C00)
		}
		// finite overflow
		return Float16(sign | 0x7C00)
	case exp <= 0:
		if exp < -10 {
			// underflows even the smallest denormal
			return Float16(sign)
		}
		// Denormal result: shift in the implicit leading bit, then round
		// to nearest even on the bits dropped by the shift.
		mant |= 0x800000
		shift := uint(14 - exp)
		half := uint32(1) << (shift - 1)
		rounded := mant >> shift
		if rem := mant & (1<<shift - 1); rem > half || (rem == half && rounded&1 != 0) {
			rounded++
		}
		return Float16(sign | uint16(rounded))
	default:
		// Round the 13 dropped mantissa bits to nearest even.
		rounded := mant >> 13
		if rem := mant & 0x1FFF; rem > 0x1000 || (rem == 0x1000 && rounded&1 != 0) {
			rounded++
			if rounded == 0x400 {
				rounded = 0
				exp++
				if exp >= 0x1F {
					return Float16(sign | 0x7C00)
				}
			}
		}
		return Float16(sign | uint16(exp)<<10 | uint16(rounded))
	}
}

// NewFloat16FromFloat64 narrows a float64 to Float16.
func NewFloat16FromFloat64(f float64) Float16 {
	return NewFloat16(float32(f))
}
