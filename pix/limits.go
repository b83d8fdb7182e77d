package pix

import "math"

// This file is the range model: an explicit, enumerated mapping from each
// supported scalar type to its exact representable minimum and maximum.
// Float maxima are the largest finite values, never +Inf.

// MaxValue returns the maximum representable value of type T.
func MaxValue[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = true
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	case *Float16:
		*p = Float16MaxValue
	}
	return v
}

// MinValue returns the minimum representable value of type T.
func MinValue[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = false
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *uint8:
		*p = 0
	case *uint16:
		*p = 0
	case *uint32:
		*p = 0
	case *uint64:
		*p = 0
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	case *Float16:
		*p = Float16MinValue
	}
	return v
}

// typeInfo describes one scalar type for conversion dispatch. Only the
// fields matching kind are meaningful: imin/imax for KindSigned, umax for
// KindUnsigned, fmax for KindFloat. mag is the positive full-scale magnitude
// used by the normalizing formulas: the integer maximum for integer types,
// 1 for bool and for float types (floats are already normalized).
type typeInfo struct {
	kind Kind
	bits int
	imin int64
	imax int64
	umax uint64
	fmax float64
	mag  float64
}

// infoOf returns the descriptor for scalar type T. The switch enumerates the
// closed Scalar set; every case is reachable only through the constraint.
func infoOf[T Scalar]() typeInfo {
	var z T
	switch any(z).(type) {
	case bool:
		return typeInfo{kind: KindBool, bits: 1, mag: 1}
	case int8:
		return typeInfo{kind: KindSigned, bits: 8, imin: math.MinInt8, imax: math.MaxInt8, mag: math.MaxInt8}
	case int16:
		return typeInfo{kind: KindSigned, bits: 16, imin: math.MinInt16, imax: math.MaxInt16, mag: math.MaxInt16}
	case int32:
		return typeInfo{kind: KindSigned, bits: 32, imin: math.MinInt32, imax: math.MaxInt32, mag: math.MaxInt32}
	case int64:
		return typeInfo{kind: KindSigned, bits: 64, imin: math.MinInt64, imax: math.MaxInt64, mag: float64(math.MaxInt64)}
	case uint8:
		return typeInfo{kind: KindUnsigned, bits: 8, umax: math.MaxUint8, mag: math.MaxUint8}
	case uint16:
		return typeInfo{kind: KindUnsigned, bits: 16, umax: math.MaxUint16, mag: math.MaxUint16}
	case uint32:
		return typeInfo{kind: KindUnsigned, bits: 32, umax: math.MaxUint32, mag: math.MaxUint32}
	case uint64:
		return typeInfo{kind: KindUnsigned, bits: 64, umax: math.MaxUint64, mag: float64(math.MaxUint64)}
	case float32:
		return typeInfo{kind: KindFloat, bits: 32, fmax: math.MaxFloat32, mag: 1}
	case float64:
		return typeInfo{kind: KindFloat, bits: 64, fmax: math.MaxFloat64, mag: 1}
	case Float16:
		return typeInfo{kind: KindFloat, bits: 16, fmax: float16MaxFinite, mag: 1}
	}
	return typeInfo{}
}
