// Package pix converts numeric sample values between the scalar types used
// by image processing pipelines.
//
// The package follows the semantics of saturating and normalizing sample
// conversion: integer types represent a fixed fractional range ([0,1] for
// unsigned, [-1,1] for signed) of their maximum magnitude, and every
// conversion between two types is one of four named policies:
//
//	pix.Convert[uint8](v)        // direct, rounds float->int, may overflow
//	pix.ConvertSat[uint8](v)     // rounds and saturates into the destination range
//	pix.ConvertNorm[uint8](v)    // preserves dynamic range, may overflow
//	pix.ConvertSatNorm[uint8](v) // preserves dynamic range and saturates
//
// All operations are pure functions with no shared state; they are safe to
// call concurrently and to inline into per-element loops. Float-to-integer
// rounding is selected once per build: the default target rounds halves away
// from zero, while the pixelcast_device build tag selects rounding that
// matches accelerator hardware (see round_host.go and round_device.go).
package pix

// Floats is a constraint for the native floating-point sample types.
// Float16 is storage-only and is listed separately in Scalar.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer sample types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer sample types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer sample types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is the closed set of sample types the conversion operations accept.
// The set is exact (no ~ terms): dispatch is driven by type switches, and a
// defined type with a matching underlying type would otherwise select the
// wrong formula silently.
type Scalar interface {
	Floats | Integers | Float16 | bool
}

// Kind classifies a scalar type by the conversion formula family it selects.
type Kind uint8

const (
	// KindBool is the boolean sample type.
	KindBool Kind = iota

	// KindSigned covers int8 through int64.
	KindSigned

	// KindUnsigned covers uint8 through uint64.
	KindUnsigned

	// KindFloat covers float32, float64 and Float16.
	KindFloat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of scalar type T.
func KindOf[T Scalar]() Kind {
	return infoOf[T]().kind
}
