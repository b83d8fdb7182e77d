package pix

// Target identifies the rounding code path compiled into this build.
type Target int

const (
	// TargetHost is the default build: round halves away from zero.
	TargetHost Target = iota

	// TargetDevice is selected by the pixelcast_device build tag and
	// reproduces accelerator hardware rounding.
	TargetDevice
)

// String returns a human-readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetHost:
		return "host"
	case TargetDevice:
		return "device"
	default:
		return "unknown"
	}
}

// ActiveTarget returns the rounding target this binary was built for.
func ActiveTarget() Target {
	if deviceRounding {
		return TargetDevice
	}
	return TargetHost
}

// hasNativeRoundEven is set by init() in target_*.go files.
var hasNativeRoundEven bool

// HasNativeRoundEven reports whether the host CPU has round-to-nearest-even
// instructions. When true, device-target results for destinations up to
// 32 bits can be reproduced on this host without emulation.
func HasNativeRoundEven() bool {
	return hasNativeRoundEven
}
