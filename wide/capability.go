package wide

// ISA names the widest float SIMD extension available to the process.
type ISA uint8

const (
	// Generic means no usable vector extension was detected.
	Generic ISA = iota
	// ASIMD is ARM64 Advanced SIMD (NEON, 128-bit).
	ASIMD
	// AVX2 is x86-64 AVX2 with FMA (256-bit, one F32x8 per register).
	AVX2
	// AVX512 is x86-64 AVX-512 Foundation (512-bit).
	AVX512
)

// String returns the lower-case name of the ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case ASIMD:
		return "asimd"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Set by the platform init functions.
var (
	hasASIMD   bool
	hasAVX2    bool
	hasAVX512F bool
)

// Capability reports the widest extension detected at startup.
func Capability() ISA {
	switch {
	case hasAVX512F:
		return AVX512
	case hasAVX2:
		return AVX2
	case hasASIMD:
		return ASIMD
	default:
		return Generic
	}
}
