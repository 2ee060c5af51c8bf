package passgen

// multiplier is the xorshift* output scrambler.
const multiplier uint64 = 2685821657736338717

// XorShiftStar is a 64-bit xorshift* pseudo-random engine. It is fast and
// statistically decent but not cryptographically secure.
type XorShiftStar struct {
	state uint64
}

// NewXorShiftStar seeds an engine. A zero seed would lock the engine at zero
// and is replaced by 1.
func NewXorShiftStar(seed uint64) *XorShiftStar {
	return &XorShiftStar{state: nonZero(seed)}
}

// Uint64 advances the state and returns the next value.
func (x *XorShiftStar) Uint64() uint64 {
	x.state ^= x.state << 12
	x.state ^= x.state >> 25
	x.state ^= x.state << 27
	return x.state * multiplier
}

// Intn returns a value in [0, n) by reduction modulo n. The small modulo bias
// is accepted. It panics if n <= 0.
func (x *XorShiftStar) Intn(n int) int {
	if n <= 0 {
		panic("passgen: invalid argument to Intn")
	}
	return int(x.Uint64() % uint64(n))
}

func nonZero(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	return v
}
