package passgen

import (
	"encoding/binary"
	"time"
	"unsafe"

	"golang.org/x/crypto/blake2b"
)

// SeedSource supplies the initial engine state.
type SeedSource interface {
	Seed() uint64
}

// FixedSeed is a SeedSource returning itself, for reproducible output.
type FixedSeed uint64

func (f FixedSeed) Seed() uint64 { return uint64(f) }

// SystemSeed derives a seed from the address of a stack variable and the
// current time, mixed through BLAKE2b. Neither input is secret; the result is
// only unpredictable enough for a convenience generator.
type SystemSeed struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s SystemSeed) Seed() uint64 {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	var local byte
	address := uint64(uintptr(unsafe.Pointer(&local)))
	return Mix(address, uint64(now().UnixNano()))
}

// Mix hashes two noise values into a non-zero seed.
func Mix(a, b uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	sum := blake2b.Sum256(buf[:])
	return nonZero(binary.LittleEndian.Uint64(sum[:8]))
}
