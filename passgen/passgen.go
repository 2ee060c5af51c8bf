// Package passgen generates passwords that contain at least one uppercase
// letter, one lowercase letter, one digit and one symbol.
package passgen

import (
	"errors"
	"fmt"
)

const (
	// MinLength is the shortest password that can hold every class.
	MinLength = 4
	// DefaultLength is used when no length is requested.
	DefaultLength = 12
)

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Specials  = "!@#$?&_.~-"

	// Charset is the pool for positions beyond the mandatory four.
	Charset = Lowercase + Uppercase + Digits + Specials
)

// ErrLengthTooShort is returned for lengths below MinLength.
var ErrLengthTooShort = errors.New("password length too short")

// Generator produces passwords from one engine. It is not safe for
// concurrent use.
type Generator struct {
	rng *XorShiftStar
}

// New seeds a Generator from src.
func New(src SeedSource) *Generator {
	return &Generator{rng: NewXorShiftStar(src.Seed())}
}

// Generate returns a password of exactly length characters.
func Generate(length int) (string, error) {
	return New(SystemSeed{}).Generate(length)
}

// Generate returns a password of exactly length characters. The four
// mandatory classes are placed first, the rest is drawn from Charset, and the
// whole buffer is then shuffled.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("%w: %d < %d", ErrLengthTooShort, length, MinLength)
	}

	buf := make([]byte, 0, length)
	for _, class := range []string{Uppercase, Lowercase, Digits, Specials} {
		buf = append(buf, g.pick(class))
	}
	for len(buf) < length {
		buf = append(buf, g.pick(Charset))
	}

	// Fisher-Yates.
	for i := len(buf) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func (g *Generator) pick(set string) byte {
	return set[g.rng.Intn(len(set))]
}
