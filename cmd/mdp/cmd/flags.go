package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/Tourelou/mdp/internal/config"
)

// lengthValue is the --long flag: an integer in the allowed range that may be
// given only once.
type lengthValue struct {
	n   int
	set bool
}

var _ pflag.Value = (*lengthValue)(nil)

var errLengthRepeated = errors.New("may only be given once")

func (l *lengthValue) Set(s string) error {
	if l.set {
		return errLengthRepeated
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	if n < config.MinLength || n > config.MaxLength {
		return fmt.Errorf("must be between %d and %d characters, got %d", config.MinLength, config.MaxLength, n)
	}
	l.n, l.set = n, true
	return nil
}

func (l *lengthValue) String() string {
	if !l.set {
		return ""
	}
	return strconv.Itoa(l.n)
}

func (l *lengthValue) Type() string { return "length" }

// or returns the flag value, or def when the flag was not given.
func (l *lengthValue) or(def int) int {
	if l.set {
		return l.n
	}
	return def
}
