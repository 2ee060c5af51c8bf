//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package prompt

import (
	"fmt"

	"golang.org/x/term"
)

// EnterRaw falls back to x/term, which also disables output processing.
func (c *Console) EnterRaw() (func() error, error) {
	fd := int(c.f.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	return func() error {
		return term.Restore(fd, saved)
	}, nil
}
