//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package prompt

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// EnterRaw clears ECHO and ICANON so keystrokes arrive one at a time and are
// not printed. Other attributes are left alone.
func (c *Console) EnterRaw() (func() error, error) {
	fd := int(c.f.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}

	raw := *saved
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, saved)
	}, nil
}
