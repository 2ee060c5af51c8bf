package prompt

import (
	"io"
	"os"
)

// Console is the Terminal backed by an *os.File, normally os.Stdin.
type Console struct {
	f *os.File
}

var _ Terminal = (*Console)(nil)

// NewConsole wraps f.
func NewConsole(f *os.File) *Console {
	return &Console{f: f}
}

// Stdin returns the process console.
func Stdin() *Console {
	return NewConsole(os.Stdin)
}

// ReadByte blocks until one byte is available.
func (c *Console) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := c.f.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
	}
}
