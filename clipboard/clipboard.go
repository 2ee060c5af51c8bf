// Package clipboard hands secrets to the desktop clipboard through the
// platform tool (pbcopy, xclip, xsel, wl-copy, ...).
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("clipboard unavailable")

// Service copies text to the clipboard.
type Service interface {
	Available() bool
	Copy(text string) error
}

// System is the Service backed by the platform clipboard tool.
type System struct{}

var _ Service = System{}

// writeAll is replaced in tests.
var writeAll = clipboard.WriteAll

func (System) Available() bool {
	return !clipboard.Unsupported
}

func (s System) Copy(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Disabled is a Service that never copies, selected by --no-clipboard.
type Disabled struct{}

func (Disabled) Available() bool   { return false }
func (Disabled) Copy(string) error { return ErrUnavailable }
