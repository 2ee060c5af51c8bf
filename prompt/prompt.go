// Package prompt reads secrets from the keyboard without echoing them.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/Tourelou/mdp/internal/util"
)

// ErrTerminalUnavailable is returned by backends that cannot query or change
// the terminal attributes, e.g. when stdin is a pipe.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// DefaultMask is rendered for every accepted keystroke.
const DefaultMask = '*'

const (
	keyBackspace = 0x08
	keyDelete    = 0x7f
	keyEscape    = 0x1b
)

// Terminal is a console that can be switched into raw mode and read one byte
// at a time.
type Terminal interface {
	// EnterRaw saves the current attributes and disables echo and line
	// buffering. The returned function restores the saved attributes.
	EnterRaw() (restore func() error, err error)
	ReadByte() (byte, error)
}

// Option configures ReadMasked.
type Option func(*options)

type options struct {
	mask   byte
	logger *zap.Logger
}

// WithMask sets the character rendered per keystroke. Non-printable masks are
// ignored.
func WithMask(mask byte) Option {
	return func(o *options) {
		if isPrintable(mask) {
			o.mask = mask
		}
	}
}

// WithLogger sets the logger used for terminal failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// ReadMasked writes message to out, reads one line from t in raw mode and
// returns it. Each accepted character is echoed as the mask; backspace erases
// one. Terminal failures are not fatal: an empty string is returned. The
// original terminal attributes are restored exactly once on every path.
func ReadMasked(t Terminal, out io.Writer, message string, opts ...Option) string {
	o := options{mask: DefaultMask, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	fmt.Fprint(out, message)

	restore, err := t.EnterRaw()
	if err != nil {
		o.logger.Debug("masked input unavailable", zap.Error(err))
		return ""
	}
	var once sync.Once
	release := func() {
		once.Do(func() {
			if err := restore(); err != nil {
				o.logger.Warn("restoring terminal attributes", zap.Error(err))
			}
		})
	}
	defer release()

	buf := make([]byte, 0, 64)
	defer func() { util.WipeBytes(buf[:cap(buf)]) }()

	for {
		b, err := t.ReadByte()
		if err != nil {
			o.logger.Debug("masked input aborted", zap.Error(err))
			fmt.Fprintln(out)
			return ""
		}
		switch {
		case b == '\n' || b == '\r':
			release()
			fmt.Fprintln(out)
			return string(buf)
		case b == keyBackspace || b == keyDelete:
			if len(buf) > 0 {
				buf[len(buf)-1] = 0
				buf = buf[:len(buf)-1]
				fmt.Fprint(out, "\b \b")
			}
		case b == keyEscape:
			skipEscapeSequence(t)
		case isPrintable(b):
			buf = appendByte(buf, b)
			fmt.Fprintf(out, "%c", o.mask)
		}
	}
}

// skipEscapeSequence discards at most two bytes following ESC. The second is
// only read after a CSI or SS3 introducer, so a lone ESC followed by a key
// costs one keystroke.
func skipEscapeSequence(t Terminal) {
	b, err := t.ReadByte()
	if err != nil || (b != '[' && b != 'O') {
		return
	}
	_, _ = t.ReadByte()
}

// appendByte grows buf without leaving a stale copy of the secret behind.
func appendByte(buf []byte, b byte) []byte {
	if len(buf) == cap(buf) {
		grown := make([]byte, len(buf), 2*cap(buf)+1)
		copy(grown, buf)
		util.WipeBytes(buf)
		buf = grown
	}
	return append(buf, b)
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
