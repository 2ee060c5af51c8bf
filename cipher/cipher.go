// Package cipher encrypts and decrypts the credential file by running an
// external program. No cryptography is implemented here.
package cipher

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCipherFailure wraps every failure of the external program.
var ErrCipherFailure = errors.New("cipher failure")

// Service converts between an encrypted file and its plaintext lines.
type Service interface {
	Decrypt(ctx context.Context, path string, password []byte) ([]string, error)
	Encrypt(ctx context.Context, path string, lines []string, password []byte) error
}

// Error records the operation and file that failed.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error { return []error{ErrCipherFailure, e.Err} }

// SplitLines splits decrypted text into lines. A trailing newline does not
// produce an empty last line and "\r\n" endings are accepted.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
