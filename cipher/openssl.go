package cipher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// DefaultBinary is looked up on PATH.
	DefaultBinary = "openssl"

	passwordEnv = "MDP_CIPHER_PASS"
)

// OpenSSL runs `openssl enc -aes-256-cbc -md md5`, the format of existing
// credential files. The password is handed over through the child's
// environment so it never appears in the process list.
type OpenSSL struct {
	Binary string
	Logger *zap.Logger
}

var _ Service = (*OpenSSL)(nil)

// NewOpenSSL returns a backend using binary, or DefaultBinary when empty.
func NewOpenSSL(binary string, logger *zap.Logger) *OpenSSL {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenSSL{Binary: binary, Logger: logger}
}

// Available reports whether the binary can be found.
func (o *OpenSSL) Available() bool {
	_, err := exec.LookPath(o.Binary)
	return err == nil
}

// Decrypt returns the plaintext lines of path.
func (o *OpenSSL) Decrypt(ctx context.Context, path string, password []byte) ([]string, error) {
	cmd := o.command(ctx, password, "-d", "-in", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	o.Logger.Debug("decrypting store", zap.String("path", path), zap.String("binary", o.Binary))
	if err := cmd.Run(); err != nil {
		return nil, &Error{Op: "decrypt", Path: path, Err: commandError(err, &stderr)}
	}
	if !utf8.Valid(stdout.Bytes()) {
		return nil, &Error{Op: "decrypt", Path: path, Err: errors.New("plaintext is not valid UTF-8")}
	}
	lines := SplitLines(stdout.String())
	o.Logger.Debug("store decrypted", zap.Int("lines", len(lines)))
	return lines, nil
}

// Encrypt writes lines to path. The ciphertext goes to a temporary file in
// the same directory which replaces path only after openssl succeeded.
func (o *OpenSSL) Encrypt(ctx context.Context, path string, lines []string, password []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &Error{Op: "encrypt", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := o.command(ctx, password, "-salt", "-out", tmpPath)
	cmd.Stdin = strings.NewReader(JoinLines(lines))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	o.Logger.Debug("encrypting store", zap.String("path", path), zap.Int("lines", len(lines)))
	if err := cmd.Run(); err != nil {
		return &Error{Op: "encrypt", Path: path, Err: commandError(err, &stderr)}
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return &Error{Op: "encrypt", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &Error{Op: "encrypt", Path: path, Err: err}
	}
	return nil
}

func (o *OpenSSL) command(ctx context.Context, password []byte, args ...string) *exec.Cmd {
	base := []string{"enc", "-aes-256-cbc", "-md", "md5", "-pass", "env:" + passwordEnv}
	cmd := exec.CommandContext(ctx, o.Binary, append(base, args...)...)
	cmd.Env = append(os.Environ(), passwordEnv+"="+string(password))
	return cmd
}

func commandError(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return err
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return fmt.Errorf("%w: %s", err, msg)
}
