package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tourelou/mdp/cipher"
	"github.com/Tourelou/mdp/internal/config"
	"github.com/Tourelou/mdp/locale"
	"github.com/Tourelou/mdp/passgen"
	"github.com/Tourelou/mdp/prompt"
)

const testPassword = "hunter2"

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeCipher struct {
	available  bool
	password   string
	files      map[string][]string
	encryptErr error
	decrypts   int
	encrypts   int
}

func (f *fakeCipher) Available() bool { return f.available }

func (f *fakeCipher) Decrypt(_ context.Context, path string, password []byte) ([]string, error) {
	f.decrypts++
	lines, ok := f.files[path]
	if !ok {
		return nil, &cipher.Error{Op: "decrypt", Path: path, Err: os.ErrNotExist}
	}
	if string(password) != f.password {
		return nil, &cipher.Error{Op: "decrypt", Path: path, Err: errors.New("bad decrypt")}
	}
	return append([]string(nil), lines...), nil
}

func (f *fakeCipher) Encrypt(_ context.Context, path string, lines []string, password []byte) error {
	f.encrypts++
	if f.encryptErr != nil {
		return &cipher.Error{Op: "encrypt", Path: path, Err: f.encryptErr}
	}
	f.files[path] = append([]string(nil), lines...)
	f.password = string(password)
	return nil
}

type fakeClipboard struct {
	available bool
	err       error
	copied    []string
}

func (f *fakeClipboard) Available() bool { return f.available }

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

// fakeTerminal feeds keystrokes to masked prompts.
type fakeTerminal struct {
	input []byte
}

func (f *fakeTerminal) EnterRaw() (func() error, error) {
	return func() error { return nil }, nil
}

func (f *fakeTerminal) ReadByte() (byte, error) {
	if len(f.input) == 0 {
		return 0, io.EOF
	}
	b := f.input[0]
	f.input = f.input[1:]
	return b, nil
}

// ---------------------------------------------------------------------------
// Harness
// ---------------------------------------------------------------------------

type harness struct {
	app    *app
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	cipher *fakeCipher
	clip   *fakeClipboard
	term   *fakeTerminal
	env    map[string]string
}

// newHarness builds a session whose store lives in a temporary directory.
// answers is what the user types at selection prompts.
func newHarness(t *testing.T, answers string) *harness {
	t.Helper()
	msg, err := locale.Load("en")
	require.NoError(t, err)

	h := &harness{
		dir:    t.TempDir(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		cipher: &fakeCipher{available: true, password: testPassword, files: map[string][]string{}},
		clip:   &fakeClipboard{available: true},
		term:   &fakeTerminal{},
		env:    map[string]string{passwordEnv: testPassword},
	}
	h.app = &app{
		cfg:     config.Default(),
		log:     zap.NewNop(),
		msg:     msg,
		stdout:  h.stdout,
		stderr:  h.stderr,
		lines:   prompt.NewLineReader(strings.NewReader(answers), h.stdout),
		term:    h.term,
		cipher:  h.cipher,
		clip:    h.clip,
		seed:    passgen.FixedSeed(7),
		getenv:  func(key string) string { return h.env[key] },
		execDir: func() (string, error) { return h.dir, nil },
	}
	return h
}

// seed writes an opaque store file and registers its decrypted lines.
func (h *harness) seed(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(h.dir, config.DefaultStoreFile)
	require.NoError(t, os.WriteFile(path, []byte("Salted__"), 0o600))
	h.cipher.files[path] = lines
	return path
}

func requireExit(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, exitCode(err), "error: %v", err)
}
