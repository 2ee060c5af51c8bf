package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/awnumar/memguard"
	"go.uber.org/zap"

	"github.com/Tourelou/mdp/cipher"
	"github.com/Tourelou/mdp/clipboard"
	"github.com/Tourelou/mdp/internal/config"
	"github.com/Tourelou/mdp/locale"
	"github.com/Tourelou/mdp/passgen"
	"github.com/Tourelou/mdp/prompt"
	"github.com/Tourelou/mdp/store"
)

// passwordEnv supplies the encryption password without prompting.
const passwordEnv = "pass"

// cipherBackend is the cipher service plus the probe for its binary.
type cipherBackend interface {
	cipher.Service
	Available() bool
}

// app holds everything one command invocation needs. The store it opens is
// owned by the running command alone.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	msg    *locale.Catalog
	stdout io.Writer
	stderr io.Writer
	lines  *prompt.LineReader
	term   prompt.Terminal
	cipher cipherBackend
	clip   clipboard.Service
	seed   passgen.SeedSource
	getenv func(string) string
	// execDir locates the directory bare store file names resolve against.
	execDir func() (string, error)
}

func newApp(cfg *config.Config, log *zap.Logger, msg *locale.Catalog) *app {
	return &app{
		cfg:     cfg,
		log:     log,
		msg:     msg,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		lines:   prompt.NewLineReader(os.Stdin, os.Stdout),
		term:    prompt.Stdin(),
		cipher:  cipher.NewOpenSSL(cfg.OpenSSL, log),
		clip:    clipboard.System{},
		seed:    passgen.SystemSeed{},
		getenv:  os.Getenv,
		execDir: executableDir,
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// storePath resolves the store file. A bare file name lives next to the
// executable; anything with a directory part is used as given.
func (a *app) storePath(arg string) (path string, exists bool, err error) {
	name := arg
	if name == "" {
		name = a.cfg.StoreFile
	}
	if filepath.Base(name) == name {
		dir, err := a.execDir()
		if err != nil {
			return "", false, fail(exitPath, err, "%s", a.msg.ExecPath)
		}
		name = filepath.Join(dir, name)
	}

	info, err := os.Stat(name)
	switch {
	case err == nil && info.IsDir():
		return "", false, fail(exitPath, nil, "%s", a.msg.FileIsDir)
	case err == nil:
		exists = true
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fail(exitPath, err, a.msg.ParentMissing, name)
	}

	parent := filepath.Dir(name)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return "", false, fail(exitPath, err, a.msg.ParentMissing, name)
	}
	a.log.Debug("store path resolved", zap.String("path", name), zap.Bool("exists", exists))
	return name, exists, nil
}

// requireCipher fails when the encryption program is missing.
func (a *app) requireCipher() error {
	if !a.cipher.Available() {
		return fail(exitFailure, nil, "%s", a.msg.NoOpenSSL)
	}
	return nil
}

// password returns the encryption password in locked memory, from $pass or
// the keyboard. confirm asks twice, for files about to be created.
func (a *app) password(confirm bool) (*memguard.LockedBuffer, error) {
	if v := a.getenv(passwordEnv); v != "" {
		a.log.Debug("encryption password taken from environment")
		return memguard.NewBufferFromBytes([]byte(v)), nil
	}

	opts := []prompt.Option{prompt.WithMask(a.cfg.Mask[0]), prompt.WithLogger(a.log)}
	first := prompt.ReadMasked(a.term, a.stdout, a.msg.AskPassword, opts...)
	if first == "" {
		return nil, fail(exitFailure, nil, "%s", a.msg.PasswordRequired)
	}
	buf := memguard.NewBufferFromBytes([]byte(first))
	if confirm {
		second := prompt.ReadMasked(a.term, a.stdout, a.msg.ConfirmPassword, opts...)
		if second != buf.String() {
			buf.Destroy()
			return nil, fail(exitFailure, nil, "%s", a.msg.PasswordMismatch)
		}
	}
	return buf, nil
}

// open decrypts the store at path. When the file does not exist yet an empty
// store is returned and the password is confirmed before it is used.
func (a *app) open(ctx context.Context, path string, exists bool) (*store.Store, *memguard.LockedBuffer, error) {
	if !exists {
		pw, err := a.password(true)
		if err != nil {
			return nil, nil, err
		}
		a.notice(a.msg.CreatingStore, path)
		return store.New(nil), pw, nil
	}

	pw, err := a.password(false)
	if err != nil {
		return nil, nil, err
	}
	lines, err := a.cipher.Decrypt(ctx, path, pw.Bytes())
	if err != nil {
		pw.Destroy()
		a.log.Debug("decrypt failed", zap.Error(err))
		return nil, nil, fail(exitCipher, err, a.msg.CipherFailed, err)
	}
	return store.New(lines), pw, nil
}

// persist re-encrypts st. Any failure is fatal: a change is never reported
// as done unless it reached the disk.
func (a *app) persist(ctx context.Context, path string, st *store.Store, pw *memguard.LockedBuffer) error {
	if err := a.cipher.Encrypt(ctx, path, st.Lines(), pw.Bytes()); err != nil {
		a.log.Error("persisting store failed", zap.String("path", path), zap.Error(err))
		return fail(exitCipher, err, a.msg.CipherFailed, err)
	}
	a.log.Debug("store persisted", zap.String("path", path), zap.Int("lines", st.Len()))
	return nil
}
