package cmd

import (
	"errors"
	"fmt"
)

// Exit statuses observed by scripts wrapping mdp.
const (
	exitFailure = 1
	exitPath    = 15
	exitCipher  = 20
)

// exitError carries the status and the localized message printed by Execute.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil && e.msg == "" {
		return e.err.Error()
	}
	return e.msg
}

func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...), err: err}
}

// exitCode maps err to a process status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}
