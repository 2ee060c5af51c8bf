package cmd

import (
	"go.uber.org/zap"

	"github.com/Tourelou/mdp/passgen"
)

// newPassword returns a password of n characters from the session seed.
func (a *app) newPassword(n int) (string, error) {
	pw, err := passgen.New(a.seed).Generate(n)
	if err != nil {
		return "", fail(exitFailure, err, "%v", err)
	}
	a.log.Debug("password generated", zap.Int("length", n))
	return pw, nil
}

func (a *app) generate(n int) error {
	pw, err := a.newPassword(n)
	if err != nil {
		return err
	}
	a.say(a.msg.GeneratedPassword, pw)
	return nil
}
