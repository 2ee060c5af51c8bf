package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Tourelou/mdp/store"
)

const separator = "----------------"

var (
	headerColor  = color.New(color.FgCyan)
	secretColor  = color.New(color.FgYellow)
	legacyColor  = color.New(color.Faint)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// say prints a localized line to stdout.
func (a *app) say(format string, args ...any) {
	fmt.Fprintf(a.stdout, format+"\n", args...)
}

// success prints a localized line reporting a completed change.
func (a *app) success(format string, args ...any) {
	successColor.Fprintf(a.stdout, format+"\n", args...)
}

// notice prints a localized warning to stderr.
func (a *app) notice(format string, args ...any) {
	warnColor.Fprintf(a.stderr, format+"\n", args...)
}

// list renders matches with their display slots. Secrets are only shown
// when reveal is set.
func (a *app) list(matches store.Matches, reveal bool) {
	fmt.Fprintln(a.stdout, separator)
	for _, m := range matches {
		headerColor.Fprintf(a.stdout, "%3d: ", m.Position)
		switch {
		case m.Malformed:
			legacyColor.Fprintln(a.stdout, a.msg.LegacyEntry)
		case reveal:
			fmt.Fprintf(a.stdout, "%s ", m.Record.Description)
			secretColor.Fprintln(a.stdout, m.Record.Secret)
		default:
			fmt.Fprintln(a.stdout, m.Record.Description)
		}
	}
	fmt.Fprintln(a.stdout, separator)
}

// chooser lists the matches, asks question and parses the answer. An answer
// above the match count is reported and treated as no selection.
func (a *app) chooser(question string, reveal bool) store.Chooser {
	return func(matches store.Matches) (int, error) {
		a.list(matches, reveal)
		answer, err := a.lines.Ask(question)
		if err != nil {
			a.log.Debug("reading selection failed", zap.Error(err))
			return store.NoSelection, nil
		}
		n, err := store.ParseSelection(answer, len(matches))
		if err != nil {
			a.notice(a.msg.IndexTooBig, strings.TrimSpace(answer), len(matches))
			return store.NoSelection, nil
		}
		return n, nil
	}
}
