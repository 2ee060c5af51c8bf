package cmd

import (
	"context"
	"errors"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/Tourelou/mdp/store"
)

var reveal bool

var findCmd = &cobra.Command{
	Use:     "find <pattern> [file]",
	Aliases: []string{"f"},
	Short:   "Search entries and copy a password to the clipboard",
	Long: `Lists every entry containing pattern, ignoring case, then copies the
password of the chosen entry to the clipboard. Without a clipboard tool the
matches are only listed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.find(cmd.Context(), args[0], optionalArg(args, 1), reveal)
	},
}

func init() {
	findCmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "show passwords in the listing")
	rootCmd.AddCommand(findCmd)
}

func (a *app) find(ctx context.Context, pattern, file string, reveal bool) error {
	_, st, pw, err := a.openExisting(ctx, file)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	if !a.clip.Available() {
		matches := st.Scan(pattern)
		if len(matches) == 0 {
			return fail(exitFailure, store.ErrNoMatch, a.msg.NoMatch, pattern)
		}
		a.list(matches, reveal)
		if !reveal {
			a.notice("%s", a.msg.NoClipboard)
		}
		return nil
	}

	match, err := st.Find(pattern, a.chooser(a.msg.AskCopy, reveal))
	if errors.Is(err, store.ErrMalformedRecord) {
		return fail(exitFailure, err, "%s", a.msg.MalformedSelected)
	}
	if done, err := a.selectionOutcome(err, pattern); done {
		return err
	}
	if err := a.clip.Copy(match.Record.Secret); err != nil {
		return fail(exitFailure, err, a.msg.CopyFailed, err)
	}
	a.success(a.msg.Copied, match.Record.Description)
	return nil
}

// openExisting decrypts a store file that must already exist.
func (a *app) openExisting(ctx context.Context, file string) (string, *store.Store, *memguard.LockedBuffer, error) {
	if err := a.requireCipher(); err != nil {
		return "", nil, nil, err
	}
	path, exists, err := a.storePath(file)
	if err != nil {
		return "", nil, nil, err
	}
	if !exists {
		return "", nil, nil, fail(exitFailure, nil, a.msg.StoreMissing, path)
	}
	st, pw, err := a.open(ctx, path, true)
	if err != nil {
		return "", nil, nil, err
	}
	return path, st, pw, nil
}

// selectionOutcome handles the results of choosing an entry shared by find
// and delete. The bool reports that the command ends here with the returned
// error.
func (a *app) selectionOutcome(err error, pattern string) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, store.ErrNoMatch):
		return true, fail(exitFailure, err, a.msg.NoMatch, pattern)
	case errors.Is(err, store.ErrCancelled):
		a.say("%s", a.msg.Cancelled)
		return true, nil
	default:
		return true, err
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
