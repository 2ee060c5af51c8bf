package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <pattern> [file]",
	Aliases: []string{"d", "rm"},
	Short:   "Remove one entry",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.remove(cmd.Context(), args[0], optionalArg(args, 1))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

// remove deletes the chosen match and re-encrypts the store before
// reporting anything.
func (a *app) remove(ctx context.Context, pattern, file string) error {
	path, st, pw, err := a.openExisting(ctx, file)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	removal, err := st.Delete(pattern, a.chooser(a.msg.AskDelete, false))
	if done, err := a.selectionOutcome(err, pattern); done {
		return err
	}
	if err := a.persist(ctx, path, st, pw); err != nil {
		return err
	}
	if removal.Match.Malformed {
		a.success("%s", a.msg.DeletedLegacy)
	} else {
		a.success(a.msg.Deleted, removal.Match.Record.Description)
	}
	return nil
}
