package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Tourelou/mdp/store"
)

var addCmd = &cobra.Command{
	Use:   "add <description> <password> [file]",
	Short: "Add an entry with the given password",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := store.Record{Secret: args[1], Description: args[0]}
		return current.add(cmd.Context(), rec, optionalArg(args, 2))
	},
}

var newCmd = &cobra.Command{
	Use:   "new <description> [file]",
	Short: "Add an entry with a generated password",
	Long: `Generates a password of --long characters, stores it under description,
prints it and copies it to the clipboard when one is available.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := current.newPassword(length.or(current.cfg.Length))
		if err != nil {
			return err
		}
		rec := store.Record{Secret: secret, Description: args[0]}
		if err := current.add(cmd.Context(), rec, optionalArg(args, 1)); err != nil {
			return err
		}
		current.handOver(rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(newCmd)
}

// add appends rec to the store, creating the file if needed.
func (a *app) add(ctx context.Context, rec store.Record, file string) error {
	if err := rec.Validate(); err != nil {
		return fail(exitFailure, err, a.msg.InvalidEntry, err)
	}
	if err := a.requireCipher(); err != nil {
		return err
	}
	path, exists, err := a.storePath(file)
	if err != nil {
		return err
	}
	st, pw, err := a.open(ctx, path, exists)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	if err := st.Add(rec); err != nil {
		return fail(exitFailure, err, a.msg.InvalidEntry, err)
	}
	if err := a.persist(ctx, path, st, pw); err != nil {
		return err
	}
	a.success(a.msg.Added, rec.Description)
	return nil
}

// handOver shows a freshly generated secret and copies it when possible.
// The entry is already persisted, so a clipboard failure is only reported.
func (a *app) handOver(rec store.Record) {
	a.say(a.msg.GeneratedPassword, rec.Secret)
	if !a.clip.Available() {
		return
	}
	if err := a.clip.Copy(rec.Secret); err != nil {
		a.notice(a.msg.CopyFailed, err)
		return
	}
	a.success(a.msg.Copied, rec.Description)
}
