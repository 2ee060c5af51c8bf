package cmd

import (
	"errors"
	"os"

	"github.com/awnumar/memguard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tourelou/mdp/clipboard"
	"github.com/Tourelou/mdp/internal/config"
	"github.com/Tourelou/mdp/internal/logging"
	"github.com/Tourelou/mdp/locale"
)

var (
	length      lengthValue
	verbose     bool
	langCode    string
	configFile  string
	showVersion bool
	noClipboard bool
)

// current is the session built for the running command.
var current *app

var rootCmd = &cobra.Command{
	Use:   "mdp",
	Short: "mdp is a command-line password manager",
	Long: `A command-line password manager keeping secret/description pairs in an
openssl-encrypted file. Without a command, a random password is generated.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			_ = current.log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			current.printBanner()
			return nil
		}
		return current.generate(length.or(current.cfg.Length))
	},
}

func Execute() {
	memguard.CatchInterrupt()
	err := rootCmd.Execute()
	if err == nil {
		memguard.Purge()
		return
	}
	var ee *exitError
	if errors.As(err, &ee) {
		color.New(color.FgRed).Fprintln(os.Stderr, ee.Error())
	} else {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	memguard.SafeExit(exitCode(err))
}

func init() {
	rootCmd.PersistentFlags().VarP(&length, "long", "l", "password length (8 to 32)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&langCode, "lang", "", "message language (en, fr, es)")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "never copy to the clipboard")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $MDP_CONFIG or <config dir>/mdp/config.yaml)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print the version and exit")
}

// setup loads the config, the logger and the message catalog. Language
// precedence is --lang, then the config file, then the environment.
func setup() (*app, error) {
	cfg, err := config.Load(config.Path(configFile), configFile != "")
	if err != nil {
		return nil, fail(exitFailure, err, "%v", err)
	}
	log, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, fail(exitFailure, err, "%v", err)
	}

	code := langCode
	if code == "" {
		code = cfg.Lang
	}
	if code == "" {
		code = locale.Detect(os.Getenv)
	}
	msg, err := locale.Load(code)
	if err != nil {
		return nil, fail(exitFailure, err, "%v", err)
	}
	log.Debug("session ready",
		zap.String("lang", msg.Tag.String()),
		zap.String("store_file", cfg.StoreFile),
		zap.Int("length", cfg.Length),
	)
	a := newApp(cfg, log, msg)
	if noClipboard {
		a.clip = clipboard.Disabled{}
	}
	return a, nil
}
