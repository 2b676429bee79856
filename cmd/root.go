package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"teachertest-bootstrap/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to an optional configuration YAML file that
// overrides the built-in path and remote conventions.
// It's passed via the `--config` or `-c` flag.
var configPath string

// noPause skips the final wait-for-Enter prompt. The default (pausing) keeps
// a console window open for the user to read tool output; scripts and tests
// pass `--no-pause`.
var noPause bool

// rootCmd is the base command for the CLI tool `teachertest-bootstrap`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "teachertest-bootstrap",
	Short: "Install and run a managed TeacherTest checkout",

	// Subcommands report errors through the logger with actionable guidance,
	// so cobra's own error echo is disabled.
	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts the command
// execution. The process exits non-zero on any failure, precondition abort or
// external-tool error alike.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")
	rootCmd.PersistentFlags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter before exiting")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
