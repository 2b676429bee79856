package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"teachertest-bootstrap/internal/bootstrap"
	"teachertest-bootstrap/internal/config"
	"teachertest-bootstrap/internal/logger"
)

// runCmd synchronizes an existing checkout to the remote branch, discarding
// all local changes and untracked files, then launches the project's own
// entry point on the inherited console.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sync the checkout to the remote main branch and launch TeacherTest",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runRefresh()
		if !noPause {
			bootstrap.Pause()
		}
		return err
	},
}

func runRefresh() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return err
	}

	err = bootstrap.New(cfg).Refresh()
	switch {
	case errors.Is(err, bootstrap.ErrCheckoutMissing):
		// User-recoverable: nothing to sync yet.
		logger.Warn("[WARN] The project is not installed. Run the install command first.\n")
	case err != nil:
		logger.Error("[ERROR] Run failed: %v\n", err)
	}
	return err
}
