package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"teachertest-bootstrap/internal/bootstrap"
	"teachertest-bootstrap/internal/config"
	"teachertest-bootstrap/internal/logger"
)

// installCmd performs the one-time setup: create the workspace directory,
// clone the TeacherTest repository, and install its declared dependencies.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Clone the TeacherTest project and install its dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runInstall()
		if !noPause {
			bootstrap.Pause()
		}
		return err
	},
}

func runInstall() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return err
	}

	err = bootstrap.New(cfg).Install()
	switch {
	case errors.Is(err, bootstrap.ErrCheckoutExists):
		// User-recoverable: the guard fired, nothing was touched.
		logger.Warn("[WARN] The project folder already exists. Delete or rename it first, then rerun install.\n")
		logger.Warn("[WARN] To update an existing checkout, use the run command instead.\n")
	case err != nil:
		logger.Error("[ERROR] Install failed: %v\n", err)
	}
	return err
}
