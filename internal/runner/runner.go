package runner

import (
	"os"
	"os/exec"
	"strings"

	"teachertest-bootstrap/internal/logger"
)

// ExecFunc runs an external command in dir with the console inherited.
// The command's own stdout and stderr go straight to the user's terminal, so
// the underlying tool's diagnostics are the error report.
type ExecFunc func(dir, name string, args ...string) error

// CaptureFunc runs an external command in dir and returns its combined
// output, trimmed. Used for the few commands whose output is data rather
// than progress (e.g. resolving a commit hash).
type CaptureFunc func(dir, name string, args ...string) (string, error)

// Exec is the default ExecFunc. It echoes the command through logger.Step
// before running it, then blocks until the process exits.
func Exec(dir, name string, args ...string) error {
	logger.Step("[STEP] %s %s\n", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Capture is the default CaptureFunc.
func Capture(dir, name string, args ...string) (string, error) {
	logger.Debug("[DEBUG] Capturing output of: %s %s\n", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}
