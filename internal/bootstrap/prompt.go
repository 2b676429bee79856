package bootstrap

import (
	"bufio"
	"os"

	"teachertest-bootstrap/internal/logger"
)

// Pause blocks until the user presses Enter. Both procedures call this before
// the process exits so a console window opened just for the script stays on
// screen long enough to read the last tool output.
func Pause() {
	logger.Step("\nPress Enter to close...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
