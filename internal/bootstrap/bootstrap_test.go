package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"teachertest-bootstrap/internal/config"
	"teachertest-bootstrap/internal/state"
)

// fakeExec records issued commands and lets a test fail a chosen git
// subcommand to simulate an external-tool error.
type fakeExec struct {
	calls   [][]string
	dirs    []string
	failOn  string // first argument to fail on, e.g. "fetch"
	failErr error
}

func (f *fakeExec) exec(dir, name string, args ...string) error {
	f.dirs = append(f.dirs, dir)
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failOn != "" && len(args) > 0 && args[0] == f.failOn {
		return f.failErr
	}
	return nil
}

func (f *fakeExec) capture(dir, name string, args ...string) (string, error) {
	return "f00dfeed", nil
}

// testBootstrap returns a Bootstrap rooted at a temp parent directory with a
// recording executor substituted for the real one.
func testBootstrap(t *testing.T) (*Bootstrap, *fakeExec, string) {
	t.Helper()
	parent := t.TempDir()

	cfg := config.Default()
	cfg.Paths.Parent = parent

	fake := &fakeExec{failErr: errors.New("exit status 128")}
	b := New(cfg)
	b.Exec = fake.exec
	b.Capture = fake.capture
	return b, fake, parent
}

func TestInstallClonesAndInstallsDependencies(t *testing.T) {
	b, fake, parent := testBootstrap(t)

	require.NoError(t, b.Install())

	require.Equal(t, [][]string{
		{"git", "clone", b.Config.Remote.URL, "TeacherTest"},
		{"pip", "install", "-r", "requirements.txt"},
	}, fake.calls)

	// Clone runs in the parent, dependency install inside the checkout.
	require.Equal(t, parent, fake.dirs[0])
	require.Equal(t, filepath.Join(parent, "TeacherTest"), fake.dirs[1])

	// The install is recorded in the state file.
	st := state.Load(filepath.Join(parent, "state.json"))
	require.Equal(t, b.Config.Remote.URL, st.RemoteURL)
	require.False(t, st.LastInstall.IsZero())
}

func TestInstallRefusesExistingCheckout(t *testing.T) {
	b, fake, parent := testBootstrap(t)
	require.NoError(t, os.Mkdir(filepath.Join(parent, "TeacherTest"), 0755))

	err := b.Install()
	require.ErrorIs(t, err, ErrCheckoutExists)

	// The guard fires before any external command runs.
	require.Empty(t, fake.calls)
}

func TestInstallStopsAfterFailedClone(t *testing.T) {
	b, fake, _ := testBootstrap(t)
	fake.failOn = "clone"

	err := b.Install()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCheckoutExists)

	// No dependency install is attempted after a failed clone.
	require.Len(t, fake.calls, 1)
	require.Equal(t, "git", fake.calls[0][0])
}

func TestInstallTwiceIsGuardedNoOp(t *testing.T) {
	b, fake, _ := testBootstrap(t)

	// First run succeeds but the fake clone creates no directory, so stand in
	// for git by creating the checkout the way a real clone would.
	project, err := b.Config.ProjectDir()
	require.NoError(t, err)
	require.NoError(t, b.Install())
	require.NoError(t, os.Mkdir(project, 0755))
	firstCalls := len(fake.calls)

	// Second run aborts on the existence check without touching anything.
	require.ErrorIs(t, b.Install(), ErrCheckoutExists)
	require.Len(t, fake.calls, firstCalls)
}

func TestRefreshRequiresExistingCheckout(t *testing.T) {
	b, fake, _ := testBootstrap(t)

	err := b.Refresh()
	require.ErrorIs(t, err, ErrCheckoutMissing)
	require.Empty(t, fake.calls)
}

func TestRefreshSyncsThenLaunches(t *testing.T) {
	b, fake, parent := testBootstrap(t)
	project := filepath.Join(parent, "TeacherTest")
	require.NoError(t, os.Mkdir(project, 0755))

	require.NoError(t, b.Refresh())

	require.Equal(t, [][]string{
		{"git", "checkout", "main"},
		{"git", "fetch", "origin"},
		{"git", "clean", "-fd"},
		{"git", "reset", "--hard", "origin/main"},
		{"python", "start.py"},
	}, fake.calls)

	// Everything, the launcher included, runs inside the checkout.
	for _, dir := range fake.dirs {
		require.Equal(t, project, dir)
	}

	// The synced commit is recorded.
	st := state.Load(filepath.Join(parent, "state.json"))
	require.Equal(t, "f00dfeed", st.LastSyncedCommit)
	require.False(t, st.LastRefresh.IsZero())
}

func TestRefreshDoesNotLaunchAfterFailedSync(t *testing.T) {
	b, fake, parent := testBootstrap(t)
	require.NoError(t, os.Mkdir(filepath.Join(parent, "TeacherTest"), 0755))
	fake.failOn = "fetch"

	err := b.Refresh()
	require.Error(t, err)

	// The procedure stops at the failed fetch: no clean, no reset, no launch.
	require.Equal(t, [][]string{
		{"git", "checkout", "main"},
		{"git", "fetch", "origin"},
	}, fake.calls)
}

func TestRefreshLaunchFailureIsReported(t *testing.T) {
	b, fake, parent := testBootstrap(t)
	require.NoError(t, os.Mkdir(filepath.Join(parent, "TeacherTest"), 0755))
	fake.failOn = "start.py"

	err := b.Refresh()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCheckoutMissing)

	// The sync completed; only the final launch failed.
	last := fake.calls[len(fake.calls)-1]
	require.Equal(t, []string{"python", "start.py"}, last)
}
