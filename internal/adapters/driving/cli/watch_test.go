package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_RequiresFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "", "watch")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestWatchCmd_RunsOnStartAndOnEachChange(t *testing.T) {
	watcher := &stubWatcher{changes: 2}
	cleanup := setupTestServicesWithWatcher(watcher)
	defer cleanup()

	path := writeProgram(t, "55\n00N\nA")
	out, err := executeCommand(t, "", "watch", path)

	require.NoError(t, err)
	assert.Equal(t, path, watcher.path)
	assert.Equal(t, 3, strings.Count(out, "X = 0, Y = 1, Orientation = 0"))
}

func TestWatchCmd_KeepsWatchingAfterErrors(t *testing.T) {
	watcher := &stubWatcher{changes: 1}
	cleanup := setupTestServicesWithWatcher(watcher)
	defer cleanup()

	path := writeProgram(t, "55\n00Q\nA")
	out, err := executeCommand(t, "", "watch", path)

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "2 Error parsing the starting position and orientation"))
}

func TestWatchCmd_WatcherFailure(t *testing.T) {
	watcher := &stubWatcher{err: errors.New("no inotify")}
	cleanup := setupTestServicesWithWatcher(watcher)
	defer cleanup()

	_, err := executeCommand(t, "", "watch", "program.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inotify")
}

func TestWatchCmd_HeaderAndResultsShareStdout(t *testing.T) {
	watcher := &stubWatcher{changes: 1}
	cleanup := setupTestServicesWithWatcher(watcher)
	defer cleanup()

	path := writeProgram(t, "55\n00N\nA")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs([]string{"watch", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	runs := strings.Split(stdout.String(), "\n\n")
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.True(t, strings.HasPrefix(run, "# "+path+" ("), run)
		assert.Contains(t, run, "X = 0, Y = 1, Orientation = 0")
	}
}
