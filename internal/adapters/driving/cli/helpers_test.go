package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mower-cli/internal/core/services"
)

const sampleProgram = "55\n12N\nGAGAGAGAA\n33E\nAADAADADDA"

// stubWatcher emits the queued change notifications and then closes.
type stubWatcher struct {
	changes int
	err     error
	path    string
}

func (w *stubWatcher) Watch(_ context.Context, path string) (<-chan struct{}, error) {
	w.path = path
	if w.err != nil {
		return nil, w.err
	}
	ch := make(chan struct{}, w.changes)
	for i := 0; i < w.changes; i++ {
		ch <- struct{}{}
	}
	close(ch)
	return ch, nil
}

// setupTestServices wires real services over in-memory stores.
// The returned func restores package state.
func setupTestServices() func() {
	return setupTestServicesWithWatcher(&stubWatcher{})
}

func setupTestServicesWithWatcher(watcher *stubWatcher) func() {
	settings := services.NewSettingsService(memory.NewConfigStore())
	validator := services.NewValidatorService()
	runner := services.NewRunnerService(
		validator,
		services.NewSimulatorService(),
		settings,
		memory.NewRunStore(memory.DefaultRunCapacity),
	)

	SetServices(&Services{
		Validator: validator,
		Runner:    runner,
		Settings:  settings,
		Watcher:   watcher,
	})

	return func() {
		SetServices(nil)
		runJSON = false
		verbose = false
		rootCmd.SetIn(nil)
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != "" {
		rootCmd.SetIn(bytes.NewBufferString(stdin))
	}
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
