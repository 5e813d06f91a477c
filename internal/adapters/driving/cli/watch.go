package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run a mower program whenever it changes",
	Long: `Runs the program once, then again every time the file is written. Bursts
of writes from editors are coalesced into a single run. Stops on Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if runnerService == nil {
		return errors.New("runner service not configured")
	}
	if inputWatcher == nil {
		return errors.New("input watcher not configured")
	}

	ctx := cmd.Context()
	path := args[0]

	changes, err := inputWatcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	if err := runOnce(cmd, path); err != nil {
		return err
	}

	for range changes {
		logger.Debug("change detected in %s", path)
		fmt.Fprintln(cmd.OutOrStdout())
		if err := runOnce(cmd, path); err != nil {
			return err
		}
	}
	return nil
}

// runOnce runs the file and prints the result. Malformed programs are
// reported but do not stop the watch.
func runOnce(cmd *cobra.Command, path string) error {
	outcome, err := runnerService.Run(cmd.Context(), input.NewFileSource(path))
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	w := cmd.OutOrStdout()
	s := outputStyles(w, currentSettings())
	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("# %s (%s)", path, outcome.CreatedAt.Format("15:04:05"))))

	if err := printOutcome(cmd, outcome, currentSettings().Output.Format); err != nil && !errors.Is(err, ErrReported) {
		return err
	}
	return nil
}
