package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Validate and simulate a mower program",
	Long: `Reads a mower program from a file, or from standard input when the file
is omitted or "-". Every line is validated first; when any line is malformed
the errors are printed and no mower moves. Otherwise each mower is simulated
in turn and its final position is printed:

  X = 1, Y = 3, Orientation = 0

Orientation is 0 for north, 1 east, 2 south and 3 west.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output the run as JSON")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if runnerService == nil {
		return errors.New("runner service not configured")
	}

	outcome, err := runnerService.Run(cmd.Context(), sourceFor(cmd, args))
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	format := currentSettings().Output.Format
	if runJSON {
		format = domain.OutputFormatJSON
	}
	return printOutcome(cmd, outcome, format)
}

// sourceFor picks the input for an optional file argument. Standard input
// is the command's own reader, so callers can substitute it.
func sourceFor(cmd *cobra.Command, args []string) driven.InputSource {
	if len(args) > 0 && args[0] != "-" {
		return input.Resolve(args[0])
	}
	if in := cmd.InOrStdin(); in != os.Stdin {
		return input.NewReaderSource(in)
	}
	return input.NewStdinSource()
}
