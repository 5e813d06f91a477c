package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/mower-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// currentSettings returns stored settings, or defaults when none are available.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

// outputStyles returns coloured styles only when colour is enabled and
// w is a terminal.
func outputStyles(w io.Writer, settings domain.AppSettings) *styles.Styles {
	if !settings.Output.Color || !isTerminal(w) {
		return styles.PlainStyles()
	}
	return styles.NewStyles(nil, w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printOutcome writes an outcome in the requested format.
// Returns ErrReported when the outcome carries errors.
func printOutcome(cmd *cobra.Command, outcome *domain.Outcome, format domain.OutputFormat) error {
	if format == domain.OutputFormatJSON {
		if err := printJSON(cmd, outcome); err != nil {
			return err
		}
	} else {
		printText(cmd, outcome)
	}

	if outcome.HasErrors() {
		return ErrReported
	}
	return nil
}

func printText(cmd *cobra.Command, outcome *domain.Outcome) {
	w := cmd.OutOrStdout()
	s := outputStyles(w, currentSettings())

	for _, msg := range outcome.Errors {
		fmt.Fprintln(w, s.Error.Render(msg))
	}
	for _, m := range outcome.Mowers {
		fmt.Fprintln(w, s.Success.Render(m.String()))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
