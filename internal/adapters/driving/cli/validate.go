package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a mower program without simulating it",
	Long: `Checks every line of a mower program against its grammar and prints one
error per malformed line. Nothing is simulated. Reads standard input when the
file is omitted or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validatorService == nil {
		return errors.New("validator service not configured")
	}

	settings := currentSettings()
	w := cmd.OutOrStdout()
	s := outputStyles(w, settings)

	content, err := sourceFor(cmd, args).Read(cmd.Context())
	if errors.Is(err, domain.ErrFileRequired) {
		fmt.Fprintln(w, s.Error.Render(domain.ErrFileRequired.Error()))
		return ErrReported
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	errs := validatorService.Validate(content)
	if len(errs) == 0 {
		fmt.Fprintln(w, s.Success.Render("OK"))
		return nil
	}

	for _, msg := range settings.Validation.MessageStyle.RenderAll(errs) {
		fmt.Fprintln(w, s.Error.Render(msg))
	}
	return ErrReported
}
