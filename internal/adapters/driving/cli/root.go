// Package cli provides the cobra command tree for the mower binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// ErrReported is returned when a command has already written its
// failure to the user. Callers should exit non-zero without printing it.
var ErrReported = errors.New("errors reported")

// Services holds the driving ports the commands call into.
type Services struct {
	Validator driving.Validator
	Runner    driving.Runner
	Settings  driving.SettingsService
	Watcher   driven.InputWatcher
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	verbose   bool
	configDir string

	bootstrap Bootstrap

	validatorService driving.Validator
	runnerService    driving.Runner
	settingsService  driving.SettingsService
	inputWatcher     driven.InputWatcher
)

var rootCmd = &cobra.Command{
	Use:   "mower",
	Short: "Validate and simulate lawn mower programs",
	Long: `Mower reads a lawn mower program, checks it line by line and, when it
is well-formed, moves every mower across the lawn and prints where each one
ends up.

The program is a text file: the lawn's upper-right corner on the first line,
then for each mower a starting position with orientation (N, E, S or W) and a
line of instructions (A advance, G turn left, D turn right).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.mower)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers how services are built on first command run.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices injects services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	validatorService = s.Validator
	runnerService = s.Runner
	settingsService = s.Settings
	inputWatcher = s.Watcher
}

// Execute runs the root command until it returns or ctx is cancelled.
// Errors other than ErrReported are printed to stderr before returning.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrReported) {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if runnerService != nil || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	SetServices(services)
	logger.Debug("services ready (config dir %q)", configDir)
	return nil
}
