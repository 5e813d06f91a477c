package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
)

// Setting keys accepted by "settings set".
const (
	settingMessages = "messages"
	settingFormat   = "format"
	settingColor    = "color"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change how mower reports errors and prints results.

Settings are stored in config.toml under the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  messages  - detailed (name the rule each line breaks) or generic (line number only)
  format    - text (one line per mower) or json (full run)
  color     - true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Validation]")
	cmd.Printf("  Messages: %s\n", settings.Validation.MessageStyle)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Color: %t\n", settings.Output.Color)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := strings.ToLower(args[0]), strings.ToLower(args[1])

	switch key {
	case settingMessages:
		style := domain.MessageStyle(value)
		if !style.IsValid() {
			return fmt.Errorf("invalid message style %q (want %s)", value, joinStyles())
		}
		if err := settingsService.SetMessageStyle(style); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	case settingFormat:
		format := domain.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("invalid output format %q (want %s)", value, joinFormats())
		}
		if err := settingsService.SetOutputFormat(format); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	case settingColor:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid color value %q (want true or false)", value)
		}
		if err := settingsService.SetColor(enabled); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	default:
		return fmt.Errorf("unknown setting %q (want %s, %s or %s)", key, settingMessages, settingFormat, settingColor)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func joinStyles() string {
	names := make([]string, 0, len(domain.AllMessageStyles()))
	for _, s := range domain.AllMessageStyles() {
		names = append(names, s.String())
	}
	return strings.Join(names, " or ")
}

func joinFormats() string {
	names := make([]string, 0, len(domain.AllOutputFormats()))
	for _, f := range domain.AllOutputFormats() {
		names = append(names, f.String())
	}
	return strings.Join(names, " or ")
}
