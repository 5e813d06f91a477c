package driving

import "github.com/custodia-labs/mower-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetMessageStyle updates how validation errors are worded.
	SetMessageStyle(style domain.MessageStyle) error

	// SetOutputFormat updates the default CLI output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetColor enables or disables styled output.
	SetColor(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
