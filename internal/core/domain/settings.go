package domain

const unknownDescription = "Unknown"

// OutputFormat defines how results are written by the CLI.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText prints one line per mower or error.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON prints the whole outcome as JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (one line per mower)"
	case OutputFormatJSON:
		return "JSON (full outcome)"
	default:
		return unknownDescription
	}
}

// ValidationSettings holds validator reporting configuration.
type ValidationSettings struct {
	// MessageStyle controls how grammar errors are worded.
	MessageStyle MessageStyle
}

// OutputSettings holds CLI output configuration.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat

	// Color enables styled output when writing to a terminal.
	Color bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Validation holds validator reporting settings.
	Validation ValidationSettings

	// Output holds CLI output settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Validation: ValidationSettings{
			MessageStyle: MessageStyleDetailed,
		},
		Output: OutputSettings{
			Format: OutputFormatText,
			Color:  true,
		},
	}
}

// AllMessageStyles returns all available message styles.
func AllMessageStyles() []MessageStyle {
	return []MessageStyle{
		MessageStyleDetailed,
		MessageStyleGeneric,
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatText,
		OutputFormatJSON,
	}
}
