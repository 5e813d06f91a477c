package services

import (
	"fmt"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMessageStyle = "validation.messages"
	keyOutputFormat = "output.format"
	keyOutputColor  = "output.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Validation: domain.ValidationSettings{
			MessageStyle: s.getMessageStyle(defaults.Validation.MessageStyle),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
			Color:  s.getBool(keyOutputColor, defaults.Output.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyMessageStyle, settings.Validation.MessageStyle.String()); err != nil {
		return fmt.Errorf("save message style: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}
	return nil
}

// SetMessageStyle updates how validation errors are worded.
func (s *SettingsService) SetMessageStyle(style domain.MessageStyle) error {
	if !style.IsValid() {
		return fmt.Errorf("invalid message style: %s", style)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Validation.MessageStyle = style
	return s.Save(settings)
}

// SetOutputFormat updates the default CLI output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Format = format
	return s.Save(settings)
}

// SetColor enables or disables styled output.
func (s *SettingsService) SetColor(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Color = enabled
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getMessageStyle(defaultVal domain.MessageStyle) domain.MessageStyle {
	val := s.configStore.GetString(keyMessageStyle)
	if val == "" {
		return defaultVal
	}
	style := domain.MessageStyle(val)
	if !style.IsValid() {
		return defaultVal
	}
	return style
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
